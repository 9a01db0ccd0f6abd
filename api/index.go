package handler

import (
	"net/http"
	"sync"

	"tzdate/config"
	"tzdate/di"
	"tzdate/shared/logger"
	transport "tzdate/transport/http"

	"github.com/rs/zerolog/log"
)

var (
	server  *transport.HTTP
	initErr error
	once    sync.Once
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.Configure(cfg)

		server, initErr = di.InitializeService()
	})

	if initErr != nil {
		log.Error().Err(initErr).Msg("Failed to initialize service")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	server.ServeHTTP(w, r)
}
