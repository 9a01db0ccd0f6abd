package main

import (
	"tzdate/config"
	"tzdate/di"
	"tzdate/shared/logger"

	"github.com/rs/zerolog/log"
)

//	@title			tzdate API
//	@version		1.0
//	@description	Timezone-aware date conversion between epoch seconds, UTC instants and local wall clock.
//	@BasePath		/
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.Configure(cfg)

	http, err := di.InitializeService()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize service")
	}

	http.Serve()
}
