package logger

import (
	"io"
	"os"
	"time"

	"tzdate/config"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}

	log.Logger = log.Output(output)
	log.Trace().Msg("Zerolog initialized.")
}

// UseJSON switches the global logger to structured JSON on w, stamped with the service name.
func UseJSON(w io.Writer, service string) {
	log.Logger = zerolog.New(w).With().Timestamp().Str("service", service).Logger()
}

// Configure applies the log level and, outside development, JSON output on stdout.
func Configure(cfg *config.Config) {
	if cfg.IsProduction() {
		UseJSON(os.Stdout, cfg.App.Name)
	}

	SetLogLevel(cfg)
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

func SetLogLevel(config *config.Config) {
	level, err := zerolog.ParseLevel(config.Server.LogLevel)
	if err != nil {
		level = zerolog.TraceLevel
		log.Trace().Str("loglevel", level.String()).Msg("Environment has no log level set up, using default.")
	} else {
		log.Trace().Str("loglevel", level.String()).Msg("Desired log level detected.")
	}

	zerolog.SetGlobalLevel(level)
}
