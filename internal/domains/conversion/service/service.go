package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"tzdate/config"
	"tzdate/infras/otel"
	"tzdate/internal/domains/conversion/model/dto"
	"tzdate/shared"
	"tzdate/shared/cache"
	"tzdate/shared/constant"
	"tzdate/shared/failure"
	"tzdate/shared/timezone"

	"github.com/rs/zerolog/log"
)

// Converter is the subset of *timezone.Facade the service needs.
type Converter interface {
	Local() timezone.Zone
	DateTimeFormat() string
	DateFormat() string
	FormatUTCDateTime(utcTime, outputFormat string) (string, error)
	FormatTimestampToUTC(epochSeconds int64) (string, error)
	FormatDateToUTC(inputTime, inputFormat, inputTimezone string) (string, error)
	FormatTimestampToLocal(epochSeconds int64, outputFormat string) (string, error)
	FormatDateToLocal(inputTime, inputFormat, inputTimezone, outputFormat string) (string, error)
	FormatDateToLocalTimezone(inputTimezone string, input timezone.Instant) (string, error)
	FormatDateTime(inputTime, outputFormat string) (string, error)
}

// NewConverter builds the facade from the APP_* settings.
func NewConverter(cfg *config.Config) (Converter, error) {
	facade, err := timezone.New(timezone.Options{
		LocalTimezone:  cfg.App.Timezone,
		DateTimeFormat: cfg.App.DateTimeFormat,
		DateFormat:     cfg.App.DateFormat,
		LabelSeparator: cfg.App.LabelSeparator,
		DayFirst:       cfg.App.DayFirst,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build timezone facade: %w", err)
	}

	zone := facade.Local()
	log.Info().Str("timezone", zone.Name).Str("source", zone.Source).Msg("Local timezone resolved")

	return facade, nil
}

type Conversion interface {
	LocalTimezone(ctx context.Context) dto.LocalTimezoneResponse
	TimestampToUTC(ctx context.Context, epoch int64) (dto.ConversionResponse, error)
	TimestampToLocal(ctx context.Context, epoch int64, outputFormat string) (dto.ConversionResponse, error)
	UTCToLocal(ctx context.Context, req dto.UTCToLocalRequest) (dto.ConversionResponse, error)
	ToUTC(ctx context.Context, req dto.ToUTCRequest) (dto.ConversionResponse, error)
	ToLocal(ctx context.Context, req dto.ToLocalRequest) (dto.ConversionResponse, error)
	ToLocalTimezone(ctx context.Context, req dto.ToLocalTimezoneRequest) (dto.ConversionResponse, error)
	Format(ctx context.Context, req dto.FormatRequest) (dto.ConversionResponse, error)
}

type serviceImpl struct {
	converter Converter
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(converter Converter, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Conversion {
	return &serviceImpl{
		converter: converter,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

func (s *serviceImpl) LocalTimezone(ctx context.Context) (res dto.LocalTimezoneResponse) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".LocalTimezone")
	defer scope.End()

	zone := s.converter.Local()
	scope.SetAttributes(map[string]any{"timezone.local": zone.Name, "timezone.source": zone.Source})

	res.FromZone(zone, s.converter.DateTimeFormat(), s.converter.DateFormat())

	return res
}

func (s *serviceImpl) TimestampToUTC(ctx context.Context, epoch int64) (dto.ConversionResponse, error) {
	return s.convert(ctx, "TimestampToUTC", epoch, func() (string, error) {
		return s.converter.FormatTimestampToUTC(epoch)
	})
}

func (s *serviceImpl) TimestampToLocal(ctx context.Context, epoch int64, outputFormat string) (dto.ConversionResponse, error) {
	type key struct {
		Epoch        int64  `json:"epoch"`
		OutputFormat string `json:"output_format"`
	}

	outputFormat = s.outputFormat(outputFormat)

	return s.convert(ctx, "TimestampToLocal", key{epoch, outputFormat}, func() (string, error) {
		return s.converter.FormatTimestampToLocal(epoch, outputFormat)
	})
}

func (s *serviceImpl) UTCToLocal(ctx context.Context, req dto.UTCToLocalRequest) (dto.ConversionResponse, error) {
	req.OutputFormat = s.outputFormat(req.OutputFormat)

	return s.convert(ctx, "UTCToLocal", req, func() (string, error) {
		return s.converter.FormatUTCDateTime(req.UTCTime, req.OutputFormat)
	})
}

func (s *serviceImpl) ToUTC(ctx context.Context, req dto.ToUTCRequest) (dto.ConversionResponse, error) {
	return s.convert(ctx, "ToUTC", req, func() (string, error) {
		return s.converter.FormatDateToUTC(req.InputTime, req.InputFormat, req.InputTimezone)
	})
}

func (s *serviceImpl) ToLocal(ctx context.Context, req dto.ToLocalRequest) (dto.ConversionResponse, error) {
	req.OutputFormat = s.outputFormat(req.OutputFormat)

	return s.convert(ctx, "ToLocal", req, func() (string, error) {
		return s.converter.FormatDateToLocal(req.InputTime, req.InputFormat, req.InputTimezone, req.OutputFormat)
	})
}

func (s *serviceImpl) ToLocalTimezone(ctx context.Context, req dto.ToLocalTimezoneRequest) (dto.ConversionResponse, error) {
	return s.convert(ctx, "ToLocalTimezone", req, func() (string, error) {
		return s.converter.FormatDateToLocalTimezone(req.InputTimezone, req.ToInstant())
	})
}

func (s *serviceImpl) Format(ctx context.Context, req dto.FormatRequest) (dto.ConversionResponse, error) {
	req.OutputFormat = s.outputFormat(req.OutputFormat)

	return s.convert(ctx, "Format", req, func() (string, error) {
		return s.converter.FormatDateTime(req.InputTime, req.OutputFormat)
	})
}

// outputFormat expands the date and datetime presets. Anything else is a literal pattern.
func (s *serviceImpl) outputFormat(format string) string {
	switch format {
	case constant.OutputPresetDate:
		return s.converter.DateFormat()
	case constant.OutputPresetDateTime:
		return s.converter.DateTimeFormat()
	default:
		return format
	}
}

// cacheScope is everything a conversion result depends on. Deployments sharing one Redis
// with different settings get different keys.
type cacheScope struct {
	Local          string `json:"local"`
	DateTimeFormat string `json:"datetime_format"`
	DateFormat     string `json:"date_format"`
	LabelSeparator string `json:"label_separator"`
	DayFirst       bool   `json:"day_first"`
	Payload        any    `json:"payload"`
}

// convert runs compute behind the result cache. Cache failures never fail a conversion.
func (s *serviceImpl) convert(ctx context.Context, operation string, payload any, compute func() (string, error)) (res dto.ConversionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+"."+operation)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res.Timezone = s.converter.Local().Name
	scope.SetAttribute("timezone.local", res.Timezone)

	cacheKey := shared.BuildHashedCacheKey(constant.CacheKeyConversion, operation, cacheScope{
		Local:          res.Timezone,
		DateTimeFormat: s.converter.DateTimeFormat(),
		DateFormat:     s.converter.DateFormat(),
		LabelSeparator: s.cfg.App.LabelSeparator,
		DayFirst:       s.cfg.App.DayFirst,
		Payload:        payload,
	})

	if cacheKey != "" {
		var cached string

		switch cacheErr := s.cache.Get(ctx, cacheKey, &cached); {
		case cacheErr == nil:
			scope.SetAttribute("cache.hit", true)
			res.Result = cached

			return res, nil
		case !errors.Is(cacheErr, cache.Nil):
			log.Warn().Err(cacheErr).Str("operation", operation).Msg("failed to read conversion cache")
		}
	}

	scope.SetAttribute("cache.hit", false)

	res.Result, err = compute()
	if err != nil {
		log.Debug().Err(err).Str("operation", operation).Msg("conversion rejected")

		return dto.ConversionResponse{}, failure.FromTimezone(err) // nolint:wrapcheck
	}

	if cacheKey != "" {
		if cacheErr := s.cache.Save(ctx, cacheKey, res.Result, s.cfg.Cache.TTL); cacheErr != nil {
			log.Warn().Err(cacheErr).Str("operation", operation).Msg("failed to save conversion cache")
		}
	}

	return res, nil
}
