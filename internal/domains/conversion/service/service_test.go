package service_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"tzdate/config"
	"tzdate/infras/otel/mocks"
	conversionMocks "tzdate/internal/domains/conversion/mocks"
	"tzdate/internal/domains/conversion/model/dto"
	"tzdate/internal/domains/conversion/service"
	"tzdate/shared/cache"
	cacheMocks "tzdate/shared/cache/mocks"
	"tzdate/shared/failure"
	"tzdate/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T, c cache.RedisCache) service.Conversion {
	t.Helper()

	facade, err := timezone.New(timezone.Options{LocalTimezone: "Asia/Shanghai"})
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(facade, cfg, c, mocks.NewOtel())
}

// missingCache expects one lookup miss and one store per call.
func missingCache(ctrl *gomock.Controller, calls int) *cacheMocks.MockRedisCache {
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("failed to get cache value: %w", cache.Nil)).
		Times(calls)

	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), 3600).
		Return(nil).
		MaxTimes(calls)

	return mockCache
}

func TestConversionService_LocalTimezone(t *testing.T) {
	ctrl := gomock.NewController(t)

	svc := newService(t, cacheMocks.NewMockRedisCache(ctrl))

	res := svc.LocalTimezone(context.Background())

	assert.Equal(t, dto.LocalTimezoneResponse{
		Timezone:       "Asia/Shanghai",
		Source:         timezone.SourceConfig,
		DateTimeFormat: timezone.DefaultDateTimeFormat,
		DateFormat:     timezone.DefaultDateFormat,
	}, res)
}

func TestConversionService_Conversions(t *testing.T) {
	epoch := int64(1590451200)

	tests := []struct {
		name     string
		call     func(svc service.Conversion) (dto.ConversionResponse, error)
		expected string
		code     int
	}{
		{
			name:     "timestamp to utc",
			call:     func(svc service.Conversion) (dto.ConversionResponse, error) { return svc.TimestampToUTC(context.Background(), epoch) },
			expected: "2020-05-26T00:00:00Z",
		},
		{
			name: "timestamp to local with date preset",
			call: func(svc service.Conversion) (dto.ConversionResponse, error) {
				return svc.TimestampToLocal(context.Background(), epoch, "date")
			},
			expected: "2020年05月26日",
		},
		{
			name: "timestamp out of range",
			call: func(svc service.Conversion) (dto.ConversionResponse, error) {
				return svc.TimestampToLocal(context.Background(), timezone.MaxEpochSeconds+1, "")
			},
			code: http.StatusUnprocessableEntity,
		},
		{
			name: "utc to local",
			call: func(svc service.Conversion) (dto.ConversionResponse, error) {
				return svc.UTCToLocal(context.Background(), dto.UTCToLocalRequest{UTCTime: "2020-05-26T00:00:00Z"})
			},
			expected: "2020年05月26日 08:00:00",
		},
		{
			name: "utc to local without offset",
			call: func(svc service.Conversion) (dto.ConversionResponse, error) {
				return svc.UTCToLocal(context.Background(), dto.UTCToLocalRequest{UTCTime: "2020-05-26 00:00:00"})
			},
			code: http.StatusBadRequest,
		},
		{
			name: "to utc",
			call: func(svc service.Conversion) (dto.ConversionResponse, error) {
				return svc.ToUTC(context.Background(), dto.ToUTCRequest{
					InputTime:     "2020-05-26 09:00:00",
					InputFormat:   "yyyy-MM-dd HH:mm:ss",
					InputTimezone: "Asia/Tokyo",
				})
			},
			expected: "2020-05-26T00:00:00Z",
		},
		{
			name: "to utc with unknown timezone",
			call: func(svc service.Conversion) (dto.ConversionResponse, error) {
				return svc.ToUTC(context.Background(), dto.ToUTCRequest{
					InputTime:     "2020-05-26 09:00:00",
					InputFormat:   "yyyy-MM-dd HH:mm:ss",
					InputTimezone: "Mars/Base",
				})
			},
			code: http.StatusBadRequest,
		},
		{
			name: "to local with datetime preset",
			call: func(svc service.Conversion) (dto.ConversionResponse, error) {
				return svc.ToLocal(context.Background(), dto.ToLocalRequest{
					InputTime:     "2020-05-26 09:00:00",
					InputFormat:   "YYYY-MM-DD HH:mm:ss",
					InputTimezone: "Asia/Tokyo",
					OutputFormat:  "datetime",
				})
			},
			expected: "2020年05月26日 08:00:00",
		},
		{
			name: "to local timezone",
			call: func(svc service.Conversion) (dto.ConversionResponse, error) {
				return svc.ToLocalTimezone(context.Background(), dto.ToLocalTimezoneRequest{
					InputTimezone: "Asia/Tokyo",
					InputTime:     "2020-05-20 18:00:00",
				})
			},
			expected: "Asia/Shanghai: 2020年05月20日 17:00:00",
		},
		{
			name: "to local timezone from epoch",
			call: func(svc service.Conversion) (dto.ConversionResponse, error) {
				return svc.ToLocalTimezone(context.Background(), dto.ToLocalTimezoneRequest{
					InputTimezone: "Asia/Tokyo",
					Epoch:         &epoch,
				})
			},
			expected: "Asia/Shanghai: 2020年05月26日 08:00:00",
		},
		{
			name: "free-form format",
			call: func(svc service.Conversion) (dto.ConversionResponse, error) {
				return svc.Format(context.Background(), dto.FormatRequest{InputTime: "2020-05-26T00:00:00Z", OutputFormat: "YYYY/MM/DD HH:mm"})
			},
			expected: "2020/05/26 08:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := newService(t, missingCache(ctrl, 1))

			res, err := tt.call(svc)

			if tt.code != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.code, failure.GetCode(err))
				assert.Empty(t, res.Result)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, res.Result)
			assert.Equal(t, "Asia/Shanghai", res.Timezone)
		})
	}
}

func TestConversionService_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value any) error {
			*(value.(*string)) = "from cache"

			return nil
		})

	svc := newService(t, mockCache)

	res, err := svc.TimestampToUTC(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, "from cache", res.Result)
}

func TestConversionService_CacheKeyIsStable(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	var keys []string

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, key string, _ any) error {
			keys = append(keys, key)

			return cache.Nil
		}).
		Times(3)

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(3)

	svc := newService(t, mockCache)

	_, err := svc.TimestampToLocal(context.Background(), 0, "")
	require.NoError(t, err)
	_, err = svc.TimestampToLocal(context.Background(), 0, "")
	require.NoError(t, err)
	_, err = svc.TimestampToLocal(context.Background(), 1, "")
	require.NoError(t, err)

	require.Len(t, keys, 3)
	assert.Equal(t, keys[0], keys[1])
	assert.NotEqual(t, keys[0], keys[2])
	assert.Regexp(t, `^conversion:TimestampToLocal:[0-9a-f]{64}$`, keys[0])
}

func TestConversionService_CacheKeyFollowsSettings(t *testing.T) {
	keyFor := func(t *testing.T, mutate func(cfg *config.Config)) string {
		t.Helper()

		cfg := &config.Config{}
		cfg.Cache.TTL = 3600
		cfg.App.Timezone = "Asia/Shanghai"
		mutate(cfg)

		converter, err := service.NewConverter(cfg)
		require.NoError(t, err)

		ctrl := gomock.NewController(t)
		mockCache := cacheMocks.NewMockRedisCache(ctrl)

		var key string

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, k string, _ any) error {
				key = k

				return cache.Nil
			})
		mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		svc := service.New(converter, cfg, mockCache, mocks.NewOtel())

		_, err = svc.ToLocalTimezone(context.Background(), dto.ToLocalTimezoneRequest{
			InputTimezone: "Asia/Tokyo",
			InputTime:     "2020-05-20 18:00:00",
		})
		require.NoError(t, err)

		return key
	}

	base := keyFor(t, func(*config.Config) {})

	assert.Equal(t, base, keyFor(t, func(*config.Config) {}))
	assert.NotEqual(t, base, keyFor(t, func(cfg *config.Config) { cfg.App.LabelSeparator = " | " }))
	assert.NotEqual(t, base, keyFor(t, func(cfg *config.Config) { cfg.App.DateTimeFormat = "YYYY-MM-DD HH:mm" }))
	assert.NotEqual(t, base, keyFor(t, func(cfg *config.Config) { cfg.App.DateFormat = "YYYY/MM/DD" }))
	assert.NotEqual(t, base, keyFor(t, func(cfg *config.Config) { cfg.App.DayFirst = true }))
}

func TestConversionService_CacheFailuresAreIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

	svc := newService(t, mockCache)

	res, err := svc.TimestampToUTC(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, "1970-01-01T00:00:00Z", res.Result)
}

func TestConversionService_UnexpectedConverterError(t *testing.T) {
	ctrl := gomock.NewController(t)
	converter := conversionMocks.NewMockConverter(ctrl)

	converter.EXPECT().Local().Return(timezone.Zone{Name: "UTC"}).AnyTimes()
	converter.EXPECT().DateTimeFormat().Return(timezone.DefaultDateTimeFormat).AnyTimes()
	converter.EXPECT().DateFormat().Return(timezone.DefaultDateFormat).AnyTimes()
	converter.EXPECT().FormatDateTime("now", "").Return("", errors.New("boom"))

	cfg := &config.Config{}
	svc := service.New(converter, cfg, missingCache(ctrl, 1), mocks.NewOtel())

	_, err := svc.Format(context.Background(), dto.FormatRequest{InputTime: "now"})
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
}

func TestNewConverter(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Timezone = "Europe/Paris"
	cfg.App.DateTimeFormat = "DD/MM/YYYY HH:mm"

	converter, err := service.NewConverter(cfg)
	require.NoError(t, err)

	assert.Equal(t, "Europe/Paris", converter.Local().Name)
	assert.Equal(t, "DD/MM/YYYY HH:mm", converter.DateTimeFormat())
	assert.Equal(t, timezone.DefaultDateFormat, converter.DateFormat())

	cfg.App.Timezone = "Mars/Base"
	_, err = service.NewConverter(cfg)
	assert.ErrorIs(t, err, timezone.ErrUnknownTimezone)
}
