package timezone_test

import (
	"errors"
	"sync"
	"testing"

	"tzdate/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func env(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		value, ok := values[key]

		return value, ok
	}
}

func link(target string, err error) func(string) (string, error) {
	return func(string) (string, error) {
		return target, err
	}
}

func TestResolveLocal(t *testing.T) {
	noLink := link("", errors.New("not a symlink"))

	tests := []struct {
		name           string
		lookupEnv      func(string) (string, bool)
		readlink       func(string) (string, error)
		expectedName   string
		expectedSource string
	}{
		{
			name:           "TZ names a zone",
			lookupEnv:      env(map[string]string{"TZ": "Asia/Tokyo"}),
			readlink:       link("/usr/share/zoneinfo/Asia/Shanghai", nil),
			expectedName:   "Asia/Tokyo",
			expectedSource: timezone.SourceEnv,
		},
		{
			name:           "empty TZ means UTC",
			lookupEnv:      env(map[string]string{"TZ": ""}),
			readlink:       link("/usr/share/zoneinfo/Asia/Shanghai", nil),
			expectedName:   timezone.UTC,
			expectedSource: timezone.SourceEnv,
		},
		{
			name:           "TZ with leading colon",
			lookupEnv:      env(map[string]string{"TZ": ":Europe/Paris"}),
			readlink:       noLink,
			expectedName:   "Europe/Paris",
			expectedSource: timezone.SourceEnv,
		},
		{
			name:           "TZ as zoneinfo path",
			lookupEnv:      env(map[string]string{"TZ": "/usr/share/zoneinfo/America/New_York"}),
			readlink:       noLink,
			expectedName:   "America/New_York",
			expectedSource: timezone.SourceEnv,
		},
		{
			name:           "localtime symlink",
			lookupEnv:      env(nil),
			readlink:       link("/usr/share/zoneinfo/Asia/Shanghai", nil),
			expectedName:   "Asia/Shanghai",
			expectedSource: timezone.SourceSystem,
		},
		{
			name:           "relative posix symlink",
			lookupEnv:      env(nil),
			readlink:       link("../usr/share/zoneinfo/posix/Europe/Berlin", nil),
			expectedName:   "Europe/Berlin",
			expectedSource: timezone.SourceSystem,
		},
		{
			name:           "macOS symlink",
			lookupEnv:      env(nil),
			readlink:       link("/var/db/timezone/zoneinfo/Asia/Tokyo", nil),
			expectedName:   "Asia/Tokyo",
			expectedSource: timezone.SourceSystem,
		},
		{
			name:           "unknown TZ falls through to symlink",
			lookupEnv:      env(map[string]string{"TZ": "Mars/Base"}),
			readlink:       link("/usr/share/zoneinfo/Asia/Shanghai", nil),
			expectedName:   "Asia/Shanghai",
			expectedSource: timezone.SourceSystem,
		},
		{
			name:           "nothing resolvable",
			lookupEnv:      env(map[string]string{"TZ": "Mars/Base"}),
			readlink:       link("/opt/custom/localtime", nil),
			expectedName:   timezone.UTC,
			expectedSource: timezone.SourceFallback,
		},
		{
			name:           "no TZ and no symlink",
			lookupEnv:      env(nil),
			readlink:       noLink,
			expectedName:   timezone.UTC,
			expectedSource: timezone.SourceFallback,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zone := timezone.ResolveWith(tt.lookupEnv, tt.readlink)

			assert.Equal(t, tt.expectedName, zone.Name)
			assert.Equal(t, tt.expectedSource, zone.Source)
			if assert.NotNil(t, zone.Location) {
				assert.Equal(t, tt.expectedName, zone.Location.String())
			}
		})
	}
}

func TestLocalZoneIsStable(t *testing.T) {
	const workers = 16

	zones := make([]timezone.Zone, workers)

	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)

		go func() {
			defer wg.Done()
			zones[i] = timezone.LocalZone()
		}()
	}
	wg.Wait()

	first := timezone.LocalZone()
	assert.NotEmpty(t, first.Name)

	for _, zone := range zones {
		assert.Equal(t, first.Name, zone.Name)
		assert.Same(t, first.Location, zone.Location)
	}
}

func TestLoadLocation(t *testing.T) {
	loc, err := timezone.LoadLocation("Asia/Tokyo")
	assert.NoError(t, err)
	assert.Equal(t, "Asia/Tokyo", loc.String())

	for _, name := range []string{"", "Local", "Mars/Base"} {
		_, err := timezone.LoadLocation(name)
		assert.ErrorIs(t, err, timezone.ErrUnknownTimezone, name)

		var tzErr *timezone.UnknownTimezoneError
		assert.ErrorAs(t, err, &tzErr)
	}
}
