package timezone

import (
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	// UTC is the fallback when the host timezone cannot be determined.
	UTC = "UTC"

	SourceConfig   = "config"
	SourceEnv      = "env"
	SourceSystem   = "system"
	SourceFallback = "fallback"

	envTZ             = "TZ"
	localtimePath     = "/etc/localtime"
	zoneinfoDirectory = "zoneinfo/"
)

// Zone is a resolved timezone with the place it was resolved from.
type Zone struct {
	Name     string
	Location *time.Location
	Source   string
}

type resolver struct {
	lookupEnv func(key string) (string, bool)
	readlink  func(name string) (string, error)
}

var (
	systemResolver = resolver{
		lookupEnv: os.LookupEnv,
		readlink:  os.Readlink,
	}

	localZone atomic.Pointer[Zone]
)

// LoadLocation looks name up in the timezone database.
func LoadLocation(name string) (*time.Location, error) {
	// time.LoadLocation maps "" and "Local" to non-IANA zones.
	if name == "" || name == "Local" {
		return nil, &UnknownTimezoneError{Name: name}
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, &UnknownTimezoneError{Name: name, Err: err}
	}

	return loc, nil
}

// ResolveLocal determines the host timezone without caching. It never fails: when neither
// TZ nor /etc/localtime names a known zone the result is UTC with SourceFallback.
func ResolveLocal() Zone {
	return systemResolver.resolve()
}

// LocalZone returns the host timezone, resolving it on first use. Concurrent first callers
// may each resolve; all of them observe the first stored result.
func LocalZone() Zone {
	if zone := localZone.Load(); zone != nil {
		return *zone
	}

	zone := ResolveLocal()
	localZone.CompareAndSwap(nil, &zone)

	return *localZone.Load()
}

func (r resolver) resolve() Zone {
	if value, found := r.lookupEnv(envTZ); found {
		name := zoneNameFromTZ(value)

		// TZ set but empty means UTC.
		if name == "" {
			return Zone{Name: UTC, Location: time.UTC, Source: SourceEnv}
		}

		if loc, err := LoadLocation(name); err == nil {
			return Zone{Name: name, Location: loc, Source: SourceEnv}
		}

		log.Warn().Str("tz", value).Msg("TZ does not name a known timezone, trying system timezone")
	}

	if target, err := r.readlink(localtimePath); err == nil {
		if name := zoneNameFromPath(target); name != "" {
			if loc, err := LoadLocation(name); err == nil {
				return Zone{Name: name, Location: loc, Source: SourceSystem}
			}
		}

		log.Warn().Str("target", target).Msg("Unrecognised /etc/localtime target")
	}

	log.Warn().Msg("Could not determine host timezone, using UTC as default")

	return Zone{Name: UTC, Location: time.UTC, Source: SourceFallback}
}

func zoneNameFromTZ(value string) string {
	value = strings.TrimPrefix(value, ":")

	if filepath.IsAbs(value) {
		return zoneNameFromPath(value)
	}

	return value
}

// zoneNameFromPath extracts "Asia/Tokyo" from paths such as /usr/share/zoneinfo/Asia/Tokyo
// or /var/db/timezone/zoneinfo/posix/Asia/Tokyo.
func zoneNameFromPath(path string) string {
	path = filepath.ToSlash(filepath.Clean(path))

	idx := strings.LastIndex(path, zoneinfoDirectory)
	if idx < 0 {
		return ""
	}

	name := path[idx+len(zoneinfoDirectory):]
	name = strings.TrimPrefix(name, "posix/")
	name = strings.TrimPrefix(name, "right/")

	return name
}
