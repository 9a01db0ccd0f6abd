package timezone

import (
	"strconv"
	"time"

	"github.com/araddon/dateparse"
)

const (
	DefaultDateFormat     = "YYYY年MM月DD日"
	DefaultDateTimeFormat = "YYYY年MM月DD日 HH:mm:ss"
	DefaultLabelSeparator = ": "

	// utcLayout renders instants as 2020-05-26T00:00:00Z.
	utcLayout = "2006-01-02T15:04:05Z07:00"

	// Unix seconds of 0000-01-01T00:00:00Z and 9999-12-31T23:59:59Z.
	MinEpochSeconds int64 = -62167219200
	MaxEpochSeconds int64 = 253402300799
)

// Absolute ISO-8601 forms accepted by FormatUTCDateTime. Each one requires a zone designator.
var instantLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02T15:04Z07:00",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999Z0700",
}

// Options holds the facade defaults. The zero value of each field selects the documented default.
type Options struct {
	// LocalTimezone overrides host detection when non-empty.
	LocalTimezone string
	// DateTimeFormat is used when an output format is empty. Default "YYYY年MM月DD日 HH:mm:ss".
	DateTimeFormat string
	// DateFormat is the date-only preset. Default "YYYY年MM月DD日".
	DateFormat string
	// LabelSeparator joins the local timezone and the time in FormatDateToLocalTimezone. Default ": ".
	LabelSeparator string
	// DayFirst reads ambiguous numeric dates such as 05/06/2020 as day/month in free-form input.
	DayFirst bool
}

// DefaultOptions returns Options with every default filled in.
func DefaultOptions() Options {
	return Options{
		DateTimeFormat: DefaultDateTimeFormat,
		DateFormat:     DefaultDateFormat,
		LabelSeparator: DefaultLabelSeparator,
	}
}

// Facade converts between UTC, explicit timezones and one fixed local timezone.
// It is immutable and safe for concurrent use.
type Facade struct {
	local          Zone
	dateTimeFormat Pattern
	dateFormat     Pattern
	separator      string
	dayFirst       bool
}

// New builds a Facade. The local timezone is Options.LocalTimezone when set, otherwise the
// cached host timezone from LocalZone.
func New(opts Options) (*Facade, error) {
	if opts.DateTimeFormat == "" {
		opts.DateTimeFormat = DefaultDateTimeFormat
	}

	if opts.DateFormat == "" {
		opts.DateFormat = DefaultDateFormat
	}

	if opts.LabelSeparator == "" {
		opts.LabelSeparator = DefaultLabelSeparator
	}

	local := LocalZone()

	if opts.LocalTimezone != "" {
		loc, err := LoadLocation(opts.LocalTimezone)
		if err != nil {
			return nil, err
		}

		local = Zone{Name: opts.LocalTimezone, Location: loc, Source: SourceConfig}
	}

	dateTimeFormat, err := CompilePattern(opts.DateTimeFormat)
	if err != nil {
		return nil, err
	}

	dateFormat, err := CompilePattern(opts.DateFormat)
	if err != nil {
		return nil, err
	}

	return &Facade{
		local:          local,
		dateTimeFormat: dateTimeFormat,
		dateFormat:     dateFormat,
		separator:      opts.LabelSeparator,
		dayFirst:       opts.DayFirst,
	}, nil
}

// LocalTimezone returns the IANA identifier of the local timezone.
func (f *Facade) LocalTimezone() string {
	return f.local.Name
}

// Local returns the resolved local timezone.
func (f *Facade) Local() Zone {
	return f.local
}

// DateTimeFormat returns the default output pattern.
func (f *Facade) DateTimeFormat() string {
	return f.dateTimeFormat.String()
}

// DateFormat returns the date-only pattern.
func (f *Facade) DateFormat() string {
	return f.dateFormat.String()
}

// FormatUTCDateTime renders an absolute ISO-8601 instant such as 2020-05-26T00:00:00Z in the
// local timezone. Text without Z or an explicit offset is rejected, as is an instant whose
// local year falls outside 0000 through 9999.
func (f *Facade) FormatUTCDateTime(utcTime, outputFormat string) (string, error) {
	output, err := f.outputPattern(outputFormat)
	if err != nil {
		return "", err
	}

	instant, err := ParseInstant(utcTime)
	if err != nil {
		return "", err
	}

	local := instant.In(f.local.Location)
	if err := checkRange(local, utcTime); err != nil {
		return "", err
	}

	return output.Render(local), nil
}

// FormatTimestampToUTC renders Unix seconds as 2020-05-26T00:00:00Z.
func (f *Facade) FormatTimestampToUTC(epochSeconds int64) (string, error) {
	return FormatTimestampToUTC(epochSeconds)
}

// FormatDateToUTC parses inputTime with inputFormat as wall-clock time in inputTimezone and
// renders the instant in UTC. When inputFormat carries an offset (Z, ZZ) or Unix seconds (X),
// or inputTime ends in an offset the format does not declare, the embedded zone wins and
// inputTimezone is ignored without being looked up.
func (f *Facade) FormatDateToUTC(inputTime, inputFormat, inputTimezone string) (string, error) {
	t, err := f.parseIn(inputTime, inputFormat, inputTimezone)
	if err != nil {
		return "", err
	}

	return formatUTC(t, inputTime)
}

// FormatTimestampToLocal renders Unix seconds in the local timezone. An empty outputFormat
// selects the default date-time pattern.
func (f *Facade) FormatTimestampToLocal(epochSeconds int64, outputFormat string) (string, error) {
	utcTime, err := f.FormatTimestampToUTC(epochSeconds)
	if err != nil {
		return "", err
	}

	return f.FormatUTCDateTime(utcTime, outputFormat)
}

// FormatDateToLocal converts wall-clock text of inputTimezone to the local timezone. An empty
// outputFormat selects the default date-time pattern.
func (f *Facade) FormatDateToLocal(inputTime, inputFormat, inputTimezone, outputFormat string) (string, error) {
	utcTime, err := f.FormatDateToUTC(inputTime, inputFormat, inputTimezone)
	if err != nil {
		return "", err
	}

	return f.FormatUTCDateTime(utcTime, outputFormat)
}

// FormatDateToLocalTimezone reprojects input from inputTimezone to the local timezone and
// prefixes the local identifier, e.g. "Asia/Shanghai: 2020年05月20日 17:00:00". The output
// always uses the default date-time pattern.
func (f *Facade) FormatDateToLocalTimezone(inputTimezone string, input Instant) (string, error) {
	loc, err := LoadLocation(inputTimezone)
	if err != nil {
		return "", err
	}

	var t time.Time

	switch input.kind {
	case instantEpoch:
		t, err = fromEpoch(input.epoch)
	case instantFormatted:
		t, err = f.parseIn(input.text, input.format, inputTimezone)
	default:
		t, err = f.parseFreeForm(input.text, loc)
	}

	if err != nil {
		return "", err
	}

	local := t.In(f.local.Location)
	if err := checkRange(local, input.String()); err != nil {
		return "", err
	}

	return f.local.Name + f.separator + f.dateTimeFormat.Render(local), nil
}

// FormatDateTime recognises inputTime without an explicit format and re-renders it in the
// local timezone. Text without an offset is read as local wall-clock time. See the package
// documentation for how ambiguous numeric dates are resolved.
func (f *Facade) FormatDateTime(inputTime, outputFormat string) (string, error) {
	output, err := f.outputPattern(outputFormat)
	if err != nil {
		return "", err
	}

	t, err := f.parseFreeForm(inputTime, f.local.Location)
	if err != nil {
		return "", err
	}

	local := t.In(f.local.Location)
	if err := checkRange(local, inputTime); err != nil {
		return "", err
	}

	return output.Render(local), nil
}

func (f *Facade) outputPattern(outputFormat string) (Pattern, error) {
	if outputFormat == "" {
		return f.dateTimeFormat, nil
	}

	return CompilePattern(outputFormat)
}

func (f *Facade) parseIn(inputTime, inputFormat, inputTimezone string) (time.Time, error) {
	pattern, err := CompilePattern(inputFormat)
	if err != nil {
		return time.Time{}, err
	}

	if pattern.HasZone() {
		return pattern.Parse(inputTime, time.UTC)
	}

	if t, ok := pattern.ParseTrailingOffset(inputTime); ok {
		return t, nil
	}

	loc, err := LoadLocation(inputTimezone)
	if err != nil {
		return time.Time{}, err
	}

	return pattern.Parse(inputTime, loc)
}

// parseFreeForm tries the configured day/month order first and the opposite order second, so
// 26/05/2020 still parses when month-first is preferred. The first error is reported.
func (f *Facade) parseFreeForm(value string, loc *time.Location) (time.Time, error) {
	t, err := dateparse.ParseIn(value, loc, dateparse.PreferMonthFirst(!f.dayFirst))
	if err == nil {
		return t, nil
	}

	if swapped, swapErr := dateparse.ParseIn(value, loc, dateparse.PreferMonthFirst(f.dayFirst)); swapErr == nil {
		return swapped, nil
	}

	return time.Time{}, &ParseError{Value: value, Err: err}
}

// ParseInstant parses ISO-8601 text that names an absolute instant.
func ParseInstant(value string) (time.Time, error) {
	var lastErr error

	for _, layout := range instantLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}

		lastErr = err
	}

	return time.Time{}, &ParseError{
		Value:  value,
		Format: "ISO-8601",
		Reason: "expected an instant with Z or an explicit offset",
		Err:    lastErr,
	}
}

// FormatTimestampToUTC renders Unix seconds as 2020-05-26T00:00:00Z. Seconds outside
// MinEpochSeconds..MaxEpochSeconds yield an OutOfRangeError.
func FormatTimestampToUTC(epochSeconds int64) (string, error) {
	t, err := fromEpoch(epochSeconds)
	if err != nil {
		return "", err
	}

	return t.Format(utcLayout), nil
}

func fromEpoch(epochSeconds int64) (time.Time, error) {
	if epochSeconds < MinEpochSeconds || epochSeconds > MaxEpochSeconds {
		return time.Time{}, &OutOfRangeError{
			Value:  strconv.FormatInt(epochSeconds, 10),
			Reason: "supported Unix seconds are 0000-01-01T00:00:00Z through 9999-12-31T23:59:59Z",
		}
	}

	return time.Unix(epochSeconds, 0).UTC(), nil
}

func formatUTC(t time.Time, source string) (string, error) {
	utc := t.UTC()
	if err := checkRange(utc, source); err != nil {
		return "", err
	}

	return utc.Format(utcLayout), nil
}

// checkRange bounds the year of t in its own location, which is the year that gets rendered.
func checkRange(t time.Time, source string) error {
	if year := t.Year(); year < 0 || year > 9999 {
		return &OutOfRangeError{Value: source, Reason: "year falls outside 0000 through 9999 in " + t.Location().String()}
	}

	return nil
}
