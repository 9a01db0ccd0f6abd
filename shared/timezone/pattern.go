package timezone

import (
	"strconv"
	"strings"
	"time"

	"github.com/ncruces/go-strftime"
)

type fieldKind int

const (
	fieldPlain fieldKind = iota
	fieldYear
	fieldFraction
	fieldOffset
	fieldZoneName
	fieldEpoch
)

const tokenLetters = "YyMDdHhmsSAaZzX"

type directive struct {
	verb string
	kind fieldKind
}

// directives maps each pattern token onto the strftime directive that renders and parses it.
var directives = map[string]directive{
	"YYYY":      {verb: "%Y", kind: fieldYear},
	"yyyy":      {verb: "%Y", kind: fieldYear},
	"YY":        {verb: "%y", kind: fieldYear},
	"yy":        {verb: "%y", kind: fieldYear},
	"MMMM":      {verb: "%B"},
	"MMM":       {verb: "%b"},
	"MM":        {verb: "%m"},
	"M":         {verb: "%-m"},
	"DD":        {verb: "%d"},
	"dd":        {verb: "%d"},
	"D":         {verb: "%-d"},
	"d":         {verb: "%-d"},
	"dddd":      {verb: "%A"},
	"ddd":       {verb: "%a"},
	"HH":        {verb: "%H"},
	"H":         {verb: "%-H"},
	"hh":        {verb: "%I"},
	"h":         {verb: "%-I"},
	"mm":        {verb: "%M"},
	"m":         {verb: "%-M"},
	"ss":        {verb: "%S"},
	"s":         {verb: "%-S"},
	"SSS":       {verb: "%L", kind: fieldFraction},
	"SSSSSS":    {verb: "%f", kind: fieldFraction},
	"SSSSSSSSS": {verb: "%N", kind: fieldFraction},
	"A":         {verb: "%p"},
	"a":         {verb: "%P"},
	"Z":         {verb: "%:z", kind: fieldOffset},
	"ZZ":        {verb: "%z", kind: fieldOffset},
	"z":         {verb: "%Z", kind: fieldZoneName},
	"X":         {verb: "%s", kind: fieldEpoch},
}

// Offset suffixes tried when text carries an offset its pattern does not declare.
var trailingOffsets = []string{"%:z", "%z"}

// Pattern is a compiled format pattern. The zero value renders and parses the empty string.
type Pattern struct {
	source    string
	render    string
	parse     string
	parseErr  string
	hasYear   bool
	hasZone   bool
	epochOnly bool
}

// CompilePattern compiles a format pattern into strftime directives.
//
// Tokens:
//
//	YYYY yyyy   four-digit year          YY yy   two-digit year (parse: 69-99 -> 19xx, 00-68 -> 20xx)
//	MMMM        January                  MMM     Jan
//	MM          01                       M       1
//	DD dd       02                       D d     2
//	dddd        Monday                   ddd     Mon (parsed and ignored)
//	HH          15                       H       15
//	hh          03                       h       3
//	mm          04                       m       4
//	ss          05                       s       5
//	SSS SSSSSS SSSSSSSSS   milli, micro and nanoseconds
//	A           AM/PM                    a       am/pm
//	Z           +08:00 (parse accepts Z) ZZ      +0800
//	z           zone abbreviation, render only
//	X           Unix seconds, parsed only on its own
//
// Text inside [brackets] and any character outside the token letters is literal. Parsing is
// lenient about zero padding, and fractional seconds are read after ss whatever their length.
func CompilePattern(format string) (Pattern, error) {
	pattern := Pattern{source: format}

	var render, parse strings.Builder

	hasEpoch := false

	literal := func(text string) {
		escaped := strings.ReplaceAll(text, "%", "%%")
		render.WriteString(escaped)
		parse.WriteString(escaped)
	}

	for i := 0; i < len(format); {
		char := format[i]

		if char == '[' {
			end := strings.IndexByte(format[i+1:], ']')
			if end < 0 {
				return Pattern{}, &ParseError{Value: format, Reason: "invalid pattern: unterminated [ literal"}
			}

			literal(format[i+1 : i+1+end])
			i += end + 2

			continue
		}

		if strings.IndexByte(tokenLetters, char) < 0 {
			literal(format[i : i+1])
			i++

			continue
		}

		run := 1
		for i+run < len(format) && format[i+run] == char {
			run++
		}

		tok, ok := directives[format[i:i+run]]
		if !ok {
			return Pattern{}, &ParseError{
				Value:  format,
				Reason: "invalid pattern: unsupported token " + strconv.Quote(format[i:i+run]),
			}
		}

		render.WriteString(tok.verb)

		switch tok.kind {
		case fieldYear:
			pattern.hasYear = true
		case fieldOffset:
			pattern.hasZone = true
		case fieldZoneName:
			pattern.parseErr = "zone abbreviations cannot be parsed"
		case fieldEpoch:
			hasEpoch = true
			pattern.hasZone = true
			pattern.epochOnly = i == 0 && run == len(format)
		case fieldFraction:
			// Go reads a fraction after the seconds field without a layout element for it.
			text := parse.String()
			if !strings.HasSuffix(text, ".") && !strings.HasSuffix(text, ",") {
				pattern.parseErr = "fractional seconds must follow ss and a '.' or ','"
			} else {
				parse.Reset()
				parse.WriteString(text[:len(text)-1])
			}

			i += run

			continue
		}

		parse.WriteString(tok.verb)
		i += run
	}

	if hasEpoch && !pattern.epochOnly {
		pattern.parseErr = "X cannot be combined with other tokens when parsing"
	}

	pattern.render = render.String()
	pattern.parse = parse.String()

	return pattern, nil
}

// String returns the source pattern.
func (p Pattern) String() string {
	return p.source
}

// HasZone reports whether text parsed with p carries its own offset, making a
// caller-supplied timezone irrelevant.
func (p Pattern) HasZone() bool {
	return p.hasZone
}

// Render formats t in its own location.
func (p Pattern) Render(t time.Time) string {
	return strftime.Format(p.render, t)
}

// Parse reads value according to p. Wall-clock fields are interpreted in loc unless the text
// carries an offset (Z, ZZ) or Unix seconds (X), which take precedence. A missing year
// defaults to 1970, other missing date fields to January 1st and time fields to midnight.
func (p Pattern) Parse(value string, loc *time.Location) (time.Time, error) {
	if p.parseErr != "" {
		return time.Time{}, &ParseError{Value: value, Format: p.source, Reason: p.parseErr}
	}

	if p.epochOnly {
		seconds, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return time.Time{}, &ParseError{Value: value, Format: p.source, Reason: "expected Unix seconds", Err: err}
		}

		return time.Unix(seconds, 0).In(loc), nil
	}

	t, err := strftime.Parse(p.parse, value)
	if err != nil {
		return time.Time{}, &ParseError{Value: value, Format: p.source, Err: err}
	}

	if p.hasZone {
		return p.placeZoned(t), nil
	}

	return p.place(t, loc), nil
}

// ParseTrailingOffset parses value whose text ends in an offset (Z, +hh:mm or +hhmm) that p
// does not declare. It reports false when p declares a zone or value has no such offset.
func (p Pattern) ParseTrailingOffset(value string) (time.Time, bool) {
	if p.hasZone || p.parseErr != "" {
		return time.Time{}, false
	}

	for _, offset := range trailingOffsets {
		if t, err := strftime.Parse(p.parse+offset, value); err == nil {
			return p.placeZoned(t), true
		}
	}

	return time.Time{}, false
}

// place moves parsed wall-clock fields into loc. time.Date normalises times that fall into
// a daylight saving gap.
func (p Pattern) place(t time.Time, loc *time.Location) time.Time {
	year := t.Year()
	if !p.hasYear {
		year = 1970
	}

	return time.Date(year, t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
}

// placeZoned keeps the instant of text that carried its own offset.
func (p Pattern) placeZoned(t time.Time) time.Time {
	if p.hasYear {
		return t
	}

	_, offset := t.Zone()

	return p.place(t, time.FixedZone("", offset))
}
