// Package timezone converts between UTC, explicit IANA timezones and the host's local timezone.
//
// Usage Examples:
//
//  1. Building a facade from explicit options:
//     f, err := timezone.New(timezone.DefaultOptions())
//
//  2. Rendering a UTC instant in the local timezone:
//     s, err := f.FormatUTCDateTime("2020-05-26T00:00:00Z", "YYYY年MM月DD日 HH:mm:ss")
//
//  3. Converting wall-clock text of another timezone to UTC:
//     s, err := f.FormatDateToUTC("2020-05-26 09:00:00", "YYYY-MM-DD HH:mm:ss", "Asia/Tokyo")
//
//  4. Labelling a conversion with the local timezone:
//     s, err := f.FormatDateToLocalTimezone("Asia/Tokyo", timezone.Text("2020-05-20 18:00:00"))
//     // "Asia/Shanghai: 2020年05月20日 17:00:00" on a host in Asia/Shanghai
//
// Format patterns use moment-style tokens with lowercase LDML aliases for year and day
// (YYYY/yyyy, MM, DD/dd, HH, mm, ss, SSS, A, Z, ZZ, X, ...). Each token compiles to a
// github.com/ncruces/go-strftime directive, which renders and parses it. Text in [brackets]
// and any character that is not a token letter, CJK glyphs included, is copied verbatim.
// Literals that Go layouts would misread (digits, "Jan", "Mon", "MST", "PM") render fine but
// cannot be parsed; see CompilePattern.
//
// The local timezone is resolved once. Resolution order is TZ, then the /etc/localtime
// symlink, then UTC with a logged warning. An explicit Options.LocalTimezone skips detection.
//
// Free-form input (FormatDateTime, Text instants) is recognised by github.com/araddon/dateparse.
// Numeric dates such as 05/06/2020 are read month-first unless Options.DayFirst is set; a
// reading that cannot be a valid date (26/05/2020) is retried with day and month swapped.
// Fragments are accepted as dateparse reads them, with missing parts set to their first value:
// "2020-" is 2020-01-01 and "3/" is March 1st of year 0000.
package timezone
