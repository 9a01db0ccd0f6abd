package timezone

import "strconv"

type instantKind int

const (
	instantText instantKind = iota
	instantFormatted
	instantEpoch
)

// Instant is an input point in time: free-form text, text with an explicit format, or Unix
// seconds. The zero value is empty free-form text.
type Instant struct {
	kind   instantKind
	text   string
	format string
	epoch  int64
}

// Text is free-form text recognised by dateparse, e.g. "2020-05-20 18:00:00".
func Text(value string) Instant {
	return Instant{kind: instantText, text: value}
}

// Formatted is text parsed with an explicit pattern.
func Formatted(value, format string) Instant {
	return Instant{kind: instantFormatted, text: value, format: format}
}

// Epoch is a count of Unix seconds.
func Epoch(seconds int64) Instant {
	return Instant{kind: instantEpoch, epoch: seconds}
}

func (i Instant) String() string {
	if i.kind == instantEpoch {
		return strconv.FormatInt(i.epoch, 10)
	}

	return i.text
}
