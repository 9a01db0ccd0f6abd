package dto

import (
	"tzdate/shared/timezone"
)

type LocalTimezoneResponse struct {
	Timezone       string `json:"timezone" example:"Asia/Shanghai"`
	Source         string `json:"source" example:"config"`
	DateTimeFormat string `json:"datetime_format" example:"YYYY年MM月DD日 HH:mm:ss"`
	DateFormat     string `json:"date_format" example:"YYYY年MM月DD日"`
}

func (r *LocalTimezoneResponse) FromZone(zone timezone.Zone, dateTimeFormat, dateFormat string) {
	r.Timezone = zone.Name
	r.Source = zone.Source
	r.DateTimeFormat = dateTimeFormat
	r.DateFormat = dateFormat
}

// ConversionResponse carries a rendered time and the local timezone it was rendered for.
type ConversionResponse struct {
	Result   string `json:"result" example:"2020年05月26日 08:00:00"`
	Timezone string `json:"timezone" example:"Asia/Shanghai"`
}

type UTCToLocalRequest struct {
	UTCTime      string `json:"utc_time" validate:"required" example:"2020-05-26T00:00:00Z"`
	OutputFormat string `json:"output_format" validate:"omitempty,pattern" example:"YYYY-MM-DD HH:mm"`
}

// ToUTCRequest does not check input_timezone up front: an offset in input_format makes the
// timezone irrelevant, and an unknown one is reported by the conversion itself.
type ToUTCRequest struct {
	InputTime     string `json:"input_time" validate:"required" example:"2020-05-26 09:00:00"`
	InputFormat   string `json:"input_format" validate:"required,pattern" example:"YYYY-MM-DD HH:mm:ss"`
	InputTimezone string `json:"input_timezone" validate:"required" example:"Asia/Tokyo"`
}

type ToLocalRequest struct {
	InputTime     string `json:"input_time" validate:"required" example:"2020-05-26 09:00:00"`
	InputFormat   string `json:"input_format" validate:"required,pattern" example:"YYYY-MM-DD HH:mm:ss"`
	InputTimezone string `json:"input_timezone" validate:"required" example:"Asia/Tokyo"`
	OutputFormat  string `json:"output_format" validate:"omitempty,pattern" example:"date"`
}

// ToLocalTimezoneRequest takes either free-form input_time (optionally with input_format)
// or epoch seconds, never both.
type ToLocalTimezoneRequest struct {
	InputTimezone string `json:"input_timezone" validate:"required,timezone" example:"Asia/Tokyo"`
	InputTime     string `json:"input_time" validate:"required_without=Epoch,excluded_with=Epoch" example:"2020-05-20 18:00:00"`
	InputFormat   string `json:"input_format" validate:"omitempty,pattern,excluded_with=Epoch" example:""`
	Epoch         *int64 `json:"epoch" validate:"omitempty" example:"1590451200"`
}

func (r *ToLocalTimezoneRequest) ToInstant() timezone.Instant {
	switch {
	case r.Epoch != nil:
		return timezone.Epoch(*r.Epoch)
	case r.InputFormat != "":
		return timezone.Formatted(r.InputTime, r.InputFormat)
	default:
		return timezone.Text(r.InputTime)
	}
}

type FormatRequest struct {
	InputTime    string `json:"input_time" validate:"required" example:"Tue May 26 2020 16:41:54 GMT+0800"`
	OutputFormat string `json:"output_format" validate:"omitempty,pattern" example:"datetime"`
}
