package conversion

import (
	"net/http"
	"strconv"

	"tzdate/infras/otel"
	"tzdate/internal/domains/conversion/model/dto"
	"tzdate/internal/domains/conversion/service"
	"tzdate/shared/constant"
	"tzdate/shared/failure"
	"tzdate/shared/validator"
	"tzdate/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Conversion
	otel    otel.Otel
}

func New(service service.Conversion, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/time", func(routerGroup chi.Router) {
		routerGroup.Get("/local-timezone", handler.GetLocalTimezone)
		routerGroup.Get("/timestamps/{epoch}/utc", handler.TimestampToUTC)
		routerGroup.Get("/timestamps/{epoch}/local", handler.TimestampToLocal)
		routerGroup.Post("/utc-to-local", handler.UTCToLocal)
		routerGroup.Post("/to-utc", handler.ToUTC)
		routerGroup.Post("/to-local", handler.ToLocal)
		routerGroup.Post("/to-local-timezone", handler.ToLocalTimezone)
		routerGroup.Post("/format", handler.Format)
	})
}

// GetLocalTimezone reports the timezone every local rendering uses.
// @Summary Get the local timezone
// @Description Returns the resolved local IANA timezone, how it was resolved and the default patterns.
// @Tags Time
// @Produce json
// @Success 200 {object} response.Data[dto.LocalTimezoneResponse]
// @Router /v1/time/local-timezone [get]
func (handler *Handler) GetLocalTimezone(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLocalTimezone")
	defer scope.End()

	response.WithResult(writer, http.StatusOK, handler.service.LocalTimezone(ctx))
}

// TimestampToUTC renders Unix seconds as an ISO-8601 UTC string.
// @Summary Convert a Unix timestamp to UTC
// @Tags Time
// @Produce json
// @Param epoch path int true "Unix seconds"
// @Success 200 {object} response.Data[dto.ConversionResponse]
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/time/timestamps/{epoch}/utc [get]
func (handler *Handler) TimestampToUTC(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".TimestampToUTC")
	defer scope.End()

	epoch, err := parseEpoch(request)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.TimestampToUTC(ctx, epoch)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("epoch", epoch).Msg("failed to convert timestamp to utc")

		response.WithError(writer, err)

		return
	}

	response.WithResult(writer, http.StatusOK, res)
}

// TimestampToLocal renders Unix seconds in the local timezone.
// @Summary Convert a Unix timestamp to local time
// @Tags Time
// @Produce json
// @Param epoch path int true "Unix seconds"
// @Param output_format query string false "Output pattern, or the presets date and datetime"
// @Success 200 {object} response.Data[dto.ConversionResponse]
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/time/timestamps/{epoch}/local [get]
func (handler *Handler) TimestampToLocal(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".TimestampToLocal")
	defer scope.End()

	epoch, err := parseEpoch(request)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	outputFormat := request.URL.Query().Get(constant.RequestParamOutputFormat)
	if err := validator.ValidateVar(outputFormat, "omitempty,pattern"); err != nil {
		scope.TraceError(err)
		response.WithError(writer, failure.InvalidOutputFormat)

		return
	}

	res, err := handler.service.TimestampToLocal(ctx, epoch, outputFormat)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("epoch", epoch).Msg("failed to convert timestamp to local")

		response.WithError(writer, err)

		return
	}

	response.WithResult(writer, http.StatusOK, res)
}

// UTCToLocal renders an absolute ISO-8601 instant in the local timezone.
// @Summary Convert a UTC instant to local time
// @Tags Time
// @Accept json
// @Produce json
// @Param request body dto.UTCToLocalRequest true "UTC instant"
// @Success 200 {object} response.Data[dto.ConversionResponse]
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/time/utc-to-local [post]
func (handler *Handler) UTCToLocal(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UTCToLocal")
	defer scope.End()

	req := dto.UTCToLocalRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.UTCToLocal(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to convert utc to local")

		response.WithError(writer, err)

		return
	}

	response.WithResult(writer, http.StatusOK, res)
}

// ToUTC reads wall-clock text of a timezone and renders it in UTC.
// @Summary Convert a date in a timezone to UTC
// @Description An offset embedded through the input format wins over input_timezone.
// @Tags Time
// @Accept json
// @Produce json
// @Param request body dto.ToUTCRequest true "Input time, its pattern and its timezone"
// @Success 200 {object} response.Data[dto.ConversionResponse]
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/time/to-utc [post]
func (handler *Handler) ToUTC(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ToUTC")
	defer scope.End()

	req := dto.ToUTCRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.ToUTC(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("input_timezone", req.InputTimezone).Msg("failed to convert to utc")

		response.WithError(writer, err)

		return
	}

	response.WithResult(writer, http.StatusOK, res)
}

// ToLocal reads wall-clock text of a timezone and renders it in the local timezone.
// @Summary Convert a date in a timezone to local time
// @Tags Time
// @Accept json
// @Produce json
// @Param request body dto.ToLocalRequest true "Input time, its pattern and its timezone"
// @Success 200 {object} response.Data[dto.ConversionResponse]
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/time/to-local [post]
func (handler *Handler) ToLocal(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ToLocal")
	defer scope.End()

	req := dto.ToLocalRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.ToLocal(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("input_timezone", req.InputTimezone).Msg("failed to convert to local")

		response.WithError(writer, err)

		return
	}

	response.WithResult(writer, http.StatusOK, res)
}

// ToLocalTimezone reprojects a time into the local timezone and labels it.
// @Summary Label a time with the local timezone
// @Description Returns "<local timezone>: <default pattern>", e.g. "Asia/Shanghai: 2020年05月20日 17:00:00".
// @Tags Time
// @Accept json
// @Produce json
// @Param request body dto.ToLocalTimezoneRequest true "Free-form text, formatted text or epoch seconds"
// @Success 200 {object} response.Data[dto.ConversionResponse]
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/time/to-local-timezone [post]
func (handler *Handler) ToLocalTimezone(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ToLocalTimezone")
	defer scope.End()

	req := dto.ToLocalTimezoneRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.ToLocalTimezone(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("input_timezone", req.InputTimezone).Msg("failed to label local timezone")

		response.WithError(writer, err)

		return
	}

	response.WithResult(writer, http.StatusOK, res)
}

// Format recognises a date without an explicit pattern and re-renders it locally.
// @Summary Reformat a free-form date
// @Description Numeric dates such as 05/06/2020 read month first unless APP_DAY_FIRST is set.
// @Tags Time
// @Accept json
// @Produce json
// @Param request body dto.FormatRequest true "Free-form date"
// @Success 200 {object} response.Data[dto.ConversionResponse]
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/time/format [post]
func (handler *Handler) Format(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Format")
	defer scope.End()

	req := dto.FormatRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Format(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to format date")

		response.WithError(writer, err)

		return
	}

	response.WithResult(writer, http.StatusOK, res)
}

func parseEpoch(request *http.Request) (int64, error) {
	epoch, err := strconv.ParseInt(chi.URLParam(request, constant.RequestParamEpoch), 10, 64)
	if err != nil {
		return 0, failure.InvalidEpochParam
	}

	return epoch, nil
}
