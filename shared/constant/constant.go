package constant

const (
	RequestParamEpoch        = "epoch"
	RequestParamOutputFormat = "output_format"
)

const (
	// OutputPresetDate and OutputPresetDateTime name the configured default patterns in
	// place of a literal output format.
	OutputPresetDate     = "date"
	OutputPresetDateTime = "datetime"
)

const (
	CacheKeyConversion = "conversion"
)

const (
	OtelServiceScopeName = "service"
	OtelHandlerScopeName = "handler"
	OtelHTTPScopeName    = "http"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Asterix = "*"
)
