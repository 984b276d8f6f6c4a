package config

const (
	EnvPrefix = "modernstore"

	AppEnvDev  = "dev"
	AppEnvProd = "production"

	EnvAppEnv          = "MODERNSTORE_APP_ENV"
	EnvPort            = "MODERNSTORE_APP_PORT"
	EnvLogLevel        = "MODERNSTORE_LOG_LEVEL"
	EnvCORSOrigins     = "MODERNSTORE_CORS_ORIGINS"
	EnvSessionCookie   = "MODERNSTORE_SESSION_COOKIE"
	EnvSessionTTL      = "MODERNSTORE_SESSION_TTL"
	EnvFreeShipping    = "MODERNSTORE_FREE_SHIPPING_THRESHOLD_CENTS"
	EnvShippingFee     = "MODERNSTORE_SHIPPING_FEE_CENTS"
	EnvTaxRate         = "MODERNSTORE_TAX_RATE"
	EnvProcessingDelay = "MODERNSTORE_CHECKOUT_PROCESSING_DELAY"
)
