package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	Session  SessionConfig
	Checkout CheckoutConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Checkout.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"MODERNSTORE_APP_ENV" required:"true"`
	Port         string `envconfig:"MODERNSTORE_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"MODERNSTORE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"MODERNSTORE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type HTTPConfig struct {
	CORSOrigins     []string      `envconfig:"MODERNSTORE_CORS_ORIGINS" default:"http://localhost:3000"`
	ReadTimeout     time.Duration `envconfig:"MODERNSTORE_HTTP_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"MODERNSTORE_HTTP_WRITE_TIMEOUT" default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"MODERNSTORE_HTTP_SHUTDOWN_TIMEOUT" default:"15s"`
}

type SessionConfig struct {
	CookieName string        `envconfig:"MODERNSTORE_SESSION_COOKIE" default:"ms_session"`
	TTL        time.Duration `envconfig:"MODERNSTORE_SESSION_TTL" default:"24h"`
	Secure     bool          `envconfig:"MODERNSTORE_SESSION_SECURE" default:"false"`
}

type CheckoutConfig struct {
	FreeShippingThresholdCents int           `envconfig:"MODERNSTORE_FREE_SHIPPING_THRESHOLD_CENTS" default:"5000"`
	ShippingFeeCents           int           `envconfig:"MODERNSTORE_SHIPPING_FEE_CENTS" default:"999"`
	TaxRate                    float64       `envconfig:"MODERNSTORE_TAX_RATE" default:"0.08"`
	ProcessingDelay            time.Duration `envconfig:"MODERNSTORE_CHECKOUT_PROCESSING_DELAY" default:"2s"`
}

func (c CheckoutConfig) validate() error {
	if c.FreeShippingThresholdCents < 0 {
		return fmt.Errorf("free shipping threshold must be non-negative")
	}
	if c.ShippingFeeCents < 0 {
		return fmt.Errorf("shipping fee must be non-negative")
	}
	if c.TaxRate < 0 || c.TaxRate >= 1 {
		return fmt.Errorf("tax rate must be within [0, 1)")
	}
	if c.ProcessingDelay < 0 {
		return fmt.Errorf("processing delay must be non-negative")
	}
	return nil
}
