package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Success(t *testing.T) {
	setMinimalEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.App.Env != "production" {
		t.Fatalf("expected App.Env to be production, got %q", cfg.App.Env)
	}

	if cfg.Checkout.FreeShippingThresholdCents != 5000 {
		t.Fatalf("unexpected free shipping threshold: %d", cfg.Checkout.FreeShippingThresholdCents)
	}

	if cfg.Checkout.TaxRate != 0.08 {
		t.Fatalf("unexpected tax rate: %v", cfg.Checkout.TaxRate)
	}

	if got := cfg.Checkout.ProcessingDelay; got != 2*time.Second {
		t.Fatalf("expected processing delay 2s, got %v", got)
	}

	if cfg.Session.CookieName != "ms_session" {
		t.Fatalf("unexpected session cookie %q", cfg.Session.CookieName)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	setMinimalEnv(t)
	if err := os.Unsetenv(EnvAppEnv); err != nil {
		t.Fatalf("failed to unset %s: %v", EnvAppEnv, err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("expected missing required env to return an error")
	}
}

func TestLoad_RejectsBadCheckoutValues(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv(EnvTaxRate, "1.5")

	if _, err := Load(); err == nil {
		t.Fatal("expected tax rate above 1 to be rejected")
	}
}

func setMinimalEnv(t *testing.T) {
	t.Helper()

	t.Setenv(EnvAppEnv, "production")
	t.Setenv(EnvPort, "8081")
	t.Setenv(EnvTaxRate, "0.08")
}

func TestAppConfigEnvHelpers(t *testing.T) {
	devConfig := AppConfig{Env: "DEV"}
	if !devConfig.IsDev() {
		t.Fatalf("expected IsDev true for %q", devConfig.Env)
	}
	if devConfig.IsProd() {
		t.Fatalf("expected IsProd false for %q", devConfig.Env)
	}

	prodConfig := AppConfig{Env: "Production"}
	if !prodConfig.IsProd() {
		t.Fatalf("expected IsProd true for %q", prodConfig.Env)
	}
	if prodConfig.IsDev() {
		t.Fatalf("expected IsDev false for %q", prodConfig.Env)
	}
}
