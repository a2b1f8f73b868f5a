package config

import (
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_DataModeValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("DATA_MODE", "offline")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid DATA_MODE")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("DATA_MODE", "")
	t.Setenv("UPTRACE_ENABLED", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.AppEnv != EnvDev {
		t.Fatalf("expected default APP_ENV=dev, got %q", cfg.AppEnv)
	}
	if cfg.DataMode != DataModeLive {
		t.Fatalf("expected default DATA_MODE=live, got %q", cfg.DataMode)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected default HTTPAddr: %q", cfg.HTTPAddr)
	}
	if cfg.FPLBaseURL != "https://fantasy.premierleague.com/api" {
		t.Fatalf("unexpected default FPLBaseURL: %q", cfg.FPLBaseURL)
	}
	if cfg.CacheTTL != 5*time.Minute {
		t.Fatalf("unexpected default CacheTTL: %s", cfg.CacheTTL)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("unexpected default CORS origins: %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoad_FPLClientSettings(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("FPL_TIMEOUT", "7s")
	t.Setenv("FPL_MAX_RETRIES", "4")
	t.Setenv("FPL_CIRCUIT_FAILURE_COUNT", "3")
	t.Setenv("FPL_CIRCUIT_OPEN_TIMEOUT", "30s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.FPLTimeout != 7*time.Second {
		t.Fatalf("unexpected FPLTimeout: %s", cfg.FPLTimeout)
	}
	if cfg.FPLMaxRetries != 4 {
		t.Fatalf("unexpected FPLMaxRetries: %d", cfg.FPLMaxRetries)
	}
	if cfg.FPLCircuitFailureCount != 3 {
		t.Fatalf("unexpected FPLCircuitFailureCount: %d", cfg.FPLCircuitFailureCount)
	}
	if cfg.FPLCircuitOpenTimeout != 30*time.Second {
		t.Fatalf("unexpected FPLCircuitOpenTimeout: %s", cfg.FPLCircuitOpenTimeout)
	}
}

func TestLoad_RejectsNegativeRetries(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("FPL_MAX_RETRIES", "-1")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for negative FPL_MAX_RETRIES")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_PyroscopeRequiresServerAddressWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_PprofDefaultsAddrWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("PPROF_ENABLED", "true")
	t.Setenv("PPROF_ADDR", "  ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PprofAddr != ":6060" {
		t.Fatalf("expected default pprof addr :6060, got %q", cfg.PprofAddr)
	}
}

func TestLoad_LogLevelParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("APP_LOG_LEVEL", "WARN")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.LogLevel.String() != "warn" {
		t.Fatalf("unexpected LogLevel: %s", cfg.LogLevel.String())
	}
}
