package config

import (
	"strings"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_NAME", "APP_ENV", "APP_HOST", "APP_PORT", "APP_VERSION",
		"HTTP_REQUEST_TIMEOUT_SECONDS", "DATA_DIR", "LOG_LEVEL",
		"ADMIN_KEY", "ADMIN_ALLOW_INSECURE",
		"SMTP_HOST", "SMTP_PORT", "SMTP_USER", "SMTP_PASS", "FROM_EMAIL",
		"ADMIN_EMAIL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_RequiresAdminKey(t *testing.T) {
	clearEnv(t)

	if _, err := Load(); err == nil {
		t.Fatalf("expected error without ADMIN_KEY")
	} else if !strings.Contains(err.Error(), "ADMIN_KEY") {
		t.Fatalf("error should name the missing variable, got %q", err)
	}
}

func TestLoad_WithAdminKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("ADMIN_KEY", "secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Admin.Key != "secret" || cfg.Admin.AllowInsecure {
		t.Fatalf("unexpected admin config %+v", cfg.Admin)
	}
}

func TestLoad_InsecureOptIn(t *testing.T) {
	clearEnv(t)
	t.Setenv("ADMIN_ALLOW_INSECURE", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Admin.Key != "" || !cfg.Admin.AllowInsecure {
		t.Fatalf("unexpected admin config %+v", cfg.Admin)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("ADMIN_KEY", "secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.Port != "8080" || cfg.App.Addr() != "0.0.0.0:8080" {
		t.Fatalf("unexpected app config %+v", cfg.App)
	}
	if cfg.App.RequestTimeout() != 30*time.Second {
		t.Fatalf("unexpected timeout %v", cfg.App.RequestTimeout())
	}
	if cfg.Store.DataDir != "data" {
		t.Fatalf("unexpected data dir %q", cfg.Store.DataDir)
	}
	if cfg.Logger.Level != "info" {
		t.Fatalf("unexpected log level %q", cfg.Logger.Level)
	}
	if cfg.SMTP.Enabled() {
		t.Fatalf("mail must be disabled without SMTP settings")
	}
	if cfg.SMTP.Port != 587 || cfg.SMTP.From != "no-reply@glowstack.local" {
		t.Fatalf("unexpected smtp config %+v", cfg.SMTP)
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("ADMIN_KEY", "secret")
	t.Setenv("APP_PORT", "9000")
	t.Setenv("HTTP_REQUEST_TIMEOUT_SECONDS", "5")
	t.Setenv("DATA_DIR", "/var/lib/salon")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_USER", "mailer")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.Port != "9000" || cfg.App.RequestTimeout() != 5*time.Second {
		t.Fatalf("unexpected app config %+v", cfg.App)
	}
	if cfg.Store.DataDir != "/var/lib/salon" {
		t.Fatalf("unexpected data dir %q", cfg.Store.DataDir)
	}
	if !cfg.SMTP.Enabled() || cfg.SMTP.Addr() != "smtp.example.com:587" {
		t.Fatalf("unexpected smtp config %+v", cfg.SMTP)
	}
}

func TestLoad_BadNumbersFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("ADMIN_KEY", "secret")
	t.Setenv("SMTP_PORT", "not-a-number")
	t.Setenv("ADMIN_ALLOW_INSECURE", "definitely")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.SMTP.Port != 587 {
		t.Fatalf("unparseable int must fall back, got %d", cfg.SMTP.Port)
	}
	if cfg.Admin.AllowInsecure {
		t.Fatalf("unparseable bool must fall back")
	}
}
