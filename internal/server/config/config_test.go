package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if cfg.EndpointAddr != ":8080" {
		t.Errorf("EndpointAddr = %q", cfg.EndpointAddr)
	}
	if cfg.SessionValidityDuration != 24*time.Hour {
		t.Errorf("SessionValidityDuration = %v", cfg.SessionValidityDuration)
	}
	if cfg.CensorChar != "*" {
		t.Errorf("CensorChar = %q", cfg.CensorChar)
	}
	if cfg.BadWordsAPIKey != "" {
		t.Error("the moderation API key must have no default")
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()
	cfg.SessionSecret = "s"
	cfg.BadWordsAPIKey = "k"

	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg.BadWordsAPIKey = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("missing moderation API key must fail validation")
	}

	cfg.BadWordsAPIKey = "k"
	cfg.SessionSecret = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("missing session secret must fail validation")
	}
}

func TestParseEnvOverlay(t *testing.T) {
	t.Setenv("DATABASE_DSN", "postgres://env/dsn")
	t.Setenv("SESSION_SECRET", "env-secret")
	t.Setenv("BAD_WORDS_API_KEY", "env-key")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	if cfg.DatabaseDSN != "postgres://env/dsn" {
		t.Errorf("DatabaseDSN = %q", cfg.DatabaseDSN)
	}
	if cfg.SessionSecret != "env-secret" || cfg.BadWordsAPIKey != "env-key" {
		t.Errorf("secrets not overlaid: %+v", cfg)
	}
}

func TestParseJsonOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	data := `{
		"endpoint_addr": ":9090",
		"session_validity_duration": "12h",
		"censor_char": "#"
	}`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	oldArgs := os.Args
	os.Args = []string{"test", "-c", path}
	defer func() { os.Args = oldArgs }()

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	if cfg.EndpointAddr != ":9090" {
		t.Errorf("EndpointAddr = %q", cfg.EndpointAddr)
	}
	if cfg.SessionValidityDuration != 12*time.Hour {
		t.Errorf("SessionValidityDuration = %v", cfg.SessionValidityDuration)
	}
	if cfg.CensorChar != "#" {
		t.Errorf("CensorChar = %q", cfg.CensorChar)
	}
	// untouched fields keep their defaults
	if cfg.DatabaseDSN == "" {
		t.Error("default DSN lost")
	}
}
