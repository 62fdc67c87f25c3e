package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Verify defaults
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want %q", cfg.Server.Host, "0.0.0.0")
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 8080)
	}
	if cfg.Server.RequestTimeout != 60*time.Second {
		t.Errorf("Server.RequestTimeout = %v, want %v", cfg.Server.RequestTimeout, 60*time.Second)
	}
	if cfg.Ingest.MaxUploadSize != 33554432 {
		t.Errorf("Ingest.MaxUploadSize = %d, want %d", cfg.Ingest.MaxUploadSize, 33554432)
	}
	if !cfg.Rate.Enabled {
		t.Error("Rate.Enabled = false, want true")
	}
	if cfg.Rate.RequestsPerMinute != 100 {
		t.Errorf("Rate.RequestsPerMinute = %d, want %d", cfg.Rate.RequestsPerMinute, 100)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}
}

func TestLoad_OverrideDefaults(t *testing.T) {
	os.Setenv("SERVER_PORT", "9090")
	os.Setenv("INGEST_MAX_UPLOAD_SIZE", "1048576")
	os.Setenv("RATE_LIMIT_ENABLED", "false")
	os.Setenv("LOG_LEVEL", "debug")
	defer func() {
		os.Unsetenv("SERVER_PORT")
		os.Unsetenv("INGEST_MAX_UPLOAD_SIZE")
		os.Unsetenv("RATE_LIMIT_ENABLED")
		os.Unsetenv("LOG_LEVEL")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 9090)
	}
	if cfg.Ingest.MaxUploadSize != 1048576 {
		t.Errorf("Ingest.MaxUploadSize = %d, want %d", cfg.Ingest.MaxUploadSize, 1048576)
	}
	if cfg.Rate.Enabled {
		t.Error("Rate.Enabled = true, want false")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "port out of range",
			env:  map[string]string{"SERVER_PORT": "99999"},
		},
		{
			name: "port not a number",
			env:  map[string]string{"SERVER_PORT": "abc"},
		},
		{
			name: "bad duration",
			env:  map[string]string{"SERVER_READ_TIMEOUT": "fifteen"},
		},
		{
			name: "zero upload size",
			env:  map[string]string{"INGEST_MAX_UPLOAD_SIZE": "0"},
		},
		{
			name: "bad log level",
			env:  map[string]string{"LOG_LEVEL": "verbose"},
		},
		{
			name: "bad log format",
			env:  map[string]string{"LOG_FORMAT": "xml"},
		},
		{
			name: "rate limit zero while enabled",
			env:  map[string]string{"RATE_LIMIT_REQUESTS_PER_MINUTE": "0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				os.Setenv(k, v)
			}
			defer func() {
				for k := range tt.env {
					os.Unsetenv(k)
				}
			}()

			if _, err := Load(); err == nil {
				t.Error("Load() succeeded, want error")
			}
		})
	}
}

func TestAddr(t *testing.T) {
	tests := []struct {
		name string
		cfg  ServerConfig
		want string
	}{
		{name: "host and port", cfg: ServerConfig{Host: "127.0.0.1", Port: 8080}, want: "127.0.0.1:8080"},
		{name: "empty host", cfg: ServerConfig{Host: "", Port: 9090}, want: ":9090"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.Addr(); got != tt.want {
				t.Errorf("Addr() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestString_IncludesSections(t *testing.T) {
	cfg := MustLoad()
	s := cfg.String()
	for _, section := range []string{"Server", "Ingest", "Rate", "Logging"} {
		if !strings.Contains(s, section) {
			t.Errorf("String() missing %q section: %s", section, s)
		}
	}
}
