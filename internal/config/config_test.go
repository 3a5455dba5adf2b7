package config

import (
	"os"
	"sync"
	"testing"
)

// envMutex serializes environment mutation across parallel subtests
var envMutex sync.Mutex

// configEnvVars is every variable Load reads
var configEnvVars = []string{
	"SERVER_PORT",
	"FRONTEND_URL",
	"ENABLE_HSTS",
	"RATE_LIMIT",
	"REDIS_URL",
	"SERVER_DEBUG_MODE",
	"OTEL_ENABLED",
	"OTEL_EXPORTER_OTLP_ENDPOINT",
}

// loadWithEnv calls Load with exactly the given variables set. The env
// mutex is held across mutate-load-restore so parallel subtests cannot
// observe each other's environment.
func loadWithEnv(t *testing.T, vars map[string]string) (*Config, error) {
	t.Helper()

	envMutex.Lock()
	defer envMutex.Unlock()

	saved := make(map[string]string, len(configEnvVars))
	for _, key := range configEnvVars {
		saved[key] = os.Getenv(key)
		_ = os.Unsetenv(key) // Ignore error in test setup
	}
	for key, value := range vars {
		_ = os.Setenv(key, value) // Ignore error in test setup
	}

	cfg, err := Load()

	for key, value := range saved {
		if value != "" {
			_ = os.Setenv(key, value) // Ignore error in test cleanup
		} else {
			_ = os.Unsetenv(key) // Ignore error in test cleanup
		}
	}

	return cfg, err
}

func TestLoad(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		envVars     map[string]string
		expectError bool
		validate    func(*testing.T, *Config)
	}{
		{
			name:    "all defaults",
			envVars: nil,
			validate: func(t *testing.T, cfg *Config) {
				if cfg.ServerPort != "8080" {
					t.Errorf("Expected default ServerPort '8080', got '%s'", cfg.ServerPort)
				}
				if cfg.FrontendURL != "http://localhost:3000" {
					t.Errorf("Expected default FrontendURL 'http://localhost:3000', got '%s'", cfg.FrontendURL)
				}
				if cfg.RateLimit != "20-S" {
					t.Errorf("Expected default RateLimit '20-S', got '%s'", cfg.RateLimit)
				}
				if cfg.RedisURL != "" {
					t.Errorf("Expected default RedisURL to be empty, got '%s'", cfg.RedisURL)
				}
				if cfg.EnableHSTS || cfg.ServerDebugMode || cfg.OTELEnabled {
					t.Error("Expected all boolean settings to default to false")
				}
			},
		},
		{
			name: "explicit values",
			envVars: map[string]string{
				"SERVER_PORT":                 "9090",
				"FRONTEND_URL":                "https://pets.example.com",
				"ENABLE_HSTS":                 "true",
				"RATE_LIMIT":                  "100-M",
				"REDIS_URL":                   "redis://localhost:6379/0",
				"SERVER_DEBUG_MODE":           "1",
				"OTEL_ENABLED":                "yes",
				"OTEL_EXPORTER_OTLP_ENDPOINT": "otel-collector:4318",
			},
			validate: func(t *testing.T, cfg *Config) {
				if cfg.ServerPort != "9090" {
					t.Errorf("Expected ServerPort '9090', got '%s'", cfg.ServerPort)
				}
				if cfg.FrontendURL != "https://pets.example.com" {
					t.Errorf("Expected FrontendURL 'https://pets.example.com', got '%s'", cfg.FrontendURL)
				}
				if cfg.RateLimit != "100-M" {
					t.Errorf("Expected RateLimit '100-M', got '%s'", cfg.RateLimit)
				}
				if cfg.RedisURL != "redis://localhost:6379/0" {
					t.Errorf("Expected RedisURL 'redis://localhost:6379/0', got '%s'", cfg.RedisURL)
				}
				if !cfg.EnableHSTS || !cfg.ServerDebugMode || !cfg.OTELEnabled {
					t.Error("Expected all boolean settings to be true")
				}
				if cfg.OTELEndpoint != "otel-collector:4318" {
					t.Errorf("Expected OTELEndpoint 'otel-collector:4318', got '%s'", cfg.OTELEndpoint)
				}
			},
		},
		{
			name:        "non-numeric port",
			envVars:     map[string]string{"SERVER_PORT": "eighty"},
			expectError: true,
		},
		{
			name:        "port zero",
			envVars:     map[string]string{"SERVER_PORT": "0"},
			expectError: true,
		},
		{
			name:        "port out of range",
			envVars:     map[string]string{"SERVER_PORT": "70000"},
			expectError: true,
		},
		{
			name:    "highest valid port",
			envVars: map[string]string{"SERVER_PORT": "65535"},
			validate: func(t *testing.T, cfg *Config) {
				if cfg.ServerPort != "65535" {
					t.Errorf("Expected ServerPort '65535', got '%s'", cfg.ServerPort)
				}
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := loadWithEnv(t, tt.envVars)

			if tt.expectError {
				if err == nil {
					t.Error("Expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if cfg == nil {
				t.Fatal("Config is nil")
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

// The getEnv tests use keys of their own, disjoint from configEnvVars,
// so they need no coordination with TestLoad.

func TestGetEnv(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		key          string
		value        string
		defaultValue string
		want         string
	}{
		{"env var set", "PAWLOG_TEST_STRING_SET", "custom", "default", "custom"},
		{"env var not set", "PAWLOG_TEST_STRING_UNSET", "", "default", "default"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if tt.value != "" {
				_ = os.Setenv(tt.key, tt.value) // Ignore error in test setup
				defer func() {
					_ = os.Unsetenv(tt.key) // Ignore error in test cleanup
				}()
			}

			if got := getEnv(tt.key, tt.defaultValue); got != tt.want {
				t.Errorf("getEnv(%s, %s) = %s, want %s", tt.key, tt.defaultValue, got, tt.want)
			}
		})
	}
}

func TestGetEnvBool(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		key          string
		value        string
		defaultValue bool
		want         bool
	}{
		{"'true' is truthy", "PAWLOG_TEST_BOOL_TRUE", "true", false, true},
		{"'1' is truthy", "PAWLOG_TEST_BOOL_ONE", "1", false, true},
		{"'yes' is truthy", "PAWLOG_TEST_BOOL_YES", "yes", false, true},
		{"'false' overrides a true default", "PAWLOG_TEST_BOOL_FALSE", "false", true, false},
		{"'no' is not truthy", "PAWLOG_TEST_BOOL_NO", "no", false, false},
		{"unset falls back to the default", "PAWLOG_TEST_BOOL_UNSET", "", true, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if tt.value != "" {
				_ = os.Setenv(tt.key, tt.value) // Ignore error in test setup
				defer func() {
					_ = os.Unsetenv(tt.key) // Ignore error in test cleanup
				}()
			}

			if got := getEnvBool(tt.key, tt.defaultValue); got != tt.want {
				t.Errorf("getEnvBool(%s, %v) = %v, want %v", tt.key, tt.defaultValue, got, tt.want)
			}
		})
	}
}
