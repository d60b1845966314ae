package config

import (
	"os"
	"testing"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		setup   func()
		cleanup func()
		wantErr bool
	}{
		{
			name: "load with defaults",
			setup: func() {
				os.Unsetenv("POS_API_BASE_URL")
				os.Unsetenv("POS_MOCK_MODE")
			},
			cleanup: func() {},
			wantErr: false,
		},
		{
			name: "load with environment variables",
			setup: func() {
				os.Setenv("POS_API_BASE_URL", "https://api.example.test/api")
				os.Setenv("POS_TENANT_ID", "tenant-9")
			},
			cleanup: func() {
				os.Unsetenv("POS_API_BASE_URL")
				os.Unsetenv("POS_TENANT_ID")
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.cleanup()

			cfg, err := Load()
			if (err != nil) != tt.wantErr {
				t.Errorf("Load() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr {
				if cfg == nil {
					t.Error("Load() returned nil config")
					return
				}

				if cfg.API.BaseURL == "" {
					t.Error("API base URL not set")
				}
				if cfg.API.TimeoutSeconds <= 0 {
					t.Error("API timeout not set")
				}
			}
		})
	}
}

func TestLoad_EnvOverridesBaseURL(t *testing.T) {
	os.Setenv("POS_API_BASE_URL", "https://staging.example.test/api")
	defer os.Unsetenv("POS_API_BASE_URL")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.API.BaseURL != "https://staging.example.test/api" {
		t.Errorf("expected env base URL, got %q", cfg.API.BaseURL)
	}
}

func TestLoad_MockModeFromEnv(t *testing.T) {
	os.Setenv("POS_MOCK_MODE", "true")
	defer os.Unsetenv("POS_MOCK_MODE")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !cfg.API.MockMode {
		t.Error("expected mock mode to be enabled from environment")
	}
}
