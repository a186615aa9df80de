package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_DefaultValues(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.LogLevel)
	assert.Equal(t, "5000", cfg.HTTP.Port)
	assert.Equal(t, false, cfg.HTTP.EnableHTTPS)
	assert.Equal(t, "cert.pem", cfg.HTTP.CertFileName)
	assert.Equal(t, "key.pem", cfg.HTTP.PrivateKeyFileName)
	assert.Equal(t, "devsecret", cfg.JWT.Secret)
	assert.Equal(t, "data", cfg.Storage.DataDir)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
}

func TestNewConfig_EnvironmentOverrides(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		expected func(*Config)
	}{
		{
			name: "log level override",
			envVars: map[string]string{
				"LOG_LEVEL": "2",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, 2, cfg.LogLevel)
			},
		},
		{
			name: "http config override",
			envVars: map[string]string{
				"HTTP_PORT":                  "8080",
				"HTTP_ENABLE_HTTPS":          "true",
				"HTTP_CERT_FILE_NAME":        "custom.pem",
				"HTTP_PRIVATE_KEY_FILE_NAME": "custom-key.pem",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, "8080", cfg.HTTP.Port)
				assert.Equal(t, true, cfg.HTTP.EnableHTTPS)
				assert.Equal(t, "custom.pem", cfg.HTTP.CertFileName)
				assert.Equal(t, "custom-key.pem", cfg.HTTP.PrivateKeyFileName)
			},
		},
		{
			name: "jwt config override",
			envVars: map[string]string{
				"JWT_SECRET": "customsecret",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, "customsecret", cfg.JWT.Secret)
			},
		},
		{
			name: "storage config override",
			envVars: map[string]string{
				"STORAGE_DATA_DIR": "/var/lib/spendtrack",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, "/var/lib/spendtrack", cfg.Storage.DataDir)
			},
		},
		{
			name: "cors config override",
			envVars: map[string]string{
				"CORS_ALLOWED_ORIGINS": "http://localhost:3000,https://app.example.com",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, []string{"http://localhost:3000", "https://app.example.com"}, cfg.CORS.AllowedOrigins)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.envVars {
				os.Setenv(key, value)
				defer os.Unsetenv(key)
			}

			cfg, err := NewConfig()
			require.NoError(t, err)

			tt.expected(cfg)
		})
	}
}
