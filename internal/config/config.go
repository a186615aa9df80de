package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config contains server configuration parameters.
type Config struct {
	LogLevel int     `env:"LOG_LEVEL" envDefault:"0"`
	HTTP     HTTP    `envPrefix:"HTTP_"`
	JWT      JWT     `envPrefix:"JWT_"`
	Storage  Storage `envPrefix:"STORAGE_"`
	CORS     CORS    `envPrefix:"CORS_"`
}

// HTTP contains HTTP server parameters.
type HTTP struct {
	Port               string `env:"PORT" envDefault:"5000"`
	EnableHTTPS        bool   `env:"ENABLE_HTTPS" envDefault:"false"`
	CertFileName       string `env:"CERT_FILE_NAME" envDefault:"cert.pem"`
	PrivateKeyFileName string `env:"PRIVATE_KEY_FILE_NAME" envDefault:"key.pem"`
}

// JWT contains token signing parameters.
type JWT struct {
	Secret string `env:"SECRET" envDefault:"devsecret"`
}

// Storage contains record store parameters.
type Storage struct {
	DataDir string `env:"DATA_DIR" envDefault:"data"`
}

// CORS contains cross-origin request parameters.
type CORS struct {
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"*"`
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
