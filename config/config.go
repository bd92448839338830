package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ErrNotInitialized is returned when the backend connection parameters are
// missing from the environment.
var ErrNotInitialized = errors.New("backend not initialized: BACKEND_BASE_URL is required")

type Config struct {
	App     AppConfig
	Backend BackendConfig
	Redis   RedisConfig
	JWT     JWTConfig
}

type AppConfig struct {
	Port string
	Env  string
	// AllowedOrigins is the CORS allowlist; "*" allows any origin.
	AllowedOrigins []string
}

// BackendConfig holds connection parameters for the external data service
// and authentication provider.
type BackendConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// .env is optional in deployed environments; real env vars win either way.
	_ = viper.ReadInConfig()

	if viper.GetString("BACKEND_BASE_URL") == "" {
		return nil, ErrNotInitialized
	}

	backendTimeout, err := time.ParseDuration(viper.GetString("BACKEND_TIMEOUT"))
	if err != nil {
		backendTimeout = 15 * time.Second
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(viper.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	allowedOrigins := strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",")
	for i := range allowedOrigins {
		allowedOrigins[i] = strings.TrimSpace(allowedOrigins[i])
	}

	config := &Config{
		App: AppConfig{
			Port:           viper.GetString("APP_PORT"),
			Env:            viper.GetString("APP_ENV"),
			AllowedOrigins: allowedOrigins,
		},
		Backend: BackendConfig{
			BaseURL: viper.GetString("BACKEND_BASE_URL"),
			APIKey:  viper.GetString("BACKEND_API_KEY"),
			Timeout: backendTimeout,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
		},
	}

	if config.App.Port == "" {
		config.App.Port = "8080"
	}
	if viper.GetString("CORS_ALLOWED_ORIGINS") == "" {
		config.App.AllowedOrigins = []string{"*"}
	}

	return config, nil
}
