package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Services ServicesConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port int
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// ServicesConfig locates the remote services that own user and product data.
// FetchTimeout bounds every single detail fetch.
type ServicesConfig struct {
	UserServiceURL    string
	ProductServiceURL string
	FetchTimeout      time.Duration
}

type LogConfig struct {
	Level string
}

// Load reads configuration from environment variables, optionally merged over
// a yaml file when path is non-empty.
func Load(path string) (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", 3003)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", 3306)
	viper.SetDefault("DB_USER", "ordersvc")
	viper.SetDefault("DB_PASSWORD", "secret")
	viper.SetDefault("DB_NAME", "microservices_db")
	viper.SetDefault("DB_MAX_OPEN_CONNS", 25)
	viper.SetDefault("DB_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DB_CONN_MAX_LIFETIME", "5m")
	viper.SetDefault("USER_SERVICE_URL", "http://user-service:3001")
	viper.SetDefault("PRODUCT_SERVICE_URL", "http://product-service:3002")
	viper.SetDefault("FETCH_TIMEOUT", "5s")
	viper.SetDefault("LOG_LEVEL", "info")

	if path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	connMaxLifetime, err := time.ParseDuration(viper.GetString("DB_CONN_MAX_LIFETIME"))
	if err != nil {
		return nil, fmt.Errorf("parsing DB_CONN_MAX_LIFETIME: %w", err)
	}

	fetchTimeout, err := time.ParseDuration(viper.GetString("FETCH_TIMEOUT"))
	if err != nil {
		return nil, fmt.Errorf("parsing FETCH_TIMEOUT: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetInt("SERVER_PORT"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			Name:            viper.GetString("DB_NAME"),
			MaxOpenConns:    viper.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: connMaxLifetime,
		},
		Services: ServicesConfig{
			UserServiceURL:    viper.GetString("USER_SERVICE_URL"),
			ProductServiceURL: viper.GetString("PRODUCT_SERVICE_URL"),
			FetchTimeout:      fetchTimeout,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	return cfg, nil
}
