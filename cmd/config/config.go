package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
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

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type AuthConfig struct {
	JWTSecret      string
	JWTExpiration  time.Duration
	SessionExpTime time.Duration
}

type RabbitMQConfig struct {
	Host     string
	Port     int
	User     string
	Password string
}

type CacheConfig struct {
	FiltersTTL   time.Duration
	SavedCarsTTL time.Duration
}

type InternalConfig struct {
	APIKey  string
	BaseURL string
}

type Config struct {
	Environment string
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	Auth        AuthConfig
	RabbitMQ    RabbitMQConfig
	Cache       CacheConfig
	Internal    InternalConfig
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

// Load reads configuration from environment variables (a .env file is
// loaded first if present).
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Environment: getenv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:         getenv("SERVER_PORT", "8080"),
			ReadTimeout:  getenvDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout: getenvDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:  getenvDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getenv("DB_HOST", "localhost"),
			Port:            getenvInt("DB_PORT", 3306),
			User:            getenv("DB_USER", "root"),
			Password:        getenv("DB_PASSWORD", ""),
			Name:            getenv("DB_NAME", "car_marketplace"),
			MaxOpenConns:    getenvInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getenvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getenvDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Redis: RedisConfig{
			Host:     getenv("REDIS_HOST", "localhost"),
			Port:     getenvInt("REDIS_PORT", 6379),
			Password: getenv("REDIS_PASSWORD", ""),
			DB:       getenvInt("REDIS_DB", 0),
		},
		Auth: AuthConfig{
			JWTSecret:      getenv("JWT_SECRET", "secret"),
			JWTExpiration:  getenvDuration("JWT_EXPIRATION", 24*time.Hour),
			SessionExpTime: getenvDuration("SESSION_EXPIRATION", 24*time.Hour),
		},
		RabbitMQ: RabbitMQConfig{
			Host:     getenv("RABBITMQ_HOST", "localhost"),
			Port:     getenvInt("RABBITMQ_PORT", 5672),
			User:     getenv("RABBITMQ_USER", "guest"),
			Password: getenv("RABBITMQ_PASSWORD", "guest"),
		},
		Cache: CacheConfig{
			FiltersTTL:   getenvDuration("FILTERS_CACHE_TTL", 5*time.Minute),
			SavedCarsTTL: getenvDuration("SAVED_CARS_CACHE_TTL", 5*time.Minute),
		},
		Internal: InternalConfig{
			APIKey:  getenv("INTERNAL_API_KEY", ""),
			BaseURL: getenv("INTERNAL_API_BASEURL", "http://localhost:8080"),
		},
	}
}

// GetDSN builds the MySQL connection string.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4",
		c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Name)
}
