package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Cache      CacheConfig
	Log        LogConfig
	Worker     WorkerConfig
	Optimizer  OptimizerConfig
	Validation ValidationConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	StatusTTL time.Duration
}

type LogConfig struct {
	Level string
}

type WorkerConfig struct {
	Enabled           bool
	ConsumerGroup     string
	StreamReadTimeout time.Duration
	BatchSize         int
	MaxRetries        int
	PollInterval      time.Duration
	PollTimeout       time.Duration
}

type OptimizerConfig struct {
	BaseURL   string
	Timeout   time.Duration
	RateLimit float64 // requests per second
	Burst     int
}

type ValidationConfig struct {
	MaxRadiusKm            float64
	DefaultTimeWindowStart string
	DefaultTimeWindowEnd   string
	DefaultServiceTime     int // minutes
}

// Load reads .env (when present) into the environment and builds the config from it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return FromViper(viper.GetViper()), nil
}

// FromViper builds the config from v with AutomaticEnv enabled and defaults applied.
func FromViper(v *viper.Viper) *Config {
	v.AutomaticEnv()
	setDefaults(v)

	return &Config{
		Server: ServerConfig{
			Host: v.GetString("API_HOST"),
			Port: v.GetInt("API_PORT"),
			Env:  v.GetString("API_ENV"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			DBName:          v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxConns:        v.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(v.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			StatusTTL: time.Duration(v.GetInt("STATUS_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Worker: WorkerConfig{
			Enabled:           v.GetBool("WORKER_ENABLED"),
			ConsumerGroup:     v.GetString("WORKER_CONSUMER_GROUP"),
			StreamReadTimeout: time.Duration(v.GetInt("WORKER_STREAM_READ_TIMEOUT")) * time.Millisecond,
			BatchSize:         v.GetInt("WORKER_BATCH_SIZE"),
			MaxRetries:        v.GetInt("WORKER_MAX_RETRIES"),
			PollInterval:      time.Duration(v.GetInt("WORKER_POLL_INTERVAL")) * time.Millisecond,
			PollTimeout:       time.Duration(v.GetInt("WORKER_POLL_TIMEOUT")) * time.Second,
		},
		Optimizer: OptimizerConfig{
			BaseURL:   v.GetString("OPTIMIZER_URL"),
			Timeout:   time.Duration(v.GetInt("OPTIMIZER_TIMEOUT")) * time.Second,
			RateLimit: v.GetFloat64("OPTIMIZER_RATE_LIMIT"),
			Burst:     v.GetInt("OPTIMIZER_BURST"),
		},
		Validation: ValidationConfig{
			MaxRadiusKm:            v.GetFloat64("MAX_RADIUS_KM"),
			DefaultTimeWindowStart: v.GetString("DEFAULT_TIME_WINDOW_START"),
			DefaultTimeWindowEnd:   v.GetString("DEFAULT_TIME_WINDOW_END"),
			DefaultServiceTime:     v.GetInt("DEFAULT_SERVICE_TIME"),
		},
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 8080)
	v.SetDefault("API_ENV", "development")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "collection_routing")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", 300)
	v.SetDefault("DB_CONN_MAX_IDLE_TIME", 60)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)

	v.SetDefault("STATUS_CACHE_TTL", 3600)
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("WORKER_ENABLED", true)
	v.SetDefault("WORKER_CONSUMER_GROUP", "optimization-status-workers")
	v.SetDefault("WORKER_STREAM_READ_TIMEOUT", 5000)
	v.SetDefault("WORKER_BATCH_SIZE", 10)
	v.SetDefault("WORKER_MAX_RETRIES", 3)
	v.SetDefault("WORKER_POLL_INTERVAL", 2000)
	v.SetDefault("WORKER_POLL_TIMEOUT", 600)

	v.SetDefault("OPTIMIZER_URL", "http://localhost:8000")
	v.SetDefault("OPTIMIZER_TIMEOUT", 30)
	v.SetDefault("OPTIMIZER_RATE_LIMIT", 5)
	v.SetDefault("OPTIMIZER_BURST", 5)

	v.SetDefault("MAX_RADIUS_KM", 50)
	v.SetDefault("DEFAULT_TIME_WINDOW_START", "08:00")
	v.SetDefault("DEFAULT_TIME_WINDOW_END", "18:00")
	v.SetDefault("DEFAULT_SERVICE_TIME", 5)
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
