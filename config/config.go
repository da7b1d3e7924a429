package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig
	RateLimit  RateLimitConfig

	// MongoDB - Posts collection
	MongoDB MongoDBConfig

	// Redis - Distributed rate limiting (optional)
	Redis RedisConfig

	// Kafka - Export audit events (optional)
	Kafka KafkaConfig

	// Monitoring & Notification Configuration
	Discord DiscordConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// IsProduction reports whether the service runs in the production environment.
func (e EnvironmentConfig) IsProduction() bool {
	return e.Name == "production"
}

// HTTPServerConfig is the configuration for the HTTP server
type HTTPServerConfig struct {
	Host            string
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// CORSConfig lists the origins allowed to call the API. "*" allows any origin.
type CORSConfig struct {
	AllowedOrigins []string
}

// RateLimitConfig bounds requests per client IP.
type RateLimitConfig struct {
	Enabled  bool
	Requests int
	Window   time.Duration
}

// MongoDBConfig is the configuration for MongoDB
type MongoDBConfig struct {
	URI        string
	Database   string
	Collection string
	Timeout    time.Duration // implicit per-operation timeout
}

// RedisConfig is the configuration for Redis. Empty Host disables Redis.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// KafkaConfig is the configuration for Kafka. No brokers disables publishing.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

type DiscordConfig struct {
	WebhookID    string
	WebhookToken string
}

// Load loads configuration using Viper
func Load() (*Config, error) {
	v := viper.New()

	// Set config file name and paths
	v.SetConfigName("analytics-config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/social-analytics/")

	// Enable environment variable override
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults
	setDefaults(v)

	// Read config file (optional - will use env vars if file not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return build(v)
}

func build(v *viper.Viper) (*Config, error) {
	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Host = v.GetString("http_server.host")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = time.Duration(v.GetInt("http_server.shutdown_timeout")) * time.Second
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// CORS & rate limit
	cfg.CORS.AllowedOrigins = v.GetStringSlice("cors.allowed_origins")
	cfg.RateLimit.Enabled = v.GetBool("rate_limit.enabled")
	cfg.RateLimit.Requests = v.GetInt("rate_limit.requests")
	cfg.RateLimit.Window = time.Duration(v.GetInt("rate_limit.window")) * time.Second

	// MongoDB - the bare MONGODB_URI / DB_NAME variables are honoured as well
	cfg.MongoDB.URI = firstNonEmpty(v.GetString("mongodb.uri"), v.GetString("MONGODB_URI"))
	cfg.MongoDB.Database = firstNonEmpty(v.GetString("DB_NAME"), v.GetString("mongodb.database"))
	cfg.MongoDB.Collection = v.GetString("mongodb.collection")
	cfg.MongoDB.Timeout = time.Duration(v.GetInt("mongodb.timeout")) * time.Second

	// Redis - Rate limiting
	cfg.Redis.Host = v.GetString("redis.host")
	cfg.Redis.Port = v.GetInt("redis.port")
	cfg.Redis.Password = v.GetString("redis.password")
	cfg.Redis.DB = v.GetInt("redis.db")

	// Kafka - Event publishing (optional)
	cfg.Kafka.Brokers = v.GetStringSlice("kafka.brokers")
	cfg.Kafka.Topic = v.GetString("kafka.topic")

	// Discord
	cfg.Discord.WebhookID = v.GetString("discord.webhook_id")
	cfg.Discord.WebhookToken = v.GetString("discord.webhook_token")

	// Validate required fields
	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Environment
	v.SetDefault("environment.name", "production")

	// HTTP Server
	v.SetDefault("http_server.host", "")
	v.SetDefault("http_server.port", 5000)
	v.SetDefault("http_server.mode", "release")
	v.SetDefault("http_server.shutdown_timeout", 15)

	// Logger
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", "production")
	v.SetDefault("logger.encoding", "json")
	v.SetDefault("logger.color_enabled", false)

	// CORS & rate limit
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests", 300)
	v.SetDefault("rate_limit.window", 60)

	// 1. MongoDB
	v.SetDefault("mongodb.database", "social_media_analytics")
	v.SetDefault("mongodb.collection", "posts")
	v.SetDefault("mongodb.timeout", 10)

	// 2. Redis (disabled unless redis.host is set)
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.db", 0)

	// 3. Kafka (disabled unless kafka.brokers is set)
	v.SetDefault("kafka.topic", "analytics.export.completed")
}

func validate(cfg *Config) error {
	if cfg.MongoDB.URI == "" {
		return fmt.Errorf("mongodb.uri is required (set MONGODB_URI)")
	}
	if cfg.MongoDB.Database == "" {
		return fmt.Errorf("mongodb.database is required")
	}
	if cfg.MongoDB.Collection == "" {
		return fmt.Errorf("mongodb.collection is required")
	}
	if cfg.MongoDB.Timeout <= 0 {
		return fmt.Errorf("mongodb.timeout must be greater than 0")
	}

	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port must be between 1 and 65535")
	}

	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.Requests <= 0 {
			return fmt.Errorf("rate_limit.requests must be greater than 0")
		}
		if cfg.RateLimit.Window <= 0 {
			return fmt.Errorf("rate_limit.window must be greater than 0")
		}
	}

	if len(cfg.Kafka.Brokers) > 0 && cfg.Kafka.Topic == "" {
		return fmt.Errorf("kafka.topic is required when kafka.brokers is set")
	}

	return nil
}

func firstNonEmpty(values ...string) string {
	for _, s := range values {
		if s != "" {
			return s
		}
	}
	return ""
}
