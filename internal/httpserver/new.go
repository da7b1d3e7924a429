package httpserver

import (
	"context"
	"errors"
	"time"

	"social-analytics-srv/config"
	configMongo "social-analytics-srv/config/mongo"
	"social-analytics-srv/pkg/discord"
	pkgKafka "social-analytics-srv/pkg/kafka"
	"social-analytics-srv/pkg/log"
	pkgRedis "social-analytics-srv/pkg/redis"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

type HTTPServer struct {
	// Server Configuration
	gin             *gin.Engine
	l               log.Logger
	host            string
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Database Configuration
	mongoClient *mongo.Client
	postsColl   *mongo.Collection
	pingDB      func(ctx context.Context) error

	// Rate limiting & events (optional)
	redisClient   pkgRedis.IRedis
	kafkaProducer pkgKafka.IProducer

	config *config.Config

	// Monitoring & Notification Configuration
	discord discord.IDiscord
}

type Config struct {
	// Server Configuration
	Logger          log.Logger
	Host            string
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	// Database Configuration
	MongoClient *mongo.Client
	PostsColl   *mongo.Collection

	// Rate limiting & events (optional)
	RedisClient   pkgRedis.IRedis
	KafkaProducer pkgKafka.IProducer

	Config *config.Config

	// Monitoring & Notification Configuration (optional)
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		// Server Configuration
		l:               logger,
		gin:             gin.New(),
		host:            cfg.Host,
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,

		// Database Configuration
		mongoClient: cfg.MongoClient,
		postsColl:   cfg.PostsColl,

		redisClient:   cfg.RedisClient,
		kafkaProducer: cfg.KafkaProducer,
		config:        cfg.Config,

		// Monitoring & Notification Configuration
		discord: cfg.Discord,
	}
	srv.pingDB = func(ctx context.Context) error {
		return configMongo.HealthCheck(ctx, srv.mongoClient)
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = defaultShutdownTimeout
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv HTTPServer) validate() error {
	// Server Configuration
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}

	// Database Configuration
	if srv.mongoClient == nil {
		return errors.New("mongoClient is required")
	}
	if srv.postsColl == nil {
		return errors.New("postsColl is required")
	}

	if srv.config == nil {
		return errors.New("config is required")
	}

	// Redis, Kafka and Discord are optional

	return nil
}
