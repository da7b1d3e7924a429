package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"social-analytics-srv/config"
	configKafka "social-analytics-srv/config/kafka"
	configMongo "social-analytics-srv/config/mongo"
	configRedis "social-analytics-srv/config/redis"
	_ "social-analytics-srv/docs" // Import swagger docs
	"social-analytics-srv/internal/httpserver"
	"social-analytics-srv/pkg/discord"
	"social-analytics-srv/pkg/log"
)

// @title       Social Media Analytics API
// @description Read-only analytics over collected social-media posts.
// @version     1
// @BasePath    /
func main() {
	os.Exit(run())
}

func run() int {
	// 1. Load configuration
	// Reads config from YAML file and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return 1
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
	defer logger.Sync()

	ctx := context.Background()

	// 3. Initialize MongoDB
	mongoClient, err := configMongo.Connect(ctx, cfg.MongoDB)
	if err != nil {
		logger.Error(ctx, "Failed to connect to MongoDB: ", err)
		return 1
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := configMongo.Disconnect(disconnectCtx, mongoClient); err != nil {
			logger.Errorf(ctx, "Failed to disconnect MongoDB: %v", err)
			return
		}
		logger.Info(ctx, "MongoDB disconnected")
	}()
	logger.Infof(ctx, "MongoDB connected successfully to %s.%s", cfg.MongoDB.Database, cfg.MongoDB.Collection)

	// 4. Initialize Discord (optional)
	var discordClient discord.IDiscord
	if cfg.Discord.WebhookID != "" {
		discordClient, err = discord.New(logger, &discord.DiscordWebhook{
			ID:    cfg.Discord.WebhookID,
			Token: cfg.Discord.WebhookToken,
		})
		if err != nil {
			logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
			discordClient = nil // Continue without Discord
		} else {
			defer discordClient.Close()
			logger.Infof(ctx, "Discord webhook initialized successfully")
		}
	}

	// 5. Initialize Redis (optional, shared rate limiting)
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Warnf(ctx, "Redis unavailable, falling back to local rate limiting: %v", err)
		redisClient = nil
	} else if redisClient != nil {
		defer configRedis.Disconnect(redisClient)
		logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)
	}

	// 6. Initialize Kafka producer (optional, export events)
	kafkaProducer, err := configKafka.Connect(cfg.Kafka)
	if err != nil {
		logger.Warnf(ctx, "Kafka unavailable, export events disabled: %v", err)
		kafkaProducer = nil
	} else if kafkaProducer != nil {
		defer configKafka.Disconnect(kafkaProducer)
		logger.Infof(ctx, "Kafka producer initialized for topic %s", cfg.Kafka.Topic)
	}

	// 7. Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Logger:          logger,
		Host:            cfg.HTTPServer.Host,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,

		// Database Configuration
		MongoClient: mongoClient,
		PostsColl:   configMongo.Collection(mongoClient, cfg.MongoDB),

		RedisClient:   redisClient,
		KafkaProducer: kafkaProducer,
		Config:        cfg,

		// Monitoring & Notification Configuration
		Discord: discordClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return 1
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return 1
	}
	return 0
}
