package config

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func newTestViper(env map[string]string) *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)
	for k, val := range env {
		v.Set(k, val)
	}
	return v
}

func TestBuildRequiresMongoURI(t *testing.T) {
	if _, err := build(newTestViper(nil)); err == nil {
		t.Fatal("expected error without mongodb.uri")
	}
}

func TestBuildDefaults(t *testing.T) {
	cfg, err := build(newTestViper(map[string]string{"MONGODB_URI": "mongodb://localhost:27017"}))
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if cfg.MongoDB.URI != "mongodb://localhost:27017" {
		t.Errorf("uri: got %q", cfg.MongoDB.URI)
	}
	if cfg.MongoDB.Database != "social_media_analytics" {
		t.Errorf("database: got %q", cfg.MongoDB.Database)
	}
	if cfg.MongoDB.Collection != "posts" {
		t.Errorf("collection: got %q", cfg.MongoDB.Collection)
	}
	if cfg.MongoDB.Timeout != 10*time.Second {
		t.Errorf("timeout: got %v", cfg.MongoDB.Timeout)
	}
	if cfg.RateLimit.Requests != 300 || cfg.RateLimit.Window != time.Minute {
		t.Errorf("rate limit: got %+v", cfg.RateLimit)
	}
	if cfg.HTTPServer.ShutdownTimeout != 15*time.Second {
		t.Errorf("shutdown timeout: got %v", cfg.HTTPServer.ShutdownTimeout)
	}
	if !cfg.Environment.IsProduction() {
		t.Error("default environment should be production")
	}
}

func TestBuildDatabaseNameOverride(t *testing.T) {
	cfg, err := build(newTestViper(map[string]string{
		"mongodb.uri": "mongodb://db:27017",
		"DB_NAME":     "analytics_staging",
	}))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if cfg.MongoDB.Database != "analytics_staging" {
		t.Errorf("database: got %q", cfg.MongoDB.Database)
	}
}
