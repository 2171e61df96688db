package config

import (
	"context"
	"os"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Config carries runtime settings plus the process-scoped Mongo client.
// Handlers receive it explicitly instead of reaching for globals.
type Config struct {
	MongoURL       string
	DBName         string
	Port           string
	AllowedOrigins []string

	MongoClient *mongo.Client
}

const (
	defaultMongoURL = "mongodb://localhost:27017"
	defaultDBName   = "thrift_donations"
	defaultPort     = "8000"
	defaultOrigins  = "http://localhost:3000"
)

// Load reads configuration from the environment, falling back to defaults.
func Load() *Config {
	return &Config{
		MongoURL:       readEnv("MONGO_URL", defaultMongoURL),
		DBName:         readEnv("DB_NAME", defaultDBName),
		Port:           readEnv("PORT", defaultPort),
		AllowedOrigins: parseList("CORS_ORIGINS", defaultOrigins),
	}
}

// Connect dials Mongo and verifies the connection with a ping.
func (cfg *Config) Connect(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURL))
	if err != nil {
		return err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return err
	}
	cfg.MongoClient = client
	return nil
}

// Disconnect tears down the Mongo client on shutdown.
func (cfg *Config) Disconnect(ctx context.Context) error {
	if cfg.MongoClient == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return cfg.MongoClient.Disconnect(ctx)
}

// DB returns the configured database handle.
func (cfg *Config) DB() *mongo.Database {
	return cfg.MongoClient.Database(cfg.DBName)
}

func readEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func parseList(key, def string) []string {
	out := strings.Split(readEnv(key, def), ",")
	for i := range out {
		out[i] = strings.TrimSpace(out[i])
	}
	return out
}
