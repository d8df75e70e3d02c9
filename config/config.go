package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	App    AppConfig
	Mongo  MongoConfig
	Consul ConsulConfig
}

type AppConfig struct {
	Host string
	Port string
}

type MongoConfig struct {
	URI      string
	Database string
}

type ConsulConfig struct {
	Host string
	Port string
}

// Load reads the optional .env file and builds the config from the
// environment. Values in .env override already-set variables so the chosen
// MONGO_URI is always the one used.
func Load() *Config {
	_ = godotenv.Overload()

	return &Config{
		App: AppConfig{
			Host: getEnv("HOST", "localhost"),
			Port: getEnv("PORT", "3000"),
		},
		Mongo: MongoConfig{
			URI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
			Database: getEnv("MONGO_DATABASE", "polling"),
		},
		Consul: ConsulConfig{
			Host: os.Getenv("CONSUL_HOST"),
			Port: getEnv("CONSUL_PORT", "8500"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
