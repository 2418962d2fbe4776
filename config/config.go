package config

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Port     string `envconfig:"PORT"      default:":8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	GinMode  string `envconfig:"GIN_MODE"  default:"release"`
}

var (
	config Config
	once   sync.Once
)

func LoadConfig(logger *logrus.Logger) *Config {
	once.Do(func() {
		err := godotenv.Load()
		if err != nil && !os.IsNotExist(err) {
			logger.Warnf("Error loading .env file (but continuing): %v", err)
		} else if err == nil {
			logger.Info("Loaded configuration from .env file")
		}

		if err := envconfig.Process("", &config); err != nil {
			logger.Fatalf("Failed to process configuration from environment variables: %v", err)
		}

		logger.Infof("Configuration loaded: Port=%s, LogLevel=%s, GinMode=%s", config.Port, config.LogLevel, config.GinMode)
	})
	return &config
}
