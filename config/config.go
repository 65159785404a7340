package config

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

const (
	DriverPostgres = "postgres" // database/sql + lib/pq
	DriverGorm     = "gorm"     // gorm over postgres
	DriverSQLite   = "sqlite"   // gorm over sqlite, DATABASE_URL is a file path
)

type Config struct {
	DatabaseURL     string        `envconfig:"DATABASE_URL"      required:"true"`
	DBDriver        string        `envconfig:"DB_DRIVER"         default:"postgres"`
	DBMaxOpenConns  int           `envconfig:"DB_MAX_OPEN_CONNS" default:"10"`
	HTTPPort        string        `envconfig:"HTTP_PORT"         default:":8081"`
	GrpcPort        string        `envconfig:"GRPC_PORT"         default:":50051"`
	LogLevel        string        `envconfig:"LOG_LEVEL"         default:"info"`
	LogFormat       string        `envconfig:"LOG_FORMAT"        default:"json"`
	GinMode         string        `envconfig:"GIN_MODE"          default:"release"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT"  default:"10s"`
}

var (
	config Config
	once   sync.Once
)

// LoadConfig reads .env (if present) and the environment exactly once.
// Configuration errors are fatal.
func LoadConfig(logger *logrus.Logger) *Config {
	once.Do(func() {
		err := godotenv.Load()
		if err != nil && !os.IsNotExist(err) {
			logger.Warnf("Error loading .env file (but continuing): %v", err)
		} else if err == nil {
			logger.Info("Loaded configuration from .env file")
		}

		cfg, err := Process()
		if err != nil {
			logger.Fatalf("Failed to process configuration from environment variables: %v", err)
		}
		config = *cfg

		logger.Infof("Configuration loaded: HTTP Port=%s, GRPC Port=%s, Driver=%s, LogLevel=%s",
			config.HTTPPort, config.GrpcPort, config.DBDriver, config.LogLevel)
	})
	return &config
}

// Process builds a Config from environment variables only.
func Process() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}
	switch cfg.DBDriver {
	case DriverPostgres, DriverGorm, DriverSQLite:
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	if cfg.DBMaxOpenConns <= 0 {
		return nil, fmt.Errorf("DB_MAX_OPEN_CONNS must be positive, got %d", cfg.DBMaxOpenConns)
	}
	return &cfg, nil
}
