package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm/logger"
)

// Supported database drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Supported change event drivers
const (
	EventsDisabled = ""
	EventsKafka    = "kafka"
	EventsNATS     = "nats"
)

// AppConfig holds application and server configuration
type AppConfig struct {
	Name        string
	Description string
	Version     string
	V1Prefix    string
	Host        string
	Port        string
	Env         string
}

// Address returns the host:port pair the HTTP server listens on
func (c AppConfig) Address() string {
	return c.Host + ":" + c.Port
}

// DBConfig holds database configuration
type DBConfig struct {
	Driver          string
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	SQLitePath      string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	LogLevel        logger.LogLevel
	AutoMigrate     bool
}

// DSN returns the PostgreSQL connection string
func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level             string
	JSON              bool
	CorrelationHeader string
}

// MetricsConfig holds metrics configuration
type MetricsConfig struct {
	Prefix string
}

// EventsConfig holds change event publishing configuration
type EventsConfig struct {
	Driver        string
	KafkaBrokers  []string
	KafkaTopic    string
	NATSURL       string
	SubjectPrefix string
}

// Config holds all configuration
type Config struct {
	App     AppConfig
	DB      DBConfig
	Log     LogConfig
	Metrics MetricsConfig
	Events  EventsConfig
}

// Load loads configuration from an optional .env file and environment variables
func Load() (*Config, error) {
	// .env is optional; plain environment variables are enough in containers
	_ = godotenv.Load()

	config := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "RaFood API"),
			Description: getEnv("APP_DESCRIPTION", "RESTful API to manage RaFood's restaurants, products and offers."),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			V1Prefix:    getEnv("APP_V1_PREFIX", "/api/v1"),
			Host:        getEnv("APP_HOST", "0.0.0.0"),
			Port:        getEnv("APP_PORT", "8000"),
			Env:         getEnv("APP_ENV", "development"),
		},
		DB: DBConfig{
			Driver:          strings.ToLower(getEnv("DB_DRIVER", DriverPostgres)),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", "password"),
			DBName:          getEnv("DB_NAME", "rafood"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			SQLitePath:      getEnv("DB_SQLITE_PATH", "rafood.db"),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 10),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 100),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", 1*time.Hour),
			LogLevel:        getEnvAsLogLevel("DB_LOG_LEVEL", logger.Warn),
			AutoMigrate:     getEnvAsBool("DB_AUTO_MIGRATE", true),
		},
		Log: LogConfig{
			Level:             getEnv("LOG_LEVEL", "info"),
			JSON:              getEnvAsBool("LOG_JSON_FORMAT", false),
			CorrelationHeader: getEnv("LOGS_CORRELATION_HEADER_NAME", "X-Request-ID"),
		},
		Metrics: MetricsConfig{
			Prefix: getEnv("METRICS_PREFIX", "rafood"),
		},
		Events: EventsConfig{
			Driver:        strings.ToLower(getEnv("EVENTS_DRIVER", EventsDisabled)),
			KafkaBrokers:  getEnvAsList("EVENTS_KAFKA_BROKERS"),
			KafkaTopic:    getEnv("EVENTS_KAFKA_TOPIC", "rafood.catalog"),
			NATSURL:       getEnv("EVENTS_NATS_URL", "nats://127.0.0.1:4222"),
			SubjectPrefix: getEnv("EVENTS_SUBJECT_PREFIX", "rafood"),
		},
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	switch c.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DB.Driver)
	}

	switch c.Events.Driver {
	case EventsDisabled, EventsNATS:
	case EventsKafka:
		if len(c.Events.KafkaBrokers) == 0 {
			return fmt.Errorf("EVENTS_KAFKA_BROKERS is required when EVENTS_DRIVER is %q", EventsKafka)
		}
	default:
		return fmt.Errorf("unsupported EVENTS_DRIVER %q", c.Events.Driver)
	}

	return nil
}

// IsProduction reports whether the service runs with production settings
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// LogFields returns the configuration as zap fields, without credentials
func (c *Config) LogFields() []zap.Field {
	return []zap.Field{
		zap.String("service", c.App.Name),
		zap.String("version", c.App.Version),
		zap.String("environment", c.App.Env),
		zap.String("address", c.App.Address()),
		zap.String("db_driver", c.DB.Driver),
		zap.String("db_host", c.DB.Host),
		zap.String("db_port", c.DB.Port),
		zap.String("db_name", c.DB.DBName),
		zap.String("events_driver", c.Events.Driver),
	}
}

// Helper function to get environment variables with defaults
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// Helper function to get environment variables as integers
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// Helper function to get environment variables as durations
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsList splits a comma separated variable, dropping empty items
func getEnvAsList(key string) []string {
	var items []string
	for _, item := range strings.Split(getEnv(key, ""), ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// Helper function to get environment variables as log levels
func getEnvAsLogLevel(key string, defaultValue logger.LogLevel) logger.LogLevel {
	valueStr := getEnv(key, "")
	switch valueStr {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "warn":
		return logger.Warn
	case "info":
		return logger.Info
	default:
		return defaultValue
	}
}
