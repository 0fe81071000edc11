package config

import (
	"testing"
	"time"

	"gorm.io/gorm/logger"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.App.V1Prefix != "/api/v1" {
		t.Fatalf("expected default prefix /api/v1, got %q", cfg.App.V1Prefix)
	}
	if cfg.DB.Driver != DriverPostgres {
		t.Fatalf("expected default driver %q, got %q", DriverPostgres, cfg.DB.Driver)
	}
	if cfg.Log.CorrelationHeader != "X-Request-ID" {
		t.Fatalf("expected X-Request-ID correlation header, got %q", cfg.Log.CorrelationHeader)
	}
	if cfg.Events.Driver != EventsDisabled {
		t.Fatalf("expected events disabled by default, got %q", cfg.Events.Driver)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APP_HOST", "127.0.0.1")
	t.Setenv("APP_PORT", "9000")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("DB_SQLITE_PATH", ":memory:")
	t.Setenv("DB_CONN_MAX_LIFETIME", "5m")
	t.Setenv("DB_LOG_LEVEL", "silent")
	t.Setenv("DB_MAX_OPEN_CONNS", "not-a-number")
	t.Setenv("LOG_JSON_FORMAT", "true")
	t.Setenv("LOGS_CORRELATION_HEADER_NAME", "X-Correlation-ID")
	t.Setenv("EVENTS_DRIVER", "kafka")
	t.Setenv("EVENTS_KAFKA_BROKERS", "kafka-1:9092, ,kafka-2:9092")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if got := cfg.App.Address(); got != "127.0.0.1:9000" {
		t.Fatalf("expected address 127.0.0.1:9000, got %q", got)
	}
	if cfg.DB.Driver != DriverSQLite || cfg.DB.SQLitePath != ":memory:" {
		t.Fatalf("unexpected sqlite settings: %+v", cfg.DB)
	}
	if cfg.DB.ConnMaxLifetime != 5*time.Minute {
		t.Fatalf("expected 5m lifetime, got %s", cfg.DB.ConnMaxLifetime)
	}
	if cfg.DB.LogLevel != logger.Silent {
		t.Fatalf("expected silent gorm logger, got %v", cfg.DB.LogLevel)
	}
	if cfg.DB.MaxOpenConns != 100 {
		t.Fatalf("expected fallback of 100 open conns, got %d", cfg.DB.MaxOpenConns)
	}
	if !cfg.Log.JSON || cfg.Log.CorrelationHeader != "X-Correlation-ID" {
		t.Fatalf("unexpected log settings: %+v", cfg.Log)
	}
	if len(cfg.Events.KafkaBrokers) != 2 || cfg.Events.KafkaBrokers[1] != "kafka-2:9092" {
		t.Fatalf("unexpected brokers: %v", cfg.Events.KafkaBrokers)
	}
}

func TestLoadRejectsInvalidSettings(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown db driver", env: map[string]string{"DB_DRIVER": "mysql"}},
		{name: "unknown events driver", env: map[string]string{"EVENTS_DRIVER": "rabbitmq"}},
		{name: "kafka without brokers", env: map[string]string{"EVENTS_DRIVER": "kafka", "EVENTS_KAFKA_BROKERS": ""}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			for key, value := range test.env {
				t.Setenv(key, value)
			}
			if _, err := Load(); err == nil {
				t.Fatal("expected an error, got nil")
			}
		})
	}
}

func TestDSN(t *testing.T) {
	cfg := DBConfig{Host: "db", Port: "5432", User: "rafood", Password: "secret", DBName: "catalog", SSLMode: "disable"}
	expected := "host=db port=5432 user=rafood password=secret dbname=catalog sslmode=disable"
	if got := cfg.DSN(); got != expected {
		t.Fatalf("expected %q, got %q", expected, got)
	}
}

func TestLogFieldsOmitPassword(t *testing.T) {
	cfg := &Config{DB: DBConfig{Password: "secret"}}
	for _, field := range cfg.LogFields() {
		if field.String == "secret" {
			t.Fatalf("field %q leaks the database password", field.Key)
		}
	}
}
