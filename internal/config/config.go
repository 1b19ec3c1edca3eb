package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-DefenceBookingService/internal/domain"
)

// ErrInvalidConfig возвращается, когда конфигурация не прошла проверку
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server" envPrefix:"SERVER_"`
	Database DatabaseConfig `toml:"database" envPrefix:"DB_"`
	Logs     LogsConfig     `toml:"logs" envPrefix:"LOGS_"`
	Metrics  MetricsConfig  `toml:"metrics" envPrefix:"METRICS_"`
	Auth     AuthConfig     `toml:"auth" envPrefix:"AUTH_"`
	Booking  BookingConfig  `toml:"booking" envPrefix:"BOOKING_"`
	Events   EventsConfig   `toml:"events" envPrefix:"EVENTS_"`
}

// ServerConfig настройки HTTP сервера, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port" env:"HTTP_PORT"`
	ReadTimeout     int `toml:"read_timeout" env:"READ_TIMEOUT"`
	WriteTimeout    int `toml:"write_timeout" env:"WRITE_TIMEOUT"`
	IdleTimeout     int `toml:"idle_timeout" env:"IDLE_TIMEOUT"`
	ShutdownTimeout int `toml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host" env:"HOST"`
	Port            int    `toml:"port" env:"PORT"`
	User            string `toml:"user" env:"USER"`
	Password        string `toml:"password" env:"PASSWORD"`
	DBName          string `toml:"dbname" env:"NAME"`
	SSLMode         string `toml:"sslmode" env:"SSLMODE"`
	MaxOpenConns    int    `toml:"max_open_conns" env:"MAX_OPEN_CONNS"`
	MaxIdleConns    int    `toml:"max_idle_conns" env:"MAX_IDLE_CONNS"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" env:"CONN_MAX_LIFETIME"` // секунды
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level" env:"LEVEL"`
	File  string `toml:"file" env:"FILE"`
}

// MetricsConfig настройки Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled" env:"ENABLED"`
	Path        string `toml:"path" env:"PATH"`
	ServiceName string `toml:"service_name" env:"SERVICE_NAME"`
}

// AuthConfig настройки проверки JWT
type AuthConfig struct {
	JWTSecret      string `toml:"jwt_secret" env:"JWT_SECRET"`
	Issuer         string `toml:"issuer" env:"ISSUER"`
	AccessTokenTTL int    `toml:"access_token_ttl" env:"ACCESS_TOKEN_TTL"` // минуты
}

// BookingConfig настройки генерации слотов
type BookingConfig struct {
	// SlotResolution шаг, до которого округляется вниз длительность слота ("1s", "1m", "1us").
	// Не меньше микросекунды: колонка TIME в PostgreSQL точнее не хранит.
	SlotResolution string `toml:"slot_resolution" env:"SLOT_RESOLUTION"`
}

// EventsConfig настройки публикации событий в NATS
type EventsConfig struct {
	Enabled       bool   `toml:"enabled" env:"ENABLED"`
	NatsURL       string `toml:"nats_url" env:"NATS_URL"`
	SubjectPrefix string `toml:"subject_prefix" env:"SUBJECT_PREFIX"`
}

// Load читает .env (если есть), затем toml файл, затем переопределения из окружения
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default значения, используемые при отсутствии ключа в файле
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "defence-booking-service",
		},
		Auth: AuthConfig{
			Issuer:         "smc-auth",
			AccessTokenTTL: 60,
		},
		Booking: BookingConfig{
			SlotResolution: "1s",
		},
		Events: EventsConfig{
			SubjectPrefix: "defence",
		},
	}
}

// Validate проверяет обязательные поля и диапазоны
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port=%d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Database.Port <= 0 || c.Database.Port > 65535 {
		return fmt.Errorf("%w: database.port=%d", ErrInvalidConfig, c.Database.Port)
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("%w: database.dbname is required", ErrInvalidConfig)
	}
	if c.Database.MaxOpenConns <= 0 {
		return fmt.Errorf("%w: database.max_open_conns must be positive", ErrInvalidConfig)
	}
	if c.Database.MaxIdleConns < 0 || c.Database.MaxIdleConns > c.Database.MaxOpenConns {
		return fmt.Errorf("%w: database.max_idle_conns must be in [0, max_open_conns]", ErrInvalidConfig)
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("%w: auth.jwt_secret is required", ErrInvalidConfig)
	}
	if _, err := c.Booking.Resolution(); err != nil {
		return err
	}
	if c.Events.Enabled && c.Events.NatsURL == "" {
		return fmt.Errorf("%w: events.nats_url is required when events are enabled", ErrInvalidConfig)
	}
	return nil
}

// Resolution возвращает шаг округления длительности слота
func (b BookingConfig) Resolution() (time.Duration, error) {
	d, err := time.ParseDuration(b.SlotResolution)
	if err != nil {
		return 0, fmt.Errorf("%w: booking.slot_resolution=%q: %v", ErrInvalidConfig, b.SlotResolution, err)
	}
	if d < domain.MinSlotResolution {
		return 0, fmt.Errorf("%w: booking.slot_resolution=%q must be at least %s",
			ErrInvalidConfig, b.SlotResolution, domain.MinSlotResolution)
	}
	return d, nil
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}
