package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-CruiseBookingService/internal/domain"
)

var (
	// ErrInvalidConfig возвращается, когда значение конфигурации недопустимо
	ErrInvalidConfig = errors.New("invalid config")
)

// Драйверы хранилища бронирований
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Драйверы шины событий
const (
	EventsChannel = "channel"
	EventsRedis   = "redis"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Storage  StorageConfig  `toml:"storage"`
	Database DatabaseConfig `toml:"database"`
	Events   EventsConfig   `toml:"events"`
	Booking  BookingConfig  `toml:"booking"`
}

// ServerConfig настройки HTTP сервера; таймауты в секундах
type ServerConfig struct {
	HTTPPort        int    `toml:"http_port"`
	ReadTimeout     int    `toml:"read_timeout"`
	WriteTimeout    int    `toml:"write_timeout"`
	IdleTimeout     int    `toml:"idle_timeout"`
	ShutdownTimeout int    `toml:"shutdown_timeout"`
	Environment     string `toml:"environment"` // development | production
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"` // пусто: только stdout
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type StorageConfig struct {
	Driver string `toml:"driver"` // memory | postgres
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

type EventsConfig struct {
	Driver        string `toml:"driver"` // channel | redis
	RedisAddr     string `toml:"redis_addr"`
	ConsumerGroup string `toml:"consumer_group"`
	BufferSize    int64  `toml:"buffer_size"`
}

type BookingConfig struct {
	ReferencePrefix string `toml:"reference_prefix"`
}

// Load читает конфигурацию из TOML файла, подставляет значения по умолчанию и проверяет её
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default конфигурация для локального запуска без внешних зависимостей
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 3000
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Server.Environment == "" {
		c.Server.Environment = "production"
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "cruise_booking_service"
	}

	if c.Storage.Driver == "" {
		c.Storage.Driver = StorageMemory
	}

	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}

	if c.Events.Driver == "" {
		c.Events.Driver = EventsChannel
	}
	if c.Events.ConsumerGroup == "" {
		c.Events.ConsumerGroup = "booking-audit"
	}
	if c.Events.BufferSize == 0 {
		c.Events.BufferSize = 64
	}

	if c.Booking.ReferencePrefix == "" {
		c.Booking.ReferencePrefix = domain.ReferencePrefix
	}
}

// Validate проверяет допустимость значений
func (c *Config) Validate() error {
	if c.Server.HTTPPort < 1 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d is out of range", ErrInvalidConfig, c.Server.HTTPPort)
	}

	switch c.Server.Environment {
	case "development", "production":
	default:
		return fmt.Errorf("%w: unknown server.environment %q", ErrInvalidConfig, c.Server.Environment)
	}

	switch c.Logs.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown logs.level %q", ErrInvalidConfig, c.Logs.Level)
	}

	switch c.Storage.Driver {
	case StorageMemory:
	case StoragePostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			return fmt.Errorf("%w: postgres storage requires database.host and database.dbname", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown storage.driver %q", ErrInvalidConfig, c.Storage.Driver)
	}

	switch c.Events.Driver {
	case EventsChannel:
	case EventsRedis:
		if c.Events.RedisAddr == "" {
			return fmt.Errorf("%w: redis events require events.redis_addr", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown events.driver %q", ErrInvalidConfig, c.Events.Driver)
	}

	return nil
}

// IsDevelopment сообщает, можно ли отдавать детали ошибок в ответах
func (s ServerConfig) IsDevelopment() bool {
	return s.Environment == "development"
}

// DSN строка подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}
