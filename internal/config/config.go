package config

import (
	"errors"
	"fmt"
	"os"
	"time"
	// Встроенная база часовых поясов: контейнер может не содержать zoneinfo
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// ErrInvalidConfig возвращается, когда конфигурация не проходит валидацию
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server           ServerConfig           `toml:"server"`
	Database         DatabaseConfig         `toml:"database"`
	Logs             LogsConfig             `toml:"logs"`
	Metrics          MetricsConfig          `toml:"metrics"`
	Auth             AuthConfig             `toml:"auth"`
	Availability     AvailabilityConfig     `toml:"availability"`
	AvailabilityPoll AvailabilityPollConfig `toml:"availability_poll"`
	NATS             NATSConfig             `toml:"nats"`
	Consul           ConsulConfig           `toml:"consul"`
	RateLimit        RateLimitConfig        `toml:"rate_limit"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	Host            string `toml:"host"`
	HTTPPort        int    `toml:"http_port"`
	ReadTimeout     int    `toml:"read_timeout"`
	WriteTimeout    int    `toml:"write_timeout"`
	IdleTimeout     int    `toml:"idle_timeout"`
	ShutdownTimeout int    `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
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

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"` // пустая строка - только stdout
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// AuthConfig секреты для подписи токенов
type AuthConfig struct {
	JWTSecret          string `toml:"jwt_secret"`
	ResolveLinkSecret  string `toml:"resolve_link_secret"`
	ResolveLinkTTLMins int    `toml:"resolve_link_ttl_minutes"`
	// PublicBaseURL базовый адрес, из которого собираются ссылки в уведомлениях
	PublicBaseURL string `toml:"public_base_url"`
}

// AvailabilityConfig настройки расписания
type AvailabilityConfig struct {
	Timezone     string `toml:"timezone"`
	RulesFile    string `toml:"rules_file"` // YAML политика рабочих часов (опционально)
	MaxRangeDays int    `toml:"max_range_days"`
}

// Location часовой пояс, в котором трактуются даты и рабочие часы
func (a AvailabilityConfig) Location() (*time.Location, error) {
	return time.LoadLocation(a.Timezone)
}

// AvailabilityPollConfig настройки протокола "есть ли кто-то свободный"
type AvailabilityPollConfig struct {
	PollIntervalSeconds    int  `toml:"poll_interval_seconds"`
	TimeoutSeconds         int  `toml:"timeout_seconds"`
	RetentionHours         int  `toml:"retention_hours"`
	JanitorEnabled         bool `toml:"janitor_enabled"`
	JanitorIntervalMinutes int  `toml:"janitor_interval_minutes"`
}

// PollInterval период опроса статуса клиентом
func (p AvailabilityPollConfig) PollInterval() time.Duration {
	return time.Duration(p.PollIntervalSeconds) * time.Second
}

// Timeout потолок ожидания клиента
func (p AvailabilityPollConfig) Timeout() time.Duration {
	return time.Duration(p.TimeoutSeconds) * time.Second
}

// Retention время хранения неразрешенных запросов
func (p AvailabilityPollConfig) Retention() time.Duration {
	return time.Duration(p.RetentionHours) * time.Hour
}

// JanitorInterval период очистки
func (p AvailabilityPollConfig) JanitorInterval() time.Duration {
	return time.Duration(p.JanitorIntervalMinutes) * time.Minute
}

// NATSConfig настройки публикации уведомлений
// Пустой URL - уведомления только логируются
type NATSConfig struct {
	URL           string `toml:"url"`
	SubjectPrefix string `toml:"subject_prefix"`
}

// ConsulConfig регистрация сервиса в Consul
type ConsulConfig struct {
	Enabled                        bool   `toml:"enabled"`
	Address                        string `toml:"address"`
	ServiceID                      string `toml:"service_id"`
	ServiceName                    string `toml:"service_name"`
	ServiceAddress                 string `toml:"service_address"` // адрес, по которому Consul проверяет /health
	CheckInterval                  string `toml:"check_interval"`
	DeregisterCriticalServiceAfter string `toml:"deregister_critical_service_after"`
}

// RateLimitConfig ограничение частоты публичных POST запросов на IP
type RateLimitConfig struct {
	Enabled           bool    `toml:"enabled"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
}

// Load читает TOML файл, заполняет значения по умолчанию и применяет переменные окружения
// Переменные из .env подхватываются, если файл существует
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default конфигурация по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			HTTPPort:        8083,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 30,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "scheduling",
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
			ServiceName: "scheduling-service",
		},
		Auth: AuthConfig{
			ResolveLinkTTLMins: 30,
			PublicBaseURL:      "http://localhost:8083",
		},
		Availability: AvailabilityConfig{
			Timezone:     "UTC",
			MaxRangeDays: 28,
		},
		AvailabilityPoll: AvailabilityPollConfig{
			PollIntervalSeconds:    2,
			TimeoutSeconds:         180,
			RetentionHours:         24,
			JanitorIntervalMinutes: 10,
		},
		NATS: NATSConfig{
			SubjectPrefix: "scheduling",
		},
		Consul: ConsulConfig{
			Address:                        "localhost:8500",
			ServiceID:                      "scheduling-service-1",
			ServiceName:                    "scheduling-service",
			ServiceAddress:                 "localhost",
			CheckInterval:                  "10s",
			DeregisterCriticalServiceAfter: "1m",
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 1,
			Burst:             5,
		},
	}
}

// applyEnv переопределяет секреты и адреса из окружения
func (c *Config) applyEnv() {
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.Auth.JWTSecret = v
	}
	if v := os.Getenv("RESOLVE_LINK_SECRET"); v != "" {
		c.Auth.ResolveLinkSecret = v
	}
	if v := os.Getenv("NATS_URL"); v != "" {
		c.NATS.URL = v
	}
	if v := os.Getenv("CONSUL_ADDRESS"); v != "" {
		c.Consul.Address = v
	}
}

// Validate проверяет корректность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d out of range", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database host and dbname are required", ErrInvalidConfig)
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("%w: auth.jwt_secret (or JWT_SECRET) is required", ErrInvalidConfig)
	}
	if c.Auth.ResolveLinkSecret == "" {
		return fmt.Errorf("%w: auth.resolve_link_secret (or RESOLVE_LINK_SECRET) is required", ErrInvalidConfig)
	}
	if c.Auth.ResolveLinkTTLMins <= 0 {
		return fmt.Errorf("%w: auth.resolve_link_ttl_minutes must be positive", ErrInvalidConfig)
	}
	if _, err := c.Availability.Location(); err != nil {
		return fmt.Errorf("%w: availability.timezone %q: %v", ErrInvalidConfig, c.Availability.Timezone, err)
	}
	if c.Availability.MaxRangeDays <= 0 {
		return fmt.Errorf("%w: availability.max_range_days must be positive", ErrInvalidConfig)
	}
	poll := c.AvailabilityPoll
	if poll.PollIntervalSeconds <= 0 || poll.TimeoutSeconds < poll.PollIntervalSeconds {
		return fmt.Errorf("%w: availability_poll interval %ds / timeout %ds",
			ErrInvalidConfig, poll.PollIntervalSeconds, poll.TimeoutSeconds)
	}
	if poll.JanitorEnabled && (poll.RetentionHours <= 0 || poll.JanitorIntervalMinutes <= 0) {
		return fmt.Errorf("%w: janitor requires positive retention_hours and janitor_interval_minutes", ErrInvalidConfig)
	}
	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("%w: rate_limit requires positive requests_per_second and burst", ErrInvalidConfig)
	}
	return nil
}
