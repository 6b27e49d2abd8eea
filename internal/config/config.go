// Package config загрузка конфигурации сервиса из TOML файла, .env и переменных окружения
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

var (
	// ErrReadConfig возвращается, когда файл конфигурации не читается или не разбирается
	ErrReadConfig = errors.New("config: failed to read config")

	// ErrInvalidConfig возвращается при невалидной конфигурации
	ErrInvalidConfig = errors.New("config: invalid config")
)

// Хранилища записей
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
)

type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Storage  StorageConfig  `toml:"storage"`
	Database DatabaseConfig `toml:"database"`
	Redis    RedisConfig    `toml:"redis"`
	Catalog  CatalogConfig  `toml:"catalog"`
	Delivery DeliveryConfig `toml:"delivery"`
	Proxy    ProxyConfig    `toml:"proxy"`
	Telegram TelegramConfig `toml:"telegram"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port" validate:"min=1,max=65535"`
	ReadTimeout     int `toml:"read_timeout" validate:"gt=0"`     // секунды
	WriteTimeout    int `toml:"write_timeout" validate:"gt=0"`    // секунды
	IdleTimeout     int `toml:"idle_timeout" validate:"gt=0"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout" validate:"gt=0"` // секунды
}

type LogsConfig struct {
	Level string `toml:"level" validate:"oneof=debug info warn error"`
	File  string `toml:"file"` // пусто - только stdout
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path" validate:"required_if=Enabled true"`
	ServiceName string `toml:"service_name"`
}

type StorageConfig struct {
	Backend   string `toml:"backend" validate:"oneof=memory postgres redis"`
	Namespace string `toml:"namespace" validate:"required"`
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

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db" validate:"min=0"`
}

type CatalogConfig struct {
	File string `toml:"file"` // пусто - встроенный каталог
}

type DeliveryConfig struct {
	Timeout int                   `toml:"timeout" validate:"gt=0"` // секунды
	Webhook WebhookDeliveryConfig `toml:"webhook"`
	AMQP    AMQPDeliveryConfig    `toml:"amqp"`
}

type WebhookDeliveryConfig struct {
	Enabled bool   `toml:"enabled"`
	URL     string `toml:"url" validate:"required_if=Enabled true"`
}

type AMQPDeliveryConfig struct {
	Enabled bool   `toml:"enabled"`
	URL     string `toml:"url" validate:"required_if=Enabled true"`
	Queue   string `toml:"queue"`
}

type ProxyConfig struct {
	UpstreamURL string `toml:"upstream_url" validate:"required"`
	Timeout     int    `toml:"timeout" validate:"gt=0"` // секунды
}

type TelegramConfig struct {
	BotToken   string `toml:"bot_token"`
	DevMode    bool   `toml:"dev_mode"`
	InitMaxAge int    `toml:"init_data_max_age"` // секунды, 0 - без ограничения
	RetryDelay int    `toml:"retry_delay_ms"`
}

// LocalMode true, если вместо бота используются локальные заглушки
func (t TelegramConfig) LocalMode() bool {
	return t.DevMode || t.BotToken == ""
}

// Load читает TOML файл, подгружает .env (если есть), применяет переменные окружения,
// значения по умолчанию и валидирует результат
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	// .env необязателен
	_ = godotenv.Load()

	applyEnv(cfg)
	applyDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет конфигурацию
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if cfg.Storage.Backend == StoragePostgres && cfg.Database.Host == "" {
		return fmt.Errorf("%w: database.host is required for postgres storage", ErrInvalidConfig)
	}
	if cfg.Storage.Backend == StorageRedis && cfg.Redis.Addr == "" {
		return fmt.Errorf("%w: redis.addr is required for redis storage", ErrInvalidConfig)
	}
	return nil
}

// applyEnv секреты и адреса из окружения перекрывают файл
func applyEnv(cfg *Config) {
	setString(&cfg.Proxy.UpstreamURL, "LEADTEX_WEBHOOK_URL")
	setString(&cfg.Delivery.Webhook.URL, "LEADTEX_WEBHOOK_URL")
	setString(&cfg.Telegram.BotToken, "TELEGRAM_BOT_TOKEN")
	setString(&cfg.Database.Password, "DB_PASSWORD")
	setString(&cfg.Redis.Password, "REDIS_PASSWORD")
	setString(&cfg.Delivery.AMQP.URL, "AMQP_URL")
	setString(&cfg.Storage.Backend, "STORAGE_BACKEND")
	setString(&cfg.Logs.Level, "LOG_LEVEL")

	if v, ok := os.LookupEnv("HTTP_PORT"); ok {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.HTTPPort = port
		}
	}
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func applyDefaults(cfg *Config) {
	setDefaultInt(&cfg.Server.HTTPPort, 8080)
	setDefaultInt(&cfg.Server.ReadTimeout, 15)
	setDefaultInt(&cfg.Server.WriteTimeout, 15)
	setDefaultInt(&cfg.Server.IdleTimeout, 60)
	setDefaultInt(&cfg.Server.ShutdownTimeout, 10)

	setDefaultString(&cfg.Logs.Level, "info")
	setDefaultString(&cfg.Metrics.Path, "/metrics")
	setDefaultString(&cfg.Metrics.ServiceName, "beauty_booking")

	setDefaultString(&cfg.Storage.Backend, StorageMemory)
	setDefaultString(&cfg.Storage.Namespace, domain.StorageNamespace)

	setDefaultInt(&cfg.Database.Port, 5432)
	setDefaultString(&cfg.Database.SSLMode, "disable")
	setDefaultInt(&cfg.Database.MaxOpenConns, 10)
	setDefaultInt(&cfg.Database.MaxIdleConns, 5)
	setDefaultInt(&cfg.Database.ConnMaxLifetime, 300)

	setDefaultInt(&cfg.Delivery.Timeout, 10)
	setDefaultString(&cfg.Delivery.AMQP.Queue, "booking.confirmed")

	setDefaultInt(&cfg.Proxy.Timeout, 15)

	setDefaultInt(&cfg.Telegram.RetryDelay, 200)
}

func setDefaultInt(dst *int, v int) {
	if *dst == 0 {
		*dst = v
	}
}

func setDefaultString(dst *string, v string) {
	if *dst == "" {
		*dst = v
	}
}

// Seconds переводит значение из конфига в time.Duration
func Seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}
