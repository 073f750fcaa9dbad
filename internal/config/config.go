package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Транспорты уведомлений
const (
	TransportKafka = "kafka"
	TransportSMTP  = "smtp"
	TransportLog   = "log"
)

// ErrInvalidConfig возвращается при некорректной конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Database      DatabaseConfig      `toml:"database"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	UserService   UserServiceConfig   `toml:"user_service"`
	Redis         RedisConfig         `toml:"redis"`
	Notifications NotificationsConfig `toml:"notifications"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки PostgreSQL
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
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// UserServiceConfig настройки клиента UserService
type UserServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// RedisConfig настройки блокировки выбора сотрудника
// Enabled = false - блокировка не используется (locker.Noop)
type RedisConfig struct {
	Enabled       bool   `toml:"enabled"`
	Addr          string `toml:"addr"`
	Password      string `toml:"password"`
	DB            int    `toml:"db"`
	LockTTL       int    `toml:"lock_ttl_ms"`
	RetryInterval int    `toml:"retry_interval_ms"`
}

// NotificationsConfig настройки доставки уведомлений
type NotificationsConfig struct {
	Transport   string      `toml:"transport"` // kafka | smtp | log
	SendTimeout int         `toml:"send_timeout"`
	Kafka       KafkaConfig `toml:"kafka"`
	SMTP        SMTPConfig  `toml:"smtp"`
}

// KafkaConfig настройки Kafka
type KafkaConfig struct {
	Brokers string `toml:"brokers"` // через запятую
	Topic   string `toml:"topic"`
}

// SMTPConfig настройки SMTP
type SMTPConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Username string `toml:"username"`
	Password string `toml:"password"`
	From     string `toml:"from"`
}

// Load загружает конфигурацию из TOML файла
// Перед этим подхватывает .env (если есть); переменные окружения перекрывают файл
func Load(path string) (*Config, error) {
	// .env опционален: в контейнере переменные приходят из окружения
	_ = godotenv.Load()

	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	setString(&c.Database.Host, "DB_HOST")
	setString(&c.Database.User, "DB_USER")
	setString(&c.Database.Password, "DB_PASSWORD")
	setString(&c.Database.DBName, "DB_NAME")
	setString(&c.Redis.Addr, "REDIS_ADDR")
	setString(&c.Redis.Password, "REDIS_PASSWORD")
	setString(&c.Notifications.Kafka.Brokers, "KAFKA_BROKERS")
	setString(&c.Notifications.SMTP.Host, "SMTP_HOST")
	setString(&c.UserService.URL, "USER_SERVICE_URL")
	setString(&c.Logs.Level, "LOG_LEVEL")

	if err := setInt(&c.Database.Port, "DB_PORT"); err != nil {
		return err
	}
	return setInt(&c.Notifications.SMTP.Port, "SMTP_PORT")
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 15
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
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "appointment_service"
	}
	if c.UserService.Timeout == 0 {
		c.UserService.Timeout = 5
	}
	c.Notifications.Transport = strings.ToLower(strings.TrimSpace(c.Notifications.Transport))
	if c.Notifications.Transport == "" {
		c.Notifications.Transport = TransportLog
	}
	if c.Notifications.SendTimeout == 0 {
		c.Notifications.SendTimeout = 10
	}
	if c.Notifications.Kafka.Topic == "" {
		c.Notifications.Kafka.Topic = "appointment-notifications"
	}
	if c.Notifications.SMTP.Port == 0 {
		c.Notifications.SMTP.Port = 587
	}
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	var problems []string

	if c.Database.Host == "" {
		problems = append(problems, "database.host is required")
	}
	if c.Database.DBName == "" {
		problems = append(problems, "database.dbname is required")
	}
	if c.Database.Port <= 0 || c.Database.Port > 65535 {
		problems = append(problems, "database.port must be in 1..65535")
	}
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		problems = append(problems, "server.http_port must be in 1..65535")
	}
	if c.UserService.URL == "" {
		problems = append(problems, "user_service.url is required")
	}
	if c.Redis.Enabled && c.Redis.Addr == "" {
		problems = append(problems, "redis.addr is required when redis is enabled")
	}

	switch c.Notifications.Transport {
	case TransportKafka:
		if strings.TrimSpace(c.Notifications.Kafka.Brokers) == "" {
			problems = append(problems, "notifications.kafka.brokers is required for kafka transport")
		}
	case TransportSMTP:
		if c.Notifications.SMTP.Host == "" || c.Notifications.SMTP.From == "" {
			problems = append(problems, "notifications.smtp.host and from are required for smtp transport")
		}
	case TransportLog:
	default:
		problems = append(problems, fmt.Sprintf("unknown notifications.transport %q", c.Notifications.Transport))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%w: %s must be an integer: %v", ErrInvalidConfig, key, err)
	}
	*dst = n
	return nil
}
