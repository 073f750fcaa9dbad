package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[server]
http_port = 8085

[database]
host = "localhost"
port = 5432
user = "postgres"
password = "postgres"
dbname = "appointments"

[logs]
level = "debug"

[metrics]
enabled = true

[user_service]
url = "http://localhost:8081"

[redis]
enabled = true
addr = "localhost:6379"

[notifications]
transport = "kafka"

[notifications.kafka]
brokers = "localhost:9092"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))

	require.NoError(t, err)
	assert.Equal(t, 8085, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "appointments", cfg.Database.DBName)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, TransportKafka, cfg.Notifications.Transport)
	assert.Equal(t, "appointment-notifications", cfg.Notifications.Kafka.Topic)
	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=postgres dbname=appointments sslmode=disable",
		cfg.Database.DSN())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "6432")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")

	cfg, err := Load(writeConfig(t, sampleConfig))

	require.NoError(t, err)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 6432, cfg.Database.Port)
	assert.Equal(t, "k1:9092,k2:9092", cfg.Notifications.Kafka.Brokers)
}

func TestLoad_InvalidEnvInt(t *testing.T) {
	t.Setenv("DB_PORT", "five")

	_, err := Load(writeConfig(t, sampleConfig))

	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{
			Database:    DatabaseConfig{Host: "localhost", Port: 5432, DBName: "appointments"},
			UserService: UserServiceConfig{URL: "http://users"},
		}
		cfg.applyDefaults()
		return cfg
	}

	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{name: "no db host", mutate: func(c *Config) { c.Database.Host = "" }},
		{name: "bad port", mutate: func(c *Config) { c.Database.Port = 70000 }},
		{name: "no user service", mutate: func(c *Config) { c.UserService.URL = "" }},
		{name: "redis without addr", mutate: func(c *Config) { c.Redis.Enabled = true }},
		{name: "kafka without brokers", mutate: func(c *Config) { c.Notifications.Transport = TransportKafka }},
		{name: "smtp without host", mutate: func(c *Config) { c.Notifications.Transport = TransportSMTP }},
		{name: "unknown transport", mutate: func(c *Config) { c.Notifications.Transport = "pigeon" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}
