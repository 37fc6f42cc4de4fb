// Package config loads process configuration from the environment (and an
// optional config file) via viper.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	AppEnv     string
	ListenAddr string

	PGHost     string
	PGPort     string
	PGUser     string
	PGPassword string
	PGDatabase string

	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// IdentitySecret verifies identity tokens issued by the auth provider.
	IdentitySecret string
	SessionTTL     time.Duration

	// EnforceCapacity blocks registrations into full events. The observed
	// behavior of the platform is advisory-only capacity, so this defaults
	// to false; enforcement is opt-in.
	EnforceCapacity bool
}

func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("app_env", "development")
	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("pg_host", "localhost")
	v.SetDefault("pg_port", "5432")
	v.SetDefault("pg_user", "postgres")
	v.SetDefault("pg_password", "")
	v.SetDefault("pg_db", "fundaevento")
	v.SetDefault("redis_host", "localhost")
	v.SetDefault("redis_port", "6379")
	v.SetDefault("redis_password", "")
	v.SetDefault("redis_db", 0)
	v.SetDefault("identity_secret", "")
	v.SetDefault("session_ttl", "168h")
	v.SetDefault("enforce_capacity", false)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// Config file is optional: env vars and defaults are enough.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		AppEnv:          v.GetString("app_env"),
		ListenAddr:      v.GetString("listen_addr"),
		PGHost:          v.GetString("pg_host"),
		PGPort:          v.GetString("pg_port"),
		PGUser:          v.GetString("pg_user"),
		PGPassword:      v.GetString("pg_password"),
		PGDatabase:      v.GetString("pg_db"),
		RedisHost:       v.GetString("redis_host"),
		RedisPort:       v.GetString("redis_port"),
		RedisPassword:   v.GetString("redis_password"),
		RedisDB:         v.GetInt("redis_db"),
		IdentitySecret:  v.GetString("identity_secret"),
		SessionTTL:      v.GetDuration("session_ttl"),
		EnforceCapacity: v.GetBool("enforce_capacity"),
	}

	if cfg.IdentitySecret == "" {
		return nil, fmt.Errorf("identity_secret must be set")
	}

	return cfg, nil
}

// PostgresDSN builds the connection string shared by sqlx and GORM.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDatabase)
}

// RedisAddr returns host:port for the Redis client.
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}
