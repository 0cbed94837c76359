package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. SCALER_DB_PATH.
const EnvPrefix = "SCALER"

const (
	defaultPort         = "8080"
	defaultLogLevel     = "info"
	defaultDBPath       = "scaler.db"
	defaultTokenTTL     = time.Hour
	defaultClientJS     = "web/js/client.js"
	defaultFeedInterval = time.Second
)

type Config struct {
	Port string
	Log  LogConfig
	DB   DBConfig
	Auth AuthConfig
	Web  WebConfig
	WS   WSConfig
}

type LogConfig struct {
	Level string
}

type DBConfig struct {
	Path string
}

type AuthConfig struct {
	SigningKey string
	TokenTTL   time.Duration
}

type WebConfig struct {
	// ClientJS is where the GopherJS build of cmd/client is written.
	ClientJS string
}

type WSConfig struct {
	Interval time.Duration
}

// Load reads config.yml from dir (when present) and applies SCALER_* environment overrides.
func Load(dir string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.AddConfigPath(dir)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		Port: v.GetString("port"),
		Log:  LogConfig{Level: strings.ToLower(v.GetString("log.level"))},
		DB:   DBConfig{Path: v.GetString("db.path")},
		Auth: AuthConfig{
			SigningKey: v.GetString("auth.signing_key"),
			TokenTTL:   v.GetDuration("auth.token_ttl"),
		},
		Web: WebConfig{ClientJS: v.GetString("web.client_js")},
		WS:  WSConfig{Interval: v.GetDuration("ws.interval")},
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", defaultPort)
	v.SetDefault("log.level", defaultLogLevel)
	v.SetDefault("db.path", defaultDBPath)
	v.SetDefault("auth.signing_key", "")
	v.SetDefault("auth.token_ttl", defaultTokenTTL)
	v.SetDefault("web.client_js", defaultClientJS)
	v.SetDefault("ws.interval", defaultFeedInterval)
}

func (c *Config) validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q: want debug, info, warn or error", c.Log.Level)
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("auth.token_ttl must be positive, got %s", c.Auth.TokenTTL)
	}
	if c.WS.Interval <= 0 {
		return fmt.Errorf("ws.interval must be positive, got %s", c.WS.Interval)
	}
	return nil
}
