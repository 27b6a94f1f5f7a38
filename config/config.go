package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Session store backends.
const (
	SessionBackendFile   = "file"
	SessionBackendRedis  = "redis"
	SessionBackendMemory = "memory"
)

// Config holds all client configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Notes client specifics
	API     APIConfig
	Session SessionConfig
	Redis   RedisConfig
	Policy  PolicyConfig
	Web     WebConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Host string // listen address; loopback unless overridden
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// APIConfig points at the notes backend.
type APIConfig struct {
	BaseURL string
	Timeout time.Duration // 0 means no timeout
}

// SessionConfig selects where the bearer token is persisted.
type SessionConfig struct {
	Backend string
	Path    string // file backend only
	Key     string
	Watch   bool // reload the token when the file changes
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// PolicyConfig toggles strict (uniform) vs lenient (legacy) failure reporting.
type PolicyConfig struct {
	Strict bool
}

type WebConfig struct {
	RateLimitPerMin int
	FlashTTL        time.Duration
}

// Load loads configuration using Viper.
// If path is empty, config.yaml is searched in ./config, . and $HOME/.notes-client.
func Load(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".notes-client"))
		}
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Host = v.GetString("http_server.host")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Backend API
	cfg.API.BaseURL = strings.TrimRight(v.GetString("api.base_url"), "/")
	cfg.API.Timeout = v.GetDuration("api.timeout")
	if cfg.API.BaseURL == "" {
		return nil, fmt.Errorf("api.base_url is required")
	}

	// Session
	cfg.Session.Backend = strings.ToLower(v.GetString("session.backend"))
	cfg.Session.Path = expandHome(v.GetString("session.path"))
	cfg.Session.Key = v.GetString("session.key")
	cfg.Session.Watch = v.GetBool("session.watch")
	switch cfg.Session.Backend {
	case SessionBackendFile, SessionBackendRedis, SessionBackendMemory:
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.Session.Backend)
	}

	cfg.Redis.Addr = v.GetString("redis.addr")
	cfg.Redis.Password = v.GetString("redis.password")
	cfg.Redis.DB = v.GetInt("redis.db")
	cfg.Redis.Prefix = v.GetString("redis.prefix")
	if cfg.Session.Backend == SessionBackendRedis && cfg.Redis.Addr == "" {
		return nil, fmt.Errorf("redis.addr is required for the redis session backend")
	}

	cfg.Policy.Strict = v.GetBool("policy.strict")

	cfg.Web.RateLimitPerMin = v.GetInt("web.rate_limit_per_min")
	cfg.Web.FlashTTL = v.GetDuration("web.flash_ttl")

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.host", "127.0.0.1")
	v.SetDefault("http_server.port", 3000)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("api.base_url", "http://localhost:8080/api")
	v.SetDefault("api.timeout", "0s")

	v.SetDefault("session.backend", SessionBackendFile)
	v.SetDefault("session.path", "~/.notes-client/session.yaml")
	v.SetDefault("session.key", "jwt")
	v.SetDefault("session.watch", true)
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.prefix", "notes-client:")

	v.SetDefault("policy.strict", true)

	v.SetDefault("web.rate_limit_per_min", 120)
	v.SetDefault("web.flash_ttl", "1m")
}

// expandHome replaces a leading "~" with the user's home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
