package config

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var loadConfigOnce sync.Once
var configInstance AppConfig

func LoadConfig() AppConfig {
	loadConfigOnce.Do(func() {
		viper.SetEnvPrefix("atlas_cms")
		viper.AutomaticEnv()
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.SetConfigName("server")
		viper.AddConfigPath("config")
		viper.AddConfigPath("/config")
		viper.SetDefault("server.port", 3000)
		viper.SetDefault("database.timeout", "5s")
		viper.SetDefault("auth.token_ttl", "24h")
		viper.SetDefault("media.max_upload_bytes", 32<<20)
		viper.SetDefault("rate_limit.login_attempts", 10)
		viper.SetDefault("rate_limit.login_window", "1m")
		if err := viper.ReadInConfig(); err != nil {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
		configInstance = AppConfig{
			General: GeneralConfig{
				LogLevel: viper.GetString("general.log_level"),
			},
			Server: ServerConfig{
				Port:           viper.GetInt("server.port"),
				AllowedOrigins: viper.GetStringSlice("server.allowed_origins"),
			},
			Postgresql: PostgresqlConfig{
				URL:     viper.GetString("database.url"),
				DSN:     viper.GetString("database.dsn"),
				Timeout: viper.GetDuration("database.timeout"),
			},
			Auth: AuthConfig{
				JWTSecret: viper.GetString("auth.jwt_secret"),
				Issuer:    viper.GetString("auth.issuer"),
				TokenTTL:  viper.GetDuration("auth.token_ttl"),
			},
			Redis: RedisConfig{
				Addr:     viper.GetString("cache.redis_addr"),
				Password: viper.GetString("cache.redis_password"),
				DB:       viper.GetInt("cache.redis_db"),
			},
			Media: MediaConfig{
				Root:           viper.GetString("media.root"),
				MaxUploadBytes: viper.GetInt64("media.max_upload_bytes"),
			},
			Plugins: PluginsConfig{
				Enabled: viper.GetStringSlice("plugins.enabled"),
			},
			RateLimit: RateLimitConfig{
				LoginAttempts: viper.GetInt("rate_limit.login_attempts"),
				LoginWindow:   viper.GetDuration("rate_limit.login_window"),
			},
		}
	})

	return configInstance
}

type AppConfig struct {
	General    GeneralConfig
	Server     ServerConfig
	Postgresql PostgresqlConfig
	Auth       AuthConfig
	Redis      RedisConfig
	Media      MediaConfig
	Plugins    PluginsConfig
	RateLimit  RateLimitConfig
}

type GeneralConfig struct {
	LogLevel string
}

type ServerConfig struct {
	Port           int
	AllowedOrigins []string
}

type PostgresqlConfig struct {
	URL     string
	DSN     string
	Timeout time.Duration
}

type AuthConfig struct {
	JWTSecret string
	Issuer    string
	TokenTTL  time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type MediaConfig struct {
	Root           string
	MaxUploadBytes int64
}

type PluginsConfig struct {
	Enabled []string
}

type RateLimitConfig struct {
	LoginAttempts int
	LoginWindow   time.Duration
}
