package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	sharedConfig "github.com/campus-pulse/campuspulse/internal/shared/config"
)

type Config struct {
	Server   sharedConfig.ServerConfig   `mapstructure:"server"`
	Database sharedConfig.DatabaseConfig `mapstructure:"database"`
	Logger   sharedConfig.LoggerConfig   `mapstructure:"logger"`
	Auth     sharedConfig.AuthConfig     `mapstructure:"auth"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// envAliases binds the variable names used by existing deployments in
// addition to the prefixed ones produced by AutomaticEnv.
var envAliases = map[string][]string{
	"auth.session_secret":      {"CAMPUS_PULSE_SECRET"},
	"auth.admin_password":      {"CAMPUS_PULSE_ADMIN_PASSWORD"},
	"auth.admin_password_hash": {"CAMPUS_PULSE_ADMIN_PASSWORD_HASH"},
	"server.host":              {"HOST"},
	"server.port":              {"PORT"},
	"server.debug":             {"CAMPUS_PULSE_DEBUG"},
	"database.path":            {"CAMPUS_PULSE_DATABASE"},
}

// Load loads configuration from an optional file and environment variables.
// configPath overrides the default search locations when non-empty.
func Load(env string, configPath ...string) (*Config, error) {
	v := viper.New()

	if len(configPath) > 0 && configPath[0] != "" {
		v.SetConfigFile(configPath[0])
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath("../configs")
		v.AddConfigPath("../../configs")
	}

	v.SetEnvPrefix("CAMPUS_PULSE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, names := range envAliases {
		// BindEnv takes the key first, then every accepted variable name.
		args := append([]string{key, "CAMPUS_PULSE_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))}, names...)
		if err := v.BindEnv(args...); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if env != "" && env != "default" {
		v.Set("server.mode", env)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration, or nil before Load.
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.mode", "development")
	v.SetDefault("server.debug", true)
	v.SetDefault("server.app_name", "Campus Pulse")

	v.SetDefault("database.path", "instance/campus_pulse.db")
	v.SetDefault("database.busy_timeout_ms", 5000)
	v.SetDefault("database.max_idle_conns", 2)
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.conn_max_lifetime", 60)
	v.SetDefault("database.migration_strategy", "goose")
	v.SetDefault("database.log_queries", false)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")

	v.SetDefault("auth.admin_password", "admin")
	v.SetDefault("auth.admin_password_hash", "")
	v.SetDefault("auth.session_secret", "dev-secret-change-me")
	v.SetDefault("auth.session_max_age", "24h")
	v.SetDefault("auth.bcrypt_cost", 12)
	v.SetDefault("auth.cookie.name", "campus_pulse_session")
	v.SetDefault("auth.cookie.path", "/")
	v.SetDefault("auth.cookie.domain", "")
	v.SetDefault("auth.cookie.secure", false)
	v.SetDefault("auth.cookie.same_site", "Lax")
}
