package config

import (
	"fmt"
	"time"
)

type ServerConfig struct {
	Host    string `mapstructure:"host"`
	Port    int    `mapstructure:"port"`
	Mode    string `mapstructure:"mode"`
	Debug   bool   `mapstructure:"debug"`
	AppName string `mapstructure:"app_name"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig describes the embedded SQLite store.
type DatabaseConfig struct {
	Path              string `mapstructure:"path"`
	BusyTimeoutMillis int    `mapstructure:"busy_timeout_ms"`
	MaxIdleConns      int    `mapstructure:"max_idle_conns"`
	MaxOpenConns      int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime   int    `mapstructure:"conn_max_lifetime"`
	MigrationStrategy string `mapstructure:"migration_strategy"`
	LogQueries        bool   `mapstructure:"log_queries"`
}

// GetDSN returns the sqlite3 DSN with foreign keys enforced on every connection.
func (d *DatabaseConfig) GetDSN() string {
	busy := d.BusyTimeoutMillis
	if busy <= 0 {
		busy = 5000
	}
	return fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=%d", d.Path, busy)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type CookieConfig struct {
	Name     string `mapstructure:"name"`
	Path     string `mapstructure:"path"`
	Domain   string `mapstructure:"domain"`
	Secure   bool   `mapstructure:"secure"`
	SameSite string `mapstructure:"same_site"`
}

type AuthConfig struct {
	AdminPassword     string        `mapstructure:"admin_password"`
	AdminPasswordHash string        `mapstructure:"admin_password_hash"`
	SessionSecret     string        `mapstructure:"session_secret"`
	SessionMaxAge     time.Duration `mapstructure:"session_max_age"`
	BcryptCost        int           `mapstructure:"bcrypt_cost"`
	Cookie            CookieConfig  `mapstructure:"cookie"`
}
