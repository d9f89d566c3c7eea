package config

import (
	"net"
	"net/url"
	"time"
)

type Config struct {
	App      AppConfig      `env-prefix:"APP_"`
	HTTP     HTTPConfig     `env-prefix:"HTTP_"`
	Database DatabaseConfig `env-prefix:"DB_"`
}

type AppConfig struct {
	LogLevel string `env:"LOG_LEVEL" env-default:"info"`
	Pretty   bool   `env:"PRETTY" env-default:"false"`
}

type HTTPConfig struct {
	Addr string `env:"ADDR" env-default:":8080"`
}

type DatabaseConfig struct {
	Port     string `env:"PORT" env-default:"5432"`
	Host     string `env:"HOST" env-default:"localhost"`
	Name     string `env:"NAME" env-default:"postgres"`
	User     string `env:"USER" env-default:"user"`
	Password string `env:"PASSWORD"`

	PoolSize       int32         `env:"POOL_SIZE" env-default:"12"`
	AcquireTimeout time.Duration `env:"ACQUIRE_TIMEOUT" env-default:"5s"`
}

func (c DatabaseConfig) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// DSN is used by the migration runner, which opens its own short-lived
// connection outside the pool.
func (c DatabaseConfig) DSN() string {
	ds := &url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   c.Addr(),
		Path:   c.Name,
	}

	return ds.String()
}
