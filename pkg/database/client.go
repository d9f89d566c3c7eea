package database

import (
	"context"
	"log/slog"
	"net/url"
	"time"
)

type logger interface {
	Warn(context.Context, string, ...slog.Attr)
}

//go:generate go run github.com/kazhuravlev/options-gen/cmd/options-gen@v0.55.3 -out-filename=client_options.gen.go -from-struct=Options
type Options struct {
	address  string `option:"mandatory" validate:"required,hostname_port"`
	username string `option:"mandatory" validate:"required"`
	password string `option:"mandatory" validate:"required"`
	database string `option:"mandatory" validate:"required"`

	// poolSize is the upper bound on simultaneous live connections.
	// Idle connections beyond active demand are not retained.
	poolSize int32 `default:"12" validate:"min=1,max=64"`

	// acquireTimeout bounds how long a caller may wait for a pooled
	// connection when the pool is at capacity.
	acquireTimeout time.Duration `default:"5s"`

	retry         bool `default:"true"`
	retryAttempts uint `default:"3" validate:"min=1,max=10"`

	logger logger
}

func (o Options) dsn() string {
	ds := &url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(o.username, o.password),
		Host:   o.address,
		Path:   o.database,
	}

	return ds.String()
}

type noopLogger struct{}

func (n noopLogger) Warn(context.Context, string, ...slog.Attr) {}
