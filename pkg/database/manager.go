package database

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Manager owns the lifecycle of a bounded pgx connection pool. The pool
// is opened lazily on first use and can be shut down and transparently
// re-opened: the next Pool or Acquire call after Shutdown builds a
// fresh pool. Test harnesses rely on this to close connections between
// cases without permanently disabling the stores.
type Manager struct {
	opts Options

	mu   sync.Mutex
	pool *pgxpool.Pool // nil means closed
}

func NewManager(opts Options) (*Manager, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate options for pool manager: %v", err)
	}

	if opts.logger == nil {
		opts.logger = noopLogger{}
	}

	return &Manager{opts: opts}, nil
}

// Pool returns the live pool, opening a new one when the manager has
// not been used yet or was shut down.
func (m *Manager) Pool(ctx context.Context) (*pgxpool.Pool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.pool != nil {
		return m.pool, nil
	}

	pool, err := m.open(ctx)
	if err != nil {
		return nil, err
	}

	m.pool = pool

	return pool, nil
}

// Acquire returns a pooled connection, waiting at most the configured
// acquire timeout when the pool is at capacity. The caller must release
// the connection exactly once, on every exit path.
func (m *Manager) Acquire(ctx context.Context) (*pgxpool.Conn, error) {
	pool, err := m.Pool(ctx)
	if err != nil {
		return nil, err
	}

	acquireCtx, cancel := context.WithTimeout(ctx, m.opts.acquireTimeout)
	defer cancel()

	conn, err := pool.Acquire(acquireCtx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}

	return conn, nil
}

// Shutdown closes every pooled connection and marks the manager closed.
// Calling it on an already closed manager is a no-op.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.pool == nil {
		return
	}

	m.pool.Close()
	m.pool = nil
}

func (m *Manager) open(ctx context.Context) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(m.opts.dsn())
	if err != nil {
		return nil, fmt.Errorf("parse pool config: %v", err)
	}

	cfg.MaxConns = m.opts.poolSize
	cfg.MinConns = 0

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open new pgx pool: %v", err)
	}

	if !m.opts.retry {
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, fmt.Errorf("ping to database: %v", err)
		}
		return pool, nil
	}

	if err := retry.Do(
		func() error { return pool.Ping(ctx) },
		retry.Context(ctx),
		retry.Delay(time.Millisecond*300),
		retry.Attempts(m.opts.retryAttempts),
		retry.OnRetry(func(attempt uint, err error) {
			m.opts.logger.Warn(
				ctx,
				"failed ping to database",
				slog.Any("err", err),
				slog.Uint64("attempt", uint64(attempt)),
			)
		}),
	); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping to database: %v", err)
	}

	return pool, nil
}
