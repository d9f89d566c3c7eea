package database

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Database executes statements over connections borrowed from a
// Manager. Each call acquires a connection, runs exactly one statement
// and releases the connection, unless the context carries an open
// transaction, in which case the statement joins it.
type Database struct {
	m *Manager
}

func NewDatabase(m *Manager) *Database {
	return &Database{m: m}
}

func (db *Database) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	if tx := TxFromContext(ctx); tx != nil {
		return tx.Exec(ctx, sql, arguments...)
	}

	conn, err := db.m.Acquire(ctx)
	if err != nil {
		return pgconn.CommandTag{}, err
	}
	defer conn.Release()

	return conn.Exec(ctx, sql, arguments...)
}

func (db *Database) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if tx := TxFromContext(ctx); tx != nil {
		return tx.Query(ctx, sql, args...)
	}

	conn, err := db.m.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := conn.Query(ctx, sql, args...)
	if err != nil {
		conn.Release()
		return nil, err
	}

	return &pooledRows{Rows: rows, conn: conn}, nil
}

func (db *Database) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if tx := TxFromContext(ctx); tx != nil {
		return tx.QueryRow(ctx, sql, args...)
	}

	conn, err := db.m.Acquire(ctx)
	if err != nil {
		return errRow{err: err}
	}

	return &pooledRow{row: conn.QueryRow(ctx, sql, args...), conn: conn}
}

func (db *Database) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	if tx := TxFromContext(ctx); tx != nil {
		return tx.CopyFrom(ctx, tableName, columnNames, rowSrc)
	}

	conn, err := db.m.Acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Release()

	return conn.CopyFrom(ctx, tableName, columnNames, rowSrc)
}

// pooledRows keeps the borrowed connection until the caller closes the
// row set.
type pooledRows struct {
	pgx.Rows
	conn *pgxpool.Conn
}

func (r *pooledRows) Close() {
	r.Rows.Close()

	if r.conn != nil {
		r.conn.Release()
		r.conn = nil
	}
}

// pooledRow releases the borrowed connection after the single Scan.
type pooledRow struct {
	row  pgx.Row
	conn *pgxpool.Conn
}

func (r *pooledRow) Scan(dest ...any) error {
	if r.conn != nil {
		defer func() {
			r.conn.Release()
			r.conn = nil
		}()
	}

	return r.row.Scan(dest...)
}

type errRow struct {
	err error
}

func (r errRow) Scan(...any) error {
	return r.err
}
