package db

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/rajeshthapaliya/cross-platform-calorie-calc/pkg/logger"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

type Dialect string

const (
	SQLite   Dialect = "sqlite"
	Postgres Dialect = "postgres"
)

func ParseDialect(s string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "sqlite", "sqlite3":
		return SQLite, nil
	case "postgres", "postgresql", "pgx":
		return Postgres, nil
	default:
		return "", fmt.Errorf("unsupported database driver %q (use sqlite or postgres)", s)
	}
}

// DB wraps *sql.DB so queries can be written once with ? placeholders.
type DB struct {
	*sql.DB
	dialect Dialect
	log     *logger.Logger
}

type Option func(*DB)

func WithLogger(l *logger.Logger) Option {
	return func(d *DB) {
		if l != nil {
			d.log = l
		}
	}
}

func Open(dialect Dialect, dsn string, opts ...Option) (*DB, error) {
	d := &DB{dialect: dialect, log: logger.NewNop()}
	for _, opt := range opts {
		opt(d)
	}

	var err error
	switch dialect {
	case SQLite:
		d.DB, err = openSQLite(dsn)
	case Postgres:
		d.DB, err = openPostgres(dsn)
	default:
		return nil, fmt.Errorf("unsupported dialect %q", dialect)
	}
	if err != nil {
		return nil, err
	}
	d.log.Debugw("database opened", "dialect", dialect)
	return d, nil
}

func openSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return db, nil
}

func openPostgres(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres database: %w", err)
	}
	db.SetMaxOpenConns(2)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres database: %w", err)
	}
	return db, nil
}

func (d *DB) Dialect() Dialect {
	return d.dialect
}

func (d *DB) Rebind(query string) string {
	return rebind(d.dialect, query)
}

func (d *DB) Exec(query string, args ...any) (sql.Result, error) {
	d.log.Debugw("exec", "query", compact(query))
	return d.DB.Exec(d.Rebind(query), args...)
}

func (d *DB) Query(query string, args ...any) (*sql.Rows, error) {
	d.log.Debugw("query", "query", compact(query))
	return d.DB.Query(d.Rebind(query), args...)
}

func (d *DB) QueryRow(query string, args ...any) *sql.Row {
	d.log.Debugw("query row", "query", compact(query))
	return d.DB.QueryRow(d.Rebind(query), args...)
}

func (d *DB) Begin() (*Tx, error) {
	tx, err := d.DB.Begin()
	if err != nil {
		return nil, err
	}
	return &Tx{Tx: tx, dialect: d.dialect}, nil
}

// Tx is the transaction counterpart of DB.
type Tx struct {
	*sql.Tx
	dialect Dialect
}

func (t *Tx) Exec(query string, args ...any) (sql.Result, error) {
	return t.Tx.Exec(rebind(t.dialect, query), args...)
}

func (t *Tx) Query(query string, args ...any) (*sql.Rows, error) {
	return t.Tx.Query(rebind(t.dialect, query), args...)
}

func (t *Tx) QueryRow(query string, args ...any) *sql.Row {
	return t.Tx.QueryRow(rebind(t.dialect, query), args...)
}

// rebind turns ? placeholders into $1..$n for PostgreSQL. Quoted literals are left alone.
func rebind(dialect Dialect, query string) string {
	if dialect != Postgres || !strings.Contains(query, "?") {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	inQuote := false
	for i := 0; i < len(query); i++ {
		c := query[i]
		switch {
		case c == '\'':
			inQuote = !inQuote
			b.WriteByte(c)
		case c == '?' && !inQuote:
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func compact(query string) string {
	return strings.Join(strings.Fields(query), " ")
}
