package db

import (
	"database/sql"
	"errors"
	"fmt"
)

type migration struct {
	version  int
	name     string
	sqlite   []string
	postgres []string
}

var migrations = []migration{
	{
		version: 1,
		name:    "initial_schema",
		sqlite: []string{
			`CREATE TABLE IF NOT EXISTS users (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL UNIQUE COLLATE NOCASE,
  gender TEXT,
  age INTEGER,
  height_cm REAL,
  weight_kg REAL,
  activity TEXT,
  goal TEXT,
  macro_json TEXT
)`,
			`CREATE TABLE IF NOT EXISTS foods (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  user_id INTEGER NOT NULL,
  log_date TEXT NOT NULL,
  name TEXT NOT NULL,
  calories REAL NOT NULL,
  FOREIGN KEY(user_id) REFERENCES users(id)
)`,
			`CREATE TABLE IF NOT EXISTS exercises (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  user_id INTEGER NOT NULL,
  log_date TEXT NOT NULL,
  name TEXT NOT NULL,
  calories_burned REAL NOT NULL,
  FOREIGN KEY(user_id) REFERENCES users(id)
)`,
			`CREATE TABLE IF NOT EXISTS weights (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  user_id INTEGER NOT NULL,
  log_date TEXT NOT NULL,
  weight_kg REAL NOT NULL,
  FOREIGN KEY(user_id) REFERENCES users(id)
)`,
		},
		postgres: []string{
			`CREATE TABLE IF NOT EXISTS users (
  id BIGSERIAL PRIMARY KEY,
  name TEXT NOT NULL,
  gender TEXT,
  age INTEGER,
  height_cm DOUBLE PRECISION,
  weight_kg DOUBLE PRECISION,
  activity TEXT,
  goal TEXT,
  macro_json TEXT
)`,
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_users_name_nocase ON users (lower(name))`,
			`CREATE TABLE IF NOT EXISTS foods (
  id BIGSERIAL PRIMARY KEY,
  user_id BIGINT NOT NULL REFERENCES users(id),
  log_date TEXT NOT NULL,
  name TEXT NOT NULL,
  calories DOUBLE PRECISION NOT NULL
)`,
			`CREATE TABLE IF NOT EXISTS exercises (
  id BIGSERIAL PRIMARY KEY,
  user_id BIGINT NOT NULL REFERENCES users(id),
  log_date TEXT NOT NULL,
  name TEXT NOT NULL,
  calories_burned DOUBLE PRECISION NOT NULL
)`,
			`CREATE TABLE IF NOT EXISTS weights (
  id BIGSERIAL PRIMARY KEY,
  user_id BIGINT NOT NULL REFERENCES users(id),
  log_date TEXT NOT NULL,
  weight_kg DOUBLE PRECISION NOT NULL
)`,
		},
	},
	{
		version: 2,
		name:    "log_date_indexes",
		sqlite: []string{
			`CREATE INDEX IF NOT EXISTS idx_foods_user_date ON foods(user_id, log_date)`,
			`CREATE INDEX IF NOT EXISTS idx_exercises_user_date ON exercises(user_id, log_date)`,
			`CREATE INDEX IF NOT EXISTS idx_weights_user_date ON weights(user_id, log_date)`,
		},
		postgres: []string{
			`CREATE INDEX IF NOT EXISTS idx_foods_user_date ON foods(user_id, log_date)`,
			`CREATE INDEX IF NOT EXISTS idx_exercises_user_date ON exercises(user_id, log_date)`,
			`CREATE INDEX IF NOT EXISTS idx_weights_user_date ON weights(user_id, log_date)`,
		},
	},
	{
		version: 3,
		name:    "app_config",
		sqlite: []string{
			`CREATE TABLE IF NOT EXISTS app_config (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updated_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
)`,
		},
		postgres: []string{
			`CREATE TABLE IF NOT EXISTS app_config (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`,
		},
	},
}

func (m migration) statements(dialect Dialect) []string {
	if dialect == Postgres {
		return m.postgres
	}
	return m.sqlite
}

func ApplyMigrations(d *DB) error {
	if _, err := d.Exec(`
CREATE TABLE IF NOT EXISTS schema_migrations (
  version INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`); err != nil {
		return fmt.Errorf("ensure schema_migrations table: %w", err)
	}

	for _, m := range migrations {
		var exists int
		err := d.QueryRow(`SELECT 1 FROM schema_migrations WHERE version = ?`, m.version).Scan(&exists)
		if err == nil {
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("check migration version %d: %w", m.version, err)
		}

		tx, err := d.Begin()
		if err != nil {
			return fmt.Errorf("begin migration tx: %w", err)
		}
		for _, stmt := range m.statements(d.dialect) {
			if _, err := tx.Exec(stmt); err != nil {
				_ = tx.Rollback()
				return fmt.Errorf("apply migration version %d (%s): %w", m.version, m.name, err)
			}
		}
		if _, err := tx.Exec(`INSERT INTO schema_migrations(version, name) VALUES(?, ?)`, m.version, m.name); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record migration version %d: %w", m.version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration version %d: %w", m.version, err)
		}
		d.log.Infow("applied migration", "version", m.version, "name", m.name)
	}
	return nil
}

// SchemaVersion returns the highest applied migration version, 0 when none.
func SchemaVersion(d *DB) (int, error) {
	var v sql.NullInt64
	if err := d.QueryRow(`SELECT MAX(version) FROM schema_migrations`).Scan(&v); err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	return int(v.Int64), nil
}
