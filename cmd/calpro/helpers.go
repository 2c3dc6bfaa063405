package calpro

import (
	"errors"
	"fmt"
	"io"

	"github.com/rajeshthapaliya/cross-platform-calorie-calc/internal/app"
	"github.com/rajeshthapaliya/cross-platform-calorie-calc/internal/db"
	"github.com/rajeshthapaliya/cross-platform-calorie-calc/internal/service"
)

func withDB(run func(*db.DB) error) error {
	dialect, err := cfg.Dialect()
	if err != nil {
		return err
	}
	if dialect == db.SQLite {
		if err := app.EnsureDBDir(cfg.DB.DSN); err != nil {
			return err
		}
	}
	sqldb, err := db.Open(dialect, cfg.DB.DSN, db.WithLogger(log))
	if err != nil {
		return err
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		return err
	}
	return run(sqldb)
}

// withSession opens the store and selects --profile (or the current profile).
func withSession(run func(*db.DB, *service.Session) error) error {
	return withDB(func(sqldb *db.DB) error {
		s, err := service.OpenSession(sqldb, profileName, cfg.Defaults.TargetKcal)
		if err != nil {
			return err
		}
		if s.Profile != nil {
			log.Debugw("profile selected", "profile", s.Profile.Name, "target", s.Target)
		}
		return run(sqldb, s)
	})
}

// printEmpty reports an empty state and swallows ErrNoData so the command exits 0.
func printEmpty(w io.Writer, err error, msg string) error {
	if errors.Is(err, service.ErrNoData) {
		fmt.Fprintln(w, msg)
		return nil
	}
	return err
}

func kcal(v float64) string {
	return fmt.Sprintf("%.0f kcal", v)
}
