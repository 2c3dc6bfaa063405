package service

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rajeshthapaliya/cross-platform-calorie-calc/internal/db"
	"github.com/rajeshthapaliya/cross-platform-calorie-calc/internal/model"
)

const ConfigCurrentProfile = "current_profile"

func SetConfig(sqldb *db.DB, key, value string) error {
	key = strings.TrimSpace(strings.ToLower(key))
	if key == "" {
		return invalid(errors.New("config key is required"))
	}
	_, err := sqldb.Exec(`
INSERT INTO app_config(key, value, updated_at)
VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
`, key, strings.TrimSpace(value))
	if err != nil {
		return fmt.Errorf("set config %q: %w", key, err)
	}
	return nil
}

func GetConfig(sqldb *db.DB, key string) (string, bool, error) {
	key = strings.TrimSpace(strings.ToLower(key))
	if key == "" {
		return "", false, invalid(errors.New("config key is required"))
	}
	var value string
	err := sqldb.QueryRow(`SELECT value FROM app_config WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get config %q: %w", key, err)
	}
	return value, true, nil
}

// UseProfile remembers id as the profile later runs open by default.
func UseProfile(sqldb *db.DB, id int64) error {
	if err := validateProfileID(id); err != nil {
		return err
	}
	return SetConfig(sqldb, ConfigCurrentProfile, strconv.FormatInt(id, 10))
}

// CurrentProfile returns the remembered profile, or nil when none is stored
// or the stored id no longer resolves.
func CurrentProfile(sqldb *db.DB) (*model.Profile, error) {
	value, ok, err := GetConfig(sqldb, ConfigCurrentProfile)
	if err != nil || !ok {
		return nil, err
	}
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return nil, nil
	}
	p, err := GetProfile(sqldb, id)
	if errors.Is(err, ErrProfileNotFound) {
		return nil, nil
	}
	return p, err
}
