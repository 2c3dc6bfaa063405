package service

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rajeshthapaliya/cross-platform-calorie-calc/internal/db"
	"github.com/rajeshthapaliya/cross-platform-calorie-calc/internal/energy"
	"github.com/rajeshthapaliya/cross-platform-calorie-calc/internal/model"

	"go.uber.org/multierr"
)

type ProfileInput struct {
	Name     string
	Gender   string
	Age      int
	HeightCM float64
	WeightKG float64
	Activity string
	Goal     string
	Macros   energy.MacroSplit
}

const profileColumns = `id, name, gender, age, height_cm, weight_kg, activity, goal, macro_json`

// SaveProfile inserts a new profile or updates the one whose name matches
// case-insensitively. Nothing is written when validation fails.
func SaveProfile(sqldb *db.DB, in ProfileInput) (*model.Profile, error) {
	p, err := normalizeProfileInput(in)
	if err != nil {
		return nil, err
	}
	macroJSON, err := json.Marshal(p.Macros)
	if err != nil {
		return nil, fmt.Errorf("encode macros: %w", err)
	}

	tx, err := sqldb.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin save profile: %w", err)
	}
	var id int64
	err = tx.QueryRow(`SELECT id FROM users WHERE lower(name) = lower(?)`, p.Name).Scan(&id)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		err = tx.QueryRow(`
INSERT INTO users(name, gender, age, height_cm, weight_kg, activity, goal, macro_json)
VALUES(?, ?, ?, ?, ?, ?, ?, ?)
RETURNING id
`, p.Name, string(p.Gender), p.Age, p.HeightCM, p.WeightKG, string(p.Activity), string(p.Goal), string(macroJSON)).Scan(&id)
		if err != nil {
			_ = tx.Rollback()
			return nil, fmt.Errorf("insert profile %q: %w", p.Name, err)
		}
	case err != nil:
		_ = tx.Rollback()
		return nil, fmt.Errorf("lookup profile %q: %w", p.Name, err)
	default:
		if _, err := tx.Exec(`
UPDATE users SET gender = ?, age = ?, height_cm = ?, weight_kg = ?, activity = ?, goal = ?, macro_json = ?
WHERE id = ?
`, string(p.Gender), p.Age, p.HeightCM, p.WeightKG, string(p.Activity), string(p.Goal), string(macroJSON), id); err != nil {
			_ = tx.Rollback()
			return nil, fmt.Errorf("update profile %d: %w", id, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit profile %q: %w", p.Name, err)
	}
	return GetProfile(sqldb, id)
}

// CreateProfile registers a name with the blank-form defaults.
func CreateProfile(sqldb *db.DB, name string) (*model.Profile, error) {
	name = strings.TrimSpace(name)
	if err := checkRequired("profile name", name); err != nil {
		return nil, invalid(err)
	}
	defaults := energy.DefaultInput()
	macroJSON, err := json.Marshal(defaults.Macros)
	if err != nil {
		return nil, fmt.Errorf("encode macros: %w", err)
	}

	tx, err := sqldb.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin create profile: %w", err)
	}
	var existing int64
	err = tx.QueryRow(`SELECT id FROM users WHERE lower(name) = lower(?)`, name).Scan(&existing)
	if err == nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("create profile %q: %w", name, ErrProfileExists)
	}
	if !errors.Is(err, sql.ErrNoRows) {
		_ = tx.Rollback()
		return nil, fmt.Errorf("lookup profile %q: %w", name, err)
	}
	var id int64
	err = tx.QueryRow(`
INSERT INTO users(name, gender, age, height_cm, weight_kg, activity, goal, macro_json)
VALUES(?, ?, ?, ?, ?, ?, ?, ?)
RETURNING id
`, name, string(defaults.Gender), defaults.AgeYears, defaults.HeightCM, defaults.WeightKG, string(defaults.Activity), string(defaults.Goal), string(macroJSON)).Scan(&id)
	if err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("insert profile %q: %w", name, err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit profile %q: %w", name, err)
	}
	return GetProfile(sqldb, id)
}

func GetProfile(sqldb *db.DB, id int64) (*model.Profile, error) {
	row := sqldb.QueryRow(`SELECT `+profileColumns+` FROM users WHERE id = ?`, id)
	p, err := scanProfile(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("profile %d: %w", id, ErrProfileNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get profile %d: %w", id, err)
	}
	return p, nil
}

func GetProfileByName(sqldb *db.DB, name string) (*model.Profile, error) {
	name = strings.TrimSpace(name)
	row := sqldb.QueryRow(`SELECT `+profileColumns+` FROM users WHERE lower(name) = lower(?)`, name)
	p, err := scanProfile(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("profile %q: %w", name, ErrProfileNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get profile %q: %w", name, err)
	}
	return p, nil
}

// FirstProfile returns the oldest profile, or nil when none exist.
func FirstProfile(sqldb *db.DB) (*model.Profile, error) {
	row := sqldb.QueryRow(`SELECT ` + profileColumns + ` FROM users ORDER BY id ASC LIMIT 1`)
	p, err := scanProfile(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("first profile: %w", err)
	}
	return p, nil
}

func ListProfileNames(sqldb *db.DB) ([]string, error) {
	rows, err := sqldb.Query(`SELECT name FROM users ORDER BY lower(name) ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan profile name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate profiles: %w", err)
	}
	return names, nil
}

func normalizeProfileInput(in ProfileInput) (model.Profile, error) {
	p := model.Profile{
		Name:     strings.TrimSpace(in.Name),
		Age:      in.Age,
		HeightCM: in.HeightCM,
		WeightKG: in.WeightKG,
		Activity: energy.ParseActivityLevel(in.Activity),
		Goal:     energy.ParseGoal(in.Goal),
		Macros:   in.Macros,
	}

	var errs error
	errs = multierr.Append(errs, checkRequired("profile name", p.Name))
	gender, err := energy.ParseGender(in.Gender)
	if err != nil {
		errs = multierr.Append(errs, err)
	}
	p.Gender = gender
	if p.Age <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("age must be > 0"))
	}
	errs = multierr.Append(errs, checkPositive("height", p.HeightCM))
	errs = multierr.Append(errs, checkPositive("weight", p.WeightKG))
	errs = multierr.Append(errs, validateMacroSplit(p.Macros))
	if errs != nil {
		return model.Profile{}, invalid(errs)
	}
	return p, nil
}

// CheckCalcInput validates an ad-hoc calculator input the same way a profile save does.
func CheckCalcInput(in energy.Input) error {
	var errs error
	if in.AgeYears <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("age must be > 0"))
	}
	errs = multierr.Append(errs, checkPositive("height", in.HeightCM))
	errs = multierr.Append(errs, checkPositive("weight", in.WeightKG))
	errs = multierr.Append(errs, validateMacroSplit(in.Macros))
	if errs != nil {
		return invalid(errs)
	}
	return nil
}

func validateMacroSplit(m energy.MacroSplit) error {
	if m.Protein < 0 || m.Carb < 0 || m.Fat < 0 {
		return fmt.Errorf("macro percentages must be >= 0")
	}
	if total := m.Total(); total != 100 {
		return fmt.Errorf("protein + carbs + fat must equal 100%% (got %d%%)", total)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (*model.Profile, error) {
	var (
		p         model.Profile
		gender    sql.NullString
		age       sql.NullInt64
		height    sql.NullFloat64
		weight    sql.NullFloat64
		activity  sql.NullString
		goal      sql.NullString
		macroJSON sql.NullString
	)
	if err := row.Scan(&p.ID, &p.Name, &gender, &age, &height, &weight, &activity, &goal, &macroJSON); err != nil {
		return nil, err
	}

	defaults := energy.DefaultInput()
	p.Gender = defaults.Gender
	if g, err := energy.ParseGender(gender.String); err == nil {
		p.Gender = g
	} else if gender.Valid {
		p.Gender = energy.Female
	}
	p.Age = defaults.AgeYears
	if age.Valid {
		p.Age = int(age.Int64)
	}
	p.HeightCM = defaults.HeightCM
	if height.Valid {
		p.HeightCM = height.Float64
	}
	p.WeightKG = defaults.WeightKG
	if weight.Valid {
		p.WeightKG = weight.Float64
	}
	p.Activity = energy.ParseActivityLevel(activity.String)
	p.Goal = energy.ParseGoal(goal.String)
	p.Macros = decodeMacros(macroJSON.String)
	return &p, nil
}

func decodeMacros(raw string) energy.MacroSplit {
	if strings.TrimSpace(raw) == "" {
		return energy.DefaultMacroSplit()
	}
	var m energy.MacroSplit
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return energy.DefaultMacroSplit()
	}
	return m
}
