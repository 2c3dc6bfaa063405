package service

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rajeshthapaliya/cross-platform-calorie-calc/internal/db"
)

type ExportResult struct {
	FoodsPath     string `json:"foods_path"`
	ExercisesPath string `json:"exercises_path"`
	Foods         int    `json:"foods"`
	Exercises     int    `json:"exercises"`
}

// ExportDayCSV writes {name}_{date}_foods.csv and {name}_{date}_exercises.csv
// into dir. Both files are written even when the day is empty.
func ExportDayCSV(sqldb *db.DB, profileID int64, date, dir string) (*ExportResult, error) {
	if err := validateProfileID(profileID); err != nil {
		return nil, err
	}
	date, err := NormalizeDate(date)
	if err != nil {
		return nil, err
	}
	p, err := GetProfile(sqldb, profileID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(dir) == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create export directory: %w", err)
	}

	base := fileSafe(p.Name) + "_" + date
	res := &ExportResult{
		FoodsPath:     filepath.Join(dir, base+"_foods.csv"),
		ExercisesPath: filepath.Join(dir, base+"_exercises.csv"),
	}

	foods, err := dayRows(sqldb, `SELECT name, calories FROM foods WHERE user_id = ? AND log_date = ? ORDER BY id ASC`, profileID, date)
	if err != nil {
		return nil, fmt.Errorf("export foods: %w", err)
	}
	if err := writeCSV(res.FoodsPath, []string{"Food", "Calories"}, foods); err != nil {
		return nil, err
	}
	res.Foods = len(foods)

	exercises, err := dayRows(sqldb, `SELECT name, calories_burned FROM exercises WHERE user_id = ? AND log_date = ? ORDER BY id ASC`, profileID, date)
	if err != nil {
		return nil, fmt.Errorf("export exercises: %w", err)
	}
	if err := writeCSV(res.ExercisesPath, []string{"Exercise", "CaloriesBurned"}, exercises); err != nil {
		return nil, err
	}
	res.Exercises = len(exercises)
	return res, nil
}

func dayRows(sqldb *db.DB, query string, profileID int64, date string) ([][]string, error) {
	rows, err := sqldb.Query(query, profileID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([][]string, 0)
	for rows.Next() {
		var name string
		var kcal float64
		if err := rows.Scan(&name, &kcal); err != nil {
			return nil, err
		}
		out = append(out, []string{name, formatKcal(kcal)})
	}
	return out, rows.Err()
}

func writeCSV(path string, header []string, records [][]string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	if err := w.WriteAll(records); err != nil {
		return fmt.Errorf("write csv rows: %w", err)
	}
	return nil
}

// formatKcal keeps one decimal on whole values ("500.0").
func formatKcal(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if math.IsInf(v, 0) || math.IsNaN(v) || strings.ContainsRune(s, '.') {
		return s
	}
	return s + ".0"
}

func fileSafe(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':':
			return '_'
		}
		return r
	}, strings.TrimSpace(name))
}
