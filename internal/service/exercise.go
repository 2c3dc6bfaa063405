package service

import (
	"fmt"
	"strings"

	"github.com/rajeshthapaliya/cross-platform-calorie-calc/internal/db"
	"github.com/rajeshthapaliya/cross-platform-calorie-calc/internal/model"

	"go.uber.org/multierr"
)

type ExerciseInput struct {
	ProfileID      int64
	Date           string
	Name           string
	CaloriesBurned float64
}

func AddExercise(sqldb *db.DB, in ExerciseInput) (int64, error) {
	if err := validateProfileID(in.ProfileID); err != nil {
		return 0, err
	}
	date, err := NormalizeDate(in.Date)
	if err != nil {
		return 0, err
	}
	name := strings.TrimSpace(in.Name)
	if errs := multierr.Combine(
		checkRequired("exercise name", name),
		checkFinite("calories burned", in.CaloriesBurned),
	); errs != nil {
		return 0, invalid(errs)
	}

	var id int64
	err = sqldb.QueryRow(`
INSERT INTO exercises(user_id, log_date, name, calories_burned)
VALUES(?, ?, ?, ?)
RETURNING id
`, in.ProfileID, date, name, in.CaloriesBurned).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("add exercise: %w", err)
	}
	return id, nil
}

func ListExercises(sqldb *db.DB, profileID int64, date string) ([]model.ExerciseEntry, error) {
	if err := validateProfileID(profileID); err != nil {
		return nil, err
	}
	date, err := NormalizeDate(date)
	if err != nil {
		return nil, err
	}
	rows, err := sqldb.Query(`
SELECT id, user_id, log_date, name, calories_burned FROM exercises
WHERE user_id = ? AND log_date = ?
ORDER BY id DESC
`, profileID, date)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	defer rows.Close()

	items := make([]model.ExerciseEntry, 0)
	for rows.Next() {
		var item model.ExerciseEntry
		if err := rows.Scan(&item.ID, &item.ProfileID, &item.LogDate, &item.Name, &item.CaloriesBurned); err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate exercises: %w", err)
	}
	return items, nil
}

func ResetExerciseDay(sqldb *db.DB, profileID int64, date string) (int64, error) {
	if err := validateProfileID(profileID); err != nil {
		return 0, err
	}
	date, err := NormalizeDate(date)
	if err != nil {
		return 0, err
	}
	res, err := sqldb.Exec(`DELETE FROM exercises WHERE user_id = ? AND log_date = ?`, profileID, date)
	if err != nil {
		return 0, fmt.Errorf("reset exercises for %s: %w", date, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("read rows affected: %w", err)
	}
	return affected, nil
}
