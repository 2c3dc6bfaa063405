package service

import (
	"fmt"
	"strings"

	"github.com/rajeshthapaliya/cross-platform-calorie-calc/internal/db"
	"github.com/rajeshthapaliya/cross-platform-calorie-calc/internal/model"

	"go.uber.org/multierr"
)

type FoodInput struct {
	ProfileID int64
	Date      string
	Name      string
	Calories  float64
}

// AddFood logs one food line. Negative calories are accepted as corrections.
func AddFood(sqldb *db.DB, in FoodInput) (int64, error) {
	if err := validateProfileID(in.ProfileID); err != nil {
		return 0, err
	}
	date, err := NormalizeDate(in.Date)
	if err != nil {
		return 0, err
	}
	name := strings.TrimSpace(in.Name)
	if errs := multierr.Combine(
		checkRequired("food name", name),
		checkFinite("calories", in.Calories),
	); errs != nil {
		return 0, invalid(errs)
	}

	var id int64
	err = sqldb.QueryRow(`
INSERT INTO foods(user_id, log_date, name, calories)
VALUES(?, ?, ?, ?)
RETURNING id
`, in.ProfileID, date, name, in.Calories).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("add food: %w", err)
	}
	return id, nil
}

// ListFoods returns the day's foods, newest first.
func ListFoods(sqldb *db.DB, profileID int64, date string) ([]model.FoodEntry, error) {
	if err := validateProfileID(profileID); err != nil {
		return nil, err
	}
	date, err := NormalizeDate(date)
	if err != nil {
		return nil, err
	}
	rows, err := sqldb.Query(`
SELECT id, user_id, log_date, name, calories FROM foods
WHERE user_id = ? AND log_date = ?
ORDER BY id DESC
`, profileID, date)
	if err != nil {
		return nil, fmt.Errorf("list foods: %w", err)
	}
	defer rows.Close()

	items := make([]model.FoodEntry, 0)
	for rows.Next() {
		var item model.FoodEntry
		if err := rows.Scan(&item.ID, &item.ProfileID, &item.LogDate, &item.Name, &item.Calories); err != nil {
			return nil, fmt.Errorf("scan food: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate foods: %w", err)
	}
	return items, nil
}

// ResetFoodDay deletes every food for the profile on date and reports how many went.
func ResetFoodDay(sqldb *db.DB, profileID int64, date string) (int64, error) {
	if err := validateProfileID(profileID); err != nil {
		return 0, err
	}
	date, err := NormalizeDate(date)
	if err != nil {
		return 0, err
	}
	res, err := sqldb.Exec(`DELETE FROM foods WHERE user_id = ? AND log_date = ?`, profileID, date)
	if err != nil {
		return 0, fmt.Errorf("reset foods for %s: %w", date, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("read rows affected: %w", err)
	}
	return affected, nil
}
