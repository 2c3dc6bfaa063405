//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=service_test

package service

import (
	"database/sql"
	"fmt"

	"github.com/rajeshthapaliya/cross-platform-calorie-calc/internal/db"
)

// TotalsReader yields per-day calorie sums. Both methods return 0 for a day
// with no rows.
type TotalsReader interface {
	FoodTotal(profileID int64, date string) (float64, error)
	ExerciseTotal(profileID int64, date string) (float64, error)
}

// DaySummary is the exercise-tab view: burned calories count against intake.
type DaySummary struct {
	Date      string  `json:"date"`
	Target    float64 `json:"target"`
	Consumed  float64 `json:"consumed"`
	Burned    float64 `json:"burned"`
	Net       float64 `json:"net"`
	Remaining float64 `json:"remaining"`
}

// FoodView is the food-tab view. Its Remaining ignores exercise, unlike
// DaySummary.Remaining; the two are kept separate on purpose.
type FoodView struct {
	Date      string  `json:"date"`
	Target    float64 `json:"target"`
	Consumed  float64 `json:"consumed"`
	Remaining float64 `json:"remaining"`
}

func FoodTotal(sqldb *db.DB, profileID int64, date string) (float64, error) {
	var total sql.NullFloat64
	if err := sqldb.QueryRow(`SELECT SUM(calories) FROM foods WHERE user_id = ? AND log_date = ?`, profileID, date).Scan(&total); err != nil {
		return 0, fmt.Errorf("food total for %s: %w", date, err)
	}
	return total.Float64, nil
}

func ExerciseTotal(sqldb *db.DB, profileID int64, date string) (float64, error) {
	var total sql.NullFloat64
	if err := sqldb.QueryRow(`SELECT SUM(calories_burned) FROM exercises WHERE user_id = ? AND log_date = ?`, profileID, date).Scan(&total); err != nil {
		return 0, fmt.Errorf("exercise total for %s: %w", date, err)
	}
	return total.Float64, nil
}

// Summarize derives net and remaining from raw totals.
func Summarize(date string, target, consumed, burned float64) DaySummary {
	net := consumed - burned
	return DaySummary{
		Date:      date,
		Target:    target,
		Consumed:  consumed,
		Burned:    burned,
		Net:       net,
		Remaining: target - net,
	}
}

type storeTotals struct {
	db *db.DB
}

func (s storeTotals) FoodTotal(profileID int64, date string) (float64, error) {
	return FoodTotal(s.db, profileID, date)
}

func (s storeTotals) ExerciseTotal(profileID int64, date string) (float64, error) {
	return ExerciseTotal(s.db, profileID, date)
}

type Aggregator struct {
	totals TotalsReader
}

func NewAggregator(totals TotalsReader) *Aggregator {
	return &Aggregator{totals: totals}
}

func NewStoreAggregator(sqldb *db.DB) *Aggregator {
	return NewAggregator(storeTotals{db: sqldb})
}

// Daily returns consumed, burned, net and remaining = target - net.
func (a *Aggregator) Daily(profileID int64, date string, target float64) (*DaySummary, error) {
	if err := validateProfileID(profileID); err != nil {
		return nil, err
	}
	date, err := NormalizeDate(date)
	if err != nil {
		return nil, err
	}
	consumed, err := a.totals.FoodTotal(profileID, date)
	if err != nil {
		return nil, err
	}
	burned, err := a.totals.ExerciseTotal(profileID, date)
	if err != nil {
		return nil, err
	}
	s := Summarize(date, target, consumed, burned)
	return &s, nil
}

// FoodTab returns remaining = target - consumed. Exercise is not read.
func (a *Aggregator) FoodTab(profileID int64, date string, target float64) (*FoodView, error) {
	if err := validateProfileID(profileID); err != nil {
		return nil, err
	}
	date, err := NormalizeDate(date)
	if err != nil {
		return nil, err
	}
	consumed, err := a.totals.FoodTotal(profileID, date)
	if err != nil {
		return nil, err
	}
	return &FoodView{
		Date:      date,
		Target:    target,
		Consumed:  consumed,
		Remaining: target - consumed,
	}, nil
}

func (a *Aggregator) ExerciseTab(profileID int64, date string, target float64) (*DaySummary, error) {
	return a.Daily(profileID, date, target)
}

func DailySummary(sqldb *db.DB, profileID int64, date string, target float64) (*DaySummary, error) {
	return NewStoreAggregator(sqldb).Daily(profileID, date, target)
}

func FoodTabSummary(sqldb *db.DB, profileID int64, date string, target float64) (*FoodView, error) {
	return NewStoreAggregator(sqldb).FoodTab(profileID, date, target)
}

func ExerciseTabSummary(sqldb *db.DB, profileID int64, date string, target float64) (*DaySummary, error) {
	return NewStoreAggregator(sqldb).ExerciseTab(profileID, date, target)
}
