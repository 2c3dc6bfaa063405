package service

import (
	"fmt"
	"strings"

	"github.com/rajeshthapaliya/cross-platform-calorie-calc/internal/db"
	"github.com/rajeshthapaliya/cross-platform-calorie-calc/internal/model"
)

const kgPerLb = 0.45359237

type WeightInput struct {
	ProfileID int64
	Date      string
	Weight    float64
	Unit      string
}

// Trend is the text rendering of the progress chart.
type Trend struct {
	First  model.WeightEntry
	Latest model.WeightEntry
	Change float64
	Min    float64
	Max    float64
	Count  int
}

func AddWeight(sqldb *db.DB, in WeightInput) (int64, error) {
	if err := validateProfileID(in.ProfileID); err != nil {
		return 0, err
	}
	date, err := NormalizeDate(in.Date)
	if err != nil {
		return 0, err
	}
	if err := checkFinite("weight", in.Weight); err != nil {
		return 0, invalid(err)
	}
	weightKG, err := convertWeightToKG(in.Weight, in.Unit)
	if err != nil {
		return 0, invalid(err)
	}

	var id int64
	err = sqldb.QueryRow(`
INSERT INTO weights(user_id, log_date, weight_kg)
VALUES(?, ?, ?)
RETURNING id
`, in.ProfileID, date, weightKG).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("add weight: %w", err)
	}
	return id, nil
}

// WeightSeries returns every weight for the profile ordered by date string,
// ties broken by insertion order.
func WeightSeries(sqldb *db.DB, profileID int64) ([]model.WeightEntry, error) {
	if err := validateProfileID(profileID); err != nil {
		return nil, err
	}
	rows, err := sqldb.Query(`
SELECT id, user_id, log_date, weight_kg FROM weights
WHERE user_id = ?
ORDER BY log_date ASC, id ASC
`, profileID)
	if err != nil {
		return nil, fmt.Errorf("weight series: %w", err)
	}
	defer rows.Close()

	items := make([]model.WeightEntry, 0)
	for rows.Next() {
		var item model.WeightEntry
		if err := rows.Scan(&item.ID, &item.ProfileID, &item.LogDate, &item.WeightKG); err != nil {
			return nil, fmt.Errorf("scan weight: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate weights: %w", err)
	}
	return items, nil
}

// WeightTrend summarizes a series. Empty input yields ErrNoData.
func WeightTrend(series []model.WeightEntry) (*Trend, error) {
	if len(series) == 0 {
		return nil, ErrNoData
	}
	t := &Trend{
		First:  series[0],
		Latest: series[len(series)-1],
		Min:    series[0].WeightKG,
		Max:    series[0].WeightKG,
		Count:  len(series),
	}
	for _, w := range series[1:] {
		if w.WeightKG < t.Min {
			t.Min = w.WeightKG
		}
		if w.WeightKG > t.Max {
			t.Max = w.WeightKG
		}
	}
	t.Change = t.Latest.WeightKG - t.First.WeightKG
	return t, nil
}

func convertWeightToKG(value float64, unit string) (float64, error) {
	if value <= 0 {
		return 0, fmt.Errorf("weight must be > 0")
	}
	u := strings.ToLower(strings.TrimSpace(unit))
	switch u {
	case "", "kg":
		return value, nil
	case "lb", "lbs":
		return value * kgPerLb, nil
	default:
		return 0, fmt.Errorf("invalid weight unit %q (use kg or lb)", unit)
	}
}
