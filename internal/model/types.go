package model

import "github.com/rajeshthapaliya/cross-platform-calorie-calc/internal/energy"

type Profile struct {
	ID       int64                `json:"id"`
	Name     string               `json:"name"`
	Gender   energy.Gender        `json:"gender"`
	Age      int                  `json:"age"`
	HeightCM float64              `json:"height_cm"`
	WeightKG float64              `json:"weight_kg"`
	Activity energy.ActivityLevel `json:"activity"`
	Goal     energy.Goal          `json:"goal"`
	Macros   energy.MacroSplit    `json:"macros"`
}

func (p Profile) CalcInput() energy.Input {
	return energy.Input{
		Gender:   p.Gender,
		WeightKG: p.WeightKG,
		HeightCM: p.HeightCM,
		AgeYears: p.Age,
		Activity: p.Activity,
		Goal:     p.Goal,
		Macros:   p.Macros,
	}
}

type FoodEntry struct {
	ID        int64   `json:"id"`
	ProfileID int64   `json:"profile_id"`
	LogDate   string  `json:"log_date"`
	Name      string  `json:"name"`
	Calories  float64 `json:"calories"`
}

type ExerciseEntry struct {
	ID             int64   `json:"id"`
	ProfileID      int64   `json:"profile_id"`
	LogDate        string  `json:"log_date"`
	Name           string  `json:"name"`
	CaloriesBurned float64 `json:"calories_burned"`
}

type WeightEntry struct {
	ID        int64   `json:"id"`
	ProfileID int64   `json:"profile_id"`
	LogDate   string  `json:"log_date"`
	WeightKG  float64 `json:"weight_kg"`
}
