package energy

import (
	"fmt"
	"strings"
)

type Gender string

const (
	Male   Gender = "Male"
	Female Gender = "Female"
)

// ParseGender accepts male/female (or m/f) in any case.
func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m":
		return Male, nil
	case "female", "f":
		return Female, nil
	default:
		return "", fmt.Errorf("invalid gender %q (use male or female)", s)
	}
}

func (g Gender) IsMale() bool {
	return strings.EqualFold(strings.TrimSpace(string(g)), "male")
}

type ActivityLevel string

const (
	Sedentary  ActivityLevel = "Sedentary"
	Light      ActivityLevel = "Light"
	Moderate   ActivityLevel = "Moderate"
	Active     ActivityLevel = "Active"
	VeryActive ActivityLevel = "Very Active"
)

var activityFactors = map[ActivityLevel]float64{
	Sedentary:  1.2,
	Light:      1.375,
	Moderate:   1.55,
	Active:     1.725,
	VeryActive: 1.9,
}

// ActivityLevels returns the tiers from least to most active.
func ActivityLevels() []ActivityLevel {
	return []ActivityLevel{Sedentary, Light, Moderate, Active, VeryActive}
}

// ParseActivityLevel never fails: unrecognized labels resolve to Moderate.
func ParseActivityLevel(s string) ActivityLevel {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("_", " ", "-", " ").Replace(norm)
	for _, level := range ActivityLevels() {
		if strings.ToLower(string(level)) == norm {
			return level
		}
	}
	return Moderate
}

// Factor is the TDEE multiplier. Labels outside the table use the Moderate factor.
func (a ActivityLevel) Factor() float64 {
	if f, ok := activityFactors[a]; ok {
		return f
	}
	return activityFactors[Moderate]
}

type Goal string

const (
	Lose     Goal = "Lose"
	Maintain Goal = "Maintain"
	Gain     Goal = "Gain"
)

// ParseGoal never fails: unrecognized goals resolve to Maintain.
func ParseGoal(s string) Goal {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lose":
		return Lose
	case "gain":
		return Gain
	default:
		return Maintain
	}
}

type BMICategory string

const (
	Underweight BMICategory = "Underweight"
	Normal      BMICategory = "Normal"
	Overweight  BMICategory = "Overweight"
	Obese       BMICategory = "Obese"
)
