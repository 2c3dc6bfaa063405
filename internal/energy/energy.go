// Package energy derives daily energy targets from a body profile.
//
// Every function is pure and total: inputs are validated by callers, and
// pathological values (zero height, negative weight) produce defined but
// meaningless numbers rather than errors.
package energy

import "strings"

const goalAdjustmentKcal = 500

// BMR is the Mifflin-St Jeor basal metabolic rate in kcal/day.
func BMR(gender Gender, weightKG, heightCM float64, ageYears int) float64 {
	bmr := 10*weightKG + 6.25*heightCM - 5*float64(ageYears)
	if gender.IsMale() {
		return bmr + 5
	}
	return bmr - 161
}

func TDEE(bmr float64, activity ActivityLevel) float64 {
	return bmr * activity.Factor()
}

// ApplyGoal shifts TDEE by 500 kcal for lose/gain. Any other goal leaves it unchanged.
func ApplyGoal(tdee float64, goal Goal) float64 {
	switch strings.ToLower(strings.TrimSpace(string(goal))) {
	case "lose":
		return tdee - goalAdjustmentKcal
	case "gain":
		return tdee + goalAdjustmentKcal
	default:
		return tdee
	}
}

func BMI(weightKG, heightCM float64) float64 {
	m := heightCM / 100
	return weightKG / (m * m)
}

// CategoryFor uses half-open bands: [18.5,25) is Normal, [25,30) Overweight.
func CategoryFor(bmi float64) BMICategory {
	switch {
	case bmi < 18.5:
		return Underweight
	case bmi < 25:
		return Normal
	case bmi < 30:
		return Overweight
	default:
		return Obese
	}
}

func BMICategoryFor(weightKG, heightCM float64) BMICategory {
	return CategoryFor(BMI(weightKG, heightCM))
}
