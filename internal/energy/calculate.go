package energy

type Input struct {
	Gender   Gender
	WeightKG float64
	HeightCM float64
	AgeYears int
	Activity ActivityLevel
	Goal     Goal
	Macros   MacroSplit
}

// DefaultInput mirrors the blank profile form: 25 y, 170 cm, 70 kg, moderate, maintain.
func DefaultInput() Input {
	return Input{
		Gender:   Male,
		WeightKG: 70,
		HeightCM: 170,
		AgeYears: 25,
		Activity: Moderate,
		Goal:     Maintain,
		Macros:   DefaultMacroSplit(),
	}
}

type Result struct {
	BMR         float64      `json:"bmr"`
	TDEE        float64      `json:"tdee"`
	Target      float64      `json:"target"`
	BMI         float64      `json:"bmi"`
	BMICategory BMICategory  `json:"bmi_category"`
	Macros      Macros       `json:"macros"`
	Meals       []MealBudget `json:"meals"`
}

func Calculate(in Input) Result {
	bmr := BMR(in.Gender, in.WeightKG, in.HeightCM, in.AgeYears)
	tdee := TDEE(bmr, in.Activity)
	target := ApplyGoal(tdee, in.Goal)
	bmi := BMI(in.WeightKG, in.HeightCM)
	return Result{
		BMR:         bmr,
		TDEE:        tdee,
		Target:      target,
		BMI:         bmi,
		BMICategory: CategoryFor(bmi),
		Macros:      MacroGrams(target, in.Macros),
		Meals:       MealPlan(target, in.Macros),
	}
}
