package energy

const (
	ProteinKcalPerGram = 4
	CarbKcalPerGram    = 4
	FatKcalPerGram     = 9
)

// MacroSplit holds protein/carb/fat shares of daily energy in whole percent.
type MacroSplit struct {
	Protein int `json:"protein"`
	Carb    int `json:"carb"`
	Fat     int `json:"fat"`
}

func DefaultMacroSplit() MacroSplit {
	return MacroSplit{Protein: 30, Carb: 45, Fat: 25}
}

func (m MacroSplit) Total() int {
	return m.Protein + m.Carb + m.Fat
}

type Macros struct {
	ProteinG float64 `json:"protein_g"`
	CarbG    float64 `json:"carb_g"`
	FatG     float64 `json:"fat_g"`
}

func MacroGrams(targetKcal float64, split MacroSplit) Macros {
	return Macros{
		ProteinG: targetKcal * float64(split.Protein) / 100 / ProteinKcalPerGram,
		CarbG:    targetKcal * float64(split.Carb) / 100 / CarbKcalPerGram,
		FatG:     targetKcal * float64(split.Fat) / 100 / FatKcalPerGram,
	}
}

type Meal string

const (
	Breakfast Meal = "Breakfast"
	Lunch     Meal = "Lunch"
	Dinner    Meal = "Dinner"
	Snacks    Meal = "Snacks"
)

var mealSplits = []struct {
	meal     Meal
	fraction float64
	ideas    string
}{
	{Breakfast, 0.25, "Oats + milk + banana; Omelette; Greek yogurt bowl"},
	{Lunch, 0.35, "Rice + dal + chicken/soy; Veg salad; Curd"},
	{Dinner, 0.30, "Grilled paneer/chicken + veggies; Chapati; Soup"},
	{Snacks, 0.10, "Fruits, nuts, peanut butter toast, lassi"},
}

type MealBudget struct {
	Meal     Meal    `json:"meal"`
	Fraction float64 `json:"fraction"`
	Kcal     float64 `json:"kcal"`
	Macros   Macros  `json:"macros"`
	Ideas    string  `json:"ideas"`
}

// MealPlan splits the daily target across four meals. Each meal's grams are
// derived from that meal's own budget, so rounded per-meal figures need not
// add up to the daily macro grams.
func MealPlan(targetKcal float64, split MacroSplit) []MealBudget {
	plan := make([]MealBudget, 0, len(mealSplits))
	for _, s := range mealSplits {
		kcal := targetKcal * s.fraction
		plan = append(plan, MealBudget{
			Meal:     s.meal,
			Fraction: s.fraction,
			Kcal:     kcal,
			Macros:   MacroGrams(kcal, split),
			Ideas:    s.ideas,
		})
	}
	return plan
}
