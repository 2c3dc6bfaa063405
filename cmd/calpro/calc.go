package calpro

import (
	"encoding/json"
	"fmt"

	"github.com/rajeshthapaliya/cross-platform-calorie-calc/internal/db"
	"github.com/rajeshthapaliya/cross-platform-calorie-calc/internal/energy"
	"github.com/rajeshthapaliya/cross-platform-calorie-calc/internal/service"

	"github.com/spf13/cobra"
)

var (
	calcGender   string
	calcAge      int
	calcHeight   float64
	calcWeight   float64
	calcActivity string
	calcGoal     string
	calcProtein  int
	calcCarb     int
	calcFat      int
	calcJSON     bool
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Calculate BMR, TDEE, target, BMI and macros",
	Long: `Calculate for the selected profile. Any measurement flag overrides the
stored value for this run only; with no profile the blank-form defaults are used.`,
	Example: `  calpro calc
  calpro calc --weight 82 --goal lose
  calpro --profile alice calc --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(sqldb *db.DB, s *service.Session) error {
			in, err := calcInput(cmd, s)
			if err != nil {
				return err
			}
			res := energy.Calculate(in)
			if calcJSON {
				b, err := json.MarshalIndent(res, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal calc json: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(b))
				return nil
			}

			out := cmd.OutOrStdout()
			if s.Profile != nil {
				fmt.Fprintf(out, "Profile: %s\n", s.Profile.Name)
			} else {
				fmt.Fprintln(out, "Profile: none (using defaults)")
			}
			fmt.Fprintf(out, "BMR:     %s\n", kcal(res.BMR))
			fmt.Fprintf(out, "TDEE:    %s (%s)\n", kcal(res.TDEE), in.Activity)
			fmt.Fprintf(out, "Target:  %s (%s)\n", kcal(res.Target), in.Goal)
			fmt.Fprintf(out, "BMI:     %.1f (%s)\n", res.BMI, res.BMICategory)
			fmt.Fprintf(out, "Macros:  P %.0fg | C %.0fg | F %.1fg\n", res.Macros.ProteinG, res.Macros.CarbG, res.Macros.FatG)
			return nil
		})
	},
}

// calcInput starts from the selected profile (or defaults) and applies changed flags.
func calcInput(cmd *cobra.Command, s *service.Session) (energy.Input, error) {
	in := energy.DefaultInput()
	if s.Profile != nil {
		in = s.Profile.CalcInput()
	}
	flags := cmd.Flags()
	if flags.Changed("gender") {
		g, err := energy.ParseGender(calcGender)
		if err != nil {
			return energy.Input{}, fmt.Errorf("%w: %w", service.ErrValidation, err)
		}
		in.Gender = g
	}
	if flags.Changed("age") {
		in.AgeYears = calcAge
	}
	if flags.Changed("height") {
		in.HeightCM = calcHeight
	}
	if flags.Changed("weight") {
		in.WeightKG = calcWeight
	}
	if flags.Changed("activity") {
		in.Activity = energy.ParseActivityLevel(calcActivity)
	}
	if flags.Changed("goal") {
		in.Goal = energy.ParseGoal(calcGoal)
	}
	if flags.Changed("protein") {
		in.Macros.Protein = calcProtein
	}
	if flags.Changed("carb") {
		in.Macros.Carb = calcCarb
	}
	if flags.Changed("fat") {
		in.Macros.Fat = calcFat
	}
	if err := service.CheckCalcInput(in); err != nil {
		return energy.Input{}, err
	}
	return in, nil
}

func addCalcFlags(c *cobra.Command) {
	c.Flags().StringVar(&calcGender, "gender", "", "male or female")
	c.Flags().IntVar(&calcAge, "age", 0, "Age in years")
	c.Flags().Float64Var(&calcHeight, "height", 0, "Height in cm")
	c.Flags().Float64Var(&calcWeight, "weight", 0, "Weight in kg")
	c.Flags().StringVar(&calcActivity, "activity", "", "Sedentary, Light, Moderate, Active or Very Active")
	c.Flags().StringVar(&calcGoal, "goal", "", "lose, maintain or gain")
	c.Flags().IntVar(&calcProtein, "protein", 0, "Protein % of calories")
	c.Flags().IntVar(&calcCarb, "carb", 0, "Carbohydrate % of calories")
	c.Flags().IntVar(&calcFat, "fat", 0, "Fat % of calories")
	c.Flags().BoolVar(&calcJSON, "json", false, "Output as JSON")
}

func init() {
	rootCmd.AddCommand(calcCmd)
	addCalcFlags(calcCmd)
}
