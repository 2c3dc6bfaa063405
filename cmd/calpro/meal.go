package calpro

import (
	"encoding/json"
	"fmt"

	"github.com/rajeshthapaliya/cross-platform-calorie-calc/internal/db"
	"github.com/rajeshthapaliya/cross-platform-calorie-calc/internal/energy"
	"github.com/rajeshthapaliya/cross-platform-calorie-calc/internal/service"

	"github.com/spf13/cobra"
)

var mealPlanCmd = &cobra.Command{
	Use:   "meal-plan",
	Short: "Split the daily target across breakfast, lunch, dinner and snacks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(sqldb *db.DB, s *service.Session) error {
			in, err := calcInput(cmd, s)
			if err != nil {
				return err
			}
			res := energy.Calculate(in)
			if calcJSON {
				b, err := json.MarshalIndent(res.Meals, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal meal plan json: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(b))
				return nil
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Daily target: %s\n", kcal(res.Target))
			fmt.Fprintln(out, "MEAL\tSHARE\tKCAL\tPROTEIN_G\tCARBS_G\tFAT_G\tIDEAS")
			for _, m := range res.Meals {
				fmt.Fprintf(out, "%s\t%.0f%%\t%.0f\t%.0f\t%.0f\t%.1f\t%s\n",
					m.Meal, m.Fraction*100, m.Kcal, m.Macros.ProteinG, m.Macros.CarbG, m.Macros.FatG, m.Ideas)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(mealPlanCmd)
	addCalcFlags(mealPlanCmd)
}
