package calpro

import (
	"fmt"

	"github.com/rajeshthapaliya/cross-platform-calorie-calc/internal/db"
	"github.com/rajeshthapaliya/cross-platform-calorie-calc/internal/service"

	"github.com/spf13/cobra"
)

var foodCmd = &cobra.Command{
	Use:   "food",
	Short: "Log foods for the selected profile",
}

var (
	foodName     string
	foodCalories float64
	foodDate     string
	foodYes      bool
)

var foodAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a food entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cmd.Flags().Changed("calories") {
			return fmt.Errorf("--calories is required")
		}
		return withSession(func(sqldb *db.DB, s *service.Session) error {
			profileID, err := s.ProfileID()
			if err != nil {
				return err
			}
			id, err := service.AddFood(sqldb, service.FoodInput{
				ProfileID: profileID,
				Date:      foodDate,
				Name:      foodName,
				Calories:  foodCalories,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added food %d\n", id)
			return nil
		})
	},
}

var foodListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a day's foods with the food-tab remaining",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(sqldb *db.DB, s *service.Session) error {
			profileID, err := s.ProfileID()
			if err != nil {
				return err
			}
			items, err := service.ListFoods(sqldb, profileID, foodDate)
			if err != nil {
				return err
			}
			view, err := service.FoodTabSummary(sqldb, profileID, foodDate, s.Target)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Date: %s\n", view.Date)
			if len(items) == 0 {
				fmt.Fprintln(out, "No foods logged.")
			} else {
				fmt.Fprintln(out, "ID\tNAME\tCALORIES")
				for _, it := range items {
					fmt.Fprintf(out, "%d\t%s\t%g\n", it.ID, it.Name, it.Calories)
				}
			}
			fmt.Fprintf(out, "Consumed: %s | Target: %s | Remaining: %s\n", kcal(view.Consumed), kcal(view.Target), kcal(view.Remaining))
			return nil
		})
	},
}

var foodResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete every food for a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(sqldb *db.DB, s *service.Session) error {
			profileID, err := s.ProfileID()
			if err != nil {
				return err
			}
			date, err := service.NormalizeDate(foodDate)
			if err != nil {
				return err
			}
			if !foodYes {
				return fmt.Errorf("reset deletes every food for %s; re-run with --yes to confirm", date)
			}
			n, err := service.ResetFoodDay(sqldb, profileID, date)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d food entries for %s\n", n, date)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(foodCmd)
	foodCmd.AddCommand(foodAddCmd, foodListCmd, foodResetCmd)

	foodAddCmd.Flags().StringVar(&foodName, "name", "", "Food name")
	foodAddCmd.Flags().Float64Var(&foodCalories, "calories", 0, "Calories (kcal)")
	for _, c := range []*cobra.Command{foodAddCmd, foodListCmd, foodResetCmd} {
		c.Flags().StringVar(&foodDate, "date", "", "Date YYYY-MM-DD (default today)")
	}
	foodResetCmd.Flags().BoolVar(&foodYes, "yes", false, "Confirm deletion")
}
