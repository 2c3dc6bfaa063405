package calpro

import (
	"fmt"

	"github.com/rajeshthapaliya/cross-platform-calorie-calc/internal/db"
	"github.com/rajeshthapaliya/cross-platform-calorie-calc/internal/service"

	"github.com/spf13/cobra"
)

var exerciseCmd = &cobra.Command{
	Use:   "exercise",
	Short: "Log exercise for the selected profile",
}

var (
	exerciseName   string
	exerciseBurned float64
	exerciseDate   string
	exerciseYes    bool
)

var exerciseAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an exercise entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cmd.Flags().Changed("calories") {
			return fmt.Errorf("--calories is required")
		}
		return withSession(func(sqldb *db.DB, s *service.Session) error {
			profileID, err := s.ProfileID()
			if err != nil {
				return err
			}
			id, err := service.AddExercise(sqldb, service.ExerciseInput{
				ProfileID:      profileID,
				Date:           exerciseDate,
				Name:           exerciseName,
				CaloriesBurned: exerciseBurned,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added exercise %d\n", id)
			return nil
		})
	},
}

var exerciseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a day's exercise with the net and remaining calories",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(sqldb *db.DB, s *service.Session) error {
			profileID, err := s.ProfileID()
			if err != nil {
				return err
			}
			items, err := service.ListExercises(sqldb, profileID, exerciseDate)
			if err != nil {
				return err
			}
			sum, err := service.ExerciseTabSummary(sqldb, profileID, exerciseDate, s.Target)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Date: %s\n", sum.Date)
			if len(items) == 0 {
				fmt.Fprintln(out, "No exercise logged.")
			} else {
				fmt.Fprintln(out, "ID\tNAME\tBURNED")
				for _, it := range items {
					fmt.Fprintf(out, "%d\t%s\t%g\n", it.ID, it.Name, it.CaloriesBurned)
				}
			}
			fmt.Fprintf(out, "Consumed: %s | Burned: %s | Net: %s | Remaining: %s\n", kcal(sum.Consumed), kcal(sum.Burned), kcal(sum.Net), kcal(sum.Remaining))
			return nil
		})
	},
}

var exerciseResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete every exercise for a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(sqldb *db.DB, s *service.Session) error {
			profileID, err := s.ProfileID()
			if err != nil {
				return err
			}
			date, err := service.NormalizeDate(exerciseDate)
			if err != nil {
				return err
			}
			if !exerciseYes {
				return fmt.Errorf("reset deletes every exercise for %s; re-run with --yes to confirm", date)
			}
			n, err := service.ResetExerciseDay(sqldb, profileID, date)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d exercise entries for %s\n", n, date)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(exerciseCmd)
	exerciseCmd.AddCommand(exerciseAddCmd, exerciseListCmd, exerciseResetCmd)

	exerciseAddCmd.Flags().StringVar(&exerciseName, "name", "", "Exercise name")
	exerciseAddCmd.Flags().Float64Var(&exerciseBurned, "calories", 0, "Calories burned (kcal)")
	for _, c := range []*cobra.Command{exerciseAddCmd, exerciseListCmd, exerciseResetCmd} {
		c.Flags().StringVar(&exerciseDate, "date", "", "Date YYYY-MM-DD (default today)")
	}
	exerciseResetCmd.Flags().BoolVar(&exerciseYes, "yes", false, "Confirm deletion")
}
