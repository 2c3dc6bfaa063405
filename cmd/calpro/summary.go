package calpro

import (
	"encoding/json"
	"fmt"

	"github.com/rajeshthapaliya/cross-platform-calorie-calc/internal/db"
	"github.com/rajeshthapaliya/cross-platform-calorie-calc/internal/service"

	"github.com/spf13/cobra"
)

var (
	summaryDate string
	summaryJSON bool
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the food and exercise views of a day",
	Long: `Show both daily views for the selected profile.

The food view's remaining ignores exercise (target - consumed). The exercise
view counts burned calories against intake (target - (consumed - burned)).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(sqldb *db.DB, s *service.Session) error {
			profileID, err := s.ProfileID()
			if err != nil {
				return err
			}
			agg := service.NewStoreAggregator(sqldb)
			food, err := agg.FoodTab(profileID, summaryDate, s.Target)
			if err != nil {
				return err
			}
			day, err := agg.ExerciseTab(profileID, summaryDate, s.Target)
			if err != nil {
				return err
			}
			if summaryJSON {
				b, err := json.MarshalIndent(map[string]any{
					"profile":  s.Profile.Name,
					"food":     food,
					"exercise": day,
				}, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal summary json: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(b))
				return nil
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Profile: %s\n", s.Profile.Name)
			fmt.Fprintf(out, "Date: %s\n", day.Date)
			fmt.Fprintf(out, "Target: %s\n", kcal(s.Target))
			fmt.Fprintf(out, "Food view:     consumed %s, remaining %s\n", kcal(food.Consumed), kcal(food.Remaining))
			fmt.Fprintf(out, "Exercise view: consumed %s, burned %s, net %s, remaining %s\n", kcal(day.Consumed), kcal(day.Burned), kcal(day.Net), kcal(day.Remaining))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
	summaryCmd.Flags().StringVar(&summaryDate, "date", "", "Date YYYY-MM-DD (default today)")
	summaryCmd.Flags().BoolVar(&summaryJSON, "json", false, "Output as JSON")
}
