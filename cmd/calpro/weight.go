package calpro

import (
	"fmt"

	"github.com/rajeshthapaliya/cross-platform-calorie-calc/internal/db"
	"github.com/rajeshthapaliya/cross-platform-calorie-calc/internal/service"

	"github.com/spf13/cobra"
)

var weightCmd = &cobra.Command{
	Use:   "weight",
	Short: "Track body weight over time",
}

var (
	weightValue float64
	weightUnit  string
	weightDate  string
)

var weightAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a weight",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(sqldb *db.DB, s *service.Session) error {
			profileID, err := s.ProfileID()
			if err != nil {
				return err
			}
			id, err := service.AddWeight(sqldb, service.WeightInput{
				ProfileID: profileID,
				Date:      weightDate,
				Weight:    weightValue,
				Unit:      weightUnit,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added weight %d\n", id)
			return nil
		})
	},
}

var weightSeriesCmd = &cobra.Command{
	Use:   "series",
	Short: "Show the weight history and trend",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(sqldb *db.DB, s *service.Session) error {
			profileID, err := s.ProfileID()
			if err != nil {
				return err
			}
			series, err := service.WeightSeries(sqldb, profileID)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			trend, err := service.WeightTrend(series)
			if err != nil {
				return printEmpty(out, err, "No weight entries yet. Add one with `calpro weight add --weight <kg>`.")
			}
			fmt.Fprintln(out, "DATE\tWEIGHT_KG")
			for _, w := range series {
				fmt.Fprintf(out, "%s\t%.1f\n", w.LogDate, w.WeightKG)
			}
			fmt.Fprintf(out, "Entries: %d | Min: %.1f kg | Max: %.1f kg\n", trend.Count, trend.Min, trend.Max)
			fmt.Fprintf(out, "Change: %+.1f kg (%s to %s)\n", trend.Change, trend.First.LogDate, trend.Latest.LogDate)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(weightCmd)
	weightCmd.AddCommand(weightAddCmd, weightSeriesCmd)

	weightAddCmd.Flags().Float64Var(&weightValue, "weight", 0, "Weight value")
	weightAddCmd.Flags().StringVar(&weightUnit, "unit", "kg", "Weight unit: kg or lb")
	weightAddCmd.Flags().StringVar(&weightDate, "date", "", "Date YYYY-MM-DD (default today)")
}
