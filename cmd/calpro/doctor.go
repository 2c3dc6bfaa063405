package calpro

import (
	"fmt"

	"github.com/rajeshthapaliya/cross-platform-calorie-calc/internal/db"
	"github.com/rajeshthapaliya/cross-platform-calorie-calc/internal/service"

	"github.com/spf13/cobra"
)

var doctorFix bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run data integrity checks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *db.DB) error {
			report, err := service.RunDoctor(sqldb, doctorFix)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Orphan foods: %d\n", report.OrphanFoods)
			fmt.Fprintf(out, "Orphan exercises: %d\n", report.OrphanExercises)
			fmt.Fprintf(out, "Orphan weights: %d\n", report.OrphanWeights)
			fmt.Fprintf(out, "Malformed log dates: %d\n", report.BadDateRows)
			fmt.Fprintf(out, "Profiles with invalid macros: %d\n", report.BadMacroRows)
			if doctorFix {
				fmt.Fprintf(out, "Reset macros on %d profiles\n", report.FixedMacroRows)
				report, err = service.RunDoctor(sqldb, false)
				if err != nil {
					return err
				}
			}
			if !report.Healthy() {
				return fmt.Errorf("doctor found integrity issues")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "Reset invalid macro splits to 30/45/25")
}
