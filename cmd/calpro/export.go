package calpro

import (
	"fmt"
	"strings"

	"github.com/rajeshthapaliya/cross-platform-calorie-calc/internal/db"
	"github.com/rajeshthapaliya/cross-platform-calorie-calc/internal/service"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export logged data",
}

var (
	exportDate string
	exportDir  string
)

var exportCSVCmd = &cobra.Command{
	Use:   "csv",
	Short: "Write a day's foods and exercises as two CSV files",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := exportDir
		if strings.TrimSpace(dir) == "" {
			dir = cfg.Export.Dir
		}
		return withSession(func(sqldb *db.DB, s *service.Session) error {
			profileID, err := s.ProfileID()
			if err != nil {
				return err
			}
			res, err := service.ExportDayCSV(sqldb, profileID, exportDate, dir)
			if err != nil {
				return err
			}
			log.Debugw("exported day", "foods", res.Foods, "exercises", res.Exercises)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Exported %d foods to %s\n", res.Foods, res.FoodsPath)
			fmt.Fprintf(out, "Exported %d exercises to %s\n", res.Exercises, res.ExercisesPath)
			if res.Foods == 0 && res.Exercises == 0 {
				fmt.Fprintln(out, "Nothing was logged on that day; the files only contain headers.")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.AddCommand(exportCSVCmd)
	exportCSVCmd.Flags().StringVar(&exportDate, "date", "", "Date YYYY-MM-DD (default today)")
	exportCSVCmd.Flags().StringVar(&exportDir, "dir", "", "Output directory (default export.dir from config)")
}
