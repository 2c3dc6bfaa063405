package calpro

import (
	"fmt"

	"github.com/rajeshthapaliya/cross-platform-calorie-calc/internal/db"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the calpro database",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *db.DB) error {
			version, err := db.SchemaVersion(sqldb)
			if err != nil {
				return err
			}
			log.Infow("database ready", "driver", sqldb.Dialect(), "schema_version", version)
			if sqldb.Dialect() == db.SQLite {
				fmt.Fprintf(cmd.OutOrStdout(), "Initialized calpro database at %s (schema v%d)\n", cfg.DB.DSN, version)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Initialized calpro %s database (schema v%d)\n", sqldb.Dialect(), version)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
