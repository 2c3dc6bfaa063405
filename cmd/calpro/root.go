package calpro

import (
	"fmt"
	"os"

	"github.com/rajeshthapaliya/cross-platform-calorie-calc/internal/config"
	"github.com/rajeshthapaliya/cross-platform-calorie-calc/internal/db"
	"github.com/rajeshthapaliya/cross-platform-calorie-calc/pkg/logger"

	"github.com/spf13/cobra"
)

var (
	dbPath      string
	dbDriver    string
	configPath  string
	profileName string
	logLevel    string

	cfg *config.Config
	log = logger.NewNop()
)

var rootCmd = &cobra.Command{
	Use:           "calpro",
	Short:         "calpro calculates calorie targets and tracks daily intake",
	Long:          "calpro computes BMR, TDEE, goal-adjusted targets, macros and meal budgets, and keeps a local food, exercise and weight log per profile.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if dbDriver != "" {
			if _, err := db.ParseDialect(dbDriver); err != nil {
				return err
			}
			c.DB.Driver = dbDriver
		}
		if dbPath != "" {
			c.DB.DSN = dbPath
		}
		if logLevel != "" {
			c.Log.Level = logLevel
		}
		l, err := logger.New(logger.Options{
			Level:  c.Log.Level,
			JSON:   c.Log.JSON,
			File:   c.Log.File,
			Output: cmd.ErrOrStderr(),
		})
		if err != nil {
			return fmt.Errorf("build logger: %w", err)
		}
		cfg = c
		log = l
		log.Debugw("config loaded", "driver", c.DB.Driver, "target_kcal", c.Defaults.TargetKcal)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return log.Close()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Debugw("command failed", "error", err)
		_ = log.Close()
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database path (sqlite) or DSN (postgres)")
	rootCmd.PersistentFlags().StringVar(&dbDriver, "driver", "", "Database driver: sqlite or postgres")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default calpro.yaml in ., the user config dir, or ~/.calpro)")
	rootCmd.PersistentFlags().StringVar(&profileName, "profile", "", "Profile to use for this run (default: the current profile)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
}
