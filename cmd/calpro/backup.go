package calpro

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/rajeshthapaliya/cross-platform-calorie-calc/internal/db"
	"github.com/rajeshthapaliya/cross-platform-calorie-calc/internal/service"

	"github.com/spf13/cobra"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Manage SQLite database backups",
}

var (
	backupOut    string
	backupDir    string
	restoreFile  string
	restoreForce bool
)

func defaultBackupDir() string {
	if backupDir != "" {
		return backupDir
	}
	return filepath.Join(filepath.Dir(cfg.DB.DSN), "backups")
}

func requireSQLite() error {
	d, err := cfg.Dialect()
	if err != nil {
		return err
	}
	if d != db.SQLite {
		return fmt.Errorf("backups are only managed for the sqlite driver")
	}
	return nil
}

var backupCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Snapshot the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSQLite(); err != nil {
			return err
		}
		out := backupOut
		if out == "" {
			out = filepath.Join(defaultBackupDir(), fmt.Sprintf("calpro-%s.db", time.Now().Format("20060102-150405")))
		}
		return withDB(func(sqldb *db.DB) error {
			info, err := service.CreateBackup(sqldb, out)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created backup: %s\n", info.Path)
			fmt.Fprintf(cmd.OutOrStdout(), "Checksum: %s\n", info.Checksum)
			return nil
		})
	},
}

var backupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List backups",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSQLite(); err != nil {
			return err
		}
		items, err := service.ListBackups(defaultBackupDir())
		if err != nil {
			return err
		}
		if len(items) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No backups found.")
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), "FILE\tSIZE\tCREATED\tCHECKSUM")
		for _, it := range items {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\t%s\t%s\n", it.Path, it.SizeBytes, it.CreatedAt.Format(time.RFC3339), it.Checksum)
		}
		return nil
	},
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Restore the database from a backup",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSQLite(); err != nil {
			return err
		}
		if restoreFile == "" {
			return fmt.Errorf("--file is required")
		}
		if err := service.RestoreBackup(restoreFile, cfg.DB.DSN, restoreForce); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Restored backup from %s\n", restoreFile)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(backupCmd)
	backupCmd.AddCommand(backupCreateCmd, backupListCmd, backupRestoreCmd)

	backupCreateCmd.Flags().StringVar(&backupOut, "out", "", "Backup output file path")
	backupCreateCmd.Flags().StringVar(&backupDir, "dir", "", "Backup directory (used when --out is empty)")
	backupListCmd.Flags().StringVar(&backupDir, "dir", "", "Backup directory (default: alongside the DB under backups/)")
	backupRestoreCmd.Flags().StringVar(&restoreFile, "file", "", "Backup .db file path")
	backupRestoreCmd.Flags().BoolVar(&restoreForce, "force", false, "Overwrite the existing DB")
}
