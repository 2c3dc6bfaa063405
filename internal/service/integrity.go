package service

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rajeshthapaliya/cross-platform-calorie-calc/internal/db"
	"github.com/rajeshthapaliya/cross-platform-calorie-calc/internal/energy"
)

type BackupInfo struct {
	Path      string    `json:"path"`
	Checksum  string    `json:"checksum"`
	CreatedAt time.Time `json:"created_at"`
	SizeBytes int64     `json:"size_bytes"`
}

type DoctorReport struct {
	OrphanFoods     int `json:"orphan_foods"`
	OrphanExercises int `json:"orphan_exercises"`
	OrphanWeights   int `json:"orphan_weights"`
	BadMacroRows    int `json:"bad_macro_rows"`
	BadDateRows     int `json:"bad_date_rows"`
	FixedMacroRows  int `json:"fixed_macro_rows,omitempty"`
}

func (r DoctorReport) Healthy() bool {
	return r.OrphanFoods == 0 && r.OrphanExercises == 0 && r.OrphanWeights == 0 && r.BadMacroRows == 0 && r.BadDateRows == 0
}

// CreateBackup snapshots a SQLite store with VACUUM INTO and writes a .sha256 sidecar.
func CreateBackup(sqldb *db.DB, outPath string) (BackupInfo, error) {
	if sqldb.Dialect() != db.SQLite {
		return BackupInfo{}, fmt.Errorf("backup is only supported for the sqlite driver; use pg_dump for postgres")
	}
	if strings.TrimSpace(outPath) == "" {
		return BackupInfo{}, fmt.Errorf("backup output path is required")
	}
	if _, err := os.Stat(outPath); err == nil {
		return BackupInfo{}, fmt.Errorf("backup target %s already exists", outPath)
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return BackupInfo{}, fmt.Errorf("create backup directory: %w", err)
	}
	if _, err := sqldb.Exec(`VACUUM INTO ?`, outPath); err != nil {
		return BackupInfo{}, fmt.Errorf("snapshot database: %w", err)
	}
	checksum, err := fileSHA256(outPath)
	if err != nil {
		return BackupInfo{}, err
	}
	if err := os.WriteFile(outPath+".sha256", []byte(checksum+"\n"), 0o644); err != nil {
		return BackupInfo{}, fmt.Errorf("write checksum file: %w", err)
	}
	st, err := os.Stat(outPath)
	if err != nil {
		return BackupInfo{}, fmt.Errorf("stat backup: %w", err)
	}
	return BackupInfo{Path: outPath, Checksum: checksum, CreatedAt: st.ModTime(), SizeBytes: st.Size()}, nil
}

// RestoreBackup copies a verified snapshot over dbPath. The store must be closed.
func RestoreBackup(backupPath, dbPath string, force bool) error {
	if strings.TrimSpace(backupPath) == "" || strings.TrimSpace(dbPath) == "" {
		return fmt.Errorf("backup path and db path are required")
	}
	if !force {
		if _, err := os.Stat(dbPath); err == nil {
			return fmt.Errorf("target db already exists; use --force to overwrite")
		}
	}
	if expected, err := os.ReadFile(backupPath + ".sha256"); err == nil {
		actual, err := fileSHA256(backupPath)
		if err != nil {
			return err
		}
		if strings.TrimSpace(string(expected)) != actual {
			return fmt.Errorf("backup checksum mismatch")
		}
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return fmt.Errorf("create db directory: %w", err)
	}
	return copyFile(backupPath, dbPath)
}

// ListBackups returns the *.db snapshots in dir, newest first.
func ListBackups(dir string) ([]BackupInfo, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read backup dir: %w", err)
	}
	out := make([]BackupInfo, 0)
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".db") {
			continue
		}
		full := filepath.Join(dir, f.Name())
		st, err := f.Info()
		if err != nil {
			continue
		}
		checksum := ""
		if b, err := os.ReadFile(full + ".sha256"); err == nil {
			checksum = strings.TrimSpace(string(b))
		}
		out = append(out, BackupInfo{Path: full, Checksum: checksum, CreatedAt: st.ModTime(), SizeBytes: st.Size()})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// RunDoctor counts log rows whose profile is gone, log dates that are not
// YYYY-MM-DD and profiles whose stored macros do not decode to a 100% split.
// With fix, bad macro rows are reset to the default split.
func RunDoctor(sqldb *db.DB, fix bool) (DoctorReport, error) {
	report := DoctorReport{}
	orphans := []struct {
		table string
		dest  *int
	}{
		{"foods", &report.OrphanFoods},
		{"exercises", &report.OrphanExercises},
		{"weights", &report.OrphanWeights},
	}
	for _, o := range orphans {
		q := `SELECT COUNT(1) FROM ` + o.table + ` t LEFT JOIN users u ON u.id = t.user_id WHERE u.id IS NULL`
		if err := sqldb.QueryRow(q).Scan(o.dest); err != nil {
			return report, fmt.Errorf("doctor orphan check %s: %w", o.table, err)
		}
	}

	for _, table := range []string{"foods", "exercises", "weights"} {
		n, err := countBadDates(sqldb, table)
		if err != nil {
			return report, err
		}
		report.BadDateRows += n
	}

	rows, err := sqldb.Query(`SELECT id, COALESCE(macro_json, '') FROM users`)
	if err != nil {
		return report, fmt.Errorf("doctor macro query: %w", err)
	}
	badIDs := make([]int64, 0)
	for rows.Next() {
		var id int64
		var raw string
		if err := rows.Scan(&id, &raw); err != nil {
			_ = rows.Close()
			return report, fmt.Errorf("doctor macro scan: %w", err)
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		var m energy.MacroSplit
		if err := json.Unmarshal([]byte(raw), &m); err != nil || validateMacroSplit(m) != nil {
			badIDs = append(badIDs, id)
		}
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return report, fmt.Errorf("doctor macro iterate: %w", err)
	}
	_ = rows.Close()
	report.BadMacroRows = len(badIDs)

	if fix && len(badIDs) > 0 {
		def, err := json.Marshal(energy.DefaultMacroSplit())
		if err != nil {
			return report, fmt.Errorf("encode default macros: %w", err)
		}
		tx, err := sqldb.Begin()
		if err != nil {
			return report, fmt.Errorf("doctor fix begin tx: %w", err)
		}
		for _, id := range badIDs {
			if _, err := tx.Exec(`UPDATE users SET macro_json = ? WHERE id = ?`, string(def), id); err != nil {
				_ = tx.Rollback()
				return report, fmt.Errorf("doctor fix macros row %d: %w", id, err)
			}
			report.FixedMacroRows++
		}
		if err := tx.Commit(); err != nil {
			return report, fmt.Errorf("doctor fix commit: %w", err)
		}
	}
	return report, nil
}

func countBadDates(sqldb *db.DB, table string) (int, error) {
	rows, err := sqldb.Query(`SELECT log_date FROM ` + table)
	if err != nil {
		return 0, fmt.Errorf("doctor date query %s: %w", table, err)
	}
	defer rows.Close()
	bad := 0
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return 0, fmt.Errorf("doctor date scan %s: %w", table, err)
		}
		if _, err := time.Parse(dateLayout, d); err != nil {
			bad++
		}
	}
	return bad, rows.Err()
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source file: %w", err)
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create destination file: %w", err)
	}
	defer out.Close()
	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copy file: %w", err)
	}
	return out.Sync()
}

func fileSHA256(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open file for checksum: %w", err)
	}
	defer f.Close()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hash file: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
