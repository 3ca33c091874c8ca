package service

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/mvpathlete/athlete/internal/ledger"
	"github.com/mvpathlete/athlete/internal/model"
	"github.com/mvpathlete/athlete/internal/store"
)

type BackupInfo struct {
	Path      string    `json:"path"`
	Checksum  string    `json:"checksum"`
	CreatedAt time.Time `json:"created_at"`
	SizeBytes int64     `json:"size_bytes"`
}

type LedgerHealth struct {
	Key          string `json:"key"`
	Records      int    `json:"records"`
	Corrupt      bool   `json:"corrupt"`
	MissingIDs   int    `json:"missing_ids"`
	DuplicateIDs int    `json:"duplicate_ids"`
	Fixed        bool   `json:"fixed,omitempty"`
}

type DoctorReport struct {
	Ledgers        []LedgerHealth `json:"ledgers"`
	CorruptLedgers int            `json:"corrupt_ledgers"`
	FixedLedgers   int            `json:"fixed_ledgers,omitempty"`
}

func CreateBackup(dbPath, outPath string) (BackupInfo, error) {
	if strings.TrimSpace(dbPath) == "" {
		return BackupInfo{}, fmt.Errorf("db path is required")
	}
	if strings.TrimSpace(outPath) == "" {
		return BackupInfo{}, fmt.Errorf("backup output path is required")
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return BackupInfo{}, fmt.Errorf("create backup directory: %w", err)
	}
	if err := copyFile(dbPath, outPath); err != nil {
		return BackupInfo{}, err
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

func RestoreBackup(backupPath, dbPath string, force bool) error {
	if strings.TrimSpace(backupPath) == "" || strings.TrimSpace(dbPath) == "" {
		return fmt.Errorf("backup path and db path are required")
	}
	if !force {
		if _, err := os.Stat(dbPath); err == nil {
			return fmt.Errorf("target db already exists; use --force to overwrite")
		}
	}
	checksumFile := backupPath + ".sha256"
	if expected, err := os.ReadFile(checksumFile); err == nil {
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
		st, err := os.Stat(full)
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

// ledgerChecks decode each key into its record type, so a value counts as
// corrupt here exactly when the ledger would refuse to load it.
var ledgerChecks = map[string]func(raw string, h *LedgerHealth) error{
	KeyWeightLogs:  checkLedger[model.WeightRecord](func(r model.WeightRecord) string { return r.ID }),
	KeyFoodLogs:    checkLedger[model.FoodRecord](func(r model.FoodRecord) string { return r.ID }),
	KeyRollJournal: checkLedger[model.RollRecord](func(r model.RollRecord) string { return r.ID }),
}

func checkLedger[T any](idOf func(T) string) func(string, *LedgerHealth) error {
	return func(raw string, h *LedgerHealth) error {
		items, err := ledger.Decode[T](raw)
		if err != nil {
			return err
		}
		h.Records = len(items)
		seen := make(map[string]bool, len(items))
		for _, it := range items {
			id := idOf(it)
			switch {
			case id == "":
				h.MissingIDs++
			case seen[id]:
				h.DuplicateIDs++
			default:
				seen[id] = true
			}
		}
		return nil
	}
}

// RunDoctor checks every ledger key in kv. A value that does not decode as
// that ledger's records counts as corrupt; with fix it is reset to an empty
// ledger. Duplicate and missing IDs are only reported.
func RunDoctor(kv store.KV, fix bool) (DoctorReport, error) {
	report := DoctorReport{Ledgers: make([]LedgerHealth, 0, len(LedgerKeys))}
	for _, key := range LedgerKeys {
		raw, found, err := kv.Get(key)
		if err != nil {
			return report, fmt.Errorf("doctor read %s: %w", key, err)
		}
		h := LedgerHealth{Key: key}
		if found && strings.TrimSpace(raw) != "" {
			if err := ledgerChecks[key](raw, &h); err != nil {
				h.Corrupt = true
				report.CorruptLedgers++
			}
		}
		if fix && h.Corrupt {
			if err := kv.Put(key, "[]"); err != nil {
				return report, fmt.Errorf("doctor fix %s: %w", key, err)
			}
			h.Fixed = true
			report.FixedLedgers++
		}
		report.Ledgers = append(report.Ledgers, h)
	}
	return report, nil
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
	if err := out.Sync(); err != nil {
		return fmt.Errorf("sync destination file: %w", err)
	}
	return nil
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
