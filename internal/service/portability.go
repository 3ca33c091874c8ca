package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mvpathlete/athlete/internal/ledger"
	"github.com/mvpathlete/athlete/internal/model"
)

// ExportData mirrors a browser localStorage dump of the three ledgers, so
// files written by either side can be imported by the other.
type ExportData struct {
	WeightLogs  []model.WeightRecord `json:"weightLogs"`
	FoodLogs    []model.FoodRecord   `json:"foodLogs"`
	RollJournal []model.RollRecord   `json:"rollJournal"`
}

type ImportMode string

const (
	ImportModeMerge   ImportMode = "merge"
	ImportModeReplace ImportMode = "replace"
)

type ImportOptions struct {
	Mode   ImportMode
	DryRun bool
}

type ImportReport struct {
	Inserted int      `json:"inserted"`
	Skipped  int      `json:"skipped"`
	Warnings []string `json:"warnings,omitempty"`
}

func ParseImportMode(value string) (ImportMode, error) {
	switch ImportMode(strings.ToLower(strings.TrimSpace(value))) {
	case "", ImportModeMerge:
		return ImportModeMerge, nil
	case ImportModeReplace:
		return ImportModeReplace, nil
	default:
		return "", fmt.Errorf("invalid import mode %q (use merge or replace)", value)
	}
}

func (t *Tracker) Export() ExportData {
	return ExportData{
		WeightLogs:  t.Weights.Items(),
		FoodLogs:    t.Foods.Items(),
		RollJournal: t.Rolls.Items(),
	}
}

func WriteExport(w io.Writer, data ExportData) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("encode export: %w", err)
	}
	return nil
}

func ReadExport(r io.Reader) (ExportData, error) {
	var data ExportData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return ExportData{}, fmt.Errorf("decode import file: %w", err)
	}
	return data, nil
}

// Import loads data into the ledgers. Merge keeps existing records first and
// appends imported ones as older history, skipping IDs already present.
// Replace overwrites each ledger present in the file. A ledger absent from
// the file is left alone in both modes.
func (t *Tracker) Import(data ExportData, opts ImportOptions) (ImportReport, error) {
	report := ImportReport{}
	mode := opts.Mode
	if mode == "" {
		mode = ImportModeMerge
	}
	var errs []error
	if data.WeightLogs != nil {
		errs = append(errs, importInto(t.Weights, data.WeightLogs, func(r model.WeightRecord) string { return r.ID }, mode, opts.DryRun, &report))
	}
	if data.FoodLogs != nil {
		errs = append(errs, importInto(t.Foods, data.FoodLogs, func(r model.FoodRecord) string { return r.ID }, mode, opts.DryRun, &report))
	}
	if data.RollJournal != nil {
		errs = append(errs, importInto(t.Rolls, data.RollJournal, func(r model.RollRecord) string { return r.ID }, mode, opts.DryRun, &report))
	}
	return report, t.storageWarning(errors.Join(errs...))
}

func importInto[T any](l *ledger.Ledger[T], incoming []T, idOf func(T) string, mode ImportMode, dryRun bool, report *ImportReport) error {
	var next []T
	switch mode {
	case ImportModeReplace:
		next = incoming
		report.Inserted += len(incoming)
	default:
		current := l.Items()
		seen := make(map[string]bool, len(current))
		for _, r := range current {
			if id := idOf(r); id != "" {
				seen[id] = true
			}
		}
		next = current
		for _, r := range incoming {
			id := idOf(r)
			if id != "" && seen[id] {
				report.Skipped++
				continue
			}
			if id != "" {
				seen[id] = true
			}
			next = append(next, r)
			report.Inserted++
		}
	}
	if len(incoming) > 0 && countMissingIDs(incoming, idOf) > 0 {
		report.Warnings = append(report.Warnings, fmt.Sprintf("%s: %d record(s) without id imported as-is", l.Key(), countMissingIDs(incoming, idOf)))
	}
	if dryRun {
		return nil
	}
	return l.ReplaceAll(next)
}

func countMissingIDs[T any](items []T, idOf func(T) string) int {
	n := 0
	for _, r := range items {
		if idOf(r) == "" {
			n++
		}
	}
	return n
}
