package service_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mvpathlete/athlete/internal/service"
)

func TestExportImportRoundTrip(t *testing.T) {
	t.Parallel()
	src := newTestTracker(t, newMemoryKV())
	if _, err := src.AddWeight("180", ""); err != nil {
		t.Fatalf("add weight: %v", err)
	}
	if _, err := src.AddFood("milk", "250", ""); err != nil {
		t.Fatalf("add food: %v", err)
	}
	if _, err := src.AddRoll("Ana", "30", "", ""); err != nil {
		t.Fatalf("add roll: %v", err)
	}

	var buf bytes.Buffer
	if err := service.WriteExport(&buf, src.Export()); err != nil {
		t.Fatalf("write export: %v", err)
	}
	for _, key := range service.LedgerKeys {
		if !strings.Contains(buf.String(), `"`+key+`"`) {
			t.Fatalf("expected %s in export: %s", key, buf.String())
		}
	}

	data, err := service.ReadExport(&buf)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	dst := newTestTracker(t, newMemoryKV())
	report, err := dst.Import(data, service.ImportOptions{Mode: service.ImportModeReplace})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if report.Inserted != 3 {
		t.Fatalf("expected 3 inserted, got %+v", report)
	}
	if dst.Foods.Len() != 1 || dst.Foods.Items()[0].Calories != 105 {
		t.Fatalf("unexpected imported foods: %+v", dst.Foods.Items())
	}
	if d := dst.Rolls.Items()[0].DurationMinutes; d == nil || *d != 30 {
		t.Fatalf("unexpected imported roll: %+v", dst.Rolls.Items())
	}
}

func TestImportMergeSkipsKnownIDs(t *testing.T) {
	t.Parallel()
	tr := newTestTracker(t, newMemoryKV())
	if _, err := tr.AddWeight("180", ""); err != nil {
		t.Fatalf("add weight: %v", err)
	}

	data, err := service.ReadExport(strings.NewReader(`{
		"weightLogs": [
			{"id": "id-1", "date": "1/1/2024", "weight": 180, "notes": ""},
			{"id": "old", "date": "12/30/2023", "weight": 182, "notes": ""}
		],
		"rollJournal": [{"id": "r1", "date": "12/30/2023", "partner": "Ana", "duration": "20", "focus": "", "notes": ""}]
	}`))
	if err != nil {
		t.Fatalf("read import: %v", err)
	}

	report, err := tr.Import(data, service.ImportOptions{})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if report.Inserted != 2 || report.Skipped != 1 {
		t.Fatalf("unexpected report: %+v", report)
	}
	items := tr.Weights.Items()
	if len(items) != 2 || items[0].ID != "id-1" || items[1].ID != "old" {
		t.Fatalf("expected existing records first, got %+v", items)
	}
	if d := tr.Rolls.Items()[0].DurationMinutes; d == nil || *d != 20 {
		t.Fatalf("expected string duration decoded, got %+v", tr.Rolls.Items())
	}
}

func TestImportDryRunLeavesLedgers(t *testing.T) {
	t.Parallel()
	tr := newTestTracker(t, newMemoryKV())
	data, err := service.ReadExport(strings.NewReader(`{"weightLogs":[{"date":"1/1/2024","weight":170}]}`))
	if err != nil {
		t.Fatalf("read import: %v", err)
	}
	report, err := tr.Import(data, service.ImportOptions{Mode: service.ImportModeReplace, DryRun: true})
	if err != nil {
		t.Fatalf("dry run import: %v", err)
	}
	if report.Inserted != 1 || len(report.Warnings) != 1 {
		t.Fatalf("unexpected report: %+v", report)
	}
	if tr.Weights.Len() != 0 {
		t.Fatalf("expected dry run to leave ledger empty, got %d", tr.Weights.Len())
	}
}

func TestParseImportMode(t *testing.T) {
	t.Parallel()
	if m, err := service.ParseImportMode(""); err != nil || m != service.ImportModeMerge {
		t.Fatalf("expected merge default, got %q %v", m, err)
	}
	if m, err := service.ParseImportMode("REPLACE"); err != nil || m != service.ImportModeReplace {
		t.Fatalf("expected replace, got %q %v", m, err)
	}
	if _, err := service.ParseImportMode("upsert"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}
