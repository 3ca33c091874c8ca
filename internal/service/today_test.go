package service_test

import (
	"testing"

	"github.com/mvpathlete/athlete/internal/model"
	"github.com/mvpathlete/athlete/internal/service"
)

func TestTotalsForSumsOnlyMatchingDate(t *testing.T) {
	t.Parallel()
	records := []model.FoodRecord{
		{Date: "1/2/2024", Calories: 500, Protein: 10, Carbs: 50, Fat: 20},
		{Date: "1/1/2024", Calories: 247.5, Protein: 46.5, Carbs: 0, Fat: 5.4},
		{Date: "1/1/2024", Calories: 260, Protein: 5.4, Carbs: 56, Fat: 0.6},
		{Date: "11/1/2024", Calories: 900},
	}

	got := service.TotalsFor("1/1/2024", records)
	if !approx(got.Calories, 507.5) || !approx(got.Protein, 51.9) || !approx(got.Carbs, 56) || !approx(got.Fat, 6) {
		t.Fatalf("unexpected totals: %+v", got)
	}
}

func TestTotalsForNoMatchIsZero(t *testing.T) {
	t.Parallel()
	if got := service.TotalsFor("1/1/2024", nil); got != (model.MacroTotals{}) {
		t.Fatalf("expected zero totals, got %+v", got)
	}
	records := []model.FoodRecord{{Date: "12/31/2023", Calories: 100}}
	if got := service.TotalsFor("1/1/2024", records); got != (model.MacroTotals{}) {
		t.Fatalf("expected zero totals, got %+v", got)
	}
}

func TestTodayStatusUsesTrackerClock(t *testing.T) {
	t.Parallel()
	tr := newTestTracker(t, newMemoryKV())
	if _, err := tr.AddFood("chicken breast", "150", ""); err != nil {
		t.Fatalf("add food: %v", err)
	}
	if _, err := tr.AddFood("white rice", "200", ""); err != nil {
		t.Fatalf("add food: %v", err)
	}

	status := tr.TodayStatus()
	if status.Date != "1/1/2024" {
		t.Fatalf("expected 1/1/2024, got %q", status.Date)
	}
	if len(status.Entries) != 2 || status.Entries[0].Name != "white rice" {
		t.Fatalf("expected newest-first entries, got %+v", status.Entries)
	}
	if !approx(status.Totals.Calories, 507.5) || !approx(status.Totals.Fat, 6) {
		t.Fatalf("unexpected totals: %+v", status.Totals)
	}
}
