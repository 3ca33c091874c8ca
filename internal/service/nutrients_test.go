package service_test

import (
	"errors"
	"testing"

	"github.com/mvpathlete/athlete/internal/catalog"
	"github.com/mvpathlete/athlete/internal/model"
	"github.com/mvpathlete/athlete/internal/service"
)

func TestComputeFoodEntryScalesPer100(t *testing.T) {
	t.Parallel()
	facts := catalog.New(testFoods)

	rec, err := service.ComputeFoodEntry("chicken breast", "150", " lunch ", facts, "1/1/2024")
	if err != nil {
		t.Fatalf("compute entry: %v", err)
	}
	if rec.Calories != 247.5 || rec.Protein != 46.5 || rec.Carbs != 0 || rec.Fat != 5.4 {
		t.Fatalf("unexpected macros: %+v", rec)
	}
	if rec.Unit != "g" || rec.Quantity != 150 || rec.Date != "1/1/2024" || rec.Notes != "lunch" {
		t.Fatalf("unexpected record fields: %+v", rec)
	}
	if rec.ID != "" {
		t.Fatalf("expected no id from calculator, got %q", rec.ID)
	}
	if rec.Per100 == nil || rec.Per100.Calories != 165 || rec.Per100.Fat != 3.6 {
		t.Fatalf("expected per100 snapshot, got %+v", rec.Per100)
	}
}

func TestComputeFoodEntryRoundsHalfAwayFromZero(t *testing.T) {
	t.Parallel()
	facts := catalog.New(testFoods)

	rec, err := service.ComputeFoodEntry("chicken breast", "12.5", "", facts, "1/1/2024")
	if err != nil {
		t.Fatalf("compute entry: %v", err)
	}
	if rec.Calories != 20.6 || rec.Protein != 3.9 || rec.Fat != 0.5 {
		t.Fatalf("unexpected rounding: %+v", rec)
	}

	odd := catalog.New([]catalog.Entry{{Name: "oats", Fact: model.NutritionFact{CaloriesPer100: 33.33}}})
	rec, err = service.ComputeFoodEntry("oats", "50", "", odd, "1/1/2024")
	if err != nil {
		t.Fatalf("compute oats: %v", err)
	}
	if rec.Calories != 16.7 {
		t.Fatalf("expected 16.7 calories, got %v", rec.Calories)
	}
}

func TestComputeFoodEntryNameIsCaseInsensitive(t *testing.T) {
	t.Parallel()
	facts := catalog.New(testFoods)

	rec, err := service.ComputeFoodEntry("  Milk ", "250", "", facts, "1/1/2024")
	if err != nil {
		t.Fatalf("compute entry: %v", err)
	}
	if rec.Unit != "ml" || rec.Calories != 105 {
		t.Fatalf("unexpected milk entry: %+v", rec)
	}
	if rec.Name != "Milk" {
		t.Fatalf("expected trimmed input name, got %q", rec.Name)
	}
}

func TestComputeFoodEntryRejectsBadInput(t *testing.T) {
	t.Parallel()
	facts := catalog.New(testFoods)

	for _, qty := range []string{"", "  ", "abc", "0", "-5", "NaN", "Inf"} {
		_, err := service.ComputeFoodEntry("milk", qty, "", facts, "1/1/2024")
		if !errors.Is(err, service.ErrValidation) {
			t.Fatalf("quantity %q: expected validation error, got %v", qty, err)
		}
	}
	if _, err := service.ComputeFoodEntry(" ", "100", "", facts, "1/1/2024"); !errors.Is(err, service.ErrValidation) {
		t.Fatalf("expected validation error for blank name, got %v", err)
	}
	if _, err := service.ComputeFoodEntry("pizza", "100", "", facts, "1/1/2024"); !errors.Is(err, service.ErrNotFound) {
		t.Fatalf("expected not found for unknown food, got %v", err)
	}
}

func TestComputeFoodEntryAgainstEmptyCatalog(t *testing.T) {
	t.Parallel()
	_, err := service.ComputeFoodEntry("milk", "100", "", catalog.Empty(), "1/1/2024")
	if !errors.Is(err, service.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
