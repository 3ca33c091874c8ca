package service

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mvpathlete/athlete/internal/model"
)

const defaultFoodUnit = "g"

// FactLookup resolves a food name to its per-100 nutrition facts.
type FactLookup interface {
	Lookup(name string) (model.NutritionFact, bool)
}

var hundred = decimal.NewFromInt(100)

// ComputeFoodEntry builds a food record for quantity grams/milliliters of
// name, scaling the catalog's per-100 values. It performs no I/O; the
// returned record has no ID.
func ComputeFoodEntry(name, quantityText, notes string, facts FactLookup, date string) (model.FoodRecord, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.FoodRecord{}, invalid("food", "is required")
	}
	qty, err := parsePositiveNumber("quantity", quantityText)
	if err != nil {
		return model.FoodRecord{}, err
	}
	fact, ok := facts.Lookup(name)
	if !ok {
		return model.FoodRecord{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	unit := strings.TrimSpace(fact.Unit)
	if unit == "" {
		unit = defaultFoodUnit
	}
	return model.FoodRecord{
		Date:     date,
		Name:     name,
		Unit:     unit,
		Quantity: qty,
		Calories: scalePer100(fact.CaloriesPer100, qty),
		Protein:  scalePer100(fact.ProteinPer100, qty),
		Carbs:    scalePer100(fact.CarbsPer100, qty),
		Fat:      scalePer100(fact.FatPer100, qty),
		Notes:    strings.TrimSpace(notes),
		Per100: &model.Per100{
			Calories: fact.CaloriesPer100,
			Protein:  fact.ProteinPer100,
			Carbs:    fact.CarbsPer100,
			Fat:      fact.FatPer100,
		},
	}, nil
}

// scalePer100 returns per100*qty/100 rounded half away from zero to one
// decimal place.
func scalePer100(per100, qty float64) float64 {
	v := decimal.NewFromFloat(per100).
		Mul(decimal.NewFromFloat(qty)).
		Div(hundred).
		Round(1)
	return v.InexactFloat64()
}
