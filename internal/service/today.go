package service

import "github.com/mvpathlete/athlete/internal/model"

type TodayStatus struct {
	Date    string             `json:"date"`
	Totals  model.MacroTotals  `json:"totals"`
	Entries []model.FoodRecord `json:"entries"`
}

// TotalsFor sums macros of the records whose date string equals date.
// No match is a normal zero result.
func TotalsFor(date string, records []model.FoodRecord) model.MacroTotals {
	var totals model.MacroTotals
	for _, r := range records {
		if r.Date != date {
			continue
		}
		totals.Calories += r.Calories
		totals.Protein += r.Protein
		totals.Carbs += r.Carbs
		totals.Fat += r.Fat
	}
	return totals
}

func foodsOn(date string, records []model.FoodRecord) []model.FoodRecord {
	out := make([]model.FoodRecord, 0)
	for _, r := range records {
		if r.Date == date {
			out = append(out, r)
		}
	}
	return out
}
