package model

// NutritionFact holds per-100 g/ml values for one catalog food.
type NutritionFact struct {
	CaloriesPer100 float64 `json:"calories"`
	ProteinPer100  float64 `json:"protein"`
	CarbsPer100    float64 `json:"carbs"`
	FatPer100      float64 `json:"fat"`
	Unit           string  `json:"unit,omitempty"`
}

// Per100 is the nutrition snapshot stored with a food record so the record
// stays readable after the catalog changes.
type Per100 struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

type WeightRecord struct {
	ID        string  `json:"id,omitempty"`
	Date      string  `json:"date"`
	WeightLbs float64 `json:"weight"`
	Notes     string  `json:"notes"`
}

type FoodRecord struct {
	ID       string  `json:"id,omitempty"`
	Date     string  `json:"date"`
	Name     string  `json:"name"`
	Unit     string  `json:"unit"`
	Quantity float64 `json:"quantity"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Notes    string  `json:"notes"`
	Per100   *Per100 `json:"per100,omitempty"`
}

type RollRecord struct {
	ID              string `json:"id,omitempty"`
	Date            string `json:"date"`
	Partner         string `json:"partner"`
	DurationMinutes *int   `json:"duration,omitempty"`
	Focus           string `json:"focus"`
	Notes           string `json:"notes"`
}

type MacroTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}
