package model

// FoodRecord is a food database record as returned by the food data
// backend (live or mock), reduced to the fields resolution needs.
type FoodRecord struct {
	FdcID       int64          `json:"fdc_id,omitempty"`
	Description string         `json:"description"`
	Nutrients   []FoodNutrient `json:"nutrients,omitempty"`
	// ServingSize is the labeled serving in ServingSizeUnit, when present
	ServingSize     float64 `json:"serving_size,omitempty"`
	ServingSizeUnit string  `json:"serving_size_unit,omitempty"`
	// Portions are alternative gram-weight portions, when present
	Portions []FoodPortion `json:"portions,omitempty"`
}

// FoodNutrient is a single nutrient row on a food record. Nutrient
// identity is matched by ID first, then by name substring.
type FoodNutrient struct {
	NutrientID   int64   `json:"nutrient_id,omitempty"`
	NutrientName string  `json:"nutrient_name"`
	UnitName     string  `json:"unit_name,omitempty"`
	Value        float64 `json:"value"`
}

// FoodPortion is an alternative portion with its gram weight.
type FoodPortion struct {
	GramWeight float64 `json:"gram_weight"`
}
