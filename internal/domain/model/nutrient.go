package model

import "math"

// NutrientProfile is the four-macro nutrient summary. All four fields
// are always present; missing source data maps to zero. Values are only
// rounded at presentation boundaries, never during accumulation.
//
// @Description Macronutrient profile
// @Example {"calories": 330, "protein_g": 62, "carbs_g": 0, "fat_g": 7.2}
type NutrientProfile struct {
	Calories float64 `json:"calories" bson:"calories" example:"330"`
	ProteinG float64 `json:"protein_g" bson:"protein_g" example:"62"`
	CarbsG   float64 `json:"carbs_g" bson:"carbs_g" example:"0"`
	FatG     float64 `json:"fat_g" bson:"fat_g" example:"7.2"`
}

// Add returns the elementwise sum of two profiles.
func (p NutrientProfile) Add(other NutrientProfile) NutrientProfile {
	return NutrientProfile{
		Calories: p.Calories + other.Calories,
		ProteinG: p.ProteinG + other.ProteinG,
		CarbsG:   p.CarbsG + other.CarbsG,
		FatG:     p.FatG + other.FatG,
	}
}

// Scale returns the profile multiplied by factor.
func (p NutrientProfile) Scale(factor float64) NutrientProfile {
	return NutrientProfile{
		Calories: p.Calories * factor,
		ProteinG: p.ProteinG * factor,
		CarbsG:   p.CarbsG * factor,
		FatG:     p.FatG * factor,
	}
}

// Rounded returns the profile with every macro rounded to two decimals
// and clamped at zero. Applied wherever a profile crosses a component
// boundary.
func (p NutrientProfile) Rounded() NutrientProfile {
	return NutrientProfile{
		Calories: Round2(math.Max(p.Calories, 0)),
		ProteinG: Round2(math.Max(p.ProteinG, 0)),
		CarbsG:   Round2(math.Max(p.CarbsG, 0)),
		FatG:     Round2(math.Max(p.FatG, 0)),
	}
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round3 rounds to three decimal places. Used for match confidence.
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// Resolution is the outcome of resolving one FoodItem against the food
// database. Either Err is set, or every other field is populated: a
// resolution is never partially filled.
type Resolution struct {
	// MatchedDescription is the description of the matched database record
	MatchedDescription string `json:"matched_description,omitempty"`
	// Grams is the requested quantity converted to a mass basis
	Grams float64 `json:"grams,omitempty"`
	// Macros is the profile scaled to Grams, rounded to two decimals
	Macros NutrientProfile `json:"macros"`
	// Confidence is the name similarity to the matched record, in [0,1]
	Confidence float64 `json:"confidence,omitempty"`
	// Err describes a failed resolution (no match, backend failure)
	Err string `json:"error,omitempty"`
}

// Failed reports whether the resolution carries an error instead of a
// nutrient profile.
func (r Resolution) Failed() bool {
	return r.Err != ""
}
