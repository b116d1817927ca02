// Package model defines the core domain entities for the nutrition service.
package model

import "strings"

// Canonical unit vocabulary used throughout parsing and resolution.
const (
	UnitGram     = "g"
	UnitKilogram = "kg"
	UnitMillilitre = "ml"
	UnitLitre    = "l"
	UnitCup      = "cup"
	UnitSlice    = "slice"
	UnitPiece    = "piece"
	UnitTbsp     = "tbsp"
	UnitTsp      = "tsp"
	UnitGlass    = "glass"
	UnitServing  = "serving"
	UnitOunce    = "oz"
	UnitPound    = "lb"
	UnitBowl     = "bowl"
	UnitPlate    = "plate"
)

// CanonicalUnits is the fixed unit vocabulary. Unit tokens outside this
// set pass through the pipeline lower-cased and unchanged.
var CanonicalUnits = map[string]bool{
	UnitGram: true, UnitKilogram: true, UnitMillilitre: true, UnitLitre: true,
	UnitCup: true, UnitSlice: true, UnitPiece: true, UnitTbsp: true,
	UnitTsp: true, UnitGlass: true, UnitServing: true, UnitOunce: true,
	UnitPound: true, UnitBowl: true, UnitPlate: true,
}

// FoodItem is a single extracted food mention with its quantity and unit.
// Instances are created by the clause parser, possibly renamed by the
// hybrid merger, merged by the consolidator, and read-only afterwards.
//
// @Description Extracted food item with quantity and unit
// @Example {"ingredient": "whole wheat bread", "quantity": 2, "unit": "slice"}
type FoodItem struct {
	// Ingredient is the normalized (lower-cased, trimmed) food name
	Ingredient string `json:"ingredient" example:"whole wheat bread"`
	// Quantity is the amount in Unit; never negative
	Quantity float64 `json:"quantity" example:"2"`
	// Unit is a canonical unit token, or an unknown token passed through
	Unit string `json:"unit" example:"slice"`
}

// Key returns the grouping key for consolidation: the lower-cased,
// trimmed ingredient plus the unit.
func (f FoodItem) Key() string {
	return strings.ToLower(strings.TrimSpace(f.Ingredient)) + "|" + f.Unit
}
