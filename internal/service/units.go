// Package service contains the text-analysis pipeline for the nutrition service.
package service

import (
	"strconv"
	"strings"

	"github.com/nutrivision/nutrition-service/internal/domain/model"
)

// unitAliases maps lexical unit tokens to the canonical unit vocabulary.
// This is the parsing-side table; the gram conversion table below is a
// separate concern used only during resolution.
var unitAliases = map[string]string{
	"g": model.UnitGram, "gram": model.UnitGram, "grams": model.UnitGram, "gm": model.UnitGram, "gms": model.UnitGram,
	"kg": model.UnitKilogram, "kgs": model.UnitKilogram, "kilogram": model.UnitKilogram, "kilograms": model.UnitKilogram,
	"ml": model.UnitMillilitre, "milliliter": model.UnitMillilitre, "milliliters": model.UnitMillilitre, "millilitre": model.UnitMillilitre, "millilitres": model.UnitMillilitre,
	"l": model.UnitLitre, "liter": model.UnitLitre, "liters": model.UnitLitre, "litre": model.UnitLitre, "litres": model.UnitLitre,
	"cup": model.UnitCup, "cups": model.UnitCup,
	"slice": model.UnitSlice, "slices": model.UnitSlice,
	"piece": model.UnitPiece, "pieces": model.UnitPiece, "pc": model.UnitPiece, "pcs": model.UnitPiece,
	"tbsp": model.UnitTbsp, "tablespoon": model.UnitTbsp, "tablespoons": model.UnitTbsp,
	"tsp": model.UnitTsp, "teaspoon": model.UnitTsp, "teaspoons": model.UnitTsp,
	"glass": model.UnitGlass, "glasses": model.UnitGlass,
	"serving": model.UnitServing, "servings": model.UnitServing, "portion": model.UnitServing, "portions": model.UnitServing,
	"oz": model.UnitOunce, "ounce": model.UnitOunce, "ounces": model.UnitOunce,
	"lb": model.UnitPound, "lbs": model.UnitPound, "pound": model.UnitPound, "pounds": model.UnitPound,
	"bowl": model.UnitBowl, "bowls": model.UnitBowl,
	"plate": model.UnitPlate, "plates": model.UnitPlate,
}

// gramsPerUnit converts one canonical unit to grams. Used only by the
// nutrient resolver when turning a quantity into a mass basis. Unknown
// units deliberately fall back to a 1:1 factor (see UnitGrams).
var gramsPerUnit = map[string]float64{
	model.UnitGram:     1,
	model.UnitKilogram: 1000,
	model.UnitOunce:    28.35,
	model.UnitPound:    453.59,
	model.UnitCup:      240,
	model.UnitMillilitre: 1,
	model.UnitLitre:    1000,
	model.UnitTbsp:     15,
	model.UnitTsp:      5,
	model.UnitSlice:    25,
	model.UnitPiece:    100,
	model.UnitServing:  100,
	model.UnitGlass:    240,
	model.UnitBowl:     300,
	model.UnitPlate:    400,
}

// wordNumbers is the fixed word-number table. "a"/"an" count as one so
// that clauses like "a slice of bread" carry an explicit quantity.
var wordNumbers = map[string]float64{
	"a": 1, "an": 1,
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"half": 0.5, "quarter": 0.25,
}

// extendedWordNumbers backs the general word-to-number fallback for
// tokens outside the primary table.
var extendedWordNumbers = map[string]float64{
	"eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14, "fifteen": 15,
	"sixteen": 16, "seventeen": 17, "eighteen": 18, "nineteen": 19,
	"twenty": 20, "thirty": 30, "forty": 40, "fifty": 50,
	"sixty": 60, "seventy": 70, "eighty": 80, "ninety": 90,
	"hundred": 100, "dozen": 12,
}

// ParseNumber canonicalizes a numeric token to a float. It never fails:
// any token that cannot be interpreted is treated as "one".
//
// Recognized forms: plain decimals, simple fractions ("a/b"), the fixed
// word-number table (one..ten, half, quarter, a/an) and a general
// word-to-number fallback covering teens, tens and hyphenated
// compounds ("twenty-five").
func ParseNumber(token string) float64 {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return 1.0
	}

	if v, err := strconv.ParseFloat(token, 64); err == nil {
		return v
	}

	if strings.Contains(token, "/") {
		parts := strings.SplitN(token, "/", 2)
		num, errN := strconv.ParseFloat(parts[0], 64)
		den, errD := strconv.ParseFloat(parts[1], 64)
		if errN != nil || errD != nil || den == 0 {
			return 1.0
		}
		return num / den
	}

	if v, ok := wordNumbers[token]; ok {
		return v
	}

	if v, ok := wordToNumber(token); ok {
		return v
	}

	return 1.0
}

// wordToNumber is the general word-number conversion: teens, tens and
// hyphenated compounds like "twenty-five".
func wordToNumber(token string) (float64, bool) {
	if v, ok := extendedWordNumbers[token]; ok {
		return v, true
	}

	if strings.Contains(token, "-") {
		parts := strings.SplitN(token, "-", 2)
		tens, okT := extendedWordNumbers[parts[0]]
		ones, okO := wordNumbers[parts[1]]
		if okT && okO && tens >= 20 && ones >= 1 && ones <= 9 {
			return tens + ones, true
		}
	}

	return 0, false
}

// IsNumberToken reports whether the token is interpretable as a
// quantity: digits, a decimal, a fraction, or a recognized number word.
func IsNumberToken(token string) bool {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return false
	}
	if _, err := strconv.ParseFloat(token, 64); err == nil {
		return true
	}
	if strings.Contains(token, "/") {
		parts := strings.SplitN(token, "/", 2)
		if len(parts) == 2 {
			_, errN := strconv.ParseFloat(parts[0], 64)
			_, errD := strconv.ParseFloat(parts[1], 64)
			if errN == nil && errD == nil {
				return true
			}
		}
	}
	if _, ok := wordNumbers[token]; ok {
		return true
	}
	_, ok := wordToNumber(token)
	return ok
}

// NormalizeUnit canonicalizes a lexical unit token. Unknown tokens pass
// through lower-cased and unchanged; the caller decides what an
// unrecognized unit means (the resolver gives it a 1:1 gram factor).
func NormalizeUnit(token string) string {
	token = strings.ToLower(strings.TrimSpace(token))
	if canonical, ok := unitAliases[token]; ok {
		return canonical
	}
	return token
}

// IsUnitToken reports whether the token maps to a canonical unit.
func IsUnitToken(token string) bool {
	_, ok := unitAliases[strings.ToLower(strings.TrimSpace(token))]
	return ok
}

// UnitGrams returns the gram weight of one unit. Units outside the
// conversion table return 1.0, mirroring the pass-through behavior of
// NormalizeUnit for unknown tokens.
func UnitGrams(unit string) float64 {
	if g, ok := gramsPerUnit[NormalizeUnit(unit)]; ok {
		return g
	}
	return 1.0
}
