package service

import (
	"regexp"
	"strings"

	"github.com/nutrivision/nutrition-service/internal/domain/model"
)

// A clause is tried against every template; each successful parse is
// scored and the best candidate wins. Templates, highest priority first:
//
//	1. <qty> <unit> [of] <ingredient>   "200 g chicken breast", "2 bowls of soup"
//	2. <ingredient> <qty> [<unit>]      "rice 200 g", "bread 2 slices"
//	3. <qty> <ingredient>               "2 apples", "half banana"
//	4. <ingredient>                     "scrambled eggs"
var (
	qtyToken = `(\d+\s*/\s*\d+|\d+(?:\.\d+)?|[a-z]+(?:-[a-z]+)?)`

	reQtyUnitOf = regexp.MustCompile(`^` + qtyToken + `\s+([a-z]+)\s+of\s+(.+)$`)
	reQtyUnit   = regexp.MustCompile(`^` + qtyToken + `\s+([a-z]+)\s+(.+)$`)
	reIngQty    = regexp.MustCompile(`^(.+?)\s+(\d+(?:\.\d+)?)\s*([a-z]+)?$`)
	reQtyIng    = regexp.MustCompile(`^` + qtyToken + `\s+(.+)$`)
)

// ingredientPrefixes are dropped from the front of an ingredient when
// something meaningful remains behind them.
var ingredientPrefixes = []string{"fresh", "organic", "raw"}

// ingredientSuffixes are dropped from the tail of a multi-word
// ingredient ("chicken meat" becomes "chicken").
var ingredientSuffixes = []string{"meat", "fruit"}

// foodKeywords anchor the food heuristic. A name containing any of
// these is scored as food without further checks.
var foodKeywords = []string{
	"rice", "bread", "chicken", "egg", "apple", "banana", "milk", "cheese",
	"fish", "salmon", "tuna", "beef", "pork", "pasta", "salad", "potato",
	"tomato", "oat", "yogurt", "butter", "soup", "dal", "paneer", "tofu",
	"lentil", "bean", "almond", "peanut", "walnut", "orange", "mango",
	"juice", "coffee", "tea", "sandwich", "burger", "pizza", "noodle",
	"wheat", "corn", "spinach", "carrot", "onion", "curd", "roti",
	"chapati", "idli", "dosa", "cereal", "chocolate", "cake", "cookie",
	"biscuit", "shake", "smoothie", "steak", "shrimp", "turkey",
	"avocado", "berry", "grape", "melon", "quinoa", "barley", "honey",
	"cream", "yoghurt",
}

type parseCandidate struct {
	item  model.FoodItem
	score float64
}

// ParseClause parses a single food clause into a FoodItem. The boolean
// is false when no template yields a plausible ingredient.
func ParseClause(clause string) (model.FoodItem, bool) {
	clause = strings.ToLower(strings.TrimSpace(clause))
	clause = strings.Join(strings.Fields(clause), " ")
	if clause == "" {
		return model.FoodItem{}, false
	}

	templates := []func(string) (model.FoodItem, bool, bool){
		matchQtyUnitIngredient,
		matchIngredientQtyUnit,
		matchQtyIngredient,
		matchBareIngredient,
	}

	var best *parseCandidate
	for i, tmpl := range templates {
		item, explicitUnit, ok := tmpl(clause)
		if !ok {
			continue
		}
		score := scoreCandidate(item, explicitUnit, i, len(templates))
		if best == nil || score > best.score {
			best = &parseCandidate{item: item, score: score}
		}
	}

	if best == nil {
		return model.FoodItem{}, false
	}
	return best.item, true
}

// scoreCandidate ranks a parse: +3 for a food-looking ingredient, +2
// for a non-default quantity, +1 for a recognized unit, plus a small
// priority bonus so earlier templates win otherwise equal parses.
func scoreCandidate(item model.FoodItem, explicitUnit bool, priority, total int) float64 {
	score := float64(total-priority) * 0.1
	if looksLikeFood(item.Ingredient) {
		score += 3
	}
	if item.Quantity != 1 {
		score += 2
	}
	if explicitUnit && model.CanonicalUnits[item.Unit] {
		score += 1
	}
	return score
}

// matchQtyUnitIngredient handles "<qty> <unit> [of] <ingredient>". With
// an "of" connective any unit token is accepted and passes through;
// without it the unit must be recognized, otherwise "2 green apples"
// would swallow "green" as a unit.
func matchQtyUnitIngredient(clause string) (model.FoodItem, bool, bool) {
	if m := reQtyUnitOf.FindStringSubmatch(clause); m != nil && IsNumberToken(m[1]) {
		if name, ok := cleanIngredient(m[3]); ok {
			return model.FoodItem{
				Ingredient: name,
				Quantity:   ParseNumber(m[1]),
				Unit:       NormalizeUnit(m[2]),
			}, true, true
		}
	}
	if m := reQtyUnit.FindStringSubmatch(clause); m != nil && IsNumberToken(m[1]) && IsUnitToken(m[2]) {
		if name, ok := cleanIngredient(m[3]); ok {
			return model.FoodItem{
				Ingredient: name,
				Quantity:   ParseNumber(m[1]),
				Unit:       NormalizeUnit(m[2]),
			}, true, true
		}
	}
	return model.FoodItem{}, false, false
}

// matchIngredientQtyUnit handles "<ingredient> <qty> [<unit>]" with a
// numeric trailing quantity, e.g. "rice 200 g".
func matchIngredientQtyUnit(clause string) (model.FoodItem, bool, bool) {
	m := reIngQty.FindStringSubmatch(clause)
	if m == nil {
		return model.FoodItem{}, false, false
	}
	name, ok := cleanIngredient(m[1])
	if !ok {
		return model.FoodItem{}, false, false
	}
	unit := model.UnitServing
	explicit := false
	if m[3] != "" {
		unit = NormalizeUnit(m[3])
		explicit = true
	}
	return model.FoodItem{Ingredient: name, Quantity: ParseNumber(m[2]), Unit: unit}, explicit, true
}

// matchQtyIngredient handles "<qty> <ingredient>" where qty is a
// recognized number token, e.g. "2 apples" or "half banana".
func matchQtyIngredient(clause string) (model.FoodItem, bool, bool) {
	m := reQtyIng.FindStringSubmatch(clause)
	if m == nil || !IsNumberToken(m[1]) || IsUnitToken(m[1]) {
		return model.FoodItem{}, false, false
	}
	name, ok := cleanIngredient(m[2])
	if !ok {
		return model.FoodItem{}, false, false
	}
	return model.FoodItem{Ingredient: name, Quantity: ParseNumber(m[1]), Unit: model.UnitServing}, false, true
}

// matchBareIngredient treats the whole clause as an ingredient with an
// implicit quantity of one serving.
func matchBareIngredient(clause string) (model.FoodItem, bool, bool) {
	name, ok := cleanIngredient(clause)
	if !ok {
		return model.FoodItem{}, false, false
	}
	return model.FoodItem{Ingredient: name, Quantity: 1, Unit: model.UnitServing}, false, true
}

// cleanIngredient normalizes a raw ingredient capture: trims, drops
// descriptor prefixes and generic suffixes, and rejects captures that
// are nothing but units or numbers.
func cleanIngredient(raw string) (string, bool) {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(raw)))

	for len(fields) > 1 && containsWord(ingredientPrefixes, fields[0]) {
		fields = fields[1:]
	}
	for len(fields) > 1 && containsWord(ingredientSuffixes, fields[len(fields)-1]) {
		fields = fields[:len(fields)-1]
	}

	if len(fields) == 0 {
		return "", false
	}
	meaningful := false
	for _, f := range fields {
		if !IsUnitToken(f) && !IsNumberToken(f) && f != "of" {
			meaningful = true
			break
		}
	}
	if !meaningful {
		return "", false
	}
	name := strings.Join(fields, " ")
	// single characters are noise, not ingredients
	if len(name) < 2 {
		return "", false
	}
	return name, true
}

func containsWord(words []string, w string) bool {
	for _, candidate := range words {
		if candidate == w {
			return true
		}
	}
	return false
}

// looksLikeFood is the food heuristic used for scoring and for
// filtering recognized entities: a keyword hit, or a plausible
// alphabetic phrase with at least one substantial word.
func looksLikeFood(name string) bool {
	name = strings.ToLower(name)
	for _, kw := range foodKeywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	substantial := false
	for _, f := range strings.Fields(name) {
		for _, r := range f {
			if (r < 'a' || r > 'z') && r != '-' && r != '\'' {
				return false
			}
		}
		if len(f) >= 3 {
			substantial = true
		}
	}
	return substantial
}
