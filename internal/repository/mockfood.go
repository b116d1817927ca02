package repository

import (
	"context"
	"sort"
	"strings"

	"github.com/nutrivision/nutrition-service/internal/domain/model"
)

// USDA nutrient numbers for the four tracked macros.
const (
	nutrientIDEnergy  = 1008
	nutrientIDProtein = 1003
	nutrientIDFat     = 1004
	nutrientIDCarbs   = 1005
)

// mockFood is a built-in food with macros per 100 g.
type mockFood struct {
	name     string
	calories float64
	protein  float64
	carbs    float64
	fat      float64
}

// mockFoodTable covers common foods so the service stays useful when
// the live food database is disabled or unreachable. Values are per
// 100 g of the edible portion.
var mockFoodTable = []mockFood{
	{"rice", 130, 2.7, 28, 0.3},
	{"brown rice", 111, 2.6, 23, 0.9},
	{"chicken breast", 165, 31, 0, 3.6},
	{"chicken", 239, 27, 0, 14},
	{"apple", 52, 0.3, 14, 0.2},
	{"banana", 89, 1.1, 23, 0.3},
	{"whole wheat bread", 247, 13, 41, 4.2},
	{"bread", 265, 9, 49, 3.2},
	{"milk", 61, 3.2, 4.8, 3.3},
	{"egg", 155, 13, 1.1, 11},
	{"pasta", 131, 5, 25, 1.1},
	{"potato", 77, 2, 17, 0.1},
	{"salad", 15, 1.2, 2.9, 0.2},
	{"yogurt", 59, 10, 3.6, 0.4},
	{"salmon", 208, 20, 0, 13},
	{"fish", 206, 22, 0, 12},
	{"dal", 116, 9, 20, 0.4},
	{"paneer", 265, 18, 1.2, 21},
	{"oatmeal", 68, 2.4, 12, 1.4},
	{"oats", 389, 17, 66, 6.9},
	{"cheese", 402, 25, 1.3, 33},
	{"peanut butter", 588, 25, 20, 50},
	{"orange", 47, 0.9, 12, 0.1},
	{"tofu", 76, 8, 1.9, 4.8},
	{"beef", 250, 26, 0, 15},
	{"soup", 35, 1.5, 5, 1},
	{"tomato", 18, 0.9, 3.9, 0.2},
	{"spinach", 23, 2.9, 3.6, 0.4},
	{"almonds", 579, 21, 22, 50},
	{"butter", 717, 0.9, 0.1, 81},
	{"pizza", 266, 11, 33, 10},
	{"burger", 295, 17, 24, 14},
	{"noodles", 138, 4.5, 25, 2.1},
	{"coffee", 1, 0.1, 0, 0},
	{"tea", 1, 0, 0.3, 0},
	{"orange juice", 45, 0.7, 10, 0.2},
	{"chapati", 297, 11, 46, 7.5},
	{"roti", 297, 11, 46, 7.5},
	{"idli", 58, 2, 12, 0.4},
	{"dosa", 168, 3.9, 29, 3.7},
	{"curd", 98, 11, 3.4, 4.3},
}

// MockFoodRepository serves lookups from the built-in food table. It
// implements FoodDataRepositoryInterface and doubles as the fallback
// behind the live client.
type MockFoodRepository struct{}

// NewMockFoodRepository creates a repository over the built-in table.
func NewMockFoodRepository() *MockFoodRepository {
	return &MockFoodRepository{}
}

// Search returns up to limit candidate records for the query, best
// lexical overlap first. Candidates with no overlap are omitted; final
// similarity gating is the resolver's concern.
func (r *MockFoodRepository) Search(_ context.Context, query string, limit int) ([]model.FoodRecord, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil, nil
	}

	type scored struct {
		food  mockFood
		score float64
	}
	candidates := make([]scored, 0, 8)
	for _, f := range mockFoodTable {
		s := overlapScore(query, f.name)
		if s > 0 {
			candidates = append(candidates, scored{food: f, score: s})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}
	records := make([]model.FoodRecord, 0, len(candidates))
	for _, c := range candidates {
		records = append(records, c.food.toRecord())
	}
	return records, nil
}

// overlapScore ranks lexical overlap between a query and a table name:
// exact match, containment either way, then shared token count.
func overlapScore(query, name string) float64 {
	switch {
	case query == name:
		return 3
	case strings.Contains(query, name) || strings.Contains(name, query):
		return 2
	}
	nameTokens := make(map[string]bool)
	for _, t := range strings.Fields(name) {
		nameTokens[t] = true
	}
	shared := 0
	for _, t := range strings.Fields(query) {
		if nameTokens[t] || nameTokens[strings.TrimSuffix(t, "s")] {
			shared++
		}
	}
	return float64(shared)
}

// toRecord converts a table row to a per-100g food record.
func (f mockFood) toRecord() model.FoodRecord {
	return model.FoodRecord{
		Description:     f.name,
		ServingSize:     100,
		ServingSizeUnit: "g",
		Nutrients: []model.FoodNutrient{
			{NutrientID: nutrientIDEnergy, NutrientName: "Energy", UnitName: "KCAL", Value: f.calories},
			{NutrientID: nutrientIDProtein, NutrientName: "Protein", UnitName: "G", Value: f.protein},
			{NutrientID: nutrientIDCarbs, NutrientName: "Carbohydrate, by difference", UnitName: "G", Value: f.carbs},
			{NutrientID: nutrientIDFat, NutrientName: "Total lipid (fat)", UnitName: "G", Value: f.fat},
		},
	}
}
