package service

import (
	"github.com/nutrivision/nutrition-service/internal/domain/model"
)

// Consolidate groups items by (ingredient, unit) and sums quantities
// within each group, rounding sums to two decimals. The same ingredient
// in different units stays separate. Output order is the first
// appearance of each group, which makes consolidation idempotent.
func Consolidate(items []model.FoodItem) []model.FoodItem {
	out := make([]model.FoodItem, 0, len(items))
	index := make(map[string]int, len(items))

	for _, item := range items {
		key := item.Key()
		if i, ok := index[key]; ok {
			out[i].Quantity = model.Round2(out[i].Quantity + item.Quantity)
			continue
		}
		index[key] = len(out)
		out = append(out, item)
	}
	return out
}
