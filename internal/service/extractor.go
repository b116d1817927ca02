package service

import (
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/nutrivision/nutrition-service/internal/domain/model"
)

// RuleBasedExtractor turns free meal text into food items using the
// clause segmenter and the template parser. It is pure and stateless;
// a single instance is shared across requests.
type RuleBasedExtractor struct{}

// NewRuleBasedExtractor creates a rule-based extractor.
func NewRuleBasedExtractor() *RuleBasedExtractor {
	return &RuleBasedExtractor{}
}

// Extract parses the text into food items. Duplicate ingredients keep
// the first occurrence only; later mentions of the same ingredient are
// dropped regardless of quantity or unit. Order follows first
// appearance in the text.
func (e *RuleBasedExtractor) Extract(text string) []model.FoodItem {
	clauses := SegmentClauses(text)
	items := make([]model.FoodItem, 0, len(clauses))
	seen := make(map[string]bool, len(clauses))

	for _, clause := range clauses {
		item, ok := ParseClause(clause)
		if !ok {
			log.Debug().Str("clause", clause).Msg("clause produced no food item")
			continue
		}
		key := strings.ToLower(strings.TrimSpace(item.Ingredient))
		if seen[key] {
			continue
		}
		seen[key] = true
		items = append(items, item)
	}
	return items
}
