package service

import (
	"regexp"
	"strings"

	"github.com/nutrivision/nutrition-service/internal/domain/model"
)

// HybridMerger reconciles rule-extracted items with recognizer food
// names. Recognized names refine the ingredient wording of matching
// rule items; unmatched recognized names become new one-serving items.
type HybridMerger struct {
	threshold float64
}

// defaultMergeThreshold is the minimum match score for a recognized
// name to rename a rule item.
const defaultMergeThreshold = 0.7

// NewHybridMerger creates a merger with the default match threshold.
func NewHybridMerger() *HybridMerger {
	return &HybridMerger{threshold: defaultMergeThreshold}
}

var bareNumberRe = regexp.MustCompile(`^\d+(?:\.\d+)?$`)

// mergeNoiseWords are recognizer outputs that are never foods on their
// own: units, connectives and fillers.
var mergeNoiseWords = map[string]bool{
	"of": true, "and": true, "the": true, "some": true, "with": true,
	"had": true, "ate": true, "for": true,
}

// Merge applies recognized food names to the rule items. Matching is
// tiered: exact name match scores 1.0, a recognized name contained in
// the rule name 0.9, the reverse containment 0.8, anything else the
// edit similarity. The best unused recognized name at or above the
// threshold replaces the rule item's wording; quantity and unit always
// come from the rule item. Leftover recognized names that look like
// food are appended as one-serving items.
func (m *HybridMerger) Merge(ruleItems []model.FoodItem, recognized []string) []model.FoodItem {
	recognized = filterRecognized(recognized)
	if len(recognized) == 0 {
		return ruleItems
	}

	merged := make([]model.FoodItem, len(ruleItems))
	copy(merged, ruleItems)
	used := make([]bool, len(recognized))

	for i := range merged {
		ruleName := strings.ToLower(merged[i].Ingredient)
		bestScore := 0.0
		bestIdx := -1
		for j, name := range recognized {
			if used[j] {
				continue
			}
			score := matchScore(ruleName, name)
			if score > bestScore {
				bestScore = score
				bestIdx = j
			}
		}
		if bestIdx >= 0 && bestScore >= m.threshold {
			merged[i].Ingredient = recognized[bestIdx]
			used[bestIdx] = true
		}
	}

	for j, name := range recognized {
		if used[j] {
			continue
		}
		if looksLikeFood(name) || len(name) >= 4 {
			merged = append(merged, model.FoodItem{
				Ingredient: name,
				Quantity:   1,
				Unit:       model.UnitServing,
			})
		}
	}
	return merged
}

// matchScore is the tiered similarity between a rule item name and a
// recognized name.
func matchScore(ruleName, recognizedName string) float64 {
	switch {
	case ruleName == recognizedName:
		return 1.0
	case strings.Contains(ruleName, recognizedName):
		return 0.9
	case strings.Contains(recognizedName, ruleName):
		return 0.8
	default:
		return Ratio(ruleName, recognizedName)
	}
}

// filterRecognized drops recognizer noise: bare numbers, unit words,
// connectives and spans shorter than three characters.
func filterRecognized(names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if len(name) < 3 {
			continue
		}
		if bareNumberRe.MatchString(name) {
			continue
		}
		if mergeNoiseWords[name] || IsUnitToken(name) {
			continue
		}
		out = append(out, name)
	}
	return out
}
