package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/nutrivision/nutrition-service/internal/domain/model"
	"github.com/nutrivision/nutrition-service/internal/metrics"
)

// AnalysisItem pairs an extracted food item with its resolution.
type AnalysisItem struct {
	Item       model.FoodItem
	Resolution model.Resolution
}

// Analysis is the full outcome of analyzing one meal description.
// Totals sum the macros of successfully resolved items only.
type Analysis struct {
	Items  []AnalysisItem
	Totals model.NutrientProfile
}

// TextAnalyzer turns free meal text into resolved food items with
// nutrient totals.
type TextAnalyzer interface {
	Analyze(ctx context.Context, text string) Analysis
}

// AnalyzerService wires the extraction pipeline: rule-based extraction,
// optional entity recognition, hybrid merging, consolidation and
// nutrient resolution.
type AnalyzerService struct {
	extractor  *RuleBasedExtractor
	recognizer EntityRecognizer
	merger     *HybridMerger
	resolver   NutrientResolver
}

// NewAnalyzerService creates the analyzer. recognizer may be nil for
// rule-only extraction.
func NewAnalyzerService(recognizer EntityRecognizer, resolver NutrientResolver) *AnalyzerService {
	return &AnalyzerService{
		extractor:  NewRuleBasedExtractor(),
		recognizer: recognizer,
		merger:     NewHybridMerger(),
		resolver:   resolver,
	}
}

// Analyze runs the full pipeline on one meal description. Items that
// fail resolution stay in the result with their error attached and are
// excluded from the totals; analysis itself never fails.
func (s *AnalyzerService) Analyze(ctx context.Context, text string) Analysis {
	start := time.Now()

	ruleItems := s.extractor.Extract(text)
	recognized := FoodNames(ctx, s.recognizer, text)
	merged := s.merger.Merge(ruleItems, recognized)
	consolidated := Consolidate(merged)

	resolutions := s.resolver.ResolveAll(ctx, consolidated)

	result := Analysis{Items: make([]AnalysisItem, len(consolidated))}
	var totals model.NutrientProfile
	failed := 0
	for i, item := range consolidated {
		result.Items[i] = AnalysisItem{Item: item, Resolution: resolutions[i]}
		if resolutions[i].Failed() {
			failed++
			continue
		}
		totals = totals.Add(resolutions[i].Macros)
	}
	result.Totals = totals.Rounded()

	status := "ok"
	if failed > 0 && failed == len(consolidated) && len(consolidated) > 0 {
		status = "unresolved"
	}
	metrics.RecordTextAnalysis(time.Since(start), status, len(consolidated))
	log.Debug().
		Int("rule_items", len(ruleItems)).
		Int("recognized", len(recognized)).
		Int("items", len(consolidated)).
		Int("failed", failed).
		Dur("took", time.Since(start)).
		Msg("analyzed meal text")

	return result
}
