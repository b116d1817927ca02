package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/nutrivision/nutrition-service/internal/domain/model"
	"github.com/nutrivision/nutrition-service/internal/metrics"
	"github.com/nutrivision/nutrition-service/internal/repository"
	"github.com/nutrivision/nutrition-service/internal/service/cache"
)

// NutrientResolver maps food items to nutrient profiles.
type NutrientResolver interface {
	Resolve(ctx context.Context, item model.FoodItem) model.Resolution
	ResolveAll(ctx context.Context, items []model.FoodItem) []model.Resolution
}

// ResolverOptions tunes the resolver. Zero values take defaults.
type ResolverOptions struct {
	// SearchLimit caps candidates fetched per lookup
	SearchLimit int
	// Workers bounds concurrent resolutions in ResolveAll
	Workers int
	// MinMatchRatio is the similarity floor on the fallback path
	MinMatchRatio float64
}

const (
	defaultSearchLimit   = 5
	defaultWorkers       = 4
	defaultMinMatchRatio = 0.3
	defaultBaseGrams     = 100.0
)

// NutrientResolverService resolves items against a live food database
// with a built-in table as fallback. The live repository may be nil, in
// which case every lookup goes straight to the fallback. A cache, when
// present, short-circuits repeat (ingredient, quantity, unit) triples.
type NutrientResolverService struct {
	live     repository.FoodDataRepositoryInterface
	fallback repository.FoodDataRepositoryInterface
	cache    cache.Cache
	opts     ResolverOptions
}

// NewNutrientResolver creates a resolver. live and resolutionCache may
// be nil; fallback must not be.
func NewNutrientResolver(live, fallback repository.FoodDataRepositoryInterface, resolutionCache cache.Cache, opts ResolverOptions) *NutrientResolverService {
	if opts.SearchLimit <= 0 {
		opts.SearchLimit = defaultSearchLimit
	}
	if opts.Workers <= 0 {
		opts.Workers = defaultWorkers
	}
	if opts.MinMatchRatio <= 0 {
		opts.MinMatchRatio = defaultMinMatchRatio
	}
	return &NutrientResolverService{
		live:     live,
		fallback: fallback,
		cache:    resolutionCache,
		opts:     opts,
	}
}

// cacheKey identifies a resolution by ingredient, quantity and unit.
func cacheKey(item model.FoodItem) string {
	return fmt.Sprintf("%s|%g|%s", strings.ToLower(strings.TrimSpace(item.Ingredient)), item.Quantity, item.Unit)
}

// Resolve maps one item to a resolution. A failed lookup never returns
// an error to the caller; it yields a Resolution carrying Err so batch
// processing can continue around it.
func (s *NutrientResolverService) Resolve(ctx context.Context, item model.FoodItem) model.Resolution {
	start := time.Now()
	key := cacheKey(item)

	if s.cache != nil {
		if cached, ok := s.cache.Get(key); ok {
			metrics.RecordNutrientResolution(time.Since(start), "cache", resolutionStatus(cached))
			return cached
		}
	}

	record, source, found := s.lookup(ctx, item.Ingredient)
	if !found {
		res := model.Resolution{Err: fmt.Sprintf("No match found for '%s'", item.Ingredient)}
		if s.cache != nil {
			s.cache.Set(key, res)
		}
		metrics.RecordNutrientResolution(time.Since(start), source, "no_match")
		return res
	}

	perBase := extractMacros(record)
	base := baseGrams(record)
	grams := item.Quantity * UnitGrams(item.Unit)

	res := model.Resolution{
		MatchedDescription: record.Description,
		Grams:              model.Round2(grams),
		Macros:             perBase.Scale(grams / base).Rounded(),
		Confidence:         model.Round3(Ratio(strings.ToLower(item.Ingredient), strings.ToLower(record.Description))),
	}
	if s.cache != nil {
		s.cache.Set(key, res)
	}
	metrics.RecordNutrientResolution(time.Since(start), source, "ok")
	return res
}

// lookup finds the best database record for an ingredient. The live
// backend is tried first; errors and empty results degrade to the
// fallback table, which additionally requires the similarity floor.
func (s *NutrientResolverService) lookup(ctx context.Context, ingredient string) (model.FoodRecord, string, bool) {
	query := strings.ToLower(strings.TrimSpace(ingredient))

	if s.live != nil {
		records, err := s.live.Search(ctx, query, s.opts.SearchLimit)
		if err != nil {
			log.Warn().Err(err).Str("ingredient", query).Msg("live food lookup failed, using fallback table")
		} else if best, ratio, ok := bestRecord(query, records); ok {
			log.Debug().Str("ingredient", query).Str("match", best.Description).Float64("ratio", ratio).Msg("resolved against live database")
			return best, "live", true
		}
	}

	records, err := s.fallback.Search(ctx, query, s.opts.SearchLimit)
	if err != nil {
		log.Error().Err(err).Str("ingredient", query).Msg("fallback food lookup failed")
		return model.FoodRecord{}, "fallback", false
	}
	best, ratio, ok := bestRecord(query, records)
	if !ok || ratio <= s.opts.MinMatchRatio {
		return model.FoodRecord{}, "fallback", false
	}
	return best, "fallback", true
}

// bestRecord picks the candidate whose description is most similar to
// the query.
func bestRecord(query string, records []model.FoodRecord) (model.FoodRecord, float64, bool) {
	bestRatio := -1.0
	bestIdx := -1
	for i, rec := range records {
		r := Ratio(query, strings.ToLower(rec.Description))
		if r > bestRatio {
			bestRatio = r
			bestIdx = i
		}
	}
	if bestIdx < 0 {
		return model.FoodRecord{}, 0, false
	}
	return records[bestIdx], bestRatio, true
}

// extractMacros reduces a record's nutrient rows to the four tracked
// macros, expressed per the record's base amount. Rows are matched by
// nutrient number first, then by name. For energy, a kcal row replaces
// an earlier non-kcal one so kJ entries don't win.
func extractMacros(record model.FoodRecord) model.NutrientProfile {
	var out model.NutrientProfile
	caloriesIsKcal := false

	for _, n := range record.Nutrients {
		name := strings.ToLower(n.NutrientName)
		unit := strings.ToUpper(n.UnitName)

		switch {
		case n.NutrientID == 1008 || strings.Contains(name, "energy"):
			if out.Calories == 0 || (!caloriesIsKcal && unit == "KCAL") {
				out.Calories = n.Value
				caloriesIsKcal = unit == "KCAL"
			}
		case n.NutrientID == 1003 || (strings.Contains(name, "protein") && !strings.Contains(name, "amino")):
			if out.ProteinG == 0 {
				out.ProteinG = n.Value
			}
		case n.NutrientID == 1005 || strings.Contains(name, "carbohydrate"):
			if out.CarbsG == 0 {
				out.CarbsG = n.Value
			}
		case n.NutrientID == 1004 || strings.Contains(name, "lipid") || (strings.Contains(name, "fat") && !strings.Contains(name, "fatty")):
			if out.FatG == 0 {
				out.FatG = n.Value
			}
		}
	}
	return out
}

// baseGrams determines the gram amount the record's nutrient values
// describe: the labeled serving size when it is expressed in grams,
// then the first usable portion, then the 100 g convention. Serving
// sizes in non-mass units (fl oz, cups) cannot anchor gram scaling.
func baseGrams(record model.FoodRecord) float64 {
	if record.ServingSize > 0 && isGramUnit(record.ServingSizeUnit) {
		return record.ServingSize
	}
	for _, p := range record.Portions {
		if p.GramWeight > 0 {
			return p.GramWeight
		}
	}
	return defaultBaseGrams
}

func isGramUnit(unit string) bool {
	switch strings.ToLower(strings.TrimSpace(unit)) {
	case "g", "gram", "grams":
		return true
	}
	return false
}

func resolutionStatus(r model.Resolution) string {
	if r.Failed() {
		return "no_match"
	}
	return "ok"
}

// ResolveAll resolves a batch concurrently with a bounded worker pool
// and returns results in input order. Per-item failures surface as
// error-carrying resolutions; the batch itself never aborts.
func (s *NutrientResolverService) ResolveAll(ctx context.Context, items []model.FoodItem) []model.Resolution {
	results := make([]model.Resolution, len(items))
	if len(items) == 0 {
		return results
	}

	sem := make(chan struct{}, s.opts.Workers)
	var wg sync.WaitGroup
	for i, item := range items {
		wg.Add(1)
		go func(i int, item model.FoodItem) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results[i] = s.Resolve(ctx, item)
		}(i, item)
	}
	wg.Wait()
	return results
}
