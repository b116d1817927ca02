package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-resty/resty/v2"

	"github.com/nutrivision/nutrition-service/config"
	"github.com/nutrivision/nutrition-service/internal/domain/model"
)

// FoodDataRepository queries the USDA FoodData Central search API.
type FoodDataRepository struct {
	client *resty.Client
	apiKey string
}

// NewFoodDataRepository creates a FoodData Central client from config.
func NewFoodDataRepository(cfg config.FoodDataConfig) *FoodDataRepository {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetRetryCount(1)
	return &FoodDataRepository{
		client: client,
		apiKey: cfg.APIKey,
	}
}

// foodSearchResponse mirrors the fields of the /foods/search payload
// that resolution consumes.
type foodSearchResponse struct {
	Foods []struct {
		FdcID         int64   `json:"fdcId"`
		Description   string  `json:"description"`
		ServingSize   float64 `json:"servingSize"`
		ServingUnit   string  `json:"servingSizeUnit"`
		FoodNutrients []struct {
			NutrientID   int64   `json:"nutrientId"`
			NutrientName string  `json:"nutrientName"`
			UnitName     string  `json:"unitName"`
			Value        float64 `json:"value"`
		} `json:"foodNutrients"`
		FoodPortions []struct {
			GramWeight float64 `json:"gramWeight"`
		} `json:"foodPortions"`
	} `json:"foods"`
}

// Search queries the food database for the given ingredient name and
// returns up to limit candidate records in API ranking order.
func (r *FoodDataRepository) Search(ctx context.Context, query string, limit int) ([]model.FoodRecord, error) {
	var out foodSearchResponse
	resp, err := r.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"query":    query,
			"pageSize": strconv.Itoa(limit),
			"api_key":  r.apiKey,
		}).
		SetResult(&out).
		Get("/foods/search")
	if err != nil {
		return nil, fmt.Errorf("food search request: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("food search returned status %d", resp.StatusCode())
	}

	records := make([]model.FoodRecord, 0, len(out.Foods))
	for _, f := range out.Foods {
		record := model.FoodRecord{
			FdcID:           f.FdcID,
			Description:     f.Description,
			ServingSize:     f.ServingSize,
			ServingSizeUnit: f.ServingUnit,
		}
		for _, n := range f.FoodNutrients {
			record.Nutrients = append(record.Nutrients, model.FoodNutrient{
				NutrientID:   n.NutrientID,
				NutrientName: n.NutrientName,
				UnitName:     n.UnitName,
				Value:        n.Value,
			})
		}
		for _, p := range f.FoodPortions {
			record.Portions = append(record.Portions, model.FoodPortion{GramWeight: p.GramWeight})
		}
		records = append(records, record)
	}
	return records, nil
}
