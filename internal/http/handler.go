// Package http provides HTTP handlers and routing for the nutrition service.
package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nutrivision/nutrition-service/internal/domain/dto"
	"github.com/nutrivision/nutrition-service/internal/domain/model"
	"github.com/nutrivision/nutrition-service/internal/i18n"
	"github.com/nutrivision/nutrition-service/internal/middleware"
	"github.com/nutrivision/nutrition-service/internal/service"
)

// Handler provides HTTP handlers for meal text analysis routes.
type Handler struct {
	analyzer service.TextAnalyzer
}

// NewHandler creates a new Handler instance.
func NewHandler(analyzer service.TextAnalyzer) *Handler {
	return &Handler{analyzer: analyzer}
}

// AnalyzeText handles POST /api/analyze requests.
//
// @Summary      Analyze a meal description
// @Description  Extracts food items with quantities and units from a free-text meal description, resolves each against the food database, and returns per-item macronutrients plus totals. Items that cannot be resolved are reported with a note and contribute zero to the totals.
// @Tags         Analysis
// @Accept       json
// @Produce      json
// @Param        request body dto.AnalyzeTextRequest true "Meal description"
// @Success      200 {object} dto.SuccessResponse "Successful analysis"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Param        X-API-Key header string false "API key (required if auth enabled)"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid API key"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/analyze [post]
func (h *Handler) AnalyzeText(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.AnalyzeTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		if _, ok := err.(*dto.ValidationError); ok {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationDescription, err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	analysis := h.analyzer.Analyze(c.Request.Context(), req.Description)
	result := toAnalysisResult(req.Description, analysis)

	// Persist an analysis log entry (async, best effort)
	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok && ls != nil {
			recordAnalysisLog(c, ls, &req, &result)
		}
	}

	builder.SuccessOK(result)
}

// toAnalysisResult converts a pipeline analysis to the response DTO.
func toAnalysisResult(input string, analysis service.Analysis) dto.AnalysisResult {
	items := make([]dto.AnalyzedItem, len(analysis.Items))
	for i, ai := range analysis.Items {
		item := dto.AnalyzedItem{
			Ingredient: ai.Item.Ingredient,
			Quantity:   ai.Item.Quantity,
			Unit:       ai.Item.Unit,
			Macros:     ai.Resolution.Macros,
		}
		if ai.Resolution.Failed() {
			item.Note = ai.Resolution.Err
		} else {
			score := ai.Resolution.Confidence
			item.MatchScore = &score
		}
		items[i] = item
	}
	return dto.AnalysisResult{
		Input:  input,
		Items:  items,
		Totals: analysis.Totals,
	}
}

// recordAnalysisLog stores a summary log entry for the analysis.
func recordAnalysisLog(c *gin.Context, ls service.LoggingService, req *dto.AnalyzeTextRequest, result *dto.AnalysisResult) {
	totals := result.Totals
	entry := &model.LogEntry{
		Timestamp:   time.Now(),
		Level:       "info",
		Message:     "meal text analyzed",
		RequestID:   middleware.GetRequestID(c),
		Method:      c.Request.Method,
		Path:        c.Request.URL.Path,
		IP:          c.ClientIP(),
		InputLength: len(req.Description),
		ItemCount:   len(result.Items),
		Totals:      &totals,
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = ls.CreateLog(ctx, entry)
	}()
}
