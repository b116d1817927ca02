package http

import (
	"github.com/gin-gonic/gin"
)

// AnalysisRoutes handles meal analysis route registration.
type AnalysisRoutes struct {
	handler *Handler
}

// NewAnalysisRoutes creates a new AnalysisRoutes instance.
func NewAnalysisRoutes(handler *Handler) *AnalysisRoutes {
	return &AnalysisRoutes{handler: handler}
}

// RegisterPublicRoutes registers the analysis routes on the given group.
func (r *AnalysisRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyze", r.handler.AnalyzeText)
}

// GetHandler returns the underlying analysis handler.
func (r *AnalysisRoutes) GetHandler() *Handler {
	return r.handler
}
