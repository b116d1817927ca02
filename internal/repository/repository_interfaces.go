// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"github.com/nutrivision/nutrition-service/internal/domain/model"
)

// FoodDataRepositoryInterface defines the interface for food database
// lookups. Implementations are the live FoodData Central client and the
// built-in food table.
type FoodDataRepositoryInterface interface {
	Search(ctx context.Context, query string, limit int) ([]model.FoodRecord, error)
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}
