package settings

import (
	"context"

	"github.com/BruksfildServices01/lahermandad/internal/models"
)

// Repository reads and writes the single settings row. Get returns
// (nil, nil) when the row has never been saved.
type Repository interface {
	Get(ctx context.Context) (*models.Settings, error)
	Upsert(ctx context.Context, s *models.Settings) error
}

// Cache is a read-through layer in front of Repository. A miss is
// reported as (nil, nil).
type Cache interface {
	Get(ctx context.Context) (*models.Settings, error)
	Set(ctx context.Context, s *models.Settings) error
	Invalidate(ctx context.Context) error
}
