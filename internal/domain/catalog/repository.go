package catalog

import (
	"context"

	"github.com/BruksfildServices01/lahermandad/internal/models"
)

type ProductFilter struct {
	Category models.Category
	Query    string
}

type ProductRepository interface {
	// List returns products newest first.
	List(ctx context.Context, f ProductFilter) ([]models.Product, error)
	Get(ctx context.Context, id uint) (*models.Product, error)
	Create(ctx context.Context, p *models.Product) error
	Update(ctx context.Context, p *models.Product) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type BannerRepository interface {
	// List returns banners in carousel order (oldest first).
	List(ctx context.Context) ([]models.Banner, error)
	Get(ctx context.Context, id uint) (*models.Banner, error)
	Create(ctx context.Context, b *models.Banner) error
	Update(ctx context.Context, b *models.Banner) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}
