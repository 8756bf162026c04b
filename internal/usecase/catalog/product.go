package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/lahermandad/internal/audit"
	domain "github.com/BruksfildServices01/lahermandad/internal/domain/catalog"
	"github.com/BruksfildServices01/lahermandad/internal/httperr"
	"github.com/BruksfildServices01/lahermandad/internal/models"
	"github.com/BruksfildServices01/lahermandad/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type ProductInput struct {
	Form  validators.ProductForm
	Image *ImageUpload
	// ImageURL is used when no file is sent, e.g. an externally hosted photo.
	ImageURL string
}

// ======================================================
// USE CASE
// ======================================================

type Products struct {
	repo   domain.ProductRepository
	images *Images
	audit  *audit.Dispatcher
}

func NewProducts(
	repo domain.ProductRepository,
	images *Images,
	audit *audit.Dispatcher,
) *Products {
	return &Products{
		repo:   repo,
		images: images,
		audit:  audit,
	}
}

func (uc *Products) List(ctx context.Context, f domain.ProductFilter) ([]models.Product, error) {
	if f.Category != "" && !f.Category.Valid() {
		return nil, httperr.ErrBusinessMsg("invalid_category", "Categoria inválida.")
	}
	return uc.repo.List(ctx, f)
}

func (uc *Products) Get(ctx context.Context, id uint) (*models.Product, error) {
	return uc.repo.Get(ctx, id)
}

// Create uploads the image first and removes it again if the row cannot be
// written.
func (uc *Products) Create(
	ctx context.Context,
	userID uint,
	in ProductInput,
) (*models.Product, error) {

	p := &models.Product{}
	if err := applyProductForm(p, in.Form); err != nil {
		return nil, err
	}

	switch {
	case in.Image != nil:
		res, err := uc.images.upload(ctx, in.Image)
		if err != nil {
			return nil, err
		}
		p.ImageURL, p.ImageKey = res.URL, res.Key
	case strings.TrimSpace(in.ImageURL) != "":
		p.ImageURL = strings.TrimSpace(in.ImageURL)
	default:
		return nil, httperr.NewFieldError("image", "image_required", "Envie uma imagem do produto.")
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		uc.images.discard(ctx, p.ImageKey)
		return nil, fmt.Errorf("create product: %w", err)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   audit.ActionProductCreated,
		Entity:   "product",
		EntityID: &p.ID,
		Metadata: map[string]any{"name": p.Name},
	})
	return p, nil
}

// Update replaces the fields and, when a new image is sent, swaps the stored
// object: the old one is deleted only after the row points at the new one.
func (uc *Products) Update(
	ctx context.Context,
	userID uint,
	id uint,
	in ProductInput,
) (*models.Product, error) {

	p, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyProductForm(p, in.Form); err != nil {
		return nil, err
	}

	oldKey := p.ImageKey
	newKey := ""

	switch {
	case in.Image != nil:
		res, err := uc.images.upload(ctx, in.Image)
		if err != nil {
			return nil, err
		}
		p.ImageURL, p.ImageKey = res.URL, res.Key
		newKey = res.Key
	case strings.TrimSpace(in.ImageURL) != "" && strings.TrimSpace(in.ImageURL) != p.ImageURL:
		p.ImageURL, p.ImageKey = strings.TrimSpace(in.ImageURL), ""
	}

	if err := uc.repo.Update(ctx, p); err != nil {
		uc.images.discard(ctx, newKey)
		return nil, fmt.Errorf("update product: %w", err)
	}

	if oldKey != "" && oldKey != p.ImageKey {
		uc.images.discard(ctx, oldKey)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   audit.ActionProductUpdated,
		Entity:   "product",
		EntityID: &p.ID,
	})
	return p, nil
}

func (uc *Products) Delete(ctx context.Context, userID uint, id uint) error {
	p, err := uc.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.images.discard(ctx, p.ImageKey)

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   audit.ActionProductDeleted,
		Entity:   "product",
		EntityID: &id,
		Metadata: map[string]any{"name": p.Name},
	})
	return nil
}

func (uc *Products) Count(ctx context.Context) (int64, error) {
	return uc.repo.Count(ctx)
}

// ======================================================
// HELPERS
// ======================================================

func applyProductForm(p *models.Product, f validators.ProductForm) error {
	f.Sizes = normalizeSizes(f.Sizes)
	if ve := validators.Struct(f); ve != nil {
		return ve
	}

	price, err := decimal.NewFromString(strings.TrimSpace(f.Price))
	if err != nil || !price.IsPositive() {
		return httperr.NewFieldError("price", "invalid_price", "Informe um preço válido.")
	}
	if len(f.Sizes) == 0 {
		return httperr.NewFieldError("sizes", "sizes_required", "Informe ao menos um tamanho.")
	}

	p.Name = strings.TrimSpace(f.Name)
	p.Brand = strings.TrimSpace(f.Brand)
	p.Price = price.Round(2)
	p.Category = models.Category(f.Category)
	p.Sizes = f.Sizes
	return nil
}

// normalizeSizes accepts either a list or a single comma separated value
// and drops blanks and repeats, keeping the admin's order.
func normalizeSizes(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, raw := range in {
		for _, s := range strings.Split(raw, ",") {
			s = strings.TrimSpace(s)
			if s == "" {
				continue
			}
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}
