package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/BruksfildServices01/lahermandad/internal/audit"
	domain "github.com/BruksfildServices01/lahermandad/internal/domain/catalog"
	"github.com/BruksfildServices01/lahermandad/internal/httperr"
	"github.com/BruksfildServices01/lahermandad/internal/models"
	"github.com/BruksfildServices01/lahermandad/internal/validators"
)

type BannerInput struct {
	Form     validators.BannerForm
	Image    *ImageUpload
	ImageURL string
}

type Banners struct {
	repo   domain.BannerRepository
	images *Images
	audit  *audit.Dispatcher
}

func NewBanners(
	repo domain.BannerRepository,
	images *Images,
	audit *audit.Dispatcher,
) *Banners {
	return &Banners{
		repo:   repo,
		images: images,
		audit:  audit,
	}
}

func (uc *Banners) List(ctx context.Context) ([]models.Banner, error) {
	return uc.repo.List(ctx)
}

func (uc *Banners) Create(ctx context.Context, userID uint, in BannerInput) (*models.Banner, error) {
	b := &models.Banner{}
	if err := applyBannerForm(b, in.Form); err != nil {
		return nil, err
	}

	switch {
	case in.Image != nil:
		res, err := uc.images.upload(ctx, in.Image)
		if err != nil {
			return nil, err
		}
		b.ImageURL, b.ImageKey = res.URL, res.Key
	case strings.TrimSpace(in.ImageURL) != "":
		b.ImageURL = strings.TrimSpace(in.ImageURL)
	default:
		return nil, httperr.NewFieldError("image", "image_required", "Envie a imagem do banner.")
	}

	if err := uc.repo.Create(ctx, b); err != nil {
		uc.images.discard(ctx, b.ImageKey)
		return nil, fmt.Errorf("create banner: %w", err)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   audit.ActionBannerCreated,
		Entity:   "banner",
		EntityID: &b.ID,
		Metadata: map[string]any{"title": b.Title},
	})
	return b, nil
}

func (uc *Banners) Update(ctx context.Context, userID uint, id uint, in BannerInput) (*models.Banner, error) {
	b, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyBannerForm(b, in.Form); err != nil {
		return nil, err
	}

	oldKey := b.ImageKey
	newKey := ""

	switch {
	case in.Image != nil:
		res, err := uc.images.upload(ctx, in.Image)
		if err != nil {
			return nil, err
		}
		b.ImageURL, b.ImageKey = res.URL, res.Key
		newKey = res.Key
	case strings.TrimSpace(in.ImageURL) != "" && strings.TrimSpace(in.ImageURL) != b.ImageURL:
		b.ImageURL, b.ImageKey = strings.TrimSpace(in.ImageURL), ""
	}

	if err := uc.repo.Update(ctx, b); err != nil {
		uc.images.discard(ctx, newKey)
		return nil, fmt.Errorf("update banner: %w", err)
	}

	if oldKey != "" && oldKey != b.ImageKey {
		uc.images.discard(ctx, oldKey)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   audit.ActionBannerUpdated,
		Entity:   "banner",
		EntityID: &b.ID,
	})
	return b, nil
}

func (uc *Banners) Delete(ctx context.Context, userID uint, id uint) error {
	b, err := uc.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.images.discard(ctx, b.ImageKey)

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   audit.ActionBannerDeleted,
		Entity:   "banner",
		EntityID: &id,
	})
	return nil
}

func (uc *Banners) Count(ctx context.Context) (int64, error) {
	return uc.repo.Count(ctx)
}

func applyBannerForm(b *models.Banner, f validators.BannerForm) error {
	if ve := validators.Struct(f); ve != nil {
		return ve
	}
	b.Title = strings.TrimSpace(f.Title)
	b.Subtitle = strings.TrimSpace(f.Subtitle)
	b.ButtonText = strings.TrimSpace(f.ButtonText)
	b.ButtonLink = strings.TrimSpace(f.ButtonLink)
	return nil
}
