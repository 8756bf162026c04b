package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/lahermandad/internal/domain/catalog"
	"github.com/BruksfildServices01/lahermandad/internal/models"
)

type BannerGormRepository struct {
	db *gorm.DB
}

func NewBannerGormRepository(db *gorm.DB) *BannerGormRepository {
	return &BannerGormRepository{db: db}
}

func (r *BannerGormRepository) List(ctx context.Context) ([]models.Banner, error) {
	var banners []models.Banner
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Order("id ASC").
		Find(&banners).Error; err != nil {
		return nil, err
	}
	return banners, nil
}

func (r *BannerGormRepository) Get(ctx context.Context, id uint) (*models.Banner, error) {
	var b models.Banner
	err := r.db.WithContext(ctx).First(&b, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, catalog.ErrBannerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BannerGormRepository) Create(ctx context.Context, b *models.Banner) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BannerGormRepository) Update(ctx context.Context, b *models.Banner) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BannerGormRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Banner{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return catalog.ErrBannerNotFound
	}
	return nil
}

func (r *BannerGormRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Banner{}).Count(&n).Error
	return n, err
}

var _ catalog.BannerRepository = (*BannerGormRepository)(nil)
