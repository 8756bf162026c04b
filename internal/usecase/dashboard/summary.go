package dashboard

import (
	"context"

	"golang.org/x/sync/errgroup"

	domain "github.com/BruksfildServices01/lahermandad/internal/domain/appointment"
	"github.com/BruksfildServices01/lahermandad/internal/domain/catalog"
	"github.com/BruksfildServices01/lahermandad/internal/domain/settings"
)

type Summary struct {
	Appointments        int64 `json:"appointments"`
	PendingAppointments int64 `json:"pending_appointments"`
	Products            int64 `json:"products"`
	Banners             int64 `json:"banners"`
	SettingsConfigured  bool  `json:"settings_configured"`
}

type GetSummary struct {
	appointments domain.Repository
	products     catalog.ProductRepository
	banners      catalog.BannerRepository
	settings     settings.Repository
}

func NewGetSummary(
	appointments domain.Repository,
	products catalog.ProductRepository,
	banners catalog.BannerRepository,
	settings settings.Repository,
) *GetSummary {
	return &GetSummary{
		appointments: appointments,
		products:     products,
		banners:      banners,
		settings:     settings,
	}
}

func (uc *GetSummary) Execute(ctx context.Context) (*Summary, error) {
	var s Summary
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		counts, err := uc.appointments.CountByStatus(ctx)
		if err != nil {
			return err
		}
		for _, n := range counts {
			s.Appointments += n
		}
		s.PendingAppointments = counts[domain.StatusPending]
		return nil
	})
	g.Go(func() error {
		n, err := uc.products.Count(ctx)
		s.Products = n
		return err
	})
	g.Go(func() error {
		n, err := uc.banners.Count(ctx)
		s.Banners = n
		return err
	})
	g.Go(func() error {
		st, err := uc.settings.Get(ctx)
		s.SettingsConfigured = st != nil
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &s, nil
}
