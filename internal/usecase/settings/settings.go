package settings

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/lahermandad/internal/audit"
	domain "github.com/BruksfildServices01/lahermandad/internal/domain/settings"
	"github.com/BruksfildServices01/lahermandad/internal/models"
	"github.com/BruksfildServices01/lahermandad/internal/validators"
)

const SetupPath = "/admin/settings"

// View is what public pages receive. When nothing has been saved yet the
// defaults are returned with Configured=false.
type View struct {
	models.Settings
	Configured bool   `json:"configured"`
	SetupPath  string `json:"setup_path,omitempty"`
}

type Service struct {
	repo  domain.Repository
	cache domain.Cache
	audit *audit.Dispatcher
}

func NewService(
	repo domain.Repository,
	cache domain.Cache,
	audit *audit.Dispatcher,
) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

// Get returns the stored settings or nil when none exist. Cache errors are
// logged and fall through to the database.
func (s *Service) Get(ctx context.Context) (*models.Settings, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err != nil {
			zap.L().Warn("settings cache read failed", zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	st, err := s.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	if st != nil && s.cache != nil {
		if err := s.cache.Set(ctx, st); err != nil {
			zap.L().Warn("settings cache write failed", zap.Error(err))
		}
	}
	return st, nil
}

// Public never fails: a backend error is logged and the defaults are shown.
func (s *Service) Public(ctx context.Context) View {
	st, err := s.Get(ctx)
	if err != nil {
		zap.L().Error("settings unavailable, using defaults", zap.Error(err))
	}
	if st == nil {
		return View{Settings: models.DefaultSettings(), SetupPath: SetupPath}
	}
	return View{Settings: *st, Configured: true}
}

func (s *Service) Upsert(
	ctx context.Context,
	userID uint,
	form validators.SettingsForm,
) (*models.Settings, error) {

	if ve := validators.Struct(form); ve != nil {
		return nil, ve
	}

	st := &models.Settings{
		ID:           models.SettingsID,
		SiteName:     strings.TrimSpace(form.SiteName),
		BrandColor:   strings.ToUpper(form.BrandColor),
		ContactEmail: strings.TrimSpace(form.ContactEmail),
		ContactPhone: strings.TrimSpace(form.ContactPhone),
		FooterQuote:  strings.TrimSpace(form.FooterQuote),
	}

	if err := s.repo.Upsert(ctx, st); err != nil {
		return nil, fmt.Errorf("save settings: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			zap.L().Warn("settings cache invalidation failed", zap.Error(err))
		}
	}

	s.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   audit.ActionSettingsUpdated,
		Entity:   "settings",
		Metadata: map[string]any{"site_name": st.SiteName},
	})

	return st, nil
}
