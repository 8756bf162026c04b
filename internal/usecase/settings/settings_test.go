package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/BruksfildServices01/lahermandad/internal/httperr"
	"github.com/BruksfildServices01/lahermandad/internal/models"
	"github.com/BruksfildServices01/lahermandad/internal/validators"
)

type memRepo struct {
	row    *models.Settings
	reads  int
	getErr error
}

func (r *memRepo) Get(context.Context) (*models.Settings, error) {
	r.reads++
	if r.getErr != nil {
		return nil, r.getErr
	}
	if r.row == nil {
		return nil, nil
	}
	cp := *r.row
	return &cp, nil
}

func (r *memRepo) Upsert(_ context.Context, s *models.Settings) error {
	cp := *s
	r.row = &cp
	return nil
}

type memCache struct {
	val *models.Settings
}

func (c *memCache) Get(context.Context) (*models.Settings, error) { return c.val, nil }
func (c *memCache) Set(_ context.Context, s *models.Settings) error {
	c.val = s
	return nil
}
func (c *memCache) Invalidate(context.Context) error {
	c.val = nil
	return nil
}

func validForm() validators.SettingsForm {
	return validators.SettingsForm{
		SiteName:     "La hermandad",
		BrandColor:   "#f59e0b",
		ContactEmail: "contato@lahermandad.com",
		ContactPhone: "(11) 99999-8888",
	}
}

func TestPublicFallsBackToDefaults(t *testing.T) {
	svc := NewService(&memRepo{}, nil, nil)

	v := svc.Public(context.Background())
	if v.Configured || v.SetupPath != SetupPath {
		t.Fatalf("view = %+v", v)
	}
	if v.SiteName != models.DefaultSettings().SiteName {
		t.Fatalf("site name = %q", v.SiteName)
	}
}

func TestPublicFallsBackOnBackendError(t *testing.T) {
	svc := NewService(&memRepo{getErr: errors.New("timeout")}, nil, nil)
	if v := svc.Public(context.Background()); v.Configured {
		t.Fatal("backend error should show defaults")
	}
}

func TestUpsertThenGetUsesCache(t *testing.T) {
	repo := &memRepo{}
	cache := &memCache{}
	svc := NewService(repo, cache, nil)
	ctx := context.Background()

	saved, err := svc.Upsert(ctx, 1, validForm())
	if err != nil {
		t.Fatal(err)
	}
	if saved.ID != models.SettingsID || saved.BrandColor != "#F59E0B" {
		t.Fatalf("saved = %+v", saved)
	}

	v := svc.Public(ctx)
	if !v.Configured || v.SiteName != "La hermandad" {
		t.Fatalf("view = %+v", v)
	}
	svc.Public(ctx)
	if repo.reads != 1 {
		t.Fatalf("repo reads = %d, want 1 (second read cached)", repo.reads)
	}

	f := validForm()
	f.SiteName = "Hermandad Alfaiataria"
	if _, err := svc.Upsert(ctx, 1, f); err != nil {
		t.Fatal(err)
	}
	if got := svc.Public(ctx).SiteName; got != "Hermandad Alfaiataria" {
		t.Fatalf("stale settings after upsert: %q", got)
	}
}

func TestUpsertValidates(t *testing.T) {
	svc := NewService(&memRepo{}, nil, nil)
	f := validForm()
	f.BrandColor = "orange"

	_, err := svc.Upsert(context.Background(), 1, f)
	ve, ok := httperr.AsValidation(err)
	if !ok || ve.Fields[0].Field != "brand_color" {
		t.Fatalf("err = %v", err)
	}
}
