package appointment

import (
	"context"
	"errors"
	"sort"
	"sync"

	domain "github.com/BruksfildServices01/lahermandad/internal/domain/appointment"
	"github.com/BruksfildServices01/lahermandad/internal/httperr"
	"github.com/BruksfildServices01/lahermandad/internal/models"
)

type memRepo struct {
	mu        sync.Mutex
	apps      []models.Appointment
	blocked   map[string]bool
	nextID    uint
	createErr error
	listErr   error

	// toggleFailAt makes the n-th ToggleBlockedDay call fail (1-based).
	toggleFailAt int
	toggles      int
}

func newMemRepo() *memRepo {
	return &memRepo{blocked: map[string]bool{}, nextID: 1}
}

func (r *memRepo) List(context.Context) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := append([]models.Appointment(nil), r.apps...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *memRepo) Create(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	ap.ID = r.nextID
	r.nextID++
	r.apps = append(r.apps, *ap)
	return nil
}

func (r *memRepo) UpdateStatus(_ context.Context, id uint, status domain.Status) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.apps {
		if r.apps[i].ID == id {
			if err := domain.SetStatus(&r.apps[i], status); err != nil {
				return nil, err
			}
			ap := r.apps[i]
			return &ap, nil
		}
	}
	return nil, httperr.ErrBusinessMsg("appointment_not_found", "Agendamento não encontrado.")
}

func (r *memRepo) CountByStatus(context.Context) (map[domain.Status]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := map[domain.Status]int64{}
	for _, ap := range r.apps {
		out[domain.Status(ap.Status)]++
	}
	return out, nil
}

func (r *memRepo) ListBlockedDays(context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	days := make([]string, 0, len(r.blocked))
	for d := range r.blocked {
		days = append(days, d)
	}
	sort.Strings(days)
	return days, nil
}

func (r *memRepo) ToggleBlockedDay(_ context.Context, day string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.toggles++
	if r.toggles == r.toggleFailAt {
		return false, errBackend
	}
	if r.blocked[day] {
		delete(r.blocked, day)
		return false, nil
	}
	r.blocked[day] = true
	return true, nil
}

var errBackend = errors.New("connection refused")

var _ domain.Repository = (*memRepo)(nil)
