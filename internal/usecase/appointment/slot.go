package appointment

import (
	"context"
	"fmt"
	"time"

	domain "github.com/BruksfildServices01/lahermandad/internal/domain/appointment"
	"github.com/BruksfildServices01/lahermandad/internal/httperr"
)

// ======================================================
// Shared slot checking
// ======================================================

type slotChecker struct {
	repo domain.Repository
	loc  *time.Location
	now  func() time.Time
}

// parseSlot reads the form's date and time as wall clock in the shop
// location.
func (s slotChecker) parseSlot(date, hhmm string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02 15:04", date+" "+hhmm, s.loc)
	if err != nil {
		return time.Time{}, httperr.NewFieldError("date", "invalid_date_or_time", "Data ou hora inválida.")
	}
	return t, nil
}

func (s slotChecker) check(ctx context.Context, proposed time.Time) error {
	blocked, err := s.repo.ListBlockedDays(ctx)
	if err != nil {
		return fmt.Errorf("list blocked days: %w", err)
	}

	existing, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("list appointments: %w", err)
	}

	return domain.ValidateSlot(domain.SlotInput{
		Proposed:    proposed,
		Now:         s.now(),
		BlockedDays: blocked,
		Existing:    existing,
	})
}
