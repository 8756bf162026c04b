package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/lahermandad/internal/domain/appointment"
)

type CheckAvailability struct {
	slots slotChecker
}

func NewCheckAvailability(
	repo domain.Repository,
	loc *time.Location,
	now func() time.Time,
) *CheckAvailability {
	if now == nil {
		now = time.Now
	}
	return &CheckAvailability{slots: slotChecker{repo: repo, loc: loc, now: now}}
}

// Execute runs the same checks as a submission without storing anything.
// A nil error means the slot can be booked.
func (uc *CheckAvailability) Execute(ctx context.Context, date, hhmm string) error {
	if hhmm == "" {
		hhmm = "00:00"
	}
	proposed, err := uc.slots.parseSlot(date, hhmm)
	if err != nil {
		return err
	}
	return uc.slots.check(ctx, proposed)
}
