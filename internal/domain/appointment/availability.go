package appointment

import (
	"time"

	"github.com/BruksfildServices01/lahermandad/internal/httperr"
	"github.com/BruksfildServices01/lahermandad/internal/models"
	"github.com/BruksfildServices01/lahermandad/internal/timezone"
)

const dayKeyLayout = "2006-01-02"

// DayKey is the canonical YYYY-MM-DD key of t's calendar day, read from t's
// own wall clock. Blocked dates are only ever compared through this key.
func DayKey(t time.Time) string {
	return t.Format(dayKeyLayout)
}

// ParseDayKey parses a YYYY-MM-DD key and re-emits it canonically.
func ParseDayKey(raw string) (string, error) {
	t, err := time.Parse(dayKeyLayout, raw)
	if err != nil {
		return "", httperr.ErrBusinessMsg("invalid_date", "Data inválida.")
	}
	return DayKey(t), nil
}

type SlotInput struct {
	Proposed    time.Time
	Now         time.Time
	BlockedDays []string
	Existing    []models.Appointment
}

// ValidateSlot decides whether the proposed date and time can be booked.
// Comparisons happen in the location of Proposed. A non-nil result is
// always a *httperr.ValidationError scoped to the date or time field.
func ValidateSlot(in SlotInput) error {
	loc := in.Proposed.Location()

	// Days before "yesterday" are rejected; yesterday itself still passes.
	cutoff := timezone.StartOfDay(in.Now.In(loc)).AddDate(0, 0, -1)
	if timezone.StartOfDay(in.Proposed).Before(cutoff) {
		return httperr.NewFieldError("date", "date_in_past", "Escolha uma data a partir de hoje.")
	}

	key := DayKey(in.Proposed)
	for _, d := range in.BlockedDays {
		if d == key {
			return httperr.NewFieldError("date", "date_blocked", "Esta data não está disponível para agendamento.")
		}
	}

	for _, ap := range in.Existing {
		if !Status(ap.Status).BlocksSlot() {
			continue
		}
		if sameMinute(ap.Date.In(loc), in.Proposed) {
			return httperr.NewFieldError("time", "slot_taken", "Este horário já está reservado.")
		}
	}

	return nil
}

func sameMinute(a, b time.Time) bool {
	return a.Year() == b.Year() &&
		a.Month() == b.Month() &&
		a.Day() == b.Day() &&
		a.Hour() == b.Hour() &&
		a.Minute() == b.Minute()
}

// ToggleSet flips membership of day in days and returns the new set along
// with whether day is now blocked.
func ToggleSet(days []string, day string) ([]string, bool) {
	out := make([]string, 0, len(days)+1)
	found := false
	for _, d := range days {
		if d == day {
			found = true
			continue
		}
		out = append(out, d)
	}
	if found {
		return out, false
	}
	return append(out, day), true
}
