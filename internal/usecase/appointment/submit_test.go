package appointment

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	domain "github.com/BruksfildServices01/lahermandad/internal/domain/appointment"
	"github.com/BruksfildServices01/lahermandad/internal/domain/fitting"
	"github.com/BruksfildServices01/lahermandad/internal/httperr"
	"github.com/BruksfildServices01/lahermandad/internal/models"
	"github.com/BruksfildServices01/lahermandad/internal/validators"
)

var loc = time.FixedZone("BRT", -3*60*60)

func fixedNow() time.Time { return time.Date(2024, time.November, 20, 9, 0, 0, 0, loc) }

func roomWithSuit() *fitting.Room {
	r := fitting.NewRoom()
	r.Add(models.Product{
		ID:       1,
		Name:     "Terno Slim Fit",
		Brand:    "Alfaiataria Premium",
		Price:    decimal.NewFromInt(750),
		Category: models.CategorySuit,
		Sizes:    []string{"P", "M", "G"},
	}, "M")
	return r
}

func form(date, hhmm string) validators.AppointmentForm {
	return validators.AppointmentForm{
		Name:    "Ana",
		Phone:   "11999998888",
		Address: "Rua das Flores 123",
		Date:    date,
		Time:    hhmm,
	}
}

func TestSubmitCreatesPendingAndClearsRoom(t *testing.T) {
	repo := newMemRepo()
	uc := NewSubmitAppointment(repo, nil, loc, fixedNow)
	room := roomWithSuit()

	conf, err := uc.Execute(context.Background(), SubmitInput{Form: form("2024-11-29", "10:00"), Room: room})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if room.Len() != 0 {
		t.Fatalf("room still has %d items", room.Len())
	}
	if len(repo.apps) != 1 {
		t.Fatalf("stored %d appointments", len(repo.apps))
	}

	ap := repo.apps[0]
	if ap.Status != string(domain.StatusPending) {
		t.Fatalf("status = %q", ap.Status)
	}
	if len(ap.FittingItems) != 1 || ap.FittingItems[0].FittingID != "1:M" {
		t.Fatalf("items = %+v", ap.FittingItems)
	}
	if !ap.Date.Equal(time.Date(2024, time.November, 29, 10, 0, 0, 0, loc)) {
		t.Fatalf("date = %v", ap.Date)
	}
	if !strings.Contains(conf.Message, "29 de novembro de 2024") {
		t.Fatalf("message = %q", conf.Message)
	}
}

func TestSubmitBackendFailureKeepsRoom(t *testing.T) {
	repo := newMemRepo()
	repo.createErr = errBackend
	uc := NewSubmitAppointment(repo, nil, loc, fixedNow)
	room := roomWithSuit()

	_, err := uc.Execute(context.Background(), SubmitInput{Form: form("2024-11-29", "10:00"), Room: room})
	if !errors.Is(err, errBackend) {
		t.Fatalf("err = %v, want backend error", err)
	}
	if room.Len() != 1 {
		t.Fatal("room should be untouched after a backend failure")
	}

	// Retry after the backend recovers.
	repo.createErr = nil
	if _, err := uc.Execute(context.Background(), SubmitInput{Form: form("2024-11-29", "10:00"), Room: room}); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if room.Len() != 0 {
		t.Fatal("room should be cleared after a successful retry")
	}
}

func TestSubmitRejectsEmptyRoom(t *testing.T) {
	uc := NewSubmitAppointment(newMemRepo(), nil, loc, fixedNow)

	_, err := uc.Execute(context.Background(), SubmitInput{Form: form("2024-11-29", "10:00"), Room: fitting.NewRoom()})
	if !httperr.IsBusiness(err, "fitting_room_empty") {
		t.Fatalf("err = %v", err)
	}
}

func TestSubmitSlotConflicts(t *testing.T) {
	repo := newMemRepo()
	repo.apps = []models.Appointment{
		{ID: 1, Date: time.Date(2024, time.November, 29, 10, 0, 0, 0, loc), Status: string(domain.StatusPending)},
		{ID: 2, Date: time.Date(2024, time.November, 28, 10, 0, 0, 0, loc), Status: string(domain.StatusCanceled)},
	}
	repo.nextID = 3
	repo.blocked["2024-11-30"] = true
	uc := NewSubmitAppointment(repo, nil, loc, fixedNow)

	tests := []struct {
		date, hhmm string
		code       string
	}{
		{"2024-11-29", "10:00", "slot_taken"},
		{"2024-11-30", "08:00", "date_blocked"},
		{"2024-11-18", "10:00", "date_in_past"},
		{"2024-11-29", "10:01", ""},
		{"2024-11-28", "10:00", ""},
	}

	for _, tt := range tests {
		room := roomWithSuit()
		_, err := uc.Execute(context.Background(), SubmitInput{Form: form(tt.date, tt.hhmm), Room: room})

		if tt.code == "" {
			if err != nil {
				t.Errorf("%s %s: unexpected %v", tt.date, tt.hhmm, err)
			}
			continue
		}
		ve, ok := httperr.AsValidation(err)
		if !ok || !ve.Has(tt.code) {
			t.Errorf("%s %s: err = %v, want %s", tt.date, tt.hhmm, err, tt.code)
		}
		if room.Len() != 1 {
			t.Errorf("%s %s: room changed on rejection", tt.date, tt.hhmm)
		}
	}
}

func TestSubmitFormErrors(t *testing.T) {
	uc := NewSubmitAppointment(newMemRepo(), nil, loc, fixedNow)

	f := form("2024-11-29", "10:00")
	f.Phone = "123"
	_, err := uc.Execute(context.Background(), SubmitInput{Form: f, Room: roomWithSuit()})

	ve, ok := httperr.AsValidation(err)
	if !ok || ve.Fields[0].Field != "phone" {
		t.Fatalf("err = %v", err)
	}
}

func TestSubmitRejectsConcurrentSubmission(t *testing.T) {
	uc := NewSubmitAppointment(newMemRepo(), nil, loc, fixedNow)
	room := roomWithSuit()

	room.BeginSubmit()
	_, err := uc.Execute(context.Background(), SubmitInput{Form: form("2024-11-29", "10:00"), Room: room})
	if !httperr.IsBusiness(err, "submission_in_progress") {
		t.Fatalf("err = %v", err)
	}
	room.EndSubmit()
}

func TestCheckAvailability(t *testing.T) {
	repo := newMemRepo()
	repo.blocked["2024-11-30"] = true
	uc := NewCheckAvailability(repo, loc, fixedNow)

	if err := uc.Execute(context.Background(), "2024-11-29", "10:00"); err != nil {
		t.Fatalf("free slot: %v", err)
	}
	ve, ok := httperr.AsValidation(uc.Execute(context.Background(), "2024-11-30", ""))
	if !ok || !ve.Has("date_blocked") {
		t.Fatal("blocked day should be reported without a time")
	}
	if len(repo.apps) != 0 {
		t.Fatal("availability check must not persist anything")
	}
}

func TestFormatLongDate(t *testing.T) {
	got := FormatLongDate(time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC))
	if got != "5 de março de 2024" {
		t.Fatalf("got %q", got)
	}
}
