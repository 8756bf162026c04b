package appointment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/BruksfildServices01/lahermandad/internal/audit"
	domain "github.com/BruksfildServices01/lahermandad/internal/domain/appointment"
	"github.com/BruksfildServices01/lahermandad/internal/domain/fitting"
	"github.com/BruksfildServices01/lahermandad/internal/httperr"
	"github.com/BruksfildServices01/lahermandad/internal/models"
	"github.com/BruksfildServices01/lahermandad/internal/validators"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type SubmitInput struct {
	Form validators.AppointmentForm
	Room *fitting.Room
}

type Confirmation struct {
	Appointment *models.Appointment `json:"appointment"`
	Title       string              `json:"title"`
	Message     string              `json:"message"`
}

var (
	ErrFittingRoomEmpty = httperr.ErrBusinessMsg(
		"fitting_room_empty",
		"Seu provador está vazio. Escolha os produtos que deseja provar antes de agendar.",
	)
	ErrSubmitInProgress = httperr.ErrBusinessMsg(
		"submission_in_progress",
		"Seu agendamento já está sendo enviado.",
	)
)

// ======================================================
// USE CASE
// ======================================================

type SubmitAppointment struct {
	slots slotChecker
	audit *audit.Dispatcher
}

func NewSubmitAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	loc *time.Location,
	now func() time.Time,
) *SubmitAppointment {
	if now == nil {
		now = time.Now
	}
	return &SubmitAppointment{
		slots: slotChecker{repo: repo, loc: loc, now: now},
		audit: audit,
	}
}

// Execute books a home visit for the items currently in the room. The room
// is cleared only after the appointment is stored; on any failure it is
// left as it was so the visitor can retry.
func (uc *SubmitAppointment) Execute(
	ctx context.Context,
	in SubmitInput,
) (*Confirmation, error) {

	if in.Room == nil || in.Room.Len() == 0 {
		return nil, ErrFittingRoomEmpty
	}

	// --------------------------------------------------
	// Form
	// --------------------------------------------------
	if ve := validators.Struct(in.Form); ve != nil {
		return nil, ve
	}

	proposed, err := uc.slots.parseSlot(in.Form.Date, in.Form.Time)
	if err != nil {
		return nil, err
	}

	if !in.Room.BeginSubmit() {
		return nil, ErrSubmitInProgress
	}
	defer in.Room.EndSubmit()

	// --------------------------------------------------
	// Slot
	// --------------------------------------------------
	if err := uc.slots.check(ctx, proposed); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Persist
	// --------------------------------------------------
	ap := &models.Appointment{
		Name:         strings.TrimSpace(in.Form.Name),
		Phone:        strings.TrimSpace(in.Form.Phone),
		Address:      strings.TrimSpace(in.Form.Address),
		Date:         proposed,
		FittingItems: domain.SnapshotItems(in.Room.Items()),
		Status:       string(domain.InitialStatus()),
	}

	if err := uc.slots.repo.Create(ctx, ap); err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}

	in.Room.Clear()

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionAppointmentCreated,
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"date":  domain.DayKey(proposed),
			"time":  proposed.Format("15:04"),
			"items": len(ap.FittingItems),
		},
	})

	return &Confirmation{
		Appointment: ap,
		Title:       "Agendamento realizado com sucesso!",
		Message:     "Entraremos em contato para confirmar sua visita em " + FormatLongDate(proposed) + ".",
	}, nil
}
