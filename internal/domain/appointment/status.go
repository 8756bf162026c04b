package appointment

import (
	"strings"

	"github.com/BruksfildServices01/lahermandad/internal/httperr"
)

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCanceled  Status = "canceled"
)

var statusLabels = map[Status]string{
	StatusPending:   "Pendente",
	StatusCompleted: "Finalizado",
	StatusCanceled:  "Cancelado",
}

func (s Status) Label() string {
	return statusLabels[s]
}

// ParseStatus accepts the stored codes and the Portuguese labels shown in
// the back office.
func ParseStatus(raw string) (Status, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	for st, label := range statusLabels {
		if v == string(st) || v == strings.ToLower(label) {
			return st, nil
		}
	}
	return "", httperr.ErrBusinessMsg("invalid_status", "Status inválido.")
}

// ===============================
// Transitions
// ===============================

// CanTransition is permissive: an admin may move an appointment between any
// of the three states at any time, including back to pending.
func CanTransition(from, to Status) error {
	if _, ok := statusLabels[to]; !ok {
		return httperr.ErrBusinessMsg("invalid_status", "Status inválido.")
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}

// BlocksSlot reports whether an appointment in this state occupies its slot.
func (s Status) BlocksSlot() bool {
	return s == StatusPending
}
