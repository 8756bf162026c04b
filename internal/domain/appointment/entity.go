package appointment

import (
	"sort"
	"strconv"

	"github.com/BruksfildServices01/lahermandad/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func SetStatus(ap *models.Appointment, to Status) error {
	if err := CanTransition(Status(ap.Status), to); err != nil {
		return err
	}
	ap.Status = string(to)
	return nil
}

// SnapshotItems copies fitting items so the stored appointment does not
// share backing storage with the caller's fitting room.
func SnapshotItems(items []models.FittingItem) []models.FittingItem {
	out := make([]models.FittingItem, len(items))
	copy(out, items)
	return out
}

// Grouped is the back-office view: upcoming pending visits first, then the
// most recent history.
type Grouped struct {
	Pending []models.Appointment `json:"pending"`
	History []models.Appointment `json:"history"`
}

func GroupForAdmin(list []models.Appointment) Grouped {
	g := Grouped{
		Pending: []models.Appointment{},
		History: []models.Appointment{},
	}
	for _, ap := range list {
		if Status(ap.Status) == StatusPending {
			g.Pending = append(g.Pending, ap)
		} else {
			g.History = append(g.History, ap)
		}
	}

	sort.SliceStable(g.Pending, func(i, j int) bool {
		return g.Pending[i].Date.Before(g.Pending[j].Date)
	})
	sort.SliceStable(g.History, func(i, j int) bool {
		return g.History[i].Date.After(g.History[j].Date)
	})
	return g
}

// ToggleLabel is the caption for the block/unblock button given the days
// an admin has selected.
func ToggleLabel(selected []string, blocked []string) string {
	if len(selected) == 0 {
		return "Selecione os dias"
	}

	set := make(map[string]struct{}, len(blocked))
	for _, d := range blocked {
		set[d] = struct{}{}
	}

	n := 0
	for _, d := range selected {
		if _, ok := set[d]; ok {
			n++
		}
	}

	switch n {
	case len(selected):
		return "Desbloquear " + strconv.Itoa(len(selected)) + " dia(s)"
	case 0:
		return "Bloquear " + strconv.Itoa(len(selected)) + " dia(s)"
	default:
		return "Inverter bloqueio dos dias selecionados"
	}
}
