package appointment

import (
	"testing"
	"time"

	"github.com/BruksfildServices01/lahermandad/internal/models"
)

func TestParseStatus(t *testing.T) {
	tests := map[string]Status{
		"pending":    StatusPending,
		"Pendente":   StatusPending,
		"completed":  StatusCompleted,
		"Finalizado": StatusCompleted,
		" canceled ": StatusCanceled,
		"CANCELADO":  StatusCanceled,
	}
	for in, want := range tests {
		got, err := ParseStatus(in)
		if err != nil || got != want {
			t.Errorf("ParseStatus(%q) = %q, %v; want %q", in, got, err, want)
		}
	}

	if _, err := ParseStatus("archived"); err == nil {
		t.Error("expected error for unknown status")
	}
}

func TestEveryTransitionIsAllowed(t *testing.T) {
	all := []Status{StatusPending, StatusCompleted, StatusCanceled}
	for _, from := range all {
		for _, to := range all {
			ap := &models.Appointment{Status: string(from)}
			if err := SetStatus(ap, to); err != nil {
				t.Errorf("%s -> %s: %v", from, to, err)
			}
			if ap.Status != string(to) {
				t.Errorf("%s -> %s: status is %s", from, to, ap.Status)
			}
		}
	}
}

func TestGroupForAdmin(t *testing.T) {
	d := func(day int) time.Time { return time.Date(2024, time.November, day, 10, 0, 0, 0, time.UTC) }
	list := []models.Appointment{
		{ID: 1, Date: d(5), Status: "pending"},
		{ID: 2, Date: d(1), Status: "completed"},
		{ID: 3, Date: d(3), Status: "pending"},
		{ID: 4, Date: d(9), Status: "canceled"},
	}

	g := GroupForAdmin(list)

	if len(g.Pending) != 2 || g.Pending[0].ID != 3 || g.Pending[1].ID != 1 {
		t.Fatalf("pending = %+v", g.Pending)
	}
	if len(g.History) != 2 || g.History[0].ID != 4 || g.History[1].ID != 2 {
		t.Fatalf("history = %+v", g.History)
	}
}

func TestToggleLabel(t *testing.T) {
	blocked := []string{"2024-11-01", "2024-11-02"}

	if got := ToggleLabel(nil, blocked); got != "Selecione os dias" {
		t.Errorf("empty selection label = %q", got)
	}
	if got := ToggleLabel([]string{"2024-11-01", "2024-11-02"}, blocked); got != "Desbloquear 2 dia(s)" {
		t.Errorf("all blocked label = %q", got)
	}
	if got := ToggleLabel([]string{"2024-11-03"}, blocked); got != "Bloquear 1 dia(s)" {
		t.Errorf("none blocked label = %q", got)
	}
	if got := ToggleLabel([]string{"2024-11-01", "2024-11-03"}, blocked); got != "Inverter bloqueio dos dias selecionados" {
		t.Errorf("mixed label = %q", got)
	}
}
