package dto

import (
	"time"

	domain "github.com/BruksfildServices01/lahermandad/internal/domain/appointment"
	"github.com/BruksfildServices01/lahermandad/internal/models"
)

// AppointmentListDTO is one row of the back-office table: the stored
// appointment plus the display fields the admin screen shows.
type AppointmentListDTO struct {
	ID           uint                 `json:"id"`
	Name         string               `json:"name"`
	Phone        string               `json:"phone"`
	Address      string               `json:"address"`
	Date         time.Time            `json:"date"`
	DateLabel    string               `json:"date_label"`
	TimeLabel    string               `json:"time_label"`
	Status       string               `json:"status"`
	StatusLabel  string               `json:"status_label"`
	FittingItems []models.FittingItem `json:"fitting_items"`
	ItemCount    int                  `json:"item_count"`
	CreatedAt    time.Time            `json:"created_at"`
}

type GroupedAppointmentsDTO struct {
	Pending []AppointmentListDTO `json:"pending"`
	History []AppointmentListDTO `json:"history"`
}

// FromAppointment renders times in loc.
func FromAppointment(ap models.Appointment, loc *time.Location) AppointmentListDTO {
	local := ap.Date.In(loc)
	items := []models.FittingItem(ap.FittingItems)
	if items == nil {
		items = []models.FittingItem{}
	}
	return AppointmentListDTO{
		ID:           ap.ID,
		Name:         ap.Name,
		Phone:        ap.Phone,
		Address:      ap.Address,
		Date:         local,
		DateLabel:    local.Format("02/01/2006"),
		TimeLabel:    local.Format("15:04"),
		Status:       ap.Status,
		StatusLabel:  domain.Status(ap.Status).Label(),
		FittingItems: items,
		ItemCount:    len(items),
		CreatedAt:    ap.CreatedAt,
	}
}

func FromGrouped(g domain.Grouped, loc *time.Location) GroupedAppointmentsDTO {
	out := GroupedAppointmentsDTO{
		Pending: make([]AppointmentListDTO, 0, len(g.Pending)),
		History: make([]AppointmentListDTO, 0, len(g.History)),
	}
	for _, ap := range g.Pending {
		out.Pending = append(out.Pending, FromAppointment(ap, loc))
	}
	for _, ap := range g.History {
		out.History = append(out.History, FromAppointment(ap, loc))
	}
	return out
}
