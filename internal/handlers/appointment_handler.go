package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/lahermandad/internal/domain/appointment"
	"github.com/BruksfildServices01/lahermandad/internal/dto"
	"github.com/BruksfildServices01/lahermandad/internal/httperr"
	"github.com/BruksfildServices01/lahermandad/internal/httpresp"
	"github.com/BruksfildServices01/lahermandad/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/lahermandad/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	list         *ucAppointment.ListAppointments
	updateStatus *ucAppointment.UpdateStatus
	toggle       *ucAppointment.ToggleBlockedDates
	repo         domain.Repository
	loc          *time.Location
}

func NewAppointmentHandler(
	list *ucAppointment.ListAppointments,
	updateStatus *ucAppointment.UpdateStatus,
	toggle *ucAppointment.ToggleBlockedDates,
	repo domain.Repository,
	loc *time.Location,
) *AppointmentHandler {
	return &AppointmentHandler{
		list:         list,
		updateStatus: updateStatus,
		toggle:       toggle,
		repo:         repo,
		loc:          loc,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type BlockedDatesRequest struct {
	Dates []string `json:"dates"`
}

// ======================================================
// APPOINTMENTS
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	grouped, err := h.list.Execute(c.Request.Context())
	if err != nil {
		writeError(c, "appointments_unavailable", err)
		return
	}
	httpresp.OK(c, dto.FromGrouped(grouped, h.loc))
}

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Informe o novo status.")
		return
	}

	ap, err := h.updateStatus.Execute(c.Request.Context(), middleware.UserID(c), id, req.Status)
	if err != nil {
		writeError(c, "appointment_update_failed", err)
		return
	}
	httpresp.OK(c, dto.FromAppointment(*ap, h.loc))
}

// ======================================================
// BLOCKED DATES
// ======================================================

func (h *AppointmentHandler) BlockedDates(c *gin.Context) {
	days, err := h.repo.ListBlockedDays(c.Request.Context())
	if err != nil {
		writeError(c, "blocked_dates_unavailable", err)
		return
	}
	httpresp.List(c, days)
}

func (h *AppointmentHandler) ToggleBlockedDates(c *gin.Context) {
	var req BlockedDatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Selecione os dias.")
		return
	}

	res, err := h.toggle.Execute(c.Request.Context(), middleware.UserID(c), req.Dates)
	if err != nil && res != nil {
		// Earlier days were flipped before the failure.
		writePartial(c, "blocked_dates_update_failed", err, gin.H{"toggled": res.Toggled})
		return
	}
	if err != nil {
		writeError(c, "blocked_dates_update_failed", err)
		return
	}
	httpresp.OK(c, res)
}

func (h *AppointmentHandler) PreviewToggle(c *gin.Context) {
	var req BlockedDatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Selecione os dias.")
		return
	}

	preview, err := h.toggle.Preview(c.Request.Context(), req.Dates)
	if err != nil {
		writeError(c, "blocked_dates_unavailable", err)
		return
	}
	httpresp.OK(c, preview)
}
