package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/lahermandad/internal/httpresp"
	ucDashboard "github.com/BruksfildServices01/lahermandad/internal/usecase/dashboard"
)

type DashboardHandler struct {
	summary *ucDashboard.GetSummary
}

func NewDashboardHandler(summary *ucDashboard.GetSummary) *DashboardHandler {
	return &DashboardHandler{summary: summary}
}

func (h *DashboardHandler) Summary(c *gin.Context) {
	s, err := h.summary.Execute(c.Request.Context())
	if err != nil {
		writeError(c, "dashboard_unavailable", err)
		return
	}
	httpresp.OK(c, s)
}
