package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/lahermandad/internal/httperr"
	"github.com/BruksfildServices01/lahermandad/internal/httpresp"
	"github.com/BruksfildServices01/lahermandad/internal/middleware"
	"github.com/BruksfildServices01/lahermandad/internal/models"
	ucSettings "github.com/BruksfildServices01/lahermandad/internal/usecase/settings"
	"github.com/BruksfildServices01/lahermandad/internal/validators"
)

type SettingsHandler struct {
	settings *ucSettings.Service
}

func NewSettingsHandler(settings *ucSettings.Service) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// Get returns the stored row, or the defaults to prefill the form.
func (h *SettingsHandler) Get(c *gin.Context) {
	st, err := h.settings.Get(c.Request.Context())
	if err != nil {
		writeError(c, "settings_unavailable", err)
		return
	}
	if st == nil {
		httpresp.OK(c, ucSettings.View{Settings: models.DefaultSettings()})
		return
	}
	httpresp.OK(c, ucSettings.View{Settings: *st, Configured: true})
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var form validators.SettingsForm
	if err := c.ShouldBindJSON(&form); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	st, err := h.settings.Upsert(c.Request.Context(), middleware.UserID(c), form)
	if err != nil {
		writeError(c, "settings_save_failed", err)
		return
	}

	httpresp.OK(c, gin.H{
		"settings": st,
		"message":  "Configurações salvas com sucesso!",
	})
}
