package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/lahermandad/internal/domain/appointment"
	"github.com/BruksfildServices01/lahermandad/internal/domain/catalog"
	"github.com/BruksfildServices01/lahermandad/internal/httperr"
	"github.com/BruksfildServices01/lahermandad/internal/httpresp"
	"github.com/BruksfildServices01/lahermandad/internal/middleware"
	"github.com/BruksfildServices01/lahermandad/internal/models"
	ucAppointment "github.com/BruksfildServices01/lahermandad/internal/usecase/appointment"
	ucCatalog "github.com/BruksfildServices01/lahermandad/internal/usecase/catalog"
	ucSettings "github.com/BruksfildServices01/lahermandad/internal/usecase/settings"
	"github.com/BruksfildServices01/lahermandad/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type PublicHandler struct {
	products     *ucCatalog.Products
	banners      *ucCatalog.Banners
	settings     *ucSettings.Service
	appointments domain.Repository
	submit       *ucAppointment.SubmitAppointment
	availability *ucAppointment.CheckAvailability
}

func NewPublicHandler(
	products *ucCatalog.Products,
	banners *ucCatalog.Banners,
	settings *ucSettings.Service,
	appointments domain.Repository,
	submit *ucAppointment.SubmitAppointment,
	availability *ucAppointment.CheckAvailability,
) *PublicHandler {
	return &PublicHandler{
		products:     products,
		banners:      banners,
		settings:     settings,
		appointments: appointments,
		submit:       submit,
		availability: availability,
	}
}

// ======================================================
// PAGES
// ======================================================

type Step struct {
	Number      string `json:"number"`
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

var howItWorksSteps = []Step{
	{"1", "search", "Navegue pelo Catálogo", "Explore nossa coleção premium de moda masculina"},
	{"2", "check-circle", "Escolha as Peças", "Selecione tamanhos, cores e adicione à Lista de Prova"},
	{"3", "calendar-days", "Agende o Atendimento", "Escolha data, horário e endereço para o atendimento"},
	{"4", "home", "Receba em Casa", "Nosso estilista leva as peças até você para provar"},
}

func (h *PublicHandler) Home(c *gin.Context) {
	banners, err := h.banners.List(c.Request.Context())
	if err != nil {
		writeError(c, "banners_unavailable", err)
		return
	}
	if banners == nil {
		banners = []models.Banner{}
	}

	httpresp.OK(c, gin.H{
		"banners":      banners,
		"settings":     h.settings.Public(c.Request.Context()),
		"how_it_works": howItWorksSteps,
		"fitting_room": gin.H{"count": roomCount(c)},
	})
}

func (h *PublicHandler) HowItWorks(c *gin.Context) {
	httpresp.OK(c, gin.H{
		"headline": "A loja vai até você",
		"steps":    howItWorksSteps,
	})
}

func (h *PublicHandler) Settings(c *gin.Context) {
	httpresp.OK(c, h.settings.Public(c.Request.Context()))
}

// ======================================================
// CATALOG
// ======================================================

func (h *PublicHandler) Products(c *gin.Context) {
	filter := catalog.ProductFilter{
		Category: models.Category(strings.TrimSpace(c.Query("category"))),
		Query:    c.Query("q"),
	}

	products, err := h.products.List(c.Request.Context(), filter)
	if err != nil {
		writeError(c, "products_unavailable", err)
		return
	}
	httpresp.List(c, products)
}

func (h *PublicHandler) Categories(c *gin.Context) {
	httpresp.List(c, models.Categories)
}

// ======================================================
// SCHEDULING
// ======================================================

func (h *PublicHandler) BlockedDates(c *gin.Context) {
	days, err := h.appointments.ListBlockedDays(c.Request.Context())
	if err != nil {
		writeError(c, "blocked_dates_unavailable", err)
		return
	}
	httpresp.List(c, days)
}

func (h *PublicHandler) Availability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	err := h.availability.Execute(c.Request.Context(), date, c.Query("time"))
	if err != nil {
		if ve, ok := httperr.AsValidation(err); ok {
			reason, _ := ve.First()
			httpresp.OK(c, gin.H{
				"available": false,
				"reason":    reason,
			})
			return
		}
		writeError(c, "availability_unavailable", err)
		return
	}

	httpresp.OK(c, gin.H{"available": true})
}

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	var form validators.AppointmentForm
	if err := c.ShouldBindJSON(&form); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	conf, err := h.submit.Execute(c.Request.Context(), ucAppointment.SubmitInput{
		Form: form,
		Room: middleware.FittingRoom(c),
	})
	if err != nil {
		writeError(c, "appointment_create_failed", err)
		return
	}
	middleware.DiscardFittingRoom(c)

	c.JSON(http.StatusCreated, conf)
}

func roomCount(c *gin.Context) int {
	if room := middleware.FittingRoom(c); room != nil {
		return room.Len()
	}
	return 0
}
