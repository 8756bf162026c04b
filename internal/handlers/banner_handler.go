package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/lahermandad/internal/httperr"
	"github.com/BruksfildServices01/lahermandad/internal/httpresp"
	"github.com/BruksfildServices01/lahermandad/internal/middleware"
	ucCatalog "github.com/BruksfildServices01/lahermandad/internal/usecase/catalog"
	"github.com/BruksfildServices01/lahermandad/internal/validators"
)

type BannerHandler struct {
	banners *ucCatalog.Banners
}

func NewBannerHandler(banners *ucCatalog.Banners) *BannerHandler {
	return &BannerHandler{banners: banners}
}

type bannerRequest struct {
	validators.BannerForm
	ImageURL string `json:"image_url" form:"image_url"`
}

func (h *BannerHandler) bind(c *gin.Context) (ucCatalog.BannerInput, bool) {
	var req bannerRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return ucCatalog.BannerInput{}, false
	}

	img, err := readImage(c)
	if err != nil {
		writeError(c, "image_read_failed", err)
		return ucCatalog.BannerInput{}, false
	}

	return ucCatalog.BannerInput{Form: req.BannerForm, Image: img, ImageURL: req.ImageURL}, true
}

func (h *BannerHandler) List(c *gin.Context) {
	banners, err := h.banners.List(c.Request.Context())
	if err != nil {
		writeError(c, "banners_unavailable", err)
		return
	}
	httpresp.List(c, banners)
}

func (h *BannerHandler) Create(c *gin.Context) {
	in, ok := h.bind(c)
	if !ok {
		return
	}
	b, err := h.banners.Create(c.Request.Context(), middleware.UserID(c), in)
	if err != nil {
		writeError(c, "banner_create_failed", err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

func (h *BannerHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	in, ok := h.bind(c)
	if !ok {
		return
	}
	b, err := h.banners.Update(c.Request.Context(), middleware.UserID(c), id, in)
	if err != nil {
		writeError(c, "banner_update_failed", err)
		return
	}
	httpresp.OK(c, b)
}

func (h *BannerHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.banners.Delete(c.Request.Context(), middleware.UserID(c), id); err != nil {
		writeError(c, "banner_delete_failed", err)
		return
	}
	httpresp.NoContent(c)
}
