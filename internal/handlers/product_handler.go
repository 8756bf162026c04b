package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/lahermandad/internal/domain/catalog"
	"github.com/BruksfildServices01/lahermandad/internal/httperr"
	"github.com/BruksfildServices01/lahermandad/internal/httpresp"
	"github.com/BruksfildServices01/lahermandad/internal/middleware"
	"github.com/BruksfildServices01/lahermandad/internal/models"
	ucCatalog "github.com/BruksfildServices01/lahermandad/internal/usecase/catalog"
	"github.com/BruksfildServices01/lahermandad/internal/validators"
)

type ProductHandler struct {
	products *ucCatalog.Products
}

func NewProductHandler(products *ucCatalog.Products) *ProductHandler {
	return &ProductHandler{products: products}
}

// productRequest binds both JSON and multipart bodies.
type productRequest struct {
	validators.ProductForm
	ImageURL string `json:"image_url" form:"image_url"`
}

func (h *ProductHandler) bind(c *gin.Context) (ucCatalog.ProductInput, bool) {
	var req productRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return ucCatalog.ProductInput{}, false
	}

	img, err := readImage(c)
	if err != nil {
		writeError(c, "image_read_failed", err)
		return ucCatalog.ProductInput{}, false
	}

	return ucCatalog.ProductInput{
		Form:     req.ProductForm,
		Image:    img,
		ImageURL: req.ImageURL,
	}, true
}

func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.products.List(c.Request.Context(), catalog.ProductFilter{
		Category: models.Category(c.Query("category")),
		Query:    c.Query("q"),
	})
	if err != nil {
		writeError(c, "products_unavailable", err)
		return
	}
	httpresp.List(c, products)
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	p, err := h.products.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, "product_lookup_failed", err)
		return
	}
	httpresp.OK(c, p)
}

func (h *ProductHandler) Create(c *gin.Context) {
	in, ok := h.bind(c)
	if !ok {
		return
	}

	p, err := h.products.Create(c.Request.Context(), middleware.UserID(c), in)
	if err != nil {
		writeError(c, "product_create_failed", err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	in, ok := h.bind(c)
	if !ok {
		return
	}

	p, err := h.products.Update(c.Request.Context(), middleware.UserID(c), id, in)
	if err != nil {
		writeError(c, "product_update_failed", err)
		return
	}
	httpresp.OK(c, p)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.products.Delete(c.Request.Context(), middleware.UserID(c), id); err != nil {
		writeError(c, "product_delete_failed", err)
		return
	}
	httpresp.NoContent(c)
}
