package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/luxeliving/catalog-api/internal/application"
	"github.com/luxeliving/catalog-api/pkg/response"
)

// Featured carousel size, matching the storefront's front page.
const featuredLimit = 6

type PropertyHandler struct {
	Catalog *application.CatalogService
	Logger  *logrus.Logger
}

func NewPropertyHandler(catalog *application.CatalogService, logger *logrus.Logger) *PropertyHandler {
	return &PropertyHandler{Catalog: catalog, Logger: logger}
}

// List handles GET /properties with optional type, minPrice, maxPrice,
// bedrooms, featured, page and limit query parameters.
func (h *PropertyHandler) List(c *gin.Context) {
	filter, req := application.ParseListingQuery(c.Request.URL.Query())
	res := h.Catalog.List(c.Request.Context(), filter, req)
	response.Page(c, res.Items, len(res.Items), res.Total, res.Pagination.Page, res.Pagination.Pages, res.Source)
}

// Featured handles GET /properties/featured.
func (h *PropertyHandler) Featured(c *gin.Context) {
	items, source := h.Catalog.ListFeatured(c.Request.Context(), featuredLimit)
	response.Collection(c, items, len(items), source)
}

// Get handles GET /properties/:id.
func (h *PropertyHandler) Get(c *gin.Context) {
	p, source, err := h.Catalog.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusNotFound, "Property not found: "+c.Param("id"), nil)
		return
	}
	response.Data(c, http.StatusOK, p, source)
}
