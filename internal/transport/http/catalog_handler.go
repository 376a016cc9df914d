package handlers

import (
	"net/http"

	"github.com/waste3d/course-admin/internal/application/usecase"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves frameworks and synthetic minds.
type CatalogHandler struct {
	catalog *usecase.CatalogUseCase
}

func NewCatalogHandler(catalog *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// GET /api/v1/frameworks?category=
func (h *CatalogHandler) ListFrameworks(c *gin.Context) {
	items, err := h.catalog.ListFrameworks(c, c.Query("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// GET /api/v1/frameworks/:slug
func (h *CatalogHandler) GetFramework(c *gin.Context) {
	f, err := h.catalog.GetFramework(c, c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, f)
}

// GET /api/v1/minds
func (h *CatalogHandler) ListMinds(c *gin.Context) {
	items, err := h.catalog.ListMinds(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// GET /api/v1/minds/:slug
func (h *CatalogHandler) GetMind(c *gin.Context) {
	m, err := h.catalog.GetMind(c, c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}
