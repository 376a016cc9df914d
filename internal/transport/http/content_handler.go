package handlers

import (
	"net/http"
	"strconv"

	"github.com/waste3d/course-admin/internal/application/usecase"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	content *usecase.ContentUseCase
}

func NewContentHandler(content *usecase.ContentUseCase) *ContentHandler {
	return &ContentHandler{content: content}
}

// GET /api/v1/projects/:slug/content?refresh=true
func (h *ContentHandler) Get(c *gin.Context) {
	slug := c.Param("slug")
	fetch := h.content.Fetch
	if refresh, _ := strconv.ParseBool(c.Query("refresh")); refresh {
		fetch = h.content.Refetch
	}

	content, err := fetch(c, slug)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, content)
}

// POST /api/v1/projects/:slug/content
func (h *ContentHandler) Create(c *gin.Context) {
	var req usecase.CreateContentInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	record, err := h.content.CreateContent(c, c.Param("slug"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

// DELETE /api/v1/projects/:slug/content/:id
func (h *ContentHandler) Delete(c *gin.Context) {
	if err := h.content.DeleteContent(c, c.Param("slug"), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
