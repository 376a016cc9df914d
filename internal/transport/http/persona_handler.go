package handlers

import (
	"net/http"

	"github.com/waste3d/course-admin/internal/application/usecase"

	"github.com/gin-gonic/gin"
)

type PersonaHandler struct {
	personas *usecase.PersonaUseCase
}

func NewPersonaHandler(personas *usecase.PersonaUseCase) *PersonaHandler {
	return &PersonaHandler{personas: personas}
}

// GET /api/v1/personas?project=&search=
func (h *PersonaHandler) List(c *gin.Context) {
	items, err := h.personas.List(c, c.Query("project"), c.Query("search"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// GET /api/v1/personas/:slug
func (h *PersonaHandler) GetOne(c *gin.Context) {
	persona, err := h.personas.Get(c, c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, persona)
}

type generatePersonaReq struct {
	Brief string `json:"brief" binding:"required"`
}

// POST /api/v1/projects/:slug/personas/generate
func (h *PersonaHandler) Generate(c *gin.Context) {
	var req generatePersonaReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	persona, err := h.personas.Generate(c, c.Param("slug"), req.Brief)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, persona)
}
