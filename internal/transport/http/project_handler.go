package handlers

import (
	"net/http"
	"strconv"

	"github.com/waste3d/course-admin/internal/application/usecase"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	courses *usecase.CourseUseCase
}

func NewProjectHandler(courses *usecase.CourseUseCase) *ProjectHandler {
	return &ProjectHandler{courses: courses}
}

// GET /api/v1/projects
func (h *ProjectHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	items, total, err := h.courses.List(c, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "total": total})
}

// GET /api/v1/projects/:slug
func (h *ProjectHandler) GetOne(c *gin.Context) {
	course, err := h.courses.Get(c, c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, course)
}

// GET /api/v1/projects/:slug/overview
func (h *ProjectHandler) Overview(c *gin.Context) {
	overview, err := h.courses.Overview(c, c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}

// POST /api/v1/projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var req usecase.CreateCourseInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	course, err := h.courses.Create(c, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, course)
}
