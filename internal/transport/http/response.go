package handlers

import (
	"net/http"

	"github.com/waste3d/course-admin/internal/platform/apierr"

	"github.com/gin-gonic/gin"
)

// respondError writes the error envelope. Internal failures are recorded
// on the context for the request logger and hidden from the client.
func respondError(c *gin.Context, err error) {
	e := apierr.From(err)
	message := e.Error()
	if e.Status >= http.StatusInternalServerError {
		_ = c.Error(err)
		if e.Code == apierr.CodeInternal {
			message = "internal error"
		}
	}
	c.AbortWithStatusJSON(e.Status, gin.H{"error": gin.H{"message": message, "code": e.Code}})
}

func badRequest(c *gin.Context, err error) {
	respondError(c, apierr.New(http.StatusBadRequest, apierr.CodeInvalidRequest, err))
}
