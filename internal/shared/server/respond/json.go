package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSON writes payload as the response body with the given status. All
// success responses go through here so the surface stays uniform.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

// OK is JSON with status 200.
func OK(c *gin.Context, payload interface{}) {
	JSON(c, http.StatusOK, payload)
}
