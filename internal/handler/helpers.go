package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// idParam parses the :id path segment. A non-numeric id behaves like a
// missing row: the admin URLs only ever contain integer ids.
func idParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return 0, false
	}
	return id, true
}
