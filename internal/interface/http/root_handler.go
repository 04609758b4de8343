package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Root answers the liveness probe at GET /.
func Root(c *gin.Context) {
	c.String(http.StatusOK, "Home Hero Server is Running")
}
