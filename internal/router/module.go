package router

import "github.com/gin-gonic/gin"

// Module mounts one feature's routes. Modules own their rate limits.
type Module interface {
	Register(rg *gin.RouterGroup)
}
