package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/home-hero-api/internal/interface/http"
	"github.com/oksasatya/home-hero-api/internal/interface/middleware"
)

type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	writes := limit(30, middleware.KeyByIPAndPath) // 30 req/min per IP and route
	reads := limit(120, middleware.KeyByIP)

	users := rg.Group("/users")
	users.POST("", writes, m.Handler.Register)
	users.GET("", reads, m.Handler.List)
	users.GET("/email/:email", reads, m.Handler.GetByEmail)
	users.PATCH("/email/:email", writes, m.Handler.UpdateByEmail)
	users.PATCH("/:id/role", writes, m.Handler.SetRole)
}
