package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/home-hero-api/internal/interface/http"
	"github.com/oksasatya/home-hero-api/internal/interface/middleware"
)

type BookingModule struct {
	Handler *handlers.BookingHandler
}

func NewBookingModule(h *handlers.BookingHandler) *BookingModule {
	return &BookingModule{Handler: h}
}

func (m *BookingModule) Register(rg *gin.RouterGroup) {
	writes := limit(30, middleware.KeyByIPAndPath)
	reads := limit(120, middleware.KeyByIP)

	bookings := rg.Group("/bookings")
	bookings.POST("", writes, m.Handler.Create)
	bookings.GET("", reads, m.Handler.List)
	bookings.GET("/check", reads, m.Handler.Check)
	bookings.DELETE("/:id", writes, m.Handler.Delete)
}
