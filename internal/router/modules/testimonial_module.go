package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/home-hero-api/internal/interface/http"
	"github.com/oksasatya/home-hero-api/internal/interface/middleware"
)

type TestimonialModule struct {
	Handler *handlers.TestimonialHandler
}

func NewTestimonialModule(h *handlers.TestimonialHandler) *TestimonialModule {
	return &TestimonialModule{Handler: h}
}

func (m *TestimonialModule) Register(rg *gin.RouterGroup) {
	rg.POST("/testimonials", limit(10, middleware.KeyByIPAndPath), m.Handler.Create)
	rg.GET("/testimonials", limit(120, middleware.KeyByIP), m.Handler.List)
}
