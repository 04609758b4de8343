package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/home-hero-api/internal/interface/http"
	"github.com/oksasatya/home-hero-api/internal/interface/middleware"
)

type ListingModule struct {
	Handler *handlers.ListingHandler
}

func NewListingModule(h *handlers.ListingHandler) *ListingModule {
	return &ListingModule{Handler: h}
}

func (m *ListingModule) Register(rg *gin.RouterGroup) {
	writes := limit(60, middleware.KeyByIPAndPath)
	reads := limit(300, middleware.KeyByIP)
	uploads := limit(10, middleware.KeyByIPAndPath)

	services := rg.Group("/services")
	services.POST("", writes, m.Handler.Create)
	services.GET("", reads, m.Handler.List)
	services.GET("/search", reads, m.Handler.Search)
	services.GET("/:id", reads, m.Handler.Get)
	services.PATCH("/:id", writes, m.Handler.Update)
	services.DELETE("/:id", writes, m.Handler.Delete)
	services.POST("/:id/image", uploads, m.Handler.UploadImage)
	services.PATCH("/:id/reviews", writes, m.Handler.AddReview)

	rg.GET("/provider/services", reads, m.Handler.ListForProvider)
}
