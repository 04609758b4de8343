package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/home-hero-api/internal/interface/http"
)

type SystemModule struct{}

func NewSystemModule() *SystemModule { return &SystemModule{} }

func (m *SystemModule) Register(rg *gin.RouterGroup) {
	rg.GET("/", handlers.Root)
}
