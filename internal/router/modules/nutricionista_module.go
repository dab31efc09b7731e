package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/nutricionistas-api/internal/container"
	handlers "github.com/oksasatya/nutricionistas-api/internal/interface/http"
	"github.com/oksasatya/nutricionistas-api/internal/interface/middleware"
)

// NutricionistaModule routes:
// POST /nutricionistas (rate limited per IP)
// GET  /nutricionistas/:id
type NutricionistaModule struct {
	Handler *handlers.NutricionistaHandler
	Limit   middleware.Limit
	Allow   middleware.AllowFunc
}

func NewNutricionistaModule(h *handlers.NutricionistaHandler, limit middleware.Limit, allow middleware.AllowFunc) *NutricionistaModule {
	return &NutricionistaModule{Handler: h, Limit: limit, Allow: allow}
}

func (m *NutricionistaModule) Register(rg *gin.RouterGroup) {
	createLimiter := middleware.RateLimit(container.GetRedis(), m.Limit, middleware.KeyByIPAndPath(), m.Allow)

	g := rg.Group(handlers.ResourcePath)
	g.POST("", createLimiter, m.Handler.Cadastrar)
	g.GET("/:id", m.Handler.Buscar)
}
