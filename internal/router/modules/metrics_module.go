package modules

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/oksasatya/nutricionistas-api/internal/container"
	"github.com/oksasatya/nutricionistas-api/internal/interface/middleware"
)

// MetricsModule exposes the Prometheus registry at /metrics.
type MetricsModule struct{}

func NewMetricsModule() *MetricsModule { return &MetricsModule{} }

func (m *MetricsModule) Register(rg *gin.RouterGroup) {
	rl := middleware.RateLimit(container.GetRedis(), middleware.PerMinute(120), middleware.KeyByIP(), nil)
	rg.GET("/metrics", rl, gin.WrapH(promhttp.Handler()))
}
