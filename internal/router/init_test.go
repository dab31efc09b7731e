package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/nutricionistas-api/config"
	"github.com/oksasatya/nutricionistas-api/internal/container"
	"github.com/oksasatya/nutricionistas-api/internal/infrastructure/memory"
	"github.com/oksasatya/nutricionistas-api/pkg/helpers"
)

func setup(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	container.Reset()
	t.Cleanup(container.Reset)
	container.SetConfig(cfg)

	r := gin.New()
	reg := NewRegistry(r, "")
	InitModules(reg)
	reg.RegisterAll()
	return r
}

func TestBuildNutricionistaDepsFallbacks(t *testing.T) {
	container.Reset()
	t.Cleanup(container.Reset)
	container.SetConfig(&config.Config{TimeZone: "America/Sao_Paulo", CacheTTL: time.Minute})

	deps := buildNutricionistaDeps()
	assert.IsType(t, &memory.NutricionistaRepository{}, deps.Repo)
	assert.IsType(t, &helpers.LocalCache{}, deps.Service.Cache)
	assert.Nil(t, deps.Service.Events)
	assert.Equal(t, "America/Sao_Paulo", deps.Service.Location.String())

	container.SetConfig(&config.Config{TimeZone: "UTC"})
	deps = buildNutricionistaDeps()
	assert.Nil(t, deps.Service.Cache)
}

func TestInitModulesRoutes(t *testing.T) {
	r := setup(t, &config.Config{
		Env:                "test",
		TimeZone:           "UTC",
		RateLimitPerMinute: 60,
		CacheTTL:           time.Minute,
		MetricsEnabled:     true,
	})

	body := `{"nome":"Ana Silva","cpf":"46278848007","dataNascimento":"20/06/1990","email":"ana@email.com.br","crn":"123456"}`
	req := httptest.NewRequest(http.MethodPost, "http://example.com/nutricionistas", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "http://example.com/nutricionistas/1", w.Header().Get("Location"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nutricionistas/1", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "nutricionistas_cadastrados_total")
}

func TestInitModulesWithoutMetrics(t *testing.T) {
	r := setup(t, &config.Config{TimeZone: "UTC"})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
