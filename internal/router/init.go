package router

import (
	"github.com/oksasatya/nutricionistas-api/internal/application"
	"github.com/oksasatya/nutricionistas-api/internal/container"
	"github.com/oksasatya/nutricionistas-api/internal/domain/repository"
	"github.com/oksasatya/nutricionistas-api/internal/infrastructure/memory"
	pginfra "github.com/oksasatya/nutricionistas-api/internal/infrastructure/postgres"
	handlers "github.com/oksasatya/nutricionistas-api/internal/interface/http"
	"github.com/oksasatya/nutricionistas-api/internal/interface/middleware"
	"github.com/oksasatya/nutricionistas-api/internal/router/modules"
	"github.com/oksasatya/nutricionistas-api/pkg/helpers"
)

type NutricionistaModuleDeps struct {
	Repo    repository.NutricionistaRepository
	Service *application.Service
	Handler *handlers.NutricionistaHandler
}

func buildNutricionistaDeps() NutricionistaModuleDeps {
	cfg := container.GetConfig()
	logger := container.GetLogger()

	var repo repository.NutricionistaRepository
	if pool := container.GetPGPool(); pool != nil {
		repo = pginfra.NewNutricionistaRepository(pool)
	} else {
		logger.Warn("no postgres pool in container; using in-memory repository")
		repo = memory.NewNutricionistaRepository()
	}

	// Keep the interfaces nil when the backing client is absent.
	var cache application.Cache
	switch rdb := container.GetRedis(); {
	case cfg.CacheTTL <= 0:
	case rdb != nil:
		cache = helpers.NewJSONCache(rdb, "nutricionista:", cfg.CacheTTL)
	default:
		cache = helpers.NewLocalCache(cfg.CacheTTL, 2*cfg.CacheTTL)
	}
	var pub application.EventPublisher
	if p := container.GetRabbitPub(); p != nil {
		pub = p
	}

	service := application.NewService(repo, cache, pub, logger, cfg.Location())
	handler := handlers.NewNutricionistaHandler(service, logger, cfg.PublicBaseURL, cfg.ErrorEnvelopeEnabled)

	return NutricionistaModuleDeps{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	cfg := container.GetConfig()

	var allow middleware.AllowFunc
	if cfg.Env == "development" {
		allow = middleware.AllowPrivateIP()
	}

	deps := buildNutricionistaDeps()
	r.Add(modules.NewNutricionistaModule(deps.Handler, middleware.PerMinute(cfg.RateLimitPerMinute), allow))
	if cfg.MetricsEnabled {
		r.Add(modules.NewMetricsModule())
	}
}
