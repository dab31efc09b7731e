package main

import (
	"context"
	"errors"
	"flag"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/nutricionistas-api/config"
	"github.com/oksasatya/nutricionistas-api/internal/application"
	pginfra "github.com/oksasatya/nutricionistas-api/internal/infrastructure/postgres"
	"github.com/oksasatya/nutricionistas-api/pkg/helpers"
	"github.com/oksasatya/nutricionistas-api/pkg/validation"
)

func main() {
	reset := flag.Bool("reset", false, "delete every nutricionista before seeding")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), 2, 1, time.Minute)
	if err != nil {
		logger.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	if err := pginfra.RunMigrations(cfg.PostgresDSN(), cfg.MigrationsDir, logger); err != nil {
		logger.Fatalf("migration failed: %v", err)
	}

	repo := pginfra.NewNutricionistaRepository(pool)
	if *reset {
		if err := repo.DeleteAll(ctx); err != nil {
			logger.Fatalf("failed to reset nutricionistas: %v", err)
		}
		logger.Info("nutricionistas table emptied")
	}

	// Goes through the service so the seed obeys the same rules as the API.
	svc := application.NewService(repo, nil, nil, logger, cfg.Location())
	nascimento := helpers.NewDate(1990, time.June, 20)
	n, err := svc.Cadastrar(ctx, application.NutricionistaRequest{
		Nome:           "Ana Silva",
		CPF:            "462.788.480-07",
		DataNascimento: &nascimento,
		Email:          "ana@email.com.br",
		CRN:            "123456",
	})
	if err != nil {
		var verr *validation.ValidationError
		if errors.As(err, &verr) {
			logger.Fatalf("seed data rejected: %v", verr.Mensagens)
		}
		logger.Fatalf("failed to seed nutricionista: %v", err)
	}

	all, err := repo.FindAll(ctx)
	if err != nil {
		logger.Fatalf("failed to list nutricionistas: %v", err)
	}
	helpers.LogInfo(logger, "seeded nutricionista", logrus.Fields{"id": n.ID, "total": len(all)})
}
