package container

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/nutricionistas-api/config"
	"github.com/oksasatya/nutricionistas-api/pkg/helpers"
)

// app-level container to share constructed components across packages
// Router auto-wires modules from these singletons; any of them may be nil
// except config and logger.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	pgPool      *pgxpool.Pool
	redisClient *redis.Client
	rabbitPub   *helpers.RabbitPublisher
)

func SetConfig(c *config.Config) { cfg = c }

func GetConfig() *config.Config {
	if cfg == nil {
		cfg = config.Load()
	}
	return cfg
}

func SetLogger(l *logrus.Logger) { logger = l }

func GetLogger() *logrus.Logger {
	if logger == nil {
		logger = helpers.NewNopLogger()
	}
	return logger
}

func SetPGPool(p *pgxpool.Pool) { pgPool = p }

func GetPGPool() *pgxpool.Pool { return pgPool }

func SetRedis(r *redis.Client) { redisClient = r }

func GetRedis() *redis.Client { return redisClient }

func SetRabbitPub(p *helpers.RabbitPublisher) { rabbitPub = p }

func GetRabbitPub() *helpers.RabbitPublisher { return rabbitPub }

// Reset clears every singleton. Tests use it between cases.
func Reset() {
	cfg = nil
	logger = nil
	pgPool = nil
	redisClient = nil
	rabbitPub = nil
}
