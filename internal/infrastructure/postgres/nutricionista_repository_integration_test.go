//go:build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/nutricionistas-api/internal/domain/entity"
	"github.com/oksasatya/nutricionistas-api/internal/domain/repository"
	pginfra "github.com/oksasatya/nutricionistas-api/internal/infrastructure/postgres"
	"github.com/oksasatya/nutricionistas-api/pkg/helpers"
	"github.com/oksasatya/nutricionistas-api/pkg/testutil/containers"
)

const migrationsDir = "../../../db/migrations"

func TestNutricionistaRepository(t *testing.T) {
	pg := containers.NewPostgresContainer(t)
	require.NoError(t, pginfra.RunMigrations(pg.DSN, migrationsDir, helpers.NewNopLogger()))
	// second run is a no-op
	require.NoError(t, pginfra.RunMigrations(pg.DSN, migrationsDir, helpers.NewNopLogger()))

	r := pginfra.NewNutricionistaRepository(pg.Pool)
	ctx := context.Background()

	n := entity.NewNutricionista("Ana Silva", "462.788.480-07", time.Date(1990, time.June, 20, 0, 0, 0, 0, time.UTC), "ana@email.com.br", "123456")
	require.NoError(t, r.Create(ctx, n))
	assert.True(t, n.Persisted())
	assert.False(t, n.CreatedAt.IsZero())

	got, err := r.GetByID(ctx, n.ID)
	require.NoError(t, err)
	assert.Equal(t, n.Nome, got.Nome)
	assert.Equal(t, n.CPF, got.CPF)
	assert.Equal(t, "20/06/1990", got.DataNascimento.Format(helpers.DateLayout))
	assert.Equal(t, n.Email, got.Email)
	assert.Equal(t, n.CRN, got.CRN)

	_, err = r.GetByID(ctx, n.ID+1000)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	second := entity.NewNutricionista("Bruno Lima", "529.982.247-25", time.Date(1985, time.January, 2, 0, 0, 0, 0, time.UTC), "bruno@email.com", "654321")
	require.NoError(t, r.Create(ctx, second))
	assert.Greater(t, second.ID, n.ID)

	all, err := r.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, n.ID, all[0].ID)

	require.NoError(t, r.DeleteAll(ctx))
	all, err = r.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
