package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/nutricionistas-api/internal/domain/entity"
	"github.com/oksasatya/nutricionistas-api/internal/domain/repository"
)

type NutricionistaRepository struct {
	pool *pgxpool.Pool
}

func NewNutricionistaRepository(pool *pgxpool.Pool) *NutricionistaRepository {
	return &NutricionistaRepository{pool: pool}
}

func (r *NutricionistaRepository) Create(ctx context.Context, n *entity.Nutricionista) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO nutricionistas (nome, cpf, data_nascimento, email, crn)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, n.Nome, n.CPF, n.DataNascimento, n.Email, n.CRN)

	if err := row.Scan(&n.ID, &n.CreatedAt); err != nil {
		return fmt.Errorf("insert nutricionista: %w", err)
	}
	return nil
}

func (r *NutricionistaRepository) GetByID(ctx context.Context, id int64) (*entity.Nutricionista, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, nome, cpf, data_nascimento, email, crn, created_at
		FROM nutricionistas
		WHERE id = $1
	`, id)

	n, err := scanNutricionista(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return n, nil
}

func (r *NutricionistaRepository) FindAll(ctx context.Context) ([]entity.Nutricionista, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, nome, cpf, data_nascimento, email, crn, created_at
		FROM nutricionistas
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.Nutricionista, 0)
	for rows.Next() {
		n, err := scanNutricionista(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *n)
	}
	return out, rows.Err()
}

// DeleteAll empties the table. Used by tests and the seed command.
func (r *NutricionistaRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM nutricionistas`)
	return err
}

func scanNutricionista(row pgx.Row) (*entity.Nutricionista, error) {
	n := &entity.Nutricionista{}
	if err := row.Scan(&n.ID, &n.Nome, &n.CPF, &n.DataNascimento, &n.Email, &n.CRN, &n.CreatedAt); err != nil {
		return nil, err
	}
	return n, nil
}

var _ repository.NutricionistaRepository = (*NutricionistaRepository)(nil)
