package repository

import (
	"context"
	"errors"

	"github.com/oksasatya/nutricionistas-api/internal/domain/entity"
)

// ErrNotFound is returned by lookups that match no row.
var ErrNotFound = errors.New("not found")

// NutricionistaRepository defines the storage operations for nutricionistas.
// Create assigns n.ID and n.CreatedAt.
type NutricionistaRepository interface {
	Create(ctx context.Context, n *entity.Nutricionista) error
	GetByID(ctx context.Context, id int64) (*entity.Nutricionista, error)
	FindAll(ctx context.Context) ([]entity.Nutricionista, error)
	DeleteAll(ctx context.Context) error
}
