// Package memory holds an in-process NutricionistaRepository used by tests
// and by the API when no database is wanted.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/oksasatya/nutricionistas-api/internal/domain/entity"
	"github.com/oksasatya/nutricionistas-api/internal/domain/repository"
)

type NutricionistaRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]entity.Nutricionista
	now    func() time.Time
}

func NewNutricionistaRepository() *NutricionistaRepository {
	return &NutricionistaRepository{items: make(map[int64]entity.Nutricionista), now: time.Now}
}

func (r *NutricionistaRepository) Create(_ context.Context, n *entity.Nutricionista) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	n.ID = r.nextID
	n.CreatedAt = r.now()
	r.items[n.ID] = *n
	return nil
}

func (r *NutricionistaRepository) GetByID(_ context.Context, id int64) (*entity.Nutricionista, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &n, nil
}

func (r *NutricionistaRepository) FindAll(_ context.Context) ([]entity.Nutricionista, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.Nutricionista, 0, len(r.items))
	for _, n := range r.items {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// DeleteAll drops every record but keeps the id sequence, like a table DELETE.
func (r *NutricionistaRepository) DeleteAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = make(map[int64]entity.Nutricionista)
	return nil
}

var _ repository.NutricionistaRepository = (*NutricionistaRepository)(nil)
