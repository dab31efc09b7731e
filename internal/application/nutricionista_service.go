package application

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/oksasatya/nutricionistas-api/internal/domain/entity"
	repo "github.com/oksasatya/nutricionistas-api/internal/domain/repository"
	"github.com/oksasatya/nutricionistas-api/pkg/events"
	"github.com/oksasatya/nutricionistas-api/pkg/validation"
)

var (
	ErrNutricionistaNotFound = errors.New("nutricionista not found")
	ErrNotPersisted          = errors.New("repository returned a record without id")
)

var tracer = otel.Tracer("github.com/oksasatya/nutricionistas-api/internal/application")

// Cache is the read-through cache used by GetByID.
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
}

// EventPublisher ships domain events to the broker.
type EventPublisher interface {
	PublishJSON(ctx context.Context, msgType string, body any) error
}

type Service struct {
	Repo     repo.NutricionistaRepository
	Cache    Cache
	Events   EventPublisher
	Logger   *logrus.Logger
	Location *time.Location
	Now      func() time.Time
}

// NewService wires the registration use cases. cache and pub may be nil.
func NewService(r repo.NutricionistaRepository, cache Cache, pub EventPublisher, logger *logrus.Logger, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		Repo:     r,
		Cache:    cache,
		Events:   pub,
		Logger:   logger,
		Location: loc,
		Now:      time.Now,
	}
}

// Validate runs the rule table. It has no side effects.
func (s *Service) Validate(req NutricionistaRequest) []validation.Violation {
	return Rules(s.Now, s.Location).Validate(req)
}

// Cadastrar validates req and stores it. A rejected request yields a
// *validation.ValidationError and nothing is written.
func (s *Service) Cadastrar(ctx context.Context, req NutricionistaRequest) (*entity.Nutricionista, error) {
	ctx, span := tracer.Start(ctx, "nutricionista.cadastrar", trace.WithSpanKind(trace.SpanKindInternal))
	defer span.End()

	if vs := s.Validate(req); len(vs) > 0 {
		metrics.IncrementValidacoesRejeitadas()
		span.SetAttributes(attribute.Int("validation.violations", len(vs)))
		span.SetStatus(codes.Error, "validation failed")
		return nil, validation.NewValidationError(Formatter, vs)
	}

	n := req.ToEntity()
	if err := s.Repo.Create(ctx, n); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Error("create nutricionista failed")
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("create nutricionista: %w", err)
	}
	if !n.Persisted() {
		span.SetStatus(codes.Error, ErrNotPersisted.Error())
		return nil, ErrNotPersisted
	}
	metrics.IncrementCadastrados()
	span.SetAttributes(attribute.Int64("nutricionista.id", n.ID))

	if s.Logger != nil {
		s.Logger.WithField("nutricionista_id", n.ID).Info("nutricionista cadastrado")
	}

	s.cache(ctx, n)
	s.publishCadastrado(ctx, n)
	return n, nil
}

// GetByID looks the record up in the cache first, then in the repository.
func (s *Service) GetByID(ctx context.Context, id int64) (*entity.Nutricionista, error) {
	ctx, span := tracer.Start(ctx, "nutricionista.buscar", trace.WithAttributes(attribute.Int64("nutricionista.id", id)))
	defer span.End()

	key := strconv.FormatInt(id, 10)
	if s.Cache != nil {
		var cached entity.Nutricionista
		hit, err := s.Cache.Get(ctx, key, &cached)
		if err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("key", key).Warn("cache read failed")
		}
		if hit {
			span.SetAttributes(attribute.Bool("cache.hit", true))
			return &cached, nil
		}
	}

	n, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNutricionistaNotFound
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	s.cache(ctx, n)
	return n, nil
}

func (s *Service) cache(ctx context.Context, n *entity.Nutricionista) {
	if s.Cache == nil {
		return
	}
	key := strconv.FormatInt(n.ID, 10)
	if err := s.Cache.Set(ctx, key, n); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("key", key).Warn("cache write failed")
	}
}

// publishCadastrado is best effort: the record is already stored.
func (s *Service) publishCadastrado(ctx context.Context, n *entity.Nutricionista) {
	if s.Events == nil {
		return
	}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := s.Events.PublishJSON(c, events.TypeNutricionistaCadastrado, events.NewNutricionistaCadastrado(n)); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("nutricionista_id", n.ID).Warn("publish event failed")
	}
}
