package memory

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/mrops-br/shirt-search-api/internal/domain"
)

// ShirtRepository is an in-memory implementation of domain.ShirtRepository.
//
// Shirts are kept in an append-only slice so the catalog order is the insertion order and
// FindAll can hand out snapshots without copying.
type ShirtRepository struct {
	mu     sync.RWMutex
	shirts []domain.Shirt
	index  map[uuid.UUID]int
	tracer trace.Tracer
	logger *slog.Logger
}

// NewShirtRepository creates a new in-memory shirt repository
func NewShirtRepository(tracer trace.Tracer, logger *slog.Logger) *ShirtRepository {
	return &ShirtRepository{
		shirts: make([]domain.Shirt, 0),
		index:  make(map[uuid.UUID]int),
		tracer: tracer,
		logger: logger,
	}
}

// Create stores a new shirt
func (r *ShirtRepository) Create(ctx context.Context, shirt domain.Shirt) error {
	ctx, span := r.tracer.Start(ctx, "ShirtRepository.Create")
	defer span.End()

	span.SetAttributes(
		attribute.String("shirt.id", shirt.ID.String()),
		attribute.String("shirt.color", shirt.Color.String()),
		attribute.String("shirt.size", shirt.Size.String()),
	)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[shirt.ID]; exists {
		span.RecordError(domain.ErrDuplicateShirt)
		span.SetStatus(codes.Error, "Shirt already exists")
		r.logger.WarnContext(ctx, "Shirt already exists",
			slog.String("shirt_id", shirt.ID.String()),
		)
		return domain.ErrDuplicateShirt
	}

	r.index[shirt.ID] = len(r.shirts)
	r.shirts = append(r.shirts, shirt)

	r.logger.DebugContext(ctx, "Shirt created in repository",
		slog.String("shirt_id", shirt.ID.String()),
		slog.String("shirt_name", shirt.Name),
	)

	span.SetStatus(codes.Ok, "Shirt created successfully")
	return nil
}

// CreateBatch stores shirts in order. Nothing is stored if any ID is already present or
// repeated within the batch.
func (r *ShirtRepository) CreateBatch(ctx context.Context, shirts []domain.Shirt) error {
	ctx, span := r.tracer.Start(ctx, "ShirtRepository.CreateBatch")
	defer span.End()

	span.SetAttributes(attribute.Int("shirt.batch_size", len(shirts)))

	r.mu.Lock()
	defer r.mu.Unlock()

	batch := make(map[uuid.UUID]struct{}, len(shirts))
	for _, shirt := range shirts {
		_, stored := r.index[shirt.ID]
		_, repeated := batch[shirt.ID]
		if stored || repeated {
			span.RecordError(domain.ErrDuplicateShirt)
			span.SetStatus(codes.Error, "Duplicate shirt in batch")
			r.logger.WarnContext(ctx, "Duplicate shirt in batch",
				slog.String("shirt_id", shirt.ID.String()),
			)
			return domain.ErrDuplicateShirt
		}
		batch[shirt.ID] = struct{}{}
	}

	for _, shirt := range shirts {
		r.index[shirt.ID] = len(r.shirts)
		r.shirts = append(r.shirts, shirt)
	}

	r.logger.InfoContext(ctx, "Shirt batch stored in repository",
		slog.Int("count", len(shirts)),
		slog.Int("catalog_size", len(r.shirts)),
	)

	span.SetStatus(codes.Ok, "Shirt batch created successfully")
	return nil
}

// FindByID retrieves a shirt by ID
func (r *ShirtRepository) FindByID(ctx context.Context, id uuid.UUID) (domain.Shirt, error) {
	ctx, span := r.tracer.Start(ctx, "ShirtRepository.FindByID")
	defer span.End()

	span.SetAttributes(attribute.String("shirt.id", id.String()))

	r.mu.RLock()
	defer r.mu.RUnlock()

	pos, exists := r.index[id]
	if !exists {
		span.RecordError(domain.ErrShirtNotFound)
		span.SetStatus(codes.Error, "Shirt not found")
		r.logger.WarnContext(ctx, "Shirt not found",
			slog.String("shirt_id", id.String()),
		)
		return domain.Shirt{}, domain.ErrShirtNotFound
	}

	shirt := r.shirts[pos]
	r.logger.DebugContext(ctx, "Shirt found in repository",
		slog.String("shirt_id", id.String()),
		slog.String("shirt_name", shirt.Name),
	)

	span.SetStatus(codes.Ok, "Shirt found")
	return shirt, nil
}

// FindAll returns the catalog in insertion order.
//
// The slice is capped at its length, so later appends never write into memory it can see.
// Callers must treat it as read-only.
func (r *ShirtRepository) FindAll(ctx context.Context) ([]domain.Shirt, error) {
	ctx, span := r.tracer.Start(ctx, "ShirtRepository.FindAll")
	defer span.End()

	r.mu.RLock()
	shirts := r.shirts[:len(r.shirts):len(r.shirts)]
	r.mu.RUnlock()

	span.SetAttributes(attribute.Int("shirt.count", len(shirts)))

	r.logger.DebugContext(ctx, "Shirts retrieved from repository",
		slog.Int("count", len(shirts)),
	)

	span.SetStatus(codes.Ok, "Shirts retrieved successfully")
	return shirts, nil
}

// Count returns the number of stored shirts
func (r *ShirtRepository) Count(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.shirts)
}
