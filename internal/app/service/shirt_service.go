package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/mrops-br/shirt-search-api/internal/app/dto"
	"github.com/mrops-br/shirt-search-api/internal/domain"
	"github.com/mrops-br/shirt-search-api/internal/search"
)

// ShirtService handles catalog and search use cases
type ShirtService struct {
	repo                domain.ShirtRepository
	tracer              trace.Tracer
	logger              *slog.Logger
	shirtCreatedCounter metric.Int64Counter
	shirtOperations     metric.Int64Counter
	searchMatches       metric.Int64Histogram
	searchDuration      metric.Float64Histogram
}

// NewShirtService creates a new shirt service
func NewShirtService(
	repo domain.ShirtRepository,
	tracer trace.Tracer,
	meter metric.Meter,
	logger *slog.Logger,
) *ShirtService {
	// Initialize metrics
	shirtCreatedCounter, _ := meter.Int64Counter(
		"shirts.created.total",
		metric.WithDescription("Total number of shirts added to the catalog"),
	)

	shirtOperations, _ := meter.Int64Counter(
		"shirts.operations",
		metric.WithDescription("Total number of shirt operations"),
	)

	searchMatches, _ := meter.Int64Histogram(
		"shirts.search.matches",
		metric.WithDescription("Number of shirts matched per search"),
		metric.WithUnit("{shirt}"),
	)

	searchDuration, _ := meter.Float64Histogram(
		"shirts.search.duration",
		metric.WithDescription("Catalog search duration in milliseconds"),
		metric.WithUnit("ms"),
	)

	return &ShirtService{
		repo:                repo,
		tracer:              tracer,
		logger:              logger,
		shirtCreatedCounter: shirtCreatedCounter,
		shirtOperations:     shirtOperations,
		searchMatches:       searchMatches,
		searchDuration:      searchDuration,
	}
}

func (s *ShirtService) recordOperation(ctx context.Context, operation, result string) {
	s.shirtOperations.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("operation", operation),
			attribute.String("result", result),
		),
	)
}

// CreateShirt adds a new shirt to the catalog
func (s *ShirtService) CreateShirt(ctx context.Context, req *dto.CreateShirtRequest) (*dto.ShirtResponse, error) {
	ctx, span := s.tracer.Start(ctx, "ShirtService.CreateShirt")
	defer span.End()

	span.SetAttributes(
		attribute.String("shirt.name", req.Name),
		attribute.String("shirt.color", req.Color),
		attribute.String("shirt.size", req.Size),
	)

	s.logger.InfoContext(ctx, "Creating shirt",
		slog.String("name", req.Name),
		slog.String("color", req.Color),
		slog.String("size", req.Size),
	)

	// Create domain entity
	shirt, err := req.ToShirt()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Validation failed")
		s.logger.ErrorContext(ctx, "Failed to create shirt",
			slog.String("error", err.Error()),
		)
		s.recordOperation(ctx, "create", "failure")
		return nil, err
	}

	span.SetAttributes(attribute.String("shirt.id", shirt.ID.String()))

	// Store in repository
	if err := s.repo.Create(ctx, shirt); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to store shirt")
		s.logger.ErrorContext(ctx, "Failed to store shirt",
			slog.String("error", err.Error()),
		)
		s.recordOperation(ctx, "create", "failure")
		return nil, err
	}

	s.shirtCreatedCounter.Add(ctx, 1)
	s.recordOperation(ctx, "create", "success")

	s.logger.InfoContext(ctx, "Shirt created successfully",
		slog.String("shirt_id", shirt.ID.String()),
	)

	span.SetStatus(codes.Ok, "Shirt created successfully")
	return dto.ToShirtResponse(shirt), nil
}

// SeedCatalog stores a batch of prebuilt shirts, typically at startup
func (s *ShirtService) SeedCatalog(ctx context.Context, shirts []domain.Shirt) error {
	ctx, span := s.tracer.Start(ctx, "ShirtService.SeedCatalog")
	defer span.End()

	span.SetAttributes(attribute.Int("shirt.count", len(shirts)))

	for _, shirt := range shirts {
		if err := shirt.Validate(); err != nil {
			err = fmt.Errorf("invalid shirt %s: %w", shirt.ID, err)
			span.RecordError(err)
			span.SetStatus(codes.Error, "Validation failed")
			s.recordOperation(ctx, "seed", "failure")
			return err
		}
	}

	if err := s.repo.CreateBatch(ctx, shirts); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to store shirts")
		s.logger.ErrorContext(ctx, "Failed to seed catalog",
			slog.String("error", err.Error()),
		)
		s.recordOperation(ctx, "seed", "failure")
		return err
	}

	s.shirtCreatedCounter.Add(ctx, int64(len(shirts)))
	s.recordOperation(ctx, "seed", "success")

	s.logger.InfoContext(ctx, "Catalog seeded",
		slog.Int("count", len(shirts)),
		slog.Int("catalog_size", s.repo.Count(ctx)),
	)

	span.SetStatus(codes.Ok, "Catalog seeded successfully")
	return nil
}

// GetShirtByID retrieves a shirt by ID
func (s *ShirtService) GetShirtByID(ctx context.Context, id string) (*dto.ShirtResponse, error) {
	ctx, span := s.tracer.Start(ctx, "ShirtService.GetShirtByID")
	defer span.End()

	span.SetAttributes(attribute.String("shirt.id", id))

	s.logger.InfoContext(ctx, "Getting shirt by ID",
		slog.String("shirt_id", id),
	)

	shirtID, err := uuid.Parse(id)
	if err != nil {
		err = fmt.Errorf("%w: malformed shirt id %q", domain.ErrInvalidArgument, id)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Invalid shirt ID")
		s.recordOperation(ctx, "read", "failure")
		return nil, err
	}

	shirt, err := s.repo.FindByID(ctx, shirtID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Shirt not found")
		s.logger.WarnContext(ctx, "Shirt not found",
			slog.String("shirt_id", id),
		)
		s.recordOperation(ctx, "read", "not_found")
		return nil, err
	}

	s.recordOperation(ctx, "read", "success")

	s.logger.InfoContext(ctx, "Shirt retrieved successfully",
		slog.String("shirt_id", id),
	)

	span.SetStatus(codes.Ok, "Shirt retrieved successfully")
	return dto.ToShirtResponse(shirt), nil
}

// ListShirts retrieves the whole catalog in order
func (s *ShirtService) ListShirts(ctx context.Context) ([]*dto.ShirtResponse, error) {
	ctx, span := s.tracer.Start(ctx, "ShirtService.ListShirts")
	defer span.End()

	s.logger.InfoContext(ctx, "Listing all shirts")

	shirts, err := s.repo.FindAll(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to retrieve shirts")
		s.logger.ErrorContext(ctx, "Failed to list shirts",
			slog.String("error", err.Error()),
		)
		s.recordOperation(ctx, "list", "failure")
		return nil, err
	}

	span.SetAttributes(attribute.Int("shirt.count", len(shirts)))
	s.recordOperation(ctx, "list", "success")

	s.logger.InfoContext(ctx, "Shirts listed successfully",
		slog.Int("count", len(shirts)),
	)

	span.SetStatus(codes.Ok, "Shirts listed successfully")
	return dto.ToShirtResponseList(shirts), nil
}

// SearchShirts decodes the request criteria and searches the catalog
func (s *ShirtService) SearchShirts(ctx context.Context, req *dto.SearchRequest) (*dto.SearchResponse, error) {
	opts, err := req.ToSearchOptions()
	if err != nil {
		s.logger.WarnContext(ctx, "Invalid search request",
			slog.String("error", err.Error()),
		)
		s.recordOperation(ctx, "search", "invalid")
		return nil, err
	}

	results, err := s.Search(ctx, opts)
	if err != nil {
		return nil, err
	}
	return dto.ToSearchResponse(results), nil
}

// Search runs opts against a snapshot of the current catalog
func (s *ShirtService) Search(ctx context.Context, opts *domain.SearchOptions) (*domain.SearchResults, error) {
	ctx, span := s.tracer.Start(ctx, "ShirtService.Search")
	defer span.End()

	if opts != nil {
		span.SetAttributes(
			attribute.Int("search.colors", len(opts.Colors)),
			attribute.Int("search.sizes", len(opts.Sizes)),
		)
	}

	shirts, err := s.repo.FindAll(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to retrieve catalog")
		s.logger.ErrorContext(ctx, "Failed to load catalog for search",
			slog.String("error", err.Error()),
		)
		s.recordOperation(ctx, "search", "failure")
		return nil, err
	}

	start := time.Now()
	results, err := search.NewEngine(shirts).Search(opts)
	elapsed := time.Since(start)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Invalid search criteria")
		s.logger.WarnContext(ctx, "Search rejected",
			slog.String("error", err.Error()),
		)
		s.recordOperation(ctx, "search", "invalid")
		return nil, err
	}

	s.searchMatches.Record(ctx, int64(len(results.Shirts)))
	s.searchDuration.Record(ctx, float64(elapsed.Microseconds())/1000)
	s.recordOperation(ctx, "search", "success")

	span.SetAttributes(
		attribute.Int("shirt.catalog_size", len(shirts)),
		attribute.Int("shirt.matched", len(results.Shirts)),
	)

	s.logger.InfoContext(ctx, "Search completed",
		slog.Int("catalog_size", len(shirts)),
		slog.Int("matched", len(results.Shirts)),
		slog.Float64("duration_ms", float64(elapsed.Microseconds())/1000),
	)

	span.SetStatus(codes.Ok, "Search completed")
	return results, nil
}
