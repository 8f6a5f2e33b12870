package memory

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/mrops-br/shirt-search-api/internal/domain"
)

func newTestRepository(t *testing.T) (*ShirtRepository, *tracetest.SpanRecorder) {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewShirtRepository(tp.Tracer("test"), logger), recorder
}

func mustShirt(t *testing.T, color domain.Color, size domain.Size) domain.Shirt {
	t.Helper()

	shirt, err := domain.NewShirt(color.String()+" - "+size.String(), color, size)
	require.NoError(t, err)
	return shirt
}

func TestShirtRepository_CreateAndFind(t *testing.T) {
	t.Parallel()

	repo, recorder := newTestRepository(t)
	ctx := context.Background()
	shirt := mustShirt(t, domain.Red, domain.Small)

	require.NoError(t, repo.Create(ctx, shirt))

	got, err := repo.FindByID(ctx, shirt.ID)
	require.NoError(t, err)
	assert.Equal(t, shirt, got)
	assert.Equal(t, 1, repo.Count(ctx))

	spans := recorder.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "ShirtRepository.Create", spans[0].Name())
	assert.Equal(t, "ShirtRepository.FindByID", spans[1].Name())
	assert.Equal(t, codes.Ok, spans[1].Status().Code)
}

func TestShirtRepository_CreateDuplicate(t *testing.T) {
	t.Parallel()

	repo, recorder := newTestRepository(t)
	ctx := context.Background()
	shirt := mustShirt(t, domain.Black, domain.Large)

	require.NoError(t, repo.Create(ctx, shirt))
	assert.ErrorIs(t, repo.Create(ctx, shirt), domain.ErrDuplicateShirt)
	assert.Equal(t, 1, repo.Count(ctx))

	spans := recorder.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, codes.Error, spans[1].Status().Code)
}

func TestShirtRepository_FindByIDNotFound(t *testing.T) {
	t.Parallel()

	repo, recorder := newTestRepository(t)

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrShirtNotFound)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Len(t, spans[0].Events(), 1, "error should be recorded on the span")
}

func TestShirtRepository_FindAllPreservesInsertionOrder(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)
	ctx := context.Background()

	want := []domain.Shirt{
		mustShirt(t, domain.White, domain.Large),
		mustShirt(t, domain.Red, domain.Small),
		mustShirt(t, domain.Blue, domain.Medium),
	}
	for _, shirt := range want {
		require.NoError(t, repo.Create(ctx, shirt))
	}

	got, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestShirtRepository_FindAllEmpty(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)

	got, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestShirtRepository_SnapshotUnaffectedByLaterWrites(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)
	ctx := context.Background()

	first := mustShirt(t, domain.Red, domain.Small)
	require.NoError(t, repo.Create(ctx, first))

	snapshot, err := repo.FindAll(ctx)
	require.NoError(t, err)

	require.NoError(t, repo.Create(ctx, mustShirt(t, domain.Yellow, domain.Medium)))
	snapshot = append(snapshot, mustShirt(t, domain.Black, domain.Large))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, first, all[0])
	assert.Equal(t, domain.Yellow, all[1].Color)
	assert.Len(t, snapshot, 2)
}

func TestShirtRepository_CreateBatch(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)
	ctx := context.Background()

	batch := []domain.Shirt{
		mustShirt(t, domain.Red, domain.Small),
		mustShirt(t, domain.Blue, domain.Large),
	}
	require.NoError(t, repo.CreateBatch(ctx, batch))

	got, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, batch, got)

	found, err := repo.FindByID(ctx, batch[1].ID)
	require.NoError(t, err)
	assert.Equal(t, batch[1], found)
}

func TestShirtRepository_CreateBatchRejectsDuplicatesAtomically(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	existing := mustShirt(t, domain.Red, domain.Small)
	fresh := mustShirt(t, domain.White, domain.Medium)

	tests := []struct {
		name  string
		batch []domain.Shirt
	}{
		{name: "already stored", batch: []domain.Shirt{fresh, existing}},
		{name: "repeated within batch", batch: []domain.Shirt{fresh, fresh}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo, _ := newTestRepository(t)
			require.NoError(t, repo.Create(ctx, existing))

			assert.ErrorIs(t, repo.CreateBatch(ctx, tt.batch), domain.ErrDuplicateShirt)
			assert.Equal(t, 1, repo.Count(ctx))
			_, err := repo.FindByID(ctx, fresh.ID)
			assert.ErrorIs(t, err, domain.ErrShirtNotFound)
		})
	}
}

func TestShirtRepository_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		shirt := mustShirt(t, domain.AllColors()[i%5], domain.AllSizes()[i%3])
		wg.Add(2)
		go func() {
			defer wg.Done()
			assert.NoError(t, repo.Create(ctx, shirt))
		}()
		go func() {
			defer wg.Done()
			shirts, err := repo.FindAll(ctx)
			assert.NoError(t, err)
			for _, s := range shirts {
				assert.NoError(t, s.Validate())
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, repo.Count(ctx))
}
