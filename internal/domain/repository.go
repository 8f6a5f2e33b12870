package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrShirtNotFound  = errors.New("shirt not found")
	ErrDuplicateShirt = errors.New("shirt already exists")
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks -source=repository.go ShirtRepository

// ShirtRepository defines the contract for catalog storage
type ShirtRepository interface {
	Create(ctx context.Context, shirt Shirt) error
	CreateBatch(ctx context.Context, shirts []Shirt) error
	FindByID(ctx context.Context, id uuid.UUID) (Shirt, error)
	// FindAll returns the catalog in insertion order. The returned slice must not be modified.
	FindAll(ctx context.Context) ([]Shirt, error)
	Count(ctx context.Context) int
}
