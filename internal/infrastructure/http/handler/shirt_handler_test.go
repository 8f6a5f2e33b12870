package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mrops-br/shirt-search-api/internal/domain"
)

func TestStatusFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil colors", err: domain.ErrNilColors, want: http.StatusBadRequest},
		{name: "unknown size wrapped", err: fmt.Errorf("%w: %q", domain.ErrUnknownSize, "xl"), want: http.StatusBadRequest},
		{name: "nil catalog", err: domain.ErrNilCatalog, want: http.StatusBadRequest},
		{name: "not found", err: domain.ErrShirtNotFound, want: http.StatusNotFound},
		{name: "duplicate", err: fmt.Errorf("seed: %w", domain.ErrDuplicateShirt), want: http.StatusConflict},
		{name: "unexpected", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, StatusFor(tt.err))
		})
	}
}
