package sampledata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrops-br/shirt-search-api/internal/domain"
)

func TestBuilder_CreateShirts(t *testing.T) {
	t.Parallel()

	shirts, err := NewBuilder(1000, 42).CreateShirts()
	require.NoError(t, err)
	require.Len(t, shirts, 1000)

	seen := make(map[uuid.UUID]struct{}, len(shirts))
	for _, shirt := range shirts {
		require.NoError(t, shirt.Validate())
		assert.Equal(t, shirt.Color.String()+" - "+shirt.Size.String(), shirt.Name)
		_, dup := seen[shirt.ID]
		assert.False(t, dup, "duplicate id %s", shirt.ID)
		seen[shirt.ID] = struct{}{}
	}
}

func TestBuilder_CoversDomain(t *testing.T) {
	t.Parallel()

	shirts, err := NewBuilder(5000, 7).CreateShirts()
	require.NoError(t, err)

	colors := make(map[domain.Color]int)
	sizes := make(map[domain.Size]int)
	for _, shirt := range shirts {
		colors[shirt.Color]++
		sizes[shirt.Size]++
	}
	assert.Len(t, colors, len(domain.AllColors()))
	assert.Len(t, sizes, len(domain.AllSizes()))
}

func TestBuilder_Deterministic(t *testing.T) {
	t.Parallel()

	first, err := NewBuilder(200, 99).CreateShirts()
	require.NoError(t, err)
	second, err := NewBuilder(200, 99).CreateShirts()
	require.NoError(t, err)
	assert.Equal(t, first, second)

	other, err := NewBuilder(200, 100).CreateShirts()
	require.NoError(t, err)
	assert.NotEqual(t, first, other)
}

func TestBuilder_ZeroAndNegativeSize(t *testing.T) {
	t.Parallel()

	for _, size := range []int{0, -5} {
		shirts, err := NewBuilder(size, 1).CreateShirts()
		require.NoError(t, err)
		assert.NotNil(t, shirts)
		assert.Empty(t, shirts)
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	id := uuid.New()

	tests := []struct {
		name    string
		doc     string
		want    []domain.Shirt
		wantErr error
	}{
		{
			name: "yaml with explicit id",
			doc: `
shirts:
  - id: ` + id.String() + `
    name: Red - Small
    color: red
    size: small
`,
			want: []domain.Shirt{{ID: id, Name: "Red - Small", Color: domain.Red, Size: domain.Small}},
		},
		{
			name: "json document",
			doc:  `{"shirts":[{"id":"` + id.String() + `","name":"Blue - Large","color":"Blue","size":"Large"}]}`,
			want: []domain.Shirt{{ID: id, Name: "Blue - Large", Color: domain.Blue, Size: domain.Large}},
		},
		{
			name: "empty document",
			doc:  `shirts: []`,
			want: []domain.Shirt{},
		},
		{
			name:    "unknown color",
			doc:     "shirts:\n  - name: x\n    color: green\n    size: small\n",
			wantErr: domain.ErrUnknownColor,
		},
		{
			name:    "unknown size",
			doc:     "shirts:\n  - name: x\n    color: red\n    size: huge\n",
			wantErr: domain.ErrUnknownSize,
		},
		{
			name:    "malformed id",
			doc:     "shirts:\n  - id: nope\n    name: x\n    color: red\n    size: small\n",
			wantErr: domain.ErrInvalidArgument,
		},
		{
			name:    "missing name",
			doc:     "shirts:\n  - color: red\n    size: small\n",
			wantErr: domain.ErrInvalidShirtName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Parse([]byte(tt.doc))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_GeneratesMissingIDs(t *testing.T) {
	t.Parallel()

	shirts, err := Parse([]byte("shirts:\n  - name: a\n    color: white\n    size: medium\n  - name: b\n    color: yellow\n    size: large\n"))
	require.NoError(t, err)
	require.Len(t, shirts, 2)
	assert.NotEqual(t, uuid.Nil, shirts[0].ID)
	assert.NotEqual(t, shirts[0].ID, shirts[1].ID)
	assert.Equal(t, "a", shirts[0].Name)
	assert.Equal(t, "b", shirts[1].Name)
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("shirts:\n  - name: Black - Medium\n    color: black\n    size: medium\n"), 0o600))

	shirts, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, shirts, 1)
	assert.Equal(t, domain.Black, shirts[0].Color)
	assert.Equal(t, domain.Medium, shirts[0].Size)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadFile("")
	assert.Error(t, err)
}
