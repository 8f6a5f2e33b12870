package domain

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllColors_CanonicalOrder(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []Color{Red, Black, Blue, Yellow, White}, AllColors())
	assert.Equal(t, []Size{Small, Medium, Large}, AllSizes())
}

func TestAllColors_ReturnsCopy(t *testing.T) {
	t.Parallel()

	colors := AllColors()
	colors[0] = White
	sizes := AllSizes()
	sizes[0] = Large

	assert.Equal(t, Red, AllColors()[0])
	assert.Equal(t, Small, AllSizes()[0])
}

func TestParseColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    Color
		wantErr bool
	}{
		{name: "exact", input: "Red", want: Red},
		{name: "lower case", input: "black", want: Black},
		{name: "upper case with spaces", input: "  WHITE ", want: White},
		{name: "unknown", input: "green", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseColor(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownColor)
				assert.ErrorIs(t, err, ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    Size
		wantErr bool
	}{
		{name: "exact", input: "Small", want: Small},
		{name: "mixed case", input: "mEdIuM", want: Medium},
		{name: "unknown", input: "XL", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseSize(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownSize)
				assert.ErrorIs(t, err, ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestColorAndSize_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Yellow", Yellow.String())
	assert.Equal(t, "Color(0)", Color(0).String())
	assert.Equal(t, "Large", Large.String())
	assert.Equal(t, "Size(9)", Size(9).String())
	assert.False(t, Color(0).Valid())
	assert.False(t, Color(6).Valid())
	assert.False(t, Size(4).Valid())
}

func TestColorAndSize_JSON(t *testing.T) {
	t.Parallel()

	type payload struct {
		Color Color `json:"color"`
		Size  Size  `json:"size"`
	}

	data, err := json.Marshal(payload{Color: Blue, Size: Medium})
	require.NoError(t, err)
	assert.JSONEq(t, `{"color":"Blue","size":"Medium"}`, string(data))

	var decoded payload
	require.NoError(t, json.Unmarshal([]byte(`{"color":"blue","size":"large"}`), &decoded))
	assert.Equal(t, payload{Color: Blue, Size: Large}, decoded)

	err = json.Unmarshal([]byte(`{"color":"purple","size":"large"}`), &decoded)
	assert.ErrorIs(t, err, ErrUnknownColor)

	_, err = json.Marshal(payload{})
	assert.Error(t, err)
}

func TestNewShirt(t *testing.T) {
	t.Parallel()

	shirt, err := NewShirt("Red - Small", Red, Small)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, shirt.ID)
	assert.Equal(t, "Red - Small", shirt.Name)
	assert.Equal(t, Red, shirt.Color)
	assert.Equal(t, Small, shirt.Size)
}

func TestNewShirtWithID_Validation(t *testing.T) {
	t.Parallel()

	id := uuid.New()

	tests := []struct {
		name    string
		id      uuid.UUID
		label   string
		color   Color
		size    Size
		wantErr error
	}{
		{name: "valid", id: id, label: "Blue - Large", color: Blue, size: Large},
		{name: "nil id", id: uuid.Nil, label: "x", color: Blue, size: Large, wantErr: ErrInvalidShirtID},
		{name: "blank name", id: id, label: "   ", color: Blue, size: Large, wantErr: ErrInvalidShirtName},
		{name: "zero color", id: id, label: "x", size: Large, wantErr: ErrUnknownColor},
		{name: "out of range size", id: id, label: "x", color: Blue, size: Size(7), wantErr: ErrUnknownSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			shirt, err := NewShirtWithID(tt.id, tt.label, tt.color, tt.size)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, ErrInvalidArgument)
				assert.Equal(t, Shirt{}, shirt)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.id, shirt.ID)
		})
	}
}
