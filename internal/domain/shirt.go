package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidShirtID   = fmt.Errorf("%w: shirt id is required", ErrInvalidArgument)
	ErrInvalidShirtName = fmt.Errorf("%w: shirt name is required", ErrInvalidArgument)
	ErrUnknownColor     = fmt.Errorf("%w: unknown color", ErrInvalidArgument)
	ErrUnknownSize      = fmt.Errorf("%w: unknown size", ErrInvalidArgument)
)

// ErrInvalidArgument is the root of every validation error returned by the catalog and the
// search engine. Use errors.Is to classify.
var ErrInvalidArgument = errors.New("invalid argument")

// Color is a closed enumeration of shirt colors. The zero value is not a valid color.
type Color uint8

const (
	Red Color = iota + 1
	Black
	Blue
	Yellow
	White
)

var allColors = [...]Color{Red, Black, Blue, Yellow, White}

var colorNames = [...]string{
	Red:    "Red",
	Black:  "Black",
	Blue:   "Blue",
	Yellow: "Yellow",
	White:  "White",
}

// AllColors returns every color in canonical order.
func AllColors() []Color {
	out := make([]Color, len(allColors))
	copy(out, allColors[:])
	return out
}

// Valid reports whether c belongs to the color domain.
func (c Color) Valid() bool {
	return c >= Red && c <= White
}

func (c Color) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Color(%d)", uint8(c))
	}
	return colorNames[c]
}

// ParseColor parses a case-insensitive color name.
func ParseColor(s string) (Color, error) {
	name := strings.TrimSpace(s)
	for _, c := range allColors {
		if strings.EqualFold(colorNames[c], name) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownColor, uint8(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Size is a closed enumeration of shirt sizes. The zero value is not a valid size.
type Size uint8

const (
	Small Size = iota + 1
	Medium
	Large
)

var allSizes = [...]Size{Small, Medium, Large}

var sizeNames = [...]string{
	Small:  "Small",
	Medium: "Medium",
	Large:  "Large",
}

// AllSizes returns every size in canonical order.
func AllSizes() []Size {
	out := make([]Size, len(allSizes))
	copy(out, allSizes[:])
	return out
}

// Valid reports whether s belongs to the size domain.
func (s Size) Valid() bool {
	return s >= Small && s <= Large
}

func (s Size) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Size(%d)", uint8(s))
	}
	return sizeNames[s]
}

// ParseSize parses a case-insensitive size name.
func ParseSize(s string) (Size, error) {
	name := strings.TrimSpace(s)
	for _, size := range allSizes {
		if strings.EqualFold(sizeNames[size], name) {
			return size, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSize, s)
}

// MarshalText implements encoding.TextMarshaler.
func (s Size) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSize, uint8(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Size) UnmarshalText(text []byte) error {
	parsed, err := ParseSize(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Shirt represents a catalog item. Shirts are values and are never modified after construction.
type Shirt struct {
	ID    uuid.UUID
	Name  string
	Color Color
	Size  Size
}

// NewShirt creates a new shirt with a random ID
func NewShirt(name string, color Color, size Size) (Shirt, error) {
	return NewShirtWithID(uuid.New(), name, color, size)
}

// NewShirtWithID creates a shirt with a caller supplied ID
func NewShirtWithID(id uuid.UUID, name string, color Color, size Size) (Shirt, error) {
	shirt := Shirt{
		ID:    id,
		Name:  name,
		Color: color,
		Size:  size,
	}

	if err := shirt.Validate(); err != nil {
		return Shirt{}, err
	}

	return shirt, nil
}

// Validate performs business validation on the shirt
func (s Shirt) Validate() error {
	if s.ID == uuid.Nil {
		return ErrInvalidShirtID
	}
	if strings.TrimSpace(s.Name) == "" {
		return ErrInvalidShirtName
	}
	if !s.Color.Valid() {
		return fmt.Errorf("%w: %s", ErrUnknownColor, s.Color)
	}
	if !s.Size.Valid() {
		return fmt.Errorf("%w: %s", ErrUnknownSize, s.Size)
	}
	return nil
}
