package sampledata

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/mrops-br/shirt-search-api/internal/domain"
)

// catalogFile is the on-disk catalog layout. JSON documents are accepted as well since
// they are valid YAML.
type catalogFile struct {
	Shirts []shirtEntry `yaml:"shirts"`
}

type shirtEntry struct {
	// ID is optional; a random one is assigned when empty
	ID    string `yaml:"id,omitempty"`
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
	Size  string `yaml:"size"`
}

// LoadFile reads a catalog from a YAML or JSON file, preserving the order of its entries.
func LoadFile(path string) ([]domain.Shirt, error) {
	if path == "" {
		return nil, fmt.Errorf("catalog file path is required")
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	return Parse(data)
}

// Parse decodes a catalog document.
func Parse(data []byte) ([]domain.Shirt, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	shirts := make([]domain.Shirt, 0, len(file.Shirts))
	for i, entry := range file.Shirts {
		shirt, err := entry.toShirt()
		if err != nil {
			return nil, fmt.Errorf("catalog entry %d: %w", i, err)
		}
		shirts = append(shirts, shirt)
	}

	return shirts, nil
}

func (e shirtEntry) toShirt() (domain.Shirt, error) {
	color, err := domain.ParseColor(e.Color)
	if err != nil {
		return domain.Shirt{}, err
	}
	size, err := domain.ParseSize(e.Size)
	if err != nil {
		return domain.Shirt{}, err
	}

	if e.ID == "" {
		return domain.NewShirt(e.Name, color, size)
	}

	id, err := uuid.Parse(e.ID)
	if err != nil {
		return domain.Shirt{}, fmt.Errorf("%w: invalid shirt id %q: %w", domain.ErrInvalidArgument, e.ID, err)
	}
	return domain.NewShirtWithID(id, e.Name, color, size)
}
