// Package catalog loads the destination list that feeds the landing page.
// The list is configuration, not data: it is read once at startup and the
// resulting domain.Catalog is never mutated afterwards.
package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/ghodss/yaml"

	"github.com/pkordes/foxico-landing/internal/domain"
)

// defaultYAML is the catalog shipped with the binary.
//
//go:embed default.yaml
var defaultYAML []byte

// Source produces the destination catalog.
// The service layer depends on this interface, which lets tests inject
// fixture catalogs without touching the filesystem.
type Source interface {
	// Load returns the validated catalog. Implementations wrap validation
	// failures with domain.ErrValidation.
	Load(ctx context.Context) (domain.Catalog, error)
}

// document is the on-disk shape of a catalog file.
type document struct {
	Destinations []domain.Destination `json:"destinations"`
}

// yamlSource reads a catalog document in YAML (or JSON, which is a subset).
type yamlSource struct {
	name string
	read func() ([]byte, error)
}

// Default returns the Source for the embedded catalog.
func Default() Source {
	return &yamlSource{
		name: "embedded",
		read: func() ([]byte, error) { return defaultYAML, nil },
	}
}

// FromFile returns a Source that reads the catalog at path on each Load.
func FromFile(path string) Source {
	return &yamlSource{
		name: path,
		read: func() ([]byte, error) { return os.ReadFile(path) },
	}
}

// FromBytes returns a Source over an in-memory YAML document.
func FromBytes(b []byte) Source {
	return &yamlSource{
		name: "inline",
		read: func() ([]byte, error) { return b, nil },
	}
}

// Load reads, decodes and validates the catalog document.
func (s *yamlSource) Load(ctx context.Context) (domain.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return domain.Catalog{}, fmt.Errorf("catalog.Load %s: %w", s.name, err)
	}

	raw, err := s.read()
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("catalog.Load %s: read: %w", s.name, err)
	}

	// ghodss/yaml converts YAML to JSON first, so the json struct tags apply.
	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return domain.Catalog{}, fmt.Errorf("catalog.Load %s: %w: %v", s.name, domain.ErrValidation, err)
	}

	c, err := domain.NewCatalog(doc.Destinations)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("catalog.Load %s: %w", s.name, err)
	}
	return c, nil
}
