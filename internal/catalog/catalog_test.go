package catalog_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/foxico-landing/internal/catalog"
	"github.com/pkordes/foxico-landing/internal/domain"
)

// TestDefault_matchesDefaultDestinations verifies that the embedded catalog and
// the in-code defaults never drift apart.
func TestDefault_matchesDefaultDestinations(t *testing.T) {
	c, err := catalog.Default().Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultDestinations(), c.All())
}

func TestFromBytes_JSONIsAccepted(t *testing.T) {
	doc := []byte(`{"destinations":[{"id":7,"title":"Lombok","image":"/lombok.jpg","rating":4,"link":"/destinations/lombok"}]}`)

	c, err := catalog.FromBytes(doc).Load(context.Background())

	require.NoError(t, err)
	require.Equal(t, 1, c.Len())
	d, err := c.ByID(7)
	require.NoError(t, err)
	assert.Equal(t, "Lombok", d.Title)
	assert.Equal(t, 4, d.Rating)
}

func TestFromBytes_emptyDocument(t *testing.T) {
	c, err := catalog.FromBytes([]byte("destinations: []\n")).Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
}

func TestFromBytes_malformed(t *testing.T) {
	_, err := catalog.FromBytes([]byte("destinations: [\n  - id: [")).Load(context.Background())

	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestFromBytes_invalidDestination(t *testing.T) {
	doc := []byte(`
destinations:
  - id: 1
    title: Nowhere
    link: nowhere
`)
	_, err := catalog.FromBytes(doc).Load(context.Background())

	require.ErrorIs(t, err, domain.ErrValidation)
	assert.ErrorContains(t, err, "link")
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	doc := []byte(`
destinations:
  - id: 1
    title: Raja Ampat
    image: /raja-ampat.jpg
    rating: 5
    link: /destinations/raja-ampat
  - id: 2
    title: Komodo
    image: /komodo.jpg
    rating: 3
    link: /destinations/komodo
`)
	require.NoError(t, os.WriteFile(path, doc, 0o600))

	c, err := catalog.FromFile(path).Load(context.Background())

	require.NoError(t, err)
	require.Equal(t, 2, c.Len())
	assert.Equal(t, "Komodo", c.All()[1].Title)
}

func TestFromFile_missing(t *testing.T) {
	_, err := catalog.FromFile(filepath.Join(t.TempDir(), "absent.yaml")).Load(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_cancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := catalog.Default().Load(ctx)

	require.ErrorIs(t, err, context.Canceled)
}
