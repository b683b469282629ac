package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelier-labs/stylist-cli/internal/core/domain"
)

func TestCatalogStore_BucketSizes(t *testing.T) {
	s := NewCatalogStore()

	assert.Len(t, s.Bucket(domain.IntentFormal), 15)
	assert.Len(t, s.Bucket(domain.IntentCasual), 14)
	assert.Len(t, s.Bucket(domain.IntentWork), 14)
	assert.Len(t, s.All(), 43)
}

func TestCatalogStore_DefaultBucketIsCappedUnion(t *testing.T) {
	s := NewCatalogStore()

	def := s.Bucket(domain.IntentDefault)

	// Union is under the cap, so the default bucket is the whole union
	// in bucket order: dresses, then casual, then work.
	require.Len(t, def, 43)
	assert.Equal(t, "d1", def[0].ID)
	assert.Equal(t, "c1", def[15].ID)
	assert.Equal(t, "w1", def[29].ID)
}

func TestCatalogStore_UnknownIntentFallsBackToDefault(t *testing.T) {
	s := NewCatalogStore()

	assert.Equal(t, s.Bucket(domain.IntentDefault), s.Bucket(domain.StyleIntent("bogus")))
}

func TestCatalogStore_Get(t *testing.T) {
	s := NewCatalogStore()

	p, err := s.Get("w14")
	require.NoError(t, err)
	assert.Equal(t, "Leather Briefcase", p.Name)
	assert.Equal(t, "EXECUTIVE", p.Brand)

	_, err = s.Get("nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCatalogStore_UniqueIDs(t *testing.T) {
	s := NewCatalogStore()

	seen := make(map[string]bool)
	for _, p := range s.All() {
		assert.False(t, seen[p.ID], "duplicate product ID %s", p.ID)
		seen[p.ID] = true
	}
}

func TestCatalogStore_ProductsAreWellFormed(t *testing.T) {
	s := NewCatalogStore()

	for _, p := range s.All() {
		assert.NotEmpty(t, p.Name, "product %s", p.ID)
		assert.Greater(t, p.Price, 0.0, "product %s", p.ID)
		assert.NotEmpty(t, p.Category, "product %s", p.ID)
		assert.NotEmpty(t, p.Brand, "product %s", p.ID)
		assert.NotEmpty(t, p.Colors, "product %s", p.ID)
		assert.NotEmpty(t, p.Sizes, "product %s", p.ID)
		assert.NotEmpty(t, p.Retailers, "product %s", p.ID)
	}
}
