package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelier-labs/stylist-cli/internal/core/domain"
)

// MockCatalogStore implements driven.CatalogStore for CLI tests.
type MockCatalogStore struct {
	BucketFunc func(intent domain.StyleIntent) []domain.Product
	AllFunc    func() []domain.Product
	GetFunc    func(id string) (*domain.Product, error)
}

func (m *MockCatalogStore) Bucket(intent domain.StyleIntent) []domain.Product {
	if m.BucketFunc != nil {
		return m.BucketFunc(intent)
	}
	return nil
}

func (m *MockCatalogStore) All() []domain.Product {
	if m.AllFunc != nil {
		return m.AllFunc()
	}
	return nil
}

func (m *MockCatalogStore) Get(id string) (*domain.Product, error) {
	if m.GetFunc != nil {
		return m.GetFunc(id)
	}
	return nil, domain.ErrNotFound
}

func catalogProducts() []domain.Product {
	return []domain.Product{
		{
			ID: "d1", Name: "Silk Wrap Dress", Price: 395,
			Category: "Dresses", Brand: "MAISON",
			Colors: []string{"Navy", "Black"}, Sizes: []string{"S", "M"},
		},
		{
			ID: "w1", Name: "Wool Blazer", Price: 485,
			Category: "Outerwear", Brand: "POWER",
			Colors: []string{"Navy"}, Sizes: []string{"S", "M", "L"},
		},
	}
}

func execCatalog(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		catalogStyle = ""
		catalogJSON = false
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestCatalogCmd_NotConfigured(t *testing.T) {
	SetCatalogStore(nil)

	_, err := execCatalog(t, "catalog", "list")

	assert.Error(t, err)
}

func TestCatalogList_All(t *testing.T) {
	SetCatalogStore(&MockCatalogStore{AllFunc: catalogProducts})
	defer SetCatalogStore(nil)

	output, err := execCatalog(t, "catalog", "list")

	require.NoError(t, err)
	assert.Contains(t, output, "Silk Wrap Dress")
	assert.Contains(t, output, "Wool Blazer")
	assert.Contains(t, output, "2 products")
}

func TestCatalogList_StyleBucket(t *testing.T) {
	var requested domain.StyleIntent
	SetCatalogStore(&MockCatalogStore{
		BucketFunc: func(intent domain.StyleIntent) []domain.Product {
			requested = intent
			return catalogProducts()[:1]
		},
	})
	defer SetCatalogStore(nil)

	output, err := execCatalog(t, "catalog", "list", "--style", "formal")

	require.NoError(t, err)
	assert.Equal(t, domain.IntentFormal, requested)
	assert.Contains(t, output, "Silk Wrap Dress")
	assert.NotContains(t, output, "Wool Blazer")
}

func TestCatalogList_UnknownStyle(t *testing.T) {
	SetCatalogStore(&MockCatalogStore{})
	defer SetCatalogStore(nil)

	_, err := execCatalog(t, "catalog", "list", "--style", "sporty")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown style")
}

func TestCatalogList_JSON(t *testing.T) {
	SetCatalogStore(&MockCatalogStore{AllFunc: catalogProducts})
	defer SetCatalogStore(nil)

	output, err := execCatalog(t, "catalog", "list", "--json")

	require.NoError(t, err)
	assert.Contains(t, output, `"ID": "d1"`)
}

func TestCatalogShow(t *testing.T) {
	SetCatalogStore(&MockCatalogStore{
		GetFunc: func(id string) (*domain.Product, error) {
			require.Equal(t, "d1", id)
			products := catalogProducts()
			return &products[0], nil
		},
	})
	defer SetCatalogStore(nil)

	output, err := execCatalog(t, "catalog", "show", "d1")

	require.NoError(t, err)
	assert.Contains(t, output, "Silk Wrap Dress")
	assert.Contains(t, output, "MAISON")
	assert.Contains(t, output, "Navy, Black")
}

func TestCatalogShow_NotFound(t *testing.T) {
	SetCatalogStore(&MockCatalogStore{})
	defer SetCatalogStore(nil)

	_, err := execCatalog(t, "catalog", "show", "zzz")

	assert.Error(t, err)
}
