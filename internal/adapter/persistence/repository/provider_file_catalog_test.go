package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"rawasi_matching/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scrapedCatalog = `[
  {"name": "Al Bena Contracting", "city": "Jeddah", "phone": "0500000000", "website": null, "url": "https://example.test/p/1", "logo": null},
  {"name": "  ", "city": "Riyadh"},
  {"name": "Al Bena Contracting", "city": "Dammam"},
  {"id": "prv-x", "name": "Xcel Build", "location": "Riyadh", "rating": 4.1, "tech": ["BIM"], "timelineSpeed": 0.9}
]`

func TestParseProviders(t *testing.T) {
	providers, err := ParseProviders([]byte(scrapedCatalog))
	require.NoError(t, err)
	require.Len(t, providers, 2)

	scraped := providers[0]
	assert.Equal(t, "Al Bena Contracting", scraped.Name)
	assert.Equal(t, "Jeddah", scraped.Location)
	assert.Equal(t, ProviderIDFromName("Al Bena Contracting"), scraped.ID)
	assert.Equal(t, "0500000000", scraped.Phone)
	assert.Empty(t, scraped.Website)
	assert.Equal(t, 1.0, scraped.TimelineSpeed)
	assert.NotNil(t, scraped.Tech)
	assert.NotNil(t, scraped.Photos)

	assert.Equal(t, "prv-x", providers[1].ID)
	assert.Equal(t, []string{"BIM"}, providers[1].Tech)

	_, err = ParseProviders([]byte(`{"name":"not an array"}`))
	assert.Error(t, err)
}

func TestProviderIDFromName_Stable(t *testing.T) {
	assert.Equal(t, ProviderIDFromName("A"), ProviderIDFromName("A"))
	assert.NotEqual(t, ProviderIDFromName("A"), ProviderIDFromName("B"))
}

func TestNewFileProviderCatalog(t *testing.T) {
	ctx := context.Background()

	t.Run("no path serves demo providers", func(t *testing.T) {
		c := NewFileProviderCatalog("", nil)
		assert.Equal(t, interfaces.CatalogSourceFallback, c.Source())
		providers, err := c.List(ctx)
		require.NoError(t, err)
		require.Len(t, providers, 4)
		assert.Equal(t, "prv-neo", providers[0].ID)
	})

	t.Run("missing file falls back", func(t *testing.T) {
		c := NewFileProviderCatalog(filepath.Join(t.TempDir(), "missing.json"), nil)
		assert.Equal(t, interfaces.CatalogSourceFallback, c.Source())
	})

	t.Run("empty file falls back", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "providers.json")
		require.NoError(t, os.WriteFile(path, []byte("[]"), 0o600))
		c := NewFileProviderCatalog(path, nil)
		assert.Equal(t, interfaces.CatalogSourceFallback, c.Source())
	})

	t.Run("loads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "providers.json")
		require.NoError(t, os.WriteFile(path, []byte(scrapedCatalog), 0o600))

		c := NewFileProviderCatalog(path, nil)
		assert.Equal(t, interfaces.CatalogSourceFile, c.Source())
		providers, err := c.List(ctx)
		require.NoError(t, err)
		assert.Len(t, providers, 2)
	})

	t.Run("list returns a copy", func(t *testing.T) {
		c := NewFallbackProviderCatalog()
		first, _ := c.List(ctx)
		first[0].Name = "changed"
		second, _ := c.List(ctx)
		assert.Equal(t, "NeoBuild Technologies", second[0].Name)
	})
}
