package sitemap

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerate_StaticPagesOnly(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	body, err := Generate("https://freeauto.ch", nil, now)

	assert.NoError(t, err)
	out := string(body)
	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Equal(t, 3, strings.Count(out, "<url>"))
	assert.Contains(t, out, "<loc>https://freeauto.ch/fr</loc>")
	assert.Contains(t, out, "<loc>https://freeauto.ch/de</loc>")
	assert.Contains(t, out, "<loc>https://freeauto.ch/en</loc>")
	assert.Contains(t, out, "<changefreq>daily</changefreq>")
	assert.Contains(t, out, "<priority>1.0</priority>")
	assert.Contains(t, out, "<lastmod>2025-06-01T12:00:00Z</lastmod>")
}

func TestGenerate_ListingURLsPerLanguage(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	entries := []Entry{
		{Slug: "bmw-320d-2018-4821", CreatedAt: time.Date(2025, 3, 10, 8, 30, 0, 0, time.UTC)},
		{Slug: "renault-clio-2021-0917", CreatedAt: time.Date(2025, 5, 2, 14, 0, 0, 0, time.UTC)},
	}

	body, err := Generate("https://freeauto.ch", entries, now)
	assert.NoError(t, err)

	out := string(body)
	// 3 static pages plus 2 listings x 3 languages.
	assert.Equal(t, 9, strings.Count(out, "<url>"))
	for _, lang := range Languages {
		assert.Contains(t, out, "<loc>https://freeauto.ch/"+lang+"/ads/bmw-320d-2018-4821</loc>")
		assert.Contains(t, out, "<loc>https://freeauto.ch/"+lang+"/ads/renault-clio-2021-0917</loc>")
	}
	assert.Contains(t, out, "<lastmod>2025-03-10T08:30:00Z</lastmod>")
	assert.Contains(t, out, "<changefreq>weekly</changefreq>")
	assert.Contains(t, out, "<priority>0.8</priority>")
}

func TestGenerate_SkipsEmptySlugs(t *testing.T) {
	entries := []Entry{{Slug: "", CreatedAt: time.Now()}}
	body, err := Generate("https://freeauto.ch", entries, time.Now())

	assert.NoError(t, err)
	assert.Equal(t, 3, strings.Count(string(body), "<url>"))
}
