package utils

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"BMW Série 3":        "bmw-serie-3",
		"Citroën C4":         "citroen-c4",
		"  Golf   GTI  ":     "golf-gti",
		"Mercedes-Benz E220": "mercedes-benz-e220",
		"Škoda Octavia":      "skoda-octavia",
		"123":                "123",
		"":                   "",
		"---":                "",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), "Slugify(%q)", in)
	}
}

func TestListingSlug_Shape(t *testing.T) {
	slug := ListingSlug("Peugeot", "208", 2022)
	assert.Regexp(t, regexp.MustCompile(`^peugeot-208-2022-\d{4}$`), slug)
}

func TestListingSlug_Disambiguates(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		seen[ListingSlug("Fiat", "500", 2020)] = true
	}
	// 20 draws over 10000 suffixes colliding into one value is
	// effectively impossible.
	assert.Greater(t, len(seen), 1)
	for s := range seen {
		assert.True(t, strings.HasPrefix(s, "fiat-500-2020-"))
	}
}
