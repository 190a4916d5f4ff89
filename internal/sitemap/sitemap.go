// Package sitemap renders the public XML sitemap: one entry per
// language for the landing page and one per language per listing.
package sitemap

import (
	"encoding/xml"
	"time"
)

// Languages the site is served in; every public URL exists once per language.
var Languages = []string{"fr", "de", "en"}

// Entry is the listing data the sitemap needs.
type Entry struct {
	Slug      string
	CreatedAt time.Time
}

type urlset struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []urlEntry
}

type urlEntry struct {
	XMLName    xml.Name `xml:"url"`
	Loc        string   `xml:"loc"`
	LastMod    string   `xml:"lastmod"`
	ChangeFreq string   `xml:"changefreq"`
	Priority   string   `xml:"priority"`
}

// Generate renders the sitemap XML for the given listings. baseURL has
// no trailing slash (e.g. https://freeauto.ch). now stamps the static
// pages; listings use their creation time.
func Generate(baseURL string, entries []Entry, now time.Time) ([]byte, error) {
	set := urlset{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}

	for _, lang := range Languages {
		set.URLs = append(set.URLs, urlEntry{
			Loc:        baseURL + "/" + lang,
			LastMod:    now.UTC().Format(time.RFC3339),
			ChangeFreq: "daily",
			Priority:   "1.0",
		})
	}

	for _, e := range entries {
		if e.Slug == "" {
			continue
		}
		for _, lang := range Languages {
			set.URLs = append(set.URLs, urlEntry{
				Loc:        baseURL + "/" + lang + "/ads/" + e.Slug,
				LastMod:    e.CreatedAt.UTC().Format(time.RFC3339),
				ChangeFreq: "weekly",
				Priority:   "0.8",
			})
		}
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}

	return append([]byte(xml.Header), body...), nil
}
