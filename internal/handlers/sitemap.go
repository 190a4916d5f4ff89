package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/freeauto/freeauto-backend/internal/database"
	"github.com/freeauto/freeauto-backend/internal/sitemap"
)

var sitemapBaseURL = "https://freeauto.ch"

func InitSitemap(baseURL string) {
	if baseURL != "" {
		sitemapBaseURL = baseURL
	}
}

// SitemapEntries loads the slug and creation time of every listing,
// newest first. Shared by the HTTP route and the sitemap CLI.
func SitemapEntries() ([]sitemap.Entry, error) {
	var rows []struct {
		Slug      *string   `db:"slug"`
		CreatedAt time.Time `db:"created_at"`
	}
	err := database.PostgresDB.Select(&rows,
		`SELECT slug, created_at FROM cars ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}

	entries := make([]sitemap.Entry, 0, len(rows))
	for _, row := range rows {
		if row.Slug == nil {
			continue
		}
		entries = append(entries, sitemap.Entry{Slug: *row.Slug, CreatedAt: row.CreatedAt})
	}
	return entries, nil
}

// ServeSitemap computes and serves the XML sitemap.
func ServeSitemap(w http.ResponseWriter, r *http.Request) {
	entries, err := SitemapEntries()
	if err != nil {
		log.Printf("ERROR: failed to fetch listings for sitemap: %v", err)
		http.Error(w, "Failed to generate sitemap", http.StatusInternalServerError)
		return
	}

	body, err := sitemap.Generate(sitemapBaseURL, entries, time.Now())
	if err != nil {
		log.Printf("ERROR: failed to render sitemap: %v", err)
		http.Error(w, "Failed to generate sitemap", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Write(body)
}
