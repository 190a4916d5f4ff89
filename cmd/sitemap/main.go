// Command sitemap regenerates sitemap.xml from the current listings and
// exits. Run it as a build step.
package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/freeauto/freeauto-backend/internal/config"
	"github.com/freeauto/freeauto-backend/internal/database"
	"github.com/freeauto/freeauto-backend/internal/handlers"
	"github.com/freeauto/freeauto-backend/internal/sitemap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.Load()

	if err := database.ConnectPostgres(cfg.PostgresURI); err != nil {
		log.Fatal("Failed to connect to PostgreSQL:", err)
	}
	defer database.DisconnectPostgres()

	entries, err := handlers.SitemapEntries()
	if err != nil {
		log.Fatal("Failed to fetch listings:", err)
	}

	body, err := sitemap.Generate(cfg.SiteURL, entries, time.Now())
	if err != nil {
		log.Fatal("Failed to render sitemap:", err)
	}

	if err := os.WriteFile("sitemap.xml", body, 0644); err != nil {
		log.Fatal("Failed to write sitemap.xml:", err)
	}

	log.Printf("✅ sitemap.xml written (%d listings, %d languages)", len(entries), len(sitemap.Languages))
}
