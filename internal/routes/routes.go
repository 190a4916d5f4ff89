package routes

import (
	"net/http"

	"github.com/freeauto/freeauto-backend/internal/handlers"
	"github.com/freeauto/freeauto-backend/internal/middleware"
	"github.com/go-chi/chi/v5"
)

func SetupRoutes(r *chi.Mux) {
	// Every route sees the session middleware; guards are per-group.
	r.Use(middleware.Session)

	// Auth routes
	r.Post("/api/auth/signup", handlers.Signup)
	r.Post("/api/auth/signin", handlers.Signin)
	r.Post("/api/auth/signout", handlers.Signout)
	r.Get("/api/auth/me", handlers.GetMe)

	// Public listing feed and detail
	r.Get("/api/cars", handlers.ListCars)
	r.Get("/api/cars/{id}", handlers.GetCar)

	// Vocabularies and client preferences
	r.Get("/api/meta", handlers.GetMeta)
	r.Post("/api/prefs/language", handlers.SetLanguage)
	r.Post("/api/prefs/auth-skip", handlers.SkipAuthPaywall)
	r.Delete("/api/prefs/auth-skip", handlers.ClearAuthPaywallSkip)

	// External lookup proxies
	r.Get("/api/lookup/cities", handlers.SearchCities)
	r.Get("/api/lookup/vehicles", handlers.SearchVehicles)

	// Sitemap
	r.Get("/sitemap.xml", handlers.ServeSitemap)

	// Authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)

		r.Get("/api/cars/{id}/phone", handlers.RevealPhone)
		r.Post("/api/cars", handlers.CreateCar)
		r.Put("/api/cars/{id}", handlers.UpdateCar)
		r.Delete("/api/cars/{id}", handlers.DeleteCar)
		r.Get("/api/my/cars", handlers.MyCars)
		r.Post("/api/upload", handlers.UploadImages)
		r.Post("/api/cars/{id}/report", handlers.ReportCar)
	})

	// Admin console routes (capability check before anything renders)
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAdmin)

		r.Get("/api/admin/users", handlers.GetUsers)
		r.Put("/api/admin/users/{id}/ban", handlers.BanUser)
		r.Put("/api/admin/users/{id}/unban", handlers.UnbanUser)
		r.Put("/api/admin/users/{id}/role", handlers.SetUserRole)
		r.Get("/api/admin/cars", handlers.AdminGetCars)
		r.Delete("/api/admin/cars/{id}", handlers.AdminDeleteCar)
		r.Get("/api/admin/reports", handlers.GetReports)
		r.Get("/api/admin/reports/pending-count", handlers.GetPendingReportsCount)
		r.Put("/api/admin/reports/{id}/resolve", handlers.ResolveReport)
		r.Put("/api/admin/reports/{id}/dismiss", handlers.DismissReport)
	})

	// Unmatched routes render a JSON 404
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"success":false,"message":"Page introuvable"}`))
	})
}
