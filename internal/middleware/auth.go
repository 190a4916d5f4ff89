package middleware

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/freeauto/freeauto-backend/internal/database"
	"github.com/freeauto/freeauto-backend/internal/models"
	"github.com/freeauto/freeauto-backend/internal/services"
)

type contextKey string

const profileKey contextKey = "profile"

// ExtractBearerToken returns the token from an "Authorization: Bearer x" header, or "".
func ExtractBearerToken(header string) string {
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return ""
}

// CurrentProfile returns the authenticated profile stored on the
// request context, or nil for anonymous requests.
func CurrentProfile(r *http.Request) *models.Profile {
	p, _ := r.Context().Value(profileKey).(*models.Profile)
	return p
}

// WithProfile returns a copy of the request carrying the profile, the
// way Session stores it.
func WithProfile(r *http.Request, p *models.Profile) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), profileKey, p))
}

// Session resolves the bearer token into a profile and stores it on the
// context. Anonymous and invalid tokens pass through unauthenticated;
// route guards decide whether that is acceptable.
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := ExtractBearerToken(r.Header.Get("Authorization"))
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		userID, ok, err := services.ValidateSession(token)
		if err != nil || !ok {
			next.ServeHTTP(w, r)
			return
		}

		var profile models.Profile
		err = database.PostgresDB.Get(&profile,
			`SELECT id, email, password_hash, role, banned_until, created_at FROM profiles WHERE id = $1`, userID)
		if err != nil {
			if err != sql.ErrNoRows {
				http.Error(w, "Database error", http.StatusInternalServerError)
				return
			}
			next.ServeHTTP(w, r)
			return
		}

		// A ban that started after sign-in still locks the account out.
		if profile.IsBanned(time.Now()) {
			next.ServeHTTP(w, r)
			return
		}

		// Sliding expiry: every authenticated request restarts the 7-day window.
		if err := services.RefreshSession(token); err != nil {
			log.Printf("WARNING: failed to refresh session: %v", err)
		}

		next.ServeHTTP(w, WithProfile(r, &profile))
	})
}

// RequireAuth rejects anonymous requests with 401.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if CurrentProfile(r) == nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"success":false,"message":"Vous devez être connecté"}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin is the capability check guarding the admin console: the
// caller must hold a valid session whose profile has the admin role.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		profile := CurrentProfile(r)
		if profile == nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"success":false,"message":"Vous devez être connecté"}`))
			return
		}
		if !profile.IsAdmin() {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"success":false,"message":"Accès refusé: vous n'avez pas les droits d'administration"}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}
