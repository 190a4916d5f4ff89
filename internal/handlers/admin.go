package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/freeauto/freeauto-backend/internal/apierr"
	"github.com/freeauto/freeauto-backend/internal/database"
	"github.com/freeauto/freeauto-backend/internal/middleware"
	"github.com/freeauto/freeauto-backend/internal/models"
	"github.com/freeauto/freeauto-backend/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Ban durations offered by the console, in days.
var allowedBanDays = map[int]bool{1: true, 7: true, 30: true}

func adminError(w http.ResponseWriter, err error) {
	e := apierr.Map(err)
	writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
		"success": false, "message": e.Title, "error": e,
	})
}

// GetUsers returns every profile, newest first, email included (the
// console searches and acts on accounts by email).
func GetUsers(w http.ResponseWriter, r *http.Request) {
	var users []models.Profile
	err := database.PostgresDB.Select(&users,
		`SELECT id, email, password_hash, role, banned_until, created_at FROM profiles ORDER BY created_at DESC`)
	if err != nil {
		adminError(w, err)
		return
	}

	list := make([]map[string]interface{}, len(users))
	for i, u := range users {
		list[i] = map[string]interface{}{
			"id":           u.ID.String(),
			"email":        u.Email,
			"role":         u.Role,
			"banned_until": u.BannedUntil,
			"created_at":   u.CreatedAt,
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"users":   list,
		"count":   len(list),
	})
}

type banRequest struct {
	Days int `json:"days"`
}

// BanUser sets a future ban-until timestamp (1, 7 or 30 days) and kills
// the target's active session so the ban bites immediately.
func BanUser(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	var req banRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if !allowedBanDays[req.Days] {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false, "message": "Durée de bannissement invalide (1, 7 ou 30 jours)",
		})
		return
	}

	bannedUntil := time.Now().AddDate(0, 0, req.Days)
	result, err := database.PostgresDB.Exec(
		`UPDATE profiles SET banned_until = $1 WHERE id = $2`, bannedUntil, userID)
	if err != nil {
		adminError(w, err)
		return
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		writeJSON(w, http.StatusNotFound, map[string]interface{}{
			"success": false, "message": "Utilisateur introuvable",
		})
		return
	}

	if err := services.InvalidateUserSessions(userID); err != nil {
		log.Printf("WARNING: failed to invalidate sessions for banned user %s: %v", userID, err)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":      true,
		"message":      "Utilisateur banni",
		"banned_until": bannedUntil,
	})
}

// UnbanUser clears the ban-until timestamp.
func UnbanUser(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	result, err := database.PostgresDB.Exec(
		`UPDATE profiles SET banned_until = NULL WHERE id = $1`, userID)
	if err != nil {
		adminError(w, err)
		return
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		writeJSON(w, http.StatusNotFound, map[string]interface{}{
			"success": false, "message": "Utilisateur introuvable",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Utilisateur débanni",
	})
}

type roleRequest struct {
	Role string `json:"role"`
}

// SetUserRole toggles a profile between user and admin.
func SetUserRole(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	var req roleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Role != models.RoleUser && req.Role != models.RoleAdmin {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false, "message": "Rôle invalide",
		})
		return
	}

	result, err := database.PostgresDB.Exec(
		`UPDATE profiles SET role = $1 WHERE id = $2`, req.Role, userID)
	if err != nil {
		adminError(w, err)
		return
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		writeJSON(w, http.StatusNotFound, map[string]interface{}{
			"success": false, "message": "Utilisateur introuvable",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Rôle modifié",
		"role":    req.Role,
	})
}

// AdminGetCars returns every listing for the console's listings tab.
func AdminGetCars(w http.ResponseWriter, r *http.Request) {
	var cars []models.Car
	err := database.PostgresDB.Select(&cars,
		`SELECT `+carColumns+` FROM cars ORDER BY created_at DESC`)
	if err != nil {
		adminError(w, err)
		return
	}

	if cars == nil {
		cars = []models.Car{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"cars":    cars,
		"count":   len(cars),
	})
}

// AdminDeleteCar removes any listing, regardless of owner. Irreversible.
func AdminDeleteCar(w http.ResponseWriter, r *http.Request) {
	carID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid listing ID", http.StatusBadRequest)
		return
	}

	result, err := database.PostgresDB.Exec(`DELETE FROM cars WHERE id = $1`, carID)
	if err != nil {
		adminError(w, err)
		return
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		writeJSON(w, http.StatusNotFound, map[string]interface{}{
			"success": false, "message": "Annonce introuvable",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Annonce supprimée avec succès",
	})
}

// GetReports returns every report, newest first.
func GetReports(w http.ResponseWriter, r *http.Request) {
	var reports []models.CarReport
	err := database.PostgresDB.Select(&reports,
		`SELECT id, car_id, reporter_id, reason, details, status, created_at, resolved_at, resolved_by
		 FROM car_reports ORDER BY created_at DESC`)
	if err != nil {
		adminError(w, err)
		return
	}

	if reports == nil {
		reports = []models.CarReport{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"reports": reports,
		"count":   len(reports),
	})
}

// GetPendingReportsCount backs the console's badge.
func GetPendingReportsCount(w http.ResponseWriter, r *http.Request) {
	var count int
	err := database.PostgresDB.Get(&count,
		`SELECT COUNT(*) FROM car_reports WHERE status = 'pending'`)
	if err != nil {
		adminError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"count":   count,
	})
}

// closeReport transitions a pending report to a terminal status. The
// WHERE clause is the guard: resolving an already-closed report matches
// no row and returns a conflict.
func closeReport(w http.ResponseWriter, r *http.Request, status string) {
	admin := middleware.CurrentProfile(r)
	reportID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid report ID", http.StatusBadRequest)
		return
	}

	result, err := database.PostgresDB.Exec(`
		UPDATE car_reports SET status = $1, resolved_at = $2, resolved_by = $3
		WHERE id = $4 AND status = 'pending'
	`, status, time.Now(), admin.ID, reportID)
	if err != nil {
		adminError(w, err)
		return
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		writeJSON(w, http.StatusConflict, map[string]interface{}{
			"success": false, "message": "Ce signalement n'est plus en attente",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Signalement traité",
		"status":  status,
	})
}

// ResolveReport marks a pending report resolved.
func ResolveReport(w http.ResponseWriter, r *http.Request) {
	closeReport(w, r, models.ReportStatusResolved)
}

// DismissReport marks a pending report dismissed.
func DismissReport(w http.ResponseWriter, r *http.Request) {
	closeReport(w, r, models.ReportStatusDismissed)
}
