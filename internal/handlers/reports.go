package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/freeauto/freeauto-backend/internal/apierr"
	"github.com/freeauto/freeauto-backend/internal/database"
	"github.com/freeauto/freeauto-backend/internal/middleware"
	"github.com/freeauto/freeauto-backend/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type ReportRequest struct {
	Reason  string `json:"reason"`
	Details string `json:"details,omitempty"`
}

// ReportCar files an abuse report against a listing. Any authenticated
// user may report; the same listing can be reported any number of
// times, by the same user included.
func ReportCar(w http.ResponseWriter, r *http.Request) {
	profile := middleware.CurrentProfile(r)
	carID := chi.URLParam(r, "id")
	if _, err := uuid.Parse(carID); err != nil {
		http.Error(w, "Invalid listing ID", http.StatusBadRequest)
		return
	}

	var req ReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if !models.ValidReportReason(req.Reason) {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false, "message": "Raison de signalement invalide",
		})
		return
	}

	// The listing must exist; reports reference it by foreign key.
	var exists bool
	err := database.PostgresDB.Get(&exists, `SELECT EXISTS(SELECT 1 FROM cars WHERE id = $1)`, carID)
	if err != nil && err != sql.ErrNoRows {
		e := apierr.Map(err)
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"success": false, "message": e.Title, "error": e,
		})
		return
	}
	if !exists {
		writeJSON(w, http.StatusNotFound, map[string]interface{}{
			"success": false, "message": "Annonce introuvable",
		})
		return
	}

	var details *string
	if d := strings.TrimSpace(req.Details); d != "" {
		details = &d
	}

	_, err = database.PostgresDB.Exec(`
		INSERT INTO car_reports (id, car_id, reporter_id, reason, details, status, created_at)
		VALUES ($1, $2, $3, $4, $5, 'pending', $6)
	`, uuid.New(), carID, profile.ID, req.Reason, details, time.Now())
	if err != nil {
		e := apierr.Map(err)
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"success": false, "message": e.Title, "error": e,
		})
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Signalement envoyé. Merci de contribuer à la sécurité de la plateforme.",
	})
}
