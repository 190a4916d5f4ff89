package handlers

import (
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/freeauto/freeauto-backend/internal/apierr"
	"github.com/freeauto/freeauto-backend/internal/database"
	"github.com/freeauto/freeauto-backend/internal/middleware"
	"github.com/freeauto/freeauto-backend/internal/models"
	"github.com/freeauto/freeauto-backend/internal/services"
	"github.com/freeauto/freeauto-backend/pkg/utils"
	"github.com/google/uuid"
)

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is the shape of every auth endpoint reply.
type AuthResponse struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message,omitempty"`
	Error   *apierr.UserError      `json:"error,omitempty"`
	User    map[string]interface{} `json:"user,omitempty"`
	Token   string                 `json:"token,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// signupStatus maps a signup failure to its HTTP status. A duplicate is
// a conflict whether the pre-check caught it or a concurrent signup
// slipped past and hit the unique constraint.
func signupStatus(e apierr.UserError) int {
	if e == apierr.ErrDuplicateUser {
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// Signup handles email/password registration
func Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		writeJSON(w, http.StatusBadRequest, AuthResponse{Success: false, Message: "Adresse email invalide"})
		return
	}
	if len(req.Password) < 8 {
		writeJSON(w, http.StatusBadRequest, AuthResponse{Success: false, Message: "Le mot de passe doit contenir au moins 8 caractères"})
		return
	}

	// Check if user already exists
	var existingEmail string
	err := database.PostgresDB.QueryRow("SELECT email FROM profiles WHERE email = $1", req.Email).Scan(&existingEmail)
	if err == nil {
		e := apierr.ErrDuplicateUser
		writeJSON(w, http.StatusConflict, AuthResponse{Success: false, Message: e.Title, Error: &e})
		return
	} else if err != sql.ErrNoRows {
		e := apierr.Map(err)
		writeJSON(w, http.StatusInternalServerError, AuthResponse{Success: false, Message: e.Title, Error: &e})
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		http.Error(w, "Failed to hash password", http.StatusInternalServerError)
		return
	}

	userID := uuid.New()
	now := time.Now()
	_, err = database.PostgresDB.Exec(`
		INSERT INTO profiles (id, email, password_hash, role, created_at)
		VALUES ($1, $2, $3, 'user', $4)
	`, userID, req.Email, hashedPassword, now)
	if err != nil {
		e := apierr.Map(err)
		writeJSON(w, signupStatus(e), AuthResponse{Success: false, Message: e.Title, Error: &e})
		return
	}

	token, err := services.CreateSession(userID)
	if err != nil {
		log.Printf("ERROR: failed to create session after signup: %v", err)
		writeJSON(w, http.StatusCreated, AuthResponse{
			Success: true,
			Message: "Compte créé, veuillez vous connecter",
		})
		return
	}

	writeJSON(w, http.StatusCreated, AuthResponse{
		Success: true,
		Message: "Compte créé avec succès",
		Token:   token,
		User: map[string]interface{}{
			"id":         userID.String(),
			"email":      req.Email,
			"role":       models.RoleUser,
			"created_at": now,
		},
	})
}

// Signin handles email/password login
func Signin(w http.ResponseWriter, r *http.Request) {
	var req SigninRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, AuthResponse{Success: false, Message: "Email et mot de passe sont requis"})
		return
	}

	var profile models.Profile
	err := database.PostgresDB.Get(&profile,
		`SELECT id, email, password_hash, role, banned_until, created_at FROM profiles WHERE email = $1`, req.Email)
	if err != nil {
		if err == sql.ErrNoRows {
			e := apierr.ErrInvalidCredentials
			writeJSON(w, http.StatusUnauthorized, AuthResponse{Success: false, Message: e.Title, Error: &e})
		} else {
			e := apierr.Map(err)
			writeJSON(w, http.StatusInternalServerError, AuthResponse{Success: false, Message: e.Title, Error: &e})
		}
		return
	}

	valid, err := utils.VerifyPassword(req.Password, profile.PasswordHash)
	if err != nil || !valid {
		e := apierr.ErrInvalidCredentials
		writeJSON(w, http.StatusUnauthorized, AuthResponse{Success: false, Message: e.Title, Error: &e})
		return
	}

	if profile.IsBanned(time.Now()) {
		writeJSON(w, http.StatusForbidden, AuthResponse{
			Success: false,
			Message: "Votre compte est suspendu jusqu'au " + profile.BannedUntil.Format("02.01.2006"),
		})
		return
	}

	token, err := services.CreateSession(profile.ID)
	if err != nil {
		e := apierr.Map(err)
		writeJSON(w, http.StatusInternalServerError, AuthResponse{Success: false, Message: e.Title, Error: &e})
		return
	}

	writeJSON(w, http.StatusOK, AuthResponse{
		Success: true,
		Message: "Connexion réussie",
		Token:   token,
		User: map[string]interface{}{
			"id":         profile.ID.String(),
			"email":      profile.Email,
			"role":       profile.Role,
			"created_at": profile.CreatedAt,
		},
	})
}

// Signout invalidates the caller's session. Always succeeds.
func Signout(w http.ResponseWriter, r *http.Request) {
	token := middleware.ExtractBearerToken(r.Header.Get("Authorization"))
	if token != "" {
		if err := services.InvalidateSession(token); err != nil {
			log.Printf("ERROR: failed to invalidate session: %v", err)
		}
	}
	writeJSON(w, http.StatusOK, AuthResponse{Success: true, Message: "Déconnexion réussie"})
}

// GetMe returns the current session's profile, including the admin
// capability so clients can gate privileged UI.
func GetMe(w http.ResponseWriter, r *http.Request) {
	profile := middleware.CurrentProfile(r)
	if profile == nil {
		writeJSON(w, http.StatusUnauthorized, AuthResponse{Success: false, Message: "Non connecté"})
		return
	}

	writeJSON(w, http.StatusOK, AuthResponse{
		Success: true,
		User: map[string]interface{}{
			"id":         profile.ID.String(),
			"email":      profile.Email,
			"role":       profile.Role,
			"is_admin":   profile.IsAdmin(),
			"created_at": profile.CreatedAt,
		},
	})
}
