// Package apierr maps raw backend errors onto the fixed set of
// user-facing title/description pairs the frontend displays. Matching
// is by Postgres error code first, then by message pattern, with a
// generic fallback for anything unrecognized.
package apierr

import (
	"errors"
	"log"
	"strings"

	"github.com/lib/pq"
)

// UserError is what a failed operation looks like to the user.
type UserError struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

var (
	ErrNetwork = UserError{
		Title:       "Erreur de connexion",
		Description: "Impossible de se connecter au serveur. Veuillez vérifier votre connexion internet et réessayer.",
	}
	ErrDuplicateUser = UserError{
		Title:       "Utilisateur déjà inscrit",
		Description: "Un compte existe déjà avec cette adresse email. Veuillez vous connecter.",
	}
	ErrInvalidCredentials = UserError{
		Title:       "Identifiants incorrects",
		Description: "Email ou mot de passe incorrect. Veuillez réessayer.",
	}
	ErrRateLimited = UserError{
		Title:       "Trop de tentatives",
		Description: "Vous avez effectué trop de tentatives. Veuillez réessayer plus tard.",
	}
	ErrPhoneFormat = UserError{
		Title:       "Numéro de téléphone invalide",
		Description: "Le format du numéro de téléphone est invalide. Utilisez le format 0791234567 ou +41791234567.",
	}
	ErrDatabase = UserError{
		Title:       "Erreur de base de données",
		Description: "Une erreur est survenue lors de l'enregistrement. Veuillez réessayer plus tard.",
	}
	ErrUnexpected = UserError{
		Title:       "Erreur",
		Description: "Une erreur inattendue est survenue",
	}
)

// Postgres error codes we translate specifically.
const (
	pgUniqueViolation = "23505"
	pgCheckViolation  = "23514"
)

// Map translates err into its user-facing form. Every mapped error is
// also logged for diagnostics.
func Map(err error) UserError {
	if err == nil {
		return ErrUnexpected
	}
	log.Printf("backend error: %v", err)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pgUniqueViolation:
			if strings.Contains(pqErr.Constraint, "email") {
				return ErrDuplicateUser
			}
			return ErrDatabase
		case pgCheckViolation:
			if strings.Contains(pqErr.Constraint, "phone_number") {
				return ErrPhoneFormat
			}
			return ErrDatabase
		}
		return ErrDatabase
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "connection refused"),
		strings.Contains(msg, "no such host"),
		strings.Contains(msg, "i/o timeout"):
		return ErrNetwork
	case strings.Contains(msg, "already registered"),
		strings.Contains(msg, "already exists"):
		return ErrDuplicateUser
	case strings.Contains(msg, "invalid credentials"),
		strings.Contains(msg, "invalid email or password"):
		return ErrInvalidCredentials
	case strings.Contains(msg, "rate limit"):
		return ErrRateLimited
	case strings.Contains(msg, "phone_number"):
		return ErrPhoneFormat
	case strings.Contains(msg, "database"):
		return ErrDatabase
	}

	return ErrUnexpected
}
