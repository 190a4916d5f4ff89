package handlers

import (
	"encoding/json"
	"net/http"
	"time"
)

const (
	// AuthSkipCookie remembers an anonymous viewer's choice to dismiss
	// the sign-in paywall.
	AuthSkipCookie = "auth_preference"
	// AuthSkipDays is how long the dismissal holds before the paywall
	// may reappear.
	AuthSkipDays = 30

	// LanguageCookie persists the viewer's language across sessions.
	LanguageCookie  = "lang"
	DefaultLanguage = "fr"
)

var supportedLanguages = map[string]bool{"fr": true, "de": true, "en": true}

// HasAuthSkip reports whether the request carries a live paywall-skip
// preference. Expiry is the cookie's own; an expired cookie is simply
// not sent back by the browser.
func HasAuthSkip(r *http.Request) bool {
	c, err := r.Cookie(AuthSkipCookie)
	return err == nil && c.Value == "skip"
}

// LanguageFromRequest returns the persisted language or the default.
func LanguageFromRequest(r *http.Request) string {
	if c, err := r.Cookie(LanguageCookie); err == nil && supportedLanguages[c.Value] {
		return c.Value
	}
	return DefaultLanguage
}

// SkipAuthPaywall records the viewer's choice to browse without
// signing in, for 30 days.
func SkipAuthPaywall(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     AuthSkipCookie,
		Value:    "skip",
		Path:     "/",
		Expires:  time.Now().AddDate(0, 0, AuthSkipDays),
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

// ClearAuthPaywallSkip drops the preference so the paywall reappears on
// the next anonymous visit.
func ClearAuthPaywallSkip(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:    AuthSkipCookie,
		Value:   "",
		Path:    "/",
		Expires: time.Unix(0, 0),
		MaxAge:  -1,
	})
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

type languageRequest struct {
	Language string `json:"language"`
}

// SetLanguage persists the viewer's language preference (fr, de or en).
func SetLanguage(w http.ResponseWriter, r *http.Request) {
	var req languageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if !supportedLanguages[req.Language] {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false, "message": "Langue non supportée",
		})
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     LanguageCookie,
		Value:    req.Language,
		Path:     "/",
		Expires:  time.Now().AddDate(1, 0, 0),
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"language": req.Language,
	})
}
