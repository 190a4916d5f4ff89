package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasAuthSkip(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/cars/some-slug", nil)
	assert.False(t, HasAuthSkip(r))

	r.AddCookie(&http.Cookie{Name: AuthSkipCookie, Value: "skip"})
	assert.True(t, HasAuthSkip(r))

	// Any other value does not count as a dismissal.
	r2 := httptest.NewRequest("GET", "/", nil)
	r2.AddCookie(&http.Cookie{Name: AuthSkipCookie, Value: "yes"})
	assert.False(t, HasAuthSkip(r2))
}

func TestSkipAuthPaywall_SetsCookie(t *testing.T) {
	w := httptest.NewRecorder()
	SkipAuthPaywall(w, httptest.NewRequest("POST", "/api/prefs/skip-auth", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	assert.Len(t, cookies, 1)
	assert.Equal(t, AuthSkipCookie, cookies[0].Name)
	assert.Equal(t, "skip", cookies[0].Value)
	assert.False(t, cookies[0].Expires.IsZero())
}

func TestClearAuthPaywallSkip_ExpiresCookie(t *testing.T) {
	w := httptest.NewRecorder()
	ClearAuthPaywallSkip(w, httptest.NewRequest("POST", "/api/prefs/clear-auth-skip", nil))

	cookies := w.Result().Cookies()
	assert.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)
	assert.Empty(t, cookies[0].Value)
}

func TestLanguageFromRequest(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	assert.Equal(t, "fr", LanguageFromRequest(r))

	r.AddCookie(&http.Cookie{Name: LanguageCookie, Value: "de"})
	assert.Equal(t, "de", LanguageFromRequest(r))

	// Unsupported languages fall back to the default.
	r2 := httptest.NewRequest("GET", "/", nil)
	r2.AddCookie(&http.Cookie{Name: LanguageCookie, Value: "it"})
	assert.Equal(t, "fr", LanguageFromRequest(r2))
}

func TestSetLanguage(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/api/prefs/language", strings.NewReader(`{"language":"en"}`))
	SetLanguage(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	assert.Len(t, cookies, 1)
	assert.Equal(t, "en", cookies[0].Value)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "en", body["language"])
}

func TestSetLanguage_Unsupported(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/api/prefs/language", strings.NewReader(`{"language":"it"}`))
	SetLanguage(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, w.Result().Cookies())
}
