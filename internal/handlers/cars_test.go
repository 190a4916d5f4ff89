package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/freeauto/freeauto-backend/internal/middleware"
	"github.com/freeauto/freeauto-backend/internal/models"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }
func numPtr(n int) *int       { return &n }

func sampleCar() *models.Car {
	return &models.Car{
		Title:        "Audi A3 Sportback",
		Description:  "Superbe état, carnet d'entretien complet.",
		Price:        21500,
		Year:         2020,
		Mileage:      45000,
		Brand:        "Audi",
		Model:        "A3",
		Images:       pq.StringArray{"https://res.cloudinary.com/demo/a.jpg"},
		TypeVehicule: strPtr("Berline"),
		Carburant:    strPtr("Essence"),
		Transmission: strPtr("Automatique"),
		Puissance:    numPtr(150),
		Couleur:      strPtr("Gris"),
		Options:      pq.StringArray{"GPS", "Bluetooth"},
		PhoneNumber:  "0791234567",
		City:         strPtr("Lausanne"),
	}
}

func TestViewerGating_AnonymousIsAlwaysGated(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/cars/some-slug", nil)
	gated, showPaywall := viewerGating(r)
	assert.True(t, gated)
	assert.True(t, showPaywall)
}

func TestViewerGating_SkipCookieOnlyHidesPaywall(t *testing.T) {
	// Dismissing the paywall must not reveal gated content; only
	// sign-in does that.
	r := httptest.NewRequest("GET", "/api/cars/some-slug", nil)
	r.AddCookie(&http.Cookie{Name: AuthSkipCookie, Value: "skip"})

	gated, showPaywall := viewerGating(r)
	assert.True(t, gated)
	assert.False(t, showPaywall)
}

func TestViewerGating_SignedInSeesEverything(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/cars/some-slug", nil)
	r = middleware.WithProfile(r, &models.Profile{Role: models.RoleUser})

	gated, showPaywall := viewerGating(r)
	assert.False(t, gated)
	assert.False(t, showPaywall)
}

func TestRedactGated_BlanksDetailFields(t *testing.T) {
	car := sampleCar()
	redactGated(car)

	assert.Equal(t, gatedPlaceholder, car.Description)
	assert.Nil(t, car.TypeVehicule)
	assert.Nil(t, car.Carburant)
	assert.Nil(t, car.Transmission)
	assert.Nil(t, car.Puissance)
	assert.Nil(t, car.Couleur)
	assert.Empty(t, car.Options)
}

func TestRedactGated_KeepsCardFields(t *testing.T) {
	car := sampleCar()
	redactGated(car)

	assert.Equal(t, "Audi A3 Sportback", car.Title)
	assert.Equal(t, 21500, car.Price)
	assert.Equal(t, 2020, car.Year)
	assert.Equal(t, 45000, car.Mileage)
	assert.Equal(t, "Audi", car.Brand)
	assert.Len(t, car.Images, 1)
	assert.Equal(t, "Lausanne", *car.City)
}

func TestCarJSON_NeverCarriesPhoneNumber(t *testing.T) {
	// The phone number must not leak through any listing payload,
	// redacted or not.
	for _, car := range []*models.Car{sampleCar(), func() *models.Car {
		c := sampleCar()
		redactGated(c)
		return c
	}()} {
		body, err := json.Marshal(car)
		assert.NoError(t, err)
		assert.NotContains(t, string(body), "0791234567")
		assert.NotContains(t, string(body), "phone_number")
	}
}

func TestOptionalStr(t *testing.T) {
	assert.Nil(t, optionalStr(""))
	assert.Equal(t, "Garage du Lac", *optionalStr("Garage du Lac"))
}
