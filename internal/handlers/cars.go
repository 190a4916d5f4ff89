package handlers

import (
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/freeauto/freeauto-backend/internal/apierr"
	"github.com/freeauto/freeauto-backend/internal/database"
	"github.com/freeauto/freeauto-backend/internal/middleware"
	"github.com/freeauto/freeauto-backend/internal/models"
	"github.com/freeauto/freeauto-backend/internal/query"
	"github.com/freeauto/freeauto-backend/internal/wizard"
	"github.com/freeauto/freeauto-backend/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

const carColumns = `id, created_at, user_id, title, description, price, year, mileage, brand, model,
	images, type_vehicule, carburant, transmission, puissance, cylindree, portes, places, couleur,
	consommation, premiere_main, expertisee, is_professional, company_name, phone_number, city,
	location, garantie, options, slug`

// fullSearchExpr recomputes the french full-text index from the fields
// buyers actually search on.
const fullSearchExpr = `to_tsvector('french',
	coalesce(title, '') || ' ' || coalesce(description, '') || ' ' ||
	coalesce(brand, '') || ' ' || coalesce(model, '') || ' ' || coalesce(city, ''))`

// ListCars is the listing feed: every populated filter predicate is
// applied conjunctively, newest first, with an exact total count.
func ListCars(w http.ResponseWriter, r *http.Request) {
	filter := query.FromValues(r.URL.Query())
	where, args := query.Build(filter)

	selectSQL := `SELECT ` + carColumns + ` FROM cars`
	countSQL := `SELECT COUNT(*) FROM cars`
	if where != "" {
		selectSQL += " WHERE " + where
		countSQL += " WHERE " + where
	}
	selectSQL += " ORDER BY created_at DESC"

	var cars []models.Car
	if err := database.PostgresDB.Select(&cars, selectSQL, args...); err != nil {
		log.Printf("ERROR: failed to fetch cars: %v", err)
		e := apierr.Map(err)
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"success": false, "message": e.Title, "error": e,
		})
		return
	}

	var count int
	if err := database.PostgresDB.Get(&count, countSQL, args...); err != nil {
		log.Printf("ERROR: failed to count cars: %v", err)
		count = len(cars)
	}

	if cars == nil {
		cars = []models.Car{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"cars":    cars,
		"count":   count,
	})
}

// getCarByRef fetches a listing by UUID or by slug.
func getCarByRef(ref string) (*models.Car, error) {
	var car models.Car
	var err error
	if _, parseErr := uuid.Parse(ref); parseErr == nil {
		err = database.PostgresDB.Get(&car, `SELECT `+carColumns+` FROM cars WHERE id = $1`, ref)
	} else {
		err = database.PostgresDB.Get(&car, `SELECT `+carColumns+` FROM cars WHERE slug = $1`, ref)
	}
	if err != nil {
		return nil, err
	}
	return &car, nil
}

const gatedPlaceholder = "Connectez-vous pour voir ce contenu"

// redactGated blanks the detail fields that stay behind the sign-in
// gate for anonymous viewers. Card-level fields remain visible.
func redactGated(car *models.Car) {
	car.Description = gatedPlaceholder
	car.TypeVehicule = nil
	car.Carburant = nil
	car.Transmission = nil
	car.Puissance = nil
	car.Cylindree = nil
	car.Portes = nil
	car.Places = nil
	car.Couleur = nil
	car.Consommation = nil
	car.Options = pq.StringArray{}
	car.CompanyName = nil
	car.Location = nil
}

// viewerGating decides what the detail view tells an anonymous viewer:
// gated fields stay redacted until sign-in, full stop. The paywall-skip
// cookie only controls whether the sign-in sheet reappears.
func viewerGating(r *http.Request) (gated, showPaywall bool) {
	if middleware.CurrentProfile(r) != nil {
		return false, false
	}
	return true, !HasAuthSkip(r)
}

// GetCar returns one listing. Anonymous viewers always get gated fields
// redacted; the 30-day paywall-skip preference only suppresses the
// sign-in sheet. The phone number is never part of this payload. The
// canonical slugged path is included so a client hitting the bare-id
// URL can redirect once.
func GetCar(w http.ResponseWriter, r *http.Request) {
	car, err := getCarByRef(chi.URLParam(r, "id"))
	if err != nil {
		if err == sql.ErrNoRows {
			writeJSON(w, http.StatusNotFound, map[string]interface{}{
				"success": false, "message": "Annonce introuvable",
			})
			return
		}
		e := apierr.Map(err)
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"success": false, "message": e.Title, "error": e,
		})
		return
	}

	gated, showPaywall := viewerGating(r)
	if gated {
		redactGated(car)
	}

	lang := LanguageFromRequest(r)
	canonical := ""
	if car.Slug != nil {
		canonical = "/" + lang + "/ads/" + *car.Slug
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":        true,
		"car":            car,
		"gated":          gated,
		"show_paywall":   showPaywall,
		"canonical_path": canonical,
	})
}

// RevealPhone returns the seller's phone number. Kept out of every
// listing payload; only served on this explicit authenticated call.
func RevealPhone(w http.ResponseWriter, r *http.Request) {
	car, err := getCarByRef(chi.URLParam(r, "id"))
	if err != nil {
		if err == sql.ErrNoRows {
			writeJSON(w, http.StatusNotFound, map[string]interface{}{
				"success": false, "message": "Annonce introuvable",
			})
			return
		}
		e := apierr.Map(err)
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"success": false, "message": e.Title, "error": e,
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":      true,
		"phone_number": car.PhoneNumber,
	})
}

// MyCars lists the caller's own listings, newest first.
func MyCars(w http.ResponseWriter, r *http.Request) {
	profile := middleware.CurrentProfile(r)

	var cars []models.Car
	err := database.PostgresDB.Select(&cars,
		`SELECT `+carColumns+` FROM cars WHERE user_id = $1 ORDER BY created_at DESC`, profile.ID)
	if err != nil {
		log.Printf("ERROR: failed to fetch user cars: %v", err)
		e := apierr.Map(err)
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"success": false, "message": e.Title, "error": e,
		})
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

func validationFailure(w http.ResponseWriter, errs []wizard.FieldError) {
	writeJSON(w, http.StatusBadRequest, map[string]interface{}{
		"success": false,
		"message": "Certains champs sont invalides",
		"fields":  errs,
	})
}

func optionalStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// CreateCar inserts a new listing for the authenticated user. The full
// wizard validation runs server-side regardless of how the client
// paginated the steps.
func CreateCar(w http.ResponseWriter, r *http.Request) {
	profile := middleware.CurrentProfile(r)

	var input wizard.CarInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if errs := wizard.Validate(&input); len(errs) > 0 {
		validationFailure(w, errs)
		return
	}

	carID := uuid.New()
	slug := utils.ListingSlug(input.Brand, input.Model, input.Year)
	now := time.Now()

	_, err := database.PostgresDB.Exec(`
		INSERT INTO cars (
			id, created_at, user_id, title, description, price, year, mileage, brand, model,
			images, type_vehicule, carburant, transmission, puissance, cylindree, portes, places,
			couleur, consommation, premiere_main, expertisee, is_professional, company_name,
			phone_number, city, location, garantie, options, slug, full_search
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18,
			$19, $20, $21, $22, $23, $24,
			$25, $26, $27, $28, $29, $30, `+fullSearchExpr+`
		)
	`, carID, now, profile.ID, input.Title(), input.Description, input.Price, input.Year, input.Mileage,
		input.Brand, input.Model, pq.Array(input.Images), input.TypeVehicule, input.Carburant,
		input.Transmission, input.Puissance, input.Cylindree, input.Portes, input.Places,
		input.Couleur, input.Consommation, input.PremiereMain, input.Expertisee,
		input.IsProfessional, optionalStr(input.CompanyName), input.PhoneNumber, input.City,
		optionalStr(input.Location), input.Garantie, pq.Array(input.Options), slug)
	if err != nil {
		e := apierr.Map(err)
		status := http.StatusInternalServerError
		if e == apierr.ErrPhoneFormat {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, map[string]interface{}{
			"success": false, "message": e.Description, "error": e,
		})
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "🎉 Annonce créée avec succès !",
		"id":      carID.String(),
		"slug":    slug,
	})
}

// UpdateCar updates an existing listing, scoped to its owner. The slug
// is left untouched so published URLs stay stable.
func UpdateCar(w http.ResponseWriter, r *http.Request) {
	profile := middleware.CurrentProfile(r)
	carID := chi.URLParam(r, "id")
	if _, err := uuid.Parse(carID); err != nil {
		http.Error(w, "Invalid listing ID", http.StatusBadRequest)
		return
	}

	var input wizard.CarInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if errs := wizard.Validate(&input); len(errs) > 0 {
		validationFailure(w, errs)
		return
	}

	result, err := database.PostgresDB.Exec(`
		UPDATE cars SET
			title = $1, description = $2, price = $3, year = $4, mileage = $5, brand = $6,
			model = $7, images = $8, type_vehicule = $9, carburant = $10, transmission = $11,
			puissance = $12, cylindree = $13, portes = $14, places = $15, couleur = $16,
			consommation = $17, premiere_main = $18, expertisee = $19, is_professional = $20,
			company_name = $21, phone_number = $22, city = $23, location = $24, garantie = $25,
			options = $26, full_search = `+fullSearchExpr+`
		WHERE id = $27 AND user_id = $28
	`, input.Title(), input.Description, input.Price, input.Year, input.Mileage, input.Brand,
		input.Model, pq.Array(input.Images), input.TypeVehicule, input.Carburant, input.Transmission,
		input.Puissance, input.Cylindree, input.Portes, input.Places, input.Couleur,
		input.Consommation, input.PremiereMain, input.Expertisee, input.IsProfessional,
		optionalStr(input.CompanyName), input.PhoneNumber, input.City, optionalStr(input.Location),
		input.Garantie, pq.Array(input.Options), carID, profile.ID)
	if err != nil {
		e := apierr.Map(err)
		status := http.StatusInternalServerError
		if e == apierr.ErrPhoneFormat {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, map[string]interface{}{
			"success": false, "message": e.Description, "error": e,
		})
		return
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		// Either the listing does not exist or the caller is not its owner.
		writeJSON(w, http.StatusForbidden, map[string]interface{}{
			"success": false, "message": "Vous ne pouvez pas modifier cette annonce",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "🎉 Annonce mise à jour !",
	})
}

// DeleteCar removes a listing. Owners delete their own; admins may
// delete any (via the admin route which shares this handler's core).
func DeleteCar(w http.ResponseWriter, r *http.Request) {
	profile := middleware.CurrentProfile(r)
	carID := chi.URLParam(r, "id")
	if _, err := uuid.Parse(carID); err != nil {
		http.Error(w, "Invalid listing ID", http.StatusBadRequest)
		return
	}

	var result sql.Result
	var err error
	if profile.IsAdmin() {
		result, err = database.PostgresDB.Exec(`DELETE FROM cars WHERE id = $1`, carID)
	} else {
		result, err = database.PostgresDB.Exec(`DELETE FROM cars WHERE id = $1 AND user_id = $2`, carID, profile.ID)
	}
	if err != nil {
		e := apierr.Map(err)
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"success": false, "message": e.Title, "error": e,
		})
		return
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		writeJSON(w, http.StatusForbidden, map[string]interface{}{
			"success": false, "message": "Vous ne pouvez pas supprimer cette annonce",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Annonce supprimée avec succès",
	})
}
