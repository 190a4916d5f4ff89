package handlers

import (
	"log"
	"net/http"

	"github.com/freeauto/freeauto-backend/internal/config"
	"github.com/freeauto/freeauto-backend/internal/services"
)

var (
	cityService    *services.CityService
	vehicleService *services.VehicleService
)

func InitLookupServices(cfg *config.Config) {
	cityService = services.NewCityService(cfg.NominatimURL)
	vehicleService = services.NewVehicleService(cfg.VehicleAPIURL)
}

// SearchCities suggests Swiss localities for the location picker.
func SearchCities(w http.ResponseWriter, r *http.Request) {
	results, err := cityService.Search(r.URL.Query().Get("q"))
	if err != nil {
		log.Printf("ERROR: city lookup failed: %v", err)
		writeJSON(w, http.StatusBadGateway, map[string]interface{}{
			"success": false, "message": "Recherche de ville indisponible",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"cities":  results,
	})
}

// SearchVehicles suggests manufacturers for the brand field. Assists
// input, never validates it.
func SearchVehicles(w http.ResponseWriter, r *http.Request) {
	results, err := vehicleService.Search(r.URL.Query().Get("q"))
	if err != nil {
		log.Printf("ERROR: vehicle lookup failed: %v", err)
		writeJSON(w, http.StatusBadGateway, map[string]interface{}{
			"success": false, "message": "Recherche de marque indisponible",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"vehicles": results,
	})
}
