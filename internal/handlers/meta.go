package handlers

import (
	"net/http"

	"github.com/freeauto/freeauto-backend/internal/models"
)

// GetMeta serves the fixed vocabularies so clients render selects from
// the server's source of truth.
func GetMeta(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":        true,
		"type_vehicules": models.TypeVehicules,
		"carburants":     models.Carburants,
		"transmissions":  models.Transmissions,
		"couleurs":       models.Couleurs,
		"options":        models.CarOptions,
		"report_reasons": models.ReportReasons,
		"languages":      []string{"fr", "de", "en"},
	})
}
