package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Car is one vehicle listing. Optional technical and seller fields are
// pointers so that an absent value stays absent in JSON instead of
// rendering as a zero.
type Car struct {
	ID             uuid.UUID      `db:"id" json:"id"`
	CreatedAt      time.Time      `db:"created_at" json:"created_at"`
	UserID         uuid.UUID      `db:"user_id" json:"user_id"`
	Title          string         `db:"title" json:"title"`
	Description    string         `db:"description" json:"description"`
	Price          int            `db:"price" json:"price"`
	Year           int            `db:"year" json:"year"`
	Mileage        int            `db:"mileage" json:"mileage"`
	Brand          string         `db:"brand" json:"brand"`
	Model          string         `db:"model" json:"model"`
	Images         pq.StringArray `db:"images" json:"images"`
	TypeVehicule   *string        `db:"type_vehicule" json:"type_vehicule,omitempty"`
	Carburant      *string        `db:"carburant" json:"carburant,omitempty"`
	Transmission   *string        `db:"transmission" json:"transmission,omitempty"`
	Puissance      *int           `db:"puissance" json:"puissance,omitempty"`
	Cylindree      *int           `db:"cylindree" json:"cylindree,omitempty"`
	Portes         *int           `db:"portes" json:"portes,omitempty"`
	Places         *int           `db:"places" json:"places,omitempty"`
	Couleur        *string        `db:"couleur" json:"couleur,omitempty"`
	Consommation   *float64       `db:"consommation" json:"consommation,omitempty"`
	PremiereMain   bool           `db:"premiere_main" json:"premiere_main"`
	Expertisee     bool           `db:"expertisee" json:"expertisee"`
	IsProfessional bool           `db:"is_professional" json:"is_professional"`
	CompanyName    *string        `db:"company_name" json:"company_name,omitempty"`
	PhoneNumber    string         `db:"phone_number" json:"-"`
	City           *string        `db:"city" json:"city,omitempty"`
	Location       *string        `db:"location" json:"location,omitempty"`
	Garantie       *int           `db:"garantie" json:"garantie,omitempty"`
	Options        pq.StringArray `db:"options" json:"options"`
	Slug           *string        `db:"slug" json:"slug,omitempty"`
}

// Fixed vocabularies served at /api/meta so clients render selects from
// the server's source of truth.
var (
	TypeVehicules = []string{
		"Berline", "Break", "Cabriolet", "Coupé", "SUV",
		"Monospace", "Citadine", "4x4", "Pick-up",
	}

	Carburants = []string{
		"Essence", "Diesel", "Hybride", "Électrique", "GPL", "Hydrogène",
	}

	Transmissions = []string{
		"Manuelle", "Automatique", "Semi-automatique",
	}

	Couleurs = []string{
		"Noir", "Blanc", "Gris", "Argent", "Bleu", "Rouge",
		"Vert", "Jaune", "Marron", "Beige", "Orange",
	}

	CarOptions = []string{
		"Climatisation", "GPS", "Toit ouvrant", "Sièges chauffants",
		"Caméra de recul", "Régulateur de vitesse", "Bluetooth",
		"Jantes alu", "Aide au stationnement", "Phares LED",
		"Système Start/Stop", "Vitres électriques",
		"Rétroviseurs électriques", "Volant multifonction",
		"Apple CarPlay", "Android Auto",
	}
)
