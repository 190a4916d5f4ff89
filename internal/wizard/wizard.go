// Package wizard models the four-step listing editor: ordered steps
// with guarded forward navigation, where each step owns its required
// fields. Edit mode validates every step over the same data instead of
// paginating; it is a traversal mode, not an extra state.
package wizard

import (
	"fmt"
	"regexp"
	"time"
)

// Step is one page of the listing editor.
type Step int

const (
	StepPhotos Step = iota
	StepInfo
	StepSpecs
	StepContact
)

var stepNames = map[Step]string{
	StepPhotos:  "photos",
	StepInfo:    "info",
	StepSpecs:   "specs",
	StepContact: "contact",
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return fmt.Sprintf("step(%d)", int(s))
}

// PhoneNumberPattern accepts Swiss local (0XXXXXXXXX) and +41 numbers.
var PhoneNumberPattern = regexp.MustCompile(`^(\+41|0)[1-9][0-9]{8}$`)

const MinYear = 1900

// CarInput is the editor's data model: everything the four steps collect.
type CarInput struct {
	Images         []string `json:"images"`
	Brand          string   `json:"brand"`
	Model          string   `json:"model"`
	Description    string   `json:"description"`
	Price          int      `json:"price"`
	Year           int      `json:"year"`
	Mileage        int      `json:"mileage"`
	TypeVehicule   string   `json:"type_vehicule"`
	Carburant      string   `json:"carburant"`
	Transmission   string   `json:"transmission"`
	Couleur        string   `json:"couleur"`
	Puissance      *int     `json:"puissance,omitempty"`
	Cylindree      *int     `json:"cylindree,omitempty"`
	Portes         *int     `json:"portes,omitempty"`
	Places         *int     `json:"places,omitempty"`
	Consommation   *float64 `json:"consommation,omitempty"`
	Garantie       *int     `json:"garantie,omitempty"`
	Options        []string `json:"options"`
	PremiereMain   bool     `json:"premiere_main"`
	Expertisee     bool     `json:"expertisee"`
	PhoneNumber    string   `json:"phone_number"`
	IsProfessional bool     `json:"is_professional"`
	CompanyName    string   `json:"company_name,omitempty"`
	City           string   `json:"city"`
	Location       string   `json:"location,omitempty"`
}

// Title derives the listing title from brand and model.
func (c *CarInput) Title() string {
	return c.Brand + " " + c.Model
}

// FieldError is a validation failure on one named field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidateStep checks the required fields owned by one step. The photos
// step has no required fields.
func ValidateStep(step Step, in *CarInput) []FieldError {
	var errs []FieldError
	req := func(field, value, message string) {
		if value == "" {
			errs = append(errs, FieldError{Field: field, Message: message})
		}
	}

	switch step {
	case StepPhotos:
		// Nothing required; photos are optional.
	case StepInfo:
		req("brand", in.Brand, "La marque est requise")
		req("model", in.Model, "Le modèle est requis")
		req("description", in.Description, "La description est requise")
		if in.Price <= 0 {
			errs = append(errs, FieldError{Field: "price", Message: "Le prix est requis"})
		}
		if in.Year == 0 {
			errs = append(errs, FieldError{Field: "year", Message: "L'année est requise"})
		} else if in.Year < MinYear || in.Year > time.Now().Year() {
			errs = append(errs, FieldError{Field: "year", Message: "L'année doit être valide"})
		}
		if in.Mileage < 0 {
			errs = append(errs, FieldError{Field: "mileage", Message: "Le kilométrage est requis"})
		}
	case StepSpecs:
		req("type_vehicule", in.TypeVehicule, "Le type de véhicule est requis")
		req("carburant", in.Carburant, "Le type de carburant est requis")
		req("transmission", in.Transmission, "Le type de transmission est requis")
		req("couleur", in.Couleur, "La couleur est requise")
	case StepContact:
		if in.PhoneNumber == "" {
			errs = append(errs, FieldError{Field: "phone_number", Message: "Le numéro de téléphone est requis"})
		} else if !PhoneNumberPattern.MatchString(in.PhoneNumber) {
			errs = append(errs, FieldError{Field: "phone_number", Message: "Format invalide (ex: 0791234567 ou +41791234567)"})
		}
		req("city", in.City, "La ville est requise")
	}

	return errs
}

// Validate runs every step's validation over the input, as the edit
// mode and final submission do.
func Validate(in *CarInput) []FieldError {
	var errs []FieldError
	for _, s := range []Step{StepPhotos, StepInfo, StepSpecs, StepContact} {
		errs = append(errs, ValidateStep(s, in)...)
	}
	return errs
}

// Wizard tracks the editor's position across the ordered steps.
type Wizard struct {
	step Step
}

// New returns a wizard positioned on the photos step.
func New() *Wizard {
	return &Wizard{step: StepPhotos}
}

// Step returns the current step.
func (w *Wizard) Step() Step {
	return w.step
}

// Next advances to the following step. The transition is guarded: it
// fails when the current step's required fields do not validate, and on
// the last step.
func (w *Wizard) Next(in *CarInput) ([]FieldError, bool) {
	if errs := ValidateStep(w.step, in); len(errs) > 0 {
		return errs, false
	}
	if w.step >= StepContact {
		return nil, false
	}
	w.step++
	return nil, true
}

// Back moves to the previous step. Backward navigation is never guarded.
func (w *Wizard) Back() bool {
	if w.step <= StepPhotos {
		return false
	}
	w.step--
	return true
}

// Done reports whether the wizard sits on the last step with every step
// valid, i.e. the payload may be submitted.
func (w *Wizard) Done(in *CarInput) bool {
	return w.step == StepContact && len(Validate(in)) == 0
}
