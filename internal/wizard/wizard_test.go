package wizard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validInput() *CarInput {
	p := 110
	return &CarInput{
		Brand:        "Volkswagen",
		Model:        "Golf",
		Description:  "Très bon état, entretien à jour.",
		Price:        15900,
		Year:         2019,
		Mileage:      62000,
		TypeVehicule: "Berline",
		Carburant:    "Essence",
		Transmission: "Manuelle",
		Couleur:      "Gris",
		Puissance:    &p,
		PhoneNumber:  "0791234567",
		City:         "Lausanne",
	}
}

func fieldNames(errs []FieldError) []string {
	var out []string
	for _, e := range errs {
		out = append(out, e.Field)
	}
	return out
}

func TestPhoneNumberPattern(t *testing.T) {
	valid := []string{"0791234567", "+41791234567", "0211234567", "+41211234567"}
	for _, n := range valid {
		assert.True(t, PhoneNumberPattern.MatchString(n), n)
	}

	invalid := []string{
		"1234567",        // too short, no prefix
		"0041791234567",  // 00 41 form not accepted
		"079123456",      // nine digits after prefix required
		"07912345678",    // one too many
		"0091234567",     // second digit may not be 0
		"+42791234567",   // wrong country code
		"079 123 45 67",  // no spaces
		"",
	}
	for _, n := range invalid {
		assert.False(t, PhoneNumberPattern.MatchString(n), n)
	}
}

func TestValidateStep_Photos(t *testing.T) {
	// Photos are optional; an empty payload passes the first step.
	assert.Empty(t, ValidateStep(StepPhotos, &CarInput{}))
}

func TestValidateStep_InfoRequiredFields(t *testing.T) {
	errs := ValidateStep(StepInfo, &CarInput{})
	assert.ElementsMatch(t, []string{"brand", "model", "description", "price", "year"}, fieldNames(errs))
}

func TestValidateStep_YearBounds(t *testing.T) {
	current := time.Now().Year()

	for _, year := range []int{1900, current} {
		in := validInput()
		in.Year = year
		assert.Empty(t, ValidateStep(StepInfo, in), "year %d should be accepted", year)
	}

	for _, year := range []int{1899, current + 1} {
		in := validInput()
		in.Year = year
		errs := ValidateStep(StepInfo, in)
		assert.Equal(t, []string{"year"}, fieldNames(errs), "year %d should be rejected", year)
	}
}

func TestValidateStep_SpecsRequiredFields(t *testing.T) {
	errs := ValidateStep(StepSpecs, &CarInput{})
	assert.ElementsMatch(t, []string{"type_vehicule", "carburant", "transmission", "couleur"}, fieldNames(errs))
}

func TestValidateStep_ContactPhoneFormat(t *testing.T) {
	in := validInput()
	in.PhoneNumber = "0041791234567"
	errs := ValidateStep(StepContact, in)
	assert.Equal(t, []string{"phone_number"}, fieldNames(errs))

	in.PhoneNumber = ""
	errs = ValidateStep(StepContact, in)
	assert.Contains(t, fieldNames(errs), "phone_number")
}

func TestValidate_CoversAllSteps(t *testing.T) {
	assert.Empty(t, Validate(validInput()))

	in := validInput()
	in.Brand = ""
	in.Couleur = ""
	in.City = ""
	errs := Validate(in)
	assert.ElementsMatch(t, []string{"brand", "couleur", "city"}, fieldNames(errs))
}

func TestWizard_ForwardNavigationGuarded(t *testing.T) {
	w := New()
	assert.Equal(t, StepPhotos, w.Step())

	in := &CarInput{}

	// Photos step has nothing required, so the first advance succeeds.
	errs, ok := w.Next(in)
	assert.True(t, ok)
	assert.Empty(t, errs)
	assert.Equal(t, StepInfo, w.Step())

	// Info step blocks until its fields validate.
	errs, ok = w.Next(in)
	assert.False(t, ok)
	assert.NotEmpty(t, errs)
	assert.Equal(t, StepInfo, w.Step())
}

func TestWizard_WalkToCompletion(t *testing.T) {
	w := New()
	in := validInput()

	for _, want := range []Step{StepInfo, StepSpecs, StepContact} {
		_, ok := w.Next(in)
		assert.True(t, ok)
		assert.Equal(t, want, w.Step())
	}

	// No step past contact.
	_, ok := w.Next(in)
	assert.False(t, ok)
	assert.Equal(t, StepContact, w.Step())
	assert.True(t, w.Done(in))
}

func TestWizard_BackNeverGuarded(t *testing.T) {
	w := New()
	in := validInput()
	w.Next(in)
	w.Next(in)
	assert.Equal(t, StepSpecs, w.Step())

	// Back works even with invalid data.
	assert.True(t, w.Back())
	assert.Equal(t, StepInfo, w.Step())
	assert.True(t, w.Back())
	assert.False(t, w.Back())
	assert.Equal(t, StepPhotos, w.Step())
}

func TestWizard_DoneRequiresLastStepAndValidity(t *testing.T) {
	w := New()
	in := validInput()
	assert.False(t, w.Done(in))

	w.Next(in)
	w.Next(in)
	w.Next(in)
	assert.True(t, w.Done(in))

	in.PhoneNumber = "invalid"
	assert.False(t, w.Done(in))
}

func TestCarInput_Title(t *testing.T) {
	in := &CarInput{Brand: "Renault", Model: "Clio"}
	assert.Equal(t, "Renault Clio", in.Title())
}
