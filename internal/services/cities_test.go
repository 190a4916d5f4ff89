package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func swissPlace(placeType, city string) nominatimPlace {
	p := nominatimPlace{Type: placeType, Lat: "46.5", Lon: "6.6"}
	p.Address.City = city
	p.Address.CountryCode = "ch"
	return p
}

func TestFilterCityPlaces_KeepsCityLikeTypes(t *testing.T) {
	places := []nominatimPlace{
		swissPlace("city", "Lausanne"),
		swissPlace("town", "Morges"),
		swissPlace("village", "Grimentz"),
		swissPlace("river", "Rhône"),
	}

	results := filterCityPlaces(places)
	assert.Len(t, results, 3)
	assert.Equal(t, "Lausanne", results[0].DisplayName)
	assert.Equal(t, "Morges", results[1].DisplayName)
	assert.Equal(t, "Grimentz", results[2].DisplayName)
}

func TestFilterCityPlaces_DropsForeignPlaces(t *testing.T) {
	p := swissPlace("city", "Annecy")
	p.Address.CountryCode = "fr"
	assert.Empty(t, filterCityPlaces([]nominatimPlace{p}))
}

func TestFilterCityPlaces_NameResolutionOrder(t *testing.T) {
	// City wins over town, town over village, and so on.
	p := nominatimPlace{Type: "town"}
	p.Address.CountryCode = "ch"
	p.Address.Town = "Vevey"
	p.Address.Village = "Corsier"

	results := filterCityPlaces([]nominatimPlace{p})
	assert.Len(t, results, 1)
	assert.Equal(t, "Vevey", results[0].DisplayName)
}

func TestFilterCityPlaces_FallsBackToDisplayName(t *testing.T) {
	p := nominatimPlace{Type: "administrative", DisplayName: "Fribourg, Suisse"}
	p.Address.CountryCode = "ch"

	results := filterCityPlaces([]nominatimPlace{p})
	assert.Len(t, results, 1)
	assert.Equal(t, "Fribourg", results[0].DisplayName)
}

func TestFilterCityPlaces_DropsAdministrativeNoise(t *testing.T) {
	places := []nominatimPlace{
		swissPlace("administrative", "Canton de Vaud"),
		swissPlace("administrative", "District de Nyon"),
	}
	assert.Empty(t, filterCityPlaces(places))
}

func TestFilterCityPlaces_Deduplicates(t *testing.T) {
	places := []nominatimPlace{
		swissPlace("city", "Sion"),
		swissPlace("municipality", "Sion"),
	}
	assert.Len(t, filterCityPlaces(places), 1)
}

func TestFilterCityPlaces_CapsAtTen(t *testing.T) {
	var places []nominatimPlace
	for _, name := range []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L"} {
		places = append(places, swissPlace("city", name+"ville"))
	}
	assert.Len(t, filterCityPlaces(places), 10)
}

func TestFilterCityPlaces_KeepsCoordinatesAndZip(t *testing.T) {
	p := swissPlace("city", "Neuchâtel")
	p.Address.Postcode = "2000"

	results := filterCityPlaces([]nominatimPlace{p})
	assert.Equal(t, "46.5", results[0].Lat)
	assert.Equal(t, "6.6", results[0].Lon)
	assert.Equal(t, "2000", results[0].Zip)
}
