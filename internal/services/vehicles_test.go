package services

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var sampleManufacturers = []nhtsaManufacturer{
	{MfrID: 957, MfrName: "BMW AG", MfrCommonName: "BMW"},
	{MfrID: 987, MfrName: "VOLKSWAGEN AG", MfrCommonName: "Volkswagen"},
	{MfrID: 988, MfrName: "VOLVO CAR CORPORATION", MfrCommonName: "Volvo"},
	{MfrID: 1079, MfrName: "SOME HOLDING COMPANY", MfrCommonName: ""},
	{MfrID: 0, MfrName: "", MfrCommonName: ""},
}

func TestMatchManufacturers_CaseInsensitiveContains(t *testing.T) {
	results := matchManufacturers(sampleManufacturers, "vol")
	assert.Len(t, results, 2)
	assert.Equal(t, "Volkswagen", results[0].MakeDisplay)
	assert.Equal(t, "Volvo", results[1].MakeDisplay)

	assert.Len(t, matchManufacturers(sampleManufacturers, "BMW"), 1)
	assert.Empty(t, matchManufacturers(sampleManufacturers, "toyota"))
}

func TestMatchManufacturers_FullNameFallback(t *testing.T) {
	// Match on the full legal name, display it when there is no common name.
	results := matchManufacturers(sampleManufacturers, "holding")
	assert.Len(t, results, 1)
	assert.Equal(t, "SOME HOLDING COMPANY", results[0].MakeDisplay)
	assert.Equal(t, "1079", results[0].MakeID)
}

func TestMatchManufacturers_SkipsNameless(t *testing.T) {
	nameless := []nhtsaManufacturer{{MfrID: 1}}
	assert.Empty(t, matchManufacturers(nameless, "anything"))
}

func TestMatchManufacturers_CapsAtTen(t *testing.T) {
	var many []nhtsaManufacturer
	for i := 0; i < 25; i++ {
		many = append(many, nhtsaManufacturer{MfrID: i, MfrCommonName: "Brand" + strconv.Itoa(i)})
	}
	assert.Len(t, matchManufacturers(many, "brand"), 10)
}

func TestMatchManufacturers_StampsCurrentYear(t *testing.T) {
	results := matchManufacturers(sampleManufacturers, "bmw")
	assert.Equal(t, strconv.Itoa(time.Now().Year()), results[0].ModelYear)
}
