package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// VehicleResult is one manufacturer suggestion used to assist listing creation.
type VehicleResult struct {
	MakeID      string `json:"make_id"`
	MakeDisplay string `json:"make_display"`
	ModelName   string `json:"model_name"`
	ModelYear   string `json:"model_year"`
}

// VehicleService queries the NHTSA vPIC manufacturer list. The full
// list is cached; matching happens locally per query.
type VehicleService struct {
	baseURL string
	client  *http.Client
	cache   *CacheService
}

func NewVehicleService(baseURL string) *VehicleService {
	return &VehicleService{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
		cache:   &CacheService{},
	}
}

type nhtsaManufacturer struct {
	MfrID         int    `json:"Mfr_ID"`
	MfrName       string `json:"Mfr_Name"`
	MfrCommonName string `json:"Mfr_CommonName"`
}

type nhtsaResponse struct {
	Count   int                 `json:"Count"`
	Message string              `json:"Message"`
	Results []nhtsaManufacturer `json:"Results"`
}

// Search returns up to 10 manufacturers whose common or full name
// contains the query, case-insensitively. Queries under 2 characters
// return nothing without an API call.
func (s *VehicleService) Search(query string) ([]VehicleResult, error) {
	query = strings.TrimSpace(query)
	if len(query) < 2 {
		return []VehicleResult{}, nil
	}

	manufacturers, err := s.allManufacturers()
	if err != nil {
		return nil, err
	}

	return matchManufacturers(manufacturers, query), nil
}

func (s *VehicleService) allManufacturers() ([]nhtsaManufacturer, error) {
	const cacheKey = "vehicles:manufacturers"

	var cached []nhtsaManufacturer
	if hit, _ := s.cache.Get(cacheKey, &cached); hit {
		return cached, nil
	}

	resp, err := s.client.Get(s.baseURL + "/vehicles/getallmanufacturers?format=json")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("vehicle API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var parsed nhtsaResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, err
	}

	s.cache.Set(cacheKey, parsed.Results)
	return parsed.Results, nil
}

func matchManufacturers(manufacturers []nhtsaManufacturer, query string) []VehicleResult {
	normalized := strings.ToLower(query)
	year := strconv.Itoa(time.Now().Year())

	results := []VehicleResult{}
	for _, m := range manufacturers {
		display := m.MfrCommonName
		if display == "" {
			display = m.MfrName
		}
		if display == "" {
			continue
		}

		if !strings.Contains(strings.ToLower(m.MfrCommonName), normalized) &&
			!strings.Contains(strings.ToLower(m.MfrName), normalized) {
			continue
		}

		results = append(results, VehicleResult{
			MakeID:      strconv.Itoa(m.MfrID),
			MakeDisplay: display,
			ModelYear:   year,
		})
		if len(results) == 10 {
			break
		}
	}

	return results
}
