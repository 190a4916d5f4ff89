package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// CityResult is one Swiss locality suggestion.
type CityResult struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	Zip         string `json:"zip,omitempty"`
}

// CityService queries Nominatim for Swiss localities. Responses are
// cached in Redis so that repeated prefixes do not re-hit the API.
type CityService struct {
	baseURL   string
	userAgent string
	client    *http.Client
	cache     *CacheService
}

func NewCityService(baseURL string) *CityService {
	return &CityService{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: "freeauto-backend/1.0",
		client:    &http.Client{Timeout: 10 * time.Second},
		cache:     &CacheService{},
	}
}

type nominatimPlace struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	Type        string `json:"type"`
	Class       string `json:"class"`
	Address     struct {
		City         string `json:"city"`
		Town         string `json:"town"`
		Village      string `json:"village"`
		Municipality string `json:"municipality"`
		Postcode     string `json:"postcode"`
		CountryCode  string `json:"country_code"`
	} `json:"address"`
}

var cityPlaceTypes = map[string]bool{
	"city":           true,
	"town":           true,
	"village":        true,
	"municipality":   true,
	"administrative": true,
}

// Search returns up to 10 Swiss localities matching the query. Queries
// under 2 characters return nothing without an API call.
func (s *CityService) Search(query string) ([]CityResult, error) {
	query = strings.TrimSpace(query)
	if len(query) < 2 {
		return []CityResult{}, nil
	}

	cacheKey := "cities:" + strings.ToLower(query)
	var cached []CityResult
	if hit, _ := s.cache.Get(cacheKey, &cached); hit {
		return cached, nil
	}

	params := url.Values{
		"q":               []string{query + " suisse"},
		"format":          []string{"json"},
		"addressdetails":  []string{"1"},
		"limit":           []string{"10"},
		"accept-language": []string{"fr"},
		"countrycodes":    []string{"ch"},
	}

	req, err := http.NewRequest("GET", s.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", s.userAgent)
	req.Header.Set("Accept-Language", "fr")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nominatim returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var places []nominatimPlace
	if err := json.Unmarshal(body, &places); err != nil {
		return nil, err
	}

	results := filterCityPlaces(places)
	s.cache.Set(cacheKey, results)
	return results, nil
}

// filterCityPlaces keeps Swiss city-like places, resolves a display
// name, drops canton/district noise and deduplicates by name. Split out
// of Search so it can be tested without the live API.
func filterCityPlaces(places []nominatimPlace) []CityResult {
	results := []CityResult{}
	seen := make(map[string]bool)

	for _, p := range places {
		placeType := p.Type
		if placeType == "" {
			placeType = p.Class
		}
		if !cityPlaceTypes[placeType] || p.Address.CountryCode != "ch" {
			continue
		}

		name := p.Address.City
		for _, candidate := range []string{p.Address.Town, p.Address.Village, p.Address.Municipality} {
			if name == "" {
				name = candidate
			}
		}
		if name == "" {
			name = strings.TrimSpace(strings.Split(p.DisplayName, ",")[0])
		}

		if name == "" || strings.Contains(name, ",") ||
			strings.Contains(name, "Canton") || strings.Contains(name, "District") {
			continue
		}
		if seen[name] {
			continue
		}
		seen[name] = true

		results = append(results, CityResult{
			DisplayName: name,
			Lat:         p.Lat,
			Lon:         p.Lon,
			Zip:         p.Address.Postcode,
		})
		if len(results) == 10 {
			break
		}
	}

	return results
}
