package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// GeocodeService resolves Brazilian postal codes through ViaCEP and
// free-form addresses through Nominatim. Both are best-effort network
// collaborators: a failure leaves coordinates at the (0,0) ungeocoded
// default and the save goes ahead anyway.
type GeocodeService struct {
	client *http.Client
}

var geocodeService *GeocodeService

func InitGeocodeService() {
	geocodeService = NewGeocodeService()
	log.Println("Geocode service initialized")
}

func GetGeocodeService() *GeocodeService {
	return geocodeService
}

func NewGeocodeService() *GeocodeService {
	return &GeocodeService{client: &http.Client{Timeout: 10 * time.Second}}
}

// CEPResult carries the address fields ViaCEP returns for a postal code.
type CEPResult struct {
	Address      string `json:"address"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
}

// LookupCEP resolves an 8-digit postal code to address fields.
func (s *GeocodeService) LookupCEP(ctx context.Context, cep string) (CEPResult, error) {
	cep = digitsOnly(cep)
	if len(cep) != 8 {
		return CEPResult{}, fmt.Errorf("%w: cep must have 8 digits", ErrInvalidField)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("https://viacep.com.br/ws/%s/json/", cep), nil)
	if err != nil {
		return CEPResult{}, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return CEPResult{}, fmt.Errorf("cep lookup failed: %v", err)
	}
	defer resp.Body.Close()

	var body struct {
		Logradouro string `json:"logradouro"`
		Bairro     string `json:"bairro"`
		Localidade string `json:"localidade"`
		UF         string `json:"uf"`
		Erro       bool   `json:"erro"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return CEPResult{}, fmt.Errorf("cep lookup failed: %v", err)
	}
	if body.Erro {
		return CEPResult{}, fmt.Errorf("cep %s not found", cep)
	}

	return CEPResult{
		Address:      body.Logradouro,
		Neighborhood: body.Bairro,
		City:         body.Localidade,
		State:        body.UF,
	}, nil
}

// Search geocodes a free-form address. (0, 0) with a nil error means
// the address produced no match.
func (s *GeocodeService) Search(ctx context.Context, fullAddress string) (float64, float64, error) {
	endpoint := "https://nominatim.openstreetmap.org/search?format=json&limit=1&q=" +
		url.QueryEscape(fullAddress)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, 0, err
	}
	req.Header.Set("User-Agent", "carmo-app/1.0")

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, 0, fmt.Errorf("geocoding failed: %v", err)
	}
	defer resp.Body.Close()

	var results []struct {
		Lat string `json:"lat"`
		Lon string `json:"lon"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return 0, 0, fmt.Errorf("geocoding failed: %v", err)
	}
	if len(results) == 0 {
		return 0, 0, nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("geocoding returned bad latitude %q", results[0].Lat)
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("geocoding returned bad longitude %q", results[0].Lon)
	}
	return lat, lng, nil
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
