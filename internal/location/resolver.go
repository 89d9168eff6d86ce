package location

import (
	"fmt"

	"github.com/kelvins/geocoder"
)

// Resolver geocodes free-form city names into "lat,lon" queries. The
// provider accepts city names directly, but coordinates avoid ambiguity when
// the same name exists in several countries. Requires a Google API key.
type Resolver struct {
	apiKey string
}

func NewResolver(apiKey string) *Resolver {
	return &Resolver{apiKey: apiKey}
}

// Resolve returns a "lat,lon" query string for the given city and country.
func (r *Resolver) Resolve(city, country string) (string, error) {
	if r.apiKey == "" {
		return "", fmt.Errorf("geocoder api key is not configured")
	}

	geocoder.ApiKey = r.apiKey

	address := geocoder.Address{
		City:    city,
		Country: country,
	}

	loc, err := geocoder.Geocoding(address)
	if err != nil {
		return "", fmt.Errorf("geocode %s, %s: %w", city, country, err)
	}

	return fmt.Sprintf("%f,%f", loc.Latitude, loc.Longitude), nil
}
