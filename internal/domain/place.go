package domain

import "net/url"

// PlaceType tags a place with its category.
type PlaceType string

const (
	PlaceAttraction    PlaceType = "ATTRACTION"
	PlaceRestaurant    PlaceType = "RESTAURANT"
	PlaceAccommodation PlaceType = "ACCOMMODATION"
	PlaceTransport     PlaceType = "TRANSPORT"
	PlaceOther         PlaceType = "OTHER"
)

// Valid reports whether t is one of the known place types.
func (t PlaceType) Valid() bool {
	switch t {
	case PlaceAttraction, PlaceRestaurant, PlaceAccommodation, PlaceTransport, PlaceOther:
		return true
	}
	return false
}

// Coordinates is an optional latitude/longitude pair.
type Coordinates struct {
	Latitude  float64 `json:"latitude" dynamodbav:"latitude"`
	Longitude float64 `json:"longitude" dynamodbav:"longitude"`
}

// Place is a point of interest in some city.
type Place struct {
	ID           string       `json:"id" dynamodbav:"id"`
	Name         string       `json:"name" dynamodbav:"name"`
	City         string       `json:"city" dynamodbav:"city"`
	Type         PlaceType    `json:"type" dynamodbav:"type"`
	Description  string       `json:"description,omitempty" dynamodbav:"description,omitempty"`
	Address      string       `json:"address,omitempty" dynamodbav:"address,omitempty"`
	OpeningHours string       `json:"openingHours,omitempty" dynamodbav:"openingHours,omitempty"`
	Website      string       `json:"website,omitempty" dynamodbav:"website,omitempty"`
	ImageURL     string       `json:"imageUrl,omitempty" dynamodbav:"imageUrl,omitempty"`
	Rating       *float64     `json:"rating,omitempty" dynamodbav:"rating,omitempty"`
	Coordinates  *Coordinates `json:"coordinates,omitempty" dynamodbav:"coordinates,omitempty"`
	CreatedAt    string       `json:"createdAt" dynamodbav:"createdAt"` // RFC 3339 UTC
}

// PlaceholderImageURL builds the default image URL for a place created
// without one: an Unsplash search keyed on city and name. Cosmetic only.
func PlaceholderImageURL(city, name string) string {
	return "https://source.unsplash.com/800x600/?" + url.QueryEscape(city) + "," + url.QueryEscape(name)
}
