package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/travel-planner/backend/internal/domain"
)

func TestPlaceType_Valid(t *testing.T) {
	for _, pt := range []domain.PlaceType{
		domain.PlaceAttraction,
		domain.PlaceRestaurant,
		domain.PlaceAccommodation,
		domain.PlaceTransport,
		domain.PlaceOther,
	} {
		assert.True(t, pt.Valid(), "type %q", pt)
	}

	assert.False(t, domain.PlaceType("MUSEUM").Valid())
	assert.False(t, domain.PlaceType("attraction").Valid(), "enum values are case-sensitive")
	assert.False(t, domain.PlaceType("").Valid())
}

func TestPlaceholderImageURL(t *testing.T) {
	got := domain.PlaceholderImageURL("São Paulo", "Mercado Municipal")

	assert.Contains(t, got, "https://source.unsplash.com/800x600/?")
	// City and name must be escaped — no raw spaces in the URL.
	assert.NotContains(t, got, " ")
}

func TestItineraryUpdate_Fields(t *testing.T) {
	activities := "walking tour"
	empty := ""
	upd := domain.ItineraryUpdate{Activities: &activities, Food: &empty}

	fields := upd.Fields()

	assert.Equal(t, map[string]string{"activities": "walking tour", "food": ""}, fields)
	assert.False(t, upd.IsEmpty())
	assert.True(t, domain.ItineraryUpdate{}.IsEmpty())
}
