// Package domain contains the core data types for the travel planner.
// This package has zero AWS or HTTP dependencies and is imported by every
// other internal package (repo, service, handler).
package domain

// ItineraryItem is one day of the trip. The date doubles as the unique
// identifier — at most one item exists per DD/MM/YY value.
type ItineraryItem struct {
	Date          string `json:"date" dynamodbav:"date"`
	Location      string `json:"location" dynamodbav:"location"`
	Food          string `json:"food,omitempty" dynamodbav:"food,omitempty"`
	Activities    string `json:"activities,omitempty" dynamodbav:"activities,omitempty"`
	Accommodation string `json:"accommodation,omitempty" dynamodbav:"accommodation,omitempty"`
	Travel        string `json:"travel,omitempty" dynamodbav:"travel,omitempty"`
}

// ItineraryUpdate carries the mutable fields of a partial update.
// Pointer fields distinguish "absent from the request" (nil, leave the
// stored value untouched) from "present but empty" (overwrite with "").
type ItineraryUpdate struct {
	Location      *string `json:"location"`
	Food          *string `json:"food"`
	Activities    *string `json:"activities"`
	Accommodation *string `json:"accommodation"`
	Travel        *string `json:"travel"`
}

// IsEmpty reports whether no recognized field is present in the update.
func (u ItineraryUpdate) IsEmpty() bool {
	return len(u.Fields()) == 0
}

// Fields returns the attribute name and new value of every field present
// in the update. Keys match the stored attribute names.
func (u ItineraryUpdate) Fields() map[string]string {
	fields := make(map[string]string)
	if u.Location != nil {
		fields["location"] = *u.Location
	}
	if u.Food != nil {
		fields["food"] = *u.Food
	}
	if u.Activities != nil {
		fields["activities"] = *u.Activities
	}
	if u.Accommodation != nil {
		fields["accommodation"] = *u.Accommodation
	}
	if u.Travel != nil {
		fields["travel"] = *u.Travel
	}
	return fields
}
