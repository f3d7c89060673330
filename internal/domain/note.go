package domain

// Note is a free-text note attached to a trip day. The date correlates
// with an ItineraryItem but is not validated against existing itinerary
// records. Notes are immutable once created.
type Note struct {
	ID        string `json:"id" dynamodbav:"id"`
	Date      string `json:"date" dynamodbav:"date"` // DD/MM/YY
	Content   string `json:"content" dynamodbav:"content"`
	CreatedAt string `json:"createdAt" dynamodbav:"createdAt"` // RFC 3339 UTC
	UpdatedAt string `json:"updatedAt,omitempty" dynamodbav:"updatedAt,omitempty"`
}
