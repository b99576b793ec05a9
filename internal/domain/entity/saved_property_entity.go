package entity

import "time"

// SavedProperty is the bookmark relating a user to a property.
// At most one row exists per (UserID, PropertyID); the store enforces it
// with a unique constraint.
type SavedProperty struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	PropertyID string    `json:"propertyId"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`

	// Property is populated on reads that join the listing.
	Property *Property `json:"property,omitempty"`
}
