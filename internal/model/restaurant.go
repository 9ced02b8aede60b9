package model

// Restaurant represents a restaurant in the catalogue.
// Optional columns map to pointer fields so NULLs survive a round trip.
type Restaurant struct {
	ID           int      `json:"id" db:"id"`
	Name         string   `json:"name" db:"name"`
	Address      string   `json:"address" db:"address"`
	Website      *string  `json:"website,omitempty" db:"website"`
	GoogleURL    *string  `json:"googleUrl,omitempty" db:"google_url"`
	Rating       *float64 `json:"rating,omitempty" db:"rating"`
	Phone        *string  `json:"phone,omitempty" db:"phone"`
	OpeningHours *string  `json:"openingHours,omitempty" db:"opening_hours"`
	Images       []string `json:"images" db:"images"`
	Notes        *string  `json:"notes,omitempty" db:"notes"`
}
