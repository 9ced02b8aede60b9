package model

// Dish represents a dish in the catalogue.
type Dish struct {
	ID          int      `json:"id" db:"id"`
	Name        string   `json:"name" db:"name"`
	Description *string  `json:"description,omitempty" db:"description"`
	Images      []string `json:"images" db:"images"`
	Notes       *string  `json:"notes,omitempty" db:"notes"`
}
