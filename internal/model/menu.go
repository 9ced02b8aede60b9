package model

// MenuEntry is the priced association between one restaurant and one dish,
// flattened to natural keys by the read-side join. Price is in Vietnamese
// dong, so an integer holds it exactly.
type MenuEntry struct {
	Restaurant string `json:"restaurant" db:"restaurant"`
	Dish       string `json:"dish" db:"dish"`
	Price      int    `json:"price" db:"price"`
}
