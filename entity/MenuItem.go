package entity

// MenuItem is a catalog entry. ID is a stable slug ("goat_biryani"); the
// catalog is seeded at startup and read-only at runtime.
type MenuItem struct {
	ID        string  `gorm:"primaryKey;size:64" json:"id"`
	Name      string  `gorm:"uniqueIndex" json:"name"`
	Chef      string  `json:"chef"`
	SousChef  string  `json:"sousChef,omitempty"`
	Category  string  `gorm:"index" json:"category"`
	Price     float64 `json:"price"`
	Available bool    `gorm:"default:true" json:"available"`
}
