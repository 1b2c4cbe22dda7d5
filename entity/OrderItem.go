package entity

import (
	"gorm.io/gorm"
)

const (
	CookingNotStarted = "not started"
	CookingInProcess  = "in process"
	CookingFinished   = "finished"
)

// ValidCookingStatus reports whether s is a known cooking state.
func ValidCookingStatus(s string) bool {
	switch s {
	case CookingNotStarted, CookingInProcess, CookingFinished:
		return true
	}
	return false
}

// OrderItem is one line of an order. Name is the natural key within an
// order: adding a duplicate name merges into the existing row.
type OrderItem struct {
	gorm.Model
	OrderID string `gorm:"index;size:36" json:"-"`

	Name     string `json:"name"`
	Quantity int    `json:"quantity"`

	UnitPrice float64 `json:"price"`
	Subtotal  float64 `json:"subtotal"`

	CookingStatus string `gorm:"default:not started" json:"cooking_status"`
}
