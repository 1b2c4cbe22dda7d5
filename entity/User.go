package entity

import (
	"gorm.io/gorm"
)

// User is a staff account. The dashboard is single-tenant; the seeded
// admin is usually the only row.
type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;size:100" json:"username"`
	Password string `json:"-"`
	Role     string `gorm:"default:staff" json:"role"`
}
