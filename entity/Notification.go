package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notification is an "order ready" announcement shown on the pickup screen.
type Notification struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	CustomerName string    `json:"customerName"`
	Message      string    `json:"message"`
	OrderID      string    `gorm:"index;size:36" json:"orderId,omitempty"`
	IsRead       bool      `gorm:"default:false" json:"isRead"`
	IsActive     bool      `gorm:"default:true" json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}
