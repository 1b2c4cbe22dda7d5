package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
)

const (
	PaymentCash    = "cash"
	PaymentZelle   = "zelle"
	PaymentCashApp = "cashapp"
)

// ValidPaymentMethod reports whether m is one of the accepted payment methods.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentCash, PaymentZelle, PaymentCashApp:
		return true
	}
	return false
}

type Order struct {
	ID          string `gorm:"primaryKey;size:36" json:"id"`
	OrderNumber int    `gorm:"uniqueIndex" json:"orderNumber"`

	CustomerName  string `json:"customerName"`
	PhoneNumber   string `json:"phoneNumber,omitempty"`
	PaymentMethod string `json:"paymentMethod"`

	Status string `gorm:"index;default:pending" json:"status"`

	OrderTime             time.Time  `json:"orderTime"`
	CompletedTime         *time.Time `json:"completedTime,omitempty"`
	EstimatedDeliveryTime *time.Time `json:"estimatedDeliveryTime,omitempty"`

	TotalItems  int     `json:"totalItems"`
	TotalAmount float64 `json:"totalAmount"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}
