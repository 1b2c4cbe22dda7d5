package repository

import (
	"database/sql"
	"time"

	"github.com/Naveendeworks/emergent/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

// NextOrderNumber allocates the next display number. Must run inside the
// same transaction as the insert so two stations cannot claim one number.
func (r *OrderRepository) NextOrderNumber(tx *gorm.DB) (int, error) {
	var row struct{ Next int }
	err := tx.Model(&entity.Order{}).
		Select("COALESCE(MAX(order_number), 0) + 1 AS next").
		Scan(&row).Error
	return row.Next, err
}

func (r *OrderRepository) ListOrders(db *gorm.DB) ([]entity.Order, error) {
	var orders []entity.Order
	err := db.Preload("Items").
		Order("order_time DESC").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) ListOrdersByStatus(db *gorm.DB, status string) ([]entity.Order, error) {
	var orders []entity.Order
	err := db.Preload("Items").
		Where("status = ?", status).
		Order("order_time DESC").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) GetOrder(db *gorm.DB, orderID string) (*entity.Order, error) {
	var o entity.Order
	if err := db.Preload("Items").First(&o, "id = ?", orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderByNumber(db *gorm.DB, orderNumber int) (*entity.Order, error) {
	var o entity.Order
	if err := db.Preload("Items").First(&o, "order_number = ?", orderNumber).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) UpdateOrderFields(tx *gorm.DB, orderID string, fields map[string]any) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).Updates(fields).Error
}

// CompleteGuard flips pending -> completed in a single guarded statement.
// Returns false when the order was already completed (or missing).
func (r *OrderRepository) CompleteGuard(tx *gorm.DB, orderID string, completedAt time.Time) (bool, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, entity.OrderStatusPending).
		Updates(map[string]any{
			"status":         entity.OrderStatusCompleted,
			"completed_time": completedAt,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// DeletePendingGuard removes the order only while it is still pending.
func (r *OrderRepository) DeletePendingGuard(tx *gorm.DB, orderID string) (bool, error) {
	res := tx.Where("id = ? AND status = ?", orderID, entity.OrderStatusPending).
		Delete(&entity.Order{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// ---------------- Order items ----------------

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) SaveOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Save(oi).Error
}

func (r *OrderRepository) DeleteOrderItem(tx *gorm.DB, itemID uint) error {
	return tx.Unscoped().Delete(&entity.OrderItem{}, itemID).Error
}

func (r *OrderRepository) DeleteItemsForOrder(tx *gorm.DB, orderID string) error {
	return tx.Unscoped().Where("order_id = ?", orderID).Delete(&entity.OrderItem{}).Error
}

// ---------------- Stats ----------------

func (r *OrderRepository) CountByStatusBetween(db *gorm.DB, status string, from, to time.Time) (int64, error) {
	var count int64
	err := db.Model(&entity.Order{}).
		Where("status = ? AND order_time >= ? AND order_time < ?", status, from, to).
		Count(&count).Error
	return count, err
}

// AvgDeliveryMinutesBetween returns nil when no completed order in the
// window has both timestamps.
func (r *OrderRepository) AvgDeliveryMinutesBetween(db *gorm.DB, from, to time.Time) (*float64, error) {
	var avg sql.NullFloat64
	err := db.Model(&entity.Order{}).
		Select("AVG((julianday(completed_time) - julianday(order_time)) * 24 * 60)").
		Where("status = ? AND completed_time IS NOT NULL AND order_time >= ? AND order_time < ?",
			entity.OrderStatusCompleted, from, to).
		Scan(&avg).Error
	if err != nil {
		return nil, err
	}
	if !avg.Valid {
		return nil, nil
	}
	return &avg.Float64, nil
}
