package repository

import (
	"github.com/Naveendeworks/emergent/entity"
	"gorm.io/gorm"
)

type NotificationRepository struct {
	DB *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{DB: db}
}

func (r *NotificationRepository) Create(tx *gorm.DB, n *entity.Notification) error {
	return tx.Create(n).Error
}

func (r *NotificationRepository) ListActive() ([]entity.Notification, error) {
	var out []entity.Notification
	err := r.DB.Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *NotificationRepository) List(limit int) ([]entity.Notification, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	var out []entity.Notification
	err := r.DB.Order("created_at DESC").Limit(limit).Find(&out).Error
	return out, err
}

func (r *NotificationRepository) MarkRead(id string) (bool, error) {
	res := r.DB.Model(&entity.Notification{}).
		Where("id = ?", id).
		Update("is_read", true)
	return res.RowsAffected == 1, res.Error
}

func (r *NotificationRepository) Dismiss(id string) (bool, error) {
	res := r.DB.Model(&entity.Notification{}).
		Where("id = ?", id).
		Update("is_active", false)
	return res.RowsAffected == 1, res.Error
}
