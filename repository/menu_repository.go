package repository

import (
	"errors"
	"strings"

	"github.com/Naveendeworks/emergent/entity"
	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) ListAvailable() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Where("available = ?", true).Order("name").Find(&items).Error
	return items, err
}

func (r *MenuRepository) Categories() ([]string, error) {
	var categories []string
	err := r.DB.Model(&entity.MenuItem{}).
		Where("available = ?", true).
		Distinct("category").
		Order("category").
		Pluck("category", &categories).Error
	return categories, err
}

func (r *MenuRepository) GetByID(id string) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// GetByName resolves a menu entry for pricing. Exact match first, then a
// case-insensitive fallback so "chicken biryani" still prices correctly.
func (r *MenuRepository) GetByName(name string) (*entity.MenuItem, error) {
	var m entity.MenuItem
	err := r.DB.First(&m, "name = ?", name).Error
	if err == nil {
		return &m, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err := r.DB.First(&m, "LOWER(name) = ?", strings.ToLower(name)).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) ListByCategory(category string) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Where("category = ? AND available = ?", category, true).
		Order("name").Find(&items).Error
	return items, err
}

func (r *MenuRepository) Search(query string) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	pattern := "%" + strings.ToLower(query) + "%"
	err := r.DB.Where("LOWER(name) LIKE ? AND available = ?", pattern, true).
		Order("name").Find(&items).Error
	return items, err
}
