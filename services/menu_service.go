package services

import (
	"errors"

	"github.com/Naveendeworks/emergent/entity"
	"github.com/Naveendeworks/emergent/repository"
	"gorm.io/gorm"
)

type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

type MenuResponse struct {
	Items      []entity.MenuItem `json:"items"`
	Categories []string          `json:"categories"`
}

func (s *MenuService) Menu() (*MenuResponse, error) {
	items, err := s.Repo.ListAvailable()
	if err != nil {
		return nil, err
	}
	categories, err := s.Repo.Categories()
	if err != nil {
		return nil, err
	}
	return &MenuResponse{Items: items, Categories: categories}, nil
}

func (s *MenuService) Item(id string) (*entity.MenuItem, error) {
	item, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *MenuService) ByCategory(category string) ([]entity.MenuItem, error) {
	return s.Repo.ListByCategory(category)
}

func (s *MenuService) Search(query string) ([]entity.MenuItem, error) {
	return s.Repo.Search(query)
}
