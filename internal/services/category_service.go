package services

import (
	"github.com/jobnest/jobnest/internal/models"
	"gorm.io/gorm"
)

// CategoryService reads the category catalog. The catalog is reference
// data: seeded at migration time, never mutated here.
type CategoryService struct {
	DB *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{
		DB: db,
	}
}

func (s *CategoryService) List() ([]models.Category, error) {
	var categories []models.Category
	err := s.DB.Find(&categories).Error
	return categories, err
}
