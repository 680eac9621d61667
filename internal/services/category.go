package services

import (
	"strings"

	"github.com/nitishdmn/trivia-api/internal/models"

	"gorm.io/gorm"
)

type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

func (s *CategoryService) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("id").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// CategoryMap returns all categories as an id -> type mapping, the shape
// the quiz frontend consumes.
func (s *CategoryService) CategoryMap() (map[uint]string, error) {
	categories, err := s.ListCategories()
	if err != nil {
		return nil, err
	}
	result := make(map[uint]string, len(categories))
	for _, c := range categories {
		result[c.ID] = c.Type
	}
	return result, nil
}

func (s *CategoryService) CreateCategory(categoryType string) (*models.Category, error) {
	categoryType = strings.TrimSpace(categoryType)
	if categoryType == "" {
		return nil, ErrCategoryTypeRequired
	}

	var count int64
	if err := s.db.Model(&models.Category{}).Where("type = ?", categoryType).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrCategoryExists
	}

	category := models.Category{Type: categoryType}
	if err := s.db.Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}
