package services

import (
	"testing"

	"github.com/nitishdmn/trivia-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCategory(t *testing.T) {
	db := setupTestDB(t)
	service := NewCategoryService(db)

	category, err := service.CreateCategory("Science")
	require.NoError(t, err)
	assert.NotZero(t, category.ID)
	assert.Equal(t, "Science", category.Type)
}

func TestCreateCategoryEmptyType(t *testing.T) {
	db := setupTestDB(t)
	service := NewCategoryService(db)

	for _, categoryType := range []string{"", "   "} {
		_, err := service.CreateCategory(categoryType)
		assert.ErrorIs(t, err, ErrCategoryTypeRequired)
	}

	var count int64
	require.NoError(t, db.Model(&models.Category{}).Count(&count).Error)
	assert.Zero(t, count, "no category row should be persisted")
}

func TestCreateCategoryDuplicate(t *testing.T) {
	db := setupTestDB(t)
	service := NewCategoryService(db)

	_, err := service.CreateCategory("Art")
	require.NoError(t, err)

	_, err = service.CreateCategory("Art")
	assert.ErrorIs(t, err, ErrCategoryExists)

	var count int64
	require.NoError(t, db.Model(&models.Category{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "duplicate must not add a row")
}

func TestListCategoriesOrderedByID(t *testing.T) {
	db := setupTestDB(t)
	service := NewCategoryService(db)

	for _, categoryType := range []string{"Science", "Art", "Geography"} {
		_, err := service.CreateCategory(categoryType)
		require.NoError(t, err)
	}

	categories, err := service.ListCategories()
	require.NoError(t, err)
	require.Len(t, categories, 3)
	for i := 1; i < len(categories); i++ {
		assert.Less(t, categories[i-1].ID, categories[i].ID)
	}
}

func TestCategoryMap(t *testing.T) {
	db := setupTestDB(t)
	service := NewCategoryService(db)

	science, err := service.CreateCategory("Science")
	require.NoError(t, err)
	art, err := service.CreateCategory("Art")
	require.NoError(t, err)

	m, err := service.CategoryMap()
	require.NoError(t, err)
	assert.Equal(t, map[uint]string{science.ID: "Science", art.ID: "Art"}, m)
}
