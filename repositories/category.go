package repositories

import (
	"github.com/eventcity-api/database"
	"github.com/eventcity-api/models"
)

// CategoryRepository handles database operations for categories
type CategoryRepository struct{}

// NewCategoryRepository creates a new category repository instance
func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{}
}

// FindAll retrieves all categories
func (r *CategoryRepository) FindAll() ([]models.Category, error) {
	var categories []models.Category
	result := database.DB.Find(&categories)
	return categories, result.Error
}

// FindByID retrieves a category by its ID
func (r *CategoryRepository) FindByID(id uint) (models.Category, error) {
	var category models.Category
	result := database.DB.First(&category, "id = ?", id)
	return category, result.Error
}

// Create inserts a new category into the database
func (r *CategoryRepository) Create(category models.Category) (models.Category, error) {
	result := database.DB.Create(&category)
	return category, result.Error
}

// Update modifies an existing category
func (r *CategoryRepository) Update(category models.Category) (models.Category, error) {
	result := database.DB.Save(&category)
	return category, result.Error
}

// Delete removes a category from the database
func (r *CategoryRepository) Delete(id uint) error {
	result := database.DB.Delete(&models.Category{}, "id = ?", id)
	return result.Error
}

// Exists checks if a category exists
func (r *CategoryRepository) Exists(id uint) (bool, error) {
	var count int64
	err := database.DB.Model(&models.Category{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
