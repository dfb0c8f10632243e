package services

import (
	"errors"
	"fmt"

	"github.com/eventcity-api/apperrors"
	"github.com/eventcity-api/dto"
	"github.com/eventcity-api/models"
	"github.com/eventcity-api/utils"
	"gorm.io/gorm"
)

// CategoryRepository defines the persistence contract the category service expects
type CategoryRepository interface {
	FindAll() ([]models.Category, error)
	FindByID(id uint) (models.Category, error)
	Create(category models.Category) (models.Category, error)
	Update(category models.Category) (models.Category, error)
	Delete(id uint) error
}

// CategoryService handles business logic for categories
type CategoryService struct {
	repo CategoryRepository
}

// NewCategoryService creates a new category service instance
func NewCategoryService(repo CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// ListCategories retrieves all categories. An empty store is reported as
// not found, mirroring the role contract.
func (s *CategoryService) ListCategories() ([]dto.CategoryResponse, error) {
	categories, err := s.repo.FindAll()
	if err != nil {
		return nil, apperrors.Internal("failed to list categories", err)
	}
	if len(categories) == 0 {
		return nil, apperrors.NotFoundMsg("category", "no categories found in the database")
	}

	responses := make([]dto.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		responses = append(responses, toCategoryResponse(category))
	}
	return responses, nil
}

// GetCategory retrieves a category by its ID
func (s *CategoryService) GetCategory(id uint) (dto.CategoryResponse, error) {
	category, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CategoryResponse{}, apperrors.NotFound("category", id)
		}
		return dto.CategoryResponse{}, apperrors.Internal("failed to get category", err)
	}
	return toCategoryResponse(category), nil
}

// CreateCategory creates a new category with its name stored capitalized
func (s *CategoryService) CreateCategory(req dto.CategoryRequest) (dto.CategoryResponse, error) {
	name := utils.Capitalize(req.Name)
	if name == "" {
		return dto.CategoryResponse{}, apperrors.Validation("name", "category name must not be blank")
	}

	category, err := s.repo.Create(models.Category{Name: name})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return dto.CategoryResponse{}, apperrors.Conflict("category", "name", fmt.Sprintf("category %q already exists", name))
		}
		return dto.CategoryResponse{}, apperrors.Internal("failed to create category", err)
	}
	return toCategoryResponse(category), nil
}

// UpdateCategory overwrites the name of an existing category
func (s *CategoryService) UpdateCategory(id uint, req dto.CategoryRequest) (dto.CategoryResponse, error) {
	category, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CategoryResponse{}, apperrors.NotFound("category", id)
		}
		return dto.CategoryResponse{}, apperrors.Internal("failed to get category", err)
	}

	name := utils.Capitalize(req.Name)
	if name == "" {
		return dto.CategoryResponse{}, apperrors.Validation("name", "category name must not be blank")
	}
	category.Name = name

	updated, err := s.repo.Update(category)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return dto.CategoryResponse{}, apperrors.Conflict("category", "name", fmt.Sprintf("category %q already exists", name))
		}
		return dto.CategoryResponse{}, apperrors.Internal("failed to update category", err)
	}
	return toCategoryResponse(updated), nil
}

// DeleteCategory removes a category by its ID
func (s *CategoryService) DeleteCategory(id uint) error {
	if _, err := s.repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("category", id)
		}
		return apperrors.Internal("failed to get category", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return apperrors.Internal("failed to delete category", err)
	}
	return nil
}

func toCategoryResponse(category models.Category) dto.CategoryResponse {
	return dto.CategoryResponse{ID: category.ID, Name: category.Name}
}
