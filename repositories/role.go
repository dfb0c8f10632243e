package repositories

import (
	"github.com/eventcity-api/database"
	"github.com/eventcity-api/models"
)

// RoleRepository handles database operations for roles
type RoleRepository struct{}

// NewRoleRepository creates a new role repository instance
func NewRoleRepository() *RoleRepository {
	return &RoleRepository{}
}

// FindAll retrieves all roles
func (r *RoleRepository) FindAll() ([]models.Role, error) {
	var roles []models.Role
	result := database.DB.Find(&roles)
	return roles, result.Error
}

// FindByID retrieves a role by its ID
func (r *RoleRepository) FindByID(id uint) (models.Role, error) {
	var role models.Role
	result := database.DB.First(&role, "id = ?", id)
	return role, result.Error
}

// Create inserts a new role into the database
func (r *RoleRepository) Create(role models.Role) (models.Role, error) {
	result := database.DB.Create(&role)
	return role, result.Error
}

// Update modifies an existing role
func (r *RoleRepository) Update(role models.Role) (models.Role, error) {
	result := database.DB.Save(&role)
	return role, result.Error
}

// Delete removes a role from the database
func (r *RoleRepository) Delete(id uint) error {
	result := database.DB.Delete(&models.Role{}, "id = ?", id)
	return result.Error
}

// Exists checks if a role exists
func (r *RoleRepository) Exists(id uint) (bool, error) {
	var count int64
	err := database.DB.Model(&models.Role{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
