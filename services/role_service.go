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

// RoleRepository defines the persistence contract the role service expects
type RoleRepository interface {
	FindAll() ([]models.Role, error)
	FindByID(id uint) (models.Role, error)
	Create(role models.Role) (models.Role, error)
	Update(role models.Role) (models.Role, error)
	Delete(id uint) error
}

// RoleService handles business logic for roles
type RoleService struct {
	repo RoleRepository
}

// NewRoleService creates a new role service instance
func NewRoleService(repo RoleRepository) *RoleService {
	return &RoleService{repo: repo}
}

// ListRoles retrieves all roles. An empty store is reported as not found,
// callers are expected to seed roles before anything else works.
func (s *RoleService) ListRoles() ([]dto.RoleResponse, error) {
	roles, err := s.repo.FindAll()
	if err != nil {
		return nil, apperrors.Internal("failed to list roles", err)
	}
	if len(roles) == 0 {
		return nil, apperrors.NotFoundMsg("role", "no roles found in the database")
	}

	responses := make([]dto.RoleResponse, 0, len(roles))
	for _, role := range roles {
		responses = append(responses, toRoleResponse(role))
	}
	return responses, nil
}

// GetRole retrieves a role by its ID
func (s *RoleService) GetRole(id uint) (dto.RoleResponse, error) {
	role, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.RoleResponse{}, apperrors.NotFound("role", id)
		}
		return dto.RoleResponse{}, apperrors.Internal("failed to get role", err)
	}
	return toRoleResponse(role), nil
}

// CreateRole creates a new role with its name stored capitalized
func (s *RoleService) CreateRole(req dto.RoleRequest) (dto.RoleResponse, error) {
	name := utils.Capitalize(req.Name)
	if name == "" {
		return dto.RoleResponse{}, apperrors.Validation("name", "role name must not be blank")
	}

	role, err := s.repo.Create(models.Role{Name: name})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return dto.RoleResponse{}, apperrors.Conflict("role", "name", fmt.Sprintf("role %q already exists", name))
		}
		return dto.RoleResponse{}, apperrors.Internal("failed to create role", err)
	}
	return toRoleResponse(role), nil
}

// UpdateRole overwrites the name of an existing role
func (s *RoleService) UpdateRole(id uint, req dto.RoleRequest) (dto.RoleResponse, error) {
	role, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.RoleResponse{}, apperrors.NotFound("role", id)
		}
		return dto.RoleResponse{}, apperrors.Internal("failed to get role", err)
	}

	name := utils.Capitalize(req.Name)
	if name == "" {
		return dto.RoleResponse{}, apperrors.Validation("name", "role name must not be blank")
	}
	role.Name = name

	updated, err := s.repo.Update(role)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return dto.RoleResponse{}, apperrors.Conflict("role", "name", fmt.Sprintf("role %q already exists", name))
		}
		return dto.RoleResponse{}, apperrors.Internal("failed to update role", err)
	}
	return toRoleResponse(updated), nil
}

// DeleteRole removes a role by its ID
func (s *RoleService) DeleteRole(id uint) error {
	if _, err := s.repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("role", id)
		}
		return apperrors.Internal("failed to get role", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return apperrors.Internal("failed to delete role", err)
	}
	return nil
}

func toRoleResponse(role models.Role) dto.RoleResponse {
	return dto.RoleResponse{ID: role.ID, Name: role.Name}
}
