package services

import (
	"errors"
	"fmt"
	"log"

	"github.com/eventcity-api/apperrors"
	"github.com/eventcity-api/dto"
	"github.com/eventcity-api/models"
	"github.com/eventcity-api/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserRepository defines the persistence contract the user service expects
type UserRepository interface {
	FindAll() ([]models.User, error)
	FindByID(id uint) (models.User, error)
	FindByEmail(email string) (models.User, error)
	Create(user models.User) (models.User, error)
	Update(user models.User) (models.User, error)
	Delete(id uint) error
	ExistsByEmail(email string) (bool, error)
	ExistsByPhone(phone string) (bool, error)
}

// UserService handles business logic for users
type UserService struct {
	repo     UserRepository
	roleRepo RoleRepository
}

// NewUserService creates a new user service instance
func NewUserService(repo UserRepository, roleRepo RoleRepository) *UserService {
	return &UserService{repo: repo, roleRepo: roleRepo}
}

// ListUsers retrieves all users. An empty store is reported as not found.
func (s *UserService) ListUsers() ([]dto.UserResponse, error) {
	users, err := s.repo.FindAll()
	if err != nil {
		return nil, apperrors.Internal("failed to list users", err)
	}
	if len(users) == 0 {
		return nil, apperrors.NotFoundMsg("user", "no users found in the database")
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, toUserResponse(user))
	}
	return responses, nil
}

// GetUser retrieves a user by its ID
func (s *UserService) GetUser(id uint) (dto.UserResponse, error) {
	user, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.UserResponse{}, apperrors.NotFound("user", id)
		}
		return dto.UserResponse{}, apperrors.Internal("failed to get user", err)
	}
	return toUserResponse(user), nil
}

// CreateUser validates, normalizes and registers a new user. The role
// reference must exist and email/phone must be unique.
func (s *UserService) CreateUser(req dto.CreateUserRequest) (dto.UserResponse, error) {
	if !utils.ValidName(req.FirstName) {
		return dto.UserResponse{}, apperrors.Validation("firstName", "first name must not be blank")
	}
	if !utils.ValidName(req.LastName) {
		return dto.UserResponse{}, apperrors.Validation("lastName", "last name must not be blank")
	}
	if !utils.ValidBirthDate(req.BirthDate.Time) {
		return dto.UserResponse{}, apperrors.Validation("birthDate", "birth date must not be in the future and age must be between 14 and 100")
	}
	if !utils.ValidPhone(req.Phone) {
		return dto.UserResponse{}, apperrors.Validation("phone", "phone must have 9 digits and start with 6, 7 or 9")
	}
	if !utils.ValidPassword(req.Password) {
		return dto.UserResponse{}, apperrors.Validation("password", "password must have at least 8 characters including upper case, lower case and a digit")
	}

	role, err := s.roleRepo.FindByID(req.RoleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.UserResponse{}, apperrors.NotFound("role", req.RoleID)
		}
		return dto.UserResponse{}, apperrors.Internal("failed to resolve role", err)
	}

	email := utils.NormalizeEmail(req.Email)
	if err := s.checkUnique(email, req.Phone); err != nil {
		return dto.UserResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return dto.UserResponse{}, apperrors.Internal("failed to hash password", err)
	}

	user := models.User{
		FirstName: utils.Capitalize(req.FirstName),
		LastName:  utils.Capitalize(req.LastName),
		BirthDate: req.BirthDate.Time,
		Email:     email,
		Phone:     req.Phone,
		Password:  string(hash),
		RoleID:    role.ID,
		Role:      role,
	}

	created, err := s.repo.Create(user)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return dto.UserResponse{}, apperrors.Conflict("user", "email", "email or phone already registered")
		}
		return dto.UserResponse{}, apperrors.Internal("failed to create user", err)
	}
	created.Role = role
	return toUserResponse(created), nil
}

// UpdateUser applies a partial update: only the fields present in the
// request overwrite the stored user, everything else is preserved.
func (s *UserService) UpdateUser(id uint, req dto.UpdateUserRequest) (dto.UserResponse, error) {
	user, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.UserResponse{}, apperrors.NotFound("user", id)
		}
		return dto.UserResponse{}, apperrors.Internal("failed to get user", err)
	}

	if req.FirstName != nil {
		if !utils.ValidName(*req.FirstName) {
			return dto.UserResponse{}, apperrors.Validation("firstName", "first name must not be blank")
		}
		user.FirstName = utils.Capitalize(*req.FirstName)
	}
	if req.LastName != nil {
		if !utils.ValidName(*req.LastName) {
			return dto.UserResponse{}, apperrors.Validation("lastName", "last name must not be blank")
		}
		user.LastName = utils.Capitalize(*req.LastName)
	}
	if req.BirthDate != nil {
		if !utils.ValidBirthDate(req.BirthDate.Time) {
			return dto.UserResponse{}, apperrors.Validation("birthDate", "birth date must not be in the future and age must be between 14 and 100")
		}
		user.BirthDate = req.BirthDate.Time
	}
	if req.Email != nil {
		email := utils.NormalizeEmail(*req.Email)
		if !utils.ValidEmail(email) {
			return dto.UserResponse{}, apperrors.Validation("email", "email must be a valid address")
		}
		if email != user.Email {
			exists, err := s.repo.ExistsByEmail(email)
			if err != nil {
				return dto.UserResponse{}, apperrors.Internal("failed to check email", err)
			}
			if exists {
				return dto.UserResponse{}, apperrors.Conflict("user", "email", fmt.Sprintf("email %s is already registered", email))
			}
		}
		user.Email = email
	}
	if req.Phone != nil {
		if !utils.ValidPhone(*req.Phone) {
			return dto.UserResponse{}, apperrors.Validation("phone", "phone must have 9 digits and start with 6, 7 or 9")
		}
		if *req.Phone != user.Phone {
			exists, err := s.repo.ExistsByPhone(*req.Phone)
			if err != nil {
				return dto.UserResponse{}, apperrors.Internal("failed to check phone", err)
			}
			if exists {
				return dto.UserResponse{}, apperrors.Conflict("user", "phone", fmt.Sprintf("phone %s is already registered", *req.Phone))
			}
		}
		user.Phone = *req.Phone
	}
	if req.Password != nil {
		if !utils.ValidPassword(*req.Password) {
			return dto.UserResponse{}, apperrors.Validation("password", "password must have at least 8 characters including upper case, lower case and a digit")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return dto.UserResponse{}, apperrors.Internal("failed to hash password", err)
		}
		user.Password = string(hash)
	}
	if req.RoleID != nil {
		role, err := s.roleRepo.FindByID(*req.RoleID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return dto.UserResponse{}, apperrors.NotFound("role", *req.RoleID)
			}
			return dto.UserResponse{}, apperrors.Internal("failed to resolve role", err)
		}
		user.RoleID = role.ID
		user.Role = role
	}

	updated, err := s.repo.Update(user)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return dto.UserResponse{}, apperrors.Conflict("user", "email", "email or phone already registered")
		}
		return dto.UserResponse{}, apperrors.Internal("failed to update user", err)
	}
	return toUserResponse(updated), nil
}

// DeleteUser removes a user by its ID
func (s *UserService) DeleteUser(id uint) error {
	if _, err := s.repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("user", id)
		}
		return apperrors.Internal("failed to get user", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return apperrors.Internal("failed to delete user", err)
	}
	return nil
}

// Login verifies credentials against the stored hash. It issues no session
// or token, on success it simply returns the user view.
func (s *UserService) Login(req dto.LoginRequest) (dto.UserResponse, error) {
	email := utils.NormalizeEmail(req.Email)

	user, err := s.repo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.UserResponse{}, apperrors.NotFoundMsg("user", fmt.Sprintf("no user registered with email %s", email))
		}
		return dto.UserResponse{}, apperrors.Internal("failed to look up user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return dto.UserResponse{}, apperrors.Conflict("user", "password", "invalid credentials")
	}

	log.Printf("Successful login for user with email: %s", email)
	return toUserResponse(user), nil
}

func (s *UserService) checkUnique(email, phone string) error {
	exists, err := s.repo.ExistsByEmail(email)
	if err != nil {
		return apperrors.Internal("failed to check email", err)
	}
	if exists {
		return apperrors.Conflict("user", "email", fmt.Sprintf("email %s is already registered", email))
	}

	exists, err = s.repo.ExistsByPhone(phone)
	if err != nil {
		return apperrors.Internal("failed to check phone", err)
	}
	if exists {
		return apperrors.Conflict("user", "phone", fmt.Sprintf("phone %s is already registered", phone))
	}
	return nil
}

func toUserResponse(user models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		BirthDate: dto.NewDate(user.BirthDate),
		Email:     user.Email,
		Phone:     user.Phone,
		Role:      user.Role.Name,
	}
}
