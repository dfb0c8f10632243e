package services_test

import (
	"testing"
	"time"

	"github.com/eventcity-api/apperrors"
	"github.com/eventcity-api/dto"
	"github.com/eventcity-api/models"
	"github.com/eventcity-api/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// MockUserRepository is a mock implementation of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindAll() ([]models.User, error) {
	args := m.Called()
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(id uint) (models.User, error) {
	args := m.Called(id)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(email string) (models.User, error) {
	args := m.Called(email)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockUserRepository) Create(user models.User) (models.User, error) {
	args := m.Called(user)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockUserRepository) Update(user models.User) (models.User, error) {
	args := m.Called(user)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockUserRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockUserRepository) ExistsByEmail(email string) (bool, error) {
	args := m.Called(email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ExistsByPhone(phone string) (bool, error) {
	args := m.Called(phone)
	return args.Bool(0), args.Error(1)
}

func birthDate(years int) dto.Date {
	return dto.NewDate(time.Now().AddDate(-years, 0, 0))
}

func validCreateRequest() dto.CreateUserRequest {
	return dto.CreateUserRequest{
		FirstName: "eva",
		LastName:  "retamar",
		BirthDate: birthDate(30),
		Email:     " Eva.Retamar@Example.COM ",
		Phone:     "612345678",
		Password:  "correctPW1",
		RoleID:    1,
	}
}

func TestCreateUser_NormalizesAndHashes(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRoles := new(MockRoleRepository)
	svc := services.NewUserService(mockRepo, mockRoles)

	mockRoles.On("FindByID", uint(1)).Return(models.Role{ID: 1, Name: "Admin"}, nil)
	mockRepo.On("ExistsByEmail", "eva.retamar@example.com").Return(false, nil)
	mockRepo.On("ExistsByPhone", "612345678").Return(false, nil)
	mockRepo.On("Create", mock.MatchedBy(func(u models.User) bool {
		hashed := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("correctPW1")) == nil
		return u.FirstName == "Eva" &&
			u.LastName == "Retamar" &&
			u.Email == "eva.retamar@example.com" &&
			u.Phone == "612345678" &&
			u.RoleID == 1 &&
			hashed
	})).Return(models.User{
		ID:        7,
		FirstName: "Eva",
		LastName:  "Retamar",
		Email:     "eva.retamar@example.com",
		Phone:     "612345678",
		RoleID:    1,
	}, nil)

	result, err := svc.CreateUser(validCreateRequest())

	assert.NoError(t, err)
	assert.Equal(t, uint(7), result.ID)
	assert.Equal(t, "Eva", result.FirstName)
	assert.Equal(t, "eva.retamar@example.com", result.Email)
	assert.Equal(t, "Admin", result.Role)
	mockRepo.AssertExpectations(t)
	mockRoles.AssertExpectations(t)
}

func TestCreateUser_UnknownRole(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRoles := new(MockRoleRepository)
	svc := services.NewUserService(mockRepo, mockRoles)

	mockRoles.On("FindByID", uint(1)).Return(models.Role{}, gorm.ErrRecordNotFound)

	_, err := svc.CreateUser(validCreateRequest())

	assert.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
	mockRepo.AssertNotCalled(t, "Create")
}

func TestCreateUser_InvalidPhone(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRoles := new(MockRoleRepository)
	svc := services.NewUserService(mockRepo, mockRoles)

	req := validCreateRequest()
	req.Phone = "812345678" // must start with 6, 7 or 9

	_, err := svc.CreateUser(req)

	assert.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	mockRepo.AssertNotCalled(t, "Create")
}

func TestCreateUser_WeakPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRoles := new(MockRoleRepository)
	svc := services.NewUserService(mockRepo, mockRoles)

	req := validCreateRequest()
	req.Password = "alllowercase1"

	_, err := svc.CreateUser(req)

	assert.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	mockRepo.AssertNotCalled(t, "Create")
}

func TestCreateUser_UnderAge(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRoles := new(MockRoleRepository)
	svc := services.NewUserService(mockRepo, mockRoles)

	req := validCreateRequest()
	req.BirthDate = birthDate(13)

	_, err := svc.CreateUser(req)

	assert.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	mockRepo.AssertNotCalled(t, "Create")
}

func TestCreateUser_HyphenatedNameAccepted(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRoles := new(MockRoleRepository)
	svc := services.NewUserService(mockRepo, mockRoles)

	req := validCreateRequest()
	req.FirstName = "Anne-Marie"
	req.LastName = "O'Brien"

	mockRoles.On("FindByID", uint(1)).Return(models.Role{ID: 1, Name: "Admin"}, nil)
	mockRepo.On("ExistsByEmail", "eva.retamar@example.com").Return(false, nil)
	mockRepo.On("ExistsByPhone", "612345678").Return(false, nil)
	mockRepo.On("Create", mock.MatchedBy(func(u models.User) bool {
		return u.FirstName == "Anne-Marie" && u.LastName == "O'Brien"
	})).Return(models.User{ID: 8, FirstName: "Anne-Marie", LastName: "O'Brien"}, nil)

	result, err := svc.CreateUser(req)

	assert.NoError(t, err)
	assert.Equal(t, "Anne-Marie", result.FirstName)
	assert.Equal(t, "O'Brien", result.LastName)
	mockRepo.AssertExpectations(t)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRoles := new(MockRoleRepository)
	svc := services.NewUserService(mockRepo, mockRoles)

	mockRoles.On("FindByID", uint(1)).Return(models.Role{ID: 1, Name: "Admin"}, nil)
	mockRepo.On("ExistsByEmail", "eva.retamar@example.com").Return(true, nil)

	_, err := svc.CreateUser(validCreateRequest())

	assert.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))
	mockRepo.AssertNotCalled(t, "Create")
}

func TestUpdateUser_PhoneOnlyLeavesRestUntouched(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRoles := new(MockRoleRepository)
	svc := services.NewUserService(mockRepo, mockRoles)

	existing := models.User{
		ID:        5,
		FirstName: "Eva",
		LastName:  "Retamar",
		BirthDate: time.Date(1995, 6, 1, 0, 0, 0, 0, time.UTC),
		Email:     "eva.retamar@example.com",
		Phone:     "612345678",
		Password:  "$2a$10$hash",
		RoleID:    1,
		Role:      models.Role{ID: 1, Name: "Admin"},
	}
	mockRepo.On("FindByID", uint(5)).Return(existing, nil)
	mockRepo.On("ExistsByPhone", "712345678").Return(false, nil)

	updated := existing
	updated.Phone = "712345678"
	mockRepo.On("Update", updated).Return(updated, nil)

	phone := "712345678"
	result, err := svc.UpdateUser(5, dto.UpdateUserRequest{Phone: &phone})

	assert.NoError(t, err)
	assert.Equal(t, "712345678", result.Phone)
	assert.Equal(t, "Eva", result.FirstName)
	assert.Equal(t, "eva.retamar@example.com", result.Email)
	assert.Equal(t, "Admin", result.Role)
	mockRepo.AssertExpectations(t)
	mockRoles.AssertNotCalled(t, "FindByID")
}

func TestUpdateUser_MalformedEmailRejected(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRoles := new(MockRoleRepository)
	svc := services.NewUserService(mockRepo, mockRoles)

	existing := models.User{ID: 5, FirstName: "Eva", Email: "eva@example.com", Phone: "612345678", RoleID: 1, Role: models.Role{ID: 1, Name: "Admin"}}
	mockRepo.On("FindByID", uint(5)).Return(existing, nil)

	email := "not-an-email"
	_, err := svc.UpdateUser(5, dto.UpdateUserRequest{Email: &email})

	assert.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	mockRepo.AssertNotCalled(t, "ExistsByEmail")
	mockRepo.AssertNotCalled(t, "Update")
}

func TestUpdateUser_PasswordIsRehashed(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRoles := new(MockRoleRepository)
	svc := services.NewUserService(mockRepo, mockRoles)

	existing := models.User{ID: 5, FirstName: "Eva", LastName: "Retamar", Email: "eva@example.com", Phone: "612345678", Password: "$2a$10$old", RoleID: 1, Role: models.Role{ID: 1, Name: "Admin"}}
	mockRepo.On("FindByID", uint(5)).Return(existing, nil)
	mockRepo.On("Update", mock.MatchedBy(func(u models.User) bool {
		return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("newSecret9")) == nil
	})).Return(existing, nil)

	password := "newSecret9"
	_, err := svc.UpdateUser(5, dto.UpdateUserRequest{Password: &password})

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestLogin_NormalizedEmailMatches(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRoles := new(MockRoleRepository)
	svc := services.NewUserService(mockRepo, mockRoles)

	hash, _ := bcrypt.GenerateFromPassword([]byte("correctPW1"), bcrypt.DefaultCost)
	stored := models.User{ID: 2, Email: "user@example.com", Password: string(hash), Role: models.Role{Name: "Admin"}}
	mockRepo.On("FindByEmail", "user@example.com").Return(stored, nil)

	result, err := svc.Login(dto.LoginRequest{Email: "USER@Example.com", Password: "correctPW1"})

	assert.NoError(t, err)
	assert.Equal(t, "user@example.com", result.Email)
	mockRepo.AssertExpectations(t)
}

func TestLogin_WrongPasswordIsConflictNotNotFound(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRoles := new(MockRoleRepository)
	svc := services.NewUserService(mockRepo, mockRoles)

	hash, _ := bcrypt.GenerateFromPassword([]byte("correctPW1"), bcrypt.DefaultCost)
	stored := models.User{ID: 2, Email: "user@example.com", Password: string(hash)}
	mockRepo.On("FindByEmail", "user@example.com").Return(stored, nil)

	_, err := svc.Login(dto.LoginRequest{Email: "user@example.com", Password: "wrongPW99"})

	assert.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))
	assert.False(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestLogin_UnknownEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRoles := new(MockRoleRepository)
	svc := services.NewUserService(mockRepo, mockRoles)

	mockRepo.On("FindByEmail", "ghost@example.com").Return(models.User{}, gorm.ErrRecordNotFound)

	_, err := svc.Login(dto.LoginRequest{Email: "ghost@example.com", Password: "correctPW1"})

	assert.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestDeleteUser_NotFound(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRoles := new(MockRoleRepository)
	svc := services.NewUserService(mockRepo, mockRoles)

	mockRepo.On("FindByID", uint(11)).Return(models.User{}, gorm.ErrRecordNotFound)

	err := svc.DeleteUser(11)

	assert.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
	mockRepo.AssertNotCalled(t, "Delete")
}
