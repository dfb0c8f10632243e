package controllers

import (
	"net/http"

	"github.com/eventcity-api/apperrors"
	"github.com/eventcity-api/dto"
	"github.com/eventcity-api/repositories"
	"github.com/eventcity-api/services"
	"github.com/gin-gonic/gin"
)

// UserController handles HTTP requests for users, including login
type UserController struct {
	userService *services.UserService
}

// NewUserController creates a new user controller instance
func NewUserController() *UserController {
	return &UserController{
		userService: services.NewUserService(
			repositories.NewUserRepository(),
			repositories.NewRoleRepository(),
		),
	}
}

// GetUsers handles GET /api/users
func (c *UserController) GetUsers(ctx *gin.Context) {
	users, err := c.userService.ListUsers()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, users)
}

// GetUser handles GET /api/users/:id
func (c *UserController) GetUser(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	user, err := c.userService.GetUser(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// CreateUser handles POST /api/users
func (c *UserController) CreateUser(ctx *gin.Context) {
	var request dto.CreateUserRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondError(ctx, apperrors.Malformed(err.Error()))
		return
	}

	user, err := c.userService.CreateUser(request)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, user)
}

// UpdateUser handles PATCH /api/users/:id
func (c *UserController) UpdateUser(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var request dto.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondError(ctx, apperrors.Malformed(err.Error()))
		return
	}

	user, err := c.userService.UpdateUser(id, request)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// DeleteUser handles DELETE /api/users/:id
func (c *UserController) DeleteUser(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.userService.DeleteUser(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// Login handles POST /api/users/login
func (c *UserController) Login(ctx *gin.Context) {
	var request dto.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondError(ctx, apperrors.Malformed(err.Error()))
		return
	}

	user, err := c.userService.Login(request)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}
