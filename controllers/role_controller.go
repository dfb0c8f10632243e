package controllers

import (
	"net/http"

	"github.com/eventcity-api/apperrors"
	"github.com/eventcity-api/dto"
	"github.com/eventcity-api/repositories"
	"github.com/eventcity-api/services"
	"github.com/gin-gonic/gin"
)

// RoleController handles HTTP requests for roles
type RoleController struct {
	roleService *services.RoleService
}

// NewRoleController creates a new role controller instance
func NewRoleController() *RoleController {
	return &RoleController{
		roleService: services.NewRoleService(repositories.NewRoleRepository()),
	}
}

// GetRoles handles GET /api/roles
func (c *RoleController) GetRoles(ctx *gin.Context) {
	roles, err := c.roleService.ListRoles()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, roles)
}

// GetRole handles GET /api/roles/:id
func (c *RoleController) GetRole(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	role, err := c.roleService.GetRole(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, role)
}

// CreateRole handles POST /api/roles
func (c *RoleController) CreateRole(ctx *gin.Context) {
	var request dto.RoleRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondError(ctx, apperrors.Malformed(err.Error()))
		return
	}

	role, err := c.roleService.CreateRole(request)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, role)
}

// UpdateRole handles PUT /api/roles/:id
func (c *RoleController) UpdateRole(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var request dto.RoleRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondError(ctx, apperrors.Malformed(err.Error()))
		return
	}

	role, err := c.roleService.UpdateRole(id, request)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, role)
}

// DeleteRole handles DELETE /api/roles/:id
func (c *RoleController) DeleteRole(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.roleService.DeleteRole(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
