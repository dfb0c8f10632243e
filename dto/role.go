package dto

// RoleRequest carries the payload for creating or renaming a role
type RoleRequest struct {
	Name string `json:"name" binding:"required"`
}

// RoleResponse represents a role in API responses
type RoleResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
