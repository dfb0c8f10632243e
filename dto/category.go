package dto

// CategoryRequest carries the payload for creating or renaming a category
type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
