package dto

import "time"

type CreateTodoRequest struct {
	Title       string `json:"title" binding:"required,max=100"`
	Description string `json:"description" binding:"max=500"`
}

// UpdateTodoRequest carries the full replacement state; PUT is not a
// partial update, so the rules match CreateTodoRequest.
type UpdateTodoRequest struct {
	Title       string `json:"title" binding:"required,max=100"`
	Description string `json:"description" binding:"max=500"`
}

type TodoResponse struct {
	ID               int64     `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	CreationTime     time.Time `json:"creationTime"`
	ModificationTime time.Time `json:"modificationTime"`
}

// ValidationError describes one rejected field.
type ValidationError struct {
	Field        string `json:"field"`
	ErrorCode    string `json:"errorCode"`
	ErrorMessage string `json:"errorMessage"`
}

// ErrorDocument is the body returned for 400 responses.
type ErrorDocument struct {
	Status           string            `json:"status"`
	Code             int               `json:"code"`
	Message          string            `json:"message"`
	ValidationErrors []ValidationError `json:"validationErrors,omitempty"`
}
