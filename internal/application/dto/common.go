package dto

// ListResponse página de un listado tal como la expone el gateway.
type ListResponse[T any] struct {
	Items         []T   `json:"items"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// DuplicateResponse resultado de un check-duplicate.
type DuplicateResponse struct {
	Duplicate bool `json:"duplicate"`
}
