package api

// ErrorResponse is the generic error envelope returned by every handler.
type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

// ValidationErrorResponse carries field-level detail for schema violations.
type ValidationErrorResponse struct {
	Error   string              `json:"error" example:"invalid data"`
	Details map[string][]string `json:"details,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
