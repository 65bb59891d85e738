package dto

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// StatusResponse reports service liveness.
type StatusResponse struct {
	Status string `json:"status"`
}

// DeleteResponse confirms a soft delete.
type DeleteResponse struct {
	Deleted bool `json:"deleted"`
}
