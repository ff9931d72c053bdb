package common

// SuccessResponse is the envelope around every successful API response
type SuccessResponse struct {
	Success bool        `json:"success"`
	Code    interface{} `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is the envelope around every failed API response
type ErrorResponse struct {
	Success bool              `json:"success"`
	Code    interface{}       `json:"code,omitempty"`
	Message string            `json:"message,omitempty"`
	Info    string            `json:"info,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// HealthResponse is returned by the health check
type HealthResponse struct {
	Status      string `json:"status"`
	Environment string `json:"environment"`
	MockVendor  bool   `json:"mock_vendor"`
}
