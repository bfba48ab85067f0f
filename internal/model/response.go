package model

// ErrorResponse is the uniform error body of the weather proxy endpoint.
type ErrorResponse struct {
	Error   string      `json:"error"`
	Info    interface{} `json:"info,omitempty"`
	Raw     *string     `json:"raw,omitempty"`
	Message interface{} `json:"message,omitempty"`
}
