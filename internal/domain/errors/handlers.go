package errors

// ErrorResponse is the uniform failure body. Details is only filled outside production.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// ValidationErrorResponse lists every rejected field.
type ValidationErrorResponse struct {
	Errors []FieldError `json:"errors"`
}
