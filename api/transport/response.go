package transport

// MessageResponse is the plain `{message}` body used for simple outcomes:
// signup confirmation, model conflicts, auth failures.
type MessageResponse struct {
	Message string `json:"message"`
}

// ValidationDetail locates a request-shape violation: which segment of the
// request it came from and which fields broke the schema.
type ValidationDetail struct {
	Source  string   `json:"source"`
	Keys    []string `json:"keys"`
	Message string   `json:"message"`
}

// ValidationResponse is the body of every 400 produced by schema validation.
type ValidationResponse struct {
	Message    string           `json:"message"`
	Validation ValidationDetail `json:"validation"`
}

// NewValidationResponse builds the standard validation failure body.
func NewValidationResponse(source string, keys []string, message string) ValidationResponse {
	if keys == nil {
		keys = []string{}
	}
	return ValidationResponse{
		Message: "Validation failed",
		Validation: ValidationDetail{
			Source:  source,
			Keys:    keys,
			Message: message,
		},
	}
}

// AuthErrorResponse is the body of token verification failures.
type AuthErrorResponse struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}
