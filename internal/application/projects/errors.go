package projects

// FieldError is a recoverable validation failure tied to a single form
// field. The HTTP layer renders it inline next to the offending field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *FieldError) Error() string { return e.Message }
