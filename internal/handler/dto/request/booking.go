package request

// CreateBookingRequest carries the raw admission payload. Binding is
// deliberately loose: field-level validation lives in the usecase so the
// error details can report each failing field instead of gin's first
// binding error.
type CreateBookingRequest struct {
	UserID    int64  `json:"user_id"`
	ServiceID int64  `json:"service_id"`
	StartAt   string `json:"start_at"`
}
