package lax

// ErrorType categorizes parse-time failures. Classification itself
// never fails; the only parse error today is caller misconfiguration.
type ErrorType string

const (
	ErrorTypeInvalidMode ErrorType = "invalid_mode"
)

// ParseError is the error type returned by ParseMode.
type ParseError struct {
	Type    ErrorType
	Message string
}

func (e *ParseError) Error() string {
	return e.Message
}

// NewParseError creates a ParseError with the given type and message.
func NewParseError(errType ErrorType, message string) *ParseError {
	return &ParseError{
		Type:    errType,
		Message: message,
	}
}
