package errors

import (
	Errors "errors"
	"strings"

	"linkup_client/global"
)

// Kind classifies a request error for callers that branch on the taxonomy
type Kind int

// Error kinds
const (
	KindUnknown Kind = iota
	KindNetwork
	KindAuth
	KindValidation
	KindConflict
	KindServer
	KindStorage
)

// FieldError is one field-level validation failure from the server
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// RequestError carries the taxonomy kind and a human-readable message
type RequestError struct {
	Kind    Kind
	Status  int
	Message string
	Fields  []FieldError
}

// Error returns the human-readable message
func (e *RequestError) Error() string {
	return e.Message
}

// HandleBasicError handles basic error and logs
func HandleBasicError(err error) bool {
	if err != nil {
		global.InternalLogger.Println(err)
		return true
	}
	return false
}

// HandleComplexError handles complex errors and logs
func HandleComplexError(problem string, err string) error {
	global.MonitorLogger.Println("Complex error; Problem: " + problem + "; Error: " + err)
	return Errors.New("Problem: " + problem + "; Error: " + err)
}

// HandleStorageError logs a device storage failure and wraps it
func HandleStorageError(op string, err error) error {
	global.InternalLogger.Println("Storage; Op: " + op + "; Error: " + err.Error())
	return &RequestError{Kind: KindStorage, Message: "Failed to access device storage"}
}

// Network builds a transport error (no response received)
func Network() error {
	return &RequestError{Kind: KindNetwork, Message: "Network error. Please check your connection"}
}

// Auth builds a session-invalidating credentials error
func Auth(status int) error {
	return &RequestError{Kind: KindAuth, Status: status, Message: "Invalid credentials. Please log in again"}
}

// Conflict builds an already-exists error, preferring the server message
func Conflict(status int, message string) error {
	if message == "" {
		message = "Already exists"
	}
	return &RequestError{Kind: KindConflict, Status: status, Message: message}
}

// Validation builds a field-level error; details are joined one per line
func Validation(status int, fields []FieldError) error {
	message := ValidationMessage(fields)
	if message == "" {
		message = "Invalid input"
	}
	return &RequestError{Kind: KindValidation, Status: status, Message: message, Fields: fields}
}

// Server builds a generic retry-later error without surfacing server detail
func Server(status int) error {
	return &RequestError{Kind: KindServer, Status: status, Message: "Server error. Please try again later"}
}

// Request builds an error with the given kind, status and message
func Request(kind Kind, status int, message string) error {
	return &RequestError{Kind: kind, Status: status, Message: message}
}

// ValidationMessage concatenates field details into "field: message" lines
func ValidationMessage(fields []FieldError) string {
	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		if f.Field == "" && f.Message == "" {
			continue
		}
		lines = append(lines, f.Field+": "+f.Message)
	}
	return strings.Join(lines, "\n")
}

// KindOf returns the taxonomy kind of an error, KindUnknown for foreign errors
func KindOf(err error) Kind {
	var reqErr *RequestError
	if Errors.As(err, &reqErr) {
		return reqErr.Kind
	}
	return KindUnknown
}

// WithFallback replaces an unknown error with per-call fallback text;
// typed request errors pass through unchanged
func WithFallback(err error, fallback string) error {
	if err == nil {
		return nil
	}
	var reqErr *RequestError
	if Errors.As(err, &reqErr) {
		return err
	}
	return &RequestError{Kind: KindUnknown, Message: fallback}
}

// As unwraps err into a RequestError when possible
func As(err error) (*RequestError, bool) {
	var reqErr *RequestError
	ok := Errors.As(err, &reqErr)
	return reqErr, ok
}
