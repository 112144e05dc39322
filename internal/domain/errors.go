package domain

import "errors"

// Sentinel errors for domain-level error discrimination.
// Services wrap these so handlers can map to HTTP status codes without leaking infrastructure details.
var (
	ErrNotFound             = errors.New("not found")
	ErrConflict             = errors.New("conflict")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrForbidden            = errors.New("forbidden")
	ErrBadRequest           = errors.New("bad request")
	ErrServiceNotConfigured = errors.New("service not configured")
)

// Error pairs a user-facing message with a sentinel kind so errors.Is
// still works while the message stays clean of sentinel suffixes.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }
func (e *Error) Unwrap() error { return e.Kind }

func BadRequest(msg string) error    { return &Error{Kind: ErrBadRequest, Message: msg} }
func NotFound(msg string) error      { return &Error{Kind: ErrNotFound, Message: msg} }
func Conflict(msg string) error      { return &Error{Kind: ErrConflict, Message: msg} }
func Unauthorized(msg string) error  { return &Error{Kind: ErrUnauthorized, Message: msg} }
func NotConfigured(msg string) error { return &Error{Kind: ErrServiceNotConfigured, Message: msg} }
