package failure

import (
	"errors"
	"net/http"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
// Reason carries a machine-readable code and Field names the offending input, when known.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Reason  string `json:"reason,omitempty"`
	Field   string `json:"field,omitempty"`
}

// Reasons let clients branch on a failure without parsing its message.
const (
	ReasonRateLimited         = "RATE_LIMITED"
	ReasonInvalidOrExpired    = "INVALID_OR_EXPIRED"
	ReasonTooManyAttempts     = "TOO_MANY_ATTEMPTS"
	ReasonDeliveryFailed      = "DELIVERY_FAILED"
	ReasonAppTypeMismatch     = "APP_TYPE_MISMATCH"
	ReasonAccountInactive     = "ACCOUNT_INACTIVE"
	ReasonInvalidVerification = "INVALID_VERIFICATION"
	ReasonResendTooSoon       = "RESEND_TOO_SOON"
	ReasonInvalidTransition   = "INVALID_TRANSITION"
)

var (
	ForbiddenError          = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}
	ResourceRestrictedError = &Failure{Code: http.StatusForbidden, Message: "You don't have permission to access this resource"}
)

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

// New returns a Failure carrying a reason code and the attributed field.
func New(code int, reason, field, message string) error {
	return &Failure{
		Code:    code,
		Message: message,
		Reason:  reason,
		Field:   field,
	}
}

// BadRequestField returns a bad request Failure attributed to a single input field.
func BadRequestField(field, msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
		Field:   field,
	}
}

func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Message: msg,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetReason returns the machine-readable reason of an error interface, or an empty string.
func GetReason(err error) string {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Reason
	}

	return ""
}

// HasReason reports whether err is a Failure with the given reason.
func HasReason(err error, reason string) bool {
	return GetReason(err) == reason
}
