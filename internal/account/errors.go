package account

import (
	"errors"
	"fmt"
)

// ProcessorError represents an error raised while translating an account
// query or interpreting a response.
//
// Processor errors include:
//   - Configuration: the mandatory Type selector is missing from the predicate
//   - Invalid query type: a selector string matches no known query type
//   - Invalid operation: a dispatch table is missing a case for a known variant
//   - Malformed response: response JSON does not match the variant's shape
//   - Type mismatch: the caller's expected static type is incompatible
//
// All errors propagate synchronously to the immediate caller; none are
// retried or swallowed inside this package, and no partial Account is ever
// returned alongside one.
type ProcessorError struct {
	// Code identifies the error category.
	Code ProcessorErrorCode

	// Message is a human-readable description.
	Message string

	// Variant names the query type or action involved, when known.
	Variant string

	// Field names the predicate field involved (for configuration errors).
	Field string

	// Err is the underlying cause, if any (e.g., a JSON decode error).
	Err error
}

// ProcessorErrorCode categorizes processor errors.
type ProcessorErrorCode string

const (
	// ErrCodeConfiguration indicates a required selector parameter is
	// missing from the query predicate. User-correctable.
	ErrCodeConfiguration ProcessorErrorCode = "CONFIGURATION"

	// ErrCodeInvalidQueryType indicates a selector string that matches no
	// query type.
	ErrCodeInvalidQueryType ProcessorErrorCode = "INVALID_QUERY_TYPE"

	// ErrCodeInvalidOperation indicates a dispatch table has no case for a
	// variant that exists in the enumeration. Unreachable in a correct
	// build; never recovered.
	ErrCodeInvalidOperation ProcessorErrorCode = "INVALID_OPERATION"

	// ErrCodeMalformedResponse indicates response JSON that does not match
	// the expected per-variant shape.
	ErrCodeMalformedResponse ProcessorErrorCode = "MALFORMED_RESPONSE"

	// ErrCodeTypeMismatch indicates the caller's expected type is
	// incompatible with the produced Account.
	ErrCodeTypeMismatch ProcessorErrorCode = "TYPE_MISMATCH"
)

// Error implements the error interface.
func (e *ProcessorError) Error() string {
	switch {
	case e.Variant != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s (variant=%s): %v", e.Code, e.Message, e.Variant, e.Err)
	case e.Variant != "":
		return fmt.Sprintf("%s: %s (variant=%s)", e.Code, e.Message, e.Variant)
	case e.Field != "":
		return fmt.Sprintf("%s: %s (field=%s)", e.Code, e.Message, e.Field)
	case e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	default:
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
}

// Unwrap returns the underlying cause for errors.Is/errors.As chains.
func (e *ProcessorError) Unwrap() error {
	return e.Err
}

// IsConfigurationError returns true if the error is a missing-selector error.
// Uses errors.As to handle wrapped errors.
func IsConfigurationError(err error) bool {
	return hasCode(err, ErrCodeConfiguration)
}

// IsInvalidQueryTypeError returns true if the error is an unresolvable
// query-type error.
func IsInvalidQueryTypeError(err error) bool {
	return hasCode(err, ErrCodeInvalidQueryType)
}

// IsInvalidOperationError returns true if the error is a missing-dispatch-case
// error.
func IsInvalidOperationError(err error) bool {
	return hasCode(err, ErrCodeInvalidOperation)
}

// IsMalformedResponseError returns true if the error is a response-shape error.
func IsMalformedResponseError(err error) bool {
	return hasCode(err, ErrCodeMalformedResponse)
}

// IsTypeMismatchError returns true if the error is a caller-type error.
func IsTypeMismatchError(err error) bool {
	return hasCode(err, ErrCodeTypeMismatch)
}

func hasCode(err error, code ProcessorErrorCode) bool {
	var pe *ProcessorError
	if errors.As(err, &pe) {
		return pe.Code == code
	}
	return false
}

// NewConfigurationError creates a ProcessorError for a missing required
// predicate field.
func NewConfigurationError(field string) *ProcessorError {
	return &ProcessorError{
		Code:    ErrCodeConfiguration,
		Message: "required parameter missing from query predicate",
		Field:   field,
	}
}

// NewInvalidQueryTypeError creates a ProcessorError for a selector string
// that matches no query type.
func NewInvalidQueryTypeError(raw string) *ProcessorError {
	return &ProcessorError{
		Code:    ErrCodeInvalidQueryType,
		Message: fmt.Sprintf("unknown account query type %q", raw),
		Variant: raw,
	}
}

// NewInvalidOperationError creates a ProcessorError for a variant with no
// dispatch case.
func NewInvalidOperationError(variant string) *ProcessorError {
	return &ProcessorError{
		Code:    ErrCodeInvalidOperation,
		Message: "no dispatch case for variant",
		Variant: variant,
	}
}

// NewMalformedResponseError creates a ProcessorError for response JSON that
// does not match the variant's expected shape.
func NewMalformedResponseError(variant string, cause error) *ProcessorError {
	return &ProcessorError{
		Code:    ErrCodeMalformedResponse,
		Message: "response does not match expected shape",
		Variant: variant,
		Err:     cause,
	}
}

// NewTypeMismatchError creates a ProcessorError for an incompatible caller
// result type.
func NewTypeMismatchError(wanted string) *ProcessorError {
	return &ProcessorError{
		Code:    ErrCodeTypeMismatch,
		Message: fmt.Sprintf("account result is not assignable to %s", wanted),
	}
}
