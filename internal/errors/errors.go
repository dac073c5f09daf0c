package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code is the machine-readable failure kind
type Code string

const (
	CodeUnknown         Code = "unknown"
	CodeInvalidArgument Code = "invalid_argument"
	CodeNotFound        Code = "not_found"
	CodeAlreadyExists   Code = "already_exists"
	CodeInternal        Code = "internal"

	// CodeValidation is recoverable by the caller: fix the answers and resubmit
	CodeValidation Code = "validation"

	// CodePersistence means the writer refused or failed to apply a batch.
	// Never retried by the core.
	CodePersistence Code = "persistence"
)

// Reason narrows a Code to a specific rule
type Reason string

// Validation reasons
const (
	ReasonQuotaExceeded      Reason = "quota_exceeded"
	ReasonDuplicateOption    Reason = "duplicate_option"
	ReasonUnknownOption      Reason = "unknown_option"
	ReasonPrerequisiteUnmet  Reason = "prerequisite_unmet"
	ReasonASIBudgetMismatch  Reason = "asi_budget_mismatch"
	ReasonAbilityCapExceeded Reason = "ability_cap_exceeded"
	ReasonSubclassMismatch   Reason = "subclass_mismatch"
	ReasonMissingAnswer      Reason = "missing_answer"
	ReasonUnexpectedAnswer   Reason = "unexpected_answer"
	ReasonStaleSnapshot      Reason = "stale_snapshot"
	ReasonInvalidBonusPick   Reason = "invalid_bonus_pick"
	ReasonSpellLevelExceeded Reason = "spell_level_exceeded"
)

// Persistence reasons
const (
	ReasonVersionConflict Reason = "version_conflict"
	ReasonAlreadyApplied  Reason = "already_applied"
	ReasonWriteFailed     Reason = "write_failed"
)

// Error is the application error carried through every layer
type Error struct {
	Code    Code
	Reason  Reason
	Message string

	// Reasons lists every human-readable failure, not just the first
	Reasons []string

	Cause error
	Meta  map[string]any
}

func (e *Error) Error() string {
	msg := e.Message
	if len(e.Reasons) > 0 {
		msg = fmt.Sprintf("%s (%s)", msg, strings.Join(e.Reasons, "; "))
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta adds metadata to the error (builder pattern)
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// WithReason sets the sub-kind
func (e *Error) WithReason(reason Reason) *Error {
	e.Reason = reason
	return e
}

// WithReasons appends human-readable reasons
func (e *Error) WithReasons(reasons ...string) *Error {
	e.Reasons = append(e.Reasons, reasons...)
	return e
}

// WithStep records the index of the decision step that failed
func (e *Error) WithStep(index int) *Error {
	return e.WithMeta("step", index)
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new error with formatted message
func Newf(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with additional context, keeping code and reason of a wrapped *Error
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var dndErr *Error
	if errors.As(err, &dndErr) {
		return &Error{
			Code:    dndErr.Code,
			Reason:  dndErr.Reason,
			Message: message,
			Reasons: append([]string(nil), dndErr.Reasons...),
			Cause:   err,
			Meta:    copyMeta(dndErr.Meta),
		}
	}

	return &Error{
		Code:    CodeUnknown,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted message
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps an error with a specific code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := Wrap(err, message)
	wrapped.Code = code
	return wrapped
}

// NotFound creates a not found error
func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

// NotFoundf creates a formatted not found error
func NotFoundf(format string, args ...any) *Error {
	return Newf(CodeNotFound, format, args...)
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf creates a formatted invalid argument error
func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// AlreadyExistsf creates a formatted already exists error
func AlreadyExistsf(format string, args ...any) *Error {
	return Newf(CodeAlreadyExists, format, args...)
}

// Internalf creates a formatted internal error
func Internalf(format string, args ...any) *Error {
	return Newf(CodeInternal, format, args...)
}

// Validation creates a validation failure with a reason and the full reason list
func Validation(reason Reason, reasons ...string) *Error {
	msg := "validation failed"
	if len(reasons) == 1 {
		msg = reasons[0]
		reasons = nil
	}
	return &Error{
		Code:    CodeValidation,
		Reason:  reason,
		Message: msg,
		Reasons: reasons,
	}
}

// Validationf creates a single-reason validation failure
func Validationf(reason Reason, format string, args ...any) *Error {
	return &Error{
		Code:    CodeValidation,
		Reason:  reason,
		Message: fmt.Sprintf(format, args...),
	}
}

// Persistence creates a writer failure
func Persistence(reason Reason, message string) *Error {
	return &Error{
		Code:    CodePersistence,
		Reason:  reason,
		Message: message,
	}
}

// Persistencef creates a formatted writer failure
func Persistencef(reason Reason, format string, args ...any) *Error {
	return Persistence(reason, fmt.Sprintf(format, args...))
}

// Is checks if the error is of a specific code
func Is(err error, code Code) bool {
	var dndErr *Error
	if errors.As(err, &dndErr) {
		return dndErr.Code == code
	}
	return false
}

func IsNotFound(err error) bool {
	return Is(err, CodeNotFound)
}

func IsInvalidArgument(err error) bool {
	return Is(err, CodeInvalidArgument)
}

func IsAlreadyExists(err error) bool {
	return Is(err, CodeAlreadyExists)
}

func IsValidation(err error) bool {
	return Is(err, CodeValidation)
}

func IsPersistence(err error) bool {
	return Is(err, CodePersistence)
}

// GetCode returns the error code
func GetCode(err error) Code {
	var dndErr *Error
	if errors.As(err, &dndErr) {
		return dndErr.Code
	}
	return CodeUnknown
}

// GetReason returns the outermost reason set in the chain
func GetReason(err error) Reason {
	for err != nil {
		var dndErr *Error
		if !errors.As(err, &dndErr) {
			return ""
		}
		if dndErr.Reason != "" {
			return dndErr.Reason
		}
		err = dndErr.Cause
	}
	return ""
}

// GetReasons returns every human-readable reason. Without a reason list the
// innermost message of the chain is the reason.
func GetReasons(err error) []string {
	if err == nil {
		return nil
	}

	var deepest *Error
	for err != nil {
		var dndErr *Error
		if !errors.As(err, &dndErr) {
			break
		}
		if len(dndErr.Reasons) > 0 {
			return dndErr.Reasons
		}
		deepest = dndErr
		err = dndErr.Cause
	}
	if deepest == nil {
		return []string{err.Error()}
	}
	return []string{deepest.Message}
}

// GetMeta returns the error metadata
func GetMeta(err error) map[string]any {
	var dndErr *Error
	if errors.As(err, &dndErr) {
		return dndErr.Meta
	}
	return nil
}

func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}

	copied := make(map[string]any, len(meta))
	for k, v := range meta {
		copied[k] = v
	}
	return copied
}
