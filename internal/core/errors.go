package core

import (
	"fmt"
	"time"
)

// Error is a structured error with a stable code and optional cause.
type Error struct {
	Code    string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is matching by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// WrapError creates a new error with the same code but with a cause.
func WrapError(base *Error, cause error) *Error {
	return &Error{
		Code:    base.Code,
		Message: base.Message,
		Cause:   cause,
	}
}

// Predefined errors
var (
	// Series errors
	ErrDataOrder = &Error{Code: "DATA_ORDER", Message: "series not ascending by date"}
	ErrNoData    = &Error{Code: "NO_DATA", Message: "no data available"}

	// Analysis errors
	ErrInsufficientHistory = &Error{Code: "INSUFFICIENT_HISTORY", Message: "not enough bars for analysis"}
	ErrScaleDrift          = &Error{Code: "SCALE_DRIFT", Message: "indicator value outside its documented scale"}

	// Data layer errors
	ErrCollectorFailed = &Error{Code: "COLLECTOR_FAILED", Message: "collector failed"}

	// Config errors
	ErrConfigInvalid = &Error{Code: "CONFIG_INVALID", Message: "configuration invalid"}
)

// orderViolation describes where a series breaks the ascending-date contract.
type orderViolation struct {
	index int
	prev  time.Time
	cur   time.Time
}

func (v *orderViolation) Error() string {
	return fmt.Sprintf("bar %d dated %s does not follow %s",
		v.index, v.cur.Format("2006-01-02"), v.prev.Format("2006-01-02"))
}
