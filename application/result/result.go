/*
Package result provides the success/failure envelope returned by every
application write operation.

Expected business failures (domain rule violations, missing aggregates) are
carried as data inside a failed Result. Infrastructure faults are returned as
a plain error next to it and never folded into the envelope.
*/
package result

import (
	"fmt"
	"slices"
	"strings"
)

// Result is the untyped envelope.
type Result struct {
	succeeded     bool
	errors        []string
	message       string
	dangerMessage string
	notFound      bool
}

// Succeeded reports whether the operation completed.
func (r Result) Succeeded() bool { return r.succeeded }

// OK is the boolean shortcut for Succeeded.
func (r Result) OK() bool { return r.succeeded }

// Errors returns the failure messages; always empty for a successful result.
func (r Result) Errors() []string {
	if r.succeeded || len(r.errors) == 0 {
		return []string{}
	}
	return slices.Clone(r.errors)
}

func (r Result) Message() string       { return r.message }
func (r Result) DangerMessage() string { return r.dangerMessage }

// IsNotFound reports whether the failure was caused by a missing aggregate.
func (r Result) IsNotFound() bool { return !r.succeeded && r.notFound }

// FailureText joins the message and errors into one line for transport.
func (r Result) FailureText() string {
	parts := make([]string, 0, len(r.errors)+2)
	if r.message != "" {
		parts = append(parts, r.message)
	}
	if r.dangerMessage != "" {
		parts = append(parts, r.dangerMessage)
	}
	parts = append(parts, r.Errors()...)
	return strings.Join(parts, " ")
}

func (r Result) String() string {
	if r.succeeded {
		return "success"
	}
	return fmt.Sprintf("failure: %s", r.FailureText())
}

func Success() Result {
	return Result{succeeded: true}
}

func Failure(errs ...string) Result {
	return Result{succeeded: false, errors: slices.Clone(errs)}
}

func SuccessWithMessages(message, dangerMessage string) Result {
	return Result{succeeded: true, message: message, dangerMessage: dangerMessage}
}

func FailureWithMessages(message, dangerMessage string) Result {
	return Result{succeeded: false, message: message, dangerMessage: dangerMessage}
}

// NotFound is a FailureWithMessages marked so transports can answer 404.
func NotFound(message string) Result {
	return Result{succeeded: false, message: message, notFound: true}
}

// ============================================================================
// Typed envelope
// ============================================================================

// Of carries a payload that is only readable when the result succeeded.
type Of[T any] struct {
	Result
	data T
}

// DataAccessError is the panic value raised when Data is read from a failed result.
type DataAccessError struct {
	Errors []string
}

func (e *DataAccessError) Error() string {
	return fmt.Sprintf("result data is not available on a failed result: %v", e.Errors)
}

// Data returns the payload. Reading it from a failed result is a programming
// error and panics with *DataAccessError.
func (r Of[T]) Data() T {
	if !r.succeeded {
		panic(&DataAccessError{Errors: r.Errors()})
	}
	return r.data
}

// TryData returns the payload and whether it is available.
func (r Of[T]) TryData() (T, bool) {
	if !r.succeeded {
		var zero T
		return zero, false
	}
	return r.data, true
}

// Untyped drops the payload.
func (r Of[T]) Untyped() Result { return r.Result }

func Ok[T any](data T) Of[T] {
	return Of[T]{Result: Success(), data: data}
}

func Fail[T any](errs ...string) Of[T] {
	return Of[T]{Result: Failure(errs...)}
}

func OkWithMessages[T any](data T, message, dangerMessage string) Of[T] {
	return Of[T]{Result: SuccessWithMessages(message, dangerMessage), data: data}
}

func FailWithMessages[T any](errs []string, message, dangerMessage string) Of[T] {
	r := FailureWithMessages(message, dangerMessage)
	r.errors = slices.Clone(errs)
	return Of[T]{Result: r}
}

// FromResult lifts an untyped failure into a typed one.
func FromResult[T any](r Result) Of[T] {
	if r.succeeded {
		var zero T
		return Ok(zero)
	}
	return Of[T]{Result: r}
}

// Map transforms the payload of a successful result and passes failures through.
func Map[T, U any](r Of[T], fn func(T) U) Of[U] {
	if !r.succeeded {
		return Of[U]{Result: r.Result}
	}
	return Of[U]{Result: r.Result, data: fn(r.data)}
}
