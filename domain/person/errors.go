/*
Package person 定义联系人领域错误。

所有构造/修改被拒绝的错误同时满足:
  - errors.Is(err, ErrInvalidPerson | ErrInvalidAddress | ErrInvalidPhoneNumber)
  - errors.Is(err, shared.ErrDomainRule)
  - errors.Is(err, shared.ErrInvalidInput)
*/
package person

import (
	"errors"
	"fmt"

	"contactbook/domain/shared"
)

var (
	ErrInvalidPerson      = errors.New("invalid person")
	ErrInvalidAddress     = errors.New("invalid address")
	ErrInvalidPhoneNumber = errors.New("invalid phone number")
)

func NewInvalidPersonError(field, message string) error {
	return &personDomainError{
		sentinel: ErrInvalidPerson,
		entity:   "person",
		field:    field,
		message:  message,
		stack:    shared.CaptureStack(3),
	}
}

func NewInvalidAddressError(field, message string) error {
	return &personDomainError{
		sentinel: ErrInvalidAddress,
		entity:   "address",
		field:    field,
		message:  message,
		stack:    shared.CaptureStack(3),
	}
}

func NewInvalidPhoneNumberError(message string) error {
	return &personDomainError{
		sentinel: ErrInvalidPhoneNumber,
		entity:   "phone_number",
		field:    "number",
		message:  message,
		stack:    shared.CaptureStack(3),
	}
}

// NewPersonNotFoundError is returned by repositories for missing or soft-deleted people.
func NewPersonNotFoundError(id int64) error {
	return &shared.DomainError{
		Err:     shared.ErrNotFound,
		Entity:  "person",
		Message: fmt.Sprintf("Person with ID %d was not found", id),
	}
}

type personDomainError struct {
	sentinel error
	entity   string
	field    string
	message  string
	stack    []uintptr
}

func (e *personDomainError) Error() string { return e.message }
func (e *personDomainError) Unwrap() []error {
	return []error{e.sentinel, shared.ErrDomainRule, shared.ErrInvalidInput}
}
func (e *personDomainError) Stack() []string { return shared.FormatStack(e.stack) }

// Field names the attribute that was rejected.
func (e *personDomainError) Field() string { return e.field }
