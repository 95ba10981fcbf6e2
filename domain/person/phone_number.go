package person

import (
	"fmt"
	"strings"
)

// PhoneNumber 值对象 - 以 "+" 开头、仅包含数字的电话号码
type PhoneNumber struct {
	number string
}

func NewPhoneNumber(number string) (PhoneNumber, error) {
	if strings.TrimSpace(number) == "" {
		return PhoneNumber{}, NewInvalidPhoneNumberError("Phone number cannot be empty.")
	}
	if !phoneNumberPattern.MatchString(number) {
		return PhoneNumber{}, NewInvalidPhoneNumberError(
			fmt.Sprintf("Phone number '%s' must start with '+' followed by digits only.", number))
	}
	if n := len(number); n < MinPhoneNumberLength || n > MaxPhoneNumberLength {
		return PhoneNumber{}, NewInvalidPhoneNumberError(
			fmt.Sprintf("Phone number must be between %d and %d characters long.", MinPhoneNumberLength, MaxPhoneNumberLength))
	}
	return PhoneNumber{number: number}, nil
}

// NewPhoneNumbers builds a phone number for every input, failing on the first invalid one.
func NewPhoneNumbers(numbers []string) ([]PhoneNumber, error) {
	phones := make([]PhoneNumber, 0, len(numbers))
	for _, n := range numbers {
		p, err := NewPhoneNumber(n)
		if err != nil {
			return nil, err
		}
		phones = append(phones, p)
	}
	return phones, nil
}

// IsValidPhoneNumber reports whether number satisfies the phone number invariant.
func IsValidPhoneNumber(number string) bool {
	_, err := NewPhoneNumber(number)
	return err == nil
}

func (p PhoneNumber) Number() string { return p.number }

func (p PhoneNumber) String() string { return p.number }

func (p PhoneNumber) Equals(other PhoneNumber) bool {
	return p.number == other.number
}
