package person

import "regexp"

const (
	MaxFullNameLength = 70

	MinAddressLength = 2
	MaxAddressLength = 256

	MinPhoneNumberLength = 5
	MaxPhoneNumberLength = 20
)

var phoneNumberPattern = regexp.MustCompile(`^\+\d+$`)
