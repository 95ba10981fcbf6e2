package person

import (
	"fmt"
	"strings"
)

type AddressType int

const (
	Home AddressType = iota + 1
	Business
)

func (t AddressType) String() string {
	switch t {
	case Home:
		return "Home"
	case Business:
		return "Business"
	default:
		return fmt.Sprintf("AddressType(%d)", int(t))
	}
}

func (t AddressType) IsValid() bool {
	return t == Home || t == Business
}

func ParseAddressType(s string) (AddressType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "home":
		return Home, nil
	case "business":
		return Business, nil
	default:
		return 0, NewInvalidAddressError("address_type", fmt.Sprintf("Address type '%s' is not supported.", s))
	}
}
