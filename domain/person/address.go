package person

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Address 值对象 - 地址行、地址类型与电话号码集合
//
// Address 一旦创建即不可变；Person 只能整体替换某个类型的地址。
// 相等性由 (地址行, 类型, 按号码排序后的电话集合) 决定，与输入顺序无关。
type Address struct {
	line         string
	addressType  AddressType
	phoneNumbers []PhoneNumber
}

func NewAddress(line string, addressType AddressType, phoneNumbers []PhoneNumber) (*Address, error) {
	if strings.TrimSpace(line) == "" {
		return nil, NewInvalidAddressError("address_line", "Address line cannot be empty.")
	}
	if n := utf8.RuneCountInString(line); n < MinAddressLength || n > MaxAddressLength {
		return nil, NewInvalidAddressError("address_line",
			fmt.Sprintf("Address line must be between %d and %d characters long.", MinAddressLength, MaxAddressLength))
	}
	if !addressType.IsValid() {
		return nil, NewInvalidAddressError("address_type",
			fmt.Sprintf("Address type '%d' is not supported.", int(addressType)))
	}

	return &Address{
		line:         line,
		addressType:  addressType,
		phoneNumbers: uniquePhoneNumbers(phoneNumbers),
	}, nil
}

// RebuildAddress restores an address read from storage without validation.
// 仅供仓储层使用。
func RebuildAddress(line string, addressType AddressType, numbers []string) *Address {
	phones := make([]PhoneNumber, 0, len(numbers))
	for _, n := range numbers {
		phones = append(phones, PhoneNumber{number: n})
	}
	return &Address{
		line:         line,
		addressType:  addressType,
		phoneNumbers: uniquePhoneNumbers(phones),
	}
}

func uniquePhoneNumbers(in []PhoneNumber) []PhoneNumber {
	out := make([]PhoneNumber, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, p := range in {
		if _, ok := seen[p.number]; ok {
			continue
		}
		seen[p.number] = struct{}{}
		out = append(out, p)
	}
	return out
}

func (a *Address) AddressLine() string { return a.line }

func (a *Address) Type() AddressType { return a.addressType }

// PhoneNumbers returns a copy in insertion order.
func (a *Address) PhoneNumbers() []PhoneNumber {
	return slices.Clone(a.phoneNumbers)
}

// Numbers returns the raw phone number strings in insertion order.
func (a *Address) Numbers() []string {
	out := make([]string, len(a.phoneNumbers))
	for i, p := range a.phoneNumbers {
		out[i] = p.number
	}
	return out
}

func (a *Address) sortedNumbers() []string {
	numbers := a.Numbers()
	slices.Sort(numbers)
	return numbers
}

func (a *Address) Equals(other *Address) bool {
	if a == nil || other == nil {
		return a == other
	}
	return a.line == other.line &&
		a.addressType == other.addressType &&
		slices.Equal(a.sortedNumbers(), other.sortedNumbers())
}

// Key is a canonical encoding of the equality components; equal addresses share a key.
func (a *Address) Key() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(int(a.addressType)))
	b.WriteByte(0x1f)
	b.WriteString(a.line)
	for _, n := range a.sortedNumbers() {
		b.WriteByte(0x1f)
		b.WriteString(n)
	}
	return b.String()
}

func (a *Address) String() string {
	return fmt.Sprintf("%s: %s %v", a.addressType, a.line, a.Numbers())
}
