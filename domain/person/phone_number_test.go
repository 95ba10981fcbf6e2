package person

import (
	"errors"
	"strings"
	"testing"

	"contactbook/domain/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPhoneNumber(t *testing.T) {
	tests := []struct {
		name    string
		number  string
		wantErr bool
	}{
		{"international number", "+1234567890", false},
		{"minimum length", "+1234", false},
		{"maximum length", "+" + strings.Repeat("9", 19), false},
		{"missing plus", "1234567890", true},
		{"below minimum length", "+1", true},
		{"above maximum length", "+" + strings.Repeat("9", 20), true},
		{"letters", "+12345abc", true},
		{"inner whitespace", "+123 4567", true},
		{"empty", "", true},
		{"blank", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPhoneNumber(tt.number)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidPhoneNumber))
				assert.True(t, shared.IsDomainRuleViolation(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.number, p.Number())
		})
	}
}

func TestPhoneNumberEquality(t *testing.T) {
	a, err := NewPhoneNumber("+359888123456")
	require.NoError(t, err)
	b, err := NewPhoneNumber("+359888123456")
	require.NoError(t, err)
	c, err := NewPhoneNumber("+359888000000")
	require.NoError(t, err)

	assert.True(t, a.Equals(b))
	assert.Equal(t, a, b)
	assert.False(t, a.Equals(c))
}

func TestNewPhoneNumbersStopsAtFirstInvalid(t *testing.T) {
	_, err := NewPhoneNumbers([]string{"+12345", "oops", "+1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "oops")
}
