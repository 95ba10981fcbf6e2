package specification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsPatternEscapesWildcards(t *testing.T) {
	tests := []struct {
		term string
		want string
	}{
		{"Ada", "%ada%"},
		{"50%", "%50!%%"},
		{"a_b", "%a!_b%"},
		{"hi!", "%hi!!%"},
		{"", "%%"},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			assert.Equal(t, tt.want, ContainsPattern(tt.term))
		})
	}
}

func TestContainsPatternFoldsUnicode(t *testing.T) {
	assert.Equal(t, "%élodie%", ContainsPattern("ÉLODIE"))
	assert.Equal(t, "%ångström%", ContainsPattern("Ångström"))
}
