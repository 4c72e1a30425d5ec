package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "already normalized", in: "+46701234567", want: "+46701234567"},
		{name: "display format", in: "+46 70-123 45 67", want: "+46701234567"},
		{name: "national format", in: "070-123 45 67", want: "0701234567"},
		{name: "parentheses", in: "(070) 123 45 67", want: "0701234567"},
		{name: "plus only at the front", in: "070+123", want: "070123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhone(tt.in))
		})
	}
}

func TestIsPhoneValid(t *testing.T) {
	assert.True(t, IsPhoneValid("+46701234567"))
	assert.True(t, IsPhoneValid("070-123 45 67"))
	assert.True(t, IsPhoneValid("1234567"))

	assert.False(t, IsPhoneValid(""))
	assert.False(t, IsPhoneValid("123456"))
	assert.False(t, IsPhoneValid("+"))
	assert.False(t, IsPhoneValid("1234567890123456"))
}
