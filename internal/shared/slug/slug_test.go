package slug

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Winter Jacket", "winter-jacket"},
		{"  Kurta — Cotton / XL  ", "kurta-cotton-xl"},
		{"Tops & Tees!!", "tops-tees"},
		{"ALLCAPS", "allcaps"},
		{"---", "item"},
		{"", "item"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FromName(tt.in), "input %q", tt.in)
	}
}

func TestFromNameClampsLength(t *testing.T) {
	long := strings.Repeat("saree ", 40)
	got := FromName(long)
	assert.LessOrEqual(t, len(got), 80)
	assert.False(t, strings.HasSuffix(got, "-"))
}
