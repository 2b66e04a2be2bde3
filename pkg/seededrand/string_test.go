package seededrand

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlphaNumericString(t *testing.T) {
	g := New(0)

	s := AlphaNumericString(&g, 0)
	assert.Equal(t, 0, len(s))

	s = AlphaNumericString(&g, 10)
	assert.Equal(t, 10, len(s))

	for i := 0; i < 100; i++ {
		s := AlphaNumericString(&g, 10)
		for _, c := range s {
			assert.True(t, strings.Contains(AlphaNumeric, string(c)))
		}
	}
}

func TestNumericString(t *testing.T) {
	g := New(12345)
	for i := 0; i < 100; i++ {
		s := NumericString(&g, 4)
		assert.Len(t, s, 4)
		assert.Empty(t, strings.Trim(s, Numeric))
	}

	assert.Equal(t, "", String(&g, 5, ""))
	assert.Equal(t, "", String(&g, -1, Numeric))
}
