package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func containsAny(s, chars string) bool {
	return strings.ContainsAny(s, chars)
}

func TestGenerate_AllClassesPresent(t *testing.T) {
	// при всех включённых классах каждый представлен хотя бы одним символом
	for i := 0; i < 50; i++ {
		p, err := Generate(16, true, true, true, true)
		assert.NoError(t, err)
		assert.Len(t, p, 16)
		assert.True(t, containsAny(p, upperChars), "no upper in %q", p)
		assert.True(t, containsAny(p, lowerChars), "no lower in %q", p)
		assert.True(t, containsAny(p, digitChars), "no digit in %q", p)
		assert.True(t, containsAny(p, specialChars), "no special in %q", p)
	}
}

func TestGenerate_SingleClass(t *testing.T) {
	p, err := Generate(12, false, false, true, false)
	assert.NoError(t, err)
	assert.Len(t, p, 12)
	for _, c := range p {
		assert.Contains(t, digitChars, string(c))
	}
}

func TestGenerate_LengthClamped(t *testing.T) {
	p, err := Generate(1, true, true, true, true)
	assert.NoError(t, err)
	assert.Len(t, p, MinLength)

	p, err = Generate(100000, true, true, false, false)
	assert.NoError(t, err)
	assert.Len(t, p, MaxLength)
}

func TestGenerate_NoClasses(t *testing.T) {
	_, err := Generate(16, false, false, false, false)
	assert.ErrorIs(t, err, ErrInvalidCharset)
}

func TestGenerate_NotConstant(t *testing.T) {
	p1, err := Generate(24, true, true, true, true)
	assert.NoError(t, err)
	p2, err := Generate(24, true, true, true, true)
	assert.NoError(t, err)
	assert.NotEqual(t, p1, p2)
}
