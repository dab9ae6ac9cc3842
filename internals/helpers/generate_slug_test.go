package helper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	cases := map[string]string{
		"Customer Feedback":      "customer-feedback",
		"  Café -- Über  ":       "cafe-uber",
		"Q&A, 2025!":             "q-a-2025",
		"---":                    "",
		"Survei Kepuasan Jamaah": "survei-kepuasan-jamaah",
	}
	for in, want := range cases {
		assert.Equal(t, want, GenerateSlug(in), in)
	}
}

func TestGenerateSlug_MaxLen(t *testing.T) {
	s := GenerateSlug(strings.Repeat("ab ", 60))
	assert.LessOrEqual(t, len([]rune(s)), DefaultSlugMaxLen)
	assert.False(t, strings.HasSuffix(s, "-"))
}

func TestSlugOr(t *testing.T) {
	assert.Equal(t, "form", SlugOr("???", "form"))
	assert.Equal(t, "hello", SlugOr("Hello", "form"))
}
