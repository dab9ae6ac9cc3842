package helper

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

const DefaultSlugMaxLen = 80

var reDash = regexp.MustCompile(`-+`)

// GenerateSlug menormalkan string menjadi slug:
// - NFD lalu buang tanda diakritik ("Café" -> "cafe")
// - lower-case
// - spasi & non-alnum jadi "-", "-" beruntun dilebur, "-" di ujung di-trim
func GenerateSlug(s string) string {
	s = norm.NFD.String(strings.ToLower(strings.TrimSpace(s)))

	var b strings.Builder
	lastDash := false
	for _, r := range s {
		switch {
		case unicode.Is(unicode.Mn, r):
			// combining mark hasil NFD
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteRune('-')
				lastDash = true
			}
		}
	}
	out := reDash.ReplaceAllString(b.String(), "-")
	return cutToLen(strings.Trim(out, "-"), DefaultSlugMaxLen)
}

// SlugOr mengembalikan slug dari s, atau fallback kalau hasilnya kosong.
func SlugOr(s, fallback string) string {
	if slug := GenerateSlug(s); slug != "" {
		return slug
	}
	return fallback
}

// cutToLen memotong string agar panjangnya <= n rune, lalu trim "-"
func cutToLen(s string, n int) string {
	if n <= 0 {
		return s
	}
	rs := []rune(s)
	if len(rs) <= n {
		return s
	}
	return strings.Trim(string(rs[:n]), "-")
}
