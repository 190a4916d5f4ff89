package utils

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Slugify turns arbitrary text into a lowercase URL-safe slug:
// accents stripped, any run of non-alphanumerics collapsed to one dash.
func Slugify(s string) string {
	s = removeDiacritics(strings.ToLower(s))

	var b strings.Builder
	lastDash := true // suppress a leading dash
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.TrimRight(b.String(), "-")
}

// ListingSlug builds the canonical slug for a listing from its brand,
// model and year, plus a random 4-digit disambiguator so that two
// identical vehicles never collide.
func ListingSlug(brand, model string, year int) string {
	base := Slugify(fmt.Sprintf("%s-%s-%d", brand, model, year))

	var buf [2]byte
	rand.Read(buf[:])
	n := binary.BigEndian.Uint16(buf[:]) % 10000

	return fmt.Sprintf("%s-%04d", base, n)
}

func removeDiacritics(s string) string {
	decomposed := norm.NFD.String(s)
	var b strings.Builder
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
