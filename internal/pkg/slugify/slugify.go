// Package slugify derives unique, URL-safe identifiers for notes from
// their titles. Generation is a pure function over the caller-supplied
// set of existing slugs; the database unique index stays the final
// guard because generation and insert are not atomic.
package slugify

import (
	"crypto/rand"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const separator = '-'

// Alphabet for random disambiguation suffixes (62 characters: 0-9, a-z, A-Z)
const alphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// cyrillic covers the characters GOST-style transliteration maps to
// more than one Latin letter; single-letter mappings are handled below.
var cyrillic = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d", 'е': "e", 'ё': "yo",
	'ж': "zh", 'з': "z", 'и': "i", 'й': "j", 'к': "k", 'л': "l", 'м': "m",
	'н': "n", 'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t", 'у': "u",
	'ф': "f", 'х': "h", 'ц': "c", 'ч': "ch", 'ш': "sh", 'щ': "shch",
	'ъ': "", 'ы': "y", 'ь': "", 'э': "e", 'ю': "yu", 'я': "ya",
}

// Slugify normalizes a title into a URL-safe token: lowercase, latin
// transliteration, non-alphanumeric runs collapsed to a single "-",
// leading and trailing separators trimmed. The result may be empty for
// titles without any usable characters.
func Slugify(title string) string {
	// Strip combining marks so accented letters fold to their base form.
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(stripMarks, title)
	if err != nil {
		folded = title
	}

	var b strings.Builder
	lastSep := true // suppress a leading separator
	for _, r := range strings.ToLower(folded) {
		if tr, ok := cyrillic[r]; ok {
			if tr != "" {
				b.WriteString(tr)
				lastSep = false
			}
			continue
		}
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastSep = false
		default:
			if !lastSep {
				b.WriteRune(separator)
				lastSep = true
			}
		}
	}

	return strings.Trim(b.String(), string(separator))
}

// Generate returns a slug for title that is non-empty and absent from
// existing. Collisions get a monotonically increasing numeric suffix
// ("-2", "-3", ...), so termination is bounded by len(existing)+1
// attempts.
func Generate(title string, existing map[string]struct{}) string {
	candidate := Slugify(title)
	if candidate == "" {
		candidate = randomSlug(8)
	}

	if _, taken := existing[candidate]; !taken {
		return candidate
	}
	for n := 2; ; n++ {
		next := fmt.Sprintf("%s-%d", candidate, n)
		if _, taken := existing[next]; !taken {
			return next
		}
	}
}

// WithRandomSuffix appends a short random base62 suffix. The note
// service uses it to retry after the storage unique constraint fires
// despite a clean pre-check.
func WithRandomSuffix(slug string) string {
	return fmt.Sprintf("%s-%s", slug, randomSlug(6))
}

// randomSlug creates a cryptographically secure random base62 token.
func randomSlug(length int) string {
	// Rejection sampling to avoid modulo bias.
	// 248 is the largest multiple of 62 below 256.
	const maxRandomByte = 248

	out := make([]byte, length)
	buf := make([]byte, length*2)
	written := 0

	for written < length {
		if _, err := rand.Read(buf); err != nil {
			// crypto/rand never fails on supported platforms; fall back
			// to a fixed token rather than returning an empty slug.
			return strings.Repeat("x", length)
		}
		for _, b := range buf {
			if b >= maxRandomByte {
				continue
			}
			out[written] = alphabet[int(b)%len(alphabet)]
			written++
			if written == length {
				break
			}
		}
	}

	return string(out)
}
