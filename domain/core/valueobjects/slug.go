package valueobjects

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// asciiFold strips combining marks after canonical decomposition, so accented
// letters fold to their closest ASCII form (é -> e, Ç -> C).
var asciiFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// translit maps the Latin letters that have no canonical decomposition, so
// NFD cannot fold them, onto their conventional ASCII spelling.
var translit = strings.NewReplacer(
	"Æ", "AE", "æ", "ae",
	"Ø", "O", "ø", "o",
	"ß", "ss",
	"Þ", "TH", "þ", "th",
	"Ð", "D", "ð", "d",
	"Đ", "D", "đ", "d",
	"Ł", "L", "ł", "l",
	"Œ", "OE", "œ", "oe",
)

// Slugify derives the URL-safe canonical lookup key from a human name.
//
// The result contains only lowercase ASCII alphanumerics separated by single
// hyphens, with no leading or trailing hyphen. The function is idempotent but
// not injective: distinct names may collapse to the same slug, so the
// original name can never be reconstructed from it.
func Slugify(name string) string {
	folded, _, err := transform.String(asciiFold, translit.Replace(name))
	if err != nil {
		folded = name
	}

	var b strings.Builder
	b.Grow(len(folded))
	pendingHyphen := false
	for _, r := range strings.ToLower(folded) {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !isAlnum {
			// every run of non-alphanumerics becomes a single hyphen
			pendingHyphen = b.Len() > 0
			continue
		}
		if pendingHyphen {
			b.WriteByte('-')
			pendingHyphen = false
		}
		b.WriteRune(r)
	}

	return b.String()
}
