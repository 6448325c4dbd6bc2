package textutil

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// letters that do not decompose into a base letter plus combining marks
var foldedLetters = map[rune]string{
	'ø': "o", 'Ø': "O",
	'ß': "ss", 'ẞ': "SS",
	'æ': "ae", 'Æ': "AE",
	'œ': "oe", 'Œ': "OE",
	'ł': "l", 'Ł': "L",
	'đ': "d", 'Đ': "D",
	'ð': "d", 'Ð': "D",
	'þ': "th", 'Þ': "Th",
	'ı': "i", 'ħ': "h", 'Ħ': "H",
	'‘': "'", '’': "'", '`': "'",
	'“': "\"", '”': "\"",
	'–': "-", '—': "-",
}

// Transliterate maps accented and other non-ASCII letters onto their closest
// plain ASCII spelling, ex. "Martin Ødegaard" -> "Martin Odegaard".
func Transliterate(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}

	var out strings.Builder
	out.Grow(len(stripped))
	for _, r := range stripped {
		if folded, ok := foldedLetters[r]; ok {
			out.WriteString(folded)
			continue
		}
		out.WriteRune(r)
	}
	return out.String()
}

var whitespaceRegex = regexp.MustCompile(`\s+`)

// NormalizeName is the comparison form of a name: transliterated,
// lowercased with whitespace runs collapsed.
func NormalizeName(name string) string {
	name = strings.ToLower(Transliterate(name))
	name = whitespaceRegex.ReplaceAllString(name, " ")
	return strings.TrimSpace(name)
}

// KeepCell reports whether an extracted text cell carries content, cells
// whose trimmed length is at most one character are structural noise.
func KeepCell(text string) bool {
	return len([]rune(strings.TrimSpace(text))) > 1
}

// KeepLabel reports whether a cell can be a statistic label.
func KeepLabel(text string) bool {
	text = strings.TrimSpace(text)
	if !KeepCell(text) {
		return false
	}
	first, _ := utf8.DecodeRuneInString(text)
	return unicode.IsLetter(first)
}
