package naming

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// UnknownAuthor stands in for the acronym when an image has no textual artist.
const UnknownAuthor = "xx"

var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Acronym keeps the first character of every word in name and lowercases
// the result: "Jane Quincy Doe" becomes "jqd", "madonna" becomes "m".
func Acronym(name string) string {
	var b strings.Builder
	for _, word := range wordPattern.FindAllString(name, -1) {
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(r)
	}
	return cases.Lower(language.Und).String(b.String())
}

// AuthorAcronym returns Acronym(name) when the author is known and
// UnknownAuthor otherwise.
func AuthorAcronym(name string, present bool) string {
	if !present {
		return UnknownAuthor
	}
	return Acronym(name)
}
