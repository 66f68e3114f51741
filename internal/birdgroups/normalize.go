// normalize.go contains the canonical key function for species common names
package birdgroups

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// punctuationReplacer maps typographic punctuation to the ASCII forms used
// in the registry: curly apostrophe, en dash and em dash.
var punctuationReplacer = strings.NewReplacer(
	"’", "'",
	"–", "-",
	"—", "-",
)

var slashSpacing = regexp.MustCompile(`\s*/\s*`)

// Normalize returns the canonical key for a species common name.
// Matching on the key ignores case, surrounding and repeated whitespace,
// spacing around slashes in composite names ("Mallard / American Black Duck")
// and curly apostrophe or dash variants. The empty string is a valid input.
func Normalize(name string) string {
	if name == "" {
		return ""
	}

	s := punctuationReplacer.Replace(name)

	// cases.Caser is stateful, so a fresh one per call keeps Normalize safe
	// for concurrent use
	s = cases.Lower(language.Und).String(strings.TrimSpace(s))
	s = strings.Join(strings.Fields(s), " ")

	return slashSpacing.ReplaceAllString(s, "/")
}
