// Package textutil holds small stateless text helpers.
package textutil

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ToUpper returns s with every letter mapped to its uppercase form using the
// full Unicode mapping, independent of locale. Non-letters pass through.
func ToUpper(s string) string {
	// A Caser is stateful, so one is built per call.
	return cases.Upper(language.Und).String(s)
}
