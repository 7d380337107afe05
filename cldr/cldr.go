// Package cldr provides default gettext plural forms for well-known
// languages, derived from the CLDR plural rules. It serves as a
// fallback when a catalogue carries no Plural-Forms header.
package cldr

import (
	"fmt"

	"github.com/go-playground/locales"
	"golang.org/x/text/language"
)

// Forms is a gettext plural-forms definition for one language.
type Forms struct {
	// NPlurals is the number of plural forms.
	NPlurals int

	// Formula is the selector expression over the quantity n.
	Formula string

	// Definition is the complete Plural-Forms header value.
	Definition string
}

func newForms(nplurals int, formula string) Forms {
	return Forms{
		NPlurals:   nplurals,
		Formula:    formula,
		Definition: fmt.Sprintf("nplurals=%d; plural=%s;", nplurals, formula),
	}
}

var formsByBase = map[string]Forms{}

func register(forms Forms, bases ...string) {
	for _, b := range bases {
		formsByBase[b] = forms
	}
}

func init() {
	register(newForms(1, "0"),
		"id", "ja", "ko", "th", "vi", "zh")

	register(newForms(2, "n != 1"),
		"af", "bg", "da", "de", "el", "en", "eo", "es", "et", "fi",
		"he", "hu", "it", "nb", "nl", "no", "pt", "sv", "tr")

	register(newForms(2, "n > 1"),
		"fr")

	register(newForms(3,
		"(n % 10 == 1 && n % 100 != 11) ? 0 : "+
			"((n % 10 >= 2 && n % 10 <= 4 && (n % 100 < 12 || n % 100 > 14)) ? 1 : 2)"),
		"be", "bs", "hr", "ru", "sr", "uk")

	register(newForms(3,
		"(n == 1) ? 0 : "+
			"((n % 10 >= 2 && n % 10 <= 4 && (n % 100 < 12 || n % 100 > 14)) ? 1 : 2)"),
		"pl")

	register(newForms(3,
		"(n == 1) ? 0 : ((n >= 2 && n <= 4) ? 1 : 2)"),
		"cs", "sk")

	register(newForms(3,
		"(n % 10 == 1 && n % 100 != 11) ? 0 : "+
			"((n % 10 >= 2 && (n % 100 < 10 || n % 100 >= 20)) ? 1 : 2)"),
		"lt")

	register(newForms(3,
		"(n == 1) ? 0 : ((n == 0 || (n % 100 > 0 && n % 100 < 20)) ? 1 : 2)"),
		"ro")

	register(newForms(5,
		"(n == 1) ? 0 : ((n == 2) ? 1 : ((n < 7) ? 2 : ((n < 11) ? 3 : 4)))"),
		"ga")

	register(newForms(6,
		"(n == 0) ? 0 : ((n == 1) ? 1 : ((n == 2) ? 2 : "+
			"((n % 100 >= 3 && n % 100 <= 10) ? 3 : ((n % 100 >= 11) ? 4 : 5))))"),
		"ar")
}

// ByTag returns the plural forms registered for exactly the given tag.
// Region-qualified tags like en-US are not matched, use ByBase for
// base-language lookup.
func ByTag(tag language.Tag) (Forms, bool) {
	f, ok := formsByBase[tag.String()]
	return f, ok
}

// ByBase returns the plural forms registered for a base language.
func ByBase(base language.Base) (Forms, bool) {
	f, ok := formsByBase[base.String()]
	return f, ok
}

// ByTranslator returns the plural forms for the base language of a
// go-playground locale translator.
func ByTranslator(t locales.Translator) (Forms, bool) {
	tag, err := language.Parse(t.Locale())
	if err != nil {
		return Forms{}, false
	}
	base, _ := tag.Base()
	return ByBase(base)
}
