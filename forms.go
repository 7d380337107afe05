package poreader

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/romshark/poreader/internal/pluralexpr"
)

var (
	reKeyValue      = regexp.MustCompile(`(\S+?)\s*=\s*(.*?)\s*;`)
	reKeyValueCheck = regexp.MustCompile(`^\s*(\S+?\s*=\s*.*?\s*;\s*)*$`)
)

// parseKeyValueList decodes a `key=value;` list. The whole input must
// consist of such pairs, whitespace around keys, values and separators
// is ignored. Repeated keys keep the last value.
func parseKeyValueList(text string) (map[string]string, error) {
	if !reKeyValueCheck.MatchString(text) {
		return nil, newPluralFormsMsgError(
			fmt.Sprintf("bad value list definition: %q", text))
	}
	values := make(map[string]string)
	for _, m := range reKeyValue.FindAllStringSubmatch(text, -1) {
		values[m[1]] = m[2]
	}
	return values, nil
}

// PluralForms is a decoded Plural-Forms catalogue header: the number of
// plural forms and the formula selecting a form index per quantity.
type PluralForms struct {
	formula    pluralexpr.Formula
	count      int
	source     string
	definition string
}

// ParsePluralForms decodes a Plural-Forms definition such as
//
//	nplurals=2; plural=n > 1;
//
// A missing plural formula defaults to the identity and a missing
// nplurals to 2. A non-numeric or negative nplurals is an error.
func ParsePluralForms(definition string) (*PluralForms, error) {
	values, err := parseKeyValueList(definition)
	if err != nil {
		return nil, err
	}
	source := values["plural"]
	formula, err := pluralexpr.Parse(source)
	if err != nil {
		return nil, newPluralFormsError(err)
	}
	count := 2
	if s, ok := values["nplurals"]; ok {
		count, err = strconv.Atoi(s)
		if err != nil || count < 0 {
			return nil, newPluralFormsMsgError(
				fmt.Sprintf("invalid nplurals value: %q", s))
		}
	}
	return &PluralForms{
		formula:    formula,
		count:      count,
		source:     source,
		definition: definition,
	}, nil
}

// Value returns the plural form index for quantity n. It reports false
// when the formula selects no form or one beyond Count.
func (f *PluralForms) Value(n int) (int, bool) {
	index, ok := f.formula.Index(int64(n))
	if !ok || index >= f.count {
		return 0, false
	}
	return index, true
}

// Count returns the number of plural forms.
func (f *PluralForms) Count() int { return f.count }

// Formula returns the raw formula text of the definition.
func (f *PluralForms) Formula() string { return f.source }

// Definition returns the raw definition text.
func (f *PluralForms) Definition() string { return f.definition }
