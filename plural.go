package poreader

// Plural holds the plural source texts and target variants of a plural
// message. Variant selection requires the catalogue's PluralForms.
type Plural struct {
	forms    *PluralForms
	singular string
	plural   string
	values   []string
}

func newPlural(forms *PluralForms, singular, plural string, values []string) *Plural {
	return &Plural{forms: forms, singular: singular, plural: plural, values: values}
}

// Singular returns the singular source text.
func (p *Plural) Singular() string { return p.singular }

// PluralID returns the plural source text.
func (p *Plural) PluralID() string { return p.plural }

// First returns the first target variant, or "" when none is present.
func (p *Plural) First() string {
	if len(p.values) == 0 {
		return ""
	}
	return p.values[0]
}

// Get returns the target variant for quantity n. It reports false when
// the catalogue defines no plural forms or the formula selects no
// variant for n.
func (p *Plural) Get(n int) (string, bool) {
	if p.forms == nil {
		return "", false
	}
	index, ok := p.forms.Value(n)
	if !ok || index >= len(p.values) {
		return "", false
	}
	return p.values[index], true
}

// Values returns all target variants in form order.
func (p *Plural) Values() []string { return p.values }

// IsBlank reports whether every target variant is empty.
func (p *Plural) IsBlank() bool {
	for _, v := range p.values {
		if v != "" {
			return false
		}
	}
	return true
}

// Forms returns the catalogue plural forms the variants are indexed by.
func (p *Plural) Forms() *PluralForms { return p.forms }
