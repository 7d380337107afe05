package poreader

// Message is the source text of a unit together with its target text.
// A message is either simple (one source, one target) or plural (a
// singular and a plural source with one target per plural form). The
// zero value is the empty simple message.
type Message struct {
	plural  *Plural
	id      string
	text    string
	hasText bool
}

func newSimpleMessage(id, text string, hasText bool) Message {
	return Message{id: id, text: text, hasText: hasText}
}

func newPluralMessage(p *Plural) Message { return Message{plural: p} }

// IsEmpty reports whether the message is simple with an empty source.
func (m Message) IsEmpty() bool { return m.plural == nil && m.id == "" }

// IsSimple reports whether the message is simple with a non-empty source.
func (m Message) IsSimple() bool { return m.plural == nil && m.id != "" }

// IsPlural reports whether the message carries plural forms.
func (m Message) IsPlural() bool { return m.plural != nil }

// IsBlank reports whether the message has no usable target text.
func (m Message) IsBlank() bool {
	if m.plural != nil {
		return m.plural.IsBlank()
	}
	return m.text == ""
}

// ID returns the source text, the singular one for plural messages.
func (m Message) ID() string {
	if m.plural != nil {
		return m.plural.Singular()
	}
	return m.id
}

// Text returns the target text. For plural messages this is the first
// plural form's text.
func (m Message) Text() string {
	if m.plural != nil {
		return m.plural.First()
	}
	return m.text
}

// PluralID returns the plural source text of a plural message.
func (m Message) PluralID() (string, bool) {
	if m.plural == nil {
		return "", false
	}
	return m.plural.PluralID(), true
}

// PluralText returns the target text for quantity n. For a simple
// message the quantity is ignored and the target is returned whenever
// it is present.
func (m Message) PluralText(n int) (string, bool) {
	if m.plural != nil {
		return m.plural.Get(n)
	}
	if !m.hasText {
		return "", false
	}
	return m.text, true
}

// Plural returns the plural forms of a plural message, nil otherwise.
func (m Message) Plural() *Plural { return m.plural }

// Equal reports whether two messages carry the same source and target.
// A missing target text is considered equal to an empty one. Plural
// messages compare by their singular and plural sources.
func (m Message) Equal(other Message) bool {
	if (m.plural != nil) != (other.plural != nil) {
		return false
	}
	if m.plural != nil {
		return m.plural.singular == other.plural.singular &&
			m.plural.plural == other.plural.plural
	}
	return m.id == other.id && m.text == other.text
}
