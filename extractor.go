package poreader

import "fmt"

// messageExtractor assembles the previous-value and current fields of
// one unit from the token stream. Nothing is committed to the unit
// until the whole entry decoded successfully.
type messageExtractor struct {
	dec      decoder
	forms    *PluralForms
	obsolete bool
}

// extract decodes one logical entry into unit. It returns false when
// the stream holds no further entry. first relaxes the msgid
// requirement for the catalogue's first entry.
func (x *messageExtractor) extract(unit *Unit, first bool) (bool, error) {
	prevContext, hasPrevContext, err := x.fetch("|msgctxt")
	if err != nil {
		return false, err
	}
	prevID, hasPrevID, err := x.fetch("|msgid")
	if err != nil {
		return false, err
	}
	var prevPluralID string
	var hasPrevPluralID bool
	if hasPrevID {
		prevPluralID, hasPrevPluralID, err = x.fetch("|msgid_plural")
		if err != nil {
			return false, err
		}
	}
	prevMessage := x.newPrevious(prevID, hasPrevID, prevPluralID, hasPrevPluralID)

	context, hasContext, err := x.fetch("msgctxt")
	if err != nil {
		return false, err
	}
	id, hasID, err := x.fetch("msgid")
	if err != nil {
		return false, err
	}
	if !hasID && !first {
		if err := x.dec.expectEnd("msgid"); err != nil {
			return false, err
		}
		return false, nil
	}
	pluralID, hasPluralID, err := x.fetch("msgid_plural")
	if err != nil {
		return false, err
	}
	message, ok, err := x.newMessage(id, hasID, pluralID, hasPluralID)
	if err != nil || !ok {
		return false, err
	}

	unit.prevContext, unit.hasPrevContext = prevContext, hasPrevContext
	unit.prevMessage = prevMessage
	unit.context, unit.hasContext = context, hasContext
	unit.message = message
	return true, nil
}

func (x *messageExtractor) fetch(tag string) (string, bool, error) {
	return x.dec.fetch(tag, x.obsolete)
}

// newPrevious builds the message recorded by "#|" previous-value
// comments. Previous messages never carry target text.
func (x *messageExtractor) newPrevious(
	id string, hasID bool, pluralID string, hasPluralID bool,
) Message {
	switch {
	case !hasID:
		return Message{}
	case !hasPluralID:
		return newSimpleMessage(id, "", false)
	}
	return newPluralMessage(newPlural(x.forms, id, pluralID, nil))
}

// newMessage decodes the msgstr part and builds the current message.
// ok is false when the entry turned out incomplete at end of input.
func (x *messageExtractor) newMessage(
	id string, hasID bool, pluralID string, hasPluralID bool,
) (Message, bool, error) {
	if !hasID {
		return Message{}, true, nil
	}
	if !hasPluralID {
		text, ok, err := x.fetch("msgstr")
		if err != nil {
			return Message{}, false, err
		}
		if !ok {
			if err := x.dec.expectEnd("msgstr"); err != nil {
				return Message{}, false, err
			}
			return Message{}, false, nil
		}
		return newSimpleMessage(id, text, text != ""), true, nil
	}
	count := 2
	if x.forms != nil {
		count = x.forms.Count()
	}
	var values []string
	for i := range count {
		value, ok, err := x.fetch(fmt.Sprintf("msgstr[%d]", i))
		if err != nil {
			return Message{}, false, err
		}
		if ok {
			values = append(values, value)
		}
	}
	if len(values) == 0 {
		if err := x.dec.expectEnd("msgstr[0]"); err != nil {
			return Message{}, false, err
		}
		return Message{}, false, nil
	}
	return newPluralMessage(newPlural(x.forms, id, pluralID, values)), true, nil
}
