package poreader

import (
	"io"
	"strings"

	"golang.org/x/text/language"
)

// Reader streams the translation units of a gettext `.po` catalogue.
// A header unit (empty msgid) at the top of the catalogue is consumed
// during construction and exposed through TargetLanguage,
// HeaderProperties, HeaderNotes and HeaderComments; it is never
// yielded as a unit.
//
// Iteration follows the scanner pattern:
//
//	r, err := poreader.NewReader(f)
//	if err != nil { ... }
//	for r.Next() {
//	    u := r.Unit()
//	    ...
//	}
//	if err := r.Err(); err != nil { ... }
//
// After the first error Next keeps returning false.
type Reader struct {
	tokens *tokenStream

	pending    *Unit
	pendingErr error
	current    *Unit
	err        error
	failed     bool

	language       language.Tag
	properties     Properties
	headerNotes    []Note
	headerComments []Comment
	forms          *PluralForms
}

var _ CatalogueReader = (*Reader)(nil)

// NewReader decodes the catalogue header of r, if present, and prepares
// unit iteration. Construction fails when the header or the first unit
// is malformed.
func NewReader(r io.Reader) (*Reader, error) {
	rd := &Reader{
		tokens:   newTokenStream(r),
		language: language.Und,
	}
	unit, err := rd.readUnit(true)
	if err != nil {
		return nil, err
	}
	if unit != nil && unit.message.IsEmpty() {
		if err := rd.decodeHeader(unit); err != nil {
			return nil, err
		}
		unit, err = rd.readUnit(false)
	}
	rd.pending, rd.pendingErr = unit, err
	return rd, nil
}

// Next advances to the next unit. It returns false at the end of the
// catalogue or once an error occurred, see Err.
func (r *Reader) Next() bool {
	if r.failed {
		return false
	}
	if r.pendingErr != nil {
		r.err = r.pendingErr
		r.pendingErr = nil
		r.failed = true
		r.current = nil
		return false
	}
	if r.pending == nil {
		r.current = nil
		return false
	}
	r.current = r.pending
	r.pending, r.pendingErr = r.readUnit(false)
	return true
}

// Unit returns the unit Next advanced to, nil before the first Next and
// after iteration ended.
func (r *Reader) Unit() *Unit { return r.current }

// Err returns the error that terminated iteration, if any.
func (r *Reader) Err() error { return r.err }

// TargetLanguage returns the tag decoded from the header's Language
// property, language.Und when absent or unparsable.
func (r *Reader) TargetLanguage() language.Tag { return r.language }

// HeaderProperties returns the `name: value` properties of the header.
func (r *Reader) HeaderProperties() *Properties { return &r.properties }

// HeaderNotes returns the notes attached to the header unit.
func (r *Reader) HeaderNotes() []Note { return r.headerNotes }

// HeaderComments returns the non-standard comments of the header unit.
func (r *Reader) HeaderComments() []Comment { return r.headerComments }

// PluralForms returns the decoded Plural-Forms header, nil when the
// catalogue defines none.
func (r *Reader) PluralForms() *PluralForms { return r.forms }

// decodeHeader splits the header unit's target text into properties and
// applies the ones the reader understands.
func (r *Reader) decodeHeader(unit *Unit) error {
	for _, line := range strings.Split(unit.message.Text(), "\n") {
		i := strings.IndexByte(line, ':')
		if i < 0 {
			continue
		}
		name := strings.TrimSpace(line[:i])
		value := strings.TrimSpace(line[i+1:])
		r.properties.add(name, value)
	}
	r.headerNotes = unit.notes
	r.headerComments = unit.comments

	if lang, ok := r.properties.Get("Language"); ok {
		if tag, err := language.Parse(lang); err == nil {
			r.language = tag
		}
	}
	// Definitions split over repeated Plural-Forms properties are
	// joined before decoding.
	definition := strings.Join(r.properties.Values("Plural-Forms"), " ")
	if strings.TrimSpace(definition) != "" {
		forms, err := ParsePluralForms(definition)
		if err != nil {
			return err
		}
		r.forms = forms
	}
	return nil
}

// readUnit decodes the next unit. It returns nil at end of input.
func (r *Reader) readUnit(first bool) (*Unit, error) {
	unit := &Unit{flags: make(map[string]struct{})}
	if err := r.readComments(unit); err != nil {
		return nil, err
	}
	line, ok, err := r.peekEntry(unit)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	x := &messageExtractor{dec: r.tokens, forms: r.forms, obsolete: unit.obsolete}
	ok, err = x.extract(unit, first)
	if err != nil || !ok {
		return nil, err
	}
	if !first && unit.message.IsEmpty() {
		return nil, newUnexpectedError(line, "source should not be empty")
	}
	if unit.state == StateEmpty && !unit.message.IsBlank() {
		unit.state = StateFinal
	}
	return unit, nil
}

// peekEntry checks whether another entry is pending and marks the unit
// obsolete when the entry's first message line carries a "#~" marker.
func (r *Reader) peekEntry(unit *Unit) (line int, ok bool, err error) {
	tok, ok, err := r.tokens.peek()
	if err != nil || !ok {
		return 0, false, err
	}
	if tok.kind == lineMessage && strings.HasPrefix(tok.flag, "~") {
		unit.obsolete = true
	}
	return tok.n, true, nil
}

// readComments drains the comment lines preceding an entry into unit.
func (r *Reader) readComments(unit *Unit) error {
	for {
		tok, ok, err := r.tokens.peek()
		if err != nil {
			return err
		}
		if !ok || tok.kind != lineComment {
			return nil
		}
		r.tokens.advance()
		switch tok.ckind {
		case ',':
			for _, flag := range strings.Split(tok.text, ",") {
				flag = strings.TrimSpace(flag)
				unit.flags[flag] = struct{}{}
				if flag == "fuzzy" {
					unit.state = StateNeedsWork
				}
			}
		case ':':
			unit.locations = append(unit.locations, strings.Fields(tok.text)...)
		case '.':
			unit.notes = append(unit.notes, NewNote(OriginDeveloper, tok.text))
		case ' ':
			unit.notes = append(unit.notes, NewNote(OriginTranslator, tok.text))
		default:
			unit.comments = append(unit.comments, NewComment(tok.ckind, tok.text))
		}
	}
}
