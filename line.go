package poreader

// lineKind discriminates the classified physical lines of a catalogue.
// Blank lines are recognized but never surface past the tokenizer.
type lineKind uint8

const (
	lineBlank lineKind = iota
	lineComment
	lineMessage
	lineContinuation
)

// poLine is one classified physical line.
type poLine struct {
	kind lineKind

	// n is the 1-based line number, 0 for blank lines.
	n int

	// flag is the marker prefix of a message or continuation line:
	// "" for regular, "~" for obsolete, "|" for previous-value and
	// "~|" for both.
	flag string

	// ckind is the comment kind character (' ' for translator notes,
	// '.' developer notes, ':' locations, ',' flags, anything else
	// verbatim). Only set for comment lines.
	ckind rune

	// tag is the message keyword, prefixed with "|" for previous-value
	// fields, e.g. "msgid", "msgstr[2]", "|msgctxt".
	tag string

	// text is the decoded string content of message and continuation
	// lines, or the comment content.
	text string
}
