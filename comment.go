package poreader

// Comment is a catalogue comment of a kind the reader does not decode
// itself, kept verbatim. Standard kinds (' ', '.', ':', ',') become
// notes, locations and flags instead and never appear as Comment.
type Comment struct {
	kind    rune
	content string
}

func NewComment(kind rune, content string) Comment {
	return Comment{kind: kind, content: content}
}

// Kind returns the character following '#' on the comment line.
func (c Comment) Kind() rune { return c.kind }

// Content returns the comment text.
func (c Comment) Content() string { return c.content }
