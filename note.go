package poreader

// Origin tells who authored a note.
type Origin uint8

const (
	// OriginDeveloper marks extracted notes ("#." comments).
	OriginDeveloper Origin = iota + 1

	// OriginTranslator marks translator notes ("# " comments).
	OriginTranslator
)

func (o Origin) String() string {
	switch o {
	case OriginDeveloper:
		return "developer"
	case OriginTranslator:
		return "translator"
	}
	return "unknown"
}

// Note is a developer or translator note attached to a unit.
type Note struct {
	origin Origin
	value  string
}

func NewNote(origin Origin, value string) Note {
	return Note{origin: origin, value: value}
}

// Origin tells who authored the note.
func (n Note) Origin() Origin { return n.origin }

// Value returns the note text.
func (n Note) Value() string { return n.value }
