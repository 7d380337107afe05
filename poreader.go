// Package poreader implements a streaming reader for GNU gettext `.po`
// translation catalogues.
//
// The reader decodes one unit at a time and never materializes the
// whole catalogue, so arbitrarily large files can be processed in
// constant memory. Supported catalogue features include multi-line
// strings, plural forms with the full Plural-Forms selector grammar,
// message contexts, previous-value comments ("#|"), obsolete entries
// ("#~"), flags, locations and developer/translator notes.
package poreader

import "golang.org/x/text/language"

// CatalogueReader is the read surface of a translation catalogue:
// scanner-style unit iteration plus the decoded header.
type CatalogueReader interface {
	Next() bool
	Unit() *Unit
	Err() error

	TargetLanguage() language.Tag
	HeaderProperties() *Properties
	HeaderNotes() []Note
	HeaderComments() []Comment
}
