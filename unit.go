package poreader

import (
	"hash"
	"slices"
	"strconv"
	"sync"

	"github.com/cespare/xxhash"
)

// State is the translation state of a unit.
type State uint8

const (
	// StateEmpty marks a unit without target text.
	StateEmpty State = iota

	// StateNeedsWork marks a unit flagged fuzzy.
	StateNeedsWork

	// StateFinal marks a translated unit.
	StateFinal
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateNeedsWork:
		return "needs work"
	case StateFinal:
		return "final"
	}
	return "unknown"
}

// Unit is one logical translation entry of a catalogue.
type Unit struct {
	context        string
	hasContext     bool
	message        Message
	prevContext    string
	hasPrevContext bool
	prevMessage    Message
	flags          map[string]struct{}
	notes          []Note
	locations      []string
	comments       []Comment
	state          State
	obsolete       bool
}

// Context returns the disambiguation context, if any.
func (u *Unit) Context() (string, bool) { return u.context, u.hasContext }

// Message returns the unit's source and target texts.
func (u *Unit) Message() Message { return u.message }

// PrevContext returns the context the unit had before the last source
// update ("#| msgctxt"), if any.
func (u *Unit) PrevContext() (string, bool) { return u.prevContext, u.hasPrevContext }

// PrevMessage returns the message the unit had before the last source
// update ("#| msgid" and friends). It is empty when no previous-value
// comments are present.
func (u *Unit) PrevMessage() Message { return u.prevMessage }

// HasFlag reports whether the unit carries the named "#," flag.
func (u *Unit) HasFlag(name string) bool {
	_, ok := u.flags[name]
	return ok
}

// Flags returns all "#," flags of the unit, sorted.
func (u *Unit) Flags() []string {
	flags := make([]string, 0, len(u.flags))
	for f := range u.flags {
		flags = append(flags, f)
	}
	slices.Sort(flags)
	return flags
}

// Notes returns the developer and translator notes in order.
func (u *Unit) Notes() []Note { return u.notes }

// Locations returns the "#:" source references in order.
func (u *Unit) Locations() []string { return u.locations }

// Comments returns the non-standard comments in order.
func (u *Unit) Comments() []Comment { return u.comments }

// State returns the translation state.
func (u *Unit) State() State { return u.state }

// IsTranslated reports whether the unit's translation is final.
func (u *Unit) IsTranslated() bool { return u.state == StateFinal }

// IsObsolete reports whether the unit is marked obsolete ("#~").
func (u *Unit) IsObsolete() bool { return u.obsolete }

var unitHasherPool = sync.Pool{
	New: func() any { return xxhash.New() },
}

// Key returns a stable hexadecimal identity hash over the unit's
// context and source text. Units with equal context and source share
// the key regardless of their translation.
func (u *Unit) Key() string {
	h := unitHasherPool.Get().(hash.Hash64)
	defer unitHasherPool.Put(h)
	h.Reset()
	_, _ = h.Write([]byte(u.context))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(u.message.ID()))
	return strconv.FormatUint(h.Sum64(), 16)
}
