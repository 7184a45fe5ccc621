package core

import "strings"

// DefaultSlotKey is the storage slot holding the serialized note list.
const DefaultSlotKey = "@notes"

// NoteList is an ordered sequence of notes. Insertion order is preserved and
// duplicates are allowed; a note's position is its only handle.
type NoteList []string

// NormalizeNote trims surrounding whitespace. It reports false when nothing
// is left, in which case the input is not a note.
func NormalizeNote(text string) (string, bool) {
	t := strings.TrimSpace(text)
	return t, t != ""
}

// Clone returns a copy that does not share the backing array.
func (l NoteList) Clone() NoteList {
	out := make(NoteList, len(l))
	copy(out, l)
	return out
}
