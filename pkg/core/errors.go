package core

import "errors"

// Common errors.
var (
	ErrReadOnly = errors.New("slot store is in read-only mode")
	ErrNotFound = errors.New("slot not found")

	// ErrFetch marks any network or HTTP failure while fetching a joke.
	ErrFetch = errors.New("fetch joke")
	// ErrLoad marks a failure reading or parsing the notes slot.
	ErrLoad = errors.New("load notes")
	// ErrCorrupted is the LoadError sub-case where the slot parsed but did not
	// hold a list of strings.
	ErrCorrupted = errors.New("notes slot corrupted")
	ErrSave      = errors.New("save notes")
	ErrClear     = errors.New("clear notes")
)

// User-facing messages. Errors never carry more detail than this to a display.
const (
	MsgFetch     = "Could not fetch a joke. Check your connection and try again."
	MsgCorrupted = "Saved notes were corrupted and have been reset."
	MsgLoad      = "Failed to load notes."
	MsgSave      = "Failed to save note."
	MsgClear     = "Failed to clear notes."
	MsgUnknown   = "Something went wrong."
)

// Message flattens err into its fixed user-facing text. A nil error yields "".
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrFetch):
		return MsgFetch
	case errors.Is(err, ErrCorrupted):
		return MsgCorrupted
	case errors.Is(err, ErrLoad):
		return MsgLoad
	case errors.Is(err, ErrSave):
		return MsgSave
	case errors.Is(err, ErrClear):
		return MsgClear
	default:
		return MsgUnknown
	}
}
