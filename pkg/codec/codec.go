// Package codec turns a note list into the blob stored in a slot and back.
//
// Every codec draws the same line between a slot that could not be parsed
// (a plain error, reported as a load failure) and a slot that parsed into
// something other than a list of strings (core.ErrCorrupted).
package codec

import (
	"fmt"
	"sort"

	"github.com/aretw0/quipnote/pkg/core"
)

// Default is the codec used when none is configured.
const Default = "json"

// Registry returns the standard set of codecs keyed by name.
func Registry() map[string]core.Codec {
	return map[string]core.Codec{
		"json": NewJSON(),
		"yaml": NewYAML(),
	}
}

// ForName resolves a codec by name. An empty name selects Default.
func ForName(name string) (core.Codec, error) {
	if name == "" {
		name = Default
	}
	c, ok := Registry()[name]
	if !ok {
		return nil, fmt.Errorf("unknown codec %q (available: %v)", name, Names())
	}
	return c, nil
}

// Names lists the registered codec names in a stable order.
func Names() []string {
	reg := Registry()
	names := make([]string, 0, len(reg))
	for n := range reg {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// fromSequence converts a generically decoded value into a NoteList.
func fromSequence(v any) (core.NoteList, error) {
	items, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected a list, got %T", core.ErrCorrupted, v)
	}
	notes := make(core.NoteList, 0, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("%w: item %d is %T, not a string", core.ErrCorrupted, i, item)
		}
		notes = append(notes, s)
	}
	return notes, nil
}
