package codec

import (
	"encoding/json"
	"fmt"

	"github.com/aretw0/quipnote/pkg/core"
)

// JSON stores the list as a compact JSON array of strings.
type JSON struct{}

// NewJSON creates the JSON codec.
func NewJSON() *JSON {
	return &JSON{}
}

func (JSON) Name() string { return "json" }
func (JSON) Ext() string  { return ".json" }

func (JSON) Encode(notes core.NoteList) ([]byte, error) {
	if notes == nil {
		notes = core.NoteList{}
	}
	return json.Marshal([]string(notes))
}

func (JSON) Decode(data []byte) (core.NoteList, error) {
	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	return fromSequence(payload)
}
