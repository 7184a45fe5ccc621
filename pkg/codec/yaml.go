package codec

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/quipnote/pkg/core"
)

// YAML stores the list as a YAML sequence. It is an alternative to JSON for
// slots that people edit by hand.
type YAML struct{}

// NewYAML creates the YAML codec.
func NewYAML() *YAML {
	return &YAML{}
}

func (YAML) Name() string { return "yaml" }
func (YAML) Ext() string  { return ".yaml" }

func (YAML) Encode(notes core.NoteList) ([]byte, error) {
	if notes == nil {
		notes = core.NoteList{}
	}
	return yaml.Marshal([]string(notes))
}

func (YAML) Decode(data []byte) (core.NoteList, error) {
	var payload any
	if err := yaml.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}
	return fromSequence(payload)
}
