// Package core holds the domain types and contracts shared by the joke and
// notes interactions.
package core

import "fmt"

// Joke is an ephemeral value decoded verbatim from the remote endpoint.
// Missing fields are left empty.
type Joke struct {
	Setup     string `json:"setup"`
	Punchline string `json:"punchline"`
}

// EventType represents the type of change observed on a slot.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change to a slot made outside the current process.
type Event struct {
	Type      EventType
	Key       string
	Timestamp int64 // Unix timestamp
}

func (e Event) String() string {
	return fmt.Sprintf("%s %s", e.Type, e.Key)
}
