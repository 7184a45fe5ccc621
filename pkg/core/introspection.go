package core

import "github.com/aretw0/introspection"

// Component is satisfied by every service that reports its state through
// the status command.
type Component interface {
	introspection.Introspectable
	introspection.Component
}
