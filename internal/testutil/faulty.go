// Package testutil holds helpers shared by package tests.
package testutil

import (
	"context"
	"errors"
	"sync"

	"github.com/aretw0/quipnote/pkg/core"
)

// ErrInjected is returned by a FaultySlots operation that was told to fail.
var ErrInjected = errors.New("injected failure")

// FaultySlots wraps a SlotStore and fails selected operations on demand.
type FaultySlots struct {
	core.SlotStore

	mu         sync.Mutex
	failGet    bool
	failSet    bool
	failRemove bool
	sets       int
	removes    int
}

// NewFaultySlots wraps inner.
func NewFaultySlots(inner core.SlotStore) *FaultySlots {
	return &FaultySlots{SlotStore: inner}
}

func (f *FaultySlots) FailGet(fail bool)    { f.mu.Lock(); f.failGet = fail; f.mu.Unlock() }
func (f *FaultySlots) FailSet(fail bool)    { f.mu.Lock(); f.failSet = fail; f.mu.Unlock() }
func (f *FaultySlots) FailRemove(fail bool) { f.mu.Lock(); f.failRemove = fail; f.mu.Unlock() }

// Sets is the number of Set calls that reached the inner store.
func (f *FaultySlots) Sets() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sets
}

// Removes is the number of Remove calls that reached the inner store.
func (f *FaultySlots) Removes() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.removes
}

func (f *FaultySlots) Get(ctx context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	fail := f.failGet
	f.mu.Unlock()
	if fail {
		return nil, ErrInjected
	}
	return f.SlotStore.Get(ctx, key)
}

func (f *FaultySlots) Set(ctx context.Context, key string, data []byte) error {
	f.mu.Lock()
	fail := f.failSet
	if !fail {
		f.sets++
	}
	f.mu.Unlock()
	if fail {
		return ErrInjected
	}
	return f.SlotStore.Set(ctx, key, data)
}

func (f *FaultySlots) Remove(ctx context.Context, key string) error {
	f.mu.Lock()
	fail := f.failRemove
	if !fail {
		f.removes++
	}
	f.mu.Unlock()
	if fail {
		return ErrInjected
	}
	return f.SlotStore.Remove(ctx, key)
}
