package quipnote_test

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aretw0/quipnote"
)

// Example_notes adds two notes, then opens the same directory again the way
// a restarted app would.
func Example_notes() {
	dir, err := os.MkdirTemp("", "quipnote-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	ctx := context.Background()

	s, err := quipnote.New(dir)
	if err != nil {
		log.Fatal(err)
	}
	_ = s.Start(ctx)
	_ = s.AddNote(ctx, "  Buy milk ")
	_ = s.AddNote(ctx, "Call mom")
	_ = s.AddNote(ctx, "   ") // ignored

	again, err := quipnote.New(dir)
	if err != nil {
		log.Fatal(err)
	}
	_ = again.Start(ctx)
	for i, n := range again.View().Notes.Notes {
		fmt.Printf("%d. %s\n", i+1, n)
	}
	// Output:
	// 1. Buy milk
	// 2. Call mom
}
