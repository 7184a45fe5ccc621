// Package quipnote is the composition root for the quipnote screen.
//
// A screen hosts two interactions that never talk to each other:
//
//   - a joke fetcher, which reads one random joke from a remote endpoint on
//     demand and shows loading, success or a fixed error line;
//   - a notes store, which keeps an ordered list of short notes in memory and
//     mirrors the whole list into a single key-value slot.
//
// Slots live on the filesystem by default. The "memory" and "redis" adapters
// are available, and any core.SlotStore can be injected.
//
// Usage:
//
//	s, err := quipnote.New("./data", quipnote.WithLogger(logger))
//	if err != nil {
//		return err
//	}
//	_ = s.Start(ctx) // load persisted notes
//	_ = s.AddNote(ctx, "Buy milk")
//	_ = s.FetchJoke(ctx)
package quipnote
