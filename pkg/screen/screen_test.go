package screen_test

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/quipnote/internal/testutil"
	"github.com/aretw0/quipnote/pkg/adapters/fs"
	"github.com/aretw0/quipnote/pkg/adapters/memory"
	"github.com/aretw0/quipnote/pkg/codec"
	"github.com/aretw0/quipnote/pkg/core"
	"github.com/aretw0/quipnote/pkg/joke"
	"github.com/aretw0/quipnote/pkg/notes"
	"github.com/aretw0/quipnote/pkg/screen"
)

// jokeEndpoint serves a fixed joke, or fails with 503 while failing is set.
type jokeEndpoint struct {
	failing atomic.Bool
	srv     *httptest.Server
}

func newJokeEndpoint(t *testing.T) *jokeEndpoint {
	t.Helper()
	e := &jokeEndpoint{}
	e.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if e.failing.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		fmt.Fprint(w, `{"setup":"Why did...","punchline":"Because..."}`)
	}))
	t.Cleanup(e.srv.Close)
	return e
}

func newScreen(t *testing.T, slots core.SlotStore) (*screen.Screen, *jokeEndpoint) {
	t.Helper()
	e := newJokeEndpoint(t)
	fetcher := joke.NewFetcher(joke.NewClient(e.srv.URL, e.srv.Client(), nil), nil)
	store := notes.NewStore(slots, codec.NewJSON(), "", nil)
	s := screen.New(fetcher, store, slots, nil)
	require.NoError(t, s.Start(context.Background()))
	return s, e
}

func render(s *screen.Screen, hints bool) string {
	var buf bytes.Buffer
	r := screen.NewRenderer(false)
	r.Hints = hints
	r.Render(&buf, s.View())
	return buf.String()
}

func TestScreen_Initial(t *testing.T) {
	s, _ := newScreen(t, memory.NewStore())
	testutil.Golden(t, "initial", render(s, true))
}

func TestScreen_JokeSuccess(t *testing.T) {
	s, _ := newScreen(t, memory.NewStore())
	require.NoError(t, s.FetchJoke(context.Background()))

	v := s.View()
	assert.True(t, v.Joke.Visible())
	assert.False(t, v.Joke.Busy)
	testutil.Golden(t, "joke_success", render(s, false))
}

func TestScreen_JokeFailureHidesJoke(t *testing.T) {
	s, e := newScreen(t, memory.NewStore())
	require.NoError(t, s.FetchJoke(context.Background()))

	e.failing.Store(true)
	assert.ErrorIs(t, s.FetchJoke(context.Background()), core.ErrFetch)

	v := s.View()
	assert.False(t, v.Joke.Busy)
	assert.False(t, v.Joke.Visible())
	testutil.Golden(t, "joke_failure", render(s, false))
}

func TestScreen_AddAndRestart(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	openSlots := func() core.SlotStore {
		st := fs.NewStore(fs.Config{Path: dir})
		require.NoError(t, st.Initialize(ctx))
		return st
	}

	s, _ := newScreen(t, openSlots())
	s.SetInput("Buy milk")
	require.NoError(t, s.Submit(ctx))
	assert.Empty(t, s.View().Input, "input is cleared after a successful add")
	require.NoError(t, s.AddNote(ctx, "Call mom"))
	require.NoError(t, s.Close())

	restarted, _ := newScreen(t, openSlots())
	assert.Equal(t, core.NoteList{"Buy milk", "Call mom"}, restarted.View().Notes.Notes)
	testutil.Golden(t, "notes_after_restart", render(restarted, false))
}

func TestScreen_BlankInputKept(t *testing.T) {
	s, _ := newScreen(t, memory.NewStore())
	s.SetInput("   ")
	require.NoError(t, s.Submit(context.Background()))
	assert.Equal(t, "   ", s.View().Input)
	assert.Empty(t, s.View().Notes.Notes)
}

func TestScreen_ClearWithNotes(t *testing.T) {
	ctx := context.Background()
	slots := memory.NewStore()
	s, _ := newScreen(t, slots)
	for _, n := range []string{"a", "b", "c"} {
		require.NoError(t, s.AddNote(ctx, n))
	}

	require.NoError(t, s.ClearNotes(ctx))
	assert.Empty(t, s.View().Notes.Notes)
	_, err := slots.Get(ctx, core.DefaultSlotKey)
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestScreen_SaveErrorRendered(t *testing.T) {
	ctx := context.Background()
	slots := testutil.NewFaultySlots(memory.NewStore())
	s, _ := newScreen(t, slots)
	slots.FailSet(true)

	assert.ErrorIs(t, s.AddNote(ctx, "Buy milk"), core.ErrSave)
	assert.Empty(t, s.View().Input)
	testutil.Golden(t, "save_error", render(s, false))
}

func TestScreen_CorruptedSlot(t *testing.T) {
	slots := memory.NewStore()
	require.NoError(t, slots.Set(context.Background(), core.DefaultSlotKey, []byte(`{"oops":true}`)))

	e := newJokeEndpoint(t)
	s := screen.New(
		joke.NewFetcher(joke.NewClient(e.srv.URL, e.srv.Client(), nil), nil),
		notes.NewStore(slots, codec.NewJSON(), "", nil),
		slots, nil,
	)
	assert.ErrorIs(t, s.Start(context.Background()), core.ErrCorrupted)
	testutil.Golden(t, "corrupted", render(s, false))
}

func TestScreen_Dispatch(t *testing.T) {
	s, _ := newScreen(t, memory.NewStore())

	done := s.Dispatch(context.Background(), "joke", s.FetchJoke)
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("dispatched fetch did not finish")
	}
	assert.True(t, s.View().Joke.Visible())
}

func TestScreen_Follow(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dir := t.TempDir()
	slots := fs.NewStore(fs.Config{Path: dir})
	require.NoError(t, slots.Initialize(ctx))
	s, _ := newScreen(t, slots)

	changed := make(chan screen.View, 4)
	go func() {
		_ = s.Follow(ctx, func(_ core.Event, v screen.View) { changed <- v })
	}()
	// Give the watcher a moment to register.
	time.Sleep(100 * time.Millisecond)

	other := fs.NewStore(fs.Config{Path: dir})
	require.NoError(t, other.Set(ctx, core.DefaultSlotKey, []byte(`["from another terminal"]`)))

	select {
	case v := <-changed:
		assert.Equal(t, core.NoteList{"from another terminal"}, v.Notes.Notes)
	case <-time.After(3 * time.Second):
		t.Fatal("no change observed")
	}
}

func TestScreen_FollowNotWatchable(t *testing.T) {
	s, _ := newScreen(t, memory.NewStore())
	assert.ErrorIs(t, s.Follow(context.Background(), nil), screen.ErrNotWatchable)
}

func TestScreen_State(t *testing.T) {
	s, _ := newScreen(t, memory.NewStore())
	require.NoError(t, s.AddNote(context.Background(), "x"))

	st := s.State().(screen.ScreenState)
	assert.Equal(t, "slot-store:memory", st.Store)
	assert.Equal(t, 1, st.Notes.(notes.StoreState).Count)
	assert.Equal(t, "screen", s.ComponentType())
}
