package platform

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/quipnote/pkg/adapters/memory"
	"github.com/aretw0/quipnote/pkg/core"
)

func TestNew_FSAdapter(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "data")

	s, err := New(dir)
	require.NoError(t, err)
	require.NoError(t, s.Start(ctx))
	require.NoError(t, s.AddNote(ctx, "hello"))

	data, err := os.ReadFile(filepath.Join(dir, "notes.json"))
	require.NoError(t, err)
	assert.Equal(t, `["hello"]`, string(data))
}

func TestNew_YAMLCodecUsesYAMLFile(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s, err := New(dir, WithCodec("yaml"), WithSlotKey("jots"))
	require.NoError(t, err)
	require.NoError(t, s.Start(ctx))
	require.NoError(t, s.AddNote(ctx, "hello"))

	assert.FileExists(t, filepath.Join(dir, "jots.yaml"))
}

func TestNew_Errors(t *testing.T) {
	cases := map[string][]Option{
		"unknown adapter":  {WithAdapter("s3")},
		"unknown codec":    {WithCodec("toml")},
		"redis needs addr": {WithAdapter("redis")},
	}
	for name, opts := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := New(t.TempDir(), opts...)
			assert.Error(t, err)
		})
	}

	t.Run("fs needs dir", func(t *testing.T) {
		_, err := New("")
		assert.Error(t, err)
	})

	t.Run("must exist", func(t *testing.T) {
		_, err := New(filepath.Join(t.TempDir(), "missing"), WithMustExist(true))
		assert.Error(t, err)
	})
}

func TestNew_ReadOnly(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.json"), []byte(`["kept"]`), 0644))

	s, err := New(dir, WithReadOnly(true))
	require.NoError(t, err)
	require.NoError(t, s.Start(ctx))

	err = s.AddNote(ctx, "new")
	assert.ErrorIs(t, err, core.ErrSave)
	assert.ErrorIs(t, err, core.ErrReadOnly)
	assert.Equal(t, core.NoteList{"kept", "new"}, s.View().Notes.Notes)
}

func TestNew_InjectedSlotStoreAndJokeURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"setup":"s","punchline":"p"}`)
	}))
	defer srv.Close()

	slots := memory.NewStore()
	s, err := New("", WithSlotStore(slots), WithJokeURL(srv.URL), WithTimeout(5*time.Second))
	require.NoError(t, err)
	require.NoError(t, s.FetchJoke(context.Background()))
	assert.Equal(t, "p", s.View().Joke.Joke.Punchline)
}

func TestNew_Timeout(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	s, err := New("", WithAdapter("memory"), WithJokeURL(srv.URL), WithTimeout(50*time.Millisecond))
	require.NoError(t, err)
	assert.ErrorIs(t, s.FetchJoke(context.Background()), core.ErrFetch)
	assert.Equal(t, core.MsgFetch, s.View().Joke.Message())
}
