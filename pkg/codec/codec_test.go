package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/quipnote/pkg/codec"
	"github.com/aretw0/quipnote/pkg/core"
)

func TestRoundTrip(t *testing.T) {
	lists := map[string]core.NoteList{
		"empty":      {},
		"single":     {"Buy milk"},
		"ordered":    {"Buy milk", "Call mom", "Buy milk"},
		"unicode":    {"café ☕", "naïve \"quotes\"", "line\nbreak"},
		"whitespace": {"a b", "- dash", "key: value"},
	}

	for _, name := range codec.Names() {
		c, err := codec.ForName(name)
		require.NoError(t, err)

		for label, notes := range lists {
			t.Run(name+"/"+label, func(t *testing.T) {
				data, err := c.Encode(notes)
				require.NoError(t, err)

				got, err := c.Decode(data)
				require.NoError(t, err)
				assert.Equal(t, notes, got)
			})
		}
	}
}

func TestEncode_NilIsEmptyList(t *testing.T) {
	data, err := codec.NewJSON().Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	got, err := codec.NewYAML().Decode(mustEncode(t, codec.NewYAML(), nil))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestJSON_Decode(t *testing.T) {
	c := codec.NewJSON()

	t.Run("Corrupted Shapes", func(t *testing.T) {
		for _, in := range []string{`{"a":1}`, `"text"`, `42`, `null`, `true`, `["ok", 3]`} {
			_, err := c.Decode([]byte(in))
			assert.ErrorIs(t, err, core.ErrCorrupted, "input %s", in)
		}
	})

	t.Run("Unparseable", func(t *testing.T) {
		for _, in := range []string{``, `[`, `not json`, `["a",]`} {
			_, err := c.Decode([]byte(in))
			require.Error(t, err, "input %q", in)
			assert.NotErrorIs(t, err, core.ErrCorrupted, "input %q", in)
		}
	})
}

func TestYAML_Decode(t *testing.T) {
	c := codec.NewYAML()

	_, err := c.Decode([]byte("a: 1\n"))
	assert.ErrorIs(t, err, core.ErrCorrupted)

	_, err = c.Decode([]byte("- [unclosed\n"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, core.ErrCorrupted)

	got, err := c.Decode([]byte("- one\n- two\n"))
	require.NoError(t, err)
	assert.Equal(t, core.NoteList{"one", "two"}, got)
}

func TestForName(t *testing.T) {
	c, err := codec.ForName("")
	require.NoError(t, err)
	assert.Equal(t, "json", c.Name())

	_, err = codec.ForName("xml")
	assert.Error(t, err)
}

func mustEncode(t *testing.T, c core.Codec, notes core.NoteList) []byte {
	t.Helper()
	data, err := c.Encode(notes)
	require.NoError(t, err)
	return data
}
