package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aboard/internal/geom"
	"aboard/internal/state"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)

	doc := state.NewDocument()
	doc.Strokes = []state.Stroke{{Points: []geom.Point{{X: 1, Y: 2}}, Color: state.Black, Size: 3}}
	doc.View.Zoom = 2
	pal := state.NewPalette()

	id, err := s.Save("", doc, pal)
	require.NoError(t, err)
	assert.NotEmpty(t, id, "a fresh board gets a minted id")

	got, gotPal, err := s.Load(id)
	require.NoError(t, err)
	assert.Equal(t, doc.Strokes, got.Strokes)
	assert.Equal(t, 2.0, got.View.Zoom)
	assert.Equal(t, pal, gotPal)
}

func TestSaveExistingIDOverwrites(t *testing.T) {
	s := newTestStore(t)
	pal := state.NewPalette()

	doc := state.NewDocument()
	id, err := s.Save("myboard", doc, pal)
	require.NoError(t, err)
	assert.Equal(t, "myboard", id)

	doc.AddText("v2", 0, 0, state.Black)
	_, err = s.Save(id, doc, pal)
	require.NoError(t, err)

	got, _, err := s.Load(id)
	require.NoError(t, err)
	require.Len(t, got.Texts, 1)

	ids, err := s.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"myboard"}, ids)
}

func TestListSortedAndFiltered(t *testing.T) {
	s := newTestStore(t)
	pal := state.NewPalette()

	for _, id := range []string{"bbb", "aaa"} {
		_, err := s.Save(id, state.NewDocument(), pal)
		require.NoError(t, err)
	}
	// Stray files are not boards.
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), "notes.txt"), []byte("x"), 0o644))

	ids, err := s.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"aaa", "bbb"}, ids)
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)
	id, err := s.Save("gone", state.NewDocument(), state.NewPalette())
	require.NoError(t, err)

	require.NoError(t, s.Delete(id))

	ids, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, ids)

	_, _, err = s.Load(id)
	assert.Error(t, err)
}

func TestLoadMissingBoard(t *testing.T) {
	s := newTestStore(t)
	_, _, err := s.Load("nope")
	assert.Error(t, err)
}

func TestPathTraversalFlattened(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Save("../../escape", state.NewDocument(), state.NewPalette())
	require.NoError(t, err)

	ids, err := s.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"escape"}, ids)
}
