package profile

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveGetRoundTrip(t *testing.T) {
	store := Open(filepath.Join(t.TempDir(), "profiles.json"))
	p := Profile{Name: "wide", Widths: "14,-,20", Layout: "grid", Delimiter: "\t", BreakLongWords: true}
	require.NoError(t, store.Save(p))

	got, ok, err := store.Get("wide")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, p, got)
}

func TestGetMissingProfile(t *testing.T) {
	store := Open(filepath.Join(t.TempDir(), "profiles.json"))
	_, ok, err := store.Get("nope")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestListOrdersAllSaved(t *testing.T) {
	store := Open(filepath.Join(t.TempDir(), "profiles.json"))
	require.NoError(t, store.Save(Profile{Name: "a", Widths: "10"}))
	require.NoError(t, store.Save(Profile{Name: "b", Widths: "20"}))

	list, err := store.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	names := []string{list[0].Name, list[1].Name}
	assert.Equal(t, []string{"a", "b"}, names)
}

func TestDeleteRemovesProfile(t *testing.T) {
	store := Open(filepath.Join(t.TempDir(), "profiles.json"))
	require.NoError(t, store.Save(Profile{Name: "a", Widths: "10"}))
	require.NoError(t, store.Delete("a"))

	_, ok, err := store.Get("a")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDeleteMissingProfileIsNotError(t *testing.T) {
	store := Open(filepath.Join(t.TempDir(), "profiles.json"))
	assert.NoError(t, store.Delete("nope"))
}

func TestNewerMajorSchemaRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.json")
	store := Open(path)
	require.NoError(t, store.Save(Profile{Name: "a", Widths: "10"}))

	// Simulate a future store written by a later incompatible version.
	doc, err := store.read()
	require.NoError(t, err)
	bumped := `{"schema_version":"2.0.0","profiles":{}}`
	require.NoError(t, store.write(bumped))
	_ = doc

	_, _, err = store.Get("a")
	assert.Error(t, err)
}
