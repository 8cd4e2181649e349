package healthdb

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "health.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestPutGetJSON(t *testing.T) {
	store := openTemp(t)

	_, _, found, err := store.GetJSON("osHealth", "last_snapshot")
	require.NoError(t, err)
	assert.False(t, found)

	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, store.PutJSON("osHealth", "last_snapshot", `{"severity":1}`, at))

	v, cachedAt, found, err := store.GetJSON("osHealth", "last_snapshot")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"severity":1}`, v)
	assert.True(t, at.Equal(cachedAt))
}

func TestPutJSONOverwrites(t *testing.T) {
	store := openTemp(t)

	require.NoError(t, store.PutJSON("osHealth", "last_snapshot", `{"a":1}`, time.Time{}))
	require.NoError(t, store.PutJSON("osHealth", "last_snapshot", `{"a":2}`, time.Time{}))

	v, _, found, err := store.GetJSON("osHealth", "last_snapshot")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, `{"a":2}`, v)

	rows, err := store.Keys("osHealth")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestKeysAndDelete(t *testing.T) {
	store := openTemp(t)

	require.NoError(t, store.PutJSON("osHealth", "b", `{}`, time.Time{}))
	require.NoError(t, store.PutJSON("osHealth", "a", `{}`, time.Time{}))
	require.NoError(t, store.PutJSON("other", "c", `{}`, time.Time{}))

	rows, err := store.Keys("")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "a", rows[0].K)
	assert.Equal(t, "other", rows[2].Module)

	require.NoError(t, store.Delete("osHealth", "a"))
	rows, err = store.Keys("osHealth")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "b", rows[0].K)
}

func TestColorizeKeys(t *testing.T) {
	in := "{\n  \"severity\": 2,\n  \"messages\": [\n    \"CRIT: x\"\n  ]\n}\n"

	assert.Equal(t, in, colorizeKeys(in, true))

	out := colorizeKeys(in, false)
	assert.Contains(t, out, colKey+"\"severity\""+colReset+": 2,")
	assert.Contains(t, out, "    \"CRIT: x\"\n")
}

func TestPrettyJSON(t *testing.T) {
	out, err := prettyJSON(`{"a":1}`)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1\n}\n", out)

	_, err = prettyJSON("not json")
	assert.Error(t, err)
}
