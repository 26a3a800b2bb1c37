package jsonstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_LoadMissingDocument(t *testing.T) {
	t.Parallel()

	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	records := make(map[string]string)
	require.NoError(t, store.Load("users", &records))
	assert.Empty(t, records)
}

func TestFileStore_SaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	in := map[string][]int{"u1": {1, 2, 3}, "u2": {}}
	require.NoError(t, store.Save("carts", in))

	out := make(map[string][]int)
	require.NoError(t, store.Load("carts", &out))
	assert.Equal(t, in, out)
}

func TestFileStore_LastWriteWins(t *testing.T) {
	t.Parallel()

	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Save("doc", map[string]string{"a": "1", "b": "2"}))
	require.NoError(t, store.Save("doc", map[string]string{"c": "3"}))

	out := make(map[string]string)
	require.NoError(t, store.Load("doc", &out))
	assert.Equal(t, map[string]string{"c": "3"}, out)
}

func TestFileStore_CorruptDocument(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{not json"), 0o644))

	out := make(map[string]string)
	assert.Error(t, store.Load("bad", &out))
}

func TestFileStore_LockSerializes(t *testing.T) {
	t.Parallel()

	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	const writers = 20
	done := make(chan struct{})
	for i := 0; i < writers; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			unlock := store.Lock("counter")
			defer unlock()

			counts := make(map[string]int)
			assert.NoError(t, store.Load("counter", &counts))
			counts["n"]++
			assert.NoError(t, store.Save("counter", counts))
		}()
	}
	for i := 0; i < writers; i++ {
		<-done
	}

	counts := make(map[string]int)
	require.NoError(t, store.Load("counter", &counts))
	assert.Equal(t, writers, counts["n"])
}

func TestMemStore_Roundtrip(t *testing.T) {
	t.Parallel()

	store := NewMemStore()

	out := make(map[string]string)
	require.NoError(t, store.Load("missing", &out))
	assert.Empty(t, out)

	require.NoError(t, store.Save("doc", map[string]string{"k": "v"}))
	require.NoError(t, store.Load("doc", &out))
	assert.Equal(t, "v", out["k"])
}
