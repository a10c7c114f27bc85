package encrypted

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	t.Parallel()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Put(map[string]string{"parentId": "5", "accessToken": "tok"}))

	value, ok, err := store.Get("parentId")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "5", value)

	_, ok, err = store.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	first, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.Put(map[string]string{"accessToken": "tok"}))

	second, err := NewStore(dir)
	require.NoError(t, err)

	value, ok, err := second.Get("accessToken")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tok", value)
}

func TestStoreDataFileIsNotPlaintext(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Put(map[string]string{"accessToken": "very-secret-token"}))

	raw, err := os.ReadFile(filepath.Join(dir, dataFileName))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "very-secret-token")
}

func TestStorePutMergesExistingValues(t *testing.T) {
	t.Parallel()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Put(map[string]string{"parentId": "5"}))
	require.NoError(t, store.Put(map[string]string{"accessToken": "tok"}))

	value, ok, err := store.Get("parentId")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "5", value)
}

func TestStoreClearRemovesValuesAndIsIdempotent(t *testing.T) {
	t.Parallel()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Put(map[string]string{"parentId": "5"}))

	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())

	_, ok, err := store.Get("parentId")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNewStoreFailsOnCorruptDataFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Put(map[string]string{"parentId": "5"}))

	require.NoError(t, os.WriteFile(filepath.Join(dir, dataFileName), []byte("garbage"), 0o600))

	_, err = NewStore(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "verify settings file")
}

func TestNewStoreFailsOnCorruptKeyFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, keyFileName), []byte("not base64 !!"), 0o600))

	_, err := NewStore(dir)
	require.Error(t, err)
}

func TestStoreFilePermissions(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not meaningful on windows")
	}

	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Put(map[string]string{"parentId": "5"}))

	for _, name := range []string{keyFileName, dataFileName} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(storeFileMode), info.Mode().Perm(), name)
	}
}
