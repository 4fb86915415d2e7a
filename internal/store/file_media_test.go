package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocalStore(t *testing.T) (MediaFileStore, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := NewLocalMediaFileStore(dir, logger.Nop())
	require.NoError(t, err)
	return store, dir
}

func TestLocalMediaFileStore_SaveLoadRoundTrip(t *testing.T) {
	store, dir := newLocalStore(t)
	ctx := testContext()

	blob := []byte("salt|iv|tag|ciphertext")

	key, err := store.SaveBlob(ctx, blob)
	require.NoError(t, err)
	require.NotEmpty(t, key)

	// the key doubles as the file name
	info, err := os.Stat(filepath.Join(dir, key))
	require.NoError(t, err)
	assert.Equal(t, int64(len(blob)), info.Size())

	loaded, err := store.LoadBlob(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, blob, loaded)
}

func TestLocalMediaFileStore_SaveGeneratesUniqueKeys(t *testing.T) {
	store, _ := newLocalStore(t)
	ctx := testContext()

	first, err := store.SaveBlob(ctx, []byte("blob-1"))
	require.NoError(t, err)
	second, err := store.SaveBlob(ctx, []byte("blob-2"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestLocalMediaFileStore_LoadMissing(t *testing.T) {
	store, _ := newLocalStore(t)
	ctx := testContext()

	_, err := store.LoadBlob(ctx, "no-such-key")
	require.ErrorIs(t, err, ErrMediaNotFound)
}

func TestLocalMediaFileStore_LoadStripsPathTraversal(t *testing.T) {
	parent := t.TempDir()
	dir := filepath.Join(parent, "media")

	store, err := NewLocalMediaFileStore(dir, logger.Nop())
	require.NoError(t, err)

	// a file outside the media directory must stay unreachable
	outside := filepath.Join(parent, "escape")
	require.NoError(t, os.WriteFile(outside, []byte("outside"), 0o600))

	_, err = store.LoadBlob(testContext(), "../escape")
	require.ErrorIs(t, err, ErrMediaNotFound)
}

func TestLocalMediaFileStore_DeleteIsIdempotent(t *testing.T) {
	store, dir := newLocalStore(t)
	ctx := testContext()

	key, err := store.SaveBlob(ctx, []byte("blob"))
	require.NoError(t, err)

	require.NoError(t, store.DeleteBlob(ctx, key))

	_, statErr := os.Stat(filepath.Join(dir, key))
	assert.True(t, os.IsNotExist(statErr), "blob file should be gone")

	// deleting again is not an error
	require.NoError(t, store.DeleteBlob(ctx, key))
}

func TestNewLocalMediaFileStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "media")

	_, err := NewLocalMediaFileStore(dir, logger.Nop())
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestNewLocalMediaFileStore_DirIsAFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plainfile")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	_, err := NewLocalMediaFileStore(path, logger.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create media directory")
}
