package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventplanner/internal/domain"
)

func TestLocalImageStore_SaveAndRemove(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	store, err := NewLocalImageStore(dir)
	require.NoError(t, err)

	name, err := store.Save("Party.PNG", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, ".png"))
	assert.Len(t, name, 36+len(".png"))

	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	require.NoError(t, store.Remove(name))
	_, err = os.Stat(filepath.Join(dir, name))
	assert.True(t, os.IsNotExist(err))

	// second remove is a no-op
	assert.NoError(t, store.Remove(name))
	assert.NoError(t, store.Remove(""))
}

func TestLocalImageStore_RejectsExtension(t *testing.T) {
	store, err := NewLocalImageStore(t.TempDir())
	require.NoError(t, err)

	for _, n := range []string{"script.sh", "noext", "image.svg"} {
		_, err := store.Save(n, strings.NewReader("x"))
		assert.ErrorIs(t, err, domain.ErrInvalidInput, n)
	}
}

func TestLocalImageStore_RemoveStaysInDir(t *testing.T) {
	root := t.TempDir()
	outside := filepath.Join(root, "keep.png")
	require.NoError(t, os.WriteFile(outside, []byte("x"), 0o644))

	store, err := NewLocalImageStore(filepath.Join(root, "uploads"))
	require.NoError(t, err)

	require.NoError(t, store.Remove("../keep.png"))
	_, err = os.Stat(outside)
	assert.NoError(t, err)
}
