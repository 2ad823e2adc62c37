package assets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSave_WritesFileAndReturnsURL(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	url, err := store.Save("site plan (rev 2).png", strings.NewReader("image-bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, URLPrefix))
	// Sanitization keeps only [A-Za-z0-9.-].
	name := strings.TrimPrefix(url, URLPrefix)
	assert.Regexp(t, `^\d+-[0-9a-f-]{8}-siteplanrev2.png$`, name)

	path, ok := store.resolve(url)
	require.True(t, ok)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(data))
}

func TestSave_UniqueNames(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	a, err := store.Save("x.jpg", strings.NewReader("a"))
	require.NoError(t, err)
	b, err := store.Save("x.jpg", strings.NewReader("b"))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestSave_NonASCIINameIsStripped(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	url, err := store.Save("день.jpg", strings.NewReader("a"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(url, ".jpg"))
}

func TestDelete_RemovesFile(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	url, err := store.Save("a.jpg", strings.NewReader("a"))
	require.NoError(t, err)
	path, _ := store.resolve(url)

	store.Delete(url)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestDelete_MissingFileIsNotAnError(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	// Must not panic or surface anything.
	store.Delete(URLPrefix + "never-existed.jpg")
	store.Delete("/etc/passwd")
	store.Delete("")
}

func TestDelete_RejectsTraversal(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	outside := filepath.Join(dir, "secret.txt")
	require.NoError(t, os.WriteFile(outside, []byte("keep"), 0o644))

	store.Delete(URLPrefix + "../secret.txt")
	_, statErr := os.Stat(outside)
	assert.NoError(t, statErr)
}

func TestList(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	u1, err := store.Save("a.jpg", strings.NewReader("a"))
	require.NoError(t, err)
	u2, err := store.Save("b.jpg", strings.NewReader("b"))
	require.NoError(t, err)

	files, err := store.List()
	require.NoError(t, err)
	require.Len(t, files, 2)

	urls := []string{files[0].URL, files[1].URL}
	assert.Contains(t, urls, u1)
	assert.Contains(t, urls, u2)
	for _, f := range files {
		assert.False(t, f.ModTime.IsZero())
	}
}

func TestNewStore_RequiresDir(t *testing.T) {
	_, err := NewStore("")
	assert.Error(t, err)
}
