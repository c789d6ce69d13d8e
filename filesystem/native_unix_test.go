//go:build unix

package filesystem_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/brettbedarf/fsnode"
	"github.com/brettbedarf/fsnode/config"
	"github.com/brettbedarf/fsnode/filesystem"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOsPosix(t *testing.T) (*filesystem.FileSystem, string) {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	cfg := config.NewDefaultConfig()
	cfg.BaseDir = dir
	fsys, err := filesystem.NewPosix(cfg, afero.NewOsFs())
	require.NoError(t, err)
	return fsys, dir
}

func TestOsPosix_Symlinks(t *testing.T) {
	t.Parallel()

	fsys, dir := newOsPosix(t)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "real"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "file.txt"), []byte("f"), 0o644))
	require.NoError(t, os.Symlink(filepath.Join(dir, "real"), filepath.Join(dir, "linkdir")))
	require.NoError(t, os.Symlink(filepath.Join(dir, "gone"), filepath.Join(dir, "dangling")))

	children := fsys.CurrentDirectory().Children(fsnode.ListAll, false)
	fsnode.SortNodes(children)
	assert.Equal(t, []string{"linkdir", "real", "file.txt"}, names(children),
		"links are classified by target and dangling links are skipped")

	dirs := fsys.CurrentDirectory().Children(fsnode.ListDirectoriesOnly, false)
	assert.Len(t, dirs, 2)
}

func TestOsPosix_AccessChecks(t *testing.T) {
	t.Parallel()

	fsys, dir := newOsPosix(t)
	path := filepath.Join(dir, "ro.txt")
	require.NoError(t, os.WriteFile(path, []byte("r"), 0o444))

	n := nodeAt(t, fsys, path)
	assert.True(t, n.IsReadable())
	if os.Geteuid() != 0 {
		assert.False(t, n.IsWritable())
	}

	require.NoError(t, os.Chmod(path, 0o644))
	assert.True(t, n.IsWritable(), "access checks are live, not snapshots")

	assert.False(t, nodeAt(t, fsys, filepath.Join(dir, "missing")).IsReadable())
}

func TestOsPosix_RoundTrip(t *testing.T) {
	t.Parallel()

	fsys, dir := newOsPosix(t)

	sub := nodeAt(t, fsys, "sub")
	require.NoError(t, sub.CreateDirectory())

	sub = nodeAt(t, fsys, "sub")
	file, err := sub.Child("out.bin")
	require.NoError(t, err)

	ws, err := file.OpenWrite()
	require.NoError(t, err)
	_, err = ws.Write([]byte{1, 2, 3, 4})
	require.NoError(t, err)
	require.NoError(t, ws.Close())

	got, err := os.ReadFile(filepath.Join(dir, "sub", "out.bin"))
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4}, got)

	rs, err := nodeAt(t, fsys, "sub/out.bin").OpenRead()
	require.NoError(t, err)
	defer rs.Close()
	assert.Equal(t, int64(4), rs.Size())
}

func TestOsPosix_AtomicWriteRespectsPermissions(t *testing.T) {
	t.Parallel()
	if os.Geteuid() == 0 {
		t.Skip("root bypasses file permissions")
	}

	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	path := filepath.Join(dir, "locked.txt")
	require.NoError(t, os.WriteFile(path, []byte("original"), 0o444))

	for _, atomic := range []bool{false, true} {
		cfg := config.NewDefaultConfig()
		cfg.BaseDir = dir
		cfg.AtomicWrites = atomic
		fsys, err := filesystem.NewPosix(cfg, afero.NewOsFs())
		require.NoError(t, err)

		_, err = nodeAt(t, fsys, path).OpenWrite()
		assert.ErrorIs(t, err, fsnode.ErrPermissionDenied, "atomic=%t", atomic)

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "original", string(got), "atomic=%t", atomic)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp file is left behind")
}
