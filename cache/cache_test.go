package cache

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portcl/portcl/archive"
	"github.com/portcl/portcl/device"
)

func TestRoot_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvCacheDir, dir)
	root, err := Root()
	require.NoError(t, err)
	assert.Equal(t, dir, root)
}

func TestCreateProgramDir(t *testing.T) {
	t.Setenv(EnvCacheDir, t.TempDir())
	dev := device.New("cpu", "portcl")
	hash := archive.BuildHash([]byte("some archive content"))

	dir, err := CreateProgramDir(hash, dev)
	require.NoError(t, err)
	assert.True(t, Exists(dir))
	assert.Contains(t, dir, hash.String())
	assert.Equal(t, "cpu", filepath.Base(dir))

	// Idempotent: a second creation for the same pair returns the same dir.
	again, err := CreateProgramDir(hash, dev)
	require.NoError(t, err)
	assert.Equal(t, dir, again)

	// A sub-device maps to its physical parent's directory.
	sub := dev.NewSubDevice("cpu-part0")
	subDir, err := CreateProgramDir(hash, sub)
	require.NoError(t, err)
	assert.Equal(t, dir, subDir)
}

func TestWriteTempBlob_ReusesContent(t *testing.T) {
	t.Setenv(EnvCacheDir, t.TempDir())
	blob := []byte("spirv-ish content")

	path1, err := WriteTempBlob(blob)
	require.NoError(t, err)
	info1, err := os.Stat(path1)
	require.NoError(t, err)

	// Same content: same path, file untouched.
	path2, err := WriteTempBlob(blob)
	require.NoError(t, err)
	assert.Equal(t, path1, path2)
	info2, err := os.Stat(path2)
	require.NoError(t, err)
	assert.Equal(t, info1.ModTime(), info2.ModTime())

	content, err := ReadFile(path1)
	require.NoError(t, err)
	assert.Equal(t, blob, content)

	// Different content lands elsewhere.
	path3, err := WriteTempBlob([]byte("other content"))
	require.NoError(t, err)
	assert.NotEqual(t, path1, path3)
}

func TestTempName(t *testing.T) {
	t.Setenv(EnvCacheDir, t.TempDir())
	name1, err := TempName(".bc")
	require.NoError(t, err)
	name2, err := TempName(".bc")
	require.NoError(t, err)

	assert.NotEqual(t, name1, name2)
	assert.True(t, strings.HasSuffix(name1, ".bc"))
	assert.False(t, Exists(name1), "TempName must not create the file")
}

func TestProgramIRPath(t *testing.T) {
	assert.Equal(t, filepath.Join("some", "dir", IRFileName), ProgramIRPath(filepath.Join("some", "dir")))
}

func TestRemove_MissingFileOnlyWarns(t *testing.T) {
	t.Setenv(EnvCacheDir, t.TempDir())
	// Must not panic.
	Remove(filepath.Join(t.TempDir(), "never-existed"))
}
