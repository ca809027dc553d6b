// Package cache manages the runtime's on-disk program cache: per-program
// build directories keyed by (build-identity hash, device), and the
// temporary blobs the SPIR-V translation path works on.
package cache

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/portcl/portcl/archive"
	"github.com/portcl/portcl/device"
)

// EnvCacheDir is the environment variable that overrides the cache root
// directory.
const EnvCacheDir = "PORTCL_CACHE_DIR"

// IRFileName is the name of the cached intermediate-representation artifact
// inside a program cache directory.
const IRFileName = "program.bc"

// Root returns the cache root directory, creating it if needed. It honors
// EnvCacheDir and otherwise defaults to a "portcl" directory under the
// user's cache directory.
func Root() (string, error) {
	root := os.Getenv(EnvCacheDir)
	if root == "" {
		userCache, err := os.UserCacheDir()
		if err != nil {
			return "", errors.Wrapf(err, "cannot determine the user cache directory, set %s", EnvCacheDir)
		}
		root = filepath.Join(userCache, "portcl")
	}
	if err := os.MkdirAll(root, 0777); err != nil {
		return "", errors.Wrapf(err, "failed to create cache root %q", root)
	}
	return root, nil
}

// CreateProgramDir creates (if needed) and returns the cache directory for
// one (build-identity hash, device) pair. Concurrent calls for the same pair
// are safe: MkdirAll is idempotent.
func CreateProgramDir(hash archive.Hash, dev *device.Device) (string, error) {
	root, err := Root()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(root, hash.String(), dev.Root().Name())
	if err := os.MkdirAll(dir, 0777); err != nil {
		return "", errors.Wrapf(err, "failed to create program cache directory %q", dir)
	}
	klog.V(2).Infof("program cache directory: %q", dir)
	return dir, nil
}

// ProgramIRPath returns the path where a program cache directory stores its
// cached intermediate representation, if any.
func ProgramIRPath(programDir string) string {
	return filepath.Join(programDir, IRFileName)
}

// WriteTempBlob stores blob under the cache's tmp area, named after its
// content, and returns the path. A blob already written by an earlier call
// is reused rather than rewritten.
func WriteTempBlob(blob []byte) (string, error) {
	root, err := Root()
	if err != nil {
		return "", err
	}
	tmpDir := filepath.Join(root, "tmp")
	if err := os.MkdirAll(tmpDir, 0777); err != nil {
		return "", errors.Wrapf(err, "failed to create cache tmp directory %q", tmpDir)
	}
	path := filepath.Join(tmpDir, archive.BuildHash(blob).String()+".spv")
	if Exists(path) {
		return path, nil
	}
	if err := os.WriteFile(path, blob, 0666); err != nil {
		return "", errors.Wrapf(err, "failed to write temporary blob %q", path)
	}
	return path, nil
}

// TempName returns a fresh unique path under the cache's tmp area with the
// given suffix. The file is not created.
func TempName(suffix string) (string, error) {
	root, err := Root()
	if err != nil {
		return "", err
	}
	tmpDir := filepath.Join(root, "tmp")
	if err := os.MkdirAll(tmpDir, 0777); err != nil {
		return "", errors.Wrapf(err, "failed to create cache tmp directory %q", tmpDir)
	}
	return filepath.Join(tmpDir, uuid.NewString()+suffix), nil
}

// Exists returns true if the file or directory exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	if err == nil {
		return true
	}
	if errors.Is(err, os.ErrNotExist) {
		return false
	}
	panic(err)
}

// ReadFile reads the whole file at path.
func ReadFile(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read cache file %q", path)
	}
	return content, nil
}

// Remove deletes the file at path, logging (but not failing) on error.
func Remove(path string) {
	if err := os.Remove(path); err != nil {
		klog.Warningf("Failed to remove cache file %q: %+v", path, err)
	}
}
