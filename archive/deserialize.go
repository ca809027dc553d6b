package archive

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Deserialize unpacks a native archive into dir, materializing every entry
// as a file relative to it. Entries may not escape dir.
func Deserialize(blob []byte, dir string) error {
	entries, err := Unpack(blob)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		clean := filepath.Clean(entry.Path)
		if clean == "." || filepath.IsAbs(clean) || strings.HasPrefix(clean, "..") {
			return errors.Errorf("native archive entry %q escapes the cache directory", entry.Path)
		}
		target := filepath.Join(dir, clean)
		if err := os.MkdirAll(filepath.Dir(target), 0777); err != nil {
			return errors.Wrapf(err, "failed to create directory for archive entry %q", entry.Path)
		}
		if err := os.WriteFile(target, entry.Data, 0666); err != nil {
			return errors.Wrapf(err, "failed to write archive entry %q", entry.Path)
		}
		klog.V(2).Infof("unpacked archive entry %q (%d bytes)", target, len(entry.Data))
	}
	return nil
}
