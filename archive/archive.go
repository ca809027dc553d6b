// Package archive implements the runtime's native packed program format: a
// per-device bundle of compiled artifacts and metadata, identified by a
// content signature so a bundle built for one device is rejected by another.
package archive

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"hash/fnv"

	"github.com/pkg/errors"

	"github.com/portcl/portcl/device"
)

// Format version. Bundles written by a different version are rejected.
const Version uint32 = 1

// magic identifies a native archive. Chosen to not collide with bitcode
// ("BC") or the SPIR-V magic in either endianness.
var magic = []byte{0x70, 0x6f, 0x61, 0x72, 0x63, 0x68, 0x00, 0x01}

const magicLen = 8
const headerLen = magicLen + 4 + 8 // magic + version + device signature

// Entry is one file of the bundle, with its path relative to the program's
// cache directory.
type Entry struct {
	Path string
	Data []byte
}

// deviceSignature identifies the physical device an archive was packed for.
func deviceSignature(dev *device.Device) uint64 {
	root := dev.Root()
	h := fnv.New64a()
	_, _ = h.Write([]byte(root.Name()))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(root.Vendor()))
	return h.Sum64()
}

// CheckBinary reports whether blob is a native archive packed for dev.
func CheckBinary(dev *device.Device, blob []byte) bool {
	if len(blob) < headerLen {
		return false
	}
	if !bytes.Equal(blob[:magicLen], magic) {
		return false
	}
	version := binary.LittleEndian.Uint32(blob[magicLen:])
	if version != Version {
		return false
	}
	signature := binary.LittleEndian.Uint64(blob[magicLen+4:])
	return signature == deviceSignature(dev)
}

// Pack serializes entries into a native archive for dev.
func Pack(dev *device.Device, entries []Entry) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(magic)
	var header [12]byte
	binary.LittleEndian.PutUint32(header[:4], Version)
	binary.LittleEndian.PutUint64(header[4:], deviceSignature(dev))
	buf.Write(header[:])
	if err := gob.NewEncoder(&buf).Encode(entries); err != nil {
		return nil, errors.Wrapf(err, "failed to serialize native archive for device %q", dev)
	}
	return buf.Bytes(), nil
}

// Unpack decodes the entries of a native archive. It does not validate the
// device signature; use CheckBinary for that.
func Unpack(blob []byte) ([]Entry, error) {
	if len(blob) < headerLen || !bytes.Equal(blob[:magicLen], magic) {
		return nil, errors.Errorf("blob is not a native archive")
	}
	var entries []Entry
	if err := gob.NewDecoder(bytes.NewReader(blob[headerLen:])).Decode(&entries); err != nil {
		return nil, errors.Wrapf(err, "failed to decode native archive payload")
	}
	return entries, nil
}
