// Package binfmt classifies opaque program binaries by content signature.
package binfmt

import (
	"bytes"

	"github.com/portcl/portcl/archive"
	"github.com/portcl/portcl/device"
	"github.com/portcl/portcl/spirv"
)

// FormatTag identifies which of the recognized binary formats a blob is.
type FormatTag int

//go:generate go tool enumer -type=FormatTag -trimprefix=Format -output=gen_formattag_enumer.go binfmt.go

const (
	FormatUnknown FormatTag = iota
	FormatIR
	FormatPortableIR
	FormatNativeArchive
)

// bitcodeMagic is the two-byte prefix of LLVM bitcode files.
var bitcodeMagic = []byte("BC")

// Classify inspects blob's header bytes and returns its format, plus, for
// SPIR-V blobs, whether the module declares a kernel-mode entry point.
//
// The checks run in a fixed order: bitcode first, then SPIR-V, then the
// native archive signature for the given device. The archive check comes
// last because its signature test is only meaningful once the portable
// formats were ruled out. Anything else is FormatUnknown.
func Classify(dev *device.Device, blob []byte) (tag FormatTag, kernelMode bool) {
	switch {
	case bytes.HasPrefix(blob, bitcodeMagic):
		return FormatIR, false
	case spirv.IsSPIRV(blob):
		return FormatPortableIR, spirv.HasKernelEntryPoint(blob)
	case archive.CheckBinary(dev, blob):
		return FormatNativeArchive, false
	}
	return FormatUnknown, false
}
