// Package spirv recognizes SPIR-V portable binaries and drives the external
// llvm-spirv translator that converts them to the runtime's intermediate
// representation (LLVM bitcode).
package spirv

import (
	"encoding/binary"
)

// SPIR-V module header constants. A module is a stream of 32-bit words: a
// 5-word header followed by instructions, each instruction packing its word
// count and opcode into the first word.
const (
	// MagicNumber is the first word of every SPIR-V module.
	MagicNumber uint32 = 0x07230203

	headerWords = 5

	// OpEntryPoint declares a module entry point; its first operand is the
	// execution model.
	OpEntryPoint uint32 = 15

	// ExecutionModelKernel marks an OpEntryPoint with OpenCL kernel
	// semantics, as opposed to the graphics-pipeline execution models such
	// as ExecutionModelGLCompute.
	ExecutionModelKernel    uint32 = 6
	ExecutionModelGLCompute uint32 = 5
)

// RequiredExtension is the device extension a target must advertise before
// a SPIR binary can be consumed for it.
const RequiredExtension = "cl_khr_spir"

// IsSPIRV reports whether blob starts with the SPIR-V magic number, in
// either byte order.
func IsSPIRV(blob []byte) bool {
	if len(blob) < 4 {
		return false
	}
	word := binary.LittleEndian.Uint32(blob)
	return word == MagicNumber || swap32(word) == MagicNumber
}

// HasKernelEntryPoint reports whether blob is a SPIR-V module declaring at
// least one entry point with the Kernel execution model. This is the
// "kernel-mode" flag: a module without it targets a graphics pipeline and
// cannot be translated for compute use.
func HasKernelEntryPoint(blob []byte) bool {
	words, ok := moduleWords(blob)
	if !ok {
		return false
	}
	// Walk the instruction stream. Word 0 of each instruction holds
	// (wordCount << 16) | opcode.
	i := headerWords
	for i < len(words) {
		wordCount := int(words[i] >> 16)
		opcode := words[i] & 0xFFFF
		if wordCount == 0 {
			return false // Malformed stream, stop scanning.
		}
		if opcode == OpEntryPoint && i+1 < len(words) && words[i+1] == ExecutionModelKernel {
			return true
		}
		i += wordCount
	}
	return false
}

// moduleWords decodes blob into host-order words, detecting the module's
// endianness from the magic number.
func moduleWords(blob []byte) ([]uint32, bool) {
	if len(blob) < headerWords*4 || len(blob)%4 != 0 {
		return nil, false
	}
	first := binary.LittleEndian.Uint32(blob)
	swapped := false
	switch {
	case first == MagicNumber:
	case swap32(first) == MagicNumber:
		swapped = true
	default:
		return nil, false
	}
	words := make([]uint32, len(blob)/4)
	for i := range words {
		w := binary.LittleEndian.Uint32(blob[i*4:])
		if swapped {
			w = swap32(w)
		}
		words[i] = w
	}
	return words, true
}

func swap32(w uint32) uint32 {
	return w<<24 | (w&0xFF00)<<8 | (w>>8)&0xFF00 | w>>24
}
