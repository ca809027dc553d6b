package binfmt

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portcl/portcl/archive"
	"github.com/portcl/portcl/device"
	"github.com/portcl/portcl/spirv"
)

func spirvModule(execModel uint32) []byte {
	words := []uint32{
		spirv.MagicNumber, 0x00010000, 0, 2, 0,
		4<<16 | spirv.OpEntryPoint, execModel, 1, 0,
	}
	blob := make([]byte, len(words)*4)
	for i, w := range words {
		binary.LittleEndian.PutUint32(blob[i*4:], w)
	}
	return blob
}

func TestClassify(t *testing.T) {
	dev := device.New("cpu", "portcl")
	archiveBlob, err := archive.Pack(dev, []archive.Entry{{Path: "program.bc", Data: []byte("BC\xc0\xde")}})
	require.NoError(t, err)

	tag, kernelMode := Classify(dev, []byte("BC\xc0\xde-rest-of-bitcode"))
	assert.Equal(t, FormatIR, tag)
	assert.False(t, kernelMode)

	tag, kernelMode = Classify(dev, spirvModule(spirv.ExecutionModelKernel))
	assert.Equal(t, FormatPortableIR, tag)
	assert.True(t, kernelMode)

	tag, kernelMode = Classify(dev, spirvModule(spirv.ExecutionModelGLCompute))
	assert.Equal(t, FormatPortableIR, tag)
	assert.False(t, kernelMode, "graphics-pipeline module is portable IR without kernel mode")

	tag, _ = Classify(dev, archiveBlob)
	assert.Equal(t, FormatNativeArchive, tag)

	tag, _ = Classify(dev, []byte("definitely not a program binary"))
	assert.Equal(t, FormatUnknown, tag)
	tag, _ = Classify(dev, nil)
	assert.Equal(t, FormatUnknown, tag)
}

func TestClassify_ArchiveForAnotherDevice(t *testing.T) {
	cpu := device.New("cpu", "portcl")
	gpu := device.New("gpu", "portcl")
	blob, err := archive.Pack(cpu, []archive.Entry{{Path: "program.bc", Data: []byte("BC\xc0\xde")}})
	require.NoError(t, err)

	// The archive signature is validated per target device.
	tag, _ := Classify(cpu, blob)
	assert.Equal(t, FormatNativeArchive, tag)
	tag, _ = Classify(gpu, blob)
	assert.Equal(t, FormatUnknown, tag)
}

func TestFormatTag_Strings(t *testing.T) {
	assert.Equal(t, "IR", FormatIR.String())
	assert.Equal(t, "NativeArchive", FormatNativeArchive.String())
	parsed, err := FormatTagString("PortableIR")
	require.NoError(t, err)
	assert.Equal(t, FormatPortableIR, parsed)
}
