package archive

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portcl/portcl/device"
)

var testEntries = []Entry{
	{Path: "program.bc", Data: []byte("BC\xc0\xde-bitcode-bytes")},
	{Path: filepath.ToSlash(filepath.Join("kernel_a", "kernel_a.so")), Data: []byte{0x7f, 'E', 'L', 'F'}},
	{Path: "metadata.yaml", Data: []byte("kernels: [kernel_a]\n")},
}

func TestPackUnpackRoundTrip(t *testing.T) {
	dev := device.New("cpu", "portcl")
	blob, err := Pack(dev, testEntries)
	require.NoError(t, err)

	require.True(t, CheckBinary(dev, blob))
	entries, err := Unpack(blob)
	require.NoError(t, err)
	require.Equal(t, testEntries, entries)
}

func TestCheckBinary_RejectsForeignArchives(t *testing.T) {
	cpu := device.New("cpu", "portcl")
	gpu := device.New("gpu", "portcl")
	blob, err := Pack(cpu, testEntries)
	require.NoError(t, err)

	assert.False(t, CheckBinary(gpu, blob), "archive packed for another device")
	assert.False(t, CheckBinary(cpu, blob[:headerLen-1]), "truncated header")
	assert.False(t, CheckBinary(cpu, []byte("BC\xc0\xde")), "bitcode is not an archive")
	assert.False(t, CheckBinary(cpu, nil))

	// Version mismatch.
	bad := append([]byte(nil), blob...)
	bad[magicLen] ^= 0xFF
	assert.False(t, CheckBinary(cpu, bad))
}

func TestCheckBinary_AcceptsSubDeviceOfTarget(t *testing.T) {
	cpu := device.New("cpu", "portcl")
	blob, err := Pack(cpu, testEntries)
	require.NoError(t, err)

	// Archives are signed per physical device; a sub-device resolves to it.
	sub := cpu.NewSubDevice("cpu-part0")
	assert.True(t, CheckBinary(sub, blob))
}

func TestUnpack_RejectsCorruptPayload(t *testing.T) {
	dev := device.New("cpu", "portcl")
	blob, err := Pack(dev, testEntries)
	require.NoError(t, err)

	corrupt := append([]byte(nil), blob[:headerLen+3]...)
	_, err = Unpack(corrupt)
	require.Error(t, err)
}

func TestDeserialize(t *testing.T) {
	dev := device.New("cpu", "portcl")
	blob, err := Pack(dev, testEntries)
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, Deserialize(blob, dir))
	for _, entry := range testEntries {
		content, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(entry.Path)))
		require.NoError(t, err)
		assert.Equal(t, entry.Data, content)
	}
}

func TestDeserialize_RejectsEscapingEntries(t *testing.T) {
	dev := device.New("cpu", "portcl")
	blob, err := Pack(dev, []Entry{{Path: "../escape", Data: []byte("nope")}})
	require.NoError(t, err)
	require.ErrorContains(t, Deserialize(blob, t.TempDir()), "escapes")
}

func TestBuildHash_ContentDerived(t *testing.T) {
	dev := device.New("cpu", "portcl")
	blob, err := Pack(dev, testEntries)
	require.NoError(t, err)

	// The same content always hashes to the same build identity.
	assert.Equal(t, BuildHash(blob), BuildHash(blob))
	assert.Equal(t, BuildHash(blob).String(), BuildHash(append([]byte(nil), blob...)).String())

	other, err := Pack(dev, testEntries[:1])
	require.NoError(t, err)
	assert.NotEqual(t, BuildHash(blob), BuildHash(other))

	assert.True(t, Hash{}.IsZero())
	assert.False(t, BuildHash(blob).IsZero())
	assert.Len(t, BuildHash(blob).String(), 40)
}
