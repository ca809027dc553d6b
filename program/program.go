// Package program implements the program-binary ingestion path of the
// runtime: classifying one opaque binary per target device, converting or
// unpacking it as its format requires, and assembling the results into a
// single Program with all-or-nothing semantics.
package program

import (
	"github.com/portcl/portcl/archive"
	"github.com/portcl/portcl/device"
)

// BuildState is the per-device build state of a program.
type BuildState int

//go:generate go tool enumer -type=BuildState -trimprefix=Build -output=gen_buildstate_enumer.go program.go

const (
	BuildNone BuildState = iota
	BuildError
	BuildSuccess
	BuildInProgress
)

// IRHandle is an opaque handle to a toolchain-owned intermediate
// representation object. The toolchain that produces handles also releases
// them.
type IRHandle interface {
	Release()
}

// Program holds, for each of its devices, whichever compiled representations
// could be recovered from the binary given for that device.
//
// The per-device slices are parallel to Devices(), and are either all
// allocated to the same length or all nil: a Program never has a device
// array length mismatch. Each slot is populated by exactly one loader.
type Program struct {
	ctx      *device.Context
	devices  []*device.Device
	retained bool

	// Per-device slots, all length len(devices) once allocated.
	binaries       [][]byte         // Intermediate representation (bitcode) bytes.
	nativeBinaries [][]byte         // Native archive bytes, verbatim.
	irs            []IRHandle       // Toolchain handles, filled by a later build.
	buildLogs      []string
	buildStates    []BuildState
	buildHashes    []archive.Hash
}

// NumDevices returns the number of devices the program is associated with.
func (p *Program) NumDevices() int { return len(p.devices) }

// Devices returns the program's normalized device list. The returned slice
// is owned by the program.
func (p *Program) Devices() []*device.Device { return p.devices }

// Context returns the owning context.
func (p *Program) Context() *device.Context { return p.ctx }

// Binary returns the intermediate-representation bytes held for device i,
// or nil when none were recovered.
func (p *Program) Binary(i int) []byte { return p.binaries[i] }

// NativeBinary returns the native archive bytes held for device i, or nil.
func (p *Program) NativeBinary(i int) []byte { return p.nativeBinaries[i] }

// IR returns the toolchain handle for device i, or nil if the program was
// not yet built by the toolchain.
func (p *Program) IR(i int) IRHandle { return p.irs[i] }

// BuildLog returns the build log for device i.
func (p *Program) BuildLog(i int) string { return p.buildLogs[i] }

// BuildStateFor returns the build state for device i.
func (p *Program) BuildStateFor(i int) BuildState { return p.buildStates[i] }

// BuildHash returns the build-identity hash for device i. It is zero unless
// the device's binary was a native archive.
func (p *Program) BuildHash(i int) archive.Hash { return p.buildHashes[i] }

// allocSlots allocates every per-device slot array to length n. Called once
// per program; keeps the all-or-nothing slot invariant trivially true.
func (p *Program) allocSlots(n int) {
	p.binaries = make([][]byte, n)
	p.nativeBinaries = make([][]byte, n)
	p.irs = make([]IRHandle, n)
	p.buildLogs = make([]string, n)
	p.buildStates = make([]BuildState, n)
	p.buildHashes = make([]archive.Hash, n)
}

// releaseSlots drops every per-device slot, releasing toolchain handles.
// Resilient to any subset of the arrays being nil.
func (p *Program) releaseSlots() {
	for i := range p.binaries {
		p.binaries[i] = nil
	}
	p.binaries = nil
	for i := range p.nativeBinaries {
		p.nativeBinaries[i] = nil
	}
	p.nativeBinaries = nil
	for i, handle := range p.irs {
		if handle != nil {
			handle.Release()
		}
		p.irs[i] = nil
	}
	p.irs = nil
	p.buildLogs = nil
	p.buildStates = nil
	p.buildHashes = nil
}

// Finalize releases every resource the program holds: all per-device slots,
// the device list, and the reference on the owning context. It is the same
// release path ingestion uses when rolling back a failed call. Idempotent.
func (p *Program) Finalize() {
	if p == nil {
		return
	}
	p.releaseSlots()
	p.devices = nil
	if p.retained {
		p.retained = false
		p.ctx.Release()
	}
	p.ctx = nil
}
