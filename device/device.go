// Package device models the compute devices a runtime context owns: physical
// devices, sub-devices partitioned from them, and the reference-counted
// Context that groups the devices a program may target.
package device

import (
	"fmt"
)

// Device is one compute device known to the runtime. A Device is either
// physical (parent == nil) or a sub-device partitioned from a physical one.
type Device struct {
	name       string
	vendor     string
	parent     *Device
	extensions map[string]struct{}
}

// New creates a physical device with the given name, vendor and supported
// extension names.
func New(name, vendor string, extensions ...string) *Device {
	d := &Device{
		name:       name,
		vendor:     vendor,
		extensions: make(map[string]struct{}, len(extensions)),
	}
	for _, ext := range extensions {
		d.extensions[ext] = struct{}{}
	}
	return d
}

// NewSubDevice partitions a sub-device out of d. The sub-device shares the
// parent's vendor and extension set.
func (d *Device) NewSubDevice(name string) *Device {
	return &Device{
		name:       name,
		vendor:     d.vendor,
		parent:     d,
		extensions: d.extensions,
	}
}

// Name returns the device name.
func (d *Device) Name() string { return d.name }

// Vendor returns the device vendor string.
func (d *Device) Vendor() string { return d.vendor }

// Parent returns the device this sub-device was partitioned from, or nil for
// a physical device.
func (d *Device) Parent() *Device { return d.parent }

// IsSubDevice reports whether d was partitioned from another device.
func (d *Device) IsSubDevice() bool { return d.parent != nil }

// Root returns the physical device at the top of the partition chain: d
// itself if d is physical.
func (d *Device) Root() *Device {
	root := d
	for root.parent != nil {
		root = root.parent
	}
	return root
}

// HasExtension reports whether the device advertises the given extension.
func (d *Device) HasExtension(name string) bool {
	_, found := d.extensions[name]
	return found
}

// String implements fmt.Stringer.
func (d *Device) String() string {
	if d.parent != nil {
		return fmt.Sprintf("%s (sub-device of %s)", d.name, d.Root().name)
	}
	return d.name
}
