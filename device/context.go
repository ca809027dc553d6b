package device

import (
	"sync/atomic"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Context owns an ordered set of devices. It is reference-counted: programs
// built for the context retain it, and the context is only destroyed once
// every holder released it.
type Context struct {
	devices []*Device
	refs    atomic.Int64

	// onDestroy, if set, runs when the reference count reaches zero.
	onDestroy func()
}

// NewContext creates a context owning the given devices. The context starts
// with a reference count of 1, held by the caller.
func NewContext(devices ...*Device) (*Context, error) {
	if len(devices) == 0 {
		return nil, errors.Errorf("a context requires at least one device")
	}
	seen := make(map[*Device]struct{}, len(devices))
	for _, d := range devices {
		if d == nil {
			return nil, errors.Errorf("nil device given to NewContext")
		}
		if _, dup := seen[d]; dup {
			return nil, errors.Errorf("device %q given more than once to NewContext", d)
		}
		seen[d] = struct{}{}
	}
	ctx := &Context{devices: devices}
	ctx.refs.Store(1)
	return ctx, nil
}

// Devices returns the context's device set, in creation order. The returned
// slice is owned by the context and must not be modified.
func (c *Context) Devices() []*Device { return c.devices }

// NumDevices returns the number of devices owned by the context.
func (c *Context) NumDevices() int { return len(c.devices) }

// Owns reports whether d is a member of the context's device set.
func (c *Context) Owns(d *Device) bool {
	for _, member := range c.devices {
		if member == d {
			return true
		}
	}
	return false
}

// OnDestroy registers fn to run when the reference count drops to zero.
func (c *Context) OnDestroy(fn func()) { c.onDestroy = fn }

// Retain increments the context's reference count.
func (c *Context) Retain() {
	c.refs.Add(1)
}

// Release decrements the reference count, destroying the context when it
// reaches zero.
func (c *Context) Release() {
	newCount := c.refs.Add(-1)
	if newCount < 0 {
		klog.Errorf("Context released more times than retained (count=%d)", newCount)
		return
	}
	if newCount == 0 && c.onDestroy != nil {
		c.onDestroy()
	}
}

// RefCount returns the current reference count. Meant for tests and
// diagnostics only.
func (c *Context) RefCount() int { return int(c.refs.Load()) }
