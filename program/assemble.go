package program

import (
	"k8s.io/klog/v2"

	"github.com/portcl/portcl/binfmt"
	"github.com/portcl/portcl/device"
	"github.com/portcl/portcl/spirv"
)

// Option configures FromBinaries.
type Option func(*options)

type options struct {
	statusOut     []Status
	translator    spirv.Translator
	translatorSet bool
	allowEmpty    bool
}

// WithBinaryStatus makes FromBinaries write a per-device status code into
// out, one entry per requested device, independent of the overall result.
// Callers processing multi-device failures should consult both.
func WithBinaryStatus(out []Status) Option {
	return func(o *options) { o.statusOut = out }
}

// WithTranslator injects the SPIR-V translator to use instead of the
// llvm-spirv subprocess found in PATH. Passing nil makes the runtime behave
// as if it had no SPIR-V support.
func WithTranslator(t spirv.Translator) Option {
	return func(o *options) {
		o.translator = t
		o.translatorSet = true
	}
}

// AllowEmpty permits the empty-program creation mode: with binaries == nil,
// FromBinaries returns a program with all per-device slots empty, used to
// seed a link target.
func AllowEmpty() Option {
	return func(o *options) { o.allowEmpty = true }
}

// releaser accumulates release actions as resources are acquired and unwinds
// them in reverse-acquisition order on failure.
type releaser struct {
	actions []func()
}

func (r *releaser) add(fn func()) { r.actions = append(r.actions, fn) }

func (r *releaser) releaseAll() {
	for i := len(r.actions) - 1; i >= 0; i-- {
		r.actions[i]()
	}
	r.actions = nil
}

// FromBinaries creates a program for the given devices from one opaque
// binary blob per device. Each blob is classified by content signature
// (bitcode, SPIR-V, or native archive) and loaded accordingly; SPIR-V blobs
// are translated to intermediate representation through the external
// translator, a blocking subprocess with no timeout.
//
// Devices are processed sequentially in list order, and a failure on any
// device aborts the call: every resource allocated so far is released
// (including the slots of devices already processed) and the error is
// returned with its Status; no partially constructed program is ever
// observable. On success the program holds a new reference on ctx, released
// again by Program.Finalize.
//
// The blobs are read-only to this call and copied where kept.
func FromBinaries(ctx *device.Context, devices []*device.Device, binaries [][]byte, opts ...Option) (*Program, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	// Validate arguments before touching anything.
	if ctx == nil {
		return nil, statusErrorf(InvalidContext, "nil context")
	}
	if len(devices) == 0 {
		return nil, statusErrorf(InvalidValue, "no devices given")
	}
	if o.statusOut != nil && len(o.statusOut) != len(devices) {
		return nil, statusErrorf(InvalidValue,
			"binary status output has %d entries for %d requested devices", len(o.statusOut), len(devices))
	}
	emptyMode := o.allowEmpty && binaries == nil
	if !emptyMode {
		if binaries == nil {
			return nil, statusErrorf(InvalidValue, "nil binaries")
		}
		if len(binaries) != len(devices) {
			return nil, statusErrorf(InvalidValue,
				"%d binaries given for %d requested devices", len(binaries), len(devices))
		}
		for i, blob := range binaries {
			if len(blob) == 0 {
				return nil, statusErrorf(InvalidValue, "%d-th binary is nil or its length==0", i)
			}
		}
	}

	normalized, err := device.NormalizeList(ctx, devices)
	if err != nil {
		return nil, wrapStatus(InvalidDevice, err, "invalid device list")
	}

	// From here on every acquisition registers its release, so any failure
	// unwinds everything acquired so far, in reverse order. The normalized
	// device list is released exactly once on every aborted path.
	var release releaser
	p := &Program{ctx: ctx, devices: normalized}
	release.add(func() { p.devices = nil })
	p.allocSlots(len(normalized))
	release.add(p.releaseSlots)

	if !emptyMode {
		translator, translatorResolved := o.translator, o.translatorSet
		for i, dev := range p.devices {
			blob := binaries[i]
			tag, kernelMode := binfmt.Classify(dev, blob)
			klog.V(2).Infof("device %q: binary classified as %s", dev, tag)
			switch tag {
			case binfmt.FormatIR:
				err = p.loadIR(i, blob)
				if err == nil && o.statusOut != nil {
					o.statusOut[i] = Success
				}
			case binfmt.FormatPortableIR:
				if !translatorResolved {
					translator = defaultTranslator()
					translatorResolved = true
				}
				err = p.loadPortableIR(i, blob, kernelMode, translator)
			case binfmt.FormatNativeArchive:
				err = p.loadNativeArchive(i, blob)
				if err == nil && o.statusOut != nil {
					o.statusOut[i] = Success
				}
			default:
				klog.Warningf("Could not recognize the binary for device %q", dev)
				if o.statusOut != nil {
					o.statusOut[i] = InvalidBinary
				}
				err = statusErrorf(InvalidBinary, "could not recognize the %d-th binary", i)
			}
			if err != nil {
				release.releaseAll()
				return nil, err
			}
		}
	}

	// The program co-owns the context from here on.
	ctx.Retain()
	p.retained = true
	return p, nil
}

// defaultTranslator returns the llvm-spirv subprocess translator, or nil if
// no translator binary is installed.
func defaultTranslator() spirv.Translator {
	t, err := spirv.NewCommandTranslator()
	if err != nil {
		klog.V(1).Infof("no SPIR-V translator available: %v", err)
		return nil
	}
	return t
}
