package device

import (
	"github.com/pkg/errors"
)

// NormalizeList validates the caller-requested device list against the
// context and returns a fresh deduplicated list of physical devices.
//
// The duplicate check runs before sub-device expansion and counts, for each
// context device, how many times it appears in the request. Sub-devices are
// then expanded to their physical parent and resulting duplicates removed,
// so the returned list may be shorter than the request. Every expanded entry
// must belong to the context's device set.
func NormalizeList(ctx *Context, requested []*Device) ([]*Device, error) {
	for _, member := range ctx.devices {
		count := 0
		for _, d := range requested {
			if d == member {
				count++
			}
		}
		if count > 1 {
			return nil, errors.Errorf("device %q specified multiple times", member)
		}
	}

	// Expand sub-devices to their physical parent, removing duplicates and
	// preserving first-seen order.
	unique := make([]*Device, 0, len(requested))
	seen := make(map[*Device]struct{}, len(requested))
	for _, d := range requested {
		if d == nil {
			return nil, errors.Errorf("nil device in the requested device list")
		}
		root := d.Root()
		if _, dup := seen[root]; dup {
			continue
		}
		seen[root] = struct{}{}
		unique = append(unique, root)
	}

	for _, d := range unique {
		if !ctx.Owns(d) {
			return nil, errors.Errorf("device %q not found in the device list of the context", d)
		}
	}
	return unique, nil
}
