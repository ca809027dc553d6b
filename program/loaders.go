package program

import (
	"bytes"

	"github.com/dustin/go-humanize"
	"github.com/gomlx/exceptions"
	"k8s.io/klog/v2"

	"github.com/portcl/portcl/archive"
	"github.com/portcl/portcl/cache"
	"github.com/portcl/portcl/spirv"
)

// loadIR copies an intermediate-representation blob verbatim into device
// slot i. The blob is trusted to be well-formed bitcode here: malformedness
// surfaces later, when the toolchain processes it.
func (p *Program) loadIR(i int, blob []byte) error {
	p.binaries[i] = bytes.Clone(blob)
	klog.V(2).Infof("device %q: stored %s of intermediate representation",
		p.devices[i], humanize.IBytes(uint64(len(blob))))
	return nil
}

// loadPortableIR converts a SPIR-V blob into intermediate representation
// for device slot i, through the external translator.
func (p *Program) loadPortableIR(i int, blob []byte, kernelMode bool, translator spirv.Translator) error {
	dev := p.devices[i]
	if !kernelMode {
		return statusErrorf(BuildProgramFailure,
			"SPIR-V binary provided for device %q, but it is not using kernel mode", dev)
	}
	if !dev.HasExtension(spirv.RequiredExtension) {
		return statusErrorf(BuildProgramFailure,
			"SPIR binary provided, but device %q has no SPIR support", dev)
	}
	if translator == nil {
		return statusErrorf(BuildProgramFailure,
			"SPIR-V binary provided, but this runtime has no SPIR-V support: "+
				"it requires the %s converter binary", spirv.TranslatorBinary)
	}

	inputPath, err := cache.WriteTempBlob(blob)
	if err != nil {
		return wrapStatus(BuildProgramFailure, err, "could not stage the SPIR-V binary for translation")
	}
	outputPath, err := cache.TempName(".bc")
	if err != nil {
		return wrapStatus(BuildProgramFailure, err, "could not allocate a translator output path")
	}
	klog.V(1).Infof("SPIR-V binary detected for device %q, translating to intermediate representation", dev)
	if err = translator.Translate(outputPath, inputPath); err != nil {
		// A translator that exits non-zero on a valid kernel-mode module is a
		// broken toolchain install, not bad caller input.
		exceptions.Panicf("SPIR-V translator failed for device %q: %+v", dev, err)
	}
	content, err := cache.ReadFile(outputPath)
	if err != nil {
		return wrapStatus(BuildProgramFailure, err, "could not read the translated intermediate representation")
	}
	p.binaries[i] = content
	cache.Remove(outputPath)
	// The staged input file is left under the cache for later reuse.
	return nil
}

// loadNativeArchive restores device slot i from a native archive: stores the
// archive verbatim, computes the build-identity hash, materializes the
// program cache directory and unpacks the archive into it, then recovers any
// cached intermediate representation found there.
func (p *Program) loadNativeArchive(i int, blob []byte) error {
	dev := p.devices[i]
	p.nativeBinaries[i] = bytes.Clone(blob)
	p.buildHashes[i] = archive.BuildHash(blob)

	dir, err := cache.CreateProgramDir(p.buildHashes[i], dev)
	if err != nil {
		return wrapStatus(BuildProgramFailure, err, "could not create the program cache directory")
	}
	if err = archive.Deserialize(blob, dir); err != nil {
		return wrapStatus(InvalidBinary, err, "could not unpack a native binary for device %q", dev)
	}

	// Best-effort recovery of previously cached IR; its absence only means
	// no cached IR is available yet.
	if irPath := cache.ProgramIRPath(dir); cache.Exists(irPath) {
		content, err := cache.ReadFile(irPath)
		if err != nil {
			klog.Warningf("Failed to read cached intermediate representation %q: %+v", irPath, err)
		} else {
			p.binaries[i] = content
			klog.V(1).Infof("device %q: recovered %s of cached intermediate representation",
				dev, humanize.IBytes(uint64(len(content))))
		}
	}
	return nil
}
