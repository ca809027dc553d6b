// portcl_inspect reports what the runtime's binary ingestion would make of a
// program binary file: its recognized format, size, kernel-mode flag and,
// for native archives, the bundled entries and build-identity hash.
//
// It can also pack a directory of compiled artifacts into a native archive
// ("-pack"), the counterpart operation used to produce such files.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"

	"github.com/portcl/portcl/archive"
	"github.com/portcl/portcl/binfmt"
	"github.com/portcl/portcl/device"
	"github.com/portcl/portcl/spirv"
)

var (
	flagDevice = flag.String("device", "cpu", "Device name the binary targets. Native archives are "+
		"signed per device, so inspection of an archive requires the matching name.")
	flagVendor = flag.String("vendor", "portcl", "Device vendor used together with -device.")
	flagPack   = flag.String("pack", "", "Directory to pack into a native archive for -device, "+
		"instead of inspecting. Writes the archive to -out.")
	flagOut = flag.String("out", "program.bin", "Output path for -pack.")
)

var (
	headerRowStyle = lipgloss.NewStyle().Reverse(true).
			Padding(0, 2, 0, 2).Align(lipgloss.Center)
	oddRowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFF")).
			PaddingLeft(1).PaddingRight(1)
	evenRowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#999")).
			PaddingLeft(1).PaddingRight(1)
	titleStyle = lipgloss.NewStyle().Bold(true).Padding(1, 4, 1, 4)
)

func newPlainTable(withHeader bool) *lgtable.Table {
	return lgtable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("99"))).
		StyleFunc(func(row, col int) (s lipgloss.Style) {
			if withHeader && row == 1 {
				return headerRowStyle
			}
			if row%2 == 0 {
				s = oddRowStyle
			} else {
				s = evenRowStyle
			}
			if col == 0 {
				s = s.Align(lipgloss.Right)
			} else {
				s = s.Align(lipgloss.Left)
			}
			return
		})
}

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	dev := device.New(*flagDevice, *flagVendor, spirv.RequiredExtension)
	if *flagPack != "" {
		pack(dev, *flagPack, *flagOut)
		return
	}

	args := flag.Args()
	if len(args) != 1 {
		klog.Errorf("Expected exactly one binary file to inspect. See 'portcl_inspect -help'.")
		os.Exit(1)
	}
	inspect(dev, args[0])
}

func inspect(dev *device.Device, path string) {
	blob := must.M1(os.ReadFile(path))
	tag, kernelMode := binfmt.Classify(dev, blob)

	fmt.Println(titleStyle.Render("Binary"))
	table := newPlainTable(false)
	table.Row("file", path)
	table.Row("size", humanize.IBytes(uint64(len(blob))))
	table.Row("format", tag.String())
	if tag == binfmt.FormatPortableIR {
		table.Row("kernel mode", fmt.Sprintf("%v", kernelMode))
		table.Row("translator installed", fmt.Sprintf("%v", spirv.Available()))
	}
	fmt.Println(table.Render())

	if tag != binfmt.FormatNativeArchive {
		return
	}
	entries := must.M1(archive.Unpack(blob))
	fmt.Println(titleStyle.Render("Archive"))
	archTable := newPlainTable(true)
	archTable.Row("Entry", "Bytes")
	for _, entry := range entries {
		archTable.Row(entry.Path, humanize.IBytes(uint64(len(entry.Data))))
	}
	fmt.Println(archTable.Render())
	fmt.Printf("build hash: %s\n", archive.BuildHash(blob))
}

func pack(dev *device.Device, dir, outPath string) {
	var entries []archive.Entry
	must.M(filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel := must.M1(filepath.Rel(dir, path))
		entries = append(entries, archive.Entry{
			Path: filepath.ToSlash(rel),
			Data: must.M1(os.ReadFile(path)),
		})
		return nil
	}))
	blob := must.M1(archive.Pack(dev, entries))
	must.M(os.WriteFile(outPath, blob, 0666))

	var names []string
	for _, entry := range entries {
		names = append(names, entry.Path)
	}
	fmt.Printf("packed %d entries (%s) for device %q into %q: %s\n",
		len(entries), humanize.IBytes(uint64(len(blob))), dev, outPath, strings.Join(names, ", "))
}
