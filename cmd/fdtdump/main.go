// Command fdtdump loads a flattened device tree blob and prints the
// properties it was asked about, plus the blob's reserved-memory map.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/tinyrange/ccfdt/internal/fdt"
	"gopkg.in/yaml.v3"
)

// exitError carries a process exit code out of run, the way
// cmd/cc/main.go checks errors.As against initx.ExitError.
type exitError struct{ code int }

func (e *exitError) Error() string { return fmt.Sprintf("fdtdump exited with code %d", e.code) }

type pathFlags []string

func (p *pathFlags) String() string { return fmt.Sprint([]string(*p)) }

func (p *pathFlags) Set(v string) error {
	*p = append(*p, v)
	return nil
}

type propertyResult struct {
	Path         string `yaml:"path"`
	Name         string `yaml:"name"`
	Length       int    `yaml:"length"`
	AddressCells uint32 `yaml:"addressCells"`
	SizeCells    uint32 `yaml:"sizeCells"`
}

type dumpResult struct {
	ReservedMemory []reservedEntry  `yaml:"reservedMemory"`
	Properties     []propertyResult `yaml:"properties"`
}

type reservedEntry struct {
	Address uint64 `yaml:"address"`
	Size    uint64 `yaml:"size"`
}

func main() {
	if err := run(); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			os.Exit(ee.code)
		}
		fmt.Fprintf(os.Stderr, "fdtdump: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var paths pathFlags
	lastCompVersion := flag.Uint("last-comp-version", 16, "required last_comp_version in the blob header")
	flag.Var(&paths, "path", "a slash-delimited property path to report (repeatable); omit to report only reserved memory")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `fdtdump - inspect a flattened device tree (DTB) blob

USAGE:
  fdtdump [flags] <file.dtb>

FLAGS:
`)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		return &exitError{code: 2}
	}
	file := flag.Arg(0)

	blob, closeBlob, err := mapBlob(file)
	if err != nil {
		return fmt.Errorf("fdtdump: map %s: %w", file, err)
	}
	defer closeBlob()

	slog.Default().Info("parsing device tree", "file", file, "bytes", len(blob))

	result := dumpResult{}
	var specs []fdt.PathSpec
	for _, p := range paths {
		p := p
		specs = append(specs, fdt.NewPathSpec(p, func(path, name string, value []byte, addrCells, sizeCells uint32) {
			result.Properties = append(result.Properties, propertyResult{
				Path:         path,
				Name:         name,
				Length:       len(value),
				AddressCells: addrCells,
				SizeCells:    sizeCells,
			})
		}))
	}

	reserved, err := fdt.Parse(blob, uint32(*lastCompVersion), specs)
	if err != nil {
		return fmt.Errorf("fdtdump: parse %s: %w", file, err)
	}
	for _, r := range reserved {
		result.ReservedMemory = append(result.ReservedMemory, reservedEntry{Address: r.Address, Size: r.Size})
	}

	sort.Slice(result.Properties, func(i, j int) bool {
		return result.Properties[i].Path < result.Properties[j].Path
	})

	enc := yaml.NewEncoder(os.Stdout)
	defer enc.Close()
	return enc.Encode(result)
}
