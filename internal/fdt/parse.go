// Package fdt parses a Flattened Device Tree (FDT / DTB) blob — the
// firmware-to-kernel hardware description handed off on ARM, RISC-V, and
// PowerPC boot paths. It walks the blob's structure block once, delivering
// the properties named by a caller-supplied, statically known set of paths
// to caller-supplied sinks, and returns the reserved-memory map from the
// blob's header region.
//
// Every property value it hands a sink is a subslice of the blob the caller
// passed in, never a copy. The package does allocate in a few places: the
// canonical path and property name passed to a sink are Go strings copied
// from the blob, and the reserved-memory entries are returned in a newly
// allocated slice.
package fdt

// Parse validates an FDT blob's header, extracts its reserved-memory
// sequence, and walks its structure block once, delivering every property
// matching one of paths to that PathSpec's sink.
//
// requiredLastCompVersion is the caller's required last_comp_version value;
// the blob's header must equal it exactly (see spec.md §9's first Open
// Question — equality, not a floor comparison, is preserved deliberately).
// paths may be empty: the header is still validated and reserved memory is
// still returned.
func Parse(blob []byte, requiredLastCompVersion uint32, paths []PathSpec) ([]ReservedMemoryEntry, error) {
	if len(blob) < headerSize {
		return nil, ErrInvalidMagic
	}

	hdr, err := parseHeader(blob, requiredLastCompVersion)
	if err != nil {
		return nil, err
	}

	reserved := extractReserved(blob, hdr.offMemRsvmap)

	c := newCursor(blob, int(hdr.offDtStruct))
	tok, err := nextToken(c)
	if err != nil {
		return nil, err
	}
	if tok != tokenBeginNode {
		return nil, ErrMalformedStructure
	}
	skipNodeName(c) // root node name is always empty

	w := &walker{
		c:            c,
		strings:      blob[hdr.offDtStrings:],
		paths:        paths,
		addressCells: defaultAddressCells,
		sizeCells:    defaultSizeCells,
	}
	if err := w.walk(nil); err != nil {
		return nil, err
	}

	return reserved, nil
}
