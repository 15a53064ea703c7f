package fdt

import "encoding/binary"

const (
	defaultAddressCells = 2
	defaultSizeCells    = 1
)

// Sink is invoked once for each property whose canonical path matches a
// configured PathSpec. value aliases the blob the parse call was given; it
// must not be retained or mutated past the sink call returning.
type Sink func(canonicalPath, propertyName string, value []byte, addressCells, sizeCells uint32)

// PathSpec names one slash-delimited property path of interest and the sink
// to invoke when the walker reaches it. Paths have no leading or trailing
// slash and no unit-address suffix on any segment, per spec.
type PathSpec struct {
	path []byte
	sink Sink
}

// NewPathSpec builds a PathSpec from a path string and its delivery sink.
func NewPathSpec(path string, sink Sink) PathSpec {
	return PathSpec{path: []byte(path), sink: sink}
}

// walker holds the cursor and strings block shared by the mutually
// recursive walk/walkUninteresting procedures, plus the inherited
// #address-cells/#size-cells context carried on the Go call stack.
type walker struct {
	c            *cursor
	strings      []byte
	paths        []PathSpec
	addressCells uint32
	sizeCells    uint32
}

// walkUninteresting is entered immediately after a BEGIN_NODE's name has
// been consumed for a subtree no configured path reaches into. It consumes
// tokens until the matching END_NODE, recursing into nested BEGIN_NODEs and
// skipping PROP payloads, without ever invoking a sink or tracking cell
// context (spec.md §4.5).
func (w *walker) walkUninteresting() error {
	for {
		tok, err := nextToken(w.c)
		if err != nil {
			return err
		}
		switch tok {
		case tokenBeginNode:
			skipNodeName(w.c)
			if err := w.walkUninteresting(); err != nil {
				return err
			}
		case tokenProp:
			ph := readPropHeader(w.c)
			skipPropPayload(w.c, ph.length)
		case tokenNop:
			// ignored
		case tokenEndNode:
			return nil
		case tokenEnd:
			// Unreachable in a well-formed blob: END only closes the whole
			// structure block, never a subtree.
			return ErrMalformedStructure
		}
	}
}

// walk is entered immediately after the enclosing BEGIN_NODE's name has
// been consumed (or, at the root, after the empty root name). parentPath is
// the canonical path prefix the walker is currently inside, already
// terminated by '/' when non-empty (spec.md §4.5).
func (w *walker) walk(parentPath []byte) error {
	for {
		tok, err := nextToken(w.c)
		if err != nil {
			return err
		}
		switch tok {
		case tokenBeginNode:
			rawName := readNodeName(w.c)
			name := stripUnitAddress(rawName)

			_, m := findContinuation(w.paths, parentPath, name)
			switch m.kind {
			case nodeMatch:
				savedAddr, savedSize := w.addressCells, w.sizeCells
				if err := w.walk(m.path); err != nil {
					return err
				}
				w.addressCells, w.sizeCells = savedAddr, savedSize
			default:
				if err := w.walkUninteresting(); err != nil {
					return err
				}
			}

		case tokenProp:
			ph := readPropHeader(w.c)
			value := w.c.span(int(ph.length))
			skipPropPayload(w.c, ph.length)
			name := propertyName(w.strings, ph.nameOff)

			switch string(name) {
			case "#address-cells":
				w.addressCells = binary.BigEndian.Uint32(value[0:4])
			case "#size-cells":
				w.sizeCells = binary.BigEndian.Uint32(value[0:4])
			}

			if i, m := findContinuation(w.paths, parentPath, name); m.kind == propMatch {
				w.paths[i].sink(string(m.path), string(name), value, w.addressCells, w.sizeCells)
			}

		case tokenNop:
			// ignored

		case tokenEndNode:
			return nil

		case tokenEnd:
			// END closes the whole structure block; inside a non-root node
			// it means the enclosing subtree was never closed.
			if len(parentPath) != 0 {
				return ErrMalformedStructure
			}
			return nil
		}
	}
}
