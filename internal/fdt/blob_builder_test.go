package fdt

import (
	"bytes"
	"encoding/binary"
)

// This file is a small test-only blob assembler. It exists so
// parse_test.go can express spec §8's scenarios as nested Go values
// instead of hand-maintained byte arrays; the library itself never
// serializes a blob (spec Non-goal: no production FDT encoder). Properties
// are pre-encoded by the uXXProp/strProp helpers below, so the assembler
// itself only ever concatenates already-final byte slices — it carries no
// per-property-kind dispatch and no property ordering logic.

const (
	fixtureHeaderSize = 40
	fixtureVersion    = 17
)

// blobProp is one property, already encoded to its wire bytes.
type blobProp struct {
	name string
	data []byte
}

// blobNode is one node of a synthetic device tree. Properties and children
// are emitted in the order given — there is no sorting step, unlike a
// map-keyed representation.
type blobNode struct {
	name     string
	props    []blobProp
	children []blobNode
}

func node(name string, props []blobProp, children ...blobNode) blobNode {
	return blobNode{name: name, props: props, children: children}
}

// u32Prop encodes a property whose value is a sequence of big-endian
// 32-bit cells (the only multi-cell shape spec §8's scenarios need: reg,
// #address-cells, #size-cells, interrupt specifiers).
func u32Prop(name string, cells ...uint32) blobProp {
	data := make([]byte, len(cells)*4)
	for i, v := range cells {
		binary.BigEndian.PutUint32(data[i*4:], v)
	}
	return blobProp{name: name, data: data}
}

// strProp encodes a single NUL-terminated string property.
func strProp(name, value string) blobProp {
	data := make([]byte, len(value)+1)
	copy(data, value)
	return blobProp{name: name, data: data}
}

// buildBlob serializes root into a well-formed FDT blob with the given
// reserved-memory entries and last_comp_version, for use as test input to
// Parse.
func buildBlob(root blobNode, reserved []ReservedMemoryEntry, lastCompVersion uint32) []byte {
	a := &blobAssembler{stringsOff: make(map[string]uint32)}
	a.emit(root)
	return a.finish(reserved, lastCompVersion)
}

type blobAssembler struct {
	structBuf  bytes.Buffer
	strings    bytes.Buffer
	stringsOff map[string]uint32
}

func (a *blobAssembler) emit(n blobNode) {
	a.token(tokenBeginNode)
	a.structBuf.WriteString(n.name)
	a.structBuf.WriteByte(0)
	a.pad()

	for _, p := range n.props {
		a.token(tokenProp)
		a.word(uint32(len(p.data)))
		a.word(a.stringOffset(p.name))
		a.structBuf.Write(p.data)
		a.pad()
	}

	for _, child := range n.children {
		a.emit(child)
	}

	a.token(tokenEndNode)
}

func (a *blobAssembler) finish(reserved []ReservedMemoryEntry, lastCompVersion uint32) []byte {
	a.token(tokenEnd)
	a.pad()

	structBytes := a.structBuf.Bytes()
	stringsBytes := a.strings.Bytes()

	var rsvmap bytes.Buffer
	for _, e := range reserved {
		var tmp [8]byte
		binary.BigEndian.PutUint64(tmp[:], e.Address)
		rsvmap.Write(tmp[:])
		binary.BigEndian.PutUint64(tmp[:], e.Size)
		rsvmap.Write(tmp[:])
	}
	var sentinel [16]byte
	rsvmap.Write(sentinel[:])

	offMemReserve := fixtureHeaderSize
	offStruct := offMemReserve + rsvmap.Len()
	offStrings := offStruct + len(structBytes)
	totalSize := offStrings + len(stringsBytes)

	blob := make([]byte, totalSize)
	hdr := blob[:fixtureHeaderSize]
	binary.BigEndian.PutUint32(hdr[0:4], magic)
	binary.BigEndian.PutUint32(hdr[4:8], uint32(totalSize))
	binary.BigEndian.PutUint32(hdr[8:12], uint32(offStruct))
	binary.BigEndian.PutUint32(hdr[12:16], uint32(offStrings))
	binary.BigEndian.PutUint32(hdr[16:20], uint32(offMemReserve))
	binary.BigEndian.PutUint32(hdr[20:24], fixtureVersion)
	binary.BigEndian.PutUint32(hdr[24:28], lastCompVersion)
	binary.BigEndian.PutUint32(hdr[28:32], 0)
	binary.BigEndian.PutUint32(hdr[32:36], uint32(len(stringsBytes)))
	binary.BigEndian.PutUint32(hdr[36:40], uint32(len(structBytes)))

	copy(blob[offMemReserve:], rsvmap.Bytes())
	copy(blob[offStruct:], structBytes)
	copy(blob[offStrings:], stringsBytes)

	return blob
}

func (a *blobAssembler) stringOffset(name string) uint32 {
	if off, ok := a.stringsOff[name]; ok {
		return off
	}
	off := uint32(a.strings.Len())
	a.strings.WriteString(name)
	a.strings.WriteByte(0)
	a.stringsOff[name] = off
	return off
}

func (a *blobAssembler) token(t token) {
	a.word(uint32(t))
}

func (a *blobAssembler) word(v uint32) {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], v)
	a.structBuf.Write(tmp[:])
}

func (a *blobAssembler) pad() {
	for a.structBuf.Len()%4 != 0 {
		a.structBuf.WriteByte(0)
	}
}
