package fdt

import "encoding/binary"

// magic is the fixed FDT header signature (big-endian 0xd00dfeed).
const magic = 0xd00dfeed

const headerSize = 40

// header is the fixed 40-byte big-endian record at the blob's base.
type header struct {
	magic           uint32
	totalSize       uint32
	offDtStruct     uint32
	offDtStrings    uint32
	offMemRsvmap    uint32
	version         uint32
	lastCompVersion uint32
	bootCpuidPhys   uint32
	sizeDtStrings   uint32
	sizeDtStruct    uint32
}

// parseHeader decodes and validates the FDT header at the start of blob.
// requiredLastCompVersion is the caller's asserted compatibility floor; the
// header's last_comp_version must equal it exactly (see spec §9 Open
// Questions — this module preserves strict-equality semantics).
func parseHeader(blob []byte, requiredLastCompVersion uint32) (header, error) {
	be := binary.BigEndian
	h := header{
		magic:           be.Uint32(blob[0:4]),
		totalSize:       be.Uint32(blob[4:8]),
		offDtStruct:     be.Uint32(blob[8:12]),
		offDtStrings:    be.Uint32(blob[12:16]),
		offMemRsvmap:    be.Uint32(blob[16:20]),
		version:         be.Uint32(blob[20:24]),
		lastCompVersion: be.Uint32(blob[24:28]),
		bootCpuidPhys:   be.Uint32(blob[28:32]),
		sizeDtStrings:   be.Uint32(blob[32:36]),
		sizeDtStruct:    be.Uint32(blob[36:40]),
	}

	if h.magic != magic {
		return header{}, ErrInvalidMagic
	}
	if h.lastCompVersion != requiredLastCompVersion {
		return header{}, ErrIncompatibleVersion
	}
	return h, nil
}

// ReservedMemoryEntry describes one region of physical memory the firmware
// has reserved; the OS must not place anything there.
type ReservedMemoryEntry struct {
	Address uint64
	Size    uint64
}

// extractReserved decodes the reserved-memory table starting at
// blob[rsvmapOff:], stopping before the (0,0) sentinel entry. The returned
// slice never includes the sentinel and is empty if the table's first entry
// is the sentinel.
func extractReserved(blob []byte, rsvmapOff uint32) []ReservedMemoryEntry {
	be := binary.BigEndian
	var entries []ReservedMemoryEntry
	off := int(rsvmapOff)
	for {
		addr := be.Uint64(blob[off : off+8])
		size := be.Uint64(blob[off+8 : off+16])
		off += 16
		if addr == 0 && size == 0 {
			return entries
		}
		entries = append(entries, ReservedMemoryEntry{Address: addr, Size: size})
	}
}
