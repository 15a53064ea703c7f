package fdt

import "errors"

var (
	// ErrInvalidMagic is returned when the header's magic field does not
	// equal 0xd00dfeed.
	ErrInvalidMagic = errors.New("fdt: invalid magic")

	// ErrIncompatibleVersion is returned when the header's last_comp_version
	// does not exactly equal the version the caller asserted support for.
	ErrIncompatibleVersion = errors.New("fdt: incompatible last_comp_version")

	// ErrMalformedStructure is returned when the structure block contains an
	// unrecognized token, or an END token appears before the subtree it is
	// part of has been closed.
	ErrMalformedStructure = errors.New("fdt: malformed structure block")
)
