package fdt

// propertyName resolves a name_off relative to the strings block base into
// the NUL-terminated byte slice it names. The returned slice aliases the
// blob; it is never copied.
func propertyName(stringsBase []byte, nameOff uint32) []byte {
	c := newCursor(stringsBase, int(nameOff))
	return c.cstring()
}
