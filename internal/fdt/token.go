package fdt

// token identifies a structure-block record kind.
type token uint32

const (
	tokenBeginNode token = 1
	tokenEndNode   token = 2
	tokenProp      token = 3
	tokenNop       token = 4
	tokenEnd       token = 9
)

// propHeader is the fixed-size record immediately following a PROP token.
type propHeader struct {
	length  uint32
	nameOff uint32
}

// nextToken aligns the cursor, reads the next 32-bit token word, and
// advances past it. It returns ErrMalformedStructure for any value outside
// the known token set.
func nextToken(c *cursor) (token, error) {
	c.align()
	v := token(c.u32())
	switch v {
	case tokenBeginNode, tokenEndNode, tokenProp, tokenNop, tokenEnd:
		return v, nil
	default:
		return 0, ErrMalformedStructure
	}
}

// readPropHeader reads the PropertyHeader immediately following a PROP
// token. The cursor must be positioned right after the token word.
func readPropHeader(c *cursor) propHeader {
	return propHeader{length: c.u32(), nameOff: c.u32()}
}

// skipNodeName advances the cursor past a BEGIN_NODE's NUL-terminated name
// and re-aligns to the next 4-byte boundary, without borrowing the name.
func skipNodeName(c *cursor) {
	c.cstring()
	c.align()
}

// readNodeName borrows a BEGIN_NODE's NUL-terminated name and re-aligns the
// cursor to the next 4-byte boundary.
func readNodeName(c *cursor) []byte {
	name := c.cstring()
	c.align()
	return name
}

// skipPropPayload advances the cursor past a property's value bytes and
// re-aligns to the next 4-byte boundary, without borrowing the value.
func skipPropPayload(c *cursor, length uint32) {
	c.advance(int(length))
	c.align()
}
