package fdt

import "bytes"

// matchKind identifies what, if anything, a name continued a configured
// path of interest with.
type matchKind int

const (
	noMatch matchKind = iota
	nodeMatch
	propMatch
)

// match is the result of continuation: whether name (as seen under
// parentPath) continues candidate toward a configured path of interest, and
// if so the new parent path (nodeMatch) or the full matched path (propMatch).
type match struct {
	kind matchKind
	path []byte
}

// continuation decides whether candidate (a configured path of interest) is
// continued by name under parentPath. See spec.md §4.4 for the numbered
// rule set this implements verbatim.
func continuation(parentPath, candidate, name []byte) match {
	if len(parentPath)+len(name) > len(candidate) {
		return match{kind: noMatch}
	}
	if !bytes.Equal(candidate[:len(parentPath)], parentPath) {
		return match{kind: noMatch}
	}
	rest := candidate[len(parentPath):]
	if !bytes.Equal(rest[:len(name)], name) {
		return match{kind: noMatch}
	}
	if len(parentPath)+len(name) < len(candidate) {
		cut := len(parentPath) + len(name) + 1 // include the trailing '/'
		if candidate[cut-1] != '/' {
			return match{kind: noMatch}
		}
		return match{kind: nodeMatch, path: candidate[:cut]}
	}
	return match{kind: propMatch, path: candidate}
}

// stripUnitAddress returns the substring of name preceding the first '@'
// byte, or name unchanged if it contains none.
func stripUnitAddress(name []byte) []byte {
	if i := bytes.IndexByte(name, '@'); i >= 0 {
		return name[:i]
	}
	return name
}

// findContinuation searches paths in declaration order for the first one
// continued by name under parentPath, per the tie-break rule in spec.md
// §4.4: at most one configured path is expected to match a given
// (parentPath, name) pair, and the first match found wins.
func findContinuation(paths []PathSpec, parentPath, name []byte) (int, match) {
	for i, p := range paths {
		m := continuation(parentPath, p.path, name)
		if m.kind != noMatch {
			return i, m
		}
	}
	return -1, match{kind: noMatch}
}
