//go:build windows

package main

import "os"

// mapBlob falls back to a plain read on platforms without a convenient
// mmap wrapper in this module's dependency set.
func mapBlob(file string) ([]byte, func(), error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, nil, err
	}
	return data, func() {}, nil
}
