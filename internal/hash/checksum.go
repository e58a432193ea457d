// Package hash provides the xxHash64 digest used to guard snapshot payload
// integrity.
package hash

import "github.com/cespare/xxhash/v2"

// Checksum computes the xxHash64 digest of data.
func Checksum(data []byte) uint64 {
	return xxhash.Sum64(data)
}
