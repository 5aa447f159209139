package hash

import "github.com/cespare/xxhash/v2"

// Bytes computes the xxHash64 of the given byte slice. It backs
// Container.ContentHash, which hashes a serialized container.
func Bytes(data []byte) uint64 {
	return xxhash.Sum64(data)
}
