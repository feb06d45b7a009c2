package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of a block name; block sets index blocks by this value.
func ID(name string) uint64 {
	return xxhash.Sum64String(name)
}

// Checksum computes the xxHash64 of a stored block payload.
func Checksum(payload []byte) uint64 {
	return xxhash.Sum64(payload)
}
