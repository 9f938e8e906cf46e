package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of a token value.
func ID(value string) uint64 {
	return xxhash.Sum64String(value)
}

// IDBytes computes the xxHash64 of a token value held in a byte slice.
func IDBytes(value []byte) uint64 {
	return xxhash.Sum64(value)
}

// Checksum folds the xxHash64 of data into 32 bits.
func Checksum(data []byte) uint32 {
	sum := xxhash.Sum64(data)

	return uint32(sum>>32) ^ uint32(sum) //nolint:gosec
}
