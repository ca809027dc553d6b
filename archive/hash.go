package archive

import (
	"crypto/sha1"
	"encoding/hex"
)

// Hash is the build-identity of a program binary for one device: a
// content-derived digest used to key cache-directory lookups. The same
// archive bytes always produce the same Hash.
type Hash [sha1.Size]byte

// BuildHash computes the build-identity hash of an archive's content.
func BuildHash(blob []byte) Hash {
	return sha1.Sum(blob)
}

// String returns the hexadecimal form of the hash, used as a cache
// directory name.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// IsZero reports whether the hash is unset.
func (h Hash) IsZero() bool {
	return h == Hash{}
}
