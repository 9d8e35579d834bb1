package gluid

import "golang.org/x/crypto/sha3"

// entropyWindow is the number of digest bytes drawn from the tail of the
// namespace hash to key the mask. 15 bytes expand into all 16 mask bytes
// once split around the marker nibbles.
const entropyWindow = 15

// A Namespace binds IDs to a keying domain derived from a string.
//
// Its zero value, None, is the "no namespace" identity and leaves IDs
// untouched. NewNamespace("") is a distinct, non-trivial identity - an ID
// encoded under one will not decode under the other.
//
// A Namespace is an immutable value. Deriving one hashes the string once;
// reuse the value across calls rather than re-deriving per operation.
// Namespaces are safe for concurrent use by multiple goroutines.
type Namespace struct {
	mask [Size]byte
}

// None is the "no namespace" identity. It applies an all-zero mask.
var None Namespace

// NewNamespace derives the Namespace keyed by the given string.
//
// The mask is built from the final 15 bytes of the SHA3-512 digest of the
// string, laid out with the same nibble split as the upper payload lane.
// That layout keeps the mask's bits clear at the marker nibble positions,
// so masking never disturbs the version/variant markers and IsGluid holds
// on masked and unmasked IDs alike.
func NewNamespace(s string) Namespace {
	sum := sha3.Sum512([]byte(s))
	e := sum[len(sum)-entropyWindow:]

	var ns Namespace
	copy(ns.mask[0:7], e[0:7])
	ns.mask[7] = e[7] & 0x0F
	ns.mask[8] = e[7] >> 4
	copy(ns.mask[9:], e[8:])

	return ns
}

// apply XORs the namespace mask over every byte of the ID. XOR is its own
// inverse, so the same call both masks and unmasks.
func (ns Namespace) apply(id ID) ID {
	for i := 0; i < Size; i++ {
		id[i] ^= ns.mask[i]
	}

	return id
}
