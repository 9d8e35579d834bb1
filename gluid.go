// Package gluid provides a reversible codec between small integers and 128-bit
// identifiers laid out like UUIDs.
//
// An ID produced by this package carries one int32, a pair of int32s or one
// int64, recoverable exactly, while remaining storable, comparable and
// printable anywhere a UUID is accepted. A Namespace can be mixed into an ID
// so that the same payload yields different identifiers per namespace and
// decoding under the wrong namespace reports no value instead of a wrong one.
//
// The codec reserves a version/variant marker pair outside the ranges used by
// standardized UUID generation schemes, so IDs never collide with conforming
// v1-v8 UUIDs and random UUIDs are rejected by IsGluid with negligible error.
package gluid

import "github.com/google/uuid"

const (
	// Size is the binary size of an ID, in bytes.
	Size = 16

	// SizeEncoded is the length of the canonical 8-4-4-4-12 text form.
	SizeEncoded = 36
)

const (
	// version occupies the high nibble of byte 7. The value sits outside the
	// range assigned by RFC 4122 semantics once combined with the variant
	// below, flagging the ID as codec-produced.
	version = 0x1

	// variant occupies the high nibble of byte 8 and falls into the reserved
	// region no standardized UUID scheme emits.
	variant = 0xE

	// tagByte fills bytes 9-11 of a plain ID. After unmasking, all three
	// bytes reading tagByte confirms the namespace was the one used to
	// encode.
	tagByte = 0xCC
)

var zero ID

// FromInt32 encodes a single int32 into an ID bound to the given Namespace.
// The upper lane is left zero. Use None to encode without a namespace.
func FromInt32(v int32, ns Namespace) ID {
	return ns.apply(packLanes(uint32(v), 0))
}

// FromInt32Pair encodes two independent int32 values into an ID bound to the
// given Namespace. The first value is recovered with Int32, the second with
// SecondInt32.
func FromInt32Pair(v1, v2 int32, ns Namespace) ID {
	return ns.apply(packLanes(uint32(v1), uint32(v2)))
}

// FromInt64 encodes a single int64 into an ID bound to the given Namespace.
func FromInt64(v int64, ns Namespace) ID {
	return ns.apply(packLanes(uint32(v), uint32(uint64(v)>>32)))
}

// FromUUID reinterprets a UUID as an ID. No validation is performed - use
// IsGluid or IsLinked on the result.
func FromUUID(u uuid.UUID) ID {
	return ID(u)
}

// FromBytes copies a 16-byte binary representation into an ID.
//
// Returns an InvalidDataSizeError if the slice does not have a length of 16.
func FromBytes(src []byte) (id ID, err error) {
	return id, id.UnmarshalBinary(src)
}

// Parse decodes the canonical textual representation of an ID, as produced by
// String or by any conforming UUID implementation.
func Parse(src string) (ID, error) {
	u, err := uuid.Parse(src)
	if err != nil {
		return zero, err
	}

	return ID(u), nil
}

// Zero returns the zero value of an ID, which is 16 zero bytes and equivalent to:
//
//	id := gluid.ID{}
func Zero() ID {
	return zero
}
