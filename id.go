package gluid

import (
	"bytes"
	"database/sql/driver"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
)

// ID is the binary representation of an identifier. It shares the 16-byte
// layout of a UUID and round-trips through any store or wire format that
// accepts one.
type ID [Size]byte

// IsGluid checks whether the ID carries the codec's version/variant markers.
//
// The check reads the raw bytes and is independent of any namespace: masking
// never disturbs the marker nibbles, so it holds for IDs encoded under any
// Namespace. A true result alone does not prove the ID decodes under a
// *given* namespace - that is IsLinked.
func (id ID) IsGluid() bool {
	return id[7]>>4 == version && id[8]>>4 == variant
}

// IsLinked checks whether the ID was encoded under the given Namespace.
//
// The marker check runs first, on the raw bytes; only then is the ID
// unmasked and its tag verified. An ID encoded under a different namespace
// and a random non-Gluid value are indistinguishable through this method.
func (id ID) IsLinked(ns Namespace) bool {
	if !id.IsGluid() {
		return false
	}

	p := ns.apply(id)

	return p[9] == tagByte && p[10] == tagByte && p[11] == tagByte
}

// Int32 recovers the int32 payload encoded with FromInt32, or the first
// value of a pair encoded with FromInt32Pair. The second return is false if
// the ID is not linked to the given Namespace.
func (id ID) Int32(ns Namespace) (int32, bool) {
	if !id.IsLinked(ns) {
		return 0, false
	}

	lower, _ := unpackLanes(ns.apply(id))

	return int32(lower), true
}

// SecondInt32 recovers the second value of a pair encoded with
// FromInt32Pair. The second return is false if the ID is not linked to the
// given Namespace.
func (id ID) SecondInt32(ns Namespace) (int32, bool) {
	if !id.IsLinked(ns) {
		return 0, false
	}

	_, upper := unpackLanes(ns.apply(id))

	return int32(upper), true
}

// Int64 recovers the int64 payload encoded with FromInt64. The second
// return is false if the ID is not linked to the given Namespace.
func (id ID) Int64(ns Namespace) (int64, bool) {
	if !id.IsLinked(ns) {
		return 0, false
	}

	lower, upper := unpackLanes(ns.apply(id))

	return int64(uint64(lower) | uint64(upper)<<32), true
}

// UUID returns the ID reinterpreted as a github.com/google/uuid UUID.
func (id ID) UUID() uuid.UUID {
	return uuid.UUID(id)
}

// IsZero checks whether the ID is a zero value.
func (id ID) IsZero() bool {
	return id == zero
}

// Bytes returns the ID as a byte slice. The slice is a copy and does not
// alias the ID.
func (id ID) Bytes() []byte {
	return append(make([]byte, 0, Size), id[:]...)
}

// Compare returns -1, 0 or 1 depending on whether the ID sorts below, equal
// to or above the other, comparing bytewise.
func (id ID) Compare(other ID) int {
	return bytes.Compare(id[:], other[:])
}

// String returns the canonical 8-4-4-4-12 textual representation of the ID.
// It implements the std fmt Stringer interface.
func (id ID) String() string {
	return uuid.UUID(id).String()
}

// MarshalText returns the canonical textual representation of the ID as a
// byte slice.
// It implements the std encoding TextMarshaler interface.
func (id ID) MarshalText() ([]byte, error) {
	b := uuid.UUID(id).String()

	return []byte(b), nil
}

// UnmarshalText decodes the canonical textual representation of an ID
// contained in the given byte slice into the receiver.
// It implements the std encoding TextUnmarshaler interface.
func (id *ID) UnmarshalText(src []byte) error {
	if len(src) != SizeEncoded {
		return errInvalidDataSize
	}

	u, err := uuid.ParseBytes(src)
	if err != nil {
		return err
	}

	*id = ID(u)

	return nil
}

// MarshalBinary returns the raw 16 bytes of the ID.
// It implements the std encoding BinaryMarshaler interface.
func (id ID) MarshalBinary() ([]byte, error) {
	return id.Bytes(), nil
}

// UnmarshalBinary copies the given 16-byte slice into the receiver.
//
// Returns an InvalidDataSizeError if the slice does not have a length of 16.
// It implements the std encoding BinaryUnmarshaler interface.
func (id *ID) UnmarshalBinary(src []byte) error {
	if len(src) != Size {
		return errInvalidDataSize
	}

	copy(id[:], src)

	return nil
}

// MarshalJSON returns the canonical textual representation of the ID, quoted,
// as a byte slice. If the ID is a zero value, MarshalJSON will return a byte
// slice of 'null' (unquoted) instead.
// It implements the std encoding/json Marshaler interface.
//
// Note that IDs are byte arrays and Go's std (un)marshaler is unable to
// distinguish the zero values of custom structs as "empty", so the
// 'omitempty' flag has the same caveats as, for example, time.Time.
func (id ID) MarshalJSON() ([]byte, error) {
	if id == zero {
		return []byte("null"), nil
	}

	dst := make([]byte, 0, SizeEncoded+2)
	dst = append(dst, '"')
	dst = append(dst, uuid.UUID(id).String()...)
	dst = append(dst, '"')

	return dst, nil
}

// UnmarshalJSON decodes a canonically formatted and quoted representation of
// an ID in the given byte slice into the receiver. If the byte slice contains
// an unquoted 'null', the receiving ID will instead be set to the zero value
// of an ID.
// It implements the std encoding/json Unmarshaler interface.
func (id *ID) UnmarshalJSON(src []byte) error {
	n := len(src)
	if n != SizeEncoded+2 && n != 4 {
		return errInvalidDataSize
	}

	_ = src[3] // BCE hint.
	if src[0] == 'n' && src[1] == 'u' && src[2] == 'l' && src[3] == 'l' {
		*id = zero
		return nil
	}

	return id.UnmarshalText(src[1 : n-1])
}

// Value returns the raw 16 bytes of the ID.
// It implements the std database/sql/driver Valuer interface.
func (id ID) Value() (driver.Value, error) {
	return id.Bytes(), nil
}

// Scan reads an ID from one of the representations drivers commonly hand
// back: a 16-byte binary slice, canonical text (as string or bytes), an
// empty slice or string, or nil - the latter three scanning as a zero ID.
// It implements the std database/sql Scanner interface.
func (id *ID) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*id = zero
		return nil

	case []byte:
		switch len(v) {
		case 0:
			*id = zero
			return nil
		case Size:
			return id.UnmarshalBinary(v)
		case SizeEncoded:
			return id.UnmarshalText(v)
		}

		return errInvalidDataSize

	case string:
		if v == "" {
			*id = zero
			return nil
		}

		return id.UnmarshalText([]byte(v))
	}

	return &InvalidTypeError{Value: src}
}

// EncodeMsgpack writes the ID as its raw 16 bytes.
// It implements the msgpack CustomEncoder interface.
func (id *ID) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeBytes(id[:])
}

// DecodeMsgpack reads an ID previously written as raw bytes.
// It implements the msgpack CustomDecoder interface.
func (id *ID) DecodeMsgpack(dec *msgpack.Decoder) error {
	b, err := dec.DecodeBytes()
	if err != nil {
		return err
	}

	return id.UnmarshalBinary(b)
}
