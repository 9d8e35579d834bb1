package gluid

// The payload of an ID is carried in two 32-bit lanes. The lower lane
// occupies bytes 0-3 outright. The upper lane has to work around the marker
// nibbles: its bytes 0-1 land in bytes 4-5, its byte 3 in byte 6, and its
// byte 2 gets split across the low nibbles of bytes 7 and 8 - the high
// nibbles of which hold the version and variant markers.
//
// Lanes are little-endian within the ID, matching the field order of the
// in-memory GUID layout the format originated with.

func packLanes(lower, upper uint32) (id ID) {
	id[0] = byte(lower)
	id[1] = byte(lower >> 8)
	id[2] = byte(lower >> 16)
	id[3] = byte(lower >> 24)

	id[4] = byte(upper)
	id[5] = byte(upper >> 8)
	id[6] = byte(upper >> 24)
	id[7] = version<<4 | byte(upper>>16)>>4
	id[8] = variant<<4 | byte(upper>>16)&0x0F

	id[9] = tagByte
	id[10] = tagByte
	id[11] = tagByte

	return id
}

func unpackLanes(id ID) (lower, upper uint32) {
	lower = uint32(id[0])
	lower |= uint32(id[1]) << 8
	lower |= uint32(id[2]) << 16
	lower |= uint32(id[3]) << 24

	upper = uint32(id[4])
	upper |= uint32(id[5]) << 8
	upper |= uint32(id[7]&0x0F)<<20 | uint32(id[8]&0x0F)<<16
	upper |= uint32(id[6]) << 24

	return lower, upper
}
