// byte/word manipulation for the packed Acorn-128 state.

package acorn128

import (
	"encoding/binary"
)

func maj(x, y, z uint32) uint32 {
	return (x & y) ^ (x & z) ^ (y & z)
}

func ch(x, y, z uint32) uint32 {
	return (x & y) ^ (^x & z)
}

// packLE32 reads 4 bytes and returns a 32-bit chunk whose bit 0 (LSB) is
// the first bit absorbed by the state update and whose bit 31 (MSB) is
// the last, per the update kernel's time-ordering (see state.go): byte
// 0's low bit first, then byte 0's remaining bits up through byte 3's
// high bit last. That is a plain little-endian word read, no bit
// reversal — see DESIGN.md's derivation, checked against spec.md's S1
// vector.
func packLE32(b []byte) uint32 {
	return binary.LittleEndian.Uint32(b)
}

// unpackLE32 is the inverse of packLE32: it writes the 32 keystream or
// ciphertext bits produced in time order (bit 0 first) back out as 4
// little-endian bytes.
func unpackLE32(x uint32, b []byte) {
	binary.LittleEndian.PutUint32(b, x)
}

func packLE8(b byte) uint8 {
	return uint8(b)
}

func unpackLE8(x uint8) byte {
	return byte(x)
}
