package acorn128

import (
	"crypto/subtle"
	"fmt"
)

const (
	// KeySize is the size, in bytes, of an Acorn-128 key.
	KeySize = 16
	// NonceSize is the size, in bytes, of an Acorn-128 nonce.
	NonceSize = 16
	// TagSize is the size, in bytes, of an Acorn-128 authentication tag.
	TagSize = 16
)

// Encrypt implements the byte-oriented AEAD interface of section 6.1: it
// runs initialize, processAssociatedData, processPlaintext and finalize in
// sequence on a fresh state and returns the ciphertext and the 16-byte
// tag separately (the cipher.AEAD-shaped Seal, by contrast, appends the
// tag to the ciphertext as Go convention expects).
//
// len(plaintext) and len(ad) may be zero. Encrypt never fails on
// well-typed input: it panics if key or nonce are not exactly 16 bytes,
// since that is a caller programming error, not a runtime condition.
func Encrypt(key, nonce, plaintext, ad []byte) (ciphertext, tag []byte) {
	if len(key) != KeySize {
		panic(fmt.Sprintf("acorn128: bad key length %d", len(key)))
	}
	if len(nonce) != NonceSize {
		panic(fmt.Sprintf("acorn128: bad nonce length %d", len(nonce)))
	}

	var s state
	s.initialize(key, nonce)
	s.processAssociatedData(ad)

	ciphertext = make([]byte, len(plaintext))
	s.processPlaintext(ciphertext, plaintext)

	tag = make([]byte, TagSize)
	s.finalize(tag)
	return ciphertext, tag
}

// Decrypt implements the byte-oriented verified-decryption interface of
// section 6.1. It always returns a plaintext buffer the same length as
// ciphertext, but callers MUST check ok and discard plaintext if it is
// false: on authentication failure, plaintext holds the raw (untrusted)
// XOR of ciphertext with the keystream, per section 7's error taxonomy.
//
// Decrypt panics if key or nonce are not exactly 16 bytes, or if tag is
// not exactly 16 bytes — all caller programming errors.
func Decrypt(key, nonce, ciphertext, tag, ad []byte) (plaintext []byte, ok bool) {
	if len(key) != KeySize {
		panic(fmt.Sprintf("acorn128: bad key length %d", len(key)))
	}
	if len(nonce) != NonceSize {
		panic(fmt.Sprintf("acorn128: bad nonce length %d", len(nonce)))
	}
	if len(tag) != TagSize {
		panic(fmt.Sprintf("acorn128: bad tag length %d", len(tag)))
	}

	var s state
	s.initialize(key, nonce)
	s.processAssociatedData(ad)

	plaintext = make([]byte, len(ciphertext))
	s.processCiphertext(plaintext, ciphertext)

	var expected [TagSize]byte
	s.finalize(expected[:])

	// subtle.ConstantTimeCompare accumulates the bitwise difference over
	// every byte with no early exit, per section 4.7.
	ok = subtle.ConstantTimeCompare(tag, expected[:]) == 1
	return plaintext, ok
}
