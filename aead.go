package acorn128

import (
	"crypto/cipher"
	"crypto/subtle"
	"errors"
	"fmt"
)

// ErrOpen is returned by AEAD.Open when the ciphertext fails authentication.
// Callers must treat any plaintext returned alongside ErrOpen as discarded,
// per section 4.6.5's verification-failure requirement.
var ErrOpen = errors.New("acorn128: message authentication failed")

type aead struct{}

// NewAEAD returns a crypto/cipher.AEAD implementation of Acorn-128 bound to
// key. NewAEAD returns an error if key is not exactly KeySize bytes.
//
// Unlike Encrypt/Decrypt, the returned AEAD follows Go convention: Seal
// appends the tag to the ciphertext, and Open expects it there.
func NewAEAD(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("acorn128: bad key length %d", len(key))
	}
	a := aeadImpl{}
	copy(a.key[:], key)
	return &a, nil
}

type aeadImpl struct {
	key [KeySize]byte
}

func (a *aeadImpl) NonceSize() int { return NonceSize }
func (a *aeadImpl) Overhead() int  { return TagSize }

// Seal encrypts and authenticates plaintext, authenticates additionalData,
// and appends the result to dst, returning the updated slice. The nonce
// must be NonceSize bytes and must never be reused with this key.
func (a *aeadImpl) Seal(dst, nonce, plaintext, additionalData []byte) []byte {
	if len(nonce) != NonceSize {
		panic(fmt.Sprintf("acorn128: bad nonce length %d", len(nonce)))
	}

	var s state
	s.initialize(a.key[:], nonce)
	s.processAssociatedData(additionalData)

	ret, out := sliceForAppend(dst, len(plaintext)+TagSize)
	s.processPlaintext(out[:len(plaintext)], plaintext)
	s.finalize(out[len(plaintext):])
	return ret
}

// Open authenticates additionalData and the ciphertext produced by Seal,
// decrypts it and appends the plaintext to dst, returning the updated
// slice. If authentication fails, Open returns ErrOpen and dst unchanged;
// per the package's security contract the caller must not use any
// plaintext bytes in that case.
func (a *aeadImpl) Open(dst, nonce, ciphertext, additionalData []byte) ([]byte, error) {
	if len(nonce) != NonceSize {
		panic(fmt.Sprintf("acorn128: bad nonce length %d", len(nonce)))
	}
	if len(ciphertext) < TagSize {
		return nil, ErrOpen
	}

	n := len(ciphertext) - TagSize
	msg, tag := ciphertext[:n], ciphertext[n:]

	var s state
	s.initialize(a.key[:], nonce)
	s.processAssociatedData(additionalData)

	ret, out := sliceForAppend(dst, n)
	s.processCiphertext(out, msg)

	var expected [TagSize]byte
	s.finalize(expected[:])

	if subtle.ConstantTimeCompare(tag, expected[:]) != 1 {
		clearBytes(out)
		return nil, ErrOpen
	}
	return ret, nil
}

// sliceForAppend extends in by n bytes, reusing its backing array when
// there is enough capacity, and returns the extended slice along with the
// n-byte tail to write into.
func sliceForAppend(in []byte, n int) (head, tail []byte) {
	if total := len(in) + n; cap(in) >= total {
		head = in[:total]
	} else {
		head = make([]byte, total)
		copy(head, in)
	}
	tail = head[len(in):]
	return
}

func clearBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
