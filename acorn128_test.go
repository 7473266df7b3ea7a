package acorn128

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func hb(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

// s1Vectors holds the fixed interop vector (S1) shared by several tests.
var (
	s1Key = hb("000102030405060708090a0b0c0d0e0f")
	s1Non = hb("fffefdfcfbfaf9f8f7f6f5f4f3f2f1f0")
	s1AD  = hb("000102030405060708090a0b0c0d0e0f")
	s1PT  = func() []byte {
		p := make([]byte, 32)
		for i := range p {
			p[i] = byte(i)
		}
		return p
	}()
	s1CT  = hb("b42e4dca2acefdec58da849a2decace7952706881fef46b8abd39d3ac02a9f41")
	s1Tag = hb("06288070f2f06b8f31eaa90341f080a5")
)

func TestS1Vector(t *testing.T) {
	ct, tag := Encrypt(s1Key, s1Non, s1PT, s1AD)
	if !bytes.Equal(ct, s1CT) {
		t.Errorf("ciphertext mismatch:\n got %x\nwant %x", ct, s1CT)
	}
	if !bytes.Equal(tag, s1Tag) {
		t.Errorf("tag mismatch:\n got %x\nwant %x", tag, s1Tag)
	}

	pt, ok := Decrypt(s1Key, s1Non, ct, tag, s1AD)
	if !ok {
		t.Fatal("decrypt of valid S1 ciphertext failed authentication")
	}
	if !bytes.Equal(pt, s1PT) {
		t.Errorf("round-trip plaintext mismatch:\n got %x\nwant %x", pt, s1PT)
	}
}

func TestS2EmptyMessageAndAD(t *testing.T) {
	key := make([]byte, KeySize)
	nonce := make([]byte, NonceSize)

	ct, tag := Encrypt(key, nonce, nil, nil)
	if len(ct) != 0 {
		t.Errorf("expected empty ciphertext, got %x", ct)
	}
	if len(tag) != TagSize {
		t.Errorf("expected %d-byte tag, got %d", TagSize, len(tag))
	}

	pt, ok := Decrypt(key, nonce, ct, tag, nil)
	if !ok {
		t.Fatal("decrypt of empty message failed authentication")
	}
	if len(pt) != 0 {
		t.Errorf("expected empty plaintext, got %x", pt)
	}
}

func TestS3EmptyADOneBytePlaintext(t *testing.T) {
	key := make([]byte, KeySize)
	nonce := make([]byte, NonceSize)

	ct, tag := Encrypt(key, nonce, []byte{0x00}, nil)
	if len(ct) != 1 {
		t.Fatalf("expected 1-byte ciphertext, got %d", len(ct))
	}
	if len(tag) != TagSize {
		t.Fatalf("expected %d-byte tag, got %d", TagSize, len(tag))
	}

	pt, ok := Decrypt(key, nonce, ct, tag, nil)
	if !ok {
		t.Fatal("round-trip failed authentication")
	}
	if !bytes.Equal(pt, []byte{0x00}) {
		t.Errorf("plaintext mismatch: got %x", pt)
	}
}

func TestS4TagTamper(t *testing.T) {
	ct, tag := Encrypt(s1Key, s1Non, s1PT, s1AD)
	tampered := append([]byte{}, tag...)
	tampered[0] ^= 0x01

	if _, ok := Decrypt(s1Key, s1Non, ct, tampered, s1AD); ok {
		t.Error("decrypt succeeded with tampered tag")
	}
}

func TestS5ADTamper(t *testing.T) {
	ct, tag := Encrypt(s1Key, s1Non, s1PT, s1AD)
	tampered := append([]byte{}, s1AD...)
	tampered[0] ^= 0x01

	if _, ok := Decrypt(s1Key, s1Non, ct, tag, tampered); ok {
		t.Error("decrypt succeeded with tampered associated data")
	}
}

func TestS6CiphertextTamper(t *testing.T) {
	ct, tag := Encrypt(s1Key, s1Non, s1PT, s1AD)
	tampered := append([]byte{}, ct...)
	tampered[0] ^= 0x01

	pt, ok := Decrypt(s1Key, s1Non, tampered, tag, s1AD)
	if ok {
		t.Error("decrypt succeeded with tampered ciphertext")
	}
	if pt[0]^s1PT[0] == 0 {
		t.Error("recovered plaintext does not differ at the tampered bit")
	}
}

// TestRoundTrip covers P1 and P2 across a range of message/AD lengths.
func TestRoundTrip(t *testing.T) {
	key := make([]byte, KeySize)
	nonce := make([]byte, NonceSize)
	for i := range key {
		key[i] = byte(i)
	}
	for i := range nonce {
		nonce[i] = byte(0xa0 + i)
	}

	for _, plen := range []int{0, 1, 2, 3, 4, 5, 15, 16, 17, 63, 64, 65, 200} {
		for _, alen := range []int{0, 1, 3, 4, 16, 100} {
			pt := make([]byte, plen)
			for i := range pt {
				pt[i] = byte(i * 7)
			}
			ad := make([]byte, alen)
			for i := range ad {
				ad[i] = byte(i * 11)
			}

			ct, tag := Encrypt(key, nonce, pt, ad)
			if len(ct) != plen {
				t.Fatalf("plen=%d alen=%d: len(ct)=%d", plen, alen, len(ct))
			}
			if len(tag) != TagSize {
				t.Fatalf("plen=%d alen=%d: len(tag)=%d", plen, alen, len(tag))
			}

			got, ok := Decrypt(key, nonce, ct, tag, ad)
			if !ok {
				t.Fatalf("plen=%d alen=%d: decrypt failed", plen, alen)
			}
			if !bytes.Equal(got, pt) {
				t.Fatalf("plen=%d alen=%d: plaintext mismatch", plen, alen)
			}
		}
	}
}

// TestBitFlipDetection covers P4: any single bit flip in A, C or T must be
// detected.
func TestBitFlipDetection(t *testing.T) {
	key := make([]byte, KeySize)
	nonce := make([]byte, NonceSize)
	ad := []byte("associated data for bit flip test")
	pt := []byte("the quick brown fox jumps over the lazy dog")

	ct, tag := Encrypt(key, nonce, pt, ad)

	flipAndCheck := func(name string, buf []byte) {
		for _, byteIdx := range []int{0, len(buf) / 2, len(buf) - 1} {
			for bit := 0; bit < 8; bit++ {
				c := append([]byte{}, ct...)
				a := append([]byte{}, ad...)
				tg := append([]byte{}, tag...)
				switch name {
				case "ad":
					a[byteIdx] ^= 1 << bit
				case "ct":
					c[byteIdx] ^= 1 << bit
				case "tag":
					tg[byteIdx] ^= 1 << bit
				}
				if _, ok := Decrypt(key, nonce, c, tg, a); ok {
					t.Errorf("%s: bit flip at byte %d bit %d went undetected", name, byteIdx, bit)
				}
			}
		}
	}
	flipAndCheck("ad", ad)
	flipAndCheck("ct", ct)
	flipAndCheck("tag", tag)
}

// TestNonceAndKeySensitivity covers P5.
func TestNonceAndKeySensitivity(t *testing.T) {
	key := make([]byte, KeySize)
	nonce := make([]byte, NonceSize)
	pt := []byte("sensitive to every key and nonce bit")
	ad := []byte("ad")

	ct, tag := Encrypt(key, nonce, pt, ad)

	badKey := append([]byte{}, key...)
	badKey[0] ^= 1
	if _, ok := Decrypt(badKey, nonce, ct, tag, ad); ok {
		t.Error("decrypt succeeded with a flipped key bit")
	}

	badNonce := append([]byte{}, nonce...)
	badNonce[0] ^= 1
	if _, ok := Decrypt(key, badNonce, ct, tag, ad); ok {
		t.Error("decrypt succeeded with a flipped nonce bit")
	}
}

// TestDeterminism covers P6: repeated calls with identical inputs produce
// identical output.
func TestDeterminism(t *testing.T) {
	key := make([]byte, KeySize)
	nonce := make([]byte, NonceSize)
	pt := []byte("repeatable")
	ad := []byte("ad")

	ct1, tag1 := Encrypt(key, nonce, pt, ad)
	ct2, tag2 := Encrypt(key, nonce, pt, ad)
	if !bytes.Equal(ct1, ct2) || !bytes.Equal(tag1, tag2) {
		t.Error("two encryptions of identical inputs diverged")
	}
}

func TestEncryptPanicsOnBadLengths(t *testing.T) {
	mustPanic := func(name string, f func()) {
		defer func() {
			if recover() == nil {
				t.Errorf("%s: expected panic", name)
			}
		}()
		f()
	}
	mustPanic("bad key", func() { Encrypt(make([]byte, 15), make([]byte, NonceSize), nil, nil) })
	mustPanic("bad nonce", func() { Encrypt(make([]byte, KeySize), make([]byte, 15), nil, nil) })
	mustPanic("bad tag", func() {
		Decrypt(make([]byte, KeySize), make([]byte, NonceSize), nil, make([]byte, 15), nil)
	})
}
