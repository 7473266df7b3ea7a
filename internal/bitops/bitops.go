// Package bitops is a literal, bit-indexed re-implementation of the
// Acorn-128 register, used only as a differential-testing oracle for the
// packed/bulk implementation in the parent package. It is written
// independently from the packed form and must never be imported by
// production code: its only job is to advance one logical bit at a time
// so that tests can confirm the bulk state update is bit-exact.
package bitops

// numBits is the logical length of the Acorn-128 register.
const numBits = 293

// State is the 293-bit register, indexed 0 (oldest) to 292 (newest),
// exactly as described for the bit-indexed view of the register.
type State struct {
	s [numBits]byte // each element holds 0 or 1
}

func maj(x, y, z byte) byte {
	return (x & y) ^ (x & z) ^ (y & z)
}

func ch(x, y, z byte) byte {
	return (x & y) ^ ((1 ^ x) & z)
}

// ksg computes one keystream bit.
func (st *State) ksg() byte {
	s := &st.s
	return s[12] ^ s[154] ^ maj(s[235], s[61], s[193]) ^ ch(s[230], s[111], s[66])
}

// fbk computes one feedback bit given the control bits and the keystream
// bit already produced for this step.
func (st *State) fbk(ca, cb, ks byte) byte {
	s := &st.s
	return s[0] ^ (1 ^ s[107]) ^ maj(s[244], s[23], s[160]) ^ (ca & s[196]) ^ (cb & ks)
}

// tapXOR performs the six intra-register mixing taps.
func (st *State) tapXOR() {
	s := &st.s
	s[289] ^= s[235] ^ s[230]
	s[230] ^= s[196] ^ s[193]
	s[193] ^= s[160] ^ s[154]
	s[154] ^= s[111] ^ s[107]
	s[107] ^= s[66] ^ s[61]
	s[61] ^= s[23] ^ s[0]
}

// shift drops s[0] and appends newBit as the new s[292].
func (st *State) shift(newBit byte) {
	s := &st.s
	copy(s[:numBits-1], s[1:])
	s[numBits-1] = newBit & 1
}

// Step performs one single-bit StateUpdate in encrypt form: m is known
// (associated data, plaintext, or padding), and Step returns the
// keystream bit.
func (st *State) Step(m, ca, cb byte) byte {
	st.tapXOR()
	ks := st.ksg()
	fb := st.fbk(ca, cb, ks)
	st.shift(fb ^ (m & 1))
	return ks
}

// StepDecrypt performs one single-bit StateUpdate in decrypt form: c is
// the ciphertext bit, and the plaintext bit recovered from it (not c
// itself) is fed into the feedback. StepDecrypt returns the recovered
// plaintext bit.
func (st *State) StepDecrypt(c, ca, cb byte) byte {
	st.tapXOR()
	ks := st.ksg()
	fb := st.fbk(ca, cb, ks)
	p := ks ^ (c & 1)
	st.shift(fb ^ p)
	return p
}

// bitsLSBFirst expands b into 8 bits, least significant first — the order
// the packed kernel absorbs a byte in (see bits.go's packLE32).
func bitsLSBFirst(b byte, out []byte) {
	for i := 0; i < 8; i++ {
		out[i] = (b >> i) & 1
	}
}

func bytesToBits(b []byte) []byte {
	bits := make([]byte, len(b)*8)
	for i, c := range b {
		bitsLSBFirst(c, bits[i*8:i*8+8])
	}
	return bits
}

func bitsToBytes(bits []byte) []byte {
	out := make([]byte, len(bits)/8)
	for i := range out {
		var b byte
		for j := 7; j >= 0; j-- {
			b = b<<1 | bits[i*8+j]
		}
		out[i] = b
	}
	return out
}

// Initialize runs the key/nonce absorption: 128 key bits, 128 nonce bits,
// then the first key bit with its LSB flipped, then 1535 more key bits
// read cyclically starting at bit position 1.
func (st *State) Initialize(key, nonce []byte) {
	*st = State{}

	keyBits := bytesToBits(key)
	nonceBits := bytesToBits(nonce)

	for _, b := range keyBits {
		st.Step(b, 1, 1)
	}
	for _, b := range nonceBits {
		st.Step(b, 1, 1)
	}
	st.Step(keyBits[0]^1, 1, 1)
	for i := 0; i < 1535; i++ {
		st.Step(keyBits[(1+i)%128], 1, 1)
	}
}

// absorbTrailer256 absorbs the 256-bit domain-separator/padding trailer
// common to the associated data and plaintext/ciphertext phases.
func (st *State) absorbTrailer256(cb byte) {
	st.Step(1, 1, cb)
	for i := 0; i < 127; i++ {
		st.Step(0, 1, cb)
	}
	for i := 0; i < 128; i++ {
		st.Step(0, 0, cb)
	}
}

// ProcessAssociatedData absorbs A bit by bit, LSB-first per byte.
func (st *State) ProcessAssociatedData(ad []byte) {
	for _, b := range bytesToBits(ad) {
		st.Step(b, 1, 1)
	}
	st.absorbTrailer256(1)
}

// ProcessPlaintext encrypts plaintext bit by bit and returns ciphertext.
func (st *State) ProcessPlaintext(plaintext []byte) []byte {
	bits := bytesToBits(plaintext)
	out := make([]byte, len(bits))
	for i, p := range bits {
		ks := st.Step(p, 1, 0)
		out[i] = p ^ ks
	}
	st.absorbTrailer256(0)
	return bitsToBytes(out)
}

// ProcessCiphertext decrypts ciphertext bit by bit and returns plaintext.
func (st *State) ProcessCiphertext(ciphertext []byte) []byte {
	bits := bytesToBits(ciphertext)
	out := make([]byte, len(bits))
	for i, c := range bits {
		out[i] = st.StepDecrypt(c, 1, 0)
	}
	st.absorbTrailer256(0)
	return bitsToBytes(out)
}

// Finalize runs 640 discarded steps followed by 128 steps whose keystream
// forms the 16-byte tag.
func (st *State) Finalize() []byte {
	for i := 0; i < 640; i++ {
		st.Step(0, 1, 1)
	}
	tagBits := make([]byte, 128)
	for i := range tagBits {
		tagBits[i] = st.Step(0, 1, 1)
	}
	return bitsToBytes(tagBits)
}

// Encrypt runs the full bit-indexed AEAD encryption path and returns the
// ciphertext and 16-byte tag, for comparison against the packed
// implementation's output.
func Encrypt(key, nonce, plaintext, ad []byte) (ciphertext, tag []byte) {
	var st State
	st.Initialize(key, nonce)
	st.ProcessAssociatedData(ad)
	ciphertext = st.ProcessPlaintext(plaintext)
	tag = st.Finalize()
	return ciphertext, tag
}

// Decrypt runs the full bit-indexed AEAD decryption path.
func Decrypt(key, nonce, ciphertext, tag, ad []byte) (plaintext []byte, ok bool) {
	var st State
	st.Initialize(key, nonce)
	st.ProcessAssociatedData(ad)
	plaintext = st.ProcessCiphertext(ciphertext)
	expected := st.Finalize()

	var diff byte
	for i := range expected {
		diff |= tag[i] ^ expected[i]
	}
	return plaintext, diff == 0
}
