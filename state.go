package acorn128

// state is the 293-bit Acorn register, packed into seven words sized to
// the seven LFSR segments (61, 46, 47, 39, 37, 59, 4 bits, oldest to
// newest). Each word is stored in a uint64 so that reads at a fixed
// offset into the next segment (the "taps" used by ksg/fbk) can be done
// with a plain shift instead of bit-by-bit indexing; this is the same
// packing trick as the teacher package, generalized from six fused
// registers to the full seven-segment partition described in section 4.2
// of the specification.
//
// w0 holds logical bits [0,61), w1 [61,107), w2 [107,154), w3 [154,193),
// w4 [193,230), w5 [230,289), w6 [289,293).
type state struct {
	w0, w1, w2, w3, w4, w5, w6 uint64
}

const (
	mask8  = 0xFF
	mask32 = 0xFFFFFFFF
)

// tapAndKeystream performs the six intra-register XOR taps of section 4.5
// step 1 and the ksg128/fbk128 formulas of sections 4.3/4.4 in one pass.
// Every value the two formulas need is pulled into a local before any
// struct field is touched: the six tap targets (s[289], s[230], s[193],
// s[154], s[107], s[61]) are read pre-tap here and combined into their
// post-tap values as pure locals, since ksg/fbk read them post-tap; every
// other tap ksg/fbk uses (s[12], s[235], s[111], s[66], s[244], s[160],
// s[196], s[0], s[23]) is never itself a tap target, so it is read once,
// pre-tap, and used as-is. The six target fields are written back exactly
// once, after ks and fb are fully computed, each as an XOR of its old
// value with the tap delta — matching the single-bit step applied to
// every lane at once. Reading a tap's shifted view from a word after a
// separate step has already written that same word's target bits (as an
// earlier revision of this file did) picks up neighboring lanes' new
// values instead of the old ones.
func (s *state) tapAndKeystream(mask uint64, ca, cb uint32) (ks, fb uint32) {
	old0 := uint32(s.w0)
	old61 := uint32(s.w1)
	old107 := uint32(s.w2)
	old154 := uint32(s.w3)
	old193 := uint32(s.w4)
	old230 := uint32(s.w5)

	w12 := uint32(s.w0 >> 12)
	w23 := uint32(s.w0 >> 23)
	w66 := uint32(s.w1 >> 5)
	w111 := uint32(s.w2 >> 4)
	w160 := uint32(s.w3 >> 6)
	w196 := uint32(s.w4 >> 3)
	w235 := uint32(s.w5 >> 5)
	w244 := uint32(s.w5 >> 14)

	delta289 := w235 ^ old230
	delta230 := w196 ^ old193
	delta193 := w160 ^ old154
	delta154 := w111 ^ old107
	delta107 := w66 ^ old61
	delta61 := w23 ^ old0

	new230 := old230 ^ delta230
	new193 := old193 ^ delta193
	new154 := old154 ^ delta154
	new107 := old107 ^ delta107
	new61 := old61 ^ delta61

	ks = w12 ^ new154 ^ maj(w235, new61, new193) ^ ch(new230, w111, w66)
	fb = old0 ^ ^new107 ^ maj(w244, w23, w160) ^ (ca & w196) ^ (cb & ks)

	s.w6 ^= uint64(delta289) & mask
	s.w5 ^= uint64(delta230) & mask
	s.w4 ^= uint64(delta193) & mask
	s.w3 ^= uint64(delta154) & mask
	s.w2 ^= uint64(delta107) & mask
	s.w1 ^= uint64(delta61) & mask
	return ks, fb
}

// shiftIn32 advances the register by 32 bits, inserting x (= fb xor m,
// time-ordered bit 0 first) as the newest 32 bits.
func (s *state) shiftIn32(x uint32) {
	s.w6 ^= uint64(x) << 4
	s.w0 = s.w0>>32 | (s.w1&mask32)<<29 // 61-32
	s.w1 = s.w1>>32 | (s.w2&mask32)<<14 // 46-32
	s.w2 = s.w2>>32 | (s.w3&mask32)<<15 // 47-32
	s.w3 = s.w3>>32 | (s.w4&mask32)<<7  // 39-32
	s.w4 = s.w4>>32 | (s.w5&mask32)<<5  // 37-32
	s.w5 = s.w5>>32 | (s.w6&mask32)<<27 // 59-32
	s.w6 = s.w6 >> 32
}

// shiftIn8 is shiftIn32's 8-bit-granularity counterpart.
func (s *state) shiftIn8(x uint8) {
	s.w6 ^= uint64(x) << 4
	s.w0 = s.w0>>8 | (s.w1&mask8)<<53 // 61-8
	s.w1 = s.w1>>8 | (s.w2&mask8)<<38 // 46-8
	s.w2 = s.w2>>8 | (s.w3&mask8)<<39 // 47-8
	s.w3 = s.w3>>8 | (s.w4&mask8)<<31 // 39-8
	s.w4 = s.w4>>8 | (s.w5&mask8)<<29 // 37-8
	s.w5 = s.w5>>8 | (s.w6&mask8)<<51 // 59-8
	s.w6 = s.w6 >> 8
}

// update32 performs 32 single-bit state updates in one call, feeding the
// known message word m (encrypt form: associated data, key/nonce
// absorption, plaintext, padding). It returns the 32 keystream bits.
func (s *state) update32(m, ca, cb uint32) uint32 {
	ks, fb := s.tapAndKeystream(mask32, ca, cb)
	s.shiftIn32(fb ^ m)
	return ks
}

// update8 is update32's 8-bit-granularity counterpart, used at phase
// transitions and for the trailing 1-3 bytes of a message that isn't a
// multiple of 4 bytes.
func (s *state) update8(m, ca, cb uint8) uint8 {
	ks, fb := s.tapAndKeystream(mask8, uint32(ca), uint32(cb))
	s.shiftIn8(uint8(fb) ^ m)
	return uint8(ks)
}

// updateDecrypt32 is update32's decrypt-form counterpart (section 4.5):
// the message fed into the feedback is the plaintext recovered from c,
// not c itself. It returns the recovered plaintext word.
func (s *state) updateDecrypt32(c, ca, cb uint32) uint32 {
	ks, fb := s.tapAndKeystream(mask32, ca, cb)
	p := ks ^ c
	s.shiftIn32(fb ^ p)
	return p
}

// updateDecrypt8 is updateDecrypt32's 8-bit-granularity counterpart.
func (s *state) updateDecrypt8(c, ca, cb uint8) uint8 {
	ks, fb := s.tapAndKeystream(mask8, uint32(ca), uint32(cb))
	p := uint8(ks) ^ c
	s.shiftIn8(uint8(fb) ^ p)
	return p
}
