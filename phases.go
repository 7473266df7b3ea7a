package acorn128

const (
	one32 = ^uint32(0)
	one8  = ^uint8(0)
)

// initialize runs the key/nonce absorption of section 4.6.1: the key, then
// the nonce, then one word with the first key bit flipped, then 47 more
// words cycling through the key — 56 32-bit steps, 1792 bits total.
func (s *state) initialize(key, nonce []byte) {
	*s = state{}

	var kw [4]uint32
	for i := range kw {
		kw[i] = packLE32(key[i*4 : i*4+4])
	}
	for i := 0; i < 4; i++ {
		s.update32(kw[i], one32, one32)
	}
	for i := 0; i < 4; i++ {
		s.update32(packLE32(nonce[i*4:i*4+4]), one32, one32)
	}
	s.update32(kw[0]^1, one32, one32)
	for i := 1; i < 48; i++ {
		s.update32(kw[i%4], one32, one32)
	}
}

// absorbTrailer256 absorbs the 256-bit AD/message trailer common to
// section 4.6.2 and 4.6.3: a domain-separator bit, 127 more zero bits
// with ca=1, then 128 zero bits with ca=0. cb is held fixed throughout
// (1 for associated data, 0 for plaintext/ciphertext).
//
// Note: original_source's word-level transcription of this trailer loops
// one 32-bit word too many (9 words / 288 bits instead of 8 words / 256
// bits); this implementation follows the specification's explicit bit
// count instead — see DESIGN.md.
func (s *state) absorbTrailer256(cb uint32) {
	s.update32(1, one32, cb)
	for i := 0; i < 3; i++ {
		s.update32(0, one32, cb)
	}
	for i := 0; i < 4; i++ {
		s.update32(0, 0, cb)
	}
}

// processAssociatedData absorbs A (section 4.6.2), 32 bits at a time with
// an 8-bit tail for the last 1-3 bytes, then the 256-bit trailer.
func (s *state) processAssociatedData(ad []byte) {
	i := 0
	for ; i+4 <= len(ad); i += 4 {
		s.update32(packLE32(ad[i:i+4]), one32, one32)
	}
	for ; i < len(ad); i++ {
		s.update8(packLE8(ad[i]), one8, one8)
	}
	s.absorbTrailer256(one32)
}

// processPlaintext encrypts P into dst (section 4.6.3). dst and src may
// overlap entirely (in-place) but must be the same length.
func (s *state) processPlaintext(dst, src []byte) {
	i := 0
	for ; i+4 <= len(src); i += 4 {
		p := packLE32(src[i : i+4])
		ks := s.update32(p, one32, 0)
		unpackLE32(p^ks, dst[i:i+4])
	}
	for ; i < len(src); i++ {
		p := packLE8(src[i])
		ks := s.update8(p, one8, 0)
		dst[i] = unpackLE8(p ^ ks)
	}
	s.absorbTrailer256(0)
}

// processCiphertext decrypts C into dst (section 4.6.4), using the
// decrypt-form state update so that the recovered plaintext bit (not the
// ciphertext bit) feeds the register's feedback.
func (s *state) processCiphertext(dst, src []byte) {
	i := 0
	for ; i+4 <= len(src); i += 4 {
		c := packLE32(src[i : i+4])
		p := s.updateDecrypt32(c, one32, 0)
		unpackLE32(p, dst[i:i+4])
	}
	for ; i < len(src); i++ {
		c := packLE8(src[i])
		p := s.updateDecrypt8(c, one8, 0)
		dst[i] = unpackLE8(p)
	}
	s.absorbTrailer256(0)
}

// finalize runs 640 discarded steps followed by 128 steps whose keystream
// forms the tag (section 4.6.5). len(tag) must be 16.
func (s *state) finalize(tag []byte) {
	for i := 0; i < 640; i += 32 {
		s.update32(0, one32, one32)
	}
	for i := 0; i < 16; i += 4 {
		ks := s.update32(0, one32, one32)
		unpackLE32(ks, tag[i:i+4])
	}
}
