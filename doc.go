// Package acorn128 implements the ACORN-128 v3 authenticated encryption
// algorithm designed by Hongjun Wu, as specified in
//
//	https://competitions.cr.yp.to/round3/acornv3.pdf
//
// ACORN was one of the six winners of the CAESAR competition: it is the
// second choice for use case 1 (lightweight applications in
// resource-constrained environments). If you are not operating in a
// resource-constrained environment, AES-GCM or ChaCha20-Poly1305 are
// probably a better choice.
//
// ACORN is claimed to be secure provided that the following conditions are
// met:
//
//  1. The key is generated in a secure and random way.
//
//  2. A (key, nonce) pair is never used to protect more than one message.
//
//  3. If verification fails, the decrypted plaintext and the wrong
//     authentication tag are not given as output.
//
// Repeating a nonce may allow an attacker to trivially forge arbitrary
// messages. This package performs no nonce generation or key derivation;
// both are the caller's responsibility.
package acorn128
