// Command acorn128 seals and opens messages with the Acorn-128 v3 AEAD
// cipher from the command line, and can regenerate its known-answer-test
// vectors.
package main

func main() {
	Execute()
}
