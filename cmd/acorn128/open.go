package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	acorn128 "github.com/lowpower-crypto/acorn128"
)

var (
	openKeyHex   string
	openNonceHex string
	openADHex    string
)

var openCmd = &cobra.Command{
	Use:   "open",
	Short: "Verify and decrypt a sealed message read from stdin",
	Long: `open reads hex-encoded ciphertext||tag from stdin, verifies it
against the given key, nonce and associated data, and writes the
plaintext to stdout. It exits non-zero and prints nothing if
authentication fails.`,
	RunE: runOpen,
}

func init() {
	openCmd.Flags().StringVar(&openKeyHex, "key", "", "16-byte key, hex-encoded (required)")
	openCmd.Flags().StringVar(&openNonceHex, "nonce", "", "16-byte nonce, hex-encoded (required)")
	openCmd.Flags().StringVar(&openADHex, "ad", "", "associated data, hex-encoded")
	openCmd.MarkFlagRequired("key")
	openCmd.MarkFlagRequired("nonce")
	rootCmd.AddCommand(openCmd)
}

func runOpen(cmd *cobra.Command, args []string) error {
	jobID := uuid.New()
	log := logger.With(zap.String("job", jobID.String()), zap.String("op", "open"))

	key, err := hex.DecodeString(openKeyHex)
	if err != nil {
		return fmt.Errorf("decoding --key: %w", err)
	}
	nonce, err := hex.DecodeString(openNonceHex)
	if err != nil {
		return fmt.Errorf("decoding --nonce: %w", err)
	}
	ad, err := hex.DecodeString(openADHex)
	if err != nil {
		return fmt.Errorf("decoding --ad: %w", err)
	}

	line, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}
	sealed, err := hex.DecodeString(trimNewline(line))
	if err != nil {
		return fmt.Errorf("decoding stdin as hex: %w", err)
	}

	plaintext, err := open(key, nonce, sealed, ad)
	if err != nil {
		log.Warn("authentication failed", zap.Error(err))
		return err
	}

	log.Info("opened message", zap.Int("plaintext_len", len(plaintext)))
	fmt.Fprintln(cmd.OutOrStdout(), string(plaintext))
	return nil
}

// open wraps acorn128.Decrypt, converting a length mismatch or a failed
// tag verification into a returned error.
func open(key, nonce, sealed, ad []byte) ([]byte, error) {
	if len(key) != acorn128.KeySize {
		return nil, fmt.Errorf("key must be %d bytes, got %d", acorn128.KeySize, len(key))
	}
	if len(nonce) != acorn128.NonceSize {
		return nil, fmt.Errorf("nonce must be %d bytes, got %d", acorn128.NonceSize, len(nonce))
	}
	if len(sealed) < acorn128.TagSize {
		return nil, fmt.Errorf("sealed message shorter than the %d-byte tag", acorn128.TagSize)
	}
	n := len(sealed) - acorn128.TagSize
	ciphertext, tag := sealed[:n], sealed[n:]

	plaintext, ok := acorn128.Decrypt(key, nonce, ciphertext, tag, ad)
	if !ok {
		return nil, fmt.Errorf("authentication failed")
	}
	return plaintext, nil
}

func trimNewline(b []byte) string {
	for len(b) > 0 && (b[len(b)-1] == '\n' || b[len(b)-1] == '\r') {
		b = b[:len(b)-1]
	}
	return string(b)
}
