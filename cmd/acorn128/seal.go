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
	sealKeyHex   string
	sealNonceHex string
	sealADHex    string
)

var sealCmd = &cobra.Command{
	Use:   "seal",
	Short: "Encrypt and authenticate a message read from stdin",
	Long: `seal reads plaintext from stdin, encrypts and authenticates it under
the given key, nonce and associated data, and writes hex-encoded
ciphertext||tag to stdout.`,
	RunE: runSeal,
}

func init() {
	sealCmd.Flags().StringVar(&sealKeyHex, "key", "", "16-byte key, hex-encoded (required)")
	sealCmd.Flags().StringVar(&sealNonceHex, "nonce", "", "16-byte nonce, hex-encoded (required)")
	sealCmd.Flags().StringVar(&sealADHex, "ad", "", "associated data, hex-encoded")
	sealCmd.MarkFlagRequired("key")
	sealCmd.MarkFlagRequired("nonce")
	rootCmd.AddCommand(sealCmd)
}

func runSeal(cmd *cobra.Command, args []string) error {
	jobID := uuid.New()
	log := logger.With(zap.String("job", jobID.String()), zap.String("op", "seal"))

	key, err := hex.DecodeString(sealKeyHex)
	if err != nil {
		return fmt.Errorf("decoding --key: %w", err)
	}
	nonce, err := hex.DecodeString(sealNonceHex)
	if err != nil {
		return fmt.Errorf("decoding --nonce: %w", err)
	}
	ad, err := hex.DecodeString(sealADHex)
	if err != nil {
		return fmt.Errorf("decoding --ad: %w", err)
	}

	plaintext, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}

	ciphertext, tag, err := seal(key, nonce, plaintext, ad)
	if err != nil {
		log.Error("seal failed", zap.Error(err))
		return err
	}

	log.Info("sealed message", zap.Int("plaintext_len", len(plaintext)))
	fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(append(ciphertext, tag...)))
	return nil
}

// seal wraps acorn128.Encrypt with the length checks the package panics
// on, turning a caller mistake into a returned error instead of a CLI
// crash.
func seal(key, nonce, plaintext, ad []byte) (ciphertext, tag []byte, err error) {
	if len(key) != acorn128.KeySize {
		return nil, nil, fmt.Errorf("key must be %d bytes, got %d", acorn128.KeySize, len(key))
	}
	if len(nonce) != acorn128.NonceSize {
		return nil, nil, fmt.Errorf("nonce must be %d bytes, got %d", acorn128.NonceSize, len(nonce))
	}
	ciphertext, tag = acorn128.Encrypt(key, nonce, plaintext, ad)
	return ciphertext, tag, nil
}
