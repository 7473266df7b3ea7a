package batch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	acorn128 "github.com/lowpower-crypto/acorn128"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	jobs := make([]Job, 0, 5)
	for i := 0; i < 5; i++ {
		key := make([]byte, acorn128.KeySize)
		nonce := make([]byte, acorn128.NonceSize)
		key[0] = byte(i)
		jobs = append(jobs, Job{
			Key:       key,
			Nonce:     nonce,
			Plaintext: []byte{byte(i), byte(i + 1)},
			AD:        []byte("batch"),
		})
	}

	encrypted, err := Encrypt(context.Background(), jobs)
	require.NoError(t, err)
	require.Len(t, encrypted, len(jobs))

	decryptJobs := make([]Job, len(jobs))
	for i, j := range jobs {
		decryptJobs[i] = Job{
			Key:        j.Key,
			Nonce:      j.Nonce,
			Ciphertext: encrypted[i].Text,
			Tag:        encrypted[i].Tag,
			AD:         j.AD,
		}
	}

	decrypted, err := Decrypt(context.Background(), decryptJobs)
	require.NoError(t, err)
	require.Len(t, decrypted, len(jobs))

	for i, r := range decrypted {
		assert.True(t, r.OK, "job %d failed authentication", i)
		assert.Equal(t, jobs[i].Plaintext, r.Text)
	}
}

func TestEncryptEmptyBatch(t *testing.T) {
	results, err := Encrypt(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestDecryptDoesNotPropagateSingleJobFailure(t *testing.T) {
	key := make([]byte, acorn128.KeySize)
	nonce := make([]byte, acorn128.NonceSize)

	good := Job{Key: key, Nonce: nonce, Plaintext: []byte("ok"), AD: nil}
	encrypted, err := Encrypt(context.Background(), []Job{good})
	require.NoError(t, err)

	tamperedTag := append([]byte{}, encrypted[0].Tag...)
	tamperedTag[0] ^= 1

	jobs := []Job{
		{Key: key, Nonce: nonce, Ciphertext: encrypted[0].Text, Tag: tamperedTag},
		{Key: key, Nonce: nonce, Ciphertext: encrypted[0].Text, Tag: encrypted[0].Tag},
	}
	results, err := Decrypt(context.Background(), jobs)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.False(t, results[0].OK)
	assert.True(t, results[1].OK)
}

func TestEncryptRejectsMalformedJob(t *testing.T) {
	jobs := []Job{{Key: make([]byte, 15), Nonce: make([]byte, acorn128.NonceSize)}}
	_, err := Encrypt(context.Background(), jobs)
	assert.Error(t, err)
}
