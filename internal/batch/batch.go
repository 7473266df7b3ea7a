// Package batch implements the optional batch dispatcher described in
// section 6.3: it fans a slice of independent Acorn-128 calls out across
// goroutines and reports the first error, with no cross-element failure
// propagation beyond that.
package batch

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	acorn128 "github.com/lowpower-crypto/acorn128"
)

// Job is one element of a batch: an independent (key, nonce, plaintext,
// ad) tuple to be sealed or opened.
type Job struct {
	Key        []byte
	Nonce      []byte
	Plaintext  []byte // used by Encrypt
	Ciphertext []byte // used by Decrypt
	Tag        []byte // used by Decrypt
	AD         []byte
}

// Result is one element of a batch result: the ciphertext/plaintext and
// tag for the corresponding Job, with Decrypt's authentication outcome
// carried in OK.
type Result struct {
	Text []byte
	Tag  []byte
	OK   bool
}

// Encrypt runs acorn128.Encrypt over every job concurrently and returns
// results in the same order as jobs. N (len(jobs)) may be zero.
//
// Encrypt returns an error for a malformed job (wrong key or nonce
// length) or when ctx is cancelled before the jobs run; per section 7's
// error taxonomy a malformed job is a programming error, not a
// cipher-level condition, so it aborts the whole batch rather than
// silently skipping the offending element.
func Encrypt(ctx context.Context, jobs []Job) ([]Result, error) {
	results := make([]Result, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	for i := range jobs {
		i := i
		g.Go(func() error {
			job := jobs[i]
			if len(job.Key) != acorn128.KeySize {
				return fmt.Errorf("batch: job %d: bad key length %d", i, len(job.Key))
			}
			if len(job.Nonce) != acorn128.NonceSize {
				return fmt.Errorf("batch: job %d: bad nonce length %d", i, len(job.Nonce))
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			ct, tag := acorn128.Encrypt(job.Key, job.Nonce, job.Plaintext, job.AD)
			results[i] = Result{Text: ct, Tag: tag, OK: true}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Decrypt runs acorn128.Decrypt over every job concurrently and returns
// results in the same order as jobs. Authentication failure on one job
// surfaces as that job's Result.OK == false and never aborts the batch or
// affects any other job's result.
func Decrypt(ctx context.Context, jobs []Job) ([]Result, error) {
	results := make([]Result, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	for i := range jobs {
		i := i
		g.Go(func() error {
			job := jobs[i]
			if len(job.Key) != acorn128.KeySize {
				return fmt.Errorf("batch: job %d: bad key length %d", i, len(job.Key))
			}
			if len(job.Nonce) != acorn128.NonceSize {
				return fmt.Errorf("batch: job %d: bad nonce length %d", i, len(job.Nonce))
			}
			if len(job.Tag) != acorn128.TagSize {
				return fmt.Errorf("batch: job %d: bad tag length %d", i, len(job.Tag))
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			pt, ok := acorn128.Decrypt(job.Key, job.Nonce, job.Ciphertext, job.Tag, job.AD)
			results[i] = Result{Text: pt, OK: ok}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
