// Package randtest provides deterministic random sources for tests.
//
// Nothing here is secure. Production wiring uses crypto.NewSecureSource.
package randtest

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"sync"

	"golang.org/x/crypto/chacha20"

	"cryptonoise/internal/crypto"
	"cryptonoise/internal/domain"
)

// ErrExhausted is returned by Failing once its budget of draws is spent.
var ErrExhausted = errors.New("randtest: entropy exhausted")

// Zero returns 0 for every draw.
type Zero struct{}

// IntN returns 0 for any positive n.
func (Zero) IntN(n int) (int, error) {
	if n <= 0 {
		return 0, crypto.ErrInvalidRange
	}
	return 0, nil
}

// Byte returns 0.
func (Zero) Byte() (byte, error) { return 0, nil }

// keystream is an io.Reader over a ChaCha20 keystream.
type keystream struct {
	mu sync.Mutex
	c  *chacha20.Cipher
}

func (k *keystream) Read(p []byte) (int, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	clear(p)
	k.c.XORKeyStream(p, p)
	return len(p), nil
}

// NewReader returns a reproducible byte stream derived from seed.
func NewReader(seed []byte) io.Reader {
	key := sha256.Sum256(seed)
	nonce := make([]byte, chacha20.NonceSize)
	c, err := chacha20.NewUnauthenticatedCipher(key[:], nonce)
	if err != nil {
		// Key and nonce sizes are fixed above.
		panic(fmt.Sprintf("randtest: chacha20: %v", err))
	}
	return &keystream{c: c}
}

// NewSeeded returns a source that replays the same draws for the same seed.
func NewSeeded(seed []byte) *crypto.Source {
	return crypto.NewSource(NewReader(seed))
}

// Failing wraps a source and fails every draw after the first Budget.
type Failing struct {
	mu     sync.Mutex
	Source domain.RandomSource
	Budget int
	used   int
}

func (f *Failing) spend() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.used >= f.Budget {
		return fmt.Errorf("%w: %w", crypto.ErrEntropyUnavailable, ErrExhausted)
	}
	f.used++
	return nil
}

// IntN spends one draw and delegates to Source.
func (f *Failing) IntN(n int) (int, error) {
	if err := f.spend(); err != nil {
		return 0, err
	}
	return f.Source.IntN(n)
}

// Byte spends one draw and delegates to Source.
func (f *Failing) Byte() (byte, error) {
	if err := f.spend(); err != nil {
		return 0, err
	}
	return f.Source.Byte()
}

var (
	_ domain.RandomSource = Zero{}
	_ domain.RandomSource = (*Failing)(nil)
)
