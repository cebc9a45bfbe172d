package crypto

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"cryptonoise/internal/domain"
)

var (
	// ErrEntropyUnavailable is returned when the random reader fails.
	ErrEntropyUnavailable = errors.New("secure random source unavailable")
	// ErrInvalidRange is returned for empty or oversized ranges.
	ErrInvalidRange = errors.New("invalid random range")
)

// span is the size of the space a single 32-bit draw covers.
const span = uint64(math.MaxUint32) + 1

// Source draws uniform values from an io.Reader of secure random bytes.
type Source struct {
	r io.Reader
}

// NewSecureSource returns a Source backed by the operating system CSPRNG.
func NewSecureSource() *Source { return &Source{r: rand.Reader} }

// NewSource returns a Source reading from r. The caller is responsible for r
// being a cryptographically secure stream.
func NewSource(r io.Reader) *Source { return &Source{r: r} }

// IntN returns a uniform integer in [0, n).
//
// Draws that land in the incomplete bucket at the top of the 32-bit space are
// rejected and redrawn, so every result has exactly the same probability.
func (s *Source) IntN(n int) (int, error) {
	if n <= 0 || uint64(n) > span {
		return 0, fmt.Errorf("%w: [0, %d)", ErrInvalidRange, n)
	}
	if n == 1 {
		return 0, nil
	}
	bound := uint64(n)
	ceiling := span - span%bound
	for {
		v, err := s.uint32()
		if err != nil {
			return 0, err
		}
		if uint64(v) < ceiling {
			return int(uint64(v) % bound), nil
		}
	}
}

// Byte returns one uniform byte.
func (s *Source) Byte() (byte, error) {
	var b [1]byte
	if _, err := io.ReadFull(s.r, b[:]); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
	}
	return b[0], nil
}

func (s *Source) uint32() (uint32, error) {
	var b [4]byte
	if _, err := io.ReadFull(s.r, b[:]); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
	}
	return binary.BigEndian.Uint32(b[:]), nil
}

// IntRange returns a uniform integer in [min, max] drawn from src.
func IntRange(src domain.RandomSource, min, max int) (int, error) {
	if max < min {
		return 0, fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, min, max)
	}
	v, err := src.IntN(max - min + 1)
	if err != nil {
		return 0, err
	}
	return min + v, nil
}

var _ domain.RandomSource = (*Source)(nil)
