package noise

import (
	"errors"
	"fmt"

	"cryptonoise/internal/crypto"
	"cryptonoise/internal/domain"
	"cryptonoise/internal/util/memzero"
)

// ErrNoSource is returned by New without a random source.
var ErrNoSource = errors.New("noise: random source required")

// Generator produces noise values. It holds no mutable state and is safe for
// concurrent use when its source is.
type Generator struct {
	src    domain.RandomSource
	params Params
}

// New returns a generator drawing from src with the shape p.
func New(src domain.RandomSource, p Params) (*Generator, error) {
	if src == nil {
		return nil, ErrNoSource
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Generator{src: src, params: p}, nil
}

// Params returns the shape the generator was built with.
func (g *Generator) Params() Params { return g.params }

// Generate returns a fresh noise value. On error the value is always empty.
func (g *Generator) Generate() (domain.Noise, error) {
	n, _, err := g.generate(false)
	return n, err
}

func (g *Generator) generate(trace bool) (domain.Noise, domain.Trace, error) {
	base := make([]byte, g.params.BaseLength)
	defer memzero.Zero(base)

	if err := g.compose(base); err != nil {
		return "", domain.Trace{}, fmt.Errorf("compose base: %w", err)
	}
	if err := g.shuffle(base); err != nil {
		return "", domain.Trace{}, fmt.Errorf("shuffle base: %w", err)
	}

	length, err := crypto.IntRange(g.src, g.params.MinLength, g.params.MaxLength)
	if err != nil {
		return "", domain.Trace{}, fmt.Errorf("draw length: %w", err)
	}
	start, err := g.src.IntN(len(base) - length + 1)
	if err != nil {
		return "", domain.Trace{}, fmt.Errorf("draw offset: %w", err)
	}

	// string conversion copies, so the wipe of base does not reach the result.
	out := domain.Noise(base[start : start+length])
	if !trace {
		return out, domain.Trace{}, nil
	}
	return out, domain.Trace{
		Base:   string(base),
		Start:  start,
		Length: length,
		Noise:  out,
	}, nil
}

// compose fills base with symbol draws followed by alphanumeric draws.
func (g *Generator) compose(base []byte) error {
	symbols := g.params.SymbolCount()
	for i := range base {
		pool := Alphanumeric
		if i < symbols {
			pool = Symbols
		}
		k, err := g.src.IntN(len(pool))
		if err != nil {
			return err
		}
		base[i] = pool[k]
	}
	return nil
}

// shuffle is Fisher–Yates from the last index down to 1.
func (g *Generator) shuffle(base []byte) error {
	for i := len(base) - 1; i > 0; i-- {
		j, err := g.src.IntN(i + 1)
		if err != nil {
			return err
		}
		base[i], base[j] = base[j], base[i]
	}
	return nil
}

var _ domain.NoiseGenerator = (*Generator)(nil)
