package noise

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParams is returned by Params.Validate.
var ErrInvalidParams = errors.New("invalid noise parameters")

// Defaults for Params.
const (
	DefaultBaseLength  = 64
	DefaultSymbolRatio = 0.7
	DefaultMinLength   = 15
	DefaultMaxLength   = 20

	// MaxBaseLength caps the base so one generation stays a bounded
	// amount of work and memory.
	MaxBaseLength = 1 << 16
)

// Params shapes a generation. The zero value is invalid; start from
// DefaultParams.
type Params struct {
	BaseLength  int     `yaml:"base_length"`
	SymbolRatio float64 `yaml:"symbol_ratio"`
	MinLength   int     `yaml:"min_length"`
	MaxLength   int     `yaml:"max_length"`
}

// DefaultParams returns the 64/0.7/15..20 shape.
func DefaultParams() Params {
	return Params{
		BaseLength:  DefaultBaseLength,
		SymbolRatio: DefaultSymbolRatio,
		MinLength:   DefaultMinLength,
		MaxLength:   DefaultMaxLength,
	}
}

// Validate reports whether p describes a generation that can always succeed.
func (p Params) Validate() error {
	switch {
	case p.BaseLength <= 0:
		return fmt.Errorf("%w: base length %d must be positive", ErrInvalidParams, p.BaseLength)
	case p.BaseLength > MaxBaseLength:
		return fmt.Errorf("%w: base length %d exceeds %d", ErrInvalidParams, p.BaseLength, MaxBaseLength)
	case math.IsNaN(p.SymbolRatio) || p.SymbolRatio < 0 || p.SymbolRatio > 1:
		return fmt.Errorf("%w: symbol ratio %v must be within [0, 1]", ErrInvalidParams, p.SymbolRatio)
	case p.MinLength < 1:
		return fmt.Errorf("%w: min length %d must be at least 1", ErrInvalidParams, p.MinLength)
	case p.MaxLength < p.MinLength:
		return fmt.Errorf("%w: max length %d below min length %d", ErrInvalidParams, p.MaxLength, p.MinLength)
	case p.MaxLength > p.BaseLength:
		return fmt.Errorf("%w: max length %d exceeds base length %d", ErrInvalidParams, p.MaxLength, p.BaseLength)
	}
	return nil
}

// SymbolCount is the number of base positions drawn from Symbols.
func (p Params) SymbolCount() int {
	return int(math.Floor(float64(p.BaseLength) * p.SymbolRatio))
}

// AlphanumericCount is the number of base positions drawn from Alphanumeric.
func (p Params) AlphanumericCount() int {
	return p.BaseLength - p.SymbolCount()
}
