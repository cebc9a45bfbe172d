package domain

// RandomSource supplies uniformly distributed values from a secure source.
type RandomSource interface {
	// IntN returns a uniform integer in [0, n).
	IntN(n int) (int, error)
	// Byte returns one uniform byte.
	Byte() (byte, error)
}

// NoiseGenerator produces one noise value per call.
type NoiseGenerator interface {
	Generate() (Noise, error)
}

// Clipboard receives values the user asked to copy.
type Clipboard interface {
	Copy(text string) error
}
