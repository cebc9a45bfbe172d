package domain

// mask is what the presentation layer shows in place of a hidden value.
const mask = "•••••"

// Noise is a generated one-time secret fragment.
type Noise string

func (n Noise) String() string { return string(n) }

// Masked returns the privacy mask shown while the value is hidden.
// An empty Noise masks to the empty string so nothing looks valid.
func (n Noise) Masked() string {
	if n == "" {
		return ""
	}
	return mask
}

// Trace records the intermediate state of one generation.
// It exists for tests; production calls never retain the base sequence.
type Trace struct {
	Base   string // shuffled base sequence
	Start  int    // offset of the extracted window
	Length int    // target length of the window
	Noise  Noise
}
