// Package crypto exposes the secure randomness primitives used by cryptonoise.
//
// Contents
//
//   - A RandomSource over crypto/rand.Reader with unbiased rejection
//     sampling (NewSecureSource, NewSource, Source.IntN, Source.Byte)
//   - Inclusive range selection on top of any source (IntRange)
//   - Short fingerprints of generated values for display/logging (Fingerprint)
//
// # Notes
//
// Source never falls back to a non-cryptographic generator. A failing reader
// surfaces as ErrEntropyUnavailable and callers must treat it as fatal for the
// operation in progress.
package crypto
