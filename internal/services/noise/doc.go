// Package noise hands out batches of noise values.
//
// It fans generation out over a bounded worker group and logs each value by
// fingerprint only. The values themselves never reach the logger.
package noise
