// Package config loads and saves the cryptonoise YAML configuration.
//
// The file is optional. Load starts from Default and overlays whatever keys
// the file sets; unknown keys are rejected. Save writes through a temp file
// and rename so a crash never leaves a truncated config behind.
package config
