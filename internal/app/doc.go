// Package app wires application dependencies for the CLI.
//
// It builds the secure random source, the noise generator, the batch service
// and the clipboard from Config, exposing them via the Wire struct for
// commands to use.
package app
