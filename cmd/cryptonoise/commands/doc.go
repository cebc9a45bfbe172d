// Package commands defines the cryptonoise CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - generate       Produce one or more noise values
//   - config init    Write the default config file
//   - config show    Print the effective configuration
//
// # Output
//
// On a terminal, generated values are masked and identified by fingerprint
// unless --reveal is given. When stdout is redirected the raw values are
// written one per line so they can be piped. --copy places the values on the
// system clipboard in either case.
//
// # Implementation
//
// The root command loads the config file, applies flag overrides and builds
// the dependency graph before any subcommand runs. Diagnostics go to stderr
// through log/slog; values never do.
package commands
