package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"cryptonoise/internal/crypto"
)

// generate [-n count]: print fresh noise values.
func generateCmd(opts *options) *cobra.Command {
	var (
		count   int
		reveal  bool
		copyOut bool
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate cryptographic noise",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.load(cmd); err != nil {
				return err
			}
			gen := &opts.settings.Generator
			flags := cmd.Flags()
			if flags.Changed("base-length") {
				gen.BaseLength, _ = flags.GetInt("base-length")
			}
			if flags.Changed("symbol-ratio") {
				gen.SymbolRatio, _ = flags.GetFloat64("symbol-ratio")
			}
			if flags.Changed("min-length") {
				gen.MinLength, _ = flags.GetInt("min-length")
			}
			if flags.Changed("max-length") {
				gen.MaxLength, _ = flags.GetInt("max-length")
			}
			if err := opts.build(); err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			values, err := opts.wire.Noise.Generate(ctx, count)
			if err != nil {
				return err
			}

			if copyOut {
				lines := make([]string, len(values))
				for i, v := range values {
					lines[i] = v.String()
				}
				if err := opts.wire.Clipboard.Copy(strings.Join(lines, "\n")); err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Copied %d value(s) to clipboard.\n", len(values))
			}

			out := cmd.OutOrStdout()
			show := reveal || !opts.terminal(out)
			for _, v := range values {
				switch fp := crypto.Fingerprint(v); {
				case show:
					fmt.Fprintln(out, v)
				case fp == "":
					fmt.Fprintln(out, v.Masked())
				default:
					fmt.Fprintf(out, "%s  %s\n", v.Masked(), fp)
				}
			}
			if !show && !copyOut {
				fmt.Fprintln(cmd.ErrOrStderr(), "hidden; use --reveal to show or --copy to copy")
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of values to generate")
	cmd.Flags().BoolVar(&reveal, "reveal", false, "print values even on a terminal")
	cmd.Flags().BoolVar(&copyOut, "copy", false, "copy values to the system clipboard")
	cmd.Flags().Int("base-length", 0, "override generator.base_length")
	cmd.Flags().Float64("symbol-ratio", 0, "override generator.symbol_ratio")
	cmd.Flags().Int("min-length", 0, "override generator.min_length")
	cmd.Flags().Int("max-length", 0, "override generator.max_length")
	return cmd
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
