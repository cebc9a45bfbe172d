package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"cryptonoise/internal/config"
)

func configCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the config file",
	}
	cmd.AddCommand(configInitCmd(opts), configShowCmd(opts))
	return cmd
}

// config init: write defaults to the config path.
func configInitCmd(opts *options) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Save(opts.configPath, config.Default(), force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Config written.\nPath: %s\n", opts.configPath)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

// config show: print the effective configuration.
func configShowCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.load(cmd); err != nil {
				return err
			}
			if err := opts.settings.Validate(); err != nil {
				return err
			}
			b, err := config.Marshal(opts.settings)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
}
