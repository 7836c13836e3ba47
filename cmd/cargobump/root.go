package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "cargobump",
		Short:         "Patch-version bumper for Cargo manifests",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("dir", ".", "Crate directory containing Cargo.toml")

	cmd.AddCommand(
		newBumpCmd(),
		newSetCmd(),
		newShowCmd(),
		newCheckCmd(),
	)

	return cmd
}
