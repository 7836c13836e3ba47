package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mass10/cargobump/internal/bump"
	"github.com/mass10/cargobump/internal/crate"
	"github.com/mass10/cargobump/internal/diag"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set [version]",
		Short: "Rewrite the crate version to an explicit value",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSet,
	}
	addRewriteFlags(cmd)
	return cmd
}

func runSet(cmd *cobra.Command, args []string) error {
	var target string
	if len(args) == 1 {
		target = strings.TrimSpace(args[0])
	} else {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("interactive set requires a TTY; pass the version as an argument")
		}
		v, err := promptVersion(currentVersion(cmd))
		if err != nil {
			return fmt.Errorf("interactive set: %w", err)
		}
		target = v
	}
	if target == "" {
		return fmt.Errorf("version must not be empty")
	}
	return rewriteVersion(cmd, bump.Explicit(target))
}

// currentVersion is a best-effort read of the crate's declared version, used
// as the prompt placeholder. Failures just leave the placeholder generic.
func currentVersion(cmd *cobra.Command) string {
	dir, _ := cmd.Flags().GetString("dir")
	ctx, err := crate.Load(dir)
	if err != nil {
		return ""
	}
	v, ok, err := bump.DetectVersion(ctx.ManifestPath, diag.Discard)
	if err != nil || !ok {
		return ""
	}
	return v
}
