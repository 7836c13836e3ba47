package main

import (
	"fmt"

	"github.com/mass10/cargobump/internal/crate"
	"github.com/mass10/cargobump/internal/lock"
	"github.com/mass10/cargobump/internal/manifest"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify the manifest parses and the lock file agrees on the version",
		RunE:  runCheck,
	}
}

func runCheck(cmd *cobra.Command, _ []string) error {
	dir, _ := cmd.Flags().GetString("dir")
	out := cmd.OutOrStdout()
	ok := true

	ctx, err := crate.Load(dir)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(out, "Checking %s... ", crate.ManifestName)
	mf, err := manifest.Load(ctx.ManifestPath)
	if err != nil {
		_, _ = fmt.Fprintln(out, "FAILED")
		_, _ = fmt.Fprintf(out, "  %v\n", err)
		ok = false
	} else {
		_, _ = fmt.Fprintf(out, "ok (%s %s)\n", mf.Package.Name, mf.Package.Version)
	}

	_, _ = fmt.Fprintf(out, "Checking %s... ", crate.LockName)
	switch {
	case !ctx.HasLock():
		_, _ = fmt.Fprintln(out, "not present (skipped)")
	case mf == nil:
		_, _ = fmt.Fprintln(out, "skipped (manifest unreadable)")
	default:
		lf, err := lock.Load(ctx.LockPath)
		if err != nil {
			_, _ = fmt.Fprintln(out, "FAILED")
			_, _ = fmt.Fprintf(out, "  %v\n", err)
			ok = false
			break
		}
		entry, found := lf.FindPackage(mf.Package.Name)
		switch {
		case !found:
			_, _ = fmt.Fprintf(out, "no entry for %s\n", mf.Package.Name)
			ok = false
		case entry.Version != mf.Package.Version:
			_, _ = fmt.Fprintf(out, "out of sync (manifest %s, lock %s)\n", mf.Package.Version, entry.Version)
			ok = false
		default:
			_, _ = fmt.Fprintln(out, "ok")
		}
	}

	if ok {
		_, _ = fmt.Fprintln(out, "All checks passed.")
		return nil
	}
	return fmt.Errorf("check failed")
}
