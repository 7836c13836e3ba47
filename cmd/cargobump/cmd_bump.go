package main

import (
	"encoding/json"
	"fmt"

	"github.com/mass10/cargobump/internal/bump"
	"github.com/mass10/cargobump/internal/crate"
	"github.com/mass10/cargobump/internal/diag"
	"github.com/mass10/cargobump/internal/git"
	"github.com/spf13/cobra"
)

func newBumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bump",
		Short: "Increment the patch field of the crate version",
		RunE:  runBump,
	}
	addRewriteFlags(cmd)
	return cmd
}

func runBump(cmd *cobra.Command, _ []string) error {
	return rewriteVersion(cmd, bump.Increment())
}

// addRewriteFlags registers the flags shared by bump and set.
func addRewriteFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("dry-run", false, "Report what would change without writing")
	cmd.Flags().Bool("commit", false, "Commit the rewritten files with the new version as message")
	cmd.Flags().Bool("tag", false, "Tag the commit as v<version> (implies --commit)")
	cmd.Flags().Bool("json", false, "Output the result as JSON")
}

// rewriteVersion runs the rewrite pipeline for bump and set and renders the
// result.
func rewriteVersion(cmd *cobra.Command, source bump.Source) error {
	dir, _ := cmd.Flags().GetString("dir")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	commit, _ := cmd.Flags().GetBool("commit")
	tag, _ := cmd.Flags().GetBool("tag")
	asJSON, _ := cmd.Flags().GetBool("json")

	if tag {
		commit = true
	}
	if commit && dryRun {
		return fmt.Errorf("--commit cannot be combined with --dry-run")
	}

	ctx, err := crate.Load(dir)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	sinkOut := out
	if asJSON {
		// Keep stdout machine-readable.
		sinkOut = cmd.ErrOrStderr()
	}

	res, err := bump.Run(bump.Options{
		ManifestPath: ctx.ManifestPath,
		LockPath:     ctx.LockPath,
		Source:       source,
		DryRun:       dryRun,
		Sink:         diag.New(sinkOut),
	})
	if err != nil {
		return err
	}

	if commit && len(res.Updated) > 0 {
		if err := commitBump(ctx, res, tag); err != nil {
			return err
		}
	}

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	if len(res.Updated) == 0 {
		_, _ = fmt.Fprintln(out, "No changes.")
		return nil
	}

	if dryRun {
		_, _ = fmt.Fprintf(out, "Would update version %s -> %s\n", res.OldVersion, res.NewVersion)
	} else {
		_, _ = fmt.Fprintf(out, "Updated version %s -> %s\n", res.OldVersion, res.NewVersion)
	}
	for _, fc := range res.Updated {
		_, _ = fmt.Fprintf(out, "  %s (%d line(s))\n", fc.Path, len(fc.Lines))
	}
	return nil
}

// commitBump stages the rewritten files and records the bump as a commit,
// optionally tagging it as v<version>.
func commitBump(ctx *crate.Context, res bump.Result, tag bool) error {
	if !git.IsInstalled() {
		return fmt.Errorf("git is not installed")
	}
	if !git.IsRepo(ctx.Dir) {
		return fmt.Errorf("%s is not a git repository", ctx.Dir)
	}

	files := make([]string, 0, len(res.Updated))
	for _, fc := range res.Updated {
		files = append(files, fc.Path)
	}
	if err := git.Add(ctx.Dir, files...); err != nil {
		return err
	}
	if err := git.Commit(ctx.Dir, res.NewVersion); err != nil {
		return err
	}
	if tag {
		if err := git.Tag(ctx.Dir, "v"+res.NewVersion); err != nil {
			return err
		}
	}
	return nil
}
