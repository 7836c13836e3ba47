package main

import (
	"encoding/json"

	"github.com/mass10/cargobump/internal/crate"
	"github.com/mass10/cargobump/internal/lock"
	"github.com/mass10/cargobump/internal/manifest"
	"github.com/mass10/cargobump/internal/ui"
	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the crate name and version",
		RunE:  runShow,
	}
	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}

type crateInfo struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Edition     string `json:"edition,omitempty"`
	LockVersion string `json:"lock_version,omitempty"`
}

func runShow(cmd *cobra.Command, _ []string) error {
	dir, _ := cmd.Flags().GetString("dir")
	asJSON, _ := cmd.Flags().GetBool("json")

	ctx, err := crate.Load(dir)
	if err != nil {
		return err
	}
	mf, err := manifest.Load(ctx.ManifestPath)
	if err != nil {
		return err
	}

	info := crateInfo{
		Name:    mf.Package.Name,
		Version: mf.Package.Version,
		Edition: mf.Package.Edition,
	}
	if ctx.HasLock() {
		lf, err := lock.Load(ctx.LockPath)
		if err != nil {
			return err
		}
		if p, ok := lf.FindPackage(mf.Package.Name); ok {
			info.LockVersion = p.Version
		}
	}

	out := cmd.OutOrStdout()

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}

	kv := ui.NewKV(out)
	kv.Row("NAME", info.Name)
	kv.Row("VERSION", info.Version)
	if info.Edition != "" {
		kv.Row("EDITION", info.Edition)
	}
	if info.LockVersion != "" {
		kv.Row("LOCK", info.LockVersion)
	}
	return kv.Flush()
}
