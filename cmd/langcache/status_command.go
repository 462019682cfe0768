package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"langcache/internal/manifest"
	"langcache/internal/preflight"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show configuration and dependency health",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			p := newStatusPrinter(cmd.OutOrStdout())

			p.section("Configuration")
			p.line("Cache root", statusInfo, cfg.CacheDir())
			p.line("Applications", statusInfo, strconv.Itoa(len(cfg.TranslatedApplications)))
			p.line("Applets", statusInfo, strconv.Itoa(len(cfg.Applets)))
			p.line("API client", statusInfo, cfg.API.Client)
			p.line("Manifest", statusInfo, yesNo(cfg.Manifest.Enabled))
			p.line("Mirror", statusInfo, yesNo(cfg.Mirror.Enabled))
			p.blank()

			p.section("Checks")
			results := preflight.RunAll(cmd.Context(), cfg, ctx.registry)
			failed := 0
			for _, r := range results {
				kind := statusOK
				if !r.Passed {
					kind = statusError
					failed++
				}
				p.line(r.Name, kind, r.Detail)
			}

			if cfg.Manifest.Enabled {
				p.blank()
				p.section("Last run")
				printLastRun(cmd, ctx, p)
			}

			if failed > 0 {
				return fmt.Errorf("%d check(s) failed", failed)
			}
			return nil
		},
	}
}

func printLastRun(cmd *cobra.Command, ctx *commandContext, p *statusPrinter) {
	err := ctx.withManifest(cmd, func(store *manifest.Store) error {
		runs, err := store.ListRuns(cmd.Context(), 1)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			p.line("Run", statusInfo, "none recorded")
			return nil
		}
		r := runs[0]
		kind := statusInfo
		switch r.Status {
		case manifest.RunSucceeded:
			kind = statusOK
		case manifest.RunFailed:
			kind = statusError
		}
		detail := fmt.Sprintf("%s %s at %s", titleWord(r.Pipeline), r.Status, formatTimestamp(r.StartedAt))
		if r.Error != "" {
			detail += ": " + r.Error
		}
		p.line("Run", kind, detail)
		return nil
	})
	if err != nil {
		p.line("Run", statusWarn, err.Error())
	}
}
