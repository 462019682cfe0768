package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"langcache/internal/manifest"
)

const timeDisplayLayout = "2006-01-02 15:04:05"

var entryColumns = []column{
	{header: "Kind"},
	{header: "Target"},
	{header: "Language"},
	{header: "Path"},
	{header: "Bytes", right: true},
	{header: "Written"},
}

var runColumns = []column{
	{header: "ID"},
	{header: "Pipeline"},
	{header: "Status"},
	{header: "Started"},
	{header: "Duration", right: true},
	{header: "Error"},
}

func newCacheCommand(ctx *commandContext) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect the cache manifest",
	}

	cacheCmd.AddCommand(newCacheListCommand(ctx))
	cacheCmd.AddCommand(newCacheRunsCommand(ctx))

	return cacheCmd
}

func (c *commandContext) withManifest(cmd *cobra.Command, fn func(*manifest.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	if !cfg.Manifest.Enabled {
		return errors.New("cache manifest is disabled (set [manifest] enabled = true)")
	}
	store, err := manifest.Open(cmd.Context(), cfg.ManifestPath())
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(store)
}

func newCacheListCommand(ctx *commandContext) *cobra.Command {
	var kindFlag string
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cached language entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := manifest.Kind(strings.ToLower(strings.TrimSpace(kindFlag)))
			switch kind {
			case "", manifest.KindApplication, manifest.KindApplet:
			default:
				return fmt.Errorf("unknown kind %q (use application or applet)", kindFlag)
			}

			return ctx.withManifest(cmd, func(store *manifest.Store) error {
				entries, err := store.ListEntries(cmd.Context())
				if err != nil {
					return err
				}
				if kind != "" {
					filtered := entries[:0]
					for _, e := range entries {
						if e.Kind == kind {
							filtered = append(filtered, e)
						}
					}
					entries = filtered
				}

				if jsonOut {
					return writeJSON(cmd.OutOrStdout(), entries)
				}
				out := cmd.OutOrStdout()
				if len(entries) == 0 {
					fmt.Fprintln(out, "No cache entries recorded")
					return nil
				}
				rows := make([][]string, 0, len(entries))
				var total int64
				for _, e := range entries {
					total += e.Bytes
					rows = append(rows, []string{
						string(e.Kind),
						e.Target,
						languageLabel(e.Language),
						e.Path,
						strconv.FormatInt(e.Bytes, 10),
						formatTimestamp(e.WrittenAt),
					})
				}
				fmt.Fprintln(out, renderTable(entryColumns, rows,
					[]string{"", "", "", fmt.Sprintf("%d entries", len(entries)), strconv.FormatInt(total, 10), ""}))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&kindFlag, "kind", "", "Only show entries of this kind (application or applet)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

func newCacheRunsCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Show recent generate runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withManifest(cmd, func(store *manifest.Store) error {
				runs, err := store.ListRuns(cmd.Context(), limit)
				if err != nil {
					return err
				}
				if jsonOut {
					return writeJSON(cmd.OutOrStdout(), runs)
				}
				out := cmd.OutOrStdout()
				if len(runs) == 0 {
					fmt.Fprintln(out, "No runs recorded")
					return nil
				}
				rows := make([][]string, 0, len(runs))
				for _, r := range runs {
					rows = append(rows, []string{
						r.ID,
						titleWord(r.Pipeline),
						titleWord(string(r.Status)),
						formatTimestamp(r.StartedAt),
						formatDuration(r),
						r.Error,
					})
				}
				fmt.Fprintln(out, renderTable(runColumns, rows, nil))
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Number of runs to show")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(timeDisplayLayout)
}

func formatDuration(r manifest.Run) string {
	if r.FinishedAt.IsZero() || r.StartedAt.IsZero() {
		return "-"
	}
	return r.FinishedAt.Sub(r.StartedAt).Round(time.Millisecond).String()
}
