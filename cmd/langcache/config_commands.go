package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"langcache/internal/config"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigValidateCommand(ctx))
	configCmd.AddCommand(newConfigInitCommand())
	configCmd.AddCommand(newConfigShowCommand(ctx))

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Write a sample configuration file",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := initTarget(targetPath)
			if err != nil {
				return err
			}
			if !overwrite {
				switch _, err := os.Stat(target); {
				case err == nil:
					return fmt.Errorf("%s already exists; pass --overwrite to replace it", target)
				case !errors.Is(err, fs.ErrNotExist):
					return fmt.Errorf("inspect %s: %w", target, err)
				}
			}
			if err := config.CreateSample(target); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote sample configuration to %s\n", target)
			fmt.Fprintln(out, "Set api.base_url (or LANGCACHE_API_URL) and list your translated_applications, then run `langcache generate all`.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace an existing file")
	return cmd
}

// initTarget resolves where config init writes, defaulting to the standard
// per-user location.
func initTarget(flagValue string) (string, error) {
	if strings.TrimSpace(flagValue) == "" {
		target, err := config.DefaultConfigPath()
		if err != nil {
			return "", fmt.Errorf("default config path: %w", err)
		}
		return target, nil
	}
	target, err := config.ExpandPath(strings.TrimSpace(flagValue))
	if err != nil {
		return "", fmt.Errorf("config path: %w", err)
	}
	return target, nil
}

func newConfigValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:         "validate",
		Short:       "Validate configuration file",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, exists, err := config.Load(ctx.configPath())
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if err := cfg.ValidateAPI(); err != nil {
				return err
			}
			if !ctx.registry.Has(cfg.API.Client) {
				return fmt.Errorf("api.client: unknown implementation %q (available: %s)", cfg.API.Client, strings.Join(ctx.registry.Names(), ", "))
			}
			out := cmd.OutOrStdout()
			source := path
			if !exists {
				source = path + " (not found, using defaults)"
			}
			fmt.Fprintf(out, "Config: %s\n", source)
			fmt.Fprintf(out, "Applications: %d, applets: %d\n", len(cfg.TranslatedApplications), len(cfg.Applets))
			fmt.Fprintln(out, "Configuration valid")
			return nil
		},
	}
}

func newConfigShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			redacted := cfg.Redacted()
			data, err := config.Marshal(&redacted)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
