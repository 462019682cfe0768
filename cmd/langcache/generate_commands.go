package main

import (
	"context"

	"github.com/spf13/cobra"

	"langcache/internal/langbatch"
)

func newGenerateCommand(ctx *commandContext) *cobra.Command {
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Fetch language resources into the cache",
	}

	generateCmd.AddCommand(newGenerateRunCommand(ctx, "languages",
		"Generate application language files",
		(*langbatch.Generator).GenerateLanguageFiles))
	generateCmd.AddCommand(newGenerateRunCommand(ctx, "applets",
		"Generate applet language XML files",
		(*langbatch.Generator).GenerateAppletLanguageXMLFiles))
	generateCmd.AddCommand(newGenerateRunCommand(ctx, "all",
		"Generate application language files, then applet XML files",
		(*langbatch.Generator).GenerateAll))

	return generateCmd
}

func newGenerateRunCommand(ctx *commandContext, use, short string, run func(*langbatch.Generator, context.Context) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withGenerator(cmd, func(runCtx context.Context, gen *langbatch.Generator) error {
				return run(gen, runCtx)
			})
		},
	}
}
