package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tooldex/tooldex/catalog"
	"github.com/tooldex/tooldex/catalog/models"
	"github.com/tooldex/tooldex/render"
	"github.com/tooldex/tooldex/utils"
)

var colophonCmd = &cobra.Command{
	Use:   "colophon",
	Short: "Build the development-history colophon page",
	Long: `Writes the colophon page: one section per tool, sorted by most recent
activity, with the full commit history of each page in a collapsible list.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runColophon(handleRootCommand(cmd))
	},
}

func init() {
	rootCmd.AddCommand(colophonCmd)
}

func runColophon(deps *RootDependencies) error {
	if deps == nil {
		return fmt.Errorf("failed to initialize dependencies")
	}
	cfg := deps.Config

	gatheredPath := deps.outputPath(cfg.Output.GatheredLinks)
	if !utils.FileExists(gatheredPath) {
		skipMissingUpstream(cfg.Output.GatheredLinks)
		return nil
	}

	histories, err := catalog.LoadHistories(gatheredPath)
	if err != nil {
		return err
	}

	// Titles and descriptions come from the catalog when it is present;
	// without it every entry falls back to its slug.
	var tools []models.Tool
	toolsPath := deps.outputPath(cfg.Output.Tools)
	if utils.FileExists(toolsPath) {
		if tools, err = catalog.LoadTools(toolsPath); err != nil {
			return err
		}
	}

	page, count, err := render.RenderColophon(histories, tools)
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", cfg.Output.Colophon, err)
	}

	changed, err := utils.WriteOutput(deps.outputPath(cfg.Output.Colophon), page)
	if err != nil {
		return err
	}
	reportBuilt(cfg.Output.Colophon, fmt.Sprintf("%d tools", count), changed)
	return nil
}
