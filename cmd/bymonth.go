package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tooldex/tooldex/catalog"
	"github.com/tooldex/tooldex/render"
	"github.com/tooldex/tooldex/utils"
)

var byMonthCmd = &cobra.Command{
	Use:   "by-month",
	Short: "Build the by-month archive page",
	Long: `Groups the tool catalog by creation month and writes the archive page,
newest month first with each month reading oldest to newest.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runByMonth(handleRootCommand(cmd))
	},
}

func init() {
	rootCmd.AddCommand(byMonthCmd)
}

func runByMonth(deps *RootDependencies) error {
	if deps == nil {
		return fmt.Errorf("failed to initialize dependencies")
	}
	cfg := deps.Config

	toolsPath := deps.outputPath(cfg.Output.Tools)
	if !utils.FileExists(toolsPath) {
		skipMissingUpstream(cfg.Output.Tools)
		return nil
	}

	tools, err := catalog.LoadTools(toolsPath)
	if err != nil {
		return err
	}

	page, months, err := render.RenderByMonth(tools)
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", cfg.Output.ByMonth, err)
	}

	changed, err := utils.WriteOutput(deps.outputPath(cfg.Output.ByMonth), page)
	if err != nil {
		return err
	}
	reportBuilt(cfg.Output.ByMonth, fmt.Sprintf("%d months", months), changed)
	return nil
}
