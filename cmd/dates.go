package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tooldex/tooldex/catalog"
	"github.com/tooldex/tooldex/render"
	"github.com/tooldex/tooldex/utils"
)

var datesCmd = &cobra.Command{
	Use:   "dates",
	Short: "Build the last-changed-date lookup for the runtime footer",
	Long: `Projects the gathered history map down to a file-to-date lookup
(dates.json) consumed by the footer script on every page.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDates(handleRootCommand(cmd))
	},
}

func init() {
	rootCmd.AddCommand(datesCmd)
}

func runDates(deps *RootDependencies) error {
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

	dates := render.ProjectDates(histories)
	changed, err := catalog.SaveJSON(deps.outputPath(cfg.Output.Dates), dates)
	if err != nil {
		return err
	}
	reportBuilt(cfg.Output.Dates, fmt.Sprintf("%d entries", len(dates)), changed)
	return nil
}
