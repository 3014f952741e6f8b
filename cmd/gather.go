package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tooldex/tooldex/catalog"
	"github.com/tooldex/tooldex/constants/lipgloss"
)

var gatherCmd = &cobra.Command{
	Use:   "gather",
	Short: "Gather commit history and metadata for every tracked tool page",
	Long: `Queries the rename-following git log of every tool page under the site
directory, extracts embedded titles and companion descriptions, and writes
the full history map (gathered_links.json) and the tool catalog (tools.json)
the render subcommands consume. Pages with no recorded commits are skipped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGather(handleRootCommand(cmd))
	},
}

func init() {
	rootCmd.AddCommand(gatherCmd)
}

func runGather(deps *RootDependencies) error {
	if deps == nil {
		return fmt.Errorf("failed to initialize dependencies")
	}

	if err := deps.Git.CheckGitRepo(); err != nil {
		// Untracked pages yield empty histories and drop out downstream;
		// the run still completes with empty outputs.
		fmt.Println(lipgloss.Yellow.Render("Warning: site directory is not a git repository, all histories will be empty"))
	}

	spinner, _ := buildSpinner().Start("Gathering page histories...")

	pages, err := deps.Builder.DiscoverPages()
	if err != nil {
		spinner.Stop()
		return fmt.Errorf("failed to scan site directory: %w", err)
	}

	histories, tools := deps.Builder.Build(pages)
	spinner.Stop()
	fmt.Print("\r")

	cfg := deps.Config
	if _, err := catalog.SaveJSON(deps.outputPath(cfg.Output.GatheredLinks), histories); err != nil {
		return err
	}
	if _, err := catalog.SaveJSON(deps.outputPath(cfg.Output.Tools), tools); err != nil {
		return err
	}

	fmt.Println(lipgloss.Green.Render(fmt.Sprintf("✓ Gathered metadata for %d tools", len(tools))))
	return nil
}
