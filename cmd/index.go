package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tooldex/tooldex/catalog"
	"github.com/tooldex/tooldex/catalog/models"
	"github.com/tooldex/tooldex/constants/lipgloss"
	"github.com/tooldex/tooldex/render"
	"github.com/tooldex/tooldex/utils"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Build the homepage from the README",
	Long: `Converts the README to HTML and writes the homepage, injecting the
recently added / recently updated digest between the marker comments or,
when the markers are absent, after the first heading.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIndex(handleRootCommand(cmd))
	},
}

func init() {
	rootCmd.AddCommand(indexCmd)
}

func runIndex(deps *RootDependencies) error {
	if deps == nil {
		return fmt.Errorf("failed to initialize dependencies")
	}
	cfg := deps.Config

	readmePath := cfg.ReadmePath
	if !filepath.IsAbs(readmePath) {
		readmePath = filepath.Join(deps.SiteDir, readmePath)
	}
	if !utils.FileExists(readmePath) {
		fmt.Println(lipgloss.Yellow.Render(fmt.Sprintf("%s not found", cfg.ReadmePath)))
		return nil
	}

	source, err := os.ReadFile(readmePath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", cfg.ReadmePath, err)
	}

	// The digest degrades to nothing when the catalog has not been
	// gathered yet; the homepage still builds.
	var tools []models.Tool
	toolsPath := deps.outputPath(cfg.Output.Tools)
	if utils.FileExists(toolsPath) {
		if tools, err = catalog.LoadTools(toolsPath); err != nil {
			return err
		}
	}

	page, err := render.RenderIndex(source, tools, render.NewMarkdownConverter(), cfg.RecentLimit)
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", cfg.Output.Index, err)
	}

	changed, err := utils.WriteOutput(deps.outputPath(cfg.Output.Index), page)
	if err != nil {
		return err
	}
	if changed {
		fmt.Println(lipgloss.Green.Render(fmt.Sprintf("✓ Built %s", cfg.Output.Index)))
	} else {
		fmt.Println(lipgloss.Gray.Render(fmt.Sprintf("Built %s (unchanged)", cfg.Output.Index)))
	}
	return nil
}
