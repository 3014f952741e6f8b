package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/tooldex/tooldex/catalog"
	"github.com/tooldex/tooldex/config"
	"github.com/tooldex/tooldex/constants/lipgloss"
	"github.com/tooldex/tooldex/gitlog"
)

// RootDependencies holds everything a subcommand needs to run one pipeline
// stage.
type RootDependencies struct {
	Config  *config.Config
	Cwd     string
	SiteDir string
	Git     *gitlog.GitHistory
	Builder *catalog.Builder
}

var rootCmd = &cobra.Command{
	Use:   "tooldex",
	Short: "Build the tool catalog pages from git history",
	Long: `Tooldex maintains a catalog of small tools published as static HTML pages.
It derives titles, descriptions, and creation/update dates from the git
history of each page rather than hand-maintained front matter, and renders
three cross-linked views from that single source: a by-month archive, a
development colophon, and the homepage with its recently-changed digest.

Each subcommand runs one stage of the batch pipeline; 'tooldex build' runs
them all in order.`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
		os.Exit(1)
	}
}

func init() {
	config.InitFlags(rootCmd)
}

// handleRootCommand loads configuration and wires the shared dependencies.
func handleRootCommand(cmd *cobra.Command) *RootDependencies {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Error getting current directory: %v", err)))
		return nil
	}

	cfg := config.LoadConfigs(cmd.Root(), cwd)

	siteDir := cfg.SiteDir
	if !filepath.IsAbs(siteDir) {
		siteDir = filepath.Join(cwd, siteDir)
	}

	git := gitlog.NewGitHistory(siteDir)

	return &RootDependencies{
		Config:  cfg,
		Cwd:     cwd,
		SiteDir: siteDir,
		Git:     git,
		Builder: catalog.NewBuilder(siteDir, git, cfg.ExcludedFiles),
	}
}

// outputPath resolves an output filename inside the site directory.
func (r *RootDependencies) outputPath(name string) string {
	return filepath.Join(r.SiteDir, name)
}

// buildSpinner returns the spinner used while a stage is running.
func buildSpinner() *pterm.SpinnerPrinter {
	return pterm.DefaultSpinner.
		WithStyle(pterm.NewStyle(pterm.FgCyan)).
		WithSequence("⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏").
		WithDelay(100).
		WithRemoveWhenDone(true)
}

// skipMissingUpstream prints the skip diagnostic for a missing input file.
// Missing upstreams are not failures: other renderers stay runnable.
func skipMissingUpstream(file string) {
	fmt.Println(lipgloss.Yellow.Render(fmt.Sprintf("%s not found - run 'tooldex gather' first", file)))
}

// reportBuilt prints the per-stage completion line.
func reportBuilt(name, detail string, changed bool) {
	if !changed {
		fmt.Println(lipgloss.Gray.Render(fmt.Sprintf("Built %s with %s (unchanged)", name, detail)))
		return
	}
	fmt.Println(lipgloss.Green.Render(fmt.Sprintf("✓ Built %s with %s", name, detail)))
}
