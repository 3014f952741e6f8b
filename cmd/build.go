package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tooldex/tooldex/constants/lipgloss"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Run the full pipeline: gather, then every generated page",
	Long: `Runs gather and then all four outputs in order: the by-month archive,
the colophon, the homepage, and the dates lookup. A renderer that fails does
not stop the remaining ones.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBuild(handleRootCommand(cmd))
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

func runBuild(deps *RootDependencies) error {
	if deps == nil {
		return fmt.Errorf("failed to initialize dependencies")
	}

	fmt.Println(lipgloss.BoxStyle.Render(fmt.Sprintf("tooldex build  %s", deps.SiteDir)))

	// Everything downstream reads the gather outputs, so a gather failure
	// ends the run.
	if err := runGather(deps); err != nil {
		return err
	}

	steps := []struct {
		name string
		run  func(*RootDependencies) error
	}{
		{"by-month", runByMonth},
		{"colophon", runColophon},
		{"index", runIndex},
		{"dates", runDates},
	}

	failed := 0
	for _, step := range steps {
		if err := step.run(deps); err != nil {
			failed++
			fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%s: %v", step.name, err)))
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d build steps failed", failed, len(steps))
	}
	fmt.Println(lipgloss.Info.Render("Site build complete"))
	return nil
}
