package config

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tooldex/tooldex/constants/lipgloss"
)

// Config represents the structure of the configuration file
type Config struct {
	Version       string        `mapstructure:"version"`
	SiteDir       string        `mapstructure:"site_dir"`
	ReadmePath    string        `mapstructure:"readme_path"`
	RecentLimit   int           `mapstructure:"recent_limit"`
	ExcludedFiles []string      `mapstructure:"excluded_files"`
	Output        *OutputConfig `mapstructure:"output"`
}

// OutputConfig names the files each pipeline stage writes.
type OutputConfig struct {
	GatheredLinks string `mapstructure:"gathered_links"`
	Tools         string `mapstructure:"tools"`
	Dates         string `mapstructure:"dates"`
	ByMonth       string `mapstructure:"by_month"`
	Colophon      string `mapstructure:"colophon"`
	Index         string `mapstructure:"index"`
}

// DefaultConfig values. The excluded files are the generated pages
// themselves, which must never become catalog entries.
var DefaultConfig = Config{
	Version:       "1.2.0",
	SiteDir:       ".",
	ReadmePath:    "README.md",
	RecentLimit:   5,
	ExcludedFiles: []string{"index.html", "colophon.html", "by-month.html"},
	Output: &OutputConfig{
		GatheredLinks: "gathered_links.json",
		Tools:         "tools.json",
		Dates:         "dates.json",
		ByMonth:       "by-month.html",
		Colophon:      "colophon.html",
		Index:         "index.html",
	},
}

// cfgFile holds the path to the configuration file (set via CLI)
var cfgFile string

// LoadConfigs initializes the configuration from file and flags, and returns
// the final config.
func LoadConfigs(rootCmd *cobra.Command, cwd string) *Config {
	var config *Config

	// Set default values using Viper
	setDefaults()

	// Check if the user provided a config file
	if cfgFile != "" {
		// Use the config file from the flag
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Error reading config file: %v", err)))
			os.Exit(1)
		}
	} else {
		// Look for configuration files in the site directory
		viper.SetConfigName("tooldex-config")
		viper.AddConfigPath(cwd)

		// Support both YAML and JSON formats
		viper.SetConfigType("yaml")
		if err := viper.ReadInConfig(); err != nil {
			viper.SetConfigType("json")
			// If both fail, continue with defaults
			_ = viper.ReadInConfig()
		}
	}

	// Bind CLI flags to override config values
	bindFlags(rootCmd)

	// Unmarshal the configuration into the Config struct
	if err := viper.Unmarshal(&config); err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Unable to decode into struct: %v", err)))
		os.Exit(1)
	}

	return config
}

// setDefaults sets all default configuration values
func setDefaults() {
	viper.SetDefault("version", DefaultConfig.Version)
	viper.SetDefault("site_dir", DefaultConfig.SiteDir)
	viper.SetDefault("readme_path", DefaultConfig.ReadmePath)
	viper.SetDefault("recent_limit", DefaultConfig.RecentLimit)
	viper.SetDefault("excluded_files", DefaultConfig.ExcludedFiles)
	viper.SetDefault("output.gathered_links", DefaultConfig.Output.GatheredLinks)
	viper.SetDefault("output.tools", DefaultConfig.Output.Tools)
	viper.SetDefault("output.dates", DefaultConfig.Output.Dates)
	viper.SetDefault("output.by_month", DefaultConfig.Output.ByMonth)
	viper.SetDefault("output.colophon", DefaultConfig.Output.Colophon)
	viper.SetDefault("output.index", DefaultConfig.Output.Index)
}

// bindFlags binds the persistent flags to viper keys
func bindFlags(rootCmd *cobra.Command) {
	_ = viper.BindPFlag("site_dir", rootCmd.PersistentFlags().Lookup("site-dir"))
	_ = viper.BindPFlag("readme_path", rootCmd.PersistentFlags().Lookup("readme"))
	_ = viper.BindPFlag("recent_limit", rootCmd.PersistentFlags().Lookup("recent-limit"))
}

// InitFlags initializes the flags for the root command.
func InitFlags(rootCmd *cobra.Command) {
	// Use PersistentFlags so that these flags are available in all subcommands
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Path to a configuration file (JSON or YAML) with all settings for the site build.")

	rootCmd.PersistentFlags().String("site-dir", DefaultConfig.SiteDir, "Directory holding the tracked tool pages and generated output.")
	rootCmd.PersistentFlags().String("readme", DefaultConfig.ReadmePath, "Markdown source document for the homepage body.")
	rootCmd.PersistentFlags().Int("recent-limit", DefaultConfig.RecentLimit, "How many tools each homepage digest list shows.")
}
