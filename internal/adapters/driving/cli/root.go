// Package cli wires the iconsmith commands.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/iconsmith-cli/internal/core/ports/driven"
	"github.com/custodia-labs/iconsmith-cli/internal/core/ports/driving"
	"github.com/custodia-labs/iconsmith-cli/internal/logger"
)

// version is set by Execute from the build.
var version = "dev"

// verbose toggles debug logging on stderr.
var verbose bool

// Injected services. Commands check for nil and fail with a clear
// message instead of panicking on a partially wired binary.
var (
	generator     driving.BatchGenerator
	subjectSvc    driving.SubjectResolver
	iconMaker     driving.IconMaker
	settingsStore driven.SettingsStore
	sourceFactory driven.SourceFactory
	recordStore   driven.RecordStore
)

// Services bundles everything the commands need.
type Services struct {
	Generator     driving.BatchGenerator
	Resolver      driving.SubjectResolver
	Maker         driving.IconMaker
	SettingsStore driven.SettingsStore
	SourceFactory driven.SourceFactory
	RecordStore   driven.RecordStore
}

// SetServices injects the wired services into the command tree.
func SetServices(s Services) {
	generator = s.Generator
	subjectSvc = s.Resolver
	iconMaker = s.Maker
	settingsStore = s.SettingsStore
	sourceFactory = s.SourceFactory
	recordStore = s.RecordStore
}

var rootCmd = &cobra.Command{
	Use:   "iconsmith",
	Short: "Deterministic house-style SVG icons for category taxonomies",
	Long: `Iconsmith turns a category taxonomy CSV into one house-styled SVG
icon per row plus a provenance manifest.

Icons are either sourced from a remote catalogue and restyled, or
synthesized deterministically from the category id. The same input
always produces the same output.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the command tree.
func Execute(v string) error {
	if v != "" {
		version = v
	}
	return rootCmd.Execute()
}
