package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/iconsmith-cli/internal/core/domain"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List icon sources and whether they are usable",
	RunE:  runSources,
}

func init() {
	rootCmd.AddCommand(sourcesCmd)
}

func runSources(cmd *cobra.Command, _ []string) error {
	if sourceFactory == nil {
		return errors.New("source factory not configured")
	}

	settings := domain.DefaultSettings()
	if settingsStore != nil {
		loaded, err := settingsStore.Load()
		if err == nil {
			settings = loaded
		}
	}

	for _, name := range sourceFactory.Types() {
		probe := settings
		probe.SourceType = name
		probe.LookupEnabled = true

		state := "ready"
		src, err := sourceFactory.Create(probe)
		switch {
		case err != nil:
			state = "error: " + err.Error()
		case !src.Enabled():
			state = "not configured"
		}

		marker := " "
		if name == settings.SourceType {
			marker = "*"
		}
		cmd.Printf("%s %-10s %s\n", marker, name, state)
	}
	return nil
}
