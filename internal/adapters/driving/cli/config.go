package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change persisted settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Persist one setting",
	Long: `Keys: source, style, workers, timeout, max-candidates, lookup,
stroke-color, stroke-width, github-token, google-api-key, google-cx.`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if settingsStore == nil {
		return errors.New("settings store not configured")
	}
	settings, err := settingsStore.Load()
	if err != nil {
		return err
	}

	cmd.Printf("lookup          %t\n", settings.LookupEnabled)
	cmd.Printf("source          %s\n", settings.SourceType)
	cmd.Printf("timeout         %ds\n", settings.SourceTimeoutSeconds)
	cmd.Printf("max-candidates  %d\n", settings.SourceMaxCandidates)
	cmd.Printf("workers         %d\n", settings.Workers)
	cmd.Printf("style           %s\n", settings.Style)
	if settings.StrokeColorHex != "" {
		cmd.Printf("stroke-color    %s\n", settings.StrokeColorHex)
	}
	if settings.StrokeWidth > 0 {
		cmd.Printf("stroke-width    %d\n", settings.StrokeWidth)
	}
	cmd.Printf("github-token    %s\n", redact(settings.GitHubToken))
	cmd.Printf("google-api-key  %s\n", redact(settings.GoogleAPIKey))
	return nil
}

func runConfigSet(_ *cobra.Command, args []string) error {
	if settingsStore == nil {
		return errors.New("settings store not configured")
	}
	settings, err := settingsStore.Load()
	if err != nil {
		return err
	}

	key, value := args[0], args[1]
	switch key {
	case "lookup":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("value for %s must be a boolean: %w", key, err)
		}
		settings.LookupEnabled = b
	case "source":
		settings.SourceType = value
	case "style":
		settings.Style = value
	case "stroke-color":
		settings.StrokeColorHex = value
	case "github-token":
		settings.GitHubToken = value
	case "google-api-key":
		settings.GoogleAPIKey = value
	case "google-cx":
		settings.GoogleCX = value
	case "workers", "timeout", "max-candidates", "stroke-width":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("value for %s must be an integer: %w", key, err)
		}
		switch key {
		case "workers":
			settings.Workers = n
		case "timeout":
			settings.SourceTimeoutSeconds = n
		case "max-candidates":
			settings.SourceMaxCandidates = n
		case "stroke-width":
			settings.StrokeWidth = n
		}
	default:
		return fmt.Errorf("unknown setting %q", key)
	}

	// Reject settings that would fail at generate time.
	if _, err := settings.HouseStyle(); err != nil {
		return err
	}
	return settingsStore.Save(settings)
}

func redact(s string) string {
	if s == "" {
		return "(unset)"
	}
	return "(set)"
}
