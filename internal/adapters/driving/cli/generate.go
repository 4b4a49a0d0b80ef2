package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/iconsmith-cli/internal/adapters/driving/tui"
	"github.com/custodia-labs/iconsmith-cli/internal/core/domain"
	"github.com/custodia-labs/iconsmith-cli/internal/core/ports/driving"
	"github.com/custodia-labs/iconsmith-cli/internal/logger"
)

var (
	generateOut           string
	generateStyle         string
	generateSource        string
	generateNoLookup      bool
	generateWorkers       int
	generateTimeout       int
	generateMaxCandidates int
	generateStrokeColor   string
	generateStrokeWidth   int
	generatePlain         bool
)

var generateCmd = &cobra.Command{
	Use:   "generate [taxonomy.csv]",
	Short: "Generate icons and manifest for a taxonomy table",
	Long: `Reads the taxonomy CSV and emits one {Catid}.svg per row plus
manifest.csv into the output directory.

Remote lookup failures never fail a row; the row falls through to
deterministic synthesis and the manifest records why.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateOut, "out", "o", "icons", "output directory")
	generateCmd.Flags().StringVar(&generateStyle, "style", "", "stroke preset (classic, thin, thick, blue, mono)")
	generateCmd.Flags().StringVar(&generateSource, "source", "", "icon source (iconify, github, google, disabled)")
	generateCmd.Flags().BoolVar(&generateNoLookup, "no-lookup", false, "skip remote lookup, synthesize everything")
	generateCmd.Flags().IntVar(&generateWorkers, "workers", 0, "lookup worker count")
	generateCmd.Flags().IntVar(&generateTimeout, "timeout", 0, "per-lookup timeout in seconds")
	generateCmd.Flags().IntVar(&generateMaxCandidates, "max-candidates", 0, "candidate cap per lookup")
	generateCmd.Flags().StringVar(&generateStrokeColor, "stroke-color", "", "stroke colour override (hex)")
	generateCmd.Flags().IntVar(&generateStrokeWidth, "stroke-width", 0, "stroke width override")
	generateCmd.Flags().BoolVar(&generatePlain, "plain", false, "plain line output instead of the progress view")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if generator == nil {
		return errors.New("batch generator not configured")
	}

	settings, err := effectiveSettings(cmd)
	if err != nil {
		return err
	}

	opts := driving.GenerateOptions{
		CSVPath:  args[0],
		OutDir:   generateOut,
		Settings: settings,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var run *domain.BatchRun
	if usePlainOutput() {
		run, err = generator.Generate(ctx, opts, func(ev driving.RowEvent) {
			logger.Info("[%d/%d] %s %s (%s)",
				ev.Index+1, ev.Total, ev.Result.Catid, ev.Result.Subject, ev.Result.Status)
		})
	} else {
		run, err = generateWithProgress(ctx, opts)
	}
	if err != nil {
		if run != nil {
			printSummary(cmd, run)
		}
		return fmt.Errorf("generate: %w", err)
	}

	printSummary(cmd, run)
	return nil
}

// generateWithProgress runs the batch behind the live progress view.
func generateWithProgress(ctx context.Context, opts driving.GenerateOptions) (*domain.BatchRun, error) {
	events := make(chan driving.RowEvent, 16)

	var (
		run    *domain.BatchRun
		runErr error
	)
	done := make(chan struct{})
	go func() {
		defer close(events)
		defer close(done)
		run, runErr = generator.Generate(ctx, opts, func(ev driving.RowEvent) {
			events <- ev
		})
	}()

	total := 0 // the view learns the total from the first event
	if err := tui.Run(total, events); err != nil {
		return nil, err
	}
	<-done
	return run, runErr
}

// effectiveSettings loads persisted settings and applies explicit flag
// overrides on top, flag by flag.
func effectiveSettings(cmd *cobra.Command) (domain.Settings, error) {
	settings := domain.DefaultSettings()
	if settingsStore != nil {
		loaded, err := settingsStore.Load()
		if err != nil {
			return settings, fmt.Errorf("load config: %w", err)
		}
		settings = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("style") {
		settings.Style = generateStyle
	}
	if flags.Changed("source") {
		settings.SourceType = generateSource
	}
	if generateNoLookup {
		settings.LookupEnabled = false
	}
	if flags.Changed("workers") {
		settings.Workers = generateWorkers
	}
	if flags.Changed("timeout") {
		settings.SourceTimeoutSeconds = generateTimeout
	}
	if flags.Changed("max-candidates") {
		settings.SourceMaxCandidates = generateMaxCandidates
	}
	if flags.Changed("stroke-color") {
		settings.StrokeColorHex = generateStrokeColor
	}
	if flags.Changed("stroke-width") {
		settings.StrokeWidth = generateStrokeWidth
	}

	// Fail on an unknown style now, not after the CSV is read.
	if _, err := settings.HouseStyle(); err != nil {
		return settings, err
	}
	return settings, nil
}

func usePlainOutput() bool {
	if generatePlain || verbose {
		return true
	}
	return !term.IsTerminal(int(os.Stdout.Fd()))
}

func printSummary(cmd *cobra.Command, run *domain.BatchRun) {
	cmd.Printf("run %s: %d rows in %s\n",
		run.RunID, run.Rows, run.FinishedAt.Sub(run.StartedAt).Round(time.Millisecond))
	cmd.Printf("  sourced    %d\n", run.Sourced)
	cmd.Printf("  generated  %d\n", run.Generated)
	cmd.Printf("  failed     %d\n", run.Failed)
	cmd.Printf("  skipped    %d\n", run.Skipped)
	cmd.Printf("  output     %s\n", run.OutputDir)
}
