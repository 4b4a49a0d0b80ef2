package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/iconsmith-cli/internal/core/ports/driving"
	"github.com/custodia-labs/iconsmith-cli/internal/logger"
)

// watchDebounce coalesces editor write bursts into one run.
const watchDebounce = 500 * time.Millisecond

var watchOut string

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Regenerate icons whenever a taxonomy CSV changes",
	Long: `Watches the directory for created or modified .csv files and runs
the generate pipeline for each, writing into a per-file subdirectory
of the output directory.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchOut, "out", "o", "icons", "output root directory")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if generator == nil {
		return errors.New("batch generator not configured")
	}

	settings, err := effectiveSettings(cmd)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(args[0]); err != nil {
		return fmt.Errorf("watch %s: %w", args[0], err)
	}
	cmd.Printf("watching %s (ctrl+c to stop)\n", args[0])

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Debounce timer per path.
	pending := make(map[string]*time.Timer)
	runs := make(chan string)

	for {
		select {
		case <-ctx.Done():
			return nil

		case path := <-runs:
			stem := strings.TrimSuffix(filepath.Base(path), ".csv")
			opts := driving.GenerateOptions{
				CSVPath:  path,
				OutDir:   filepath.Join(watchOut, stem),
				Settings: settings,
			}
			run, err := generator.Generate(ctx, opts, nil)
			if err != nil {
				logger.Warn("watch: %s: %v", path, err)
				continue
			}
			printSummary(cmd, run)

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !strings.HasSuffix(event.Name, ".csv") {
				continue
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			path := event.Name
			if t, exists := pending[path]; exists {
				t.Reset(watchDebounce)
				continue
			}
			pending[path] = time.AfterFunc(watchDebounce, func() {
				select {
				case runs <- path:
				case <-ctx.Done():
				}
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch: %v", err)
		}
	}
}
