package cli

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/iconsmith-cli/internal/core/domain"
	"github.com/custodia-labs/iconsmith-cli/internal/validate"
)

var validateStyle string

var validateCmd = &cobra.Command{
	Use:   "validate [dir]",
	Short: "Re-check emitted icons and manifest against the house rules",
	Long: `Validates every .svg file in the directory against the house style
and cross-checks manifest.csv: header shape, source_icon traceability
and path_hash uniqueness.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateStyle, "style", "classic", "stroke preset the icons were generated with")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	dir := args[0]
	style, err := domain.StyleVariant(validateStyle)
	if err != nil {
		return err
	}
	validator := validate.New(style)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read output dir: %w", err)
	}

	var svgs []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".svg") {
			svgs = append(svgs, e.Name())
		}
	}
	sort.Strings(svgs)

	problems := 0
	for _, name := range svgs {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}
		for _, v := range validator.Markup(string(data)) {
			problems++
			cmd.Printf("%s: %s\n", name, v)
		}
	}

	manifestProblems, err := validateManifest(cmd, filepath.Join(dir, "manifest.csv"))
	if err != nil {
		return err
	}
	problems += manifestProblems

	if problems > 0 {
		return fmt.Errorf("%d violations in %d icons", problems, len(svgs))
	}
	cmd.Printf("%d icons valid\n", len(svgs))
	return nil
}

// validateManifest re-checks the emitted manifest: exact header,
// per-record integrity and batch-wide hash uniqueness.
func validateManifest(cmd *cobra.Command, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			cmd.Printf("no manifest.csv, skipping manifest checks\n")
			return 0, nil
		}
		return 0, fmt.Errorf("open manifest: %w", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return 0, fmt.Errorf("parse manifest: %w", err)
	}
	if len(rows) == 0 {
		cmd.Printf("manifest.csv: empty file\n")
		return 1, nil
	}

	problems := 0
	if strings.Join(rows[0], ",") != strings.Join(domain.ManifestColumns, ",") {
		problems++
		cmd.Printf("manifest.csv: unexpected header\n")
	}

	hashes := validate.NewHashSet()
	for i, row := range rows[1:] {
		line := i + 2
		if len(row) != len(domain.ManifestColumns) {
			problems++
			cmd.Printf("manifest.csv:%d: %d columns, want %d\n", line, len(row), len(domain.ManifestColumns))
			continue
		}
		record := domain.ManifestRecord{
			Catid:        row[0],
			ConceptNotes: row[2],
			PathHash:     row[4],
			SourceIcon:   row[10],
		}
		if err := record.Validate(); err != nil {
			problems++
			cmd.Printf("manifest.csv:%d: %v\n", line, err)
		}
		if owner, ok := hashes.Register(record.PathHash, record.Catid); !ok {
			problems++
			cmd.Printf("manifest.csv:%d: path_hash duplicates row for %s\n", line, owner)
		}
	}
	return problems, nil
}
