package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/iconsmith-cli/internal/adapters/driven/config/file"
	manifestcsv "github.com/custodia-labs/iconsmith-cli/internal/adapters/driven/manifest/csvfile"
	"github.com/custodia-labs/iconsmith-cli/internal/adapters/driven/storage/sqlite"
	taxonomycsv "github.com/custodia-labs/iconsmith-cli/internal/adapters/driven/taxonomy/csvfile"
	"github.com/custodia-labs/iconsmith-cli/internal/adapters/driven/translate"
	"github.com/custodia-labs/iconsmith-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/iconsmith-cli/internal/core/ports/driven"
	"github.com/custodia-labs/iconsmith-cli/internal/core/services"
	"github.com/custodia-labs/iconsmith-cli/internal/logger"
	"github.com/custodia-labs/iconsmith-cli/internal/sources"
)

// version is injected at build time via -ldflags.
var version = "dev"

func main() {
	settingsStore, err := file.NewSettingsStore("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "iconsmith: config: %v\n", err)
		os.Exit(1)
	}

	// History is best effort; a broken database must not block icon
	// generation.
	var recordStore driven.RecordStore
	if store, err := sqlite.NewStore(""); err != nil {
		logger.Warn("history store unavailable: %v", err)
	} else {
		recordStore = store
		defer store.Close()
	}

	batch := services.NewBatch(
		taxonomycsv.NewReader(),
		sources.NewFactory(),
		manifestcsv.NewFactory(),
		recordStore,
		translate.NewStatic(),
	)

	cli.SetServices(cli.Services{
		Generator:     batch,
		Resolver:      services.NewResolver(),
		Maker:         batch,
		SettingsStore: settingsStore,
		SourceFactory: sources.NewFactory(),
		RecordStore:   recordStore,
	})

	if err := cli.Execute(version); err != nil {
		os.Exit(1)
	}
}
