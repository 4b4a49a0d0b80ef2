package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/iconsmith-cli/internal/core/domain"
	"github.com/custodia-labs/iconsmith-cli/internal/core/ports/driven"
	"github.com/custodia-labs/iconsmith-cli/internal/core/ports/driving"
	"github.com/custodia-labs/iconsmith-cli/internal/logger"
	"github.com/custodia-labs/iconsmith-cli/internal/restyle"
	"github.com/custodia-labs/iconsmith-cli/internal/synth"
	"github.com/custodia-labs/iconsmith-cli/internal/validate"
)

// collisionRetryBudget bounds reseed attempts on a path-hash
// collision before the row is marked failed.
const collisionRetryBudget = 16

// maxQueryTerms is how many expanded terms the widest lookup query
// may carry.
const maxQueryTerms = 3

// Batch is the pipeline orchestrator: subject resolution, lookup,
// restyle or synthesis, validation and manifest emission for a whole
// taxonomy table.
//
// Lookups run concurrently behind a bounded worker pool; everything
// from normalisation onwards runs sequentially in input order, which
// is what makes the output byte-for-byte reproducible.
type Batch struct {
	reader  driven.RowReader
	sources driven.SourceFactory
	outputs driven.OutputFactory
	store   driven.RecordStore // nil disables history

	resolver *Resolver
	queries  *QueryBuilder
	ranker   *Ranker
}

var (
	_ driving.BatchGenerator = (*Batch)(nil)
	_ driving.IconMaker      = (*Batch)(nil)
)

// NewBatch wires the orchestrator. store may be nil.
func NewBatch(
	reader driven.RowReader,
	sources driven.SourceFactory,
	outputs driven.OutputFactory,
	store driven.RecordStore,
	translator driven.Translator,
) *Batch {
	return &Batch{
		reader:   reader,
		sources:  sources,
		outputs:  outputs,
		store:    store,
		resolver: NewResolver(),
		queries:  NewQueryBuilder(translator),
		ranker:   NewRanker(),
	}
}

// lookup is the concurrent phase's per-row product.
type lookup struct {
	done    bool
	subject string
	skip    error // non-nil when the row has no subject

	candidate domain.Candidate
	found     bool
	reason    domain.LookupReason
	title     string
}

// Generate implements driving.BatchGenerator.
func (b *Batch) Generate(
	ctx context.Context, opts driving.GenerateOptions, progress driving.ProgressFunc,
) (*domain.BatchRun, error) {
	style, err := opts.Settings.HouseStyle()
	if err != nil {
		return nil, err
	}
	source, err := b.sources.Create(opts.Settings)
	if err != nil {
		return nil, err
	}

	rows, err := b.reader.Read(ctx, opts.CSVPath)
	if err != nil {
		return nil, fmt.Errorf("read taxonomy: %w", err)
	}

	manifest, err := b.outputs.NewManifestWriter(opts.OutDir)
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	defer manifest.Close()
	icons, err := b.outputs.NewIconWriter(opts.OutDir)
	if err != nil {
		return nil, fmt.Errorf("open icon sink: %w", err)
	}

	run := &domain.BatchRun{
		RunID:     uuid.NewString(),
		InputPath: opts.CSVPath,
		OutputDir: opts.OutDir,
		Style:     opts.Settings.Style,
		StartedAt: time.Now().UTC(),
		Rows:      len(rows),
	}
	logger.Section(fmt.Sprintf("batch %s: %d rows, source %s", run.RunID, len(rows), source.Type()))

	lookups := b.runLookups(ctx, rows, source, opts.Settings)

	engine := restyle.New(style)
	synthesizer := synth.New(style)
	validator := validate.New(style)
	hashes := validate.NewHashSet()

	// Sequential phase, strictly in input order. On cancellation every
	// row whose lookup completed still flushes; the rest are left
	// unprocessed.
	var aborted error
	for i, row := range rows {
		lk := lookups[i]
		if !lk.done {
			aborted = ctx.Err()
			break
		}

		result := b.resolveRow(row, lk, engine, synthesizer, validator, hashes)

		switch result.Status {
		case domain.RowSkipped:
			run.Skipped++
		case domain.RowFailed:
			run.Failed++
		default:
			if result.Decision.Path == domain.DecisionSourced {
				run.Sourced++
			} else {
				run.Generated++
			}
		}

		if result.Status != domain.RowSkipped {
			if err := manifest.Write(result.Record); err != nil {
				// An integrity violation is a pipeline defect; abort
				// the whole batch rather than emit a corrupt manifest.
				run.FinishedAt = time.Now().UTC()
				return run, fmt.Errorf("manifest write for %s: %w", result.Catid, err)
			}
			if err := icons.WriteIcon(result.Catid, result.Icon); err != nil {
				run.FinishedAt = time.Now().UTC()
				return run, fmt.Errorf("write icon %s: %w", result.Catid, err)
			}
			b.mirrorRecord(ctx, run.RunID, result.Record)
		}

		if progress != nil {
			progress(driving.RowEvent{Index: i, Total: len(rows), Result: result})
		}
	}

	run.FinishedAt = time.Now().UTC()
	if b.store != nil {
		if err := b.store.SaveRun(ctx, *run); err != nil {
			logger.Warn("history: save run: %v", err)
		}
	}
	if aborted != nil {
		return run, fmt.Errorf("batch interrupted: %w", aborted)
	}
	return run, nil
}

// runLookups resolves subjects and queries the source for every row
// behind a bounded worker pool. Cancellation stops new lookups;
// workers finish the row in hand.
func (b *Batch) runLookups(
	ctx context.Context, rows []domain.CategoryRow, source driven.IconSource, settings domain.Settings,
) []lookup {
	results := make([]lookup, len(rows))

	workers := settings.Workers
	if workers < 1 {
		workers = 1
	}
	indexes := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				results[i] = b.lookupRow(ctx, rows[i], source, settings)
			}
		}()
	}

feed:
	for i := range rows {
		select {
		case indexes <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(indexes)
	wg.Wait()

	return results
}

// lookupRow resolves one row's subject and fetches its best candidate.
// Lookup failures never escape: they become a reason code and the row
// falls through to synthesis.
func (b *Batch) lookupRow(
	ctx context.Context, row domain.CategoryRow, source driven.IconSource, settings domain.Settings,
) lookup {
	lk := lookup{done: true}

	subject, err := b.resolver.Resolve(row)
	if err != nil {
		lk.skip = err
		return lk
	}
	lk.subject = subject

	if !source.Enabled() {
		lk.reason = domain.LookupDisabled
		return lk
	}

	queries := b.queries.Build(ctx, subject, maxQueryTerms)
	for _, q := range queries {
		candidates, err := source.Search(ctx, q, settings.SourceMaxCandidates)
		if err != nil {
			lk.reason = classifyLookupError(err)
			logger.Debug("lookup %s: query %q: %v", row.Catid, q, err)
			continue
		}
		if len(candidates) == 0 {
			lk.reason = domain.LookupNoResults
			continue
		}
		ranked := b.ranker.Rank(candidates)
		if best, ok := FirstAcceptable(ranked); ok {
			lk.candidate = best
			lk.found = true
			lk.reason = domain.LookupOK
			lk.title = best.Title
			return lk
		}
		lk.reason = domain.LookupNoResults
	}
	if lk.reason == domain.LookupOK {
		lk.reason = domain.LookupNoResults
	}
	return lk
}

// resolveRow turns one completed lookup into a final row result:
// restyle the candidate or synthesize, enforce batch uniqueness,
// validate, and assemble the manifest record. Row failures stay row
// failures: the row is always recorded with validation_passed=FALSE,
// never surfaced as a batch-level error.
func (b *Batch) resolveRow(
	row domain.CategoryRow,
	lk lookup,
	engine *restyle.Engine,
	synthesizer *synth.Synthesizer,
	validator *validate.Validator,
	hashes *validate.HashSet,
) domain.RowResult {
	if lk.skip != nil {
		logger.Warn("row %s skipped: %v", row.Catid, lk.skip)
		return domain.RowResult{Catid: row.Catid, Status: domain.RowSkipped}
	}
	if strings.TrimSpace(row.Catid) == "" {
		// Without an identifier there is no {Catid}.svg to emit and no
		// manifest row to key it by.
		logger.Warn("row %q skipped: no Catid", lk.subject)
		return domain.RowResult{Status: domain.RowSkipped}
	}

	result := domain.RowResult{Catid: row.Catid, Subject: lk.subject}

	var (
		icon     domain.NormalizedIcon
		decision domain.Decision
		notes    string
	)

	sourced := false
	if lk.found {
		restyled, err := engine.Normalize(lk.candidate.Markup)
		if err != nil {
			logger.Row(row.Catid, "candidate %q unusable: %v", lk.title, err)
			lk.reason = domain.LookupReason("restyle_failed")
		} else {
			icon = restyled
			decision = domain.Sourced(lk.candidate.SourceURL)
			sourced = true
		}
	}
	if !sourced {
		var err error
		icon, notes, err = synthesizer.Synthesize(row.Catid, lk.subject, 0)
		if err != nil {
			result.Status = domain.RowFailed
			result.Violations = []string{err.Error()}
			result.Decision = domain.Generated(err.Error())
			result.Record = b.record(row.Catid, lk.subject, icon, result.Decision, err.Error(), false)
			return result
		}
		decision = domain.Generated(string(lk.reason))
	}

	// Batch-scoped uniqueness. The earlier row keeps its hash; this
	// one re-derives. A sourced icon cannot be re-derived without
	// changing its geometry, so it degrades to synthesis.
	exhausted := false
	if owner, ok := hashes.Register(icon.PathHash, row.Catid); !ok {
		logger.Row(row.Catid, "hash held by %s, reseeding", owner)
		if sourced {
			decision = domain.Generated(fmt.Sprintf("%v with sourced icon", domain.ErrUniquenessCollision))
			notes = fmt.Sprintf("sourced icon %q dropped, duplicate geometry", lk.title)
			sourced = false
		}
		exhausted = true
		for attempt := 1; attempt <= collisionRetryBudget; attempt++ {
			variant, vnotes, err := synthesizer.Synthesize(row.Catid, lk.subject, attempt)
			if err != nil {
				break
			}
			if _, ok := hashes.Register(variant.PathHash, row.Catid); ok {
				icon, notes = variant, vnotes
				exhausted = false
				break
			}
		}
		if exhausted {
			// Retry budget spent. The row keeps its colliding icon and
			// is recorded as failed; the batch carries on.
			result.Violations = append(result.Violations, validate.Violation{
				Code:   validate.CodeDuplicate,
				Detail: fmt.Sprintf("path hash held by %s after %d reseeds", owner, collisionRetryBudget),
			}.String())
		}
	}

	for _, v := range validator.Icon(icon) {
		result.Violations = append(result.Violations, v.String())
	}
	passed := len(result.Violations) == 0

	title := lk.title
	if !sourced {
		title = lk.subject
	}

	result.Status = domain.RowOK
	if !passed {
		result.Status = domain.RowFailed
		logger.Warn("row %s failed validation: %s", row.Catid, strings.Join(result.Violations, "; "))
	}
	result.Decision = decision
	result.Icon = icon
	result.Record = b.record(row.Catid, title, icon, decision, notes, passed)
	return result
}

// record assembles the manifest row. Generated icons carry the
// machine-parseable reason code in concept_notes ahead of the motif
// note, so the manifest alone explains why synthesis ran.
func (b *Batch) record(
	catid, title string,
	icon domain.NormalizedIcon,
	decision domain.Decision,
	notes string,
	passed bool,
) domain.ManifestRecord {
	if decision.Path == domain.DecisionGenerated && decision.Reason != "" && decision.Reason != notes {
		notes = decision.Reason + ": " + notes
	}
	return domain.ManifestRecord{
		Catid:            catid,
		TitleSelected:    title,
		ConceptNotes:     notes,
		PrimitivesUsed:   icon.PrimitiveKinds(),
		PathHash:         icon.PathHash,
		Width:            icon.Width,
		Height:           icon.Height,
		StrokeWidth:      icon.Style.StrokeWidth,
		ColorHex:         icon.Style.StrokeColor,
		ValidationPassed: passed,
		SourceIcon:       decision.SourceIcon(),
	}
}

// mirrorRecord copies a written manifest record into the history
// store. History is best effort and never fails the batch.
func (b *Batch) mirrorRecord(ctx context.Context, runID string, record domain.ManifestRecord) {
	if b.store == nil {
		return
	}
	if err := b.store.SaveRecord(ctx, runID, record); err != nil {
		logger.Warn("history: save record %s: %v", record.Catid, err)
	}
}

// Make implements driving.IconMaker: the single-row pipeline used by
// the MCP generate_icon tool. No files are written and uniqueness is
// not enforced because there is no batch scope.
func (b *Batch) Make(ctx context.Context, catid, subject string) (domain.RowResult, error) {
	settings := domain.DefaultSettings()
	style, err := settings.HouseStyle()
	if err != nil {
		return domain.RowResult{}, err
	}
	source, err := b.sources.Create(settings)
	if err != nil {
		return domain.RowResult{}, err
	}

	row := domain.CategoryRow{
		Catid:  catid,
		Fields: map[string]string{domain.ColumnRoot: subject},
	}
	lk := b.lookupRow(ctx, row, source, settings)
	return b.resolveRow(
		row, lk,
		restyle.New(style),
		synth.New(style),
		validate.New(style),
		validate.NewHashSet(),
	), nil
}

// classifyLookupError maps a transport failure onto the reason codes
// recorded in the manifest's concept notes.
func classifyLookupError(err error) domain.LookupReason {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return domain.LookupTimeout
	case errors.Is(err, domain.ErrRateLimited):
		return domain.LookupRateLimited
	default:
		return domain.LookupTransport
	}
}
