package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// allPhases defines the canonical execution order. Stories follow veterans so
// that veteran links resolve; timeline follows stories for the same reason.
var allPhases = []string{"identities", "veterans", "vehicles", "weapons", "stories", "timeline", "contributions"}

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Inserted int
	Skipped  int
	Duration time.Duration
	Err      error
}

// Pipeline writes the sample catalog phase by phase.
type Pipeline struct {
	log     *slog.Logger
	repo    SeedRepo
	cfg     Config
	now     func() time.Time
	results map[string]PhaseResult
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, repo SeedRepo, cfg Config) *Pipeline {
	return &Pipeline{
		log:     log.With("component", "seeder"),
		repo:    repo,
		cfg:     cfg,
		now:     time.Now,
		results: make(map[string]PhaseResult),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// HasErrors returns true if any phase recorded errors.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil {
			return true
		}
	}
	return false
}

// Run executes the pipeline. If phases is non-empty, only the listed phases run.
// A failed phase is logged and recorded; later phases still run.
func (p *Pipeline) Run(ctx context.Context, phases []string) error {
	ds, err := p.cfg.loadDataset()
	if err != nil {
		return fmt.Errorf("seeder: %w", err)
	}

	toRun := allPhases
	if len(phases) > 0 {
		filter := make(map[string]bool, len(phases))
		for _, ph := range phases {
			filter[ph] = true
		}
		var filtered []string
		for _, ph := range allPhases {
			if filter[ph] {
				filtered = append(filtered, ph)
			}
		}
		toRun = filtered
	}

	now := p.now()
	for _, phase := range toRun {
		if err := ctx.Err(); err != nil {
			return err
		}

		start := time.Now()
		var result PhaseResult
		switch phase {
		case "identities":
			result = runPhase(ctx, p, ds.IdentitiesAt(now), p.repo.BulkInsertIdentities)
		case "veterans":
			result = runPhase(ctx, p, ds.DomainVeterans(), p.repo.BulkInsertVeterans)
		case "vehicles":
			result = runPhase(ctx, p, ds.DomainVehicles(), p.repo.BulkInsertVehicles)
		case "weapons":
			result = runPhase(ctx, p, ds.DomainWeapons(), p.repo.BulkInsertWeapons)
		case "stories":
			result = runPhase(ctx, p, ds.StoriesAt(now), p.repo.BulkInsertStories)
		case "timeline":
			result = runPhase(ctx, p, ds.DomainTimeline(), p.repo.BulkInsertTimeline)
		case "contributions":
			result = runPhase(ctx, p, ds.DomainContributions(), p.repo.BulkInsertContributions)
		}
		result.Duration = time.Since(start)
		p.results[phase] = result

		if result.Err != nil {
			p.log.WarnContext(ctx, "phase failed",
				slog.String("phase", phase),
				slog.String("error", result.Err.Error()),
				slog.Duration("duration", result.Duration),
			)
		} else {
			p.log.InfoContext(ctx, "phase completed",
				slog.String("phase", phase),
				slog.Int("inserted", result.Inserted),
				slog.Int("skipped", result.Skipped),
				slog.Duration("duration", result.Duration),
			)
		}
	}

	p.log.InfoContext(ctx, "pipeline completed", slog.Int("phases_run", len(toRun)))
	return nil
}

func runPhase[T any](ctx context.Context, p *Pipeline, items []T, insert func(context.Context, []T) (int, error)) PhaseResult {
	if p.cfg.DryRun {
		return PhaseResult{Skipped: len(items)}
	}
	inserted, err := batchProcess(items, p.cfg.BatchSize, func(batch []T) (int, error) {
		return insert(ctx, batch)
	})
	if err != nil {
		return PhaseResult{Inserted: inserted, Err: err}
	}
	return PhaseResult{Inserted: inserted, Skipped: len(items) - inserted}
}

func batchProcess[T any](items []T, batchSize int, fn func([]T) (int, error)) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}
	if batchSize <= 0 {
		batchSize = 100
	}

	total := 0
	for i := 0; i < len(items); i += batchSize {
		end := min(i+batchSize, len(items))
		n, err := fn(items[i:end])
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}
