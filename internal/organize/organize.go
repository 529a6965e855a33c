package organize

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"mediajanitor/internal/janitor"
	"mediajanitor/internal/logging"
	"mediajanitor/internal/media"
)

// Config carries the explicit settings for one organize run.
type Config struct {
	Source    string
	PhotoDest string
	VideoDest string
	DryRun    bool
}

// Report summarizes an organize run for the operator.
type Report struct {
	FoldersMoved     int
	FoldersUngrouped int
	FoldersSkipped   int
	FilesMoved       int
	Collisions       int
	Errors           int
	EmptyDirsRemoved int
}

// Organizer sweeps the immediate subdirectories of the source root, decides a
// terminal action for each, and dispatches it. Year-named folders are the
// tool's own output and are never re-ingested, which is what makes repeated
// runs idempotent.
type Organizer struct {
	cfg       Config
	decider   Decider
	mover     *Mover
	logger    *slog.Logger
	processed map[string]struct{}
}

// New constructs an organizer. A nil decider means non-interactive operation.
func New(cfg Config, decider Decider, logger *slog.Logger) *Organizer {
	if decider == nil {
		decider = AutoAccept{}
	}
	logger = logging.NewComponentLogger(logger, "organize")
	return &Organizer{
		cfg:     cfg,
		decider: decider,
		mover: &Mover{
			PhotoRoot: cfg.PhotoDest,
			VideoRoot: cfg.VideoDest,
			DryRun:    cfg.DryRun,
			Logger:    logger,
		},
		logger:    logger,
		processed: make(map[string]struct{}),
	}
}

// Run performs one full sweep. Each folder is visited and terminally decided
// exactly once; the processed set guards against re-entry. The sweep stops
// early only on operator cancellation or a failed decision channel.
func (o *Organizer) Run(ctx context.Context) (Report, error) {
	var report Report

	if _, err := os.Stat(o.cfg.Source); err != nil {
		return report, janitor.Wrap(janitor.ErrRootNotFound, "organize", o.cfg.Source, err)
	}

	entries, err := os.ReadDir(o.cfg.Source)
	if err != nil {
		return report, janitor.Wrap(janitor.ErrRootNotFound, "organize", o.cfg.Source, err)
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if isYearName(name) || media.Hidden(name) {
			continue
		}

		folder := filepath.Join(o.cfg.Source, name)
		if _, done := o.processed[folder]; done {
			continue
		}
		o.processed[folder] = struct{}{}

		summary := ClassifyFolder(folder, o.logger)
		if len(summary.Dates) == 0 {
			continue
		}

		bucket := ChooseTargetBucket(summary.Dates)
		targetRoot := o.cfg.PhotoDest
		if summary.Videos > summary.Photos {
			targetRoot = o.cfg.VideoDest
		}

		decision, err := o.decider.Decide(Review{
			Path:      folder,
			Name:      name,
			Target:    bucket,
			FileCount: summary.FileCount(),
		})
		if err != nil {
			return report, err
		}

		switch decision.Action {
		case ActionSkip:
			o.logger.Info("skipping folder", logging.String("name", name))
			report.FoldersSkipped++
		case ActionUngroup:
			o.logger.Info("ungrouping folder", logging.String("name", name))
			result, err := o.mover.Ungroup(ctx, folder)
			report.FilesMoved += result.Moved
			report.Collisions += result.Collisions
			report.Errors += result.Errors
			if err != nil {
				return report, err
			}
			report.FoldersUngrouped++
		case ActionAccept, ActionRename:
			err := o.mover.MoveFolder(folder, targetRoot, bucket, decision.Name)
			switch {
			case err == nil:
				report.FoldersMoved++
			case errors.Is(err, janitor.ErrCollision):
				report.Collisions++
			default:
				o.logger.Warn("folder move failed", logging.String("name", name), logging.Error(err))
				report.Errors++
			}
		}
	}

	if !o.cfg.DryRun {
		report.EmptyDirsRemoved = Cleanup(o.cfg.Source, o.logger)
	}
	return report, nil
}
