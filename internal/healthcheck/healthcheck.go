// Package healthcheck scans a library for damaged or implausibly small media.
// Expectations scale with the capture era: a 1998 snapshot is allowed to be
// tiny, a modern photo is not.
package healthcheck

import (
	"context"
	"fmt"
	"image"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	_ "image/jpeg"
	_ "image/png"

	"mediajanitor/internal/config"
	"mediajanitor/internal/janitor"
	"mediajanitor/internal/logging"
	"mediajanitor/internal/media"
	"mediajanitor/internal/mediadate"
)

// IssueKind classifies why a file was flagged.
type IssueKind int

const (
	IssueUnreadable IssueKind = iota
	IssueZeroByte
	IssueUndersized
	IssueCorrupted
	IssueLowResolution
)

func (k IssueKind) String() string {
	switch k {
	case IssueUnreadable:
		return "unreadable"
	case IssueZeroByte:
		return "zero-byte"
	case IssueUndersized:
		return "undersized"
	case IssueCorrupted:
		return "corrupted"
	case IssueLowResolution:
		return "low-resolution"
	default:
		return "unknown"
	}
}

// Issue is one flagged file together with the evidence behind the flag.
type Issue struct {
	Path   string
	Kind   IssueKind
	Size   int64
	Width  int
	Height int
	Era    config.Era
	Detail string
}

// Report summarizes one health-check run.
type Report struct {
	Scanned int
	Issues  []Issue
	Deleted int
	Errors  int
}

// Options configures one health-check run.
type Options struct {
	Root   string
	Health config.Health
	DryRun bool
}

// ThresholdFor picks the era whose expectations apply to a file captured in
// year. The table must be sorted with the open-ended era last, which
// config normalization guarantees.
func ThresholdFor(eras []config.Era, year int) config.Era {
	for _, era := range eras {
		if era.MaxYear != 0 && year <= era.MaxYear {
			return era
		}
	}
	if len(eras) > 0 {
		return eras[len(eras)-1]
	}
	return config.Era{}
}

// decodableExtensions lists the photo formats the stdlib image decoders can
// probe for dimensions and corruption.
var decodableExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
}

func decodable(name string) bool {
	_, ok := decodableExtensions[strings.ToLower(filepath.Ext(name))]
	return ok
}

// CheckFile inspects a single media file against the era thresholds and
// returns the issue found, if any.
func CheckFile(path string, kind media.Kind, health config.Health) (Issue, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return Issue{Path: path, Kind: IssueUnreadable, Detail: err.Error()}, true
	}
	if info.Size() == 0 {
		return Issue{Path: path, Kind: IssueZeroByte}, true
	}

	eras := health.PhotoEras
	if kind == media.KindVideo {
		eras = health.VideoEras
	}
	res, err := mediadate.Resolve(path, kind)
	if err != nil {
		return Issue{Path: path, Kind: IssueUnreadable, Detail: err.Error()}, true
	}
	era := ThresholdFor(eras, res.Time.Year())

	if info.Size() < era.MinBytes {
		return Issue{
			Path: path, Kind: IssueUndersized, Size: info.Size(), Era: era,
			Detail: fmt.Sprintf("%d bytes, era %q expects at least %d", info.Size(), era.Label, era.MinBytes),
		}, true
	}

	if kind == media.KindPhoto && decodable(path) {
		width, height, err := imageDimensions(path)
		if err != nil {
			return Issue{Path: path, Kind: IssueCorrupted, Size: info.Size(), Detail: err.Error()}, true
		}
		if era.MinWidth > 0 && era.MinHeight > 0 && !meetsResolution(width, height, era) {
			return Issue{
				Path: path, Kind: IssueLowResolution, Size: info.Size(),
				Width: width, Height: height, Era: era,
				Detail: fmt.Sprintf("%dx%d, era %q expects at least %dx%d", width, height, era.Label, era.MinWidth, era.MinHeight),
			}, true
		}
	}

	return Issue{}, false
}

// meetsResolution accepts either orientation of the expected dimensions.
func meetsResolution(width, height int, era config.Era) bool {
	if width >= era.MinWidth && height >= era.MinHeight {
		return true
	}
	return width >= era.MinHeight && height >= era.MinWidth
}

func imageDimensions(path string) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("decode image header: %w", err)
	}
	return cfg.Width, cfg.Height, nil
}

// Run scans Root for unhealthy media. When a Prompter is supplied each issue
// is reviewed interactively and confirmed files are deleted, unless DryRun is
// set.
func Run(ctx context.Context, opts Options, prompter Prompter, logger *slog.Logger) (Report, error) {
	logger = logging.NewComponentLogger(logger, "health-check")
	var report Report

	info, err := os.Stat(opts.Root)
	if err != nil || !info.IsDir() {
		return report, janitor.Wrap(janitor.ErrRootNotFound, "health-check", opts.Root, err)
	}

	walkErr := filepath.WalkDir(opts.Root, func(path string, entry fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			logger.Warn("skipping unreadable entry", logging.String("path", path), logging.Error(err))
			report.Errors++
			return nil
		}
		name := entry.Name()
		if entry.IsDir() {
			if media.Hidden(name) && path != opts.Root {
				return filepath.SkipDir
			}
			return nil
		}
		if media.Hidden(name) || !media.IsMedia(name) {
			return nil
		}
		report.Scanned++

		kind := media.Classify(name)
		issue, flagged := CheckFile(path, kind, opts.Health)
		if !flagged {
			return nil
		}
		logger.Info("flagged file",
			logging.String("path", path),
			logging.String("issue", issue.Kind.String()),
			logging.String("detail", issue.Detail))
		report.Issues = append(report.Issues, issue)
		return nil
	})
	if walkErr != nil {
		return report, walkErr
	}

	if prompter == nil {
		return report, nil
	}
	for _, issue := range report.Issues {
		remove, err := prompter.Review(issue)
		if err != nil {
			return report, err
		}
		if !remove {
			continue
		}
		logger.Info("deleting flagged file",
			logging.String("path", issue.Path),
			logging.Bool("dry_run", opts.DryRun))
		if !opts.DryRun {
			if err := os.Remove(issue.Path); err != nil {
				logger.Warn("delete failed", logging.String("path", issue.Path), logging.Error(err))
				report.Errors++
				continue
			}
		}
		report.Deleted++
	}

	return report, nil
}
