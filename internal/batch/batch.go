// Package batch drives sequential processing of discovered items and
// isolates per-item failures in multi-item runs.
package batch

import (
	"context"
	"io"
	"iter"
	"log/slog"

	"github.com/nordsat/swathbatch/internal/dscvr"
	"github.com/nordsat/swathbatch/internal/model"
	"github.com/nordsat/swathbatch/internal/walk"
)

// Func is the external processing callable. When stream is non-nil it is
// the payload to use in place of reading name from the filesystem. Any
// returned error marks the item as failed; the return is not otherwise
// consumed.
type Func func(ctx context.Context, name string, stream io.Reader, rng model.Range) error

// Policy selects how a run treats a failed item.
type Policy int

const (
	// Propagate stops the run on the first failure and returns it as is.
	Propagate Policy = iota
	// LogAndContinue records the failure as an error log entry and moves
	// on to the next item.
	LogAndContinue
)

// Runner ties classification, discovery and dispatch together. Items are
// processed one at a time, in source order, each attempted exactly once.
type Runner struct {
	Process Func
	Range   model.Range
	// StopOnFailure upgrades LogAndContinue to abort the whole batch after
	// logging the first failed item. It has no effect on Propagate runs,
	// which stop on the first failure anyway.
	StopOnFailure bool
}

// Run processes every item discovered under path. A single plain file is
// dispatched under Propagate; archive members and directory children are
// dispatched under LogAndContinue, so one bad item does not abort the rest
// of the batch.
func (r Runner) Run(ctx context.Context, path string) error {
	mode, err := dscvr.Classify(path)
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "starting run",
		"path", path,
		"mode", mode.String(),
		"start_line", r.Range.Start,
		"end_line", r.Range.End,
	)

	switch mode {
	case model.ModeArchive:
		return r.dispatch(ctx, LogAndContinue, path, walk.Tar(ctx, path))
	case model.ModeDirectory:
		return r.dispatch(ctx, LogAndContinue, path, walk.Dir(ctx, path))
	default:
		return r.dispatch(ctx, Propagate, path, walk.File(path))
	}
}

func (r Runner) dispatch(ctx context.Context, policy Policy, path string, seq iter.Seq2[walk.Entry, error]) error {
	for entry, err := range seq {
		if err != nil {
			// discovery errors follow the same isolation policy and are
			// attributed to the batch source itself
			if ferr := r.fail(ctx, policy, path, err); ferr != nil {
				return ferr
			}
			continue
		}
		err = r.Process(ctx, entry.Path(), entry.Stream(), r.Range)
		if err != nil {
			if ferr := r.fail(ctx, policy, entry.Path(), err); ferr != nil {
				return ferr
			}
		}
	}
	return nil
}

// fail applies the run's error policy to one failed item and returns a
// non-nil error when the run must stop.
func (r Runner) fail(ctx context.Context, policy Policy, item string, err error) error {
	if policy == Propagate {
		return err
	}
	slog.ErrorContext(ctx, "item failed", "item", item, "error", err)
	if r.StopOnFailure {
		return &model.ProcessingError{Item: item, Err: err}
	}
	return nil
}
