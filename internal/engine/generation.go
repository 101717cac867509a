package engine

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"github.com/gcbaptista/go-wordle-engine/internal/candidate"
	"github.com/gcbaptista/go-wordle-engine/internal/codec"
	"github.com/gcbaptista/go-wordle-engine/internal/errors"
	"github.com/gcbaptista/go-wordle-engine/internal/feedback"
	"github.com/gcbaptista/go-wordle-engine/internal/lookup"
	"github.com/gcbaptista/go-wordle-engine/internal/selector"
	"github.com/gcbaptista/go-wordle-engine/model"
	"github.com/gcbaptista/go-wordle-engine/services"
)

// resolveGenerateRequest fills request defaults from settings and validates
// the start word against the vocabulary.
func (e *Engine) resolveGenerateRequest(req services.GenerateRequest) (codec.PackedWord, uint32, string, error) {
	startText := req.StartWord
	if startText == "" {
		startText = e.settings.StartWord
	}
	start, err := codec.Encode(startText)
	if err != nil {
		return 0, 0, "", err
	}
	if !e.vocabulary.Contains(start) {
		return 0, 0, "", errors.NewWordNotFoundError(startText)
	}

	depth := req.Depth
	if depth == 0 {
		depth = e.settings.TreeDepth
	}

	output := req.Output
	if output == "" {
		output = filepath.Join(e.settings.DataDir, "lookup_"+startText+".bin")
	}
	return start, depth, output, nil
}

// GenerateTree builds a decision tree synchronously and, when the output is
// the engine's configured tree path, swaps the loaded tree for it.
func (e *Engine) GenerateTree(req services.GenerateRequest) (model.GenerateSummary, error) {
	start, depth, output, err := e.resolveGenerateRequest(req)
	if err != nil {
		return model.GenerateSummary{}, err
	}

	if req.RebuildFeedback {
		if _, err := e.BuildFeedbackCache(); err != nil {
			return model.GenerateSummary{}, err
		}
	}

	return e.generateTree(start, depth, output, nil)
}

// GenerateTreeAsync starts tree generation as a background job and returns
// the job ID. Builder diagnostics are surfaced as job progress.
func (e *Engine) GenerateTreeAsync(req services.GenerateRequest) (string, error) {
	start, depth, output, err := e.resolveGenerateRequest(req)
	if err != nil {
		return "", err
	}

	jobID := e.jobManager.CreateJob(model.JobTypeGenerateTree, output, map[string]string{
		"start_word": codec.Decode(start),
		"depth":      fmt.Sprintf("%d", depth),
	})

	execErr := e.jobManager.ExecuteJob(jobID, func(_ context.Context, _ *model.Job) error {
		if req.RebuildFeedback {
			if _, err := e.BuildFeedbackCache(); err != nil {
				return err
			}
		}
		_, err := e.generateTree(start, depth, output, func(p lookup.Progress) {
			e.jobManager.UpdateJobProgress(jobID, int(p.States), 0,
				fmt.Sprintf("states=%d guesses=%d backtracks=%d max_depth=%d",
					p.States, p.GuessesTried, p.Backtracks, p.MaxDepth))
		})
		return err
	})
	if execErr != nil {
		return "", fmt.Errorf("failed to start tree generation job: %w", execErr)
	}
	return jobID, nil
}

func (e *Engine) generateTree(start codec.PackedWord, depth uint32, output string, onProgress func(lookup.Progress)) (model.GenerateSummary, error) {
	matrix, _, sel := e.snapshot()

	src := candidate.Source{Vocab: e.vocabulary, Matrix: matrix}
	builder := lookup.NewBuilder(src, sel, lookup.BuilderConfig{
		Start:      start,
		Depth:      depth,
		OnProgress: onProgress,
	})

	result, err := builder.Generate(output)
	if err != nil {
		return model.GenerateSummary{}, err
	}
	log.Printf("Wrote decision tree '%s' (%d bytes, states=%d, backtracks=%d)",
		output, result.Bytes, result.Progress.States, result.Progress.Backtracks)

	// Pick up the new tree when it replaces the one the engine serves.
	if output == e.settings.TreePath() && start == e.startWord {
		if tree, loadErr := lookup.Load(output, start); loadErr == nil && tree != nil {
			e.mu.Lock()
			e.tree = tree
			e.mu.Unlock()
		}
	}

	return model.GenerateSummary{
		Path:         output,
		Bytes:        result.Bytes,
		States:       result.Progress.States,
		GuessesTried: result.Progress.GuessesTried,
		Backtracks:   result.Progress.Backtracks,
		MaxDepth:     result.Progress.MaxDepth,
	}, nil
}

// BuildFeedbackCache recomputes the feedback table synchronously and swaps
// the loaded matrix for it.
func (e *Engine) BuildFeedbackCache() (model.GenerateSummary, error) {
	path := e.settings.FeedbackTablePath()
	bytes, err := feedback.BuildFile(path, e.vocabulary)
	if err != nil {
		return model.GenerateSummary{}, err
	}
	log.Printf("Wrote %d feedback entries to '%s'", bytes, path)

	matrix, err := feedback.Load(path, e.vocabulary.Len())
	if err != nil {
		return model.GenerateSummary{}, err
	}
	sel := selector.New(candidate.Source{Vocab: e.vocabulary, Matrix: matrix}, selector.Config{
		Mode:    selector.Mode(e.settings.ScoringMode),
		Workers: e.settings.Workers,
	})
	// The previous matrix is left for in-flight solves still holding its
	// snapshot; its mapping is released at engine shutdown.
	e.mu.Lock()
	if e.matrix.Loaded() {
		e.retired = append(e.retired, e.matrix)
	}
	e.matrix = matrix
	e.sel = sel
	e.mu.Unlock()

	return model.GenerateSummary{Path: path, Bytes: bytes}, nil
}

// BuildFeedbackCacheAsync rebuilds the feedback table as a background job
// and returns the job ID.
func (e *Engine) BuildFeedbackCacheAsync() (string, error) {
	path := e.settings.FeedbackTablePath()
	jobID := e.jobManager.CreateJob(model.JobTypeBuildFeedbackCache, path, nil)

	err := e.jobManager.ExecuteJob(jobID, func(_ context.Context, _ *model.Job) error {
		_, buildErr := e.BuildFeedbackCache()
		return buildErr
	})
	if err != nil {
		return "", fmt.Errorf("failed to start feedback cache job: %w", err)
	}
	return jobID, nil
}
