// Package engine wires the solver components together: it owns the
// vocabulary, the feedback matrix, the loaded decision tree and the job
// manager, and implements the services.SolverEngine interface the API and
// CLI are served by.
package engine

import (
	"log"
	"sync"

	"github.com/gcbaptista/go-wordle-engine/config"
	"github.com/gcbaptista/go-wordle-engine/internal/candidate"
	"github.com/gcbaptista/go-wordle-engine/internal/codec"
	"github.com/gcbaptista/go-wordle-engine/internal/errors"
	"github.com/gcbaptista/go-wordle-engine/internal/feedback"
	"github.com/gcbaptista/go-wordle-engine/internal/jobs"
	"github.com/gcbaptista/go-wordle-engine/internal/lookup"
	"github.com/gcbaptista/go-wordle-engine/internal/selector"
	"github.com/gcbaptista/go-wordle-engine/internal/solver"
	"github.com/gcbaptista/go-wordle-engine/internal/vocab"
	"github.com/gcbaptista/go-wordle-engine/model"
)

const maxConcurrentJobs = 1

// Engine orchestrates solving and artifact generation over one vocabulary.
// The vocabulary, selector and job manager are fixed for the engine's
// lifetime; the feedback matrix and decision tree can be swapped by
// generation jobs under the write lock.
type Engine struct {
	mu         sync.RWMutex
	settings   config.SolverSettings
	vocabulary *vocab.Vocabulary
	matrix     *feedback.Matrix
	tree       *lookup.Tree
	sel        *selector.Selector
	jobManager *jobs.Manager
	startWord  codec.PackedWord

	// retired holds matrices swapped out by cache rebuilds. In-flight solves
	// may still hold them, so they are only released at shutdown.
	retired []*feedback.Matrix
}

// NewEngine builds an engine over the given word list. The feedback cache
// and decision tree are loaded opportunistically: a missing or stale file
// logs a warning and the engine degrades to on-the-fly computation and live
// search, never failing startup for it.
func NewEngine(settings config.SolverSettings, wordList []string) (*Engine, error) {
	vocabulary, err := vocab.New(wordList)
	if err != nil {
		return nil, err
	}

	startWord, err := codec.Encode(settings.StartWord)
	if err != nil {
		return nil, err
	}
	if !vocabulary.Contains(startWord) {
		return nil, errors.NewWordNotFoundError(settings.StartWord)
	}

	matrix, err := feedback.Load(settings.FeedbackTablePath(), vocabulary.Len())
	if err != nil {
		return nil, err
	}
	if !matrix.Loaded() {
		log.Printf("Warning: feedback table not found at '%s'. Falling back to slower feedback calculation.", settings.FeedbackTablePath())
	}

	tree, err := lookup.Load(settings.TreePath(), startWord)
	if err != nil {
		return nil, err
	}
	if tree == nil {
		log.Printf("No decision tree at '%s'; solves will use live search.", settings.TreePath())
	}

	eng := &Engine{
		settings:   settings,
		vocabulary: vocabulary,
		matrix:     matrix,
		tree:       tree,
		sel: selector.New(candidate.Source{Vocab: vocabulary, Matrix: matrix}, selector.Config{
			Mode:    selector.Mode(settings.ScoringMode),
			Workers: settings.Workers,
		}),
		jobManager: jobs.NewManager(maxConcurrentJobs),
		startWord:  startWord,
	}
	eng.jobManager.Start()
	return eng, nil
}

// Close stops the job manager and releases the feedback matrix mapping.
func (e *Engine) Close() {
	e.jobManager.Stop()
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.matrix.Close(); err != nil {
		log.Printf("Warning: failed to release feedback matrix: %v", err)
	}
	e.matrix = nil
	for _, old := range e.retired {
		if err := old.Close(); err != nil {
			log.Printf("Warning: failed to release retired feedback matrix: %v", err)
		}
	}
	e.retired = nil
}

// VocabularySize returns the number of words in the vocabulary.
func (e *Engine) VocabularySize() int {
	return e.vocabulary.Len()
}

// Solve plays a full game against the given answer word.
func (e *Engine) Solve(answer string, hardMode bool) (model.SolveResult, error) {
	packed, err := codec.Encode(answer)
	if err != nil {
		return model.SolveResult{}, err
	}
	if !e.vocabulary.Contains(packed) {
		return model.SolveResult{}, errors.NewWordNotFoundError(answer)
	}
	return e.newSolver(hardMode).Solve(packed)
}

// BestOpening runs the whole-vocabulary opening-word analysis.
func (e *Engine) BestOpening() (model.OpeningResult, error) {
	return e.newSolver(false).BestOpening()
}

// snapshot returns the current matrix, tree and selector under the read
// lock. Callers keep using the snapshot even if a generation job swaps the
// artifacts; the old matrix is only released once no solve references it.
func (e *Engine) snapshot() (*feedback.Matrix, *lookup.Tree, *selector.Selector) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.matrix, e.tree, e.sel
}

// newSolver builds a solver over a consistent artifact snapshot.
func (e *Engine) newSolver(hardMode bool) *solver.Solver {
	matrix, tree, sel := e.snapshot()

	src := candidate.Source{Vocab: e.vocabulary, Matrix: matrix}
	return solver.New(src, sel, tree, solver.Config{
		StartWord:  e.startWord,
		TurnBudget: e.settings.TurnBudget,
		HardMode:   hardMode || e.settings.HardMode,
	})
}

// GetJob retrieves a job by ID
func (e *Engine) GetJob(jobID string) (*model.Job, error) {
	return e.jobManager.GetJob(jobID)
}

// ListJobs returns all jobs, optionally filtered by status
func (e *Engine) ListJobs(status *model.JobStatus) []*model.Job {
	return e.jobManager.ListJobs(status)
}

// GetJobMetrics returns current job performance metrics
func (e *Engine) GetJobMetrics() jobs.JobMetricsData {
	return e.jobManager.GetMetrics()
}

// GetJobSuccessRate returns the fraction of finished jobs that completed
func (e *Engine) GetJobSuccessRate() float64 {
	return e.jobManager.GetSuccessRate()
}

// GetCurrentWorkload returns the number of currently active jobs
func (e *Engine) GetCurrentWorkload() int64 {
	return e.jobManager.GetCurrentWorkload()
}
