package services

import (
	"github.com/gcbaptista/go-wordle-engine/model"
)

// SolveRequest is a request to solve for a known answer.
type SolveRequest struct {
	Answer   string `json:"answer"`
	HardMode bool   `json:"hard_mode,omitempty"`
}

// GenerateRequest is a request to generate a decision tree.
type GenerateRequest struct {
	StartWord       string `json:"start_word,omitempty"` // defaults to the configured start word
	Depth           uint32 `json:"depth,omitempty"`      // defaults to the configured tree depth
	Output          string `json:"output,omitempty"`     // defaults to the data-dir path for the start word
	RebuildFeedback bool   `json:"rebuild_feedback,omitempty"`
}

// Solver plays full games and runs opening-word analysis
type Solver interface {
	Solve(answer string, hardMode bool) (model.SolveResult, error)
	BestOpening() (model.OpeningResult, error)
}

// Generator produces the persisted artifacts: decision trees and the
// feedback cache
type Generator interface {
	GenerateTree(req GenerateRequest) (model.GenerateSummary, error)
	GenerateTreeAsync(req GenerateRequest) (string, error) // Returns job ID
	BuildFeedbackCache() (model.GenerateSummary, error)
	BuildFeedbackCacheAsync() (string, error) // Returns job ID
}

// JobManager defines operations for managing background jobs
type JobManager interface {
	GetJob(jobID string) (*model.Job, error)
	ListJobs(status *model.JobStatus) []*model.Job
}

// SolverEngine is the full engine surface the API serves
type SolverEngine interface {
	Solver
	Generator
	JobManager
	VocabularySize() int
}
