// Package config provides configuration structures for the solver engine.
package config

import (
	"path/filepath"
	"strings"
)

// Scoring mode names accepted by SolverSettings.ScoringMode.
const (
	ScoringExpected = "expected"
	ScoringMinimax  = "minimax"
)

// SolverSettings contains all configuration options for the solver: the
// data directory for persisted artifacts, the opening word, decision-tree
// generation depth, scoring policy and parallelism. A settings value is
// built once at startup and passed by reference into the engine; components
// never consult hidden global state.
type SolverSettings struct {
	DataDir     string `json:"data_dir"`              // Directory for the feedback cache and decision trees
	WordsFile   string `json:"words_file,omitempty"`  // Optional path to a word list overriding the embedded vocabulary
	StartWord   string `json:"start_word"`            // Opening guess (must be in the vocabulary)
	TreeDepth   uint32 `json:"tree_depth"`            // Maximum guesses on any decision-tree path
	TurnBudget  int    `json:"turn_budget"`           // Maximum guesses per solve
	ScoringMode string `json:"scoring_mode"`          // "expected" or "minimax"
	Workers     int    `json:"workers"`               // Parallel scoring workers (0 = one per CPU, minimum 4)
	HardMode    bool   `json:"hard_mode"`             // Constrain guesses to honor previous feedback
	TreeFile    string `json:"tree_file,omitempty"`   // Optional explicit decision-tree path
}

// ApplyDefaults applies default values to the solver settings
func (settings *SolverSettings) ApplyDefaults() {
	if settings.DataDir == "" {
		settings.DataDir = "./solver_data"
	}
	if settings.StartWord == "" {
		settings.StartWord = "roate"
	}
	if settings.TreeDepth == 0 {
		settings.TreeDepth = 6
	}
	if settings.TurnBudget == 0 {
		settings.TurnBudget = 6
	}
	if settings.ScoringMode == "" {
		settings.ScoringMode = ScoringExpected
	}
}

// Validate checks the settings for basic requirements and returns a list of
// problems, empty when the settings are usable.
func (settings *SolverSettings) Validate() []string {
	var problems []string

	word := settings.StartWord
	if len(word) != 5 {
		problems = append(problems, "start_word must be exactly 5 letters")
	} else {
		for i := 0; i < len(word); i++ {
			if word[i] < 'a' || word[i] > 'z' {
				problems = append(problems, "start_word must contain only lowercase letters a-z")
				break
			}
		}
	}

	if settings.ScoringMode != ScoringExpected && settings.ScoringMode != ScoringMinimax {
		problems = append(problems, "scoring_mode must be '"+ScoringExpected+"' or '"+ScoringMinimax+"'")
	}
	if settings.TurnBudget < 1 {
		problems = append(problems, "turn_budget must be at least 1")
	}
	if settings.TreeDepth < 1 {
		problems = append(problems, "tree_depth must be at least 1")
	}
	if strings.TrimSpace(settings.DataDir) == "" {
		problems = append(problems, "data_dir cannot be empty or whitespace-only")
	}

	return problems
}

// FeedbackTablePath returns the path of the persisted feedback cache.
func (settings *SolverSettings) FeedbackTablePath() string {
	return filepath.Join(settings.DataDir, "feedback_table.bin")
}

// TreePath returns the path of the decision tree for the configured start
// word, honoring an explicit TreeFile override.
func (settings *SolverSettings) TreePath() string {
	if settings.TreeFile != "" {
		return settings.TreeFile
	}
	return filepath.Join(settings.DataDir, "lookup_"+settings.StartWord+".bin")
}
