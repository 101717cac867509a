package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrInvalidWord is returned when a word fails codec validation
	ErrInvalidWord = errors.New("invalid word")

	// ErrWordNotFound is returned when a word is not in the vocabulary
	ErrWordNotFound = errors.New("word not found in vocabulary")

	// ErrNoGuess is returned when no legal guess remains for a solve path
	ErrNoGuess = errors.New("no legal guess remains")

	// ErrGenerationFailed is returned when decision-tree generation cannot
	// complete within the requested depth
	ErrGenerationFailed = errors.New("decision tree generation failed")

	// ErrJobNotFound is returned when a job is not found
	ErrJobNotFound = errors.New("job not found")
)

// InvalidWordError represents a word validation failure with context
type InvalidWordError struct {
	Word   string
	Reason string
}

func (e *InvalidWordError) Error() string {
	return fmt.Sprintf("invalid word '%s': %s", e.Word, e.Reason)
}

func (e *InvalidWordError) Is(target error) bool {
	return target == ErrInvalidWord
}

// NewInvalidWordError creates a new InvalidWordError
func NewInvalidWordError(word, reason string) *InvalidWordError {
	return &InvalidWordError{Word: word, Reason: reason}
}

// WordNotFoundError represents a vocabulary miss with context
type WordNotFoundError struct {
	Word string
}

func (e *WordNotFoundError) Error() string {
	return fmt.Sprintf("word '%s' is not in the vocabulary", e.Word)
}

func (e *WordNotFoundError) Is(target error) bool {
	return target == ErrWordNotFound
}

// NewWordNotFoundError creates a new WordNotFoundError
func NewWordNotFoundError(word string) *WordNotFoundError {
	return &WordNotFoundError{Word: word}
}

// GenerationError reports which start word and depth could not be completed
// during decision-tree generation
type GenerationError struct {
	StartWord string
	Depth     uint32
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("could not generate a complete decision tree for start word '%s' at depth %d", e.StartWord, e.Depth)
}

func (e *GenerationError) Is(target error) bool {
	return target == ErrGenerationFailed
}

// NewGenerationError creates a new GenerationError
func NewGenerationError(startWord string, depth uint32) *GenerationError {
	return &GenerationError{StartWord: startWord, Depth: depth}
}

// JobNotFoundError represents a job not found error with context
type JobNotFoundError struct {
	JobID string
}

func (e *JobNotFoundError) Error() string {
	return fmt.Sprintf("job with ID '%s' not found", e.JobID)
}

func (e *JobNotFoundError) Is(target error) bool {
	return target == ErrJobNotFound
}

// NewJobNotFoundError creates a new JobNotFoundError
func NewJobNotFoundError(jobID string) *JobNotFoundError {
	return &JobNotFoundError{JobID: jobID}
}
