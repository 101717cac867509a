package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypedErrorsMatchSentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"invalid word", NewInvalidWordError("cat", "must be exactly 5 letters"), ErrInvalidWord},
		{"word not found", NewWordNotFoundError("zzzzz"), ErrWordNotFound},
		{"generation failed", NewGenerationError("roate", 6), ErrGenerationFailed},
		{"job not found", NewJobNotFoundError("abc-123"), ErrJobNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.sentinel)
		})
	}
}

func TestTypedErrorsMatchThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("solve failed: %w", NewWordNotFoundError("zzzzz"))
	assert.ErrorIs(t, wrapped, ErrWordNotFound)

	var target *WordNotFoundError
	assert.True(t, errors.As(wrapped, &target))
	assert.Equal(t, "zzzzz", target.Word)
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "invalid word 'cat': must be exactly 5 letters",
		NewInvalidWordError("cat", "must be exactly 5 letters").Error())
	assert.Equal(t, "word 'zzzzz' is not in the vocabulary",
		NewWordNotFoundError("zzzzz").Error())
	assert.Equal(t, "could not generate a complete decision tree for start word 'roate' at depth 6",
		NewGenerationError("roate", 6).Error())
	assert.Equal(t, "job with ID 'abc-123' not found",
		NewJobNotFoundError("abc-123").Error())
}

func TestSentinelsAreDistinct(t *testing.T) {
	assert.NotErrorIs(t, NewInvalidWordError("cat", "too short"), ErrWordNotFound)
	assert.NotErrorIs(t, NewGenerationError("roate", 6), ErrNoGuess)
}
