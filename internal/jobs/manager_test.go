package jobs

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/go-wordle-engine/internal/errors"
	"github.com/gcbaptista/go-wordle-engine/model"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m := NewManager(2)
	m.Start()
	t.Cleanup(m.Stop)
	return m
}

func waitForStatus(t *testing.T, m *Manager, jobID string, want model.JobStatus) *model.Job {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		job, err := m.GetJob(jobID)
		require.NoError(t, err)
		if job.Status == want {
			return job
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("job %s never reached status %s", jobID, want)
	return nil
}

func TestCreateAndGetJob(t *testing.T) {
	m := newTestManager(t)

	jobID := m.CreateJob(model.JobTypeGenerateTree, "/tmp/lookup_roate.bin", map[string]string{
		"start_word": "roate",
	})
	require.NotEmpty(t, jobID)

	job, err := m.GetJob(jobID)
	require.NoError(t, err)
	assert.Equal(t, model.JobTypeGenerateTree, job.Type)
	assert.Equal(t, model.JobStatusPending, job.Status)
	assert.Equal(t, "/tmp/lookup_roate.bin", job.Target)
	assert.Equal(t, "roate", job.Metadata["start_word"])
	assert.False(t, job.CreatedAt.IsZero())
}

func TestGetJobNotFound(t *testing.T) {
	m := newTestManager(t)

	_, err := m.GetJob("nonexistent")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrJobNotFound)
}

func TestExecuteJobSuccess(t *testing.T) {
	m := newTestManager(t)

	jobID := m.CreateJob(model.JobTypeBuildFeedbackCache, "/tmp/feedback_table.bin", nil)
	done := make(chan struct{})
	err := m.ExecuteJob(jobID, func(ctx context.Context, job *model.Job) error {
		defer close(done)
		return nil
	})
	require.NoError(t, err)

	<-done
	job := waitForStatus(t, m, jobID, model.JobStatusCompleted)
	assert.NotNil(t, job.StartedAt)
	assert.NotNil(t, job.CompletedAt)
	assert.Empty(t, job.Error)
}

func TestExecuteJobFailure(t *testing.T) {
	m := newTestManager(t)

	jobID := m.CreateJob(model.JobTypeGenerateTree, "/tmp/lookup_roate.bin", nil)
	err := m.ExecuteJob(jobID, func(ctx context.Context, job *model.Job) error {
		return fmt.Errorf("generation failed: no complete tree within depth")
	})
	require.NoError(t, err)

	job := waitForStatus(t, m, jobID, model.JobStatusFailed)
	assert.Contains(t, job.Error, "no complete tree within depth")
}

func TestExecuteJobNotPending(t *testing.T) {
	m := newTestManager(t)

	jobID := m.CreateJob(model.JobTypeGenerateTree, "/tmp/lookup_roate.bin", nil)
	release := make(chan struct{})
	err := m.ExecuteJob(jobID, func(ctx context.Context, job *model.Job) error {
		<-release
		return nil
	})
	require.NoError(t, err)
	defer close(release)

	err = m.ExecuteJob(jobID, func(ctx context.Context, job *model.Job) error { return nil })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not in pending status")
}

func TestExecuteJobUnknownID(t *testing.T) {
	m := newTestManager(t)

	err := m.ExecuteJob("nonexistent", func(ctx context.Context, job *model.Job) error { return nil })
	assert.ErrorIs(t, err, errors.ErrJobNotFound)
}

func TestUpdateJobProgress(t *testing.T) {
	m := newTestManager(t)

	jobID := m.CreateJob(model.JobTypeGenerateTree, "/tmp/lookup_roate.bin", nil)
	m.UpdateJobProgress(jobID, 500, 1000, "states=500")

	job, err := m.GetJob(jobID)
	require.NoError(t, err)
	require.NotNil(t, job.Progress)
	assert.Equal(t, 500, job.Progress.Current)
	assert.Equal(t, 1000, job.Progress.Total)
	assert.Equal(t, "states=500", job.Progress.Message)
	assert.Equal(t, 50.0, job.Progress.GetProgressPercentage())

	// Unknown IDs are ignored.
	m.UpdateJobProgress("nonexistent", 1, 2, "ignored")
}

func TestListJobs(t *testing.T) {
	m := newTestManager(t)

	first := m.CreateJob(model.JobTypeGenerateTree, "/tmp/a.bin", nil)
	second := m.CreateJob(model.JobTypeBuildFeedbackCache, "/tmp/b.bin", nil)

	all := m.ListJobs(nil)
	assert.Len(t, all, 2)

	err := m.ExecuteJob(first, func(ctx context.Context, job *model.Job) error { return nil })
	require.NoError(t, err)
	waitForStatus(t, m, first, model.JobStatusCompleted)

	pending := model.JobStatusPending
	remaining := m.ListJobs(&pending)
	require.Len(t, remaining, 1)
	assert.Equal(t, second, remaining[0].ID)
}

func TestGetJobReturnsCopy(t *testing.T) {
	m := newTestManager(t)

	jobID := m.CreateJob(model.JobTypeGenerateTree, "/tmp/lookup_roate.bin", nil)
	m.UpdateJobProgress(jobID, 1, 10, "")

	job, err := m.GetJob(jobID)
	require.NoError(t, err)
	job.Status = model.JobStatusFailed
	job.Progress.Current = 999

	fresh, err := m.GetJob(jobID)
	require.NoError(t, err)
	assert.Equal(t, model.JobStatusPending, fresh.Status)
	assert.Equal(t, 1, fresh.Progress.Current)
}

func TestMetrics(t *testing.T) {
	m := newTestManager(t)

	jobID := m.CreateJob(model.JobTypeGenerateTree, "/tmp/lookup_roate.bin", nil)
	err := m.ExecuteJob(jobID, func(ctx context.Context, job *model.Job) error { return nil })
	require.NoError(t, err)
	waitForStatus(t, m, jobID, model.JobStatusCompleted)

	// The status change lands before the completion counter; poll the metrics.
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if m.GetMetrics().JobsCompleted == 1 {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	metrics := m.GetMetrics()
	assert.Equal(t, int64(1), metrics.JobsCreated)
	assert.Equal(t, int64(1), metrics.JobsCompleted)
	assert.Equal(t, int64(0), metrics.JobsFailed)
	assert.Equal(t, int64(1), metrics.JobsByType[model.JobTypeGenerateTree])
	assert.Equal(t, int64(0), m.GetCurrentWorkload())
	assert.Equal(t, 1.0, m.GetSuccessRate())
}

func TestCleanupOldJobs(t *testing.T) {
	m := newTestManager(t)

	jobID := m.CreateJob(model.JobTypeGenerateTree, "/tmp/lookup_roate.bin", nil)
	err := m.ExecuteJob(jobID, func(ctx context.Context, job *model.Job) error { return nil })
	require.NoError(t, err)
	waitForStatus(t, m, jobID, model.JobStatusCompleted)

	m.CleanupOldJobs(0)

	_, err = m.GetJob(jobID)
	assert.ErrorIs(t, err, errors.ErrJobNotFound)
}
