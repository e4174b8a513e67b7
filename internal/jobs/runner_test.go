package jobs

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type blockingJob struct {
	started chan struct{}
	release chan struct{}
	runs    atomic.Int32
}

func newBlockingJob() *blockingJob {
	return &blockingJob{started: make(chan struct{}, 1), release: make(chan struct{})}
}

func (j *blockingJob) Name() string     { return "blocking" }
func (j *blockingJob) Schedule() string { return "@every 1h" }

func (j *blockingJob) Run() {
	j.runs.Add(1)
	j.started <- struct{}{}
	<-j.release
}

func TestTaskExecutor_RunOnce(t *testing.T) {
	job := newBlockingJob()
	executor := NewTaskExecutor([]CronJob{job})

	done := make(chan bool)
	go func() { done <- executor.runOnce(job) }()
	<-job.started

	// a second run is skipped while the first one is going
	assert.False(t, executor.runOnce(job))

	close(job.release)
	assert.True(t, <-done)
	assert.Equal(t, int32(1), job.runs.Load())

	// the job can run again after it finished
	assert.True(t, executor.runOnce(job))
	assert.Equal(t, int32(2), job.runs.Load())
}

type badScheduleJob struct{}

func (badScheduleJob) Name() string     { return "bad" }
func (badScheduleJob) Schedule() string { return "not a schedule" }
func (badScheduleJob) Run()             {}

func TestTaskExecutor_Run(t *testing.T) {
	executor := NewTaskExecutor([]CronJob{NewVocabularyDriftCheck(&fakeCounter{count: 9}, "@every 1h")})
	require.NoError(t, executor.Run())
	executor.Stop()

	executor = NewTaskExecutor([]CronJob{badScheduleJob{}})
	assert.Error(t, executor.Run())
}
