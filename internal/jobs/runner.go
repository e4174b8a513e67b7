package jobs

import (
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
	cron "github.com/robfig/cron"
	"github.com/sirupsen/logrus"
)

type Job interface {
	Name() string
	Run()
}

type CronJob interface {
	Schedule() string
	Job
}

// TaskExecutor runs cron jobs, a job is skipped while its previous run is still going.
type TaskExecutor struct {
	cron            *cron.Cron
	cronJobs        []CronJob
	runningCronJobs mapset.Set[string]
	muCronJobs      sync.Mutex
}

func NewTaskExecutor(cronJobs []CronJob) *TaskExecutor {
	return &TaskExecutor{
		cron:            cron.New(),
		cronJobs:        cronJobs,
		runningCronJobs: mapset.NewThreadUnsafeSet[string](),
	}
}

// Run schedules the jobs, each run happens in its own goroutine inside the cron.
func (t *TaskExecutor) Run() error {
	for _, job := range t.cronJobs {
		if err := t.cron.AddFunc(job.Schedule(), func() { t.runOnce(job) }); err != nil {
			logrus.Errorf("failed to add task %s to cron: %v", job.Name(), err)
			return err
		}
		logrus.Infof("scheduled task %s: %s", job.Name(), job.Schedule())
	}

	t.cron.Start()
	return nil
}

// runOnce runs the job unless a run of it is in progress.
func (t *TaskExecutor) runOnce(job CronJob) bool {
	t.muCronJobs.Lock()
	if t.runningCronJobs.Contains(job.Name()) {
		t.muCronJobs.Unlock()
		logrus.Warnf("task %s is already running", job.Name())
		return false
	}
	t.runningCronJobs.Add(job.Name())
	t.muCronJobs.Unlock()

	defer func() {
		t.muCronJobs.Lock()
		defer t.muCronJobs.Unlock()
		t.runningCronJobs.Remove(job.Name())
	}()

	runID := uuid.New()
	logrus.WithField("run", runID).Debugf("task %s started", job.Name())
	job.Run()
	logrus.WithField("run", runID).Debugf("task %s finished", job.Name())

	return true
}

func (t *TaskExecutor) Stop() {
	logrus.Infof("stopping all tasks")
	t.cron.Stop()
}
