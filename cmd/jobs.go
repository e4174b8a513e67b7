package cmd

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/emrgen/wikt/internal/jobs"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "background job commands",
}

func init() {
	jobsCmd.AddCommand(runJobsCmd())
}

func runJobsCmd() *cobra.Command {
	command := &cobra.Command{
		Use:   "run",
		Short: "run the scheduled maintenance checks until interrupted",
		Run: func(cmd *cobra.Command, args []string) {
			a, err := newApp()
			if err != nil {
				logrus.Fatal(err)
			}
			defer a.close()

			var cronJobs []jobs.CronJob
			if a.cfg.Jobs.DriftCheck != "" {
				cronJobs = append(cronJobs, jobs.NewVocabularyDriftCheck(a.store, a.cfg.Jobs.DriftCheck))
			}
			if len(cronJobs) == 0 {
				logrus.Warn("no jobs configured")
				return
			}

			executor := jobs.NewTaskExecutor(cronJobs)
			if err := executor.Run(); err != nil {
				logrus.Fatal(err)
			}
			logrus.Infof("Press Ctrl+C to stop")

			// listen for interrupt signal to gracefully shut down the jobs
			sigs := make(chan os.Signal, 1)
			signal.Notify(sigs, unix.SIGTERM, unix.SIGINT)
			<-sigs
			// clean Ctrl+C output
			fmt.Println()

			executor.Stop()
		},
	}

	return command
}
