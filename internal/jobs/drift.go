package jobs

import (
	"context"
	"time"

	"github.com/emrgen/wikt/internal/model"
	"github.com/emrgen/wikt/internal/relation"
	"github.com/emrgen/wikt/internal/store"
	"github.com/sirupsen/logrus"
)

// Counter counts the rows of a table.
type Counter interface {
	Count(ctx context.Context, table string) (int64, error)
}

var _ CronJob = (*VocabularyDriftCheck)(nil)

// VocabularyDriftCheck compares the size of the table 'relation_type' with the
// relation kinds and logs a warning when they differ. It never rebuilds the
// vocabulary, that stays an explicit maintenance step.
type VocabularyDriftCheck struct {
	counter  Counter
	schedule string
	timeout  time.Duration
}

func NewVocabularyDriftCheck(counter Counter, schedule string) *VocabularyDriftCheck {
	return &VocabularyDriftCheck{
		counter:  counter,
		schedule: schedule,
		timeout:  30 * time.Second,
	}
}

func (c *VocabularyDriftCheck) Name() string {
	return "vocabulary-drift-check"
}

func (c *VocabularyDriftCheck) Schedule() string {
	return c.schedule
}

func (c *VocabularyDriftCheck) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	if _, _, err := c.Check(ctx); err != nil {
		logrus.Errorf("vocabulary drift check: %v", err)
	}
}

// Check returns the row count of 'relation_type' and whether it drifted from
// the enumeration size.
func (c *VocabularyDriftCheck) Check(ctx context.Context) (int64, bool, error) {
	count, err := c.counter.Count(ctx, model.RelationType{}.TableName())
	if err != nil {
		return 0, false, store.Wrap("count relation types", err)
	}

	drift := count != int64(relation.Size())
	if drift {
		logrus.WithFields(logrus.Fields{
			"rows":  count,
			"kinds": relation.Size(),
		}).Warn("relation_type does not match the relation kinds, run 'wikt relation reconcile'")
	}

	return count, drift, nil
}
