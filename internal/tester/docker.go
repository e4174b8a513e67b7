package tester

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/emrgen/wikt/internal/model"
	"github.com/ory/dockertest/v3"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// PostgresEnv enables the tests running against a postgres container.
const PostgresEnv = "WIKT_TEST_POSTGRES"

// NewPostgresDB starts a postgres container and returns a migrated database.
// The test is skipped unless PostgresEnv is set.
func NewPostgresDB(t testing.TB) *gorm.DB {
	t.Helper()

	if os.Getenv(PostgresEnv) == "" {
		t.Skipf("set %s to run postgres tests", PostgresEnv)
	}

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("could not construct pool: %s", err)
	}
	pool.MaxWait = 2 * time.Minute

	// uses pool to try to connect to Docker
	if err = pool.Client.Ping(); err != nil {
		t.Fatalf("could not connect to docker: %s", err)
	}

	resource, err := pool.Run("postgres", "16-alpine", []string{
		"POSTGRES_USER=wikt",
		"POSTGRES_PASSWORD=wikt",
		"POSTGRES_DB=wikt",
	})
	if err != nil {
		t.Fatalf("could not start resource: %s", err)
	}
	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			logrus.Errorf("could not purge resource: %s", err)
		}
	})

	dsn := fmt.Sprintf("host=localhost port=%s user=wikt password=wikt dbname=wikt sslmode=disable",
		resource.GetPort("5432/tcp"))

	var db *gorm.DB
	err = pool.Retry(func() error {
		var err error
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
		if err != nil {
			return err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Ping()
	})
	if err != nil {
		t.Fatalf("could not connect to postgres: %s", err)
	}

	if err := model.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}
