package testutils

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"testing"
	"time"

	"onboarding-backend/internal/config"
	"onboarding-backend/internal/database"

	"github.com/jackc/pgx/v5"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	pgUser     = "onboarding"
	pgPassword = "onboarding"
	pgDatabase = "onboarding_test"
)

// onboardingTables lists every table the schema owns, children first
var onboardingTables = []string{
	"scheduled_jobs",
	"enterprise_credentials",
	"enterprise_certificates",
	"enterprises",
}

// postgresFixture is the Postgres container shared by every integration suite in a test binary
type postgresFixture struct {
	once     sync.Once
	err      error
	pool     *dockertest.Pool
	resource *dockertest.Resource
	db       *gorm.DB
	cfg      *config.Config
}

var shared postgresFixture

// BaseTestSuite hands a migrated database to repository suites
type BaseTestSuite struct {
	suite.Suite
	DB     *gorm.DB
	Config *config.Config
}

// SetupTestSuite starts the shared Postgres container on first use
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	t.Helper()
	shared.once.Do(func() { shared.err = shared.start() })
	if shared.err != nil {
		t.Fatalf("failed to start postgres fixture: %v", shared.err)
	}
	return &BaseTestSuite{DB: shared.db, Config: shared.cfg}
}

// RunIntegrationTests runs m and purges the container afterwards, also on SIGINT/SIGTERM
func RunIntegrationTests(m *testing.M, name string) int {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	go func() {
		if _, ok := <-sig; !ok {
			return
		}
		log.Printf("%s tests interrupted, purging postgres container", name)
		CleanupSharedContainer()
		os.Exit(1)
	}()

	log.Printf("Starting %s integration tests", name)
	code := m.Run()
	CleanupSharedContainer()
	return code
}

// CleanupSharedContainer closes the pool and purges the container
func CleanupSharedContainer() {
	if shared.db != nil {
		_ = database.Close(shared.db)
		shared.db = nil
	}
	if shared.pool == nil || shared.resource == nil {
		return
	}
	if err := shared.pool.Purge(shared.resource); err != nil {
		log.Printf("WARN: could not purge postgres container %s: %v", shared.resource.Container.Name, err)
	}
	shared.pool, shared.resource = nil, nil
}

func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite empties the tables; the container outlives the suite
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB truncates the onboarding tables
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	migrator := s.DB.Migrator()
	for _, table := range onboardingTables {
		if migrator.HasTable(table) {
			s.DB.Exec(`TRUNCATE TABLE "` + table + `" CASCADE`)
		}
	}
}

func (f *postgresFixture) start() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}
	pool.MaxWait = 2 * time.Minute
	f.pool = pool

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("could not start postgres: %w", err)
	}
	f.resource = resource
	// Reap the container even when the test binary dies without cleanup
	_ = resource.Expire(600)

	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable",
		pgUser, pgPassword, resource.GetPort("5432/tcp"), pgDatabase)

	if err := pool.Retry(func() error { return ping(dsn) }); err != nil {
		return fmt.Errorf("postgres never became ready: %w", err)
	}

	db, err := database.Initialize(dsn, &database.Options{LogLevel: gormlogger.Silent})
	if err != nil {
		return fmt.Errorf("failed to migrate test database: %w", err)
	}
	f.db = db
	f.cfg = &config.Config{
		DatabaseURL: dsn,
		Port:        "8080",
		LogLevel:    "debug",
		Environment: "test",
		AppName:     "onboarding-test",
		BaseDomain:  "onboarding.test",
	}

	log.Printf("Postgres fixture ready on port %s", resource.GetPort("5432/tcp"))
	return nil
}

func ping(dsn string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)
	return conn.Ping(ctx)
}
