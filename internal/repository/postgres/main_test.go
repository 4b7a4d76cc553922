//go:build integration

package postgres

import (
	"context"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	testDB *sqlx.DB
	logger *slog.Logger
)

// TestMain starts a throwaway postgres container, applies the migrations
// from the repository root and hands the connected pool to the tests.
func TestMain(m *testing.M) {
	ctx := context.Background()
	logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	container, err := postgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:17"),
		postgres.WithDatabase("blood_aid_test"),
		postgres.WithUsername("blood_aid"),
		postgres.WithPassword("blood_aid"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second),
		),
	)
	if err != nil {
		log.Fatalf("starting postgres container: %s", err)
	}
	defer func() {
		if err := container.Terminate(ctx); err != nil {
			log.Fatalf("terminating postgres container: %s", err)
		}
	}()

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		log.Fatalf("resolving connection string: %s", err)
	}

	testDB, err = sqlx.Connect("postgres", connStr)
	if err != nil {
		log.Fatalf("connecting to test postgres: %s", err)
	}

	if err := applyMigrations(connStr); err != nil {
		log.Fatalf("applying migrations: %s", err)
	}

	os.Exit(m.Run())
}

func applyMigrations(connStr string) error {
	_, b, _, _ := runtime.Caller(0)
	migrationsPath := filepath.Join(filepath.Dir(b), "../../../migrations")

	migrator, err := migrate.New("file://"+filepath.ToSlash(migrationsPath), connStr)
	if err != nil {
		return err
	}

	return migrator.Up()
}

func truncateTables(t *testing.T, db *sqlx.DB) {
	t.Helper()
	_, err := db.Exec("TRUNCATE TABLE users, donation_requests, payments, blogs RESTART IDENTITY CASCADE")
	if err != nil {
		t.Fatalf("failed to truncate tables: %v", err)
	}
}
