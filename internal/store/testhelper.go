package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"

	"countdown-server/internal/observability"

	"github.com/jmoiron/sqlx"
)

// countdownTables lists every table in dependency order, children first.
var countdownTables = []string{"print_cards", "invitations", "assignments", "day_cards", "countdowns", "users"}

var (
	migrateOnce sync.Once
	migrateErr  error
)

// TestDB is a Store bound to a disposable PostgreSQL database
type TestDB struct {
	db    *sqlx.DB
	Store Store
}

// SetupTestDB connects to TEST_DATABASE_URL (or the TEST_DB_* parts) and
// applies the migrations once per test binary. The test is skipped when no
// database is reachable.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	db, err := sqlx.Open("pgx", testConnectionString())
	if err == nil {
		err = db.Ping()
	}
	if err != nil {
		t.Skipf("skipping store test, database unavailable: %v", err)
	}

	migrateOnce.Do(func() { migrateErr = applyMigrations(db) })
	if migrateErr != nil {
		db.Close()
		t.Fatalf("failed to apply migrations: %v", migrateErr)
	}

	return &TestDB{
		db:    db,
		Store: Store{db: db, logger: observability.NewLogger()},
	}
}

func testConnectionString() string {
	if url := os.Getenv("TEST_DATABASE_URL"); url != "" {
		return url
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		envOr("TEST_DB_USER", "countdown_user"),
		envOr("TEST_DB_PASSWORD", "countdown_password"),
		envOr("TEST_DB_HOST", "localhost"),
		envOr("TEST_DB_PORT", "5432"),
		envOr("TEST_DB_NAME", "countdown_test"))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// applyMigrations runs migrations/V*.sql in name order. The scripts are
// idempotent, so a reused database is fine.
func applyMigrations(db *sqlx.DB) error {
	var files []string
	for _, dir := range []string{"../../migrations", "migrations"} {
		matches, err := filepath.Glob(filepath.Join(dir, "V*.sql"))
		if err != nil {
			return err
		}
		if len(matches) > 0 {
			files = matches
			break
		}
	}
	if len(files) == 0 {
		return fmt.Errorf("no migration files found")
	}
	sort.Strings(files)

	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", file, err)
		}
		if _, err := db.Exec(string(content)); err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", filepath.Base(file), err)
		}
	}
	return nil
}

// Truncate empties the given tables, or every countdown table when none are named
func (tdb *TestDB) Truncate(t *testing.T, tables ...string) {
	t.Helper()

	if len(tables) == 0 {
		tables = countdownTables
	}
	if _, err := tdb.db.Exec("TRUNCATE TABLE " + strings.Join(tables, ", ") + " CASCADE"); err != nil {
		t.Fatalf("failed to truncate %v: %v", tables, err)
	}
}

// Close closes the database connection
func (tdb *TestDB) Close() error {
	return tdb.db.Close()
}
