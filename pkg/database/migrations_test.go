package database

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(Config{
		Path:            filepath.Join(t.TempDir(), "test.db"),
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Minute,
	}, zap.NewNop())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRunMigrations(t *testing.T) {
	dir := t.TempDir()
	migration := []byte(`
		CREATE TABLE bookings (
			id TEXT PRIMARY KEY,
			client_name TEXT NOT NULL,
			payload TEXT NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err := os.WriteFile(filepath.Join(dir, "001_create_bookings.sql"), migration, 0644); err != nil {
		t.Fatal(err)
	}

	db := newTestDB(t)
	migrator := NewMigrator(db, zap.NewNop())

	if err := migrator.RunMigrations(dir); err != nil {
		t.Fatalf("RunMigrations() error = %v", err)
	}

	// Applied migrations are recorded and not re-run.
	if err := migrator.RunMigrations(dir); err != nil {
		t.Fatalf("RunMigrations() second pass error = %v", err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count); err != nil {
		t.Fatalf("query schema_migrations: %v", err)
	}
	if count != 1 {
		t.Errorf("applied migrations = %d, want 1", count)
	}

	if _, err := db.Exec("INSERT INTO bookings (id, client_name, payload) VALUES ('bk-1', 'Ravi Kumar', '{}')"); err != nil {
		t.Errorf("migrated table unusable: %v", err)
	}
}
