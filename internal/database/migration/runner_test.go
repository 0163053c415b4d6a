package migration

import (
	"strings"
	"testing"
	"testing/fstest"
)

func TestLoadMigrations_SortedAndChecksummed(t *testing.T) {
	fsys := fstest.MapFS{
		"V2__search_vector.sql": {Data: []byte("ALTER TABLE job_postings ADD COLUMN x int;")},
		"V1__init.sql":          {Data: []byte("  CREATE TABLE t (id int);\n")},
		"README.md":             {Data: []byte("ignored")},
		"V3__bad name.sql":      {Data: []byte("ignored")},
	}

	migs, err := loadMigrations(fsys)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(migs) != 2 {
		t.Fatalf("expected 2 migrations, got %d", len(migs))
	}
	if migs[0].Version != 1 || migs[0].Name != "init" || migs[1].Version != 2 {
		t.Fatalf("unexpected order: %+v", migs)
	}
	if migs[0].SQL != "CREATE TABLE t (id int);" {
		t.Fatalf("expected trimmed sql, got %q", migs[0].SQL)
	}
	if len(migs[0].Checksum) != 64 {
		t.Fatalf("expected sha256 hex checksum, got %q", migs[0].Checksum)
	}
}

func TestLoadMigrations_DuplicateVersion(t *testing.T) {
	fsys := fstest.MapFS{
		"V1__a.sql":  {Data: []byte("SELECT 1;")},
		"V01__b.sql": {Data: []byte("SELECT 2;")},
	}
	_, err := loadMigrations(fsys)
	if err == nil || !strings.Contains(err.Error(), "duplicate migration version") {
		t.Fatalf("expected duplicate version error, got %v", err)
	}
}

func TestLoadMigrations_EmptyFile(t *testing.T) {
	fsys := fstest.MapFS{"V1__empty.sql": {Data: []byte("   \n")}}
	if _, err := loadMigrations(fsys); err == nil {
		t.Fatalf("expected error for empty migration")
	}
}
