package testutil

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"footygraph/lib/sqliteutil"
)

// OpenDB opens an in-memory sqlite database with the schema applied, it is
// closed when the test finishes.
func OpenDB(t testing.TB, schema string) *sql.DB {
	t.Helper()

	database, err := sqliteutil.OpenDB(schema, ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// ReadFixture reads a file under the package's testdata directory.
func ReadFixture(t testing.TB, name string) []byte {
	t.Helper()

	contents, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatal(err)
	}
	return contents
}
