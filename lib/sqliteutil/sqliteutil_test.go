package sqliteutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testSchema = `
create table if not exists league (
	id integer primary key,
	name text not null
);
`

func TestOpenDB(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "graph.db")

	db, err := OpenDB(testSchema, path)
	if err != nil {
		t.Fatal(err)
	}
	_, err = db.Exec("insert into league (name) values ('Premier League')")
	if err != nil {
		t.Fatal(err)
	}
	require.NoError(t, db.Close())

	// reopening keeps existing rows
	db, err = Config{File: path}.OpenDB(testSchema)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	var count int
	err = db.QueryRow("select count(*) from league").Scan(&count)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, 1, count)
}

func TestOpenDBRequiresPath(t *testing.T) {
	_, err := Config{}.OpenDB(testSchema)
	require.Error(t, err)
}
