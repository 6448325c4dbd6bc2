package main

import (
	"fmt"
	"log/slog"
	"os"

	devenv "footygraph/dev/env"
	"footygraph/lib/graphstore/db"
	"footygraph/lib/sqliteutil"

	"github.com/mazen160/go-random"
)

const graphDB = "<dev_state>/footygraph.db"

// localConfig points the page cache and request dumps into dev/.state so
// repeated runs against the live sites stay cheap.
const localConfig = `{
  fetch: {
    cache_dir: "dev/.state/pages",
    dump_dir: "dev/.state/dumps",
  },
}
`

func CreateGraphDB() error {
	path, err := devenv.ResolvePath(graphDB)
	if err != nil {
		return err
	}
	_, err = os.Stat(path)
	if err == nil {
		fmt.Println("database already created at", path)
		return nil
	}

	fmt.Println("creating database at", path)
	database, err := sqliteutil.OpenDB(db.Schema, graphDB)
	if err != nil {
		return err
	}
	return database.Close()
}

func WriteLocalConfig() error {
	const name = "footygraph.local.json5"
	_, err := os.Stat(name)
	if err == nil {
		fmt.Println("local config already exists at", name)
		return nil
	}
	fmt.Println("writing local config to", name)
	return os.WriteFile(name, []byte(localConfig), 0666)
}

// WriteDotenv generates an access token for the local graph server.
func WriteDotenv() error {
	const name = ".env.local"
	_, err := os.Stat(name)
	if err == nil {
		fmt.Println("dotenv already exists at", name)
		return nil
	}
	token, err := random.String(32)
	if err != nil {
		return err
	}
	fmt.Println("writing access token to", name)
	return os.WriteFile(name, []byte(fmt.Sprintf("FOOTYGRAPH_ACCESS_TOKEN=%s\n", token)), 0600)
}

func PrintConfigLocations() {
	slog.Info("put OTLP exporter settings in telemetry.json5 and FOOTYGRAPH_DB_URL (for a remote libsql database) in .env.local if you need them.")
}
