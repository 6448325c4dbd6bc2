package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Name    string            `json:"name"`
	Delay   int               `json:"delay"`
	Aliases map[string]string `json:"aliases"`
}

func writeFile(t testing.TB, path, contents string) {
	err := os.WriteFile(path, []byte(contents), 0600)
	if err != nil {
		t.Fatal(err)
	}
}

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "footygraph.json5")

	_, err := ReadConfig[testConfig](name)
	require.ErrorIs(t, err, os.ErrNotExist)

	writeFile(t, name, `{
		// comments are allowed
		name: "default",
		delay: 4000,
		aliases: {Wolves: "Wolverhampton Wanderers"},
	}`)
	cfg, err := ReadConfig[testConfig](name)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, "default", cfg.Name)
	require.Equal(t, 4000, cfg.Delay)

	writeFile(t, filepath.Join(dir, "footygraph.local.json5"), `{delay: 10}`)
	cfg, err = ReadConfig[testConfig](name)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, "default", cfg.Name)
	require.Equal(t, 10, cfg.Delay)
	require.Equal(t, "Wolverhampton Wanderers", cfg.Aliases["Wolves"])
}

func TestOverrideFromEnv(t *testing.T) {
	value := "from-config"
	t.Setenv("FOOTYGRAPH_TEST_TOKEN", "")
	OverrideFromEnv(&value, "FOOTYGRAPH_TEST_TOKEN")
	require.Equal(t, "from-config", value)

	t.Setenv("FOOTYGRAPH_TEST_TOKEN", "from-env")
	OverrideFromEnv(&value, "FOOTYGRAPH_TEST_TOKEN")
	require.Equal(t, "from-env", value)
}

func TestLoadDotenv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	writeFile(t, envFile, "FOOTYGRAPH_DOTENV_TEST=loaded\n")
	t.Cleanup(func() { os.Unsetenv("FOOTYGRAPH_DOTENV_TEST") })

	err := LoadDotenv(filepath.Join(dir, "missing.env"), envFile)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, "loaded", os.Getenv("FOOTYGRAPH_DOTENV_TEST"))
}
