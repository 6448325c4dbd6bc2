package restyutil

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/require"
)

type memoryOutput struct {
	mutex    sync.Mutex
	messages map[string]string
}

func (o *memoryOutput) Write(id, contents string) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.messages[id] = contents
}

func TestDumpResponses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html>squad</html>"))
	}))
	defer server.Close()

	output := &memoryOutput{messages: map[string]string{}}
	client := resty.New()
	DumpResponses(client, output)

	_, err := client.R().SetHeader("User-Agent", "footygraph-test").Get(server.URL + "/en/squads/arsenal")
	if err != nil {
		t.Fatal(err)
	}

	require.Len(t, output.messages, 1)
	for id, contents := range output.messages {
		require.Regexp(t, `^0001-.*en_squads_arsenal\.txt$`, id)
		require.Contains(t, contents, "---- REQUEST ----")
		require.Contains(t, contents, "User-Agent: footygraph-test")
		require.Contains(t, contents, "<html>squad</html>")
	}
}

func TestFilesystemOutput(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "dumps")
	output, err := NewFilesystemOutput(dir)
	if err != nil {
		t.Fatal(err)
	}
	output.Write("0001-page.txt", "contents")

	written, err := os.ReadFile(filepath.Join(dir, "0001-page.txt"))
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, "contents", string(written))
}
