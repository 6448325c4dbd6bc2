package restyutil

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync/atomic"

	devenv "footygraph/dev/env"

	"github.com/go-resty/resty/v2"
)

// Output receives one rendered http exchange per response.
type Output interface {
	Write(id string, contents string)
}

// FilesystemOutput writes every exchange into its own file under a directory.
type FilesystemOutput struct {
	directory string
}

// NewFilesystemOutput clears and recreates dir (which may start with <dev_state>).
func NewFilesystemOutput(dir string) (FilesystemOutput, error) {
	dir, err := devenv.ResolvePath(dir)
	if err != nil {
		return FilesystemOutput{}, err
	}
	err = os.RemoveAll(dir)
	if err != nil {
		return FilesystemOutput{}, err
	}
	err = os.MkdirAll(dir, 0777)
	if err != nil {
		return FilesystemOutput{}, err
	}
	return FilesystemOutput{directory: dir}, nil
}

func (o FilesystemOutput) Write(id string, contents string) {
	err := os.WriteFile(filepath.Join(o.directory, id), []byte(contents), 0600)
	if err != nil {
		slog.Warn("failed to write http dump", "id", id, "err", err)
	}
}

var unsafeFilename = regexp.MustCompile(`[^A-Za-z0-9\-_.]+`)

func dumpId(n uint64, req *resty.Request) string {
	name := req.URL
	if req.RawRequest != nil && req.RawRequest.URL != nil {
		name = req.RawRequest.URL.Host + req.RawRequest.URL.Path
	}
	name = strings.Trim(unsafeFilename.ReplaceAllString(name, "_"), "_")
	if len(name) > 96 {
		name = name[:96]
	}
	return fmt.Sprintf("%04d-%s.txt", n, name)
}

// DumpResponses writes every response the client receives to output.
// A nil output leaves the client untouched.
func DumpResponses(client *resty.Client, output Output) {
	if output == nil {
		return
	}
	var counter uint64
	client.OnAfterResponse(func(_ *resty.Client, res *resty.Response) error {
		n := atomic.AddUint64(&counter, 1)
		output.Write(dumpId(n, res.Request), formatExchange(res))
		return nil
	})
}

func formatHeaders(headers http.Header) string {
	keys := make([]string, 0, len(headers))
	for k := range headers {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := []string{}
	for _, k := range keys {
		for _, v := range headers[k] {
			lines = append(lines, fmt.Sprintf("%s: %s", k, v))
		}
	}
	return strings.Join(lines, "\n")
}

func formatExchange(res *resty.Response) string {
	var requestHeaders http.Header = res.Request.Header
	if res.Request.RawRequest != nil {
		requestHeaders = res.Request.RawRequest.Header
	}

	var out strings.Builder
	out.WriteString("---- REQUEST ----\n\n")
	fmt.Fprintf(&out, "%s %s\n\n", res.Request.Method, res.Request.URL)
	out.WriteString(formatHeaders(requestHeaders))
	out.WriteString("\n\n---- RESPONSE ----\n\n")
	fmt.Fprintf(&out, "%d %s\n\n", res.StatusCode(), res.Request.URL)
	out.WriteString(formatHeaders(res.Header()))
	out.WriteString("\n\n")
	out.Write(res.Body())
	return out.String()
}
