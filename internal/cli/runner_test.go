package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Makepad-fr/postview/internal/model"
	"github.com/Makepad-fr/postview/internal/tui"
	"github.com/Makepad-fr/postview/internal/view"
)

const postsJSON = `[
	{"id": 1, "title": "Hello", "body": "World"},
	{"id": 2, "title": "Foo", "body": "Bar"},
	{"id": 3, "title": "qui est esse", "body": "est rerum tempore"}
]`

// isolate points config lookup at an empty directory and clears overrides.
func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	for _, k := range []string{"POSTVIEW_SOURCE_URL", "POSTVIEW_SOURCE_FILE", "POSTVIEW_PAGE_SIZE", "POSTVIEW_THEME", "POSTVIEW_TIMEOUT", "POSTVIEW_LOG_FILE", "POSTVIEW_VERBOSE"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func postsFile(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "posts.json")
	require.NoError(t, os.WriteFile(p, []byte(postsJSON), 0o644))
	return p
}

func run(t *testing.T, opt Options, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	opt.Out, opt.Err = &out, &errOut
	if opt.Logger == nil {
		opt.Logger = zap.NewNop()
	}
	code := Run(args, opt)
	return code, out.String(), errOut.String()
}

func TestListFromFile(t *testing.T) {
	isolate(t)
	code, out, _ := run(t, Options{}, "ls", "--theme", "mono", "--file", postsFile(t))
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Posts")
	assert.Contains(t, out, "Hello")
	assert.Contains(t, out, "qui est esse")
	assert.Contains(t, out, "page 1/1")
}

func TestListQuery(t *testing.T) {
	isolate(t)
	code, out, _ := run(t, Options{}, "ls", "--theme", "mono", "--file", postsFile(t), "-q", "FOO")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Foo")
	assert.NotContains(t, out, "Hello")
	assert.Contains(t, out, "filter: FOO")
	assert.Contains(t, out, "ok 1 of 3 posts from ")
}

func TestListNoMatch(t *testing.T) {
	isolate(t)
	code, out, _ := run(t, Options{}, "ls", "--theme", "mono", "--file", postsFile(t), "-q", "zzz")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "There are no records to display")
}

func TestListSortAndPage(t *testing.T) {
	isolate(t)
	f := postsFile(t)

	code, out, _ := run(t, Options{}, "ls", "--theme", "mono", "--file", f, "--page-size", "1", "--sort", "title", "--page", "1")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Foo")
	assert.NotContains(t, out, "Hello")
	assert.Contains(t, out, "page 1/3")

	code, out, _ = run(t, Options{}, "ls", "--theme", "mono", "--file", f, "--page-size", "1", "--sort", "ID", "--desc", "--page", "1")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "qui est esse")
	assert.NotContains(t, out, "Foo")
}

func TestListFromHTTP(t *testing.T) {
	isolate(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, postsJSON)
	}))
	defer srv.Close()

	code, out, _ := run(t, Options{}, "ls", "--theme", "mono", "--url", srv.URL+"/posts")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Hello")
}

func TestListLoadFailure(t *testing.T) {
	isolate(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	code, _, errOut := run(t, Options{}, "ls", "--theme", "mono", "--url", srv.URL)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "Request failed with status code 503")
}

func TestUsageErrors(t *testing.T) {
	isolate(t)
	f := postsFile(t)
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"ls", "--nope"}},
		{"unknown command", []string{"rm", "3"}},
		{"bad sort", []string{"ls", "--file", f, "--sort", "Edit/Delete"}},
		{"bad page", []string{"ls", "--file", f, "--page", "0"}},
		{"bad page size", []string{"ls", "--file", f, "--page-size", "-1"}},
		{"bad theme", []string{"ls", "--file", f, "--theme", "pink"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, errOut := run(t, Options{}, tt.args...)
			assert.Equal(t, 2, code)
			assert.NotEmpty(t, errOut)
		})
	}
}

func TestInteractiveGetsConfig(t *testing.T) {
	isolate(t)
	f := postsFile(t)

	var got tui.Options
	opt := Options{
		Interactive: func(o tui.Options) (view.State, error) {
			got = o
			return view.Apply(context.Background(), view.New(), o.Loader), nil
		},
	}
	code, _, _ := run(t, opt, "--file", f, "--page-size", "25")
	require.Equal(t, 0, code)
	assert.Equal(t, 25, got.PageSize)
	assert.Equal(t, f, got.Source)
	require.NotNil(t, got.Loader)

	records, err := got.Loader.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.Record{ID: 1, Title: "Hello", Body: "World"}, records[0])
}

func TestInteractiveError(t *testing.T) {
	isolate(t)
	opt := Options{
		Interactive: func(tui.Options) (view.State, error) {
			return view.New(), errors.New("no tty")
		},
	}
	code, _, errOut := run(t, opt)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "tui: no tty")
}

func TestConfigCommand(t *testing.T) {
	isolate(t)
	t.Setenv("POSTVIEW_PAGE_SIZE", "42")

	code, out, _ := run(t, Options{}, "config", "--url", "http://localhost:8080/posts")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "page_size: 42")
	assert.Contains(t, out, "url: http://localhost:8080/posts")
}

func TestConfigFileFlag(t *testing.T) {
	isolate(t)
	p := filepath.Join(t.TempDir(), "c.yaml")
	require.NoError(t, os.WriteFile(p, []byte("theme: neon\npage_size: 5\n"), 0o600))

	code, out, _ := run(t, Options{}, "config", "--config", p)
	require.Equal(t, 0, code)
	assert.Contains(t, out, "theme: neon")
	assert.Contains(t, out, "page_size: 5")
}
