package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseParams(t *testing.T) {
	params, err := parseParams([]string{"project_id=3", "file_ids=[4,9]", "label=afib event", "empty="})
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff([]string{"project_id", "file_ids", "label", "empty"}, params.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
	if v, _ := params.Get("project_id"); v != float64(3) {
		t.Fatalf("project_id = %#v", v)
	}
	if v, _ := params.Get("file_ids"); !cmp.Equal(v, []any{float64(4), float64(9)}) {
		t.Fatalf("file_ids = %#v", v)
	}
	if v, _ := params.Get("label"); v != "afib event" {
		t.Fatalf("label = %#v", v)
	}

	if _, err := parseParams([]string{"novalue"}); err == nil {
		t.Fatal("expected an error for a pair without '='")
	}
}

func writeConfig(t *testing.T, baseURL string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), "config.yaml")
	data := "baseURL: " + baseURL + "\nendpoints:\n  getVotesURL: /api/get_votes\n"
	if err := os.WriteFile(file, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	return file
}

func TestCallCommand(t *testing.T) {
	type request struct{ rawQuery, body string }
	requests := make(chan request, 1)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		requests <- request{r.URL.RawQuery, string(data)}
		io.WriteString(w, `{"votes":{"4":[1,0]}}`)
	}))
	defer ts.Close()

	cmd := newRootCommand()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetArgs([]string{
		"--config", writeConfig(t, ts.URL),
		"call", "getVotes",
		"-q", "project_id=1",
		"-q", "file_ids=[4]",
		"-q", "recalculate=true",
		"-b", `window_info={"window_size":30}`,
	})
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	req := <-requests
	if req.rawQuery != "project_id=1&file_ids[]=4&recalculate=true" {
		t.Fatalf("query = %q", req.rawQuery)
	}
	if req.body != `{"window_info":{"window_size":30}}` {
		t.Fatalf("body = %q", req.body)
	}
	if !strings.Contains(out.String(), `"votes"`) {
		t.Fatalf("output = %q", out.String())
	}
}

func TestCallCommand_Failure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	cmd := newRootCommand()
	cmd.SetOut(io.Discard)
	cmd.SetArgs([]string{"--config", writeConfig(t, ts.URL), "call", "getVotes", "-q", "project_id=1"})
	if err := cmd.ExecuteContext(context.Background()); err == nil {
		t.Fatal("expected an error for a 502 reply")
	}
}

func TestEndpointsCommand(t *testing.T) {
	cmd := newRootCommand()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetArgs([]string{"--config", writeConfig(t, "http://localhost:8001"), "endpoints"})
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !strings.Contains(out.String(), "http://localhost:8001/api/get_votes") {
		t.Fatalf("output missing resolved getVotes URL:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "<createAnnotationURL not set>") {
		t.Fatalf("output missing unset marker:\n%s", out.String())
	}
}
