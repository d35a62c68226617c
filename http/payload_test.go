package http

import (
	"io"
	"mime"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestJSONBody(t *testing.T) {
	body, contentType, err := JSONBody(NewParams().
		Set("title", "amp_threshold").
		Set("value", 0.75))
	if err != nil {
		t.Fatal(err)
	}
	if contentType != ContentTypeJSON {
		t.Fatalf("content type = %q", contentType)
	}
	data, _ := io.ReadAll(body)
	if got, want := string(data), `{"title":"amp_threshold","value":0.75}`; got != want {
		t.Fatalf("body = %s, want %s", got, want)
	}
}

func TestFormBody(t *testing.T) {
	body, contentType, err := FormBody(NewParams().
		Set("project_id", 12).
		Set("tags", []string{"a", "b"}).
		Set("empty", nil).
		Set("file_payload", &FilePart{
			Filename: "segments.csv",
			Reader:   strings.NewReader("filename,series,left,right\n"),
		}))
	if err != nil {
		t.Fatal(err)
	}

	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil || mediaType != "multipart/form-data" {
		t.Fatalf("content type = %q (%v)", contentType, err)
	}

	type field struct {
		Name, Filename, ContentType, Value string
	}
	var got []field
	r := multipart.NewReader(body, params["boundary"])
	for {
		part, err := r.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		data, _ := io.ReadAll(part)
		got = append(got, field{
			Name:        part.FormName(),
			Filename:    part.FileName(),
			ContentType: part.Header.Get("Content-Type"),
			Value:       string(data),
		})
	}

	want := []field{
		{Name: "project_id", Value: "12"},
		{Name: "tags", Value: "a,b"},
		{Name: "empty", Value: ""},
		{Name: "file_payload", Filename: "segments.csv", ContentType: "application/octet-stream", Value: "filename,series,left,right\n"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("form mismatch (-want +got):\n%s", diff)
	}
}

func TestFormBody_NilFilePart(t *testing.T) {
	body, contentType, err := FormBody(NewParams().Set("file_payload", (*FilePart)(nil)))
	if err != nil {
		t.Fatal(err)
	}

	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		t.Fatal(err)
	}
	part, err := multipart.NewReader(body, params["boundary"]).NextPart()
	if err != nil {
		t.Fatal(err)
	}
	data, _ := io.ReadAll(part)
	if part.FormName() != "file_payload" || part.FileName() != "" || len(data) != 0 {
		t.Fatalf("part %q (%q) = %q", part.FormName(), part.FileName(), data)
	}
}
