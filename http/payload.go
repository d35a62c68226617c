package http

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"
)

const (
	ContentTypeJSON = "application/json"
)

// A file field of a multipart form.
type FilePart struct {
	Filename    string
	ContentType string
	Reader      io.Reader
}

// JSONBody encodes params as one JSON object.
func JSONBody(params *Params) (io.Reader, string, error) {
	data, err := json.Marshal(params)
	if err != nil {
		return nil, "", err
	}
	return bytes.NewReader(data), ContentTypeJSON, nil
}

// FormBody encodes params as multipart/form-data, one field per param in
// order. Slices are joined with commas, *FilePart values become file parts
// and nil (a nil *FilePart included) is sent as an empty field.
func FormBody(params *Params) (io.Reader, string, error) {
	body := new(bytes.Buffer)
	w := multipart.NewWriter(body)

	for _, key := range params.Keys() {
		value, _ := params.Get(key)
		if file, ok := value.(*FilePart); ok && file != nil {
			if err := writeFilePart(w, key, file); err != nil {
				return nil, "", err
			}
			continue
		}
		if err := w.WriteField(key, formValue(value)); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}

	return body, w.FormDataContentType(), nil
}

func writeFilePart(w *multipart.Writer, key string, file *FilePart) error {
	filename := file.Filename
	if filename == "" {
		filename = "blob"
	}
	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="`+escapeQuotes(key)+`"; filename="`+escapeQuotes(filename)+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	if err != nil {
		return err
	}
	if file.Reader == nil {
		return nil
	}
	_, err = io.Copy(part, file.Reader)
	return err
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}

func formValue(value any) string {
	values, ok := sliceValues(value)
	if !ok {
		return stringify(value)
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = stringify(v)
	}
	return strings.Join(parts, ",")
}
