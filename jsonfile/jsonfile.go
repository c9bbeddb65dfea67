// Package jsonfile writes human-readable JSON documents.
//
// Output is UTF-8, indented by two spaces, and neither non-ASCII
// characters nor the HTML-sensitive characters <, > and & are escaped.
package jsonfile

import (
	"encoding/json"
	"io"
	"os"

	"github.com/goaux/stacktrace/v2"
)

// Encode writes v to w followed by a newline.
func Encode(w io.Writer, v any) error {
	je := json.NewEncoder(w)
	je.SetEscapeHTML(false)
	je.SetIndent("", "  ")
	return stacktrace.Trace(je.Encode(v))
}

// Write creates or truncates the file at path and writes v to it.
// The file is closed on every path; a failing Close is reported when the
// write itself succeeded.
func Write(path string, v any) (err error) {
	f, err := stacktrace.Trace2(os.Create(path))
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = stacktrace.Trace(cerr)
		}
	}()
	return Encode(f, v)
}

// Read decodes the JSON document at path into v.
func Read(path string, v any) error {
	f, err := stacktrace.Trace2(os.Open(path))
	if err != nil {
		return err
	}
	defer f.Close()
	return stacktrace.Trace(json.NewDecoder(f).Decode(v))
}
