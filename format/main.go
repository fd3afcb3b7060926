package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Formatter writes records as rows. Only the named fields are written, in
// the order they were given.
type Formatter interface {
	Write(map[string]any) error
	Close() error
}

// Formats lists the accepted format names.
var Formats = []string{"text", "json"}

func New(format string, fields []string, w io.Writer) (Formatter, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("format: no fields to write")
	}

	switch format {
	case "json":
		return &jsonFormatter{fields, json.NewEncoder(w)}, nil
	case "text":
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		return &textFormatter{fields: fields, tw: tw}, nil
	default:
		return nil, fmt.Errorf("format: invalid format %q", format)
	}
}

type textFormatter struct {
	wroteHeaders bool
	fields       []string
	tw           *tabwriter.Writer
}

func (f *textFormatter) Write(m map[string]any) error {
	if !f.wroteHeaders {
		headers := make([]string, len(f.fields))
		for i, field := range f.fields {
			headers[i] = strings.ToUpper(field)
		}

		if _, err := fmt.Fprintln(f.tw, strings.Join(headers, "\t")); err != nil {
			return err
		}

		f.wroteHeaders = true
	}

	row := make([]string, len(f.fields))
	for i, field := range f.fields {
		if v, ok := m[field]; ok && v != nil {
			row[i] = fmt.Sprint(v)
		} else {
			row[i] = "-"
		}
	}

	if _, err := fmt.Fprintln(f.tw, strings.Join(row, "\t")); err != nil {
		return err
	}

	return nil
}

func (f *textFormatter) Close() error { return f.tw.Flush() }

type jsonFormatter struct {
	fields []string
	*json.Encoder
}

func (f *jsonFormatter) Write(m map[string]any) error {
	filtered := make(map[string]any, len(f.fields))
	for _, field := range f.fields {
		filtered[field] = m[field]
	}

	return f.Encode(filtered)
}

func (f *jsonFormatter) Close() error { return nil }
