// Package output renders enriched records as pipe-delimited text lines.
package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Delimiter separates fields; every field, including the last, is followed by
// one.
const Delimiter = "|"

// EOL terminates each record.
const EOL = "\r\n"

// Writer writes delimiter-joined, EOL-terminated records to a sink.
type Writer struct {
	bw    *bufio.Writer
	lines int
}

// NewWriter wraps w in a buffered record writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bufio.NewWriter(w)}
}

// WriteRecord writes one record: fields joined by the delimiter, a trailing
// delimiter, and the line terminator.
func (w *Writer) WriteRecord(fields []string) error {
	if _, err := w.bw.WriteString(strings.Join(fields, Delimiter)); err != nil {
		return fmt.Errorf("writing record: %w", err)
	}
	if _, err := w.bw.WriteString(Delimiter + EOL); err != nil {
		return fmt.Errorf("writing record: %w", err)
	}
	w.lines++
	return nil
}

// Lines returns the number of records written.
func (w *Writer) Lines() int {
	return w.lines
}

// Flush flushes buffered output to the underlying sink.
func (w *Writer) Flush() error {
	if err := w.bw.Flush(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}
	return nil
}
