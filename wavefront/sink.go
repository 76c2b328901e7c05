// SPDX-License-Identifier: GPL-2.0-or-later

package wavefront

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// WriteError reports a failed write to one of the output sinks. It is fatal
// for the run.
type WriteError struct {
	Sink string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Sink, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// sink buffers records. bufio keeps the first error, so it is only checked
// on flush.
type sink struct {
	name string
	w    *bufio.Writer
}

func newSink(name string, w io.Writer) *sink {
	if w == nil {
		return nil
	}
	return &sink{name: name, w: bufio.NewWriter(w)}
}

func (s *sink) printf(format string, a ...any) {
	fmt.Fprintf(s.w, format, a...)
}

func (s *sink) flush() error {
	if err := s.w.Flush(); err != nil {
		return &WriteError{Sink: s.name, Err: err}
	}
	return nil
}

// ftoa prints the shortest representation that reads back as the same float32.
func ftoa(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}

func basename(path string) string {
	if i := strings.LastIndexByte(path, os.PathSeparator); i >= 0 {
		return path[i+1:]
	}
	return path
}
