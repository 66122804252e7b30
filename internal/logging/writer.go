package logging

import (
	"bytes"
	"log/slog"
	"strings"
)

// Writer is an io.Writer that turns every written line into an info record.
type Writer struct {
	logger *slog.Logger
	msg    string
	buf    bytes.Buffer
}

// NewWriter constructs a Writer emitting records with the given message.
func NewWriter(logger *slog.Logger, msg string) *Writer {
	return &Writer{logger: logger, msg: msg}
}

// Write logs each complete line in p; a trailing partial line is held until
// the next Write or Flush.
func (w *Writer) Write(p []byte) (int, error) {
	w.buf.Write(p)
	for {
		line, err := w.buf.ReadString('\n')
		if err != nil {
			// Partial line: put it back.
			w.buf.Reset()
			w.buf.WriteString(line)
			break
		}
		w.emit(line)
	}
	return len(p), nil
}

// Flush logs any buffered partial line.
func (w *Writer) Flush() {
	if w.buf.Len() > 0 {
		w.emit(w.buf.String())
		w.buf.Reset()
	}
}

func (w *Writer) emit(line string) {
	line = strings.TrimRight(line, "\r\n")
	if line == "" || w.logger == nil {
		return
	}
	w.logger.Info(w.msg, "line", line)
}
