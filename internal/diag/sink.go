// Package diag provides the compiler's diagnostics sink: a single
// process-wide-or-per-run counter of error-severity messages, the only
// machine-readable signal a caller has for whether an emitted assembly file
// is safe to assemble.
package diag

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Level is the severity of a diagnostic message.
type Level int

const (
	Debug Level = iota
	Info
	Warning
	Error
)

func (l Level) String() string {
	switch l {
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warning:
		return "WARNING"
	case Error:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Sink counts error-level diagnostics and writes every diagnostic, of any
// severity, to an underlying writer with a timestamp and severity prefix.
// A Sink is safe for concurrent use: one compilation is single-threaded,
// but nothing stops two goroutines in the same process (e.g. tests running
// compilations in parallel) from sharing one Sink across compilations.
type Sink struct {
	mu         sync.Mutex
	w          io.Writer
	errorCount int
	now        func() time.Time // overridable for deterministic tests
}

// NewSink returns a Sink that writes to w.
func NewSink(w io.Writer) *Sink {
	return &Sink{w: w, now: time.Now}
}

// Default is the sink used by callers that do not need an isolated count,
// mirroring the distilled spec's single global counter.
var Default = NewSink(os.Stderr)

func (s *Sink) log(level Level, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	s.mu.Lock()
	defer s.mu.Unlock()
	if level == Error {
		s.errorCount++
	}
	fmt.Fprintf(s.w, "[%s][%s]: %s\n", s.now().Format("2006-01-02 15:04:05"), level, msg)
}

func (s *Sink) Debugf(format string, args ...any) { s.log(Debug, format, args...) }
func (s *Sink) Infof(format string, args ...any)  { s.log(Info, format, args...) }
func (s *Sink) Warnf(format string, args ...any)  { s.log(Warning, format, args...) }
func (s *Sink) Errorf(format string, args ...any) { s.log(Error, format, args...) }

// ErrorCount returns the number of Error-severity messages logged so far.
func (s *Sink) ErrorCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errorCount
}

// Reset zeroes the error counter without affecting the underlying writer.
func (s *Sink) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errorCount = 0
}
