package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/user/ogimage/pkg/ports"
)

// FileOptions configures log rotation for NewFile.
type FileOptions struct {
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// FileLogger appends timestamped lines to a rotating log file.
// Messages are written untranslated so log files stay greppable.
type FileLogger struct {
	level     ports.LogLevel
	component string
	mu        *sync.Mutex
	dropped   *int
	w         io.Writer
	now       func() time.Time
}

// NewFile creates a FileLogger backed by lumberjack. Close the returned
// io.Closer to release the file.
func NewFile(path string, level ports.LogLevel, opts FileOptions) (*FileLogger, io.Closer) {
	lj := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
		Compress:   opts.Compress,
	}
	return newFileLogger(lj, level), lj
}

func newFileLogger(w io.Writer, level ports.LogLevel) *FileLogger {
	return &FileLogger{
		level:   level,
		mu:      &sync.Mutex{},
		dropped: new(int),
		w:       w,
		now:     time.Now,
	}
}

func (l *FileLogger) Debug(msg string, args ...interface{}) { l.log(ports.LevelDebug, msg, args) }
func (l *FileLogger) Info(msg string, args ...interface{})  { l.log(ports.LevelInfo, msg, args) }
func (l *FileLogger) Warn(msg string, args ...interface{})  { l.log(ports.LevelWarn, msg, args) }
func (l *FileLogger) Error(msg string, args ...interface{}) { l.log(ports.LevelError, msg, args) }

// WithComponent returns a logger sharing the same file.
func (l *FileLogger) WithComponent(component string) ports.Logger {
	c := *l
	c.component = component
	return &c
}

func (l *FileLogger) log(level ports.LogLevel, msg string, args []interface{}) {
	if level < l.level {
		return
	}

	var b strings.Builder
	b.WriteString(l.now().Format(time.RFC3339))
	b.WriteByte(' ')
	b.WriteString(strings.ToUpper(level.String()))
	if l.component != "" {
		fmt.Fprintf(&b, " [%s]", l.component)
	}
	b.WriteByte(' ')
	fmt.Fprintf(&b, msg, args...)
	b.WriteByte('\n')

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, err := io.WriteString(l.w, b.String()); err != nil {
		*l.dropped++
	}
}

// Dropped reports how many lines failed to reach the file.
func (l *FileLogger) Dropped() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return *l.dropped
}

var _ ports.Logger = (*FileLogger)(nil)
