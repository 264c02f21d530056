package logging

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// Format is the log line format
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// logFile serializes writes to a file shared by a logger and everything
// derived from it via WithFields
type logFile struct {
	mu   sync.Mutex
	file *os.File
}

func (f *logFile) writeString(s string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.file != nil {
		_, _ = f.file.WriteString(s)
	}
}

func (f *logFile) close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.file == nil {
		return nil
	}
	err := f.file.Close()
	f.file = nil
	return err
}

// FileLogger appends one line per entry to a log file. Entries below the
// configured level are dropped. Safe for concurrent use, including across
// loggers derived with WithFields.
type FileLogger struct {
	out    *logFile
	format Format
	level  Level
	fields Fields
}

// NewFileLogger opens (or creates) path in append mode
func NewFileLogger(path string, format Format, level Level) (*FileLogger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return &FileLogger{out: &logFile{file: file}, format: format, level: level}, nil
}

func (l *FileLogger) Debug(ctx context.Context, msg string, fields Fields) {
	l.write(DebugLevel, msg, nil, fields)
}

func (l *FileLogger) Info(ctx context.Context, msg string, fields Fields) {
	l.write(InfoLevel, msg, nil, fields)
}

func (l *FileLogger) Warn(ctx context.Context, msg string, fields Fields) {
	l.write(WarnLevel, msg, nil, fields)
}

func (l *FileLogger) Error(ctx context.Context, msg string, err error, fields Fields) {
	l.write(ErrorLevel, msg, err, fields)
}

// WithFields returns a logger sharing the same file with extra fields
func (l *FileLogger) WithFields(fields Fields) Logger {
	merged := make(Fields, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &FileLogger{out: l.out, format: l.format, level: l.level, fields: merged}
}

// Close closes the underlying file, silencing every logger that shares it
func (l *FileLogger) Close() error {
	return l.out.close()
}

func (l *FileLogger) write(level Level, msg string, err error, fields Fields) {
	if level < l.level {
		return
	}

	merged := make(Fields, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}

	var line string
	if l.format == FormatJSON {
		line = l.jsonLine(level, msg, err, merged)
	} else {
		line = l.textLine(level, msg, err, merged)
	}

	l.out.writeString(line)
}

func (l *FileLogger) jsonLine(level Level, msg string, err error, fields Fields) string {
	entry := map[string]interface{}{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"level":     level.String(),
		"message":   msg,
	}
	if err != nil {
		entry["error"] = err.Error()
	}
	for k, v := range fields {
		entry[k] = v
	}

	data, marshalErr := json.Marshal(entry)
	if marshalErr != nil {
		return ""
	}
	return string(data) + "\n"
}

func (l *FileLogger) textLine(level Level, msg string, err error, fields Fields) string {
	var b strings.Builder
	b.WriteString(time.Now().UTC().Format(time.RFC3339))
	b.WriteString(" [")
	b.WriteString(level.String())
	b.WriteString("] ")
	b.WriteString(msg)

	if err != nil {
		fmt.Fprintf(&b, " error=%q", err.Error())
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, fields[k])
	}

	b.WriteString("\n")
	return b.String()
}
