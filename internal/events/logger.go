package events

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/TheMichaelB/textseal/internal/config"
)

// LogLevel represents logging severity.
type LogLevel int

const (
	DebugLevel LogLevel = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

// Logger provides structured logging. Results go to stdout, so the logger
// writes to stderr unless a file is configured.
type Logger struct {
	mu        *sync.Mutex
	level     LogLevel
	format    string
	output    io.Writer
	fields    map[string]interface{}
	color     bool
	timestamp bool
}

// NewLogger creates a logger from config. It writes to output unless a log
// file is configured.
func NewLogger(cfg *config.LogConfig, output io.Writer) (*Logger, error) {
	if cfg.File != "" {
		file, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		output = file
	}

	return &Logger{
		mu:        &sync.Mutex{},
		level:     ParseLevel(cfg.Level),
		format:    cfg.Format,
		output:    output,
		fields:    make(map[string]interface{}),
		color:     cfg.Color && isTerminal(output),
		timestamp: cfg.Timestamp,
	}, nil
}

// WithField returns a logger with an additional field.
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return l.WithFields(map[string]interface{}{key: value})
}

// WithFields returns a logger with additional fields.
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	newFields := make(map[string]interface{}, len(l.fields)+len(fields))
	for k, v := range l.fields {
		newFields[k] = v
	}
	for k, v := range fields {
		newFields[k] = v
	}

	clone := *l
	clone.fields = newFields
	return &clone
}

// WithError adds an error field.
func (l *Logger) WithError(err error) *Logger {
	if err == nil {
		return l
	}
	return l.WithField("error", err.Error())
}

// Debug logs at debug level.
func (l *Logger) Debug(msg string) {
	l.log(DebugLevel, msg)
}

// Info logs at info level.
func (l *Logger) Info(msg string) {
	l.log(InfoLevel, msg)
}

// Warn logs at warn level.
func (l *Logger) Warn(msg string) {
	l.log(WarnLevel, msg)
}

// Error logs at error level.
func (l *Logger) Error(msg string) {
	l.log(ErrorLevel, msg)
}

func (l *Logger) log(level LogLevel, msg string) {
	if level < l.level || l.output == nil {
		return
	}

	entry := l.buildEntry(level, msg)

	if l.mu != nil {
		l.mu.Lock()
		defer l.mu.Unlock()
	}

	if l.format == "json" {
		l.writeJSON(entry)
	} else {
		l.writeText(entry)
	}
}

func (l *Logger) buildEntry(level LogLevel, msg string) map[string]interface{} {
	_, file, line, _ := runtime.Caller(3)
	if idx := strings.LastIndex(file, "/"); idx >= 0 {
		file = file[idx+1:]
	}

	entry := map[string]interface{}{
		"level":  levelString(level),
		"msg":    msg,
		"caller": fmt.Sprintf("%s:%d", file, line),
	}
	if l.timestamp {
		entry["time"] = time.Now().UTC().Format(time.RFC3339Nano)
	}

	for k, v := range l.fields {
		entry[k] = v
	}

	return entry
}

func (l *Logger) writeJSON(entry map[string]interface{}) {
	data, err := json.Marshal(entry)
	if err != nil {
		data = []byte(fmt.Sprintf(`{"level":"error","msg":%q}`, "marshal log entry: "+err.Error()))
	}
	_, _ = l.output.Write(append(data, '\n'))
}

var levelColors = map[string]color.Attribute{
	"DEBUG": color.FgCyan,
	"INFO":  color.FgGreen,
	"WARN":  color.FgYellow,
	"ERROR": color.FgRed,
}

// writeText outputs "TIME [LEVEL] message key=value ..." with sorted keys.
func (l *Logger) writeText(entry map[string]interface{}) {
	levelStr := "[" + strings.ToUpper(entry["level"].(string)) + "]"
	if l.color {
		c := color.New(levelColors[strings.Trim(levelStr, "[]")])
		c.EnableColor()
		levelStr = c.Sprint(levelStr)
	}

	var sb strings.Builder
	if ts, ok := entry["time"]; ok {
		fmt.Fprintf(&sb, "%s ", ts)
	}
	fmt.Fprintf(&sb, "%s %s", levelStr, entry["msg"])

	keys := make([]string, 0, len(entry))
	for k := range entry {
		switch k {
		case "time", "level", "msg", "caller":
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&sb, " %s=%v", k, entry[k])
	}
	sb.WriteByte('\n')

	_, _ = io.WriteString(l.output, sb.String())
}

// ParseLevel maps a config level name to a LogLevel; unknown names are info.
func ParseLevel(s string) LogLevel {
	switch strings.ToLower(s) {
	case "debug":
		return DebugLevel
	case "warn":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

func levelString(l LogLevel) string {
	switch l {
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case WarnLevel:
		return "warn"
	case ErrorLevel:
		return "error"
	default:
		return "unknown"
	}
}

func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}
