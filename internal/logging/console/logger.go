// Package console is the dependency-free logger provider. It writes one
// key=value line per entry, sorted by key, to stderr by default so the
// terminal editor keeps stdout.
package console

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/goliatone/go-menu-editor/internal/logging"
	"github.com/goliatone/go-menu-editor/pkg/interfaces"
)

// Level is the severity of an entry.
type Level uint8

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

var levelNames = [...]string{"TRACE", "DEBUG", "INFO", "WARN", "ERROR", "FATAL"}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "INFO"
}

// ParseLevel maps a configured level name onto a Level. "warning" is
// accepted for WARN.
func ParseLevel(value string) (Level, error) {
	needle := strings.ToUpper(strings.TrimSpace(value))
	if needle == "WARNING" {
		return LevelWarn, nil
	}
	if idx := slices.Index(levelNames[:], needle); idx >= 0 {
		return Level(idx), nil
	}
	return LevelInfo, fmt.Errorf("console: unknown level %q", value)
}

// Options configures the provider. MinLevel defaults to DEBUG.
type Options struct {
	Writer   io.Writer
	TimeFunc func() time.Time
	MinLevel *Level
}

type sink struct {
	mu       sync.Mutex
	out      io.Writer
	now      func() time.Time
	minLevel Level
}

type provider struct {
	sink *sink
}

// NewProvider returns a provider whose loggers share one writer.
func NewProvider(opts Options) interfaces.LoggerProvider {
	s := &sink{out: opts.Writer, now: opts.TimeFunc, minLevel: LevelDebug}
	if s.out == nil {
		s.out = os.Stderr
	}
	if s.now == nil {
		s.now = time.Now
	}
	if opts.MinLevel != nil {
		s.minLevel = *opts.MinLevel
	}
	return provider{sink: s}
}

func (p provider) GetLogger(name string) interfaces.Logger {
	return logger{sink: p.sink, fields: map[string]any{"logger": name}}
}

// logger is immutable; WithFields and WithContext return copies.
type logger struct {
	sink   *sink
	fields map[string]any
	ctx    context.Context //nolint:containedctx // context fields are read per entry
}

var (
	_ interfaces.Logger       = logger{}
	_ interfaces.FieldsLogger = logger{}
)

func (l logger) Trace(msg string, args ...any) { l.write(LevelTrace, msg, args) }
func (l logger) Debug(msg string, args ...any) { l.write(LevelDebug, msg, args) }
func (l logger) Info(msg string, args ...any)  { l.write(LevelInfo, msg, args) }
func (l logger) Warn(msg string, args ...any)  { l.write(LevelWarn, msg, args) }
func (l logger) Error(msg string, args ...any) { l.write(LevelError, msg, args) }
func (l logger) Fatal(msg string, args ...any) { l.write(LevelFatal, msg, args) }

func (l logger) WithFields(fields map[string]any) interfaces.Logger {
	if len(fields) > 0 {
		l.fields = withEntries(l.fields, fields)
	}
	return l
}

func (l logger) WithContext(ctx context.Context) interfaces.Logger {
	l.ctx = ctx
	return l
}

func (l logger) write(level Level, msg string, args []any) {
	if l.sink == nil || level < l.sink.minLevel {
		return
	}
	fields := withEntries(l.fields, logging.ContextFields(l.ctx))
	addArgs(fields, args)

	var b strings.Builder
	b.WriteString(l.sink.now().UTC().Format(time.RFC3339Nano))
	b.WriteString(" " + level.String() + " " + msg)
	for _, key := range slices.Sorted(maps.Keys(fields)) {
		b.WriteString(" " + key + "=" + render(fields[key]))
	}
	b.WriteByte('\n')

	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	_, _ = io.WriteString(l.sink.out, b.String())
}

func withEntries(base, extra map[string]any) map[string]any {
	out := maps.Clone(base)
	if out == nil {
		out = make(map[string]any, len(extra))
	}
	maps.Copy(out, extra)
	return out
}

// addArgs pairs key/value arguments into fields. A dangling value or a
// non-string key is stored as field_<n>.
func addArgs(fields map[string]any, args []any) {
	for i := 0; i < len(args); i += 2 {
		key, ok := args[i].(string)
		if i+1 == len(args) || !ok || key == "" {
			key = "field_" + strconv.Itoa(i/2)
		}
		if i+1 == len(args) {
			fields[key] = args[i]
			return
		}
		fields[key] = args[i+1]
	}
}

func render(value any) string {
	var s string
	switch v := value.(type) {
	case nil:
		return "null"
	case time.Time:
		return v.UTC().Format(time.RFC3339Nano)
	case error:
		s = v.Error()
	default:
		s = fmt.Sprint(v)
	}
	if s == "" {
		return `""`
	}
	if strings.ContainsFunc(s, func(r rune) bool { return r <= ' ' || r == '=' }) {
		return strconv.Quote(s)
	}
	return s
}
