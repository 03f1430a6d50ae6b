package di_test

import (
	"context"
	"testing"

	"github.com/goliatone/go-menu-editor/internal/di"
	"github.com/goliatone/go-menu-editor/internal/editor"
	"github.com/goliatone/go-menu-editor/internal/runtimeconfig"
	"github.com/goliatone/go-menu-editor/pkg/interfaces"
)

func TestContainerLogsConfigurationThroughProvider(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Storage.Driver = runtimeconfig.DriverMemory

	rec := newRecordingProvider()

	if _, err := di.NewContainer(context.Background(), cfg, di.WithLoggerProvider(rec)); err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}

	entry := rec.find("container.configured")
	if entry == nil {
		t.Fatalf("expected container.configured log entry, got %#v", rec.entries)
	}
	if got := entry.fields["driver"]; got != runtimeconfig.DriverMemory {
		t.Fatalf("expected driver field to be memory, got %v", got)
	}
	if got := entry.fields["module"]; got != "menus.container" {
		t.Fatalf("expected module field to be menus.container, got %v", got)
	}
}

func TestContainerSessionsLogUnderEditorModule(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Storage.Driver = runtimeconfig.DriverMemory

	rec := newRecordingProvider()
	container, err := di.NewContainer(context.Background(), cfg, di.WithLoggerProvider(rec))
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}

	session, err := container.Session(context.Background(), "main")
	if err != nil {
		t.Fatalf("Session returned error: %v", err)
	}
	if _, err := session.AddRoot(editor.NodeInput{Name: "Home"}); err != nil {
		t.Fatalf("AddRoot returned error: %v", err)
	}
	if err := session.Save(context.Background()); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	entry := rec.find("editor.save.success")
	if entry == nil {
		t.Fatalf("expected editor.save.success log entry, got %#v", rec.entries)
	}
	if got := entry.fields["module"]; got != "menus.editor" {
		t.Fatalf("expected module field to be menus.editor, got %v", got)
	}
	if got := entry.fields["menu"]; got != "main" {
		t.Fatalf("expected menu field to be main, got %v", got)
	}

	if rec.find("menus.tree.saved") == nil {
		t.Fatalf("expected store to log menus.tree.saved, got %#v", rec.entries)
	}
}

type recordingProvider struct {
	entries []recordedEntry
}

type recordedEntry struct {
	level  string
	msg    string
	fields map[string]any
}

func newRecordingProvider() *recordingProvider {
	return &recordingProvider{entries: []recordedEntry{}}
}

func (p *recordingProvider) GetLogger(name string) interfaces.Logger {
	return &recordingLogger{
		provider: p,
		fields: map[string]any{
			"logger": name,
		},
	}
}

func (p *recordingProvider) record(entry recordedEntry) {
	p.entries = append(p.entries, entry)
}

func (p *recordingProvider) find(msg string) *recordedEntry {
	for i := range p.entries {
		if p.entries[i].msg == msg {
			return &p.entries[i]
		}
	}
	return nil
}

type recordingLogger struct {
	provider *recordingProvider
	fields   map[string]any
}

var _ interfaces.Logger = (*recordingLogger)(nil)

func (l *recordingLogger) Trace(msg string, args ...any) { l.log("TRACE", msg, args...) }
func (l *recordingLogger) Debug(msg string, args ...any) { l.log("DEBUG", msg, args...) }
func (l *recordingLogger) Info(msg string, args ...any)  { l.log("INFO", msg, args...) }
func (l *recordingLogger) Warn(msg string, args ...any)  { l.log("WARN", msg, args...) }
func (l *recordingLogger) Error(msg string, args ...any) { l.log("ERROR", msg, args...) }
func (l *recordingLogger) Fatal(msg string, args ...any) { l.log("FATAL", msg, args...) }

func (l *recordingLogger) WithFields(fields map[string]any) interfaces.Logger {
	if len(fields) == 0 {
		return l
	}
	merged := make(map[string]any, len(l.fields)+len(fields))
	for key, value := range l.fields {
		merged[key] = value
	}
	for key, value := range fields {
		merged[key] = value
	}
	return &recordingLogger{
		provider: l.provider,
		fields:   merged,
	}
}

func (l *recordingLogger) WithContext(context.Context) interfaces.Logger {
	return &recordingLogger{
		provider: l.provider,
		fields:   cloneFields(l.fields),
	}
}

func (l *recordingLogger) log(level, msg string, args ...any) {
	fields := cloneFields(l.fields)
	for i := 0; i < len(args); i += 2 {
		if i+1 >= len(args) {
			break
		}
		key, _ := args[i].(string)
		if key == "" {
			continue
		}
		fields[key] = args[i+1]
	}
	l.provider.record(recordedEntry{
		level:  level,
		msg:    msg,
		fields: fields,
	})
}

func cloneFields(fields map[string]any) map[string]any {
	if len(fields) == 0 {
		return map[string]any{}
	}
	copied := make(map[string]any, len(fields))
	for key, value := range fields {
		copied[key] = value
	}
	return copied
}
