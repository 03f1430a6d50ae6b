package logging

import (
	"context"
	"maps"
	"strings"
)

type contextKey struct{}

var fieldsKey contextKey

// ContextWithFields stores fields that context-aware loggers append to every
// entry. Keys already on ctx are overwritten by fields.
func ContextWithFields(ctx context.Context, fields map[string]any) context.Context {
	if ctx == nil || len(fields) == 0 {
		return ctx
	}
	merged := ContextFields(ctx)
	if merged == nil {
		merged = make(map[string]any, len(fields))
	}
	maps.Copy(merged, fields)
	return context.WithValue(ctx, fieldsKey, merged)
}

// ContextWithMenu tags ctx with the menu being edited.
func ContextWithMenu(ctx context.Context, menuCode string) context.Context {
	code := strings.TrimSpace(menuCode)
	if code == "" {
		return ctx
	}
	return ContextWithFields(ctx, map[string]any{fieldMenuCode: code})
}

// MenuFromContext returns the menu code set by ContextWithMenu, if any.
func MenuFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	fields, _ := ctx.Value(fieldsKey).(map[string]any)
	code, _ := fields[fieldMenuCode].(string)
	return code
}

// ContextFields returns a copy of the fields stored on ctx.
func ContextFields(ctx context.Context) map[string]any {
	if ctx == nil {
		return nil
	}
	fields, ok := ctx.Value(fieldsKey).(map[string]any)
	if !ok || len(fields) == 0 {
		return nil
	}
	return maps.Clone(fields)
}
