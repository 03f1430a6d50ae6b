package icons

import (
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-slug"
)

var (
	ErrInvalidIcon   = errors.New("icons: icon name is required")
	ErrDuplicateIcon = errors.New("icons: icon already registered")
)

// Icon is a resolved icon reference.
type Icon struct {
	Name     string
	Glyph    string
	Fallback bool
}

// Registry maps opaque icon references to glyphs. Unknown references resolve
// to the fallback icon.
type Registry struct {
	mu       sync.RWMutex
	icons    map[string]Icon
	aliases  map[string]string
	fallback Icon
}

// Option configures a Registry.
type Option func(*Registry)

// WithFallback sets the icon returned for unknown references.
func WithFallback(name, glyph string) Option {
	return func(r *Registry) {
		r.fallback = Icon{Name: normalizeName(name), Glyph: glyph, Fallback: true}
	}
}

// WithAliases maps alternative reference names onto registered icons.
func WithAliases(aliases map[string]string) Option {
	return func(r *Registry) {
		for alias, target := range aliases {
			if key := normalizeName(alias); key != "" {
				r.aliases[key] = normalizeName(target)
			}
		}
	}
}

// NewRegistry builds an empty registry with a generic fallback glyph.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		icons:    make(map[string]Icon),
		aliases:  make(map[string]string),
		fallback: Icon{Name: "default", Glyph: "•", Fallback: true},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// DefaultRegistry returns a registry preloaded with glyphs for common
// navigation entries.
func DefaultRegistry(opts ...Option) *Registry {
	r := NewRegistry(opts...)
	for name, glyph := range builtin {
		_ = r.Register(name, glyph)
	}
	return r
}

var builtin = map[string]string{
	"home":     "⌂",
	"about":    "ℹ",
	"blog":     "✎",
	"contact":  "✉",
	"docs":     "☰",
	"search":   "⌕",
	"settings": "⚙",
	"star":     "★",
	"user":     "☺",
	"link":     "↗",
	"folder":   "▸",
}

// Register stores an icon. Names are normalized to slugs.
func (r *Registry) Register(name, glyph string) error {
	key := normalizeName(name)
	if key == "" || strings.TrimSpace(glyph) == "" {
		return ErrInvalidIcon
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.icons[key]; exists {
		return ErrDuplicateIcon
	}
	r.icons[key] = Icon{Name: key, Glyph: glyph}
	return nil
}

// Resolve returns the icon for a reference, following aliases, or the
// fallback icon when nothing matches.
func (r *Registry) Resolve(ref string) Icon {
	key := normalizeName(ref)

	r.mu.RLock()
	defer r.mu.RUnlock()

	if key == "" {
		return r.fallback
	}
	if icon, ok := r.icons[key]; ok {
		return icon
	}
	if target, ok := r.aliases[key]; ok {
		if icon, ok := r.icons[target]; ok {
			return icon
		}
	}
	return r.fallback
}

// Known reports whether a reference resolves without the fallback.
func (r *Registry) Known(ref string) bool {
	return !r.Resolve(ref).Fallback
}

// Names lists the registered icon names in order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.icons))
	for name := range r.icons {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalizeName(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ""
	}
	normalized, err := slug.Normalize(trimmed)
	if err != nil || normalized == "" {
		return strings.ToLower(trimmed)
	}
	return normalized
}
