package catalog

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"unicode"

	"github.com/katalvlaran/fractal/ifs"
)

// Entry describes one registered system.
type Entry struct {
	Name    string   // canonical (normalized) name
	Aliases []string // normalized aliases, in registration order
}

// Registry maps normalized names and aliases to definitions.
// The zero value is not usable; call NewRegistry.
type Registry struct {
	mu      sync.RWMutex
	defs    map[string]*ifs.Definition // canonical name → definition
	entries map[string]Entry           // canonical name → entry
	keys    map[string]string          // name or alias → canonical name
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		defs:    make(map[string]*ifs.Definition),
		entries: make(map[string]Entry),
		keys:    make(map[string]string),
	}
}

// Normalize lower-cases s and strips every whitespace rune.
func Normalize(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, s)
}

// Register adds def under name and the given aliases (all normalized).
//
// Errors:
//   - ErrInvalidArgument — nil def, or a name/alias that normalizes to "".
//   - ErrDuplicate       — any key already present (nothing is registered).
func (r *Registry) Register(name string, def *ifs.Definition, aliases ...string) error {
	if def == nil {
		return catalogErrorf(methodRegister, "nil definition", ErrInvalidArgument)
	}
	canonical := Normalize(name)
	if canonical == "" {
		return catalogErrorf(methodRegister, "empty name", ErrInvalidArgument)
	}
	keys := make([]string, 0, len(aliases)+1)
	keys = append(keys, canonical)
	for _, a := range aliases {
		k := Normalize(a)
		if k == "" {
			return catalogErrorf(methodRegister, fmt.Sprintf("empty alias for %q", canonical), ErrInvalidArgument)
		}
		keys = append(keys, k)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.insertLocked(methodRegister, canonical, def, keys)
}

// insertLocked checks every key for conflicts before inserting any.
// Duplicate keys within one registration are collapsed.
func (r *Registry) insertLocked(method, canonical string, def *ifs.Definition, keys []string) error {
	seen := make(map[string]struct{}, len(keys))
	unique := make([]string, 0, len(keys))
	for _, k := range keys {
		if _, dup := seen[k]; dup {
			continue
		}
		if owner, taken := r.keys[k]; taken {
			return catalogErrorf(method, fmt.Sprintf("%q already maps to %q", k, owner), ErrDuplicate)
		}
		seen[k] = struct{}{}
		unique = append(unique, k)
	}
	for _, k := range unique {
		r.keys[k] = canonical
	}
	r.defs[canonical] = def
	r.entries[canonical] = Entry{Name: canonical, Aliases: unique[1:]}

	return nil
}

// Lookup resolves a name or alias.
//
// Errors:
//   - ErrInvalidArgument — name empty after whitespace removal.
//   - ErrNotFound        — no such entry.
func (r *Registry) Lookup(name string) (*ifs.Definition, error) {
	key := Normalize(name)
	if key == "" {
		return nil, catalogErrorf(methodLookup, "empty name", ErrInvalidArgument)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	canonical, ok := r.keys[key]
	if !ok {
		return nil, catalogErrorf(methodLookup, fmt.Sprintf("%q", name), ErrNotFound)
	}

	return r.defs[canonical], nil
}

// Get is Lookup for loosely typed input: anything other than a string is
// rejected with ErrInvalidArgument.
func (r *Registry) Get(name any) (*ifs.Definition, error) {
	s, ok := name.(string)
	if !ok {
		return nil, catalogErrorf(methodGet, fmt.Sprintf("name must be a string, got %T", name), ErrInvalidArgument)
	}

	return r.Lookup(s)
}

// Names returns the sorted canonical names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.entries))
	for name := range r.entries {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// Entries returns every entry sorted by canonical name.
func (r *Registry) Entries() []Entry {
	names := r.Names()

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Entry, 0, len(names))
	for _, n := range names {
		e := r.entries[n]
		out = append(out, Entry{Name: e.Name, Aliases: append([]string(nil), e.Aliases...)})
	}

	return out
}

// defaultRegistry holds the built-in systems and is never mutated after init.
var defaultRegistry = newBuiltinRegistry()

// Builtin returns a fresh registry pre-populated with the built-in systems,
// ready for custom additions.
func Builtin() *Registry { return newBuiltinRegistry() }

// Get resolves name against the built-in systems.
func Get(name any) (*ifs.Definition, error) { return defaultRegistry.Get(name) }

// Lookup resolves a string name against the built-in systems.
func Lookup(name string) (*ifs.Definition, error) { return defaultRegistry.Lookup(name) }

// Names lists the built-in canonical names.
func Names() []string { return defaultRegistry.Names() }
