// Package store implements the path-addressed, path-templated state cell
// the dispatcher commits setters into and fills getter responses from.
//
// A single sync.RWMutex guards the whole map rather than per-path locks —
// commits and fills are small, uncontended in practice (one goroutine per
// connection, one store shared read-mostly), and the teacher's own
// ConfigStore uses exactly this one-mutex-around-a-map shape.
package store

import (
	"strings"
	"sync"

	"github.com/telescopio-montemayor/lx200-go/catalog"
	"github.com/telescopio-montemayor/lx200-go/command"
)

// FieldMap is the value type stored at every path: a flat key→value map.
type FieldMap = map[string]any

// Store is safe for concurrent use by multiple goroutines.
type Store struct {
	mu   sync.RWMutex
	data map[string]FieldMap
}

// New builds a Store seeded with an empty field-map for every concrete (no
// placeholder) path referenced by the command catalog, then overlays
// Defaults.
func New() *Store {
	s := &Store{data: map[string]FieldMap{}}
	for _, e := range catalog.Entries {
		for _, p := range []string{e.StorePath, e.LoadPath} {
			if p == "" || strings.Contains(p, "{") {
				continue
			}
			if _, ok := s.data[p]; !ok {
				s.data[p] = FieldMap{}
			}
		}
	}
	for path, fields := range Defaults {
		fm := s.data[path]
		if fm == nil {
			fm = FieldMap{}
		}
		for k, v := range fields {
			fm[k] = v
		}
		s.data[path] = fm
	}
	return s
}

// Commit resolves cmd's store path against its own fields and merges the
// command's field-map into the target cell. The command's fixed
// StoreValue, if any, is applied after and so wins over parsed fields —
// enumerated setters like AL write a fixed {"value": "L"} regardless of
// what (if anything) the catalog entry happened to capture. A command with
// no store binding, or whose path references a field it didn't carry, is a
// no-op.
func (s *Store) Commit(cmd command.Command) {
	path, ok := ResolvePath(cmd.StorePath(), cmd.Fields())
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	fm := s.data[path]
	if fm == nil {
		fm = FieldMap{}
	}
	for k, v := range cmd.Fields() {
		fm[k] = v
	}
	if sv := cmd.StoreValue(); sv != nil {
		for k, v := range sv {
			fm[k] = v
		}
	}
	s.data[path] = fm
}

// Fill resolves cmd's load path (falling back to its store path) and
// returns a copy of the target cell's field-map, or nil if there is no
// binding to read from.
func (s *Store) Fill(cmd command.Command) FieldMap {
	template := cmd.LoadPath()
	if template == "" {
		template = cmd.StorePath()
	}
	path, ok := ResolvePath(template, cmd.Fields())
	if !ok {
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	src := s.data[path]
	out := make(FieldMap, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

// Get returns a copy of the field-map at a literal (already-resolved)
// path, for callers that read a path directly rather than through a
// command's binding.
func (s *Store) Get(path string) FieldMap {
	s.mu.RLock()
	defer s.mu.RUnlock()

	src := s.data[path]
	out := make(FieldMap, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

// Snapshot returns a deep copy of the entire store, keyed by path. It is
// used by the debug HTTP endpoint; callers must not mutate the returned
// maps.
func (s *Store) Snapshot() map[string]FieldMap {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]FieldMap, len(s.data))
	for path, fm := range s.data {
		cp := make(FieldMap, len(fm))
		for k, v := range fm {
			cp[k] = v
		}
		out[path] = cp
	}
	return out
}
