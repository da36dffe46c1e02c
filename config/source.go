package config

import (
	"strconv"
	"strings"
	"sync"
)

// Source is a live key-value property store. Implementations must be
// safe for concurrent reads while the underlying store is reloaded.
type Source interface {
	// GetString returns the value for key, or def when the key is absent.
	GetString(key, def string) string

	// GetInt returns the value for key parsed as an integer, or def when
	// the key is absent or the value does not parse.
	GetInt(key string, def int) int

	// GetBool returns the value for key parsed as a boolean, or def when
	// the key is absent or the value does not parse.
	GetBool(key string, def bool) bool

	// Has reports whether key is present in the store.
	Has(key string) bool
}

// MapSource is an in-memory Source backed by a mutable map. It is safe
// for concurrent use and is the store of choice for tests and
// programmatic configuration.
type MapSource struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMapSource creates a MapSource pre-populated with the given values.
func NewMapSource(values map[string]string) *MapSource {
	s := &MapSource{values: make(map[string]string, len(values))}
	for k, v := range values {
		s.values[k] = v
	}
	return s
}

// Set stores or replaces a property value.
func (s *MapSource) Set(key, value string) {
	s.mu.Lock()
	s.values[key] = value
	s.mu.Unlock()
}

// Delete removes a property.
func (s *MapSource) Delete(key string) {
	s.mu.Lock()
	delete(s.values, key)
	s.mu.Unlock()
}

// GetString returns the value for key, or def when absent.
func (s *MapSource) GetString(key, def string) string {
	s.mu.RLock()
	v, ok := s.values[key]
	s.mu.RUnlock()
	if !ok {
		return def
	}
	return v
}

// GetInt returns the value for key as an integer, or def.
func (s *MapSource) GetInt(key string, def int) int {
	s.mu.RLock()
	v, ok := s.values[key]
	s.mu.RUnlock()
	if !ok {
		return def
	}
	return parseInt(v, def)
}

// GetBool returns the value for key as a boolean, or def.
func (s *MapSource) GetBool(key string, def bool) bool {
	s.mu.RLock()
	v, ok := s.values[key]
	s.mu.RUnlock()
	if !ok {
		return def
	}
	return parseBool(v, def)
}

// Has reports whether key is present.
func (s *MapSource) Has(key string) bool {
	s.mu.RLock()
	_, ok := s.values[key]
	s.mu.RUnlock()
	return ok
}

// parseInt parses raw as a base-10 integer, returning def when the
// value does not parse. Malformed values resolve to the default rather
// than erroring, matching the resolver's total error policy.
func parseInt(raw string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return def
	}
	return n
}

// parseBool parses raw as a boolean, returning def when the value does
// not parse.
func parseBool(raw string, def bool) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return def
	}
	return b
}

// Compile-time check.
var _ Source = (*MapSource)(nil)
