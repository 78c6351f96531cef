// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package inistore implements the low-level INI-style keyfile store the
// connprofile codec reads and writes. It knows nothing about settings,
// properties, or value grammars -- only about groups, keys, and a handful
// of typed encodings for values (string, integer, boolean, uint64, string
// list, integer list, byte list).
//
// Group and key order follow insertion order, not sorted or alphabetic
// order, matching the on-disk file the store round-trips.
//
// Duplicate keys within a group: when Parse encounters the same key twice
// in one group, the later occurrence wins. This matches observed behavior
// of the keyfile format this store is modeled on, but the order in which a
// file presents duplicate keys is implementation-defined upstream, so
// callers should not depend on this beyond "the file round-trips".
package inistore

import (
	"strconv"
	"strings"

	cerrors "grimm.is/connprofile/internal/errors"
)

// group holds one bracketed section's keys in insertion order.
type group struct {
	name  string
	order []string
	vals  map[string]string
}

func newGroup(name string) *group {
	return &group{name: name, vals: make(map[string]string)}
}

func (g *group) set(key, val string) {
	if _, ok := g.vals[key]; !ok {
		g.order = append(g.order, key)
	}
	g.vals[key] = val
}

// Store is an ordered collection of groups, each an ordered collection of
// string-valued keys. Typed getters/setters encode/decode on top of this
// single string-valued layer, matching the underlying keyfile format.
type Store struct {
	order  []string
	groups map[string]*group
}

// New returns an empty Store.
func New() *Store {
	return &Store{groups: make(map[string]*group)}
}

func (s *Store) ensureGroup(name string) *group {
	g, ok := s.groups[name]
	if !ok {
		g = newGroup(name)
		s.groups[name] = g
		s.order = append(s.order, name)
	}
	return g
}

// Groups returns group names in insertion order.
func (s *Store) Groups() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// HasGroup reports whether a group exists, even if empty.
func (s *Store) HasGroup(group string) bool {
	_, ok := s.groups[group]
	return ok
}

// RemoveGroup deletes a group and all its keys, if present.
func (s *Store) RemoveGroup(name string) {
	if _, ok := s.groups[name]; !ok {
		return
	}
	delete(s.groups, name)
	for i, n := range s.order {
		if n == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Keys returns the keys of a group in insertion order, or nil if the group
// does not exist.
func (s *Store) Keys(group string) []string {
	g, ok := s.groups[group]
	if !ok {
		return nil
	}
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// HasKey reports whether the exact key is present in the group.
func (s *Store) HasKey(group, key string) bool {
	g, ok := s.groups[group]
	if !ok {
		return false
	}
	_, ok = g.vals[key]
	return ok
}

// GetString returns the raw string value of a key.
func (s *Store) GetString(group, key string) (string, bool) {
	g, ok := s.groups[group]
	if !ok {
		return "", false
	}
	v, ok := g.vals[key]
	return v, ok
}

// SetString sets a key to a raw string value, creating the group if needed.
func (s *Store) SetString(group, key, val string) {
	s.ensureGroup(group).set(key, val)
}

// GetInt32 parses a key as a signed 32-bit decimal integer.
func (s *Store) GetInt32(group, key string) (int32, bool, error) {
	raw, ok := s.GetString(group, key)
	if !ok {
		return 0, false, nil
	}
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 32)
	if err != nil {
		return 0, true, cerrors.Wrapf(err, cerrors.KindValidation, "key %q is not a valid integer", key)
	}
	return int32(n), true, nil
}

// SetInt32 sets a key to a decimal-integer-encoded value.
func (s *Store) SetInt32(group, key string, val int32) {
	s.SetString(group, key, strconv.FormatInt(int64(val), 10))
}

// GetUint64 parses a key as an unsigned 64-bit decimal integer. The store
// has no native uint64 getter, so the value is kept as a base-10 string.
func (s *Store) GetUint64(group, key string) (uint64, bool, error) {
	raw, ok := s.GetString(group, key)
	if !ok {
		return 0, false, nil
	}
	n, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, true, cerrors.Wrapf(err, cerrors.KindValidation, "key %q is not a valid unsigned integer", key)
	}
	return n, true, nil
}

// SetUint64 sets a key to a decimal-integer-encoded value.
func (s *Store) SetUint64(group, key string, val uint64) {
	s.SetString(group, key, strconv.FormatUint(val, 10))
}

// GetBool parses a key as a boolean ("true"/"false", case-insensitive).
func (s *Store) GetBool(group, key string) (bool, bool, error) {
	raw, ok := s.GetString(group, key)
	if !ok {
		return false, false, nil
	}
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true":
		return true, true, nil
	case "false":
		return false, true, nil
	default:
		return false, true, cerrors.Errorf(cerrors.KindValidation, "key %q is not a valid boolean: %q", key, raw)
	}
}

// SetBool sets a key to "true" or "false".
func (s *Store) SetBool(group, key string, val bool) {
	if val {
		s.SetString(group, key, "true")
	} else {
		s.SetString(group, key, "false")
	}
}

// GetStringList splits a key's value on unescaped ';' separators.
func (s *Store) GetStringList(group, key string) ([]string, bool) {
	raw, ok := s.GetString(group, key)
	if !ok {
		return nil, false
	}
	if raw == "" {
		return []string{}, true
	}
	return splitEscapedList(raw), true
}

// SetStringList joins values with ';', escaping literal ';' in each element.
func (s *Store) SetStringList(group, key string, val []string) {
	s.SetString(group, key, joinEscapedList(val))
}

// GetIntList parses a key as a ';'-separated list of signed 32-bit integers.
func (s *Store) GetIntList(group, key string) ([]int32, bool, error) {
	raw, ok := s.GetString(group, key)
	if !ok {
		return nil, false, nil
	}
	if strings.TrimSpace(raw) == "" {
		return []int32{}, true, nil
	}
	parts := splitEscapedList(raw)
	out := make([]int32, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.ParseInt(strings.TrimSpace(p), 10, 32)
		if err != nil {
			return nil, true, cerrors.Wrapf(err, cerrors.KindValidation, "key %q has a non-integer list element %q", key, p)
		}
		out = append(out, int32(n))
	}
	return out, true, nil
}

// SetIntList joins a list of signed 32-bit integers with ';'.
func (s *Store) SetIntList(group, key string, val []int32) {
	parts := make([]string, len(val))
	for i, n := range val {
		parts[i] = strconv.FormatInt(int64(n), 10)
	}
	s.SetString(group, key, strings.Join(parts, ";"))
}

// GetByteList parses a key as a ';'-separated list of 0-255 integers.
func (s *Store) GetByteList(group, key string) ([]byte, bool, error) {
	raw, ok := s.GetString(group, key)
	if !ok {
		return nil, false, nil
	}
	if strings.TrimSpace(raw) == "" {
		return []byte{}, true, nil
	}
	parts := splitEscapedList(raw)
	out := make([]byte, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(p), 10, 16)
		if err != nil || n > 255 {
			return nil, true, cerrors.Errorf(cerrors.KindValidation, "key %q has an out-of-range byte element %q", key, p)
		}
		out = append(out, byte(n))
	}
	return out, true, nil
}

// SetByteList joins a list of bytes as decimal integers with ';'.
func (s *Store) SetByteList(group, key string, val []byte) {
	parts := make([]string, len(val))
	for i, b := range val {
		parts[i] = strconv.FormatUint(uint64(b), 10)
	}
	s.SetString(group, key, strings.Join(parts, ";"))
}

// EscapeKey escapes characters outside [A-Za-z0-9-] so the result is a safe
// key name. Each escaped byte becomes "\xx" in lowercase hex preceded by a
// backslash, except '\\' itself which is doubled.
func EscapeKey(name string) string {
	var b strings.Builder
	for i := 0; i < len(name); i++ {
		c := name[i]
		if isSafeKeyByte(c) {
			b.WriteByte(c)
			continue
		}
		if c == '\\' {
			b.WriteString(`\\`)
			continue
		}
		b.WriteByte('\\')
		if c < 0x10 {
			b.WriteByte('0')
		}
		b.WriteString(strconv.FormatUint(uint64(c), 16))
	}
	return b.String()
}

// UnescapeKey reverses EscapeKey.
func UnescapeKey(escaped string) string {
	var b strings.Builder
	for i := 0; i < len(escaped); i++ {
		c := escaped[i]
		if c != '\\' || i+1 >= len(escaped) {
			b.WriteByte(c)
			continue
		}
		if escaped[i+1] == '\\' {
			b.WriteByte('\\')
			i++
			continue
		}
		if i+2 < len(escaped) {
			if n, err := strconv.ParseUint(escaped[i+1:i+3], 16, 8); err == nil {
				b.WriteByte(byte(n))
				i += 2
				continue
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}

func isSafeKeyByte(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '-'
}

// splitEscapedList splits on ';' not preceded by an odd number of '\'.
func splitEscapedList(raw string) []string {
	var parts []string
	var cur strings.Builder
	escaped := false
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if escaped {
			cur.WriteByte(c)
			escaped = false
			continue
		}
		switch c {
		case '\\':
			cur.WriteByte(c)
			escaped = true
		case ';':
			parts = append(parts, unescapeSemicolons(cur.String()))
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	if cur.Len() > 0 || len(parts) == 0 {
		parts = append(parts, unescapeSemicolons(cur.String()))
	}
	return parts
}

func unescapeSemicolons(s string) string {
	return strings.ReplaceAll(s, `\;`, ";")
}

func joinEscapedList(vals []string) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strings.ReplaceAll(v, ";", `\;`)
	}
	return strings.Join(parts, ";")
}
