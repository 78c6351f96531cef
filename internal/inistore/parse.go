// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package inistore

import (
	"strings"

	cerrors "grimm.is/connprofile/internal/errors"
)

// Parse reads UTF-8 INI text into a Store. Group and key order follow the
// order keys first appear in the text. A key repeated within the same
// group keeps its later value but its original position in Keys().
//
// Lines are terminated by '\n'; a leading '#' or ';' marks a full-line
// comment; blank lines are ignored. A line of the form "[name]" opens a
// group; all following lines until the next group header belong to it.
// Lines before the first group header are rejected.
func Parse(text string) (*Store, error) {
	s := New()
	var currentGroup string
	haveGroup := false

	lines := strings.Split(text, "\n")
	for lineNo, rawLine := range lines {
		line := strings.TrimRight(rawLine, "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, ";") {
			continue
		}
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			currentGroup = trimmed[1 : len(trimmed)-1]
			s.ensureGroup(currentGroup)
			haveGroup = true
			continue
		}
		if !haveGroup {
			return nil, cerrors.Errorf(cerrors.KindValidation, "line %d: key outside any group", lineNo+1)
		}
		eq := strings.IndexByte(line, '=')
		if eq < 0 {
			return nil, cerrors.Errorf(cerrors.KindValidation, "line %d: missing '=' in %q", lineNo+1, line)
		}
		key := strings.TrimSpace(line[:eq])
		val := line[eq+1:]
		s.SetString(currentGroup, key, val)
	}
	return s, nil
}

// String serializes the Store back to UTF-8 INI text, preserving group and
// key insertion order. The result is deterministic for a given Store.
func (s *Store) String() string {
	var b strings.Builder
	for _, name := range s.order {
		g := s.groups[name]
		b.WriteByte('[')
		b.WriteString(name)
		b.WriteString("]\n")
		for _, key := range g.order {
			b.WriteString(key)
			b.WriteByte('=')
			b.WriteString(g.vals[key])
			b.WriteByte('\n')
		}
	}
	return b.String()
}
