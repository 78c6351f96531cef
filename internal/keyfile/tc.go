// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package keyfile

import (
	"regexp"
	"sort"
	"strings"

	"grimm.is/connprofile/internal/profile"
)

var qdiscKeyPattern = regexp.MustCompile(`^qdisc\.(.+)$`)
var tfilterKeyPattern = regexp.MustCompile(`^tfilter\.(.+)$`)

// tcUnspecifiedParent is the sentinel parent token meaning "no explicit
// parent handle" -- no domain-string "parent " prefix is synthesized for it.
const tcUnspecifiedParent = "root"

// synthesizeTC builds the full domain-library string for a qdisc/tfilter
// entry: prepend "parent " unless parent is the unspecified
// sentinel, then concatenate parent and suffix.
func synthesizeTC(parent, suffix string) string {
	var b strings.Builder
	if parent != tcUnspecifiedParent {
		b.WriteString("parent ")
	}
	b.WriteString(parent)
	if suffix != "" {
		b.WriteByte(' ')
		b.WriteString(suffix)
	}
	return b.String()
}

func collectTCKeys(keys []string, pattern *regexp.Regexp) []struct{ parent, key string } {
	var out []struct{ parent, key string }
	for _, k := range keys {
		m := pattern.FindStringSubmatch(k)
		if m == nil {
			continue
		}
		out = append(out, struct{ parent, key string }{parent: m[1], key: k})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].parent < out[j].parent })
	return out
}

func readQdiscs(c *ctx, st profile.Setting, prop *profile.Property) error {
	matched := collectTCKeys(c.store.Keys(c.group), qdiscKeyPattern)
	out := make([]string, 0, len(matched))
	for _, m := range matched {
		suffix, _ := c.store.GetString(c.group, m.key)
		out = append(out, synthesizeTC(m.parent, suffix))
	}
	prop.Value = out
	return nil
}

func writeQdiscs(c *ctx, st profile.Setting, prop *profile.Property) error {
	writeTCList(c, prop, "qdisc.")
	return nil
}

func readTfilters(c *ctx, st profile.Setting, prop *profile.Property) error {
	matched := collectTCKeys(c.store.Keys(c.group), tfilterKeyPattern)
	out := make([]string, 0, len(matched))
	for _, m := range matched {
		suffix, _ := c.store.GetString(c.group, m.key)
		out = append(out, synthesizeTC(m.parent, suffix))
	}
	prop.Value = out
	return nil
}

func writeTfilters(c *ctx, st profile.Setting, prop *profile.Property) error {
	writeTCList(c, prop, "tfilter.")
	return nil
}

// writeTCList re-splits a synthesized domain string back into its
// parent/suffix halves for storage under "<prefix><parent>".
func writeTCList(c *ctx, prop *profile.Property, prefix string) {
	entries, ok := prop.Value.([]string)
	if !ok || len(entries) == 0 {
		return
	}
	for _, e := range entries {
		rest := e
		if strings.HasPrefix(rest, "parent ") {
			rest = strings.TrimPrefix(rest, "parent ")
			parent, suffix, _ := strings.Cut(rest, " ")
			c.store.SetString(c.group, prefix+parent, suffix)
			continue
		}
		parent, suffix, found := strings.Cut(rest, " ")
		if !found {
			c.store.SetString(c.group, prefix+parent, "")
			continue
		}
		c.store.SetString(c.group, prefix+parent, suffix)
	}
}
