// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package keyfile

import (
	"math"
	"strconv"

	"grimm.is/connprofile/internal/profile"
)

// readProperty is the generic property engine's read half (component E).
func readProperty(c *ctx, st profile.Setting, prop *profile.Property) error {
	if c.aborted() {
		return c.vetoed
	}
	if !prop.Descriptor.Writable {
		return nil
	}

	c.property = prop.Descriptor.Name
	entry, hasDispatch := findDispatch(st.Name(), prop.Descriptor.Name)
	if hasDispatch && entry.skipRead {
		return nil
	}

	if !(hasDispatch && entry.noCheckKey) {
		if !c.store.HasKey(c.group, prop.Descriptor.Name) {
			return nil
		}
	}

	if hasDispatch && entry.reader != nil {
		return entry.reader(c, st, prop)
	}
	return readGeneric(c, prop)
}

func readGeneric(c *ctx, prop *profile.Property) error {
	key := prop.Descriptor.Name
	switch prop.Descriptor.Type {
	case profile.KindString:
		v, _ := c.store.GetString(c.group, key)
		prop.Value = v

	case profile.KindUint32:
		n, ok, err := c.store.GetInt32(c.group, key)
		if err != nil {
			return c.warn(Warn, "invalid unsigned integer for %q: %v", key, err)
		}
		if !ok {
			return nil
		}
		if n < 0 {
			return c.warn(Warn, "negative value for unsigned property %q", key)
		}
		prop.Value = uint32(n)

	case profile.KindInt32:
		n, ok, err := c.store.GetInt32(c.group, key)
		if err != nil {
			return c.warn(Warn, "invalid integer for %q: %v", key, err)
		}
		if ok {
			prop.Value = n
		}

	case profile.KindInt64:
		raw, ok := c.store.GetString(c.group, key)
		if !ok {
			return nil
		}
		n, err := decodeBoundedInt(raw, math.MinInt64, math.MaxInt64)
		if err != nil {
			return c.warn(Warn, "invalid integer for %q: %v", key, err)
		}
		prop.Value = n

	case profile.KindUint64:
		n, ok, err := c.store.GetUint64(c.group, key)
		if err != nil {
			return c.warn(Warn, "invalid unsigned integer for %q: %v", key, err)
		}
		if ok {
			prop.Value = n
		}

	case profile.KindBool:
		b, ok, err := c.store.GetBool(c.group, key)
		if err != nil {
			return c.warn(Warn, "invalid boolean for %q: %v", key, err)
		}
		if ok {
			prop.Value = b
		}

	case profile.KindChar:
		raw, ok := c.store.GetString(c.group, key)
		if !ok {
			return nil
		}
		n, err := decodeBoundedInt(raw, -128, 127)
		if err != nil {
			return c.warn(Warn, "invalid signed char for %q: %v", key, err)
		}
		prop.Value = int8(n)

	case profile.KindBytes:
		b, ok, err := c.store.GetByteList(c.group, key)
		if err != nil {
			return c.warn(Warn, "invalid byte list for %q: %v", key, err)
		}
		if ok {
			prop.Value = b
		}

	case profile.KindStringList:
		l, ok := c.store.GetStringList(c.group, key)
		if ok {
			prop.Value = l
		}

	case profile.KindStringMap:
		// Hash-of-string properties are assembled by the setting
		// orchestrator (component F), never by the generic engine.
		return nil

	case profile.KindUint32Array:
		l, ok, err := c.store.GetIntList(c.group, key)
		if err != nil {
			return c.warn(Warn, "invalid integer array for %q: %v", key, err)
		}
		if !ok {
			return nil
		}
		out := make([]uint32, 0, len(l))
		for _, n := range l {
			if n < 0 {
				if err := c.warn(Warn, "negative element in array property %q", key); err != nil {
					return err
				}
				continue
			}
			out = append(out, uint32(n))
		}
		prop.Value = out

	case profile.KindFlags:
		n, ok, err := c.store.GetUint64(c.group, key)
		if err != nil {
			return c.warn(Warn, "invalid flags value for %q: %v", key, err)
		}
		if !ok {
			return nil
		}
		if n > math.MaxUint32 {
			return c.warn(Warn, "flags value for %q exceeds 32 bits", key)
		}
		prop.Value = n

	case profile.KindEnum:
		n, ok, err := c.store.GetInt32(c.group, key)
		if err != nil {
			return c.warn(Warn, "invalid enum value for %q: %v", key, err)
		}
		if ok {
			prop.Value = n
		}

	default:
		return c.warn(Warn, "unhandled declared type for %q", key)
	}
	return nil
}

// writeProperty is the generic property engine's write half (component E).
func writeProperty(c *ctx, st profile.Setting, prop *profile.Property) error {
	if c.aborted() {
		return c.vetoed
	}

	c.property = prop.Descriptor.Name
	entry, hasDispatch := findDispatch(st.Name(), prop.Descriptor.Name)
	if hasDispatch && entry.skipWrite {
		return nil
	}

	if prop.Descriptor.Secret && st.Name() != "vpn" {
		if c.secretPolicy == nil || !c.secretPolicy(st.Name(), prop.Descriptor.Name) {
			return nil
		}
	}

	persistDefault := hasDispatch && entry.persistDefault
	if !persistDefault && prop.IsDefault() {
		return nil
	}

	if hasDispatch && entry.writer != nil {
		return entry.writer(c, st, prop)
	}
	return writeGeneric(c, prop)
}

func writeGeneric(c *ctx, prop *profile.Property) error {
	key := prop.Descriptor.Name
	switch v := prop.Value.(type) {
	case string:
		c.store.SetString(c.group, key, v)
	case uint32:
		c.store.SetInt32(c.group, key, int32(v))
	case int32:
		c.store.SetInt32(c.group, key, v)
	case int64:
		c.store.SetString(c.group, key, strconv.FormatInt(v, 10))
	case uint64:
		c.store.SetUint64(c.group, key, v)
	case bool:
		c.store.SetBool(c.group, key, v)
	case int8:
		c.store.SetString(c.group, key, strconv.FormatInt(int64(v), 10))
	case []byte:
		c.store.SetByteList(c.group, key, v)
	case []string:
		c.store.SetStringList(c.group, key, v)
	case []uint32:
		ints := make([]int32, len(v))
		for i, n := range v {
			ints[i] = int32(n)
		}
		c.store.SetIntList(c.group, key, ints)
	default:
		return c.warn(Warn, "unhandled value type for %q", key)
	}
	return nil
}
