// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package keyfile

import "grimm.is/connprofile/internal/profile"

// readSSID uses the get_bytes grammar (§4.A) rather than the generic
// byte-blob integer-list fallback.
func readSSID(c *ctx, st profile.Setting, prop *profile.Property) error {
	raw, ok := c.store.GetString(c.group, prop.Descriptor.Name)
	if !ok {
		return nil
	}
	prop.Value = decodeBytes(raw)
	return nil
}

func writeSSID(c *ctx, st profile.Setting, prop *profile.Property) error {
	b, ok := prop.Value.([]byte)
	if !ok || len(b) == 0 {
		return nil
	}
	c.store.SetString(c.group, prop.Descriptor.Name, encodeSSID(b))
	return nil
}

// readPasswordRaw uses the get_bytes grammar on read but always emits the
// legacy integer-list form on write.
func readPasswordRaw(c *ctx, st profile.Setting, prop *profile.Property) error {
	raw, ok := c.store.GetString(c.group, prop.Descriptor.Name)
	if !ok {
		return nil
	}
	prop.Value = decodeBytes(raw)
	return nil
}

func writePasswordRaw(c *ctx, st profile.Setting, prop *profile.Property) error {
	b, ok := prop.Value.([]byte)
	if !ok || len(b) == 0 {
		return nil
	}
	c.store.SetString(c.group, prop.Descriptor.Name, encodeBytesLegacyList(b))
	return nil
}
