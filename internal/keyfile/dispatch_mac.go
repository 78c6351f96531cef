// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package keyfile

import "grimm.is/connprofile/internal/profile"

// macReader builds a dispatchReader for a plain "mac-address"-shaped
// property with a fixed expected byte length (0 means unconstrained).
func macReader(expectedLen int) dispatchReader {
	return func(c *ctx, st profile.Setting, prop *profile.Property) error {
		raw, ok := c.store.GetString(c.group, prop.Descriptor.Name)
		if !ok {
			return nil
		}
		mac, err := decodeMAC(raw, expectedLen)
		if err != nil {
			return c.warn(Warn, "invalid MAC address %q: %v", raw, err)
		}
		prop.Value = mac
		return nil
	}
}

func macWriter(c *ctx, st profile.Setting, prop *profile.Property) error {
	mac, ok := prop.Value.([]byte)
	if !ok || len(mac) == 0 {
		return nil
	}
	c.store.SetString(c.group, prop.Descriptor.Name, encodeMAC(mac))
	return nil
}

// readClonedMAC accepts the reserved cloned-MAC tokens verbatim, otherwise
// falls back to the standard Ethernet MAC grammar.
func readClonedMAC(c *ctx, st profile.Setting, prop *profile.Property) error {
	raw, ok := c.store.GetString(c.group, prop.Descriptor.Name)
	if !ok {
		return nil
	}
	if isClonedMACToken(raw) {
		prop.Value = raw
		return nil
	}
	mac, err := decodeMAC(raw, 6)
	if err != nil {
		return c.warn(Warn, "invalid cloned MAC address %q: %v", raw, err)
	}
	prop.Value = encodeMAC(mac)
	return nil
}

func writeClonedMAC(c *ctx, st profile.Setting, prop *profile.Property) error {
	v, ok := prop.Value.(string)
	if !ok || v == "" {
		return nil
	}
	c.store.SetString(c.group, prop.Descriptor.Name, v)
	return nil
}
