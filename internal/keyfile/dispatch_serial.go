// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package keyfile

import (
	"grimm.is/connprofile/internal/profile"
)

func readParity(c *ctx, st profile.Setting, prop *profile.Property) error {
	raw, ok := c.store.GetString(c.group, prop.Descriptor.Name)
	if !ok {
		return nil
	}
	parity, err := decodeParity(raw)
	if err != nil {
		return c.warn(Warn, "invalid parity %q, using default: %v", raw, err)
	}
	prop.Value = parity
	return nil
}

func writeParity(c *ctx, st profile.Setting, prop *profile.Property) error {
	parity, ok := prop.Value.(profile.SerialParity)
	if !ok {
		return nil
	}
	c.store.SetString(c.group, prop.Descriptor.Name, encodeParity(parity))
	return nil
}
