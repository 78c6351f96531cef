// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package keyfile

import (
	"os"
	"path/filepath"

	"grimm.is/connprofile/internal/profile"
)

// certReader reads the raw byte blob via get_bytes (§4.A) then classifies
// it through the certificate scheme codec (§4.C).
func certReader(c *ctx, st profile.Setting, prop *profile.Property) error {
	raw, ok := c.store.GetString(c.group, prop.Descriptor.Name)
	if !ok {
		return nil
	}
	cert, err := DecodeCert(c, decodeBytes(raw), c.baseDir)
	if err != nil {
		return err
	}
	prop.Value = cert
	return nil
}

func certWriter(c *ctx, st profile.Setting, prop *profile.Property) error {
	cert, ok := prop.Value.(*Cert)
	if !ok || cert == nil {
		return nil
	}
	c.store.SetString(c.group, prop.Descriptor.Name, string(EncodeCert(cert)))
	return nil
}

// readPacFile resolves the path against baseDir purely for an
// existence-probe warning; the stored property value is the plain string
// as written.
func readPacFile(c *ctx, st profile.Setting, prop *profile.Property) error {
	raw, ok := c.store.GetString(c.group, prop.Descriptor.Name)
	if !ok {
		return nil
	}
	prop.Value = raw
	path := raw
	if !filepath.IsAbs(path) {
		path = filepath.Join(c.baseDir, path)
	}
	if _, err := os.Stat(path); err != nil {
		return c.warn(InfoMissingFile, "pac-file %q does not exist", path)
	}
	return nil
}
