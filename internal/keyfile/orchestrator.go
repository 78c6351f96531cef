// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package keyfile

import (
	"grimm.is/connprofile/internal/inistore"
	"grimm.is/connprofile/internal/profile"
)

// vpnSecretsGroup is the reserved group a VPN setting's secrets map is
// written to and read from, instead of inline with the rest of its group.
const vpnSecretsGroup = "vpn-secrets"

// readSetting drives the property engine (component E) over every declared
// property of st, then layers on the setting-kind-aware hash-of-string rule
// (component F) for the properties it governs.
func readSetting(c *ctx, st profile.Setting) error {
	for _, prop := range st.Properties() {
		c.property = prop.Descriptor.Name
		if err := readProperty(c, st, prop); err != nil {
			return err
		}
		if c.aborted() {
			return c.vetoed
		}
	}

	declared := make(map[string]bool, len(st.Properties()))
	for _, p := range st.Properties() {
		declared[p.Descriptor.Name] = true
	}

	switch v := st.(type) {
	case *profile.VPNSetting:
		for _, key := range c.store.Keys(c.group) {
			if declared[key] {
				continue
			}
			val, _ := c.store.GetString(c.group, key)
			v.Data[key] = val
		}
	case *profile.BondSetting:
		for _, key := range c.store.Keys(c.group) {
			if declared[key] || key == "interface-name" {
				continue
			}
			val, _ := c.store.GetString(c.group, key)
			v.Options[key] = val
		}
	case *profile.UserSetting:
		for _, key := range c.store.Keys(c.group) {
			val, _ := c.store.GetString(c.group, key)
			v.Data[inistore.UnescapeKey(key)] = val
		}
	}
	return nil
}

// writeSetting is the symmetric write-side driver.
func writeSetting(c *ctx, st profile.Setting) error {
	for _, prop := range st.Properties() {
		c.property = prop.Descriptor.Name
		if err := writeProperty(c, st, prop); err != nil {
			return err
		}
		if c.aborted() {
			return c.vetoed
		}
	}

	switch v := st.(type) {
	case *profile.VPNSetting:
		for key, val := range v.Data {
			c.store.SetString(c.group, key, val)
		}
		for key, val := range v.Secrets {
			c.store.SetString(vpnSecretsGroup, key, val)
		}
	case *profile.BondSetting:
		for key, val := range v.Options {
			if key == "interface-name" {
				continue
			}
			c.store.SetString(c.group, key, val)
		}
	case *profile.UserSetting:
		for key, val := range v.Data {
			c.store.SetString(c.group, inistore.EscapeKey(key), val)
		}
	}
	return nil
}
