// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package profile

import (
	cerrors "grimm.is/connprofile/internal/errors"
)

// Catalog constructs fresh Setting values by canonical or legacy alias
// name. The alias table mirrors the short group names historically
// accepted in keyfiles alongside their canonical, fully qualified forms.
type Catalog struct {
	ctors   map[string]func() Setting
	aliases map[string]string // alias -> canonical
	revAlias map[string][]string // canonical -> aliases
}

// NewCatalog returns a Catalog populated with every recognized setting
// kind.
func NewCatalog() *Catalog {
	c := &Catalog{
		ctors:    make(map[string]func() Setting),
		aliases:  make(map[string]string),
		revAlias: make(map[string][]string),
	}
	c.register("connection", newConnectionSetting)
	c.register("ipv4", newIPv4Setting)
	c.register("ipv6", newIPv6Setting)
	c.register("802-11-wireless", newWirelessSetting, "wifi")
	c.register("802-3-ethernet", newWiredSetting, "ethernet")
	c.register("802-1x", newDot1xSetting)
	c.register("bluetooth", newBluetoothSetting)
	c.register("infiniband", newInfinibandSetting, "ib")
	c.register("vlan", newVlanSetting)
	c.register("wimax", newWimaxSetting)
	c.register("vpn", newVPNSetting)
	c.register("bond", newBondSetting)
	c.register("bridge", newBridgeSetting)
	c.register("team", newTeamSetting)
	c.register("team-port", newTeamPortSetting, "team_port")
	c.register("user", newUserSetting)
	c.register("serial", newSerialSetting)
	c.register("sriov", newSRIOVSetting)
	c.register("tc", newTCSetting)
	return c
}

func (c *Catalog) register(canonical string, ctor func() Setting, aliases ...string) {
	c.ctors[canonical] = ctor
	for _, a := range aliases {
		c.aliases[a] = canonical
		c.revAlias[canonical] = append(c.revAlias[canonical], a)
	}
}

// CanonicalName resolves an alias or canonical name to its canonical form.
func (c *Catalog) CanonicalName(aliasOrName string) (string, bool) {
	if _, ok := c.ctors[aliasOrName]; ok {
		return aliasOrName, true
	}
	if canon, ok := c.aliases[aliasOrName]; ok {
		return canon, true
	}
	return "", false
}

// Aliases returns the legacy short names recognized for a canonical
// setting name.
func (c *Catalog) Aliases(canonical string) []string {
	return c.revAlias[canonical]
}

// New produces a fresh Setting for a canonical or alias name.
func (c *Catalog) New(name string) (Setting, error) {
	canon, ok := c.CanonicalName(name)
	if !ok {
		return nil, cerrors.Errorf(cerrors.KindDispatch, "unknown setting name %q", name)
	}
	return c.ctors[canon](), nil
}
