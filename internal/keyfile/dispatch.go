// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package keyfile

import (
	"fmt"
	"log"
	"sort"

	"grimm.is/connprofile/internal/profile"
)

// dispatchReader and dispatchWriter override the generic property engine
// for one (setting, property) pair. They receive the owning Setting so a
// reader/writer can inspect or set sibling properties (e.g. address-data
// populating the setting's gateway property).
type dispatchReader func(c *ctx, st profile.Setting, prop *profile.Property) error
type dispatchWriter func(c *ctx, st profile.Setting, prop *profile.Property) error

// dispatchEntry is one row of the per-property dispatch table (component D).
type dispatchEntry struct {
	setting        string
	property       string
	reader         dispatchReader
	writer         dispatchWriter
	skipRead       bool
	skipWrite      bool
	noCheckKey     bool
	persistDefault bool
}

// dispatchTable is the statically compiled, lexicographically sorted
// (setting, property) dispatch table. Order is a structural invariant,
// checked in init() below -- never insert a row out of order.
var dispatchTable = []dispatchEntry{
	{setting: "802-11-wireless", property: "cloned-mac-address", reader: readClonedMAC, writer: writeClonedMAC},
	{setting: "802-11-wireless", property: "mac-address", reader: macReader(6), writer: macWriter},
	{setting: "802-11-wireless", property: "ssid", reader: readSSID, writer: writeSSID},

	{setting: "802-1x", property: "ca-cert", reader: certReader, writer: certWriter},
	{setting: "802-1x", property: "client-cert", reader: certReader, writer: certWriter},
	{setting: "802-1x", property: "pac-file", reader: readPacFile, writer: nil},
	{setting: "802-1x", property: "password-raw", reader: readPasswordRaw, writer: writePasswordRaw},
	{setting: "802-1x", property: "phase2-ca-cert", reader: certReader, writer: certWriter},
	{setting: "802-1x", property: "phase2-client-cert", reader: certReader, writer: certWriter},
	{setting: "802-1x", property: "phase2-private-key", reader: certReader, writer: certWriter},
	{setting: "802-1x", property: "private-key", reader: certReader, writer: certWriter},

	{setting: "802-3-ethernet", property: "cloned-mac-address", reader: readClonedMAC, writer: writeClonedMAC},
	{setting: "802-3-ethernet", property: "mac-address", reader: macReader(6), writer: macWriter},

	{setting: "bluetooth", property: "bdaddr", reader: macReader(6), writer: macWriter},

	{setting: "infiniband", property: "mac-address", reader: macReader(20), writer: macWriter},

	{setting: "ipv4", property: "address-data", reader: addressDataReader(4), writer: addressDataWriter, noCheckKey: true},
	{setting: "ipv4", property: "dns", reader: dnsReader(4), writer: nil},
	{setting: "ipv4", property: "route-data", reader: routeDataReader(4), writer: routeDataWriter, noCheckKey: true},

	{setting: "ipv6", property: "addr-gen-mode", reader: readAddrGenMode, writer: nil},
	{setting: "ipv6", property: "address-data", reader: addressDataReader(6), writer: addressDataWriter, noCheckKey: true},
	{setting: "ipv6", property: "dns", reader: dnsReader(6), writer: nil},
	{setting: "ipv6", property: "route-data", reader: routeDataReader(6), writer: routeDataWriter, noCheckKey: true},

	{setting: "serial", property: "parity", reader: readParity, writer: writeParity},

	{setting: "sriov", property: "vfs", reader: readVFs, writer: writeVFs, noCheckKey: true},

	{setting: "tc", property: "qdiscs", reader: readQdiscs, writer: writeQdiscs, noCheckKey: true},
	{setting: "tc", property: "tfilters", reader: readTfilters, writer: writeTfilters, noCheckKey: true},

	{setting: "team", property: "config", reader: readTeamConfig, writer: nil},

	{setting: "team-port", property: "config", reader: readTeamConfig, writer: nil},

	{setting: "wimax", property: "mac-address", reader: macReader(6), writer: macWriter},
}

func init() {
	checkDispatchTableOrder(dispatchTable)
}

// checkDispatchTableOrder asserts table is sorted and duplicate-free by
// (setting, property). A duplicate key is logged under [KEYFILE] before
// the panic, since it's the one build-time condition worth a diagnostic
// line of its own rather than just the generic ordering message.
func checkDispatchTableOrder(table []dispatchEntry) {
	for i := 1; i < len(table); i++ {
		a, b := table[i-1], table[i]
		if a.setting == b.setting && a.property == b.property {
			log.Printf("[KEYFILE] duplicate dispatch table entry: (%s,%s) at index %d", b.setting, b.property, i)
			panic(fmt.Sprintf("keyfile: duplicate dispatch table entry (%s,%s) at index %d", b.setting, b.property, i))
		}
		if a.setting > b.setting || (a.setting == b.setting && a.property > b.property) {
			panic(fmt.Sprintf("keyfile: dispatch table out of order at index %d: (%s,%s) must precede (%s,%s)",
				i, b.setting, b.property, a.setting, a.property))
		}
	}
}

// findDispatch performs the binary-search lookup over the sorted dispatch table.
func findDispatch(setting, property string) (*dispatchEntry, bool) {
	i := sort.Search(len(dispatchTable), func(i int) bool {
		e := dispatchTable[i]
		if e.setting != setting {
			return e.setting >= setting
		}
		return e.property >= property
	})
	if i < len(dispatchTable) && dispatchTable[i].setting == setting && dispatchTable[i].property == property {
		return &dispatchTable[i], true
	}
	return nil, false
}
