// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package profile

// ConnectionSetting is the "connection" setting: identity and top-level
// policy shared by every connection profile regardless of link type.
type ConnectionSetting struct{ *baseSetting }

func newConnectionSetting() Setting {
	return &ConnectionSetting{newBaseSetting("connection", []PropertyDescriptor{
		{Name: "id", Type: KindString, Default: "", Writable: true},
		{Name: "uuid", Type: KindString, Default: "", Writable: true},
		{Name: "type", Type: KindString, Default: "", Writable: true},
		{Name: "interface-name", Type: KindString, Default: "", Writable: true},
		{Name: "autoconnect", Type: KindBool, Default: true, Writable: true},
		{Name: "autoconnect-priority", Type: KindInt32, Default: int32(0), Writable: true},
		{Name: "timestamp", Type: KindUint64, Default: uint64(0), Writable: true},
		{Name: "permissions", Type: KindStringList, Default: []string{}, Writable: true},
		{Name: "zone", Type: KindString, Default: "", Writable: true},
		{Name: "master", Type: KindString, Default: "", Writable: true},
		{Name: "slave-type", Type: KindString, Default: "", Writable: true},
		{Name: "metered", Type: KindInt32, Default: int32(0), Writable: true},
	})}
}
