// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package profile

// BondSetting is the "bond" setting. Options holds every bond-specific
// key except the reserved "interface-name", per the hash-of-string rule
// for bond settings.
type BondSetting struct {
	*baseSetting
	Options map[string]string
}

func newBondSetting() Setting {
	return &BondSetting{
		baseSetting: newBaseSetting("bond", []PropertyDescriptor{
			{Name: "interface-name", Type: KindString, Default: "", Writable: true},
		}),
		Options: make(map[string]string),
	}
}

// BridgeSetting is the "bridge" setting.
type BridgeSetting struct{ *baseSetting }

func newBridgeSetting() Setting {
	return &BridgeSetting{newBaseSetting("bridge", []PropertyDescriptor{
		{Name: "stp", Type: KindBool, Default: true, Writable: true},
		{Name: "priority", Type: KindUint32, Default: uint32(32768), Writable: true},
		{Name: "forward-delay", Type: KindUint32, Default: uint32(15), Writable: true},
		{Name: "hello-time", Type: KindUint32, Default: uint32(2), Writable: true},
		{Name: "max-age", Type: KindUint32, Default: uint32(20), Writable: true},
		{Name: "ageing-time", Type: KindUint32, Default: uint32(300), Writable: true},
		{Name: "multicast-snooping", Type: KindBool, Default: true, Writable: true},
	})}
}

// TeamSetting is the "team" setting. Config is a JSON passthrough string.
type TeamSetting struct{ *baseSetting }

func newTeamSetting() Setting {
	return &TeamSetting{newBaseSetting("team", []PropertyDescriptor{
		{Name: "config", Type: KindString, Default: "", Writable: true},
	})}
}

// TeamPortSetting is the "team-port" setting. Config is a JSON passthrough
// string, same rule as TeamSetting.
type TeamPortSetting struct{ *baseSetting }

func newTeamPortSetting() Setting {
	return &TeamPortSetting{newBaseSetting("team-port", []PropertyDescriptor{
		{Name: "config", Type: KindString, Default: "", Writable: true},
	})}
}

// UserSetting is the "user" setting. It declares no properties; every key
// of its group goes into the Data map, with keys passed through the INI
// store's key escaper/unescaper.
type UserSetting struct {
	*baseSetting
	Data map[string]string
}

func newUserSetting() Setting {
	return &UserSetting{
		baseSetting: newBaseSetting("user", nil),
		Data:        make(map[string]string),
	}
}
