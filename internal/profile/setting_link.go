// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package profile

// WirelessSetting is the "802-11-wireless" setting.
type WirelessSetting struct{ *baseSetting }

func newWirelessSetting() Setting {
	return &WirelessSetting{newBaseSetting("802-11-wireless", []PropertyDescriptor{
		{Name: "ssid", Type: KindBytes, Default: []byte{}, Writable: true},
		{Name: "mode", Type: KindString, Default: "infrastructure", Writable: true},
		{Name: "mac-address", Type: KindBytes, Default: []byte{}, Writable: true},
		{Name: "cloned-mac-address", Type: KindString, Default: "", Writable: true},
		{Name: "mtu", Type: KindUint32, Default: uint32(0), Writable: true},
		{Name: "hidden", Type: KindBool, Default: false, Writable: true},
		{Name: "powersave", Type: KindUint32, Default: uint32(0), Writable: true},
	})}
}

// WiredSetting is the "802-3-ethernet" setting.
type WiredSetting struct{ *baseSetting }

func newWiredSetting() Setting {
	return &WiredSetting{newBaseSetting("802-3-ethernet", []PropertyDescriptor{
		{Name: "mac-address", Type: KindBytes, Default: []byte{}, Writable: true},
		{Name: "cloned-mac-address", Type: KindString, Default: "", Writable: true},
		{Name: "mtu", Type: KindUint32, Default: uint32(0), Writable: true},
		{Name: "speed", Type: KindUint32, Default: uint32(0), Writable: true},
		{Name: "duplex", Type: KindString, Default: "", Writable: true},
		{Name: "auto-negotiate", Type: KindBool, Default: true, Writable: true},
		{Name: "wake-on-lan", Type: KindFlags, Default: uint64(1), Writable: true},
	})}
}

// BluetoothSetting is the "bluetooth" setting.
type BluetoothSetting struct{ *baseSetting }

func newBluetoothSetting() Setting {
	return &BluetoothSetting{newBaseSetting("bluetooth", []PropertyDescriptor{
		{Name: "bdaddr", Type: KindBytes, Default: []byte{}, Writable: true},
		{Name: "type", Type: KindString, Default: "panu", Writable: true},
	})}
}

// InfinibandSetting is the "infiniband" setting.
type InfinibandSetting struct{ *baseSetting }

func newInfinibandSetting() Setting {
	return &InfinibandSetting{newBaseSetting("infiniband", []PropertyDescriptor{
		{Name: "mac-address", Type: KindBytes, Default: []byte{}, Writable: true},
		{Name: "mtu", Type: KindUint32, Default: uint32(0), Writable: true},
		{Name: "transport-mode", Type: KindString, Default: "datagram", Writable: true},
		{Name: "p-key", Type: KindInt32, Default: int32(-1), Writable: true},
		{Name: "parent", Type: KindString, Default: "", Writable: true},
	})}
}

// VlanSetting is the "vlan" setting.
type VlanSetting struct{ *baseSetting }

func newVlanSetting() Setting {
	return &VlanSetting{newBaseSetting("vlan", []PropertyDescriptor{
		{Name: "parent", Type: KindString, Default: "", Writable: true},
		{Name: "id", Type: KindUint32, Default: uint32(0), Writable: true},
		{Name: "flags", Type: KindFlags, Default: uint64(0), Writable: true},
	})}
}

// WimaxSetting is the "wimax" setting.
type WimaxSetting struct{ *baseSetting }

func newWimaxSetting() Setting {
	return &WimaxSetting{newBaseSetting("wimax", []PropertyDescriptor{
		{Name: "mac-address", Type: KindBytes, Default: []byte{}, Writable: true},
		{Name: "network-name", Type: KindString, Default: "", Writable: true},
	})}
}
