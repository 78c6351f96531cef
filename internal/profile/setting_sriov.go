// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package profile

// SRIOVSetting is the "sriov" setting. vfs is always Dispatch-overridden
// by internal/keyfile (it is assembled from indexed vf.<N> keys, never a
// single plain key), so its declared Type is a nominal placeholder.
type SRIOVSetting struct{ *baseSetting }

func newSRIOVSetting() Setting {
	return &SRIOVSetting{newBaseSetting("sriov", []PropertyDescriptor{
		{Name: "total-vfs", Type: KindUint32, Default: uint32(0), Writable: true},
		{Name: "vfs", Type: KindStringList, Default: []string{}, Writable: true},
		{Name: "autoprobe-drivers", Type: KindInt32, Default: int32(-1), Writable: true},
	})}
}

// TCSetting is the "tc" setting. qdiscs and tfilters are always
// Dispatch-overridden (assembled from qdisc.<parent> / tfilter.<parent>
// keys), so their declared Type is a nominal placeholder.
type TCSetting struct{ *baseSetting }

func newTCSetting() Setting {
	return &TCSetting{newBaseSetting("tc", []PropertyDescriptor{
		{Name: "qdiscs", Type: KindStringList, Default: []string{}, Writable: true},
		{Name: "tfilters", Type: KindStringList, Default: []string{}, Writable: true},
	})}
}
