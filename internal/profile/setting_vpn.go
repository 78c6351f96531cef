// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package profile

// VPNSetting is the "vpn" setting. Data and Secrets hold the
// hash-of-string maps that the keyfile orchestrator routes specially: Data
// is written inline (minus declared properties), Secrets is written to the
// reserved vpn-secrets group.
type VPNSetting struct {
	*baseSetting
	Data    map[string]string
	Secrets map[string]string
}

func newVPNSetting() Setting {
	return &VPNSetting{
		baseSetting: newBaseSetting("vpn", []PropertyDescriptor{
			{Name: "service-type", Type: KindString, Default: "", Writable: true},
			{Name: "user-name", Type: KindString, Default: "", Writable: true},
			{Name: "persistent", Type: KindBool, Default: false, Writable: true},
			{Name: "timeout", Type: KindUint32, Default: uint32(0), Writable: true},
		}),
		Data:    make(map[string]string),
		Secrets: make(map[string]string),
	}
}
