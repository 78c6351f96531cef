// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package profile

// Dot1xSetting is the "802-1x" setting. The six certificate-scheme
// properties and pac-file are listed explicitly.
type Dot1xSetting struct{ *baseSetting }

func newDot1xSetting() Setting {
	return &Dot1xSetting{newBaseSetting("802-1x", []PropertyDescriptor{
		{Name: "eap", Type: KindStringList, Default: []string{}, Writable: true},
		{Name: "identity", Type: KindString, Default: "", Writable: true},
		{Name: "password", Type: KindString, Default: "", Writable: true, Secret: true},
		{Name: "password-raw", Type: KindBytes, Default: []byte{}, Writable: true, Secret: true},
		{Name: "ca-cert", Type: KindBytes, Default: []byte{}, Writable: true},
		{Name: "ca-cert-password", Type: KindString, Default: "", Writable: true, Secret: true},
		{Name: "client-cert", Type: KindBytes, Default: []byte{}, Writable: true},
		{Name: "private-key", Type: KindBytes, Default: []byte{}, Writable: true},
		{Name: "private-key-password", Type: KindString, Default: "", Writable: true, Secret: true},
		{Name: "phase2-ca-cert", Type: KindBytes, Default: []byte{}, Writable: true},
		{Name: "phase2-client-cert", Type: KindBytes, Default: []byte{}, Writable: true},
		{Name: "phase2-private-key", Type: KindBytes, Default: []byte{}, Writable: true},
		{Name: "pac-file", Type: KindString, Default: "", Writable: true},
	})}
}
