// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package profile

// IPv4Setting is the "ipv4" setting. Address, route, and DNS values are
// declared KindStringList because the catalog itself is format-agnostic:
// address-data and route-data hold the keyfile codec's canonical address
// and route line strings, which internal/keyfile parses and writes through
// Dispatch overrides; dns is validated by a Dispatch reader and written by
// the generic string-list codec.
type IPv4Setting struct{ *baseSetting }

func newIPv4Setting() Setting {
	return &IPv4Setting{newBaseSetting("ipv4", []PropertyDescriptor{
		{Name: "method", Type: KindString, Default: "auto", Writable: true},
		{Name: "address-data", Type: KindStringList, Default: []string{}, Writable: true},
		{Name: "gateway", Type: KindString, Default: "", Writable: true},
		{Name: "route-data", Type: KindStringList, Default: []string{}, Writable: true},
		{Name: "dns", Type: KindStringList, Default: []string{}, Writable: true},
		{Name: "dns-search", Type: KindStringList, Default: []string{}, Writable: true},
		{Name: "ignore-auto-dns", Type: KindBool, Default: false, Writable: true},
		{Name: "ignore-auto-routes", Type: KindBool, Default: false, Writable: true},
		{Name: "never-default", Type: KindBool, Default: false, Writable: true},
		{Name: "may-fail", Type: KindBool, Default: true, Writable: true},
		{Name: "dhcp-hostname", Type: KindString, Default: "", Writable: true},
		{Name: "dhcp-client-id", Type: KindString, Default: "", Writable: true},
	})}
}

// IPv6Setting is the "ipv6" setting.
type IPv6Setting struct{ *baseSetting }

func newIPv6Setting() Setting {
	return &IPv6Setting{newBaseSetting("ipv6", []PropertyDescriptor{
		{Name: "method", Type: KindString, Default: "auto", Writable: true},
		{Name: "address-data", Type: KindStringList, Default: []string{}, Writable: true},
		{Name: "gateway", Type: KindString, Default: "", Writable: true},
		{Name: "route-data", Type: KindStringList, Default: []string{}, Writable: true},
		{Name: "dns", Type: KindStringList, Default: []string{}, Writable: true},
		{Name: "dns-search", Type: KindStringList, Default: []string{}, Writable: true},
		{Name: "ip6-privacy", Type: KindInt32, Default: int32(-1), Writable: true},
		{Name: "addr-gen-mode", Type: KindEnum, Default: "eui64", Writable: true},
		{Name: "never-default", Type: KindBool, Default: false, Writable: true},
		{Name: "may-fail", Type: KindBool, Default: true, Writable: true},
	})}
}
