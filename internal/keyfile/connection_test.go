// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package keyfile

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grimm.is/connprofile/internal/inistore"
	"grimm.is/connprofile/internal/profile"
)

func mustParse(t *testing.T, text string) *inistore.Store {
	t.Helper()
	s, err := inistore.Parse(text)
	require.NoError(t, err)
	return s
}

func TestRead_EthernetIPv4AutoWithAddressAndGateway(t *testing.T) {
	store := mustParse(t, "[connection]\n"+
		"id=eth0\n"+
		"type=802-3-ethernet\n"+
		"[ipv4]\n"+
		"method=auto\n"+
		"address1=192.168.1.5/24,192.168.1.1\n")

	conn, err := Read(store, Options{})
	require.NoError(t, err)

	ipv4, ok := conn.Get("ipv4")
	require.True(t, ok)
	addrs, ok := ipv4.Get("address-data")
	require.True(t, ok)
	assert.Equal(t, []string{"192.168.1.5/24,192.168.1.1"}, addrs.Value)

	gw, ok := ipv4.Get("gateway")
	require.True(t, ok)
	assert.Equal(t, "192.168.1.1", gw.Value)
}

func TestRead_TrailingSeparatorIsInfoNotFatal(t *testing.T) {
	store := mustParse(t, "[connection]\ntype=802-3-ethernet\n[ipv4]\naddress1=192.168.1.5/24;\n")

	var sawInfo bool
	conn, err := Read(store, Options{Handler: func(w Warning, _ *profile.Connection, _ *inistore.Store) bool {
		if w.Severity == Info {
			sawInfo = true
		}
		return true
	}})
	require.NoError(t, err)
	assert.True(t, sawInfo)

	ipv4, _ := conn.Get("ipv4")
	addrs, _ := ipv4.Get("address-data")
	assert.Equal(t, []string{"192.168.1.5/24"}, addrs.Value)
}

func TestRead_MissingCertFileIsInfoMissingFile(t *testing.T) {
	store := mustParse(t, "[connection]\ntype=802-1x\n[802-1x]\nca-cert=file:///no/such/path.pem\n")

	var sawMissing bool
	conn, err := Read(store, Options{Handler: func(w Warning, _ *profile.Connection, _ *inistore.Store) bool {
		if w.Severity == InfoMissingFile {
			sawMissing = true
		}
		return true
	}})
	require.NoError(t, err)
	assert.True(t, sawMissing)

	dot1x, _ := conn.Get("802-1x")
	ca, ok := dot1x.Get("ca-cert")
	require.True(t, ok)
	cert, ok := ca.Value.(*Cert)
	require.True(t, ok)
	assert.Equal(t, CertPath, cert.Scheme)
}

func TestRoundTrip_IPv6RouteCanonicalForm(t *testing.T) {
	store := mustParse(t, "[connection]\ntype=802-3-ethernet\n[ipv6]\nroute1=2001:db8::/64,2001:db8::1,5\n")

	conn, err := Read(store, Options{})
	require.NoError(t, err)

	out, err := Write(conn, nil, Options{})
	require.NoError(t, err)
	assert.Equal(t, "2001:db8::/64,2001:db8::1,5", mustGetString(t, out, "ipv6", "route1"))
}

func TestRoundTrip_IPv6RouteGatewayRecoveryQuirkNeverReemitted(t *testing.T) {
	store := mustParse(t, "[connection]\ntype=802-3-ethernet\n[ipv6]\nroute1=2001:db8::/64,5\n")

	conn, err := Read(store, Options{})
	require.NoError(t, err)

	ipv6, _ := conn.Get("ipv6")
	routes, _ := ipv6.Get("route-data")
	assert.Equal(t, []string{"2001:db8::/64,::,5"}, routes.Value)

	out, err := Write(conn, nil, Options{})
	require.NoError(t, err)
	assert.Equal(t, "2001:db8::/64,::,5", mustGetString(t, out, "ipv6", "route1"))
}

func TestRoundTrip_WifiSSIDSemicolonEscape(t *testing.T) {
	store := mustParse(t, `[connection]`+"\n"+`type=802-11-wireless`+"\n"+`[802-11-wireless]`+"\n"+`ssid=foo\;bar`+"\n")

	conn, err := Read(store, Options{})
	require.NoError(t, err)

	wifi, _ := conn.Get("802-11-wireless")
	ssid, _ := wifi.Get("ssid")
	assert.Equal(t, []byte("foo;bar"), ssid.Value)

	out, err := Write(conn, nil, Options{})
	require.NoError(t, err)
	assert.Equal(t, `foo\;bar`, mustGetString(t, out, "802-11-wireless", "ssid"))
}

func TestRoundTrip_VPNDataAndSecretsRouting(t *testing.T) {
	store := mustParse(t, "[connection]\ntype=vpn\n"+
		"[vpn]\nservice-type=org.example.vpn\ngateway-address=vpn.example.com\n"+
		"[vpn-secrets]\npassword=hunter2\n")

	conn, err := Read(store, Options{})
	require.NoError(t, err)

	vpn, ok := conn.Get("vpn")
	require.True(t, ok)
	v := vpn.(*profile.VPNSetting)
	assert.Equal(t, "vpn.example.com", v.Data["gateway-address"])
	assert.Equal(t, "hunter2", v.Secrets["password"])

	out, err := Write(conn, nil, Options{})
	require.NoError(t, err)
	assert.Equal(t, "vpn.example.com", mustGetString(t, out, "vpn", "gateway-address"))
	assert.Equal(t, "hunter2", mustGetString(t, out, "vpn-secrets", "password"))
}

func TestRead_UnknownSettingGroupIsWarnedAndSkipped(t *testing.T) {
	store := mustParse(t, "[connection]\ntype=802-3-ethernet\n[not-a-real-setting]\nfoo=bar\n")

	var messages []string
	conn, err := Read(store, Options{Handler: func(w Warning, _ *profile.Connection, _ *inistore.Store) bool {
		messages = append(messages, w.Message)
		return true
	}})
	require.NoError(t, err)
	assert.False(t, conn.Has("not-a-real-setting"))
	assert.NotEmpty(t, messages)
}

func TestRead_SynthesizesIDAndUUIDFromKeyfileName(t *testing.T) {
	store := mustParse(t, "[connection]\ntype=802-3-ethernet\n")

	conn, err := Read(store, Options{KeyfileName: "eth0-home"})
	require.NoError(t, err)

	c, _ := conn.Get("connection")
	id, _ := c.Get("id")
	assert.Equal(t, "eth0-home", id.Value)
	u, _ := c.Get("uuid")
	assert.NotEmpty(t, u.Value)

	conn2, err := Read(store, Options{KeyfileName: "eth0-home"})
	require.NoError(t, err)
	c2, _ := conn2.Get("connection")
	u2, _ := c2.Get("uuid")
	assert.Equal(t, u.Value, u2.Value)
}

func TestWrite_SecretNeverWrittenWithoutPolicy(t *testing.T) {
	store := mustParse(t, "[connection]\ntype=802-1x\n[802-1x]\npassword=hunter2\n")
	conn, err := Read(store, Options{})
	require.NoError(t, err)

	out, err := Write(conn, nil, Options{})
	require.NoError(t, err)
	assert.False(t, out.HasKey("802-1x", "password"))
}

func TestWrite_SecretWrittenWhenPolicyAllows(t *testing.T) {
	store := mustParse(t, "[connection]\ntype=802-1x\n[802-1x]\npassword=hunter2\n")
	conn, err := Read(store, Options{})
	require.NoError(t, err)

	out, err := Write(conn, nil, Options{SecretPolicy: func(string, string) bool { return true }})
	require.NoError(t, err)
	assert.Equal(t, "hunter2", mustGetString(t, out, "802-1x", "password"))
}

func TestRoundTrip_ReReadProducesIdenticalAddressData(t *testing.T) {
	store := mustParse(t, "[connection]\ntype=802-3-ethernet\n[ipv4]\naddress1=10.0.0.5/24,10.0.0.1\naddress2=10.0.0.6/24\n")

	conn, err := Read(store, Options{})
	require.NoError(t, err)

	out, err := Write(conn, nil, Options{})
	require.NoError(t, err)

	reconn, err := Read(out, Options{})
	require.NoError(t, err)

	ipv4, _ := conn.Get("ipv4")
	addrs, _ := ipv4.Get("address-data")
	reipv4, _ := reconn.Get("ipv4")
	readdrs, _ := reipv4.Get("address-data")

	if diff := cmp.Diff(addrs.Value, readdrs.Value); diff != "" {
		t.Errorf("address-data changed across re-read (-want +got):\n%s", diff)
	}
}

func mustGetString(t *testing.T, s *inistore.Store, group, key string) string {
	t.Helper()
	v, ok := s.GetString(group, key)
	require.True(t, ok, "expected key %s/%s to be present", group, key)
	return v
}
