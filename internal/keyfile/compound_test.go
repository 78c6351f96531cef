// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package keyfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectIndexedKeys_MixedKindAndIndexOrdering(t *testing.T) {
	keys := []string{"address1", "address", "addresses2"}

	got := collectIndexedKeys(keys, "address", "addresses")

	want := []string{"address", "address1", "addresses2"}
	var gotKeys []string
	for _, m := range got {
		gotKeys = append(gotKeys, m.key)
	}
	assert.Equal(t, want, gotKeys)
}

func TestCollectIndexedKeys_DuplicateTupleLaterWins(t *testing.T) {
	keys := []string{"address1", "address1"}

	got := collectIndexedKeys(keys, "address", "addresses")

	assert.Len(t, got, 1)
}

func TestAddressDataReader_MixedKindAndIndexOrdering(t *testing.T) {
	store := mustParse(t, "[connection]\ntype=802-3-ethernet\n[ipv4]\n"+
		"address1=10.0.0.2/24\n"+
		"address=10.0.0.1/24\n"+
		"addresses2=10.0.0.3/24\n")

	conn, err := Read(store, Options{})
	require.NoError(t, err)

	ipv4, ok := conn.Get("ipv4")
	require.True(t, ok)
	addrs, ok := ipv4.Get("address-data")
	require.True(t, ok)
	assert.Equal(t, []string{"10.0.0.1/24", "10.0.0.2/24", "10.0.0.3/24"}, addrs.Value)
}

func TestMatchIndexed_BareKeySortsBeforeIndexZero(t *testing.T) {
	kindBare, idxBare, ok := matchIndexed("route", "route", "routes")
	assert.True(t, ok)
	assert.Equal(t, 0, kindBare)
	assert.Equal(t, -1, idxBare)

	kindZero, idxZero, ok := matchIndexed("route0", "route", "routes")
	assert.True(t, ok)
	assert.Equal(t, 0, kindZero)
	assert.Equal(t, 0, idxZero)
}
