// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package keyfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesizeTC_UnspecifiedParentOmitsPrefix(t *testing.T) {
	assert.Equal(t, "root", synthesizeTC(tcUnspecifiedParent, ""))
	assert.Equal(t, "root handle 1: htb", synthesizeTC(tcUnspecifiedParent, "handle 1: htb"))
}

func TestSynthesizeTC_ExplicitParentGetsPrefix(t *testing.T) {
	assert.Equal(t, "parent 1:1 sfq", synthesizeTC("1:1", "sfq"))
	assert.Equal(t, "parent 1:1", synthesizeTC("1:1", ""))
}

func TestCollectTCKeys_SortedByParentAndFiltered(t *testing.T) {
	keys := []string{"qdisc.1:1", "qdisc.root", "tfilter.1:1", "other-key"}
	matched := collectTCKeys(keys, qdiscKeyPattern)
	require.Len(t, matched, 2)
	assert.Equal(t, "1:1", matched[0].parent)
	assert.Equal(t, "root", matched[1].parent)
}

func TestReadQdiscs_SynthesizesDomainStrings(t *testing.T) {
	store := mustParse(t, "[connection]\ntype=802-3-ethernet\n[tc]\nqdisc.root=handle 1: htb default 10\nqdisc.1:1=sfq\n")
	conn, err := Read(store, Options{})
	require.NoError(t, err)

	tc, ok := conn.Get("tc")
	require.True(t, ok)
	prop, ok := tc.Get("qdiscs")
	require.True(t, ok)
	assert.Equal(t, []string{"parent 1:1 sfq", "root handle 1: htb default 10"}, prop.Value)
}

func TestWriteQdiscs_RoundTripsBackToKeyedForm(t *testing.T) {
	store := mustParse(t, "[connection]\ntype=802-3-ethernet\n[tc]\nqdisc.root=handle 1: htb default 10\nqdisc.1:1=sfq\n")
	conn, err := Read(store, Options{})
	require.NoError(t, err)

	out, err := Write(conn, nil, Options{})
	require.NoError(t, err)
	assert.Equal(t, "handle 1: htb default 10", mustGetString(t, out, "tc", "qdisc.root"))
	assert.Equal(t, "sfq", mustGetString(t, out, "tc", "qdisc.1:1"))
}

func TestReadTfilters_SynthesizesDomainStrings(t *testing.T) {
	store := mustParse(t, "[connection]\ntype=802-3-ethernet\n[tc]\ntfilter.1:=basic\n")
	conn, err := Read(store, Options{})
	require.NoError(t, err)

	tc, ok := conn.Get("tc")
	require.True(t, ok)
	prop, ok := tc.Get("tfilters")
	require.True(t, ok)
	assert.Equal(t, []string{"parent 1: basic"}, prop.Value)
}
