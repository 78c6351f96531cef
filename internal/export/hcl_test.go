// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grimm.is/connprofile/internal/inistore"
	"grimm.is/connprofile/internal/keyfile"
)

func TestRenderHCL_OneBlockPerSettingNonDefaultAttributes(t *testing.T) {
	store, err := inistore.Parse("[connection]\nid=eth0\ntype=802-3-ethernet\n[ipv4]\nmethod=manual\naddress1=192.168.1.5/24\n")
	require.NoError(t, err)

	conn, err := keyfile.Read(store, keyfile.Options{})
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, WriteHCL(&buf, conn))

	out := buf.String()
	assert.Contains(t, out, `setting "connection"`)
	assert.Contains(t, out, `setting "ipv4"`)
	// hclwrite aligns the '=' of consecutive attributes, so the spacing
	// between name and '=' depends on the longest name in the block.
	assert.Regexp(t, `id +=\s"eth0"`, out)
	assert.Regexp(t, `method +=\s"manual"`, out)
	assert.NotRegexp(t, `autoconnect +=`, out)
}
