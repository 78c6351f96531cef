// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_NewByCanonicalName(t *testing.T) {
	cat := NewCatalog()
	s, err := cat.New("ipv4")
	require.NoError(t, err)
	assert.Equal(t, "ipv4", s.Name())
	p, ok := s.Get("method")
	require.True(t, ok)
	assert.Equal(t, "auto", p.Value)
}

func TestCatalog_NewByAlias(t *testing.T) {
	cat := NewCatalog()
	s, err := cat.New("wifi")
	require.NoError(t, err)
	assert.Equal(t, "802-11-wireless", s.Name())
}

func TestCatalog_UnknownNameFails(t *testing.T) {
	cat := NewCatalog()
	_, err := cat.New("not-a-real-setting")
	assert.Error(t, err)
}

func TestCatalog_Aliases(t *testing.T) {
	cat := NewCatalog()
	assert.Contains(t, cat.Aliases("802-11-wireless"), "wifi")
}

func TestConnection_AddGetSettings(t *testing.T) {
	cat := NewCatalog()
	conn := NewConnection()
	ipv4, _ := cat.New("ipv4")
	connSetting, _ := cat.New("connection")
	conn.Add(connSetting)
	conn.Add(ipv4)

	assert.True(t, conn.Has("ipv4"))
	got, ok := conn.Get("ipv4")
	require.True(t, ok)
	assert.Equal(t, ipv4, got)
	assert.Equal(t, []Setting{connSetting, ipv4}, conn.Settings())
}

func TestProperty_IsDefault(t *testing.T) {
	cat := NewCatalog()
	s, _ := cat.New("ipv4")
	p, _ := s.Get("method")
	assert.True(t, p.IsDefault())
	p.Value = "manual"
	assert.False(t, p.IsDefault())
}
