// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package keyfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grimm.is/connprofile/internal/inistore"
	"grimm.is/connprofile/internal/profile"
)

func TestDecodeCert_FileSchemeExistingPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "client.pem")
	require.NoError(t, os.WriteFile(path, []byte("cert"), 0o644))

	c := newTestCtx(nil, dir)
	cert, err := DecodeCert(c, []byte("file://"+path), dir)
	require.NoError(t, err)
	assert.Equal(t, CertPath, cert.Scheme)
	assert.Equal(t, path, cert.Path)
}

func TestDecodeCert_FileSchemeMissingPathWarnsInfoMissingFile(t *testing.T) {
	var severities []Severity
	c := newTestCtx(func(w Warning, _ *profile.Connection, _ *inistore.Store) bool {
		severities = append(severities, w.Severity)
		return true
	}, ".")

	cert, err := DecodeCert(c, []byte("file:///no/such/path.pem"), ".")
	require.NoError(t, err)
	assert.Equal(t, CertPath, cert.Scheme)
	assert.Contains(t, severities, InfoMissingFile)
}

func TestDecodeCert_Pkcs11SchemePassthrough(t *testing.T) {
	c := newTestCtx(nil, ".")
	cert, err := DecodeCert(c, []byte("pkcs11:model=foo;serial=1"), ".")
	require.NoError(t, err)
	assert.Equal(t, CertPkcs11, cert.Scheme)
	assert.Equal(t, "pkcs11:model=foo;serial=1", cert.URI)
}

func TestDecodeCert_Base64BlobScheme(t *testing.T) {
	c := newTestCtx(nil, ".")
	cert, err := DecodeCert(c, []byte("data:;base64,Zm9v"), ".")
	require.NoError(t, err)
	assert.Equal(t, CertBlob, cert.Scheme)
	assert.Equal(t, []byte("foo"), cert.Blob)
}

func TestDecodeCert_InvalidBase64BlobWarnsAndFallsBackToUnknown(t *testing.T) {
	var messages []string
	c := newTestCtx(func(w Warning, _ *profile.Connection, _ *inistore.Store) bool {
		messages = append(messages, w.Message)
		return true
	}, ".")
	cert, err := DecodeCert(c, []byte("data:;base64,!!!!"), ".")
	require.NoError(t, err)
	assert.Equal(t, CertUnknown, cert.Scheme)
	assert.NotEmpty(t, messages)
}

func TestDecodeCert_BarePathHeuristicSlashOrExtension(t *testing.T) {
	dir := t.TempDir()
	withSlash := filepath.Join(dir, "sub", "cert.bin")
	require.NoError(t, os.MkdirAll(filepath.Dir(withSlash), 0o755))
	require.NoError(t, os.WriteFile(withSlash, []byte("x"), 0o644))

	c := newTestCtx(nil, dir)
	cert, err := DecodeCert(c, []byte(withSlash), dir)
	require.NoError(t, err)
	assert.Equal(t, CertPath, cert.Scheme)

	c2 := newTestCtx(nil, dir)
	cert2, err := DecodeCert(c2, []byte("client.pem"), dir)
	require.NoError(t, err)
	assert.Equal(t, CertPath, cert2.Scheme)
	assert.Equal(t, filepath.Join(dir, "client.pem"), cert2.Path)
}

func TestDecodeCert_BarePathHeuristicRejects500ByteOverflow(t *testing.T) {
	long := strings.Repeat("a", 501)
	c := newTestCtx(nil, ".")
	cert, err := DecodeCert(c, []byte(long), ".")
	require.NoError(t, err)
	assert.Equal(t, CertBlob, cert.Scheme, "over-length string without slash/extension falls through to blob")
}

func TestDecodeCert_OpaqueBlobWithoutSlashOrKnownExtensionFallsThroughAsBlob(t *testing.T) {
	c := newTestCtx(nil, ".")
	cert, err := DecodeCert(c, []byte("not-a-path-or-scheme"), ".")
	require.NoError(t, err)
	assert.Equal(t, CertBlob, cert.Scheme)
	assert.Equal(t, []byte("not-a-path-or-scheme"), cert.Blob)
}

func TestEncodeCert_RoundTripsFileScheme(t *testing.T) {
	cert := &Cert{Scheme: CertPath, Path: "/abs/path/client.pem"}
	assert.Equal(t, "file:///abs/path/client.pem", string(EncodeCert(cert)))
}

func TestEncodeCert_RoundTripsBase64Blob(t *testing.T) {
	cert := &Cert{Scheme: CertBlob, Blob: []byte("foo")}
	assert.Equal(t, "data:;base64,Zm9v", string(EncodeCert(cert)))
}
