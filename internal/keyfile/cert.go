// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package keyfile

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// CertScheme is the certificate value's tagged-union discriminant.
type CertScheme int8

const (
	CertPath CertScheme = iota
	CertPkcs11
	CertBlob
	CertUnknown
)

// Cert is a decoded certificate property value.
type Cert struct {
	Scheme CertScheme
	Path   string // CertPath: absolute path
	URI    string // CertPkcs11: the URI verbatim
	Blob   []byte // CertBlob: raw payload
}

const (
	certPrefixPath   = "file://"
	certPrefixPkcs11 = "pkcs11:"
	certPrefixBlob   = "data:;base64,"
)

// bareCertExtensions are the extensions recognized by the bare-path
// heuristic. Case-sensitive; this list and the 500-byte cap are
// load-bearing for the blob-vs-path ambiguity.
var bareCertExtensions = []string{".pem", ".cert", ".crt", ".cer", ".p12", ".der", ".key"}

// DecodeCert classifies the raw byte blob produced by the §4.A byte-blob
// grammar into one of the four certificate schemes.
func DecodeCert(c *ctx, raw []byte, baseDir string) (*Cert, error) {
	s := string(raw)

	if strings.HasPrefix(s, certPrefixPath) {
		path := strings.TrimSuffix(strings.TrimPrefix(s, certPrefixPath), "\x00")
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		if _, err := os.Stat(path); err != nil {
			if werr := c.warn(InfoMissingFile, "certificate path %q does not exist", path); werr != nil {
				return nil, werr
			}
		}
		return &Cert{Scheme: CertPath, Path: path}, nil
	}

	if strings.HasPrefix(s, certPrefixPkcs11) {
		// URI validation is delegated to the domain library upstream;
		// here we accept any pkcs11: URI verbatim.
		return &Cert{Scheme: CertPkcs11, URI: s}, nil
	}

	if strings.HasPrefix(s, certPrefixBlob) {
		payload := strings.TrimPrefix(s, certPrefixBlob)
		if payload == "" {
			if err := c.warn(Warn, "empty base64 certificate blob"); err != nil {
				return nil, err
			}
			return &Cert{Scheme: CertUnknown}, nil
		}
		blob, err := decodeBase64Strict(payload)
		if err != nil {
			if werr := c.warn(Warn, "invalid base64 certificate blob: %v", err); werr != nil {
				return nil, werr
			}
			return &Cert{Scheme: CertUnknown}, nil
		}
		return &Cert{Scheme: CertBlob, Blob: blob}, nil
	}

	// Bare-path attempt.
	if utf8.ValidString(s) && len(s) >= 1 && len(s) <= 500 {
		hasSlash := strings.ContainsRune(s, '/')
		hasKnownExt := false
		for _, ext := range bareCertExtensions {
			if strings.HasSuffix(s, ext) {
				hasKnownExt = true
				break
			}
		}
		if hasSlash || hasKnownExt {
			path := s
			if !filepath.IsAbs(path) {
				path = filepath.Join(baseDir, path)
			}
			if _, err := os.Stat(path); err != nil {
				if werr := c.warn(InfoMissingFile, "certificate path %q does not exist", path); werr != nil {
					return nil, werr
				}
			}
			return &Cert{Scheme: CertPath, Path: path}, nil
		}
	}

	return &Cert{Scheme: CertBlob, Blob: raw}, nil
}

// EncodeCert is the symmetric writer.
func EncodeCert(cert *Cert) []byte {
	switch cert.Scheme {
	case CertPath:
		path := cert.Path
		if !filepath.IsAbs(path) {
			if wd, err := os.Getwd(); err == nil {
				path = filepath.Join(wd, path)
			}
		}
		return []byte(certPrefixPath + path)
	case CertPkcs11:
		return []byte(cert.URI)
	default:
		return []byte(certPrefixBlob + encodeBase64Strict(cert.Blob))
	}
}
