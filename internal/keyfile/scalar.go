// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package keyfile

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"grimm.is/connprofile/internal/profile"
)

// decodeBoundedInt parses a base-10 integer string, failing if it is
// empty, malformed, or outside [min, max]. Leading/trailing whitespace is
// tolerated per the underlying INI store's own policy.
func decodeBoundedInt(s string, min, max int64) (int64, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, fmt.Errorf("empty integer")
	}
	n, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("not an integer: %q", s)
	}
	if n < min || n > max {
		return 0, fmt.Errorf("integer %d out of range [%d, %d]", n, min, max)
	}
	return n, nil
}

// clonedMACTokens are reserved values for the "cloned MAC" property that
// bypass MAC validation entirely and pass through verbatim.
var clonedMACTokens = map[string]bool{
	"preserve":  true,
	"permanent": true,
	"random":    true,
	"stable":    true,
}

// isClonedMACToken reports whether s is a reserved cloned-MAC token.
func isClonedMACToken(s string) bool {
	return clonedMACTokens[s]
}

// decodeMAC accepts either colon-separated hex bytes or a legacy
// semicolon-separated list of 0-255 decimals. expectedLen is the required
// byte count (6 for Ethernet, 20 for InfiniBand); 0 means unconstrained.
func decodeMAC(s string, expectedLen int) ([]byte, error) {
	if strings.Contains(s, ":") {
		parts := strings.Split(s, ":")
		out := make([]byte, 0, len(parts))
		for _, p := range parts {
			if len(p) != 2 {
				return nil, fmt.Errorf("malformed MAC octet %q", p)
			}
			n, err := strconv.ParseUint(p, 16, 8)
			if err != nil {
				return nil, fmt.Errorf("malformed MAC octet %q", p)
			}
			out = append(out, byte(n))
		}
		if expectedLen != 0 && len(out) != expectedLen {
			return nil, fmt.Errorf("MAC address has %d bytes, expected %d", len(out), expectedLen)
		}
		return out, nil
	}

	// Legacy integer-list form.
	parts := strings.Split(s, ";")
	out := make([]byte, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.ParseUint(p, 10, 16)
		if err != nil || n > 255 {
			return nil, fmt.Errorf("malformed legacy MAC element %q", p)
		}
		out = append(out, byte(n))
	}
	if expectedLen != 0 && len(out) != expectedLen {
		return nil, fmt.Errorf("legacy MAC address has %d bytes, expected %d", len(out), expectedLen)
	}
	return out, nil
}

// encodeMAC always emits colon-separated lowercase hex, the canonical form.
func encodeMAC(mac []byte) string {
	parts := make([]string, len(mac))
	for i, b := range mac {
		parts[i] = fmt.Sprintf("%02x", b)
	}
	return strings.Join(parts, ":")
}

// unescapeSemicolons is the byte-blob grammar's only escape transform:
// "\;" becomes ";"; every other byte, including a lone trailing
// backslash, passes through unchanged.
func unescapeSemicolons(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) && s[i+1] == ';' {
			b.WriteByte(';')
			i++
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// looksLikeIntegerList reports whether s consists entirely of whitespace,
// digits, and ';' and is reparsable as a semicolon-terminated list of
// 0-255 integers.
func looksLikeIntegerList(s string) ([]byte, bool) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c == ' ' || c == '\t' || (c >= '0' && c <= '9') || c == ';') {
			return nil, false
		}
	}
	parts := strings.Split(s, ";")
	out := make([]byte, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.ParseUint(p, 10, 16)
		if err != nil || n > 255 {
			return nil, false
		}
		out = append(out, byte(n))
	}
	return out, true
}

// decodeBytes implements get_bytes: empty string is the empty blob
// (distinct from absent); a pure-digit/whitespace/';' string reparsable as
// an integer list decodes as bytes; otherwise raw string bytes with
// "\;" unescaped to ";".
func decodeBytes(s string) []byte {
	if s == "" {
		return []byte{}
	}
	if b, ok := looksLikeIntegerList(s); ok {
		return b
	}
	return []byte(unescapeSemicolons(s))
}

// encodeBytesLegacyList always emits the integer-list legacy form, used
// for "raw password"-style properties.
func encodeBytesLegacyList(b []byte) string {
	parts := make([]string, len(b))
	for i, v := range b {
		parts[i] = strconv.FormatUint(uint64(v), 10)
	}
	return strings.Join(parts, ";")
}

// encodeSSID emits a printable-ASCII string (escaping ';' as "\;") when
// every byte is printable; otherwise falls back to the legacy integer-list
// form.
func encodeSSID(b []byte) string {
	allPrintable := true
	for _, c := range b {
		if c < 0x20 || c > 0x7e {
			allPrintable = false
			break
		}
	}
	if !allPrintable {
		return encodeBytesLegacyList(b)
	}
	return strings.ReplaceAll(string(b), ";", `\;`)
}

// decodeBase64Strict enforces strict RFC 4648 base64: length a multiple of
// 4, alphabet [A-Za-z0-9+/], '=' padding only at the end.
func decodeBase64Strict(s string) ([]byte, error) {
	if len(s)%4 != 0 {
		return nil, fmt.Errorf("base64 length %d is not a multiple of 4", len(s))
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		ok := (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '+' || c == '/' || c == '='
		if !ok {
			return nil, fmt.Errorf("invalid base64 byte %q", c)
		}
		if c == '=' {
			for j := i + 1; j < len(s); j++ {
				if s[j] != '=' {
					return nil, fmt.Errorf("non-padding byte after '=' at offset %d", j)
				}
			}
			break
		}
	}
	return base64.StdEncoding.DecodeString(s)
}

// encodeBase64Strict is the symmetric encoder.
func encodeBase64Strict(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// decodeParity accepts ASCII codes or single-character strings for
// 'E'/'e', 'O'/'o', 'N'/'n' and maps them to a profile.SerialParity.
func decodeParity(s string) (profile.SerialParity, error) {
	trimmed := strings.TrimSpace(s)
	var ch byte
	if len(trimmed) == 1 {
		ch = trimmed[0]
	} else if n, err := strconv.ParseInt(trimmed, 10, 32); err == nil {
		ch = byte(n)
	} else {
		return 0, fmt.Errorf("malformed parity %q", s)
	}
	switch ch {
	case 'E', 'e':
		return profile.ParityEven, nil
	case 'O', 'o':
		return profile.ParityOdd, nil
	case 'N', 'n':
		return profile.ParityNone, nil
	default:
		return 0, fmt.Errorf("unrecognized parity %q", s)
	}
}

// encodeParity always writes the ASCII code as an integer, never the
// character.
func encodeParity(p profile.SerialParity) string {
	switch p {
	case profile.ParityEven:
		return strconv.Itoa('E')
	case profile.ParityOdd:
		return strconv.Itoa('O')
	default:
		return strconv.Itoa('N')
	}
}
