// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package keyfile

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"grimm.is/connprofile/internal/profile"
)

// vfKeyPattern matches the "vf.<N>" key family, <N> all digits.
var vfKeyPattern = regexp.MustCompile(`^vf\.([0-9]+)$`)

// VF is a decoded SR-IOV virtual function descriptor.
type VF struct {
	Index      uint32
	MAC        []byte
	SpoofCheck *bool
	Trust      *bool
	MinTxRate  *uint32
	MaxTxRate  *uint32
	VLANs      []string
}

// decodeVF parses one "index [SEP key=value]*" descriptor, SEP being
// whitespace. Unknown keys are warned and dropped
// individually; the descriptor itself survives.
func decodeVF(c *ctx, raw string) (*VF, error) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty VF descriptor")
	}
	idx, err := decodeBoundedInt(fields[0], 0, 4294967295)
	if err != nil {
		return nil, fmt.Errorf("invalid VF index: %w", err)
	}
	vf := &VF{Index: uint32(idx)}
	for _, f := range fields[1:] {
		name, val, ok := strings.Cut(f, "=")
		if !ok {
			if err := c.warn(Warn, "malformed VF attribute %q, dropping", f); err != nil {
				return nil, err
			}
			continue
		}
		switch name {
		case "mac":
			mac, err := decodeMAC(val, 6)
			if err != nil {
				if werr := c.warn(Warn, "invalid VF mac %q, dropping", val); werr != nil {
					return nil, werr
				}
				continue
			}
			vf.MAC = mac
		case "spoof-check":
			b, err := strconv.ParseBool(val)
			if err != nil {
				if werr := c.warn(Warn, "invalid VF spoof-check %q, dropping", val); werr != nil {
					return nil, werr
				}
				continue
			}
			vf.SpoofCheck = &b
		case "trust":
			b, err := strconv.ParseBool(val)
			if err != nil {
				if werr := c.warn(Warn, "invalid VF trust %q, dropping", val); werr != nil {
					return nil, werr
				}
				continue
			}
			vf.Trust = &b
		case "min-tx-rate", "max-tx-rate":
			n, err := decodeBoundedInt(val, 0, 4294967295)
			if err != nil {
				if werr := c.warn(Warn, "invalid VF %s %q, dropping", name, val); werr != nil {
					return nil, werr
				}
				continue
			}
			u := uint32(n)
			if name == "min-tx-rate" {
				vf.MinTxRate = &u
			} else {
				vf.MaxTxRate = &u
			}
		case "vlans":
			if !validVLANList(val) {
				if werr := c.warn(Warn, "invalid VF vlans %q, dropping", val); werr != nil {
					return nil, werr
				}
				continue
			}
			vf.VLANs = strings.Split(val, ";")
		default:
			if err := c.warn(Warn, "unknown VF attribute %q, dropping", name); err != nil {
				return nil, err
			}
		}
	}
	return vf, nil
}

// validVLANList validates "vlan-id[.qos[.protocol]]" entries, protocol in
// {q, ad}, every numeric field bounded the same as any other 32-bit field.
func validVLANList(s string) bool {
	for _, entry := range strings.Split(s, ";") {
		parts := strings.Split(entry, ".")
		if len(parts) == 0 || len(parts) > 3 {
			return false
		}
		if _, err := decodeBoundedInt(parts[0], 0, 4294967295); err != nil {
			return false
		}
		if len(parts) >= 2 {
			if _, err := decodeBoundedInt(parts[1], 0, 4294967295); err != nil {
				return false
			}
		}
		if len(parts) == 3 && parts[2] != "q" && parts[2] != "ad" {
			return false
		}
	}
	return true
}

func encodeVF(vf *VF) string {
	parts := []string{strconv.FormatUint(uint64(vf.Index), 10)}
	if len(vf.MAC) > 0 {
		parts = append(parts, "mac="+encodeMAC(vf.MAC))
	}
	if vf.SpoofCheck != nil {
		parts = append(parts, "spoof-check="+strconv.FormatBool(*vf.SpoofCheck))
	}
	if vf.Trust != nil {
		parts = append(parts, "trust="+strconv.FormatBool(*vf.Trust))
	}
	if vf.MinTxRate != nil {
		parts = append(parts, "min-tx-rate="+strconv.FormatUint(uint64(*vf.MinTxRate), 10))
	}
	if vf.MaxTxRate != nil {
		parts = append(parts, "max-tx-rate="+strconv.FormatUint(uint64(*vf.MaxTxRate), 10))
	}
	if len(vf.VLANs) > 0 {
		parts = append(parts, "vlans="+strings.Join(vf.VLANs, ";"))
	}
	return strings.Join(parts, " ")
}

// readVFs collects every "vf.<N>" key, sorted numerically by N, and decodes
// each into the in-memory representation (the encoded canonical string, to
// fit the generic KindStringList slot).
func readVFs(c *ctx, st profile.Setting, prop *profile.Property) error {
	keys := c.store.Keys(c.group)
	type indexed struct {
		n   int
		key string
	}
	var matched []indexed
	for _, k := range keys {
		m := vfKeyPattern.FindStringSubmatch(k)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		matched = append(matched, indexed{n: n, key: k})
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].n < matched[j].n })

	out := make([]string, 0, len(matched))
	for _, m := range matched {
		raw, _ := c.store.GetString(c.group, m.key)
		vf, err := decodeVF(c, raw)
		if err != nil {
			if c.aborted() {
				return c.vetoed
			}
			continue
		}
		out = append(out, encodeVF(vf))
	}
	prop.Value = out
	return nil
}

func writeVFs(c *ctx, st profile.Setting, prop *profile.Property) error {
	descs, ok := prop.Value.([]string)
	if !ok || len(descs) == 0 {
		return nil
	}
	for i, d := range descs {
		fields := strings.Fields(d)
		idx := strconv.Itoa(i)
		if len(fields) > 0 {
			idx = fields[0]
		}
		c.store.SetString(c.group, "vf."+idx, d)
	}
	return nil
}
