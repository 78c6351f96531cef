// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package keyfile

import (
	"net"
	"sort"
	"strconv"
	"strings"
)

// RouteAttrKind is the closed tagged-union discriminant for a route
// attribute value.
type RouteAttrKind int8

const (
	AttrString RouteAttrKind = iota
	AttrUint32
	AttrBool
	AttrIPAddress
)

// RouteAttrValue is one decoded route attribute.
type RouteAttrValue struct {
	Kind RouteAttrKind
	Str  string
	U32  uint32
	Bool bool
}

// RouteAttrs is the <key>_options map attached to an IPRoute.
type RouteAttrs map[string]RouteAttrValue

// routeAttrSchema is the closed, per-attribute-name schema validated
// against when decoding a <key>_options list. Unknown or invalid
// attributes are silently dropped -- no warning -- to keep round-tripping
// files written by counterparts that know additional attributes.
var routeAttrSchema = map[string]RouteAttrKind{
	"table":     AttrUint32,
	"src":       AttrIPAddress,
	"from":      AttrIPAddress,
	"tos":       AttrUint32,
	"onlink":    AttrBool,
	"window":    AttrUint32,
	"cwnd":      AttrUint32,
	"lock-mtu":  AttrBool,
	"mtu":       AttrUint32,
	"type":      AttrString,
	"initrwnd":  AttrUint32,
	"advmss":    AttrUint32,
}

// DecodeRouteAttrs parses a comma-separated "name=value" list, validating
// each against routeAttrSchema. Invalid or unrecognized entries are
// dropped silently (never raised as a Warning).
func DecodeRouteAttrs(s string) RouteAttrs {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	out := make(RouteAttrs)
	for _, entry := range strings.Split(s, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		eq := strings.IndexByte(entry, '=')
		if eq < 0 {
			continue
		}
		name := strings.TrimSpace(entry[:eq])
		val := strings.TrimSpace(entry[eq+1:])
		kind, known := routeAttrSchema[name]
		if !known {
			continue
		}
		switch kind {
		case AttrUint32:
			n, err := strconv.ParseUint(val, 10, 32)
			if err != nil {
				continue
			}
			out[name] = RouteAttrValue{Kind: AttrUint32, U32: uint32(n)}
		case AttrBool:
			b, err := strconv.ParseBool(val)
			if err != nil {
				continue
			}
			out[name] = RouteAttrValue{Kind: AttrBool, Bool: b}
		case AttrIPAddress:
			if net.ParseIP(val) == nil {
				continue
			}
			out[name] = RouteAttrValue{Kind: AttrIPAddress, Str: val}
		default: // AttrString
			out[name] = RouteAttrValue{Kind: AttrString, Str: val}
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// EncodeRouteAttrs is the symmetric writer. Output is sorted by attribute
// name for determinism, since Go map iteration order is not stable.
func EncodeRouteAttrs(attrs RouteAttrs) string {
	if len(attrs) == 0 {
		return ""
	}
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		v := attrs[name]
		var val string
		switch v.Kind {
		case AttrUint32:
			val = strconv.FormatUint(uint64(v.U32), 10)
		case AttrBool:
			val = strconv.FormatBool(v.Bool)
		default:
			val = v.Str
		}
		parts = append(parts, name+"="+val)
	}
	return strings.Join(parts, ",")
}

