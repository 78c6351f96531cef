// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package keyfile

import (
	"fmt"
	"net"
	"sort"
	"strconv"
	"strings"
)

// IPAddress is a decoded address line: address, prefix length, and an
// optional gateway. Family is 4 or 6.
type IPAddress struct {
	Family    int
	Address   string
	PrefixLen uint32
	Gateway   string // "" if unspecified
}

// IPRoute is a decoded route line. Metric is -1 when unset, matching the
// source's sentinel; Attributes holds the route's <key>_options map.
type IPRoute struct {
	Family      int
	Destination string
	PrefixLen   uint32
	Gateway     string // "" if unspecified
	Metric      int64
	Attributes  RouteAttrs
}

// addrRouteSeparators are interchangeable field terminators.
const addrRouteSeparators = "/;,"

// splitFields tokenizes an address/route line on any of the interchangeable
// separators. trailingSep reports whether the line ended with a separator
// and no further field (the "deprecated semicolon at end" case).
func splitFields(line string) (fields []string, trailingSep bool) {
	var cur strings.Builder
	for i := 0; i < len(line); i++ {
		c := line[i]
		if strings.IndexByte(addrRouteSeparators, c) >= 0 {
			fields = append(fields, cur.String())
			cur.Reset()
			continue
		}
		cur.WriteByte(c)
	}
	last := cur.String()
	if last == "" && len(fields) > 0 {
		trailingSep = true
	} else {
		fields = append(fields, last)
	}
	return fields, trailingSep
}

type addrRouteFields struct {
	address    string
	prefixLen  uint32
	havePrefix bool
	gateway    string
	haveGateway bool
	metric     int64
}

// scanAddrRouteLine implements the shared field scanner for §4.B: up to 3
// fields for an address, up to 4 for a route (the extra field is metric).
func scanAddrRouteLine(c *ctx, line string, isRoute bool) (*addrRouteFields, error) {
	fields, trailingSep := splitFields(line)
	if trailingSep {
		if err := c.warn(Info, "deprecated separator at end of value %q", line); err != nil {
			return nil, err
		}
	}
	maxFields := 3
	if isRoute {
		maxFields = 4
	}
	if len(fields) > maxFields {
		if err := c.warn(Warn, "garbage after expected fields in %q, discarding", line); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("discarded: garbage in %q", line)
	}
	if len(fields) == 0 || fields[0] == "" {
		return nil, fmt.Errorf("missing address in %q", line)
	}

	out := &addrRouteFields{address: fields[0], metric: -1}
	if len(fields) >= 2 && fields[1] != "" {
		n, err := decodeBoundedInt(fields[1], 0, 4294967295)
		if err != nil {
			return nil, fmt.Errorf("invalid prefix length: %w", err)
		}
		out.prefixLen = uint32(n)
		out.havePrefix = true
	}
	if len(fields) >= 3 && fields[2] != "" {
		out.gateway = fields[2]
		out.haveGateway = true
	}
	if isRoute && len(fields) >= 4 && fields[3] != "" {
		n, err := decodeBoundedInt(fields[3], 0, 4294967295)
		if err != nil {
			return nil, fmt.Errorf("invalid metric: %w", err)
		}
		out.metric = n
	}
	return out, nil
}

func defaultPrefixLen(family int, isRoute bool) uint32 {
	switch {
	case family == 4 && !isRoute:
		return 24
	case family == 6 && !isRoute:
		return 64
	case family == 4 && isRoute:
		return 24
	default: // family == 6, route
		return 128
	}
}

// ParseAddress decodes one address/addresses<N> value.
func ParseAddress(c *ctx, line string, family int) (*IPAddress, error) {
	f, err := scanAddrRouteLine(c, line, false)
	if err != nil {
		return nil, err
	}
	prefix := f.prefixLen
	if !f.havePrefix {
		prefix = defaultPrefixLen(family, false)
		if err := c.warn(Warn, "missing prefix length, assuming /%d", prefix); err != nil {
			return nil, err
		}
	}
	return &IPAddress{Family: family, Address: f.address, PrefixLen: prefix, Gateway: f.gateway}, nil
}

// FormatAddress is the canonical writer for an address line.
func FormatAddress(a *IPAddress) string {
	parts := []string{fmt.Sprintf("%s/%d", a.Address, a.PrefixLen)}
	if a.Gateway != "" {
		parts = append(parts, a.Gateway)
	}
	return strings.Join(parts, ",")
}

// ParseRoute decodes one route/routes<N> value, applying the IPv6
// gateway-recovery quirk: if the gateway field fails to parse as an IP but
// does parse as a non-negative 32-bit integer, and no explicit metric
// field follows, it is treated as the metric instead and gateway is left
// unspecified. This must never be re-emitted on write.
func ParseRoute(c *ctx, line string, family int) (*IPRoute, error) {
	f, err := scanAddrRouteLine(c, line, true)
	if err != nil {
		return nil, err
	}

	if family == 6 && f.haveGateway && f.metric == -1 {
		if net.ParseIP(f.gateway) == nil {
			if n, convErr := decodeBoundedInt(f.gateway, 0, 4294967295); convErr == nil {
				f.metric = n
				f.gateway = ""
				f.haveGateway = false
			}
		}
	}

	prefix := f.prefixLen
	if !f.havePrefix || prefix == 0 {
		prefix = defaultPrefixLen(family, true)
		if err := c.warn(Warn, "missing or zero prefix length, assuming /%d", prefix); err != nil {
			return nil, err
		}
	}

	return &IPRoute{
		Family:      family,
		Destination: f.address,
		PrefixLen:   prefix,
		Gateway:     f.gateway,
		Metric:      f.metric,
		Attributes:  nil,
	}, nil
}

// FormatRoute is the canonical writer for a route line. The gateway
// recovery quirk is never re-emitted: a route always writes an explicit
// gateway field ("::" or "0.0.0.0" when unspecified) whenever a metric
// follows, so the ambiguity the quirk resolves cannot recur on read-back.
func FormatRoute(r *IPRoute) string {
	parts := []string{fmt.Sprintf("%s/%d", r.Destination, r.PrefixLen)}
	if r.Metric >= 0 || r.Gateway != "" {
		gw := r.Gateway
		if gw == "" {
			gw = unspecifiedGateway(r.Family)
		}
		parts = append(parts, gw)
	}
	if r.Metric >= 0 {
		parts = append(parts, strconv.FormatInt(r.Metric, 10))
	}
	return strings.Join(parts, ",")
}

func unspecifiedGateway(family int) string {
	if family == 6 {
		return "::"
	}
	return "0.0.0.0"
}

// indexedKey describes one matched address/route-family key and its sort
// position: (index, kind, key) ascending, kind 0 (singular) before kind 1
// (plural) at equal index, and the unindexed form (index -1) sorting
// before index 0.
type indexedKey struct {
	index int
	kind  int
	key   string
}

func parseIndexSuffix(s string) (int, bool) {
	if s == "0" {
		return 0, true
	}
	if len(s) == 0 || s[0] < '1' || s[0] > '9' {
		return 0, false
	}
	for i := 1; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// matchIndexed classifies a key against a singular/plural key-name pair.
func matchIndexed(key, singular, plural string) (kind, index int, ok bool) {
	if key == plural {
		return 1, -1, true
	}
	if key == singular {
		return 0, -1, true
	}
	if strings.HasPrefix(key, plural) {
		if n, ok2 := parseIndexSuffix(key[len(plural):]); ok2 {
			return 1, n, true
		}
		return 0, 0, false
	}
	if strings.HasPrefix(key, singular) {
		if n, ok2 := parseIndexSuffix(key[len(singular):]); ok2 {
			return 0, n, true
		}
	}
	return 0, 0, false
}

// collectIndexedKeys gathers every key in keys matching the singular/plural
// pair and returns them sorted per the rule above, with consecutive
// duplicate (index, kind) tuples collapsed, keeping the later one in
// input order.
func collectIndexedKeys(keys []string, singular, plural string) []indexedKey {
	var matched []indexedKey
	for _, k := range keys {
		if kind, index, ok := matchIndexed(k, singular, plural); ok {
			matched = append(matched, indexedKey{index: index, kind: kind, key: k})
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].index != matched[j].index {
			return matched[i].index < matched[j].index
		}
		if matched[i].kind != matched[j].kind {
			return matched[i].kind < matched[j].kind
		}
		return matched[i].key < matched[j].key
	})
	deduped := matched[:0]
	for i, m := range matched {
		if i > 0 && m.index == matched[i-1].index && m.kind == matched[i-1].kind {
			deduped[len(deduped)-1] = m
			continue
		}
		deduped = append(deduped, m)
	}
	return deduped
}

// AddrGenModeDefault is the value assumed when the property is absent.
const AddrGenModeDefault = "eui64"

// DecodeAddrGenMode validates an addr-gen-mode string against the closed
// enum {eui64, stable-privacy}.
func DecodeAddrGenMode(c *ctx, s string) (string, error) {
	switch s {
	case "eui64", "stable-privacy":
		return s, nil
	default:
		if err := c.warn(Warn, "invalid addr-gen-mode %q, using default", s); err != nil {
			return "", err
		}
		return AddrGenModeDefault, nil
	}
}

// ValidateDNSList drops list elements that do not parse as an IP address
// of the given family, warning for each.
func ValidateDNSList(c *ctx, family int, addrs []string) ([]string, error) {
	out := make([]string, 0, len(addrs))
	for _, a := range addrs {
		ip := net.ParseIP(a)
		ok := ip != nil
		if ok {
			isV4 := ip.To4() != nil
			if family == 4 && !isV4 {
				ok = false
			}
			if family == 6 && isV4 {
				ok = false
			}
		}
		if !ok {
			if err := c.warn(Warn, "dropping invalid DNS address %q", a); err != nil {
				return nil, err
			}
			continue
		}
		out = append(out, a)
	}
	return out, nil
}
