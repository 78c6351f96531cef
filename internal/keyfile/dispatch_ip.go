// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package keyfile

import (
	"fmt"
	"strconv"
	"strings"

	"grimm.is/connprofile/internal/profile"
)

// address-data elements carry no attributes, so the in-memory
// representation of each is just FormatAddress's canonical string.

// addressDataReader builds a dispatchReader that collects the "address",
// "addresses", "address<N>" family of keys (§4.B indexed grammar), decodes
// each through the compound address grammar, and additionally seeds the
// owning setting's sibling "gateway" property from the first address's
// gateway field unless "gateway" is already set explicitly in the store.
func addressDataReader(family int) dispatchReader {
	return func(c *ctx, st profile.Setting, prop *profile.Property) error {
		keys := collectIndexedKeys(c.store.Keys(c.group), "address", "addresses")
		if len(keys) == 0 {
			return nil
		}
		addrs := make([]string, 0, len(keys))
		var firstGateway string
		for _, k := range keys {
			raw, _ := c.store.GetString(c.group, k.key)
			addr, err := ParseAddress(c, raw, family)
			if err != nil {
				if c.aborted() {
					return c.vetoed
				}
				continue
			}
			if firstGateway == "" {
				firstGateway = addr.Gateway
			}
			addrs = append(addrs, FormatAddress(addr))
		}
		prop.Value = addrs
		if firstGateway != "" && !c.store.HasKey(c.group, "gateway") {
			if gw, ok := st.Get("gateway"); ok {
				gw.Value = firstGateway
			}
		}
		return nil
	}
}

// addressDataWriter emits one "address<N>" key per element.
func addressDataWriter(c *ctx, st profile.Setting, prop *profile.Property) error {
	addrs, ok := prop.Value.([]string)
	if !ok || len(addrs) == 0 {
		return nil
	}
	for i, a := range addrs {
		c.store.SetString(c.group, fmt.Sprintf("address%d", i+1), a)
	}
	return nil
}

// dnsReader builds a dispatchReader validating the "dns" string-list
// property against the setting's address family.
func dnsReader(family int) dispatchReader {
	return func(c *ctx, st profile.Setting, prop *profile.Property) error {
		raw, ok := c.store.GetStringList(c.group, prop.Descriptor.Name)
		if !ok {
			return nil
		}
		validated, err := ValidateDNSList(c, family, raw)
		if err != nil {
			return err
		}
		prop.Value = validated
		return nil
	}
}

// routeAttrSep joins a route's formatted line to its optional encoded
// <key>_options suffix within the in-memory []string representation, so the
// generic string-list type can carry both without a dedicated Kind.
const routeAttrSep = "\x00"

// routeDataReader collects "route"/"routes"/"route<N>" keys plus their
// paired "route<N>_options" attribute keys.
func routeDataReader(family int) dispatchReader {
	return func(c *ctx, st profile.Setting, prop *profile.Property) error {
		keys := collectIndexedKeys(c.store.Keys(c.group), "route", "routes")
		if len(keys) == 0 {
			return nil
		}
		routes := make([]string, 0, len(keys))
		for _, k := range keys {
			raw, _ := c.store.GetString(c.group, k.key)
			route, err := ParseRoute(c, raw, family)
			if err != nil {
				if c.aborted() {
					return c.vetoed
				}
				continue
			}
			optKey := k.key + "_options"
			if optsRaw, ok := c.store.GetString(c.group, optKey); ok {
				route.Attributes = DecodeRouteAttrs(optsRaw)
			}
			entry := FormatRoute(route)
			if len(route.Attributes) > 0 {
				entry += routeAttrSep + EncodeRouteAttrs(route.Attributes)
			}
			routes = append(routes, entry)
		}
		prop.Value = routes
		return nil
	}
}

// routeDataWriter emits "route<N>" plus a paired "route<N>_options" key
// whenever the entry carries attributes.
func routeDataWriter(c *ctx, st profile.Setting, prop *profile.Property) error {
	routes, ok := prop.Value.([]string)
	if !ok || len(routes) == 0 {
		return nil
	}
	for i, r := range routes {
		line, opts, _ := strings.Cut(r, routeAttrSep)
		key := "route" + strconv.Itoa(i+1)
		c.store.SetString(c.group, key, line)
		if opts != "" {
			c.store.SetString(c.group, key+"_options", opts)
		}
	}
	return nil
}

// readAddrGenMode validates ipv6's addr-gen-mode against its closed enum.
func readAddrGenMode(c *ctx, st profile.Setting, prop *profile.Property) error {
	raw, ok := c.store.GetString(c.group, prop.Descriptor.Name)
	if !ok {
		return nil
	}
	mode, err := DecodeAddrGenMode(c, raw)
	if err != nil {
		return err
	}
	prop.Value = mode
	return nil
}
