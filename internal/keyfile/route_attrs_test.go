// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package keyfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeRouteAttrs_ValidEntriesOfEveryKind(t *testing.T) {
	attrs := DecodeRouteAttrs("table=254,src=10.0.0.1,onlink=true,type=unicast")
	assert.Equal(t, RouteAttrValue{Kind: AttrUint32, U32: 254}, attrs["table"])
	assert.Equal(t, RouteAttrValue{Kind: AttrIPAddress, Str: "10.0.0.1"}, attrs["src"])
	assert.Equal(t, RouteAttrValue{Kind: AttrBool, Bool: true}, attrs["onlink"])
	assert.Equal(t, RouteAttrValue{Kind: AttrString, Str: "unicast"}, attrs["type"])
}

func TestDecodeRouteAttrs_UnknownKeySilentlyDropped(t *testing.T) {
	attrs := DecodeRouteAttrs("table=254,bogus=xyz")
	assert.Len(t, attrs, 1)
	_, ok := attrs["bogus"]
	assert.False(t, ok)
}

func TestDecodeRouteAttrs_InvalidValueForKnownKeySilentlyDropped(t *testing.T) {
	attrs := DecodeRouteAttrs("table=notanumber,onlink=true")
	assert.Len(t, attrs, 1)
	_, ok := attrs["table"]
	assert.False(t, ok)
	assert.Equal(t, RouteAttrValue{Kind: AttrBool, Bool: true}, attrs["onlink"])
}

func TestDecodeRouteAttrs_MalformedEntryWithoutEqualsDropped(t *testing.T) {
	attrs := DecodeRouteAttrs("table=254,justaname")
	assert.Len(t, attrs, 1)
}

func TestDecodeRouteAttrs_EmptyStringIsNil(t *testing.T) {
	assert.Nil(t, DecodeRouteAttrs(""))
	assert.Nil(t, DecodeRouteAttrs("   "))
}

func TestEncodeRouteAttrs_SortedByNameForDeterminism(t *testing.T) {
	attrs := RouteAttrs{
		"type":   RouteAttrValue{Kind: AttrString, Str: "unicast"},
		"onlink": RouteAttrValue{Kind: AttrBool, Bool: true},
		"table":  RouteAttrValue{Kind: AttrUint32, U32: 254},
	}
	assert.Equal(t, "onlink=true,table=254,type=unicast", EncodeRouteAttrs(attrs))
}

func TestEncodeRouteAttrs_EmptyIsEmptyString(t *testing.T) {
	assert.Equal(t, "", EncodeRouteAttrs(nil))
	assert.Equal(t, "", EncodeRouteAttrs(RouteAttrs{}))
}

func TestRouteAttrs_RoundTrip(t *testing.T) {
	original := "onlink=true,table=254,type=unicast"
	attrs := DecodeRouteAttrs(original)
	assert.Equal(t, original, EncodeRouteAttrs(attrs))
}
