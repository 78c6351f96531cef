// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package profile implements the settings catalog and connection model the
// keyfile codec reads into and writes out of. Each setting kind is a
// concrete Go type with an explicit, package-level property list -- there
// is no runtime reflection anywhere in this package. The codec
// (internal/keyfile) is the only package that knows how a property's
// declared Kind maps to an on-disk encoding.
package profile

// Kind is the declared type of a property value.
type Kind int8

const (
	KindString Kind = iota
	KindInt32
	KindUint32
	KindInt64
	KindUint64
	KindBool
	KindChar // signed char, range [-128, 127]
	KindBytes
	KindStringList
	KindStringMap
	KindUint32Array
	KindEnum
	KindFlags
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt32:
		return "int32"
	case KindUint32:
		return "uint32"
	case KindInt64:
		return "int64"
	case KindUint64:
		return "uint64"
	case KindBool:
		return "bool"
	case KindChar:
		return "char"
	case KindBytes:
		return "bytes"
	case KindStringList:
		return "string_list"
	case KindStringMap:
		return "string_map"
	case KindUint32Array:
		return "uint32_array"
	case KindEnum:
		return "enum"
	case KindFlags:
		return "flags"
	default:
		return "unknown"
	}
}
