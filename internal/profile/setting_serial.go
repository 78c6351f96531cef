// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package profile

// SerialParity is the closed enum a serial setting's "parity" property
// takes after decoding -- see internal/keyfile's scalar parity codec.
type SerialParity int8

const (
	ParityNone SerialParity = iota
	ParityEven
	ParityOdd
)

// SerialSetting is the "serial" setting.
type SerialSetting struct{ *baseSetting }

func newSerialSetting() Setting {
	return &SerialSetting{newBaseSetting("serial", []PropertyDescriptor{
		{Name: "baud", Type: KindUint32, Default: uint32(57600), Writable: true},
		{Name: "bits", Type: KindUint32, Default: uint32(8), Writable: true},
		{Name: "parity", Type: KindEnum, Default: ParityNone, Writable: true},
		{Name: "stopbits", Type: KindUint32, Default: uint32(1), Writable: true},
		{Name: "send-delay", Type: KindUint64, Default: uint64(0), Writable: true},
	})}
}
