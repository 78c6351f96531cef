// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package profile

// PropertyDescriptor describes a property's declared shape: its name,
// declared type, default value, and flags. It never changes after a
// Setting is constructed -- only Property.Value does.
type PropertyDescriptor struct {
	Name     string
	Type     Kind
	Default  any
	Writable bool
	Secret   bool
}

// Property pairs a descriptor with its current value.
type Property struct {
	Descriptor PropertyDescriptor
	Value      any
}

// IsDefault reports whether Value equals the descriptor's Default.
func (p *Property) IsDefault() bool {
	return valuesEqual(p.Value, p.Descriptor.Default)
}

func valuesEqual(a, b any) bool {
	switch av := a.(type) {
	case []string:
		bv, ok := b.([]string)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if av[i] != bv[i] {
				return false
			}
		}
		return true
	case []byte:
		bv, ok := b.([]byte)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if av[i] != bv[i] {
				return false
			}
		}
		return true
	case []uint32:
		bv, ok := b.([]uint32)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if av[i] != bv[i] {
				return false
			}
		}
		return true
	case map[string]string:
		bv, ok := b.(map[string]string)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			if bv[k] != v {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}
