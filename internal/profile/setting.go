// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package profile

// Setting is a named bag of typed properties. Each setting kind
// (setting_*.go) is a distinct Go type built on top of baseSetting, with
// its property list declared as a package-level slice literal -- never
// derived through reflection.
type Setting interface {
	// Name returns the canonical setting name, e.g. "ipv4".
	Name() string
	// Properties returns the setting's properties in stable declared order.
	Properties() []*Property
	// Get looks up a property by name.
	Get(name string) (*Property, bool)
}

// baseSetting is the common implementation shared by every setting kind.
type baseSetting struct {
	name  string
	props []*Property
	index map[string]int
}

func newBaseSetting(name string, descriptors []PropertyDescriptor) *baseSetting {
	props := make([]*Property, len(descriptors))
	index := make(map[string]int, len(descriptors))
	for i, d := range descriptors {
		props[i] = &Property{Descriptor: d, Value: d.Default}
		index[d.Name] = i
	}
	return &baseSetting{name: name, props: props, index: index}
}

func (b *baseSetting) Name() string { return b.name }

func (b *baseSetting) Properties() []*Property { return b.props }

func (b *baseSetting) Get(name string) (*Property, bool) {
	i, ok := b.index[name]
	if !ok {
		return nil, false
	}
	return b.props[i], true
}
