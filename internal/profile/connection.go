// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package profile

// Connection is an ordered collection of Settings keyed by setting name.
// The connection owns its settings; it never cross-references them -- any
// relationship between settings (e.g. "type" naming another group) is the
// codec's concern, not this package's.
type Connection struct {
	order    []string
	settings map[string]Setting
}

// NewConnection returns an empty Connection.
func NewConnection() *Connection {
	return &Connection{settings: make(map[string]Setting)}
}

// Add adds a setting to the connection, replacing any existing setting of
// the same name while preserving its original position.
func (c *Connection) Add(s Setting) {
	name := s.Name()
	if _, ok := c.settings[name]; !ok {
		c.order = append(c.order, name)
	}
	c.settings[name] = s
}

// Get returns the setting with the given canonical name, if present.
func (c *Connection) Get(name string) (Setting, bool) {
	s, ok := c.settings[name]
	return s, ok
}

// Settings returns every setting in insertion order.
func (c *Connection) Settings() []Setting {
	out := make([]Setting, len(c.order))
	for i, name := range c.order {
		out[i] = c.settings[name]
	}
	return out
}

// Has reports whether a setting of the given name exists.
func (c *Connection) Has(name string) bool {
	_, ok := c.settings[name]
	return ok
}
