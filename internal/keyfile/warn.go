// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package keyfile implements the connection-profile keyfile codec: the
// bidirectional translator between INI-style keyfile text (via
// internal/inistore) and a profile.Connection (via internal/profile).
package keyfile

import (
	"fmt"

	cerrors "grimm.is/connprofile/internal/errors"
	"grimm.is/connprofile/internal/inistore"
	"grimm.is/connprofile/internal/profile"
)

// Severity classifies how lenient an accepted quirk is.
type Severity int8

const (
	// Info marks deprecated-but-accepted syntax, e.g. a trailing separator.
	Info Severity = iota
	// InfoMissingFile marks a referenced path that does not exist on disk
	// but whose value is still accepted.
	InfoMissingFile
	// Warn marks a value that was discarded or replaced with its default.
	Warn
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case InfoMissingFile:
		return "info_missing_file"
	case Warn:
		return "warn"
	default:
		return "unknown"
	}
}

// Warning is the structured record delivered to the embedder's Handler for
// every lenient acceptance or discarded value.
type Warning struct {
	Group    string
	Setting  string
	Property string
	Severity Severity
	Message  string
}

func (w Warning) String() string {
	return fmt.Sprintf("[%s] %s/%s/%s: %s", w.Severity, w.Group, w.Setting, w.Property, w.Message)
}

// Handler receives a warning plus the in-progress connection and store and
// reports whether the operation should continue. Returning false vetoes
// the operation: the caller aborts at the next opportunity.
type Handler func(w Warning, conn *profile.Connection, store *inistore.Store) (cont bool)

// ctx carries the state scoped to one top-level Read or Write call: the
// active group/setting/property (for attaching to warnings), the
// embedder's handler, and the latched veto error. Once vetoed is non-nil
// every subsequent operation must check it and short-circuit.
type ctx struct {
	store   *inistore.Store
	conn    *profile.Connection
	handler Handler
	baseDir string

	// secretPolicy, if set, is consulted for every *secret* property not
	// belonging to the VPN setting; returning true means "write it
	// anyway". A nil secretPolicy means no such secret is ever written.
	secretPolicy func(setting, property string) bool

	group    string
	setting  string
	property string

	vetoed error
}

func newCtx(store *inistore.Store, conn *profile.Connection, handler Handler, baseDir string) *ctx {
	if handler == nil {
		handler = func(Warning, *profile.Connection, *inistore.Store) bool { return true }
	}
	return &ctx{store: store, conn: conn, handler: handler, baseDir: baseDir}
}

// warn raises a warning against the current group/setting/property. If the
// embedder vetoes it, the veto is latched into c.vetoed and returned as an
// error; every caller up the stack must check this return value.
func (c *ctx) warn(sev Severity, format string, args ...any) error {
	if c.vetoed != nil {
		return c.vetoed
	}
	w := Warning{
		Group:    c.group,
		Setting:  c.setting,
		Property: c.property,
		Severity: sev,
		Message:  fmt.Sprintf(format, args...),
	}
	if !c.handler(w, c.conn, c.store) {
		c.vetoed = cerrors.Errorf(cerrors.KindWarningVetoed, "warning vetoed: %s", w)
		return c.vetoed
	}
	return nil
}

// aborted reports whether a prior warning has already latched a veto.
func (c *ctx) aborted() bool {
	return c.vetoed != nil
}
