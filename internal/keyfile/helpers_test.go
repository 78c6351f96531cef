// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package keyfile

import (
	"grimm.is/connprofile/internal/inistore"
	"grimm.is/connprofile/internal/profile"
)

// newTestCtx builds a ctx suitable for exercising grammar functions
// directly, outside a full Read/Write call. handler may be nil to accept
// every warning.
func newTestCtx(handler Handler, baseDir string) *ctx {
	return newCtx(inistore.New(), profile.NewConnection(), handler, baseDir)
}

// collectWarnings wraps handler logic to record every warning message
// raised while running fn, without vetoing any of them.
func collectWarnings(fn func(c *ctx)) []string {
	var messages []string
	c := newTestCtx(func(w Warning, _ *profile.Connection, _ *inistore.Store) bool {
		messages = append(messages, w.Message)
		return true
	}, ".")
	fn(c)
	return messages
}
