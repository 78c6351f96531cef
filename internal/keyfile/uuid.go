// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package keyfile

import "github.com/google/uuid"

// keyfileUUIDNamespace roots the stable UUID-from-strings derivation used to
// synthesize a connection's "uuid" property when absent (component G).
var keyfileUUIDNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("keyfile"))

// deriveUUID hashes the pair ("keyfile", name) into a stable, deterministic
// UUID so the same keyfile name always reproduces the same identity.
func deriveUUID(name string) string {
	return uuid.NewSHA1(keyfileUUIDNamespace, []byte(name)).String()
}
