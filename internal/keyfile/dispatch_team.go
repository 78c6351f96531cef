// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package keyfile

import (
	"encoding/json"

	"grimm.is/connprofile/internal/profile"
)

// readTeamConfig validates the "config" passthrough string as JSON without
// reformatting it; invalid JSON is discarded back to the empty default.
func readTeamConfig(c *ctx, st profile.Setting, prop *profile.Property) error {
	raw, ok := c.store.GetString(c.group, prop.Descriptor.Name)
	if !ok || raw == "" {
		return nil
	}
	if !json.Valid([]byte(raw)) {
		return c.warn(Warn, "team config is not valid JSON, discarding")
	}
	prop.Value = raw
	return nil
}
