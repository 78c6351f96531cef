// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package keyfile

import (
	"path/filepath"

	"grimm.is/connprofile/internal/inistore"
	"grimm.is/connprofile/internal/profile"
)

// Options configures a top-level Read or Write call.
type Options struct {
	// KeyfileName, if non-empty, is used to synthesize "id" and "uuid" when
	// absent, and to default BaseDir.
	KeyfileName string
	// BaseDir resolves relative certificate/pac-file paths. Defaults to the
	// directory of KeyfileName if absolute, else the current directory.
	BaseDir string
	// Handler receives every warning raised during the call. A nil Handler
	// accepts every warning (never vetoes).
	Handler Handler
	// SecretPolicy governs whether a non-VPN secret property is written.
	// A nil SecretPolicy means no such secret is ever written.
	SecretPolicy func(setting, property string) bool
}

func (o Options) resolveBaseDir() string {
	if o.BaseDir != "" {
		return o.BaseDir
	}
	if o.KeyfileName != "" && filepath.IsAbs(o.KeyfileName) {
		return filepath.Dir(o.KeyfileName)
	}
	return "."
}

// Read is the component-G read entry point: INI store -> Connection. The
// returned connection is explicitly not verified -- that is the caller's
// responsibility.
func Read(store *inistore.Store, opts Options) (*profile.Connection, error) {
	conn := profile.NewConnection()
	c := newCtx(store, conn, opts.Handler, opts.resolveBaseDir())
	c.secretPolicy = opts.SecretPolicy
	catalog := profile.NewCatalog()

	groupCanonical := make(map[string]string)
	var deferredSecrets string
	for _, group := range store.Groups() {
		if group == vpnSecretsGroup {
			deferredSecrets = group
			continue
		}
		c.group = group
		canonical, ok := catalog.CanonicalName(group)
		if !ok {
			if err := c.warn(Warn, "unknown setting group %q, skipping", group); err != nil {
				return nil, err
			}
			continue
		}
		groupCanonical[canonical] = group

		st, err := catalog.New(canonical)
		if err != nil {
			if werr := c.warn(Warn, "cannot construct setting %q, skipping", canonical); werr != nil {
				return nil, werr
			}
			continue
		}
		c.group = group
		c.setting = canonical
		if err := readSetting(c, st); err != nil {
			return nil, err
		}
		conn.Add(st)
	}

	if !conn.Has("connection") {
		st, _ := catalog.New("connection")
		conn.Add(st)
	}
	connSetting, _ := conn.Get("connection")

	if idProp, ok := connSetting.Get("id"); ok {
		if id, _ := idProp.Value.(string); id == "" && opts.KeyfileName != "" {
			idProp.Value = filepath.Base(opts.KeyfileName)
		}
	}
	if uuidProp, ok := connSetting.Get("uuid"); ok {
		if id, _ := uuidProp.Value.(string); id == "" && opts.KeyfileName != "" {
			uuidProp.Value = deriveUUID(opts.KeyfileName)
		}
	}
	if ifaceProp, ok := connSetting.Get("interface-name"); ok {
		if name, _ := ifaceProp.Value.(string); name == "" {
			if typeProp, ok := connSetting.Get("type"); ok {
				if typ, _ := typeProp.Value.(string); typ != "" {
					if group, ok := groupCanonical[typ]; ok {
						if legacy, ok := store.GetString(group, "interface-name"); ok {
							ifaceProp.Value = legacy
						}
					}
				}
			}
		}
	}

	if deferredSecrets != "" {
		if vpn, ok := conn.Get("vpn"); ok {
			if v, ok := vpn.(*profile.VPNSetting); ok {
				for _, key := range store.Keys(deferredSecrets) {
					val, _ := store.GetString(deferredSecrets, key)
					v.Secrets[key] = val
				}
			}
		}
	}

	return conn, nil
}

// Write is the component-G write entry point: Connection -> INI store. The
// caller-supplied verify function runs first and, on error, the write is
// refused entirely.
func Write(conn *profile.Connection, verify func(*profile.Connection) error, opts Options) (*inistore.Store, error) {
	if verify != nil {
		if err := verify(conn); err != nil {
			return nil, err
		}
	}

	store := inistore.New()
	c := newCtx(store, conn, opts.Handler, opts.resolveBaseDir())
	c.secretPolicy = opts.SecretPolicy

	for _, st := range conn.Settings() {
		c.group = st.Name()
		c.setting = st.Name()
		if err := writeSetting(c, st); err != nil {
			return nil, err
		}
	}
	return store, nil
}
