// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package export renders a decoded connection profile as HCL, for embedders
// that want a human-editable, commentable view alongside the canonical
// keyfile text. Rendering is one-directional: this package never reads HCL
// back into a Connection, the keyfile format remains the sole source of
// truth.
package export

import (
	"io"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	cerrors "grimm.is/connprofile/internal/errors"
	"grimm.is/connprofile/internal/keyfile"
	"grimm.is/connprofile/internal/profile"
)

// RenderHCL renders one hclwrite block per setting, one attribute per
// non-default property, in the setting's declared property order.
func RenderHCL(c *profile.Connection) (*hclwrite.File, error) {
	f := hclwrite.NewEmptyFile()
	body := f.Body()

	for _, st := range c.Settings() {
		block := body.AppendNewBlock("setting", []string{st.Name()})
		blockBody := block.Body()

		for _, prop := range st.Properties() {
			if prop.IsDefault() {
				continue
			}
			ctyVal, err := toCtyValue(prop.Value)
			if err != nil {
				return nil, cerrors.Wrapf(err, cerrors.KindValidation, "setting %q property %q", st.Name(), prop.Descriptor.Name)
			}
			blockBody.SetAttributeValue(prop.Descriptor.Name, ctyVal)
		}
		body.AppendNewline()
	}

	return f, nil
}

// WriteHCL renders c and writes the resulting HCL source to w.
func WriteHCL(w io.Writer, c *profile.Connection) error {
	f, err := RenderHCL(c)
	if err != nil {
		return err
	}
	_, err = w.Write(f.Bytes())
	return err
}

// toCtyValue converts a property's dynamic Go value into the cty.Value the
// HCL writer needs, mirroring the conversions a decoded connection's
// property kinds can actually hold.
func toCtyValue(v any) (cty.Value, error) {
	switch val := v.(type) {
	case bool:
		return cty.BoolVal(val), nil
	case string:
		return cty.StringVal(val), nil
	case int8:
		return cty.NumberIntVal(int64(val)), nil
	case int32:
		return cty.NumberIntVal(int64(val)), nil
	case int64:
		return cty.NumberIntVal(val), nil
	case uint32:
		return cty.NumberUIntVal(uint64(val)), nil
	case uint64:
		return cty.NumberUIntVal(val), nil
	case []byte:
		if len(val) == 0 {
			return cty.ListValEmpty(cty.Number), nil
		}
		vals := make([]cty.Value, len(val))
		for i, b := range val {
			vals[i] = cty.NumberUIntVal(uint64(b))
		}
		return cty.ListVal(vals), nil
	case []string:
		if len(val) == 0 {
			return cty.ListValEmpty(cty.String), nil
		}
		vals := make([]cty.Value, len(val))
		for i, s := range val {
			vals[i] = cty.StringVal(s)
		}
		return cty.ListVal(vals), nil
	case []uint32:
		if len(val) == 0 {
			return cty.ListValEmpty(cty.Number), nil
		}
		vals := make([]cty.Value, len(val))
		for i, n := range val {
			vals[i] = cty.NumberUIntVal(uint64(n))
		}
		return cty.ListVal(vals), nil
	case map[string]string:
		if len(val) == 0 {
			return cty.MapValEmpty(cty.String), nil
		}
		vals := make(map[string]cty.Value, len(val))
		for k, s := range val {
			vals[k] = cty.StringVal(s)
		}
		return cty.MapVal(vals), nil
	case profile.SerialParity:
		return cty.NumberIntVal(int64(val)), nil
	case *keyfile.Cert:
		if val == nil {
			return cty.StringVal(""), nil
		}
		return cty.StringVal(string(keyfile.EncodeCert(val))), nil
	default:
		return cty.NilVal, cerrors.Errorf(cerrors.KindValidation, "unsupported value type %T", v)
	}
}
