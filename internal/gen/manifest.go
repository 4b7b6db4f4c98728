package gen

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Manifest is the list of primitive types the shared library exports
// operations for. It is the single source of truth for the generated
// sources: the C header, the cgo exports and the Go harness shims.
type Manifest struct {
	Types []TypeSpec `yaml:"types"`
}

// TypeSpec describes one primitive type across the three languages involved:
// the symbol suffix used in exported names, the C type spelled in the header
// and the Go type used by the harness shims.
type TypeSpec struct {
	Suffix string `yaml:"suffix"`
	CType  string `yaml:"ctype"`
	GoType string `yaml:"gotype"`
}

// goTypes is the closed set of Go types the harness shims can convert
// through. It matches the fixture.Scalar constraint.
var goTypes = map[string]bool{
	"uint8":   true,
	"uint16":  true,
	"uint32":  true,
	"uint64":  true,
	"int8":    true,
	"int16":   true,
	"int32":   true,
	"int64":   true,
	"float32": true,
	"float64": true,
}

// StructName returns the C tuple struct name, e.g. "u8_tuple".
func (t TypeSpec) StructName() string { return t.Suffix + "_tuple" }

// SwapSymbol returns the exported swap symbol, e.g. "swap_u8_tuple".
func (t TypeSpec) SwapSymbol() string { return "swap_" + t.Suffix + "_tuple" }

// SubSymbol returns the exported subtraction symbol, e.g. "sub_u8".
func (t TypeSpec) SubSymbol() string { return "sub_" + t.Suffix }

// CgoType returns the cgo spelling of the C type, e.g. "C.uint8_t".
func (t TypeSpec) CgoType() string { return "C." + t.CType }

// SwapShim returns the Go harness shim name for the swap, e.g. "SwapU8".
func (t TypeSpec) SwapShim() string { return "Swap" + strings.ToUpper(t.Suffix) }

// SubShim returns the Go harness shim name for the subtraction, e.g. "SubU8".
func (t TypeSpec) SubShim() string { return "Sub" + strings.ToUpper(t.Suffix) }

// Load reads and validates a manifest from a YAML file. Unknown keys are
// rejected so typos in the manifest surface as errors instead of silently
// dropping a type.
func Load(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("invalid manifest %s: %w", path, err)
	}
	return &m, nil
}

// Validate checks that the manifest can produce a coherent set of exports.
func (m *Manifest) Validate() error {
	if len(m.Types) == 0 {
		return fmt.Errorf("manifest declares no types")
	}
	seen := make(map[string]bool, len(m.Types))
	for i, t := range m.Types {
		if t.Suffix == "" || t.CType == "" || t.GoType == "" {
			return fmt.Errorf("types[%d]: suffix, ctype and gotype are all required", i)
		}
		if !goTypes[t.GoType] {
			return fmt.Errorf("types[%d] (%s): unsupported gotype %q", i, t.Suffix, t.GoType)
		}
		if seen[t.Suffix] {
			return fmt.Errorf("types[%d]: duplicate suffix %q", i, t.Suffix)
		}
		seen[t.Suffix] = true
	}
	return nil
}
