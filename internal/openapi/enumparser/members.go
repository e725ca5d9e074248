package enumparser

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-clientruntime/pkg/enums"
)

const (
	msEnumKey     = "x-ms-enum"
	msEnumFlagKey = "x-ms-enum-flags"
	varNamesKey   = "x-enum-varnames"
)

type msEnum struct {
	Name   string `json:"name"`
	Values []struct {
		Value any    `json:"value"`
		Name  string `json:"name"`
	} `json:"values"`
}

type msEnumFlags struct {
	IsFlags bool `json:"isFlags"`
}

// buildMembers derives members from an enum schema. Canonical names come from
// x-ms-enum, then x-enum-varnames, then the wire value itself. Integer enums
// keep their values, string flag enums get one bit per member and the rest
// use the declaration ordinal. Integer flag enums keep their declared bits.
func buildMembers(schema *openapi3.Schema) ([]enums.Member, bool) {
	flags := isFlags(schema)
	integer := schemaType(schema) == "integer"
	names := declaredNames(schema)

	// Wire values become aliases, so no other member may take one as its
	// canonical name.
	wires := make(map[string]bool, len(schema.Enum))
	if !integer {
		for _, raw := range schema.Enum {
			if raw != nil {
				wires[wireString(raw)] = true
			}
		}
	}

	members := make([]enums.Member, 0, len(schema.Enum))
	taken := make(map[string]bool, len(schema.Enum))
	ordinal := int64(0)

	for _, raw := range schema.Enum {
		if raw == nil {
			continue
		}
		wire := wireString(raw)

		var value int64
		switch {
		case integer:
			n, ok := integerValue(raw)
			if !ok {
				continue
			}
			value = n
		case flags:
			if ordinal >= 62 {
				continue
			}
			value = int64(1) << ordinal
		default:
			value = ordinal
		}

		name := names[wire]
		if name == "" {
			name = identifier(wire)
		}
		name = uniqueName(name, wire, taken, wires)
		taken[name] = true

		member := enums.Member{Name: name, Value: value}
		if wire != name && !integer {
			member.Aliases = []string{wire}
		}
		members = append(members, member)
		ordinal++
	}
	return members, flags
}

// uniqueName appends the smallest numeric suffix (from 2) that keeps base
// clear of names already taken and of other members' wire values.
func uniqueName(base, wire string, taken, wires map[string]bool) string {
	free := func(candidate string) bool {
		return !taken[candidate] && (candidate == wire || !wires[candidate])
	}
	if free(base) {
		return base
	}
	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s%d", base, i)
		if free(candidate) {
			return candidate
		}
	}
}

func declaredNames(schema *openapi3.Schema) map[string]string {
	names := make(map[string]string, len(schema.Enum))
	if ext, ok := msEnumExtension(schema); ok {
		for _, entry := range ext.Values {
			if entry.Name != "" && entry.Value != nil {
				names[wireString(entry.Value)] = entry.Name
			}
		}
		if len(names) > 0 {
			return names
		}
	}
	var varNames []string
	if decodeExtension(schema.Extensions, varNamesKey, &varNames) {
		for i, raw := range schema.Enum {
			if i < len(varNames) && raw != nil && varNames[i] != "" {
				names[wireString(raw)] = varNames[i]
			}
		}
	}
	return names
}

func msEnumExtension(schema *openapi3.Schema) (msEnum, bool) {
	var ext msEnum
	ok := decodeExtension(schema.Extensions, msEnumKey, &ext)
	return ext, ok
}

func isFlags(schema *openapi3.Schema) bool {
	var ext msEnumFlags
	return decodeExtension(schema.Extensions, msEnumFlagKey, &ext) && ext.IsFlags
}

// decodeExtension re-encodes an extension value into out. kin-openapi keeps
// extension payloads as generic JSON values.
func decodeExtension(extensions map[string]any, key string, out any) bool {
	raw, ok := extensions[key]
	if !ok || raw == nil {
		return false
	}
	var data []byte
	switch v := raw.(type) {
	case json.RawMessage:
		data = v
	case []byte:
		data = v
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return false
		}
		data = encoded
	}
	return json.Unmarshal(data, out) == nil
}

func schemaType(schema *openapi3.Schema) string {
	if schema.Type == nil {
		return ""
	}
	values := schema.Type.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func wireString(raw any) string {
	switch v := raw.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

func integerValue(raw any) (int64, bool) {
	switch v := raw.(type) {
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}
		return int64(v), true
	case int:
		return int64(v), true
	case int64:
		return v, true
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		return n, err == nil
	default:
		return 0, false
	}
}

// identifier turns a wire value into a member name: separators split words,
// each word is capitalized, and a leading digit gets a "Value" prefix.
func identifier(wire string) string {
	var b strings.Builder
	upper := true
	for _, r := range wire {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			upper = true
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}
	out := b.String()
	if out == "" {
		return "Empty"
	}
	if unicode.IsDigit(rune(out[0])) {
		return "Value" + out
	}
	return out
}
