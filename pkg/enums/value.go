package enums

import "strings"

// Value is an enumeration value resolved through a descriptor supplied at the
// call site. The zero Value has no descriptor and formats as "".
type Value struct {
	descriptor *Descriptor
	bits       int64
}

// NewValue binds bits to d without resolution.
func NewValue(d *Descriptor, bits int64) Value {
	return Value{descriptor: d, bits: bits}
}

// Descriptor returns the descriptor the value was resolved against.
func (v Value) Descriptor() *Descriptor {
	return v.descriptor
}

// Int64 returns the underlying integer (the OR of members for flags).
func (v Value) Int64() int64 {
	return v.bits
}

// Has reports whether the named member is part of the value. For non-flags
// descriptors this is plain equality.
func (v Value) Has(name string) bool {
	member, ok := v.descriptor.MemberByName(name)
	if !ok {
		return false
	}
	if !v.descriptor.IsFlags() {
		return member.Value == v.bits
	}
	if member.Value == 0 {
		return v.bits == 0
	}
	return v.bits&member.Value == member.Value
}

// Names returns the canonical names of the members making up the value.
func (v Value) Names() []string {
	members, ok := v.descriptor.decompose(v.bits)
	if !ok {
		return nil
	}
	names := make([]string, len(members))
	for i, member := range members {
		names[i] = member.Name
	}
	return names
}

// String returns the wire form, or "" when the value is not representable.
func (v Value) String() string {
	out, _ := v.descriptor.Format(v.bits)
	return out
}

// Format renders bits in wire form. Members serialize under their first alias
// when one is declared; flags join member names with commas in declaration
// order.
func (d *Descriptor) Format(bits int64) (string, bool) {
	members, ok := d.decompose(bits)
	if !ok {
		return "", false
	}
	names := make([]string, len(members))
	for i, member := range members {
		names[i] = member.wireName()
	}
	return strings.Join(names, ","), true
}

// Format renders v using the descriptor of T.
func Format[T Enum](v T) (string, bool) {
	var zero T
	return zero.EnumDescriptor().Format(int64(v))
}

func (d *Descriptor) decompose(bits int64) ([]Member, bool) {
	if d == nil {
		return nil, false
	}
	if idx, ok := d.byValue[bits]; ok {
		return []Member{d.members[idx]}, true
	}
	if !d.flags || bits == 0 {
		return nil, false
	}

	var (
		out       []Member
		remaining = bits
	)
	for _, member := range d.members {
		if member.Value == 0 {
			continue
		}
		if bits&member.Value == member.Value {
			out = append(out, member)
			remaining &^= member.Value
		}
	}
	if remaining != 0 || len(out) == 0 {
		return nil, false
	}
	return out, true
}
