package enums

import (
	"strconv"
	"strings"
)

// Integer is the set of underlying kinds an enumeration type may use.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Enum is implemented by generated enumeration types. EnumDescriptor is called
// on the zero value and must not depend on the receiver.
type Enum interface {
	Integer
	EnumDescriptor() *Descriptor
}

// Parse resolves raw against the descriptor of T.
func Parse[T Enum](raw string) (T, bool) {
	var zero T
	bits, ok := zero.EnumDescriptor().resolve(raw)
	if !ok {
		return zero, false
	}
	return T(bits), true
}

// ParsePtr is Parse returning nil when nothing matched.
func ParsePtr[T Enum](raw string) *T {
	value, ok := Parse[T](raw)
	if !ok {
		return nil
	}
	return &value
}

// ParseWith resolves raw against d. A nil descriptor never matches.
func ParseWith(d *Descriptor, raw string) (Value, bool) {
	return d.Parse(raw)
}

// Parse resolves raw into a Value carrying this descriptor.
func (d *Descriptor) Parse(raw string) (Value, bool) {
	bits, ok := d.resolve(raw)
	if !ok {
		return Value{}, false
	}
	return Value{descriptor: d, bits: bits}, true
}

// resolve splits raw on commas and resolves each token independently.
// Unmatched tokens are skipped. Flags descriptors OR every match; other
// descriptors keep the last match.
func (d *Descriptor) resolve(raw string) (int64, bool) {
	if d == nil || raw == "" {
		return 0, false
	}

	var (
		result  int64
		matched bool
	)
	for _, token := range strings.Split(raw, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		value, ok := d.resolveToken(token)
		if !ok {
			continue
		}
		if d.flags {
			result |= value
		} else {
			result = value
		}
		matched = true
	}
	return result, matched
}

func (d *Descriptor) resolveToken(token string) (int64, bool) {
	if n, err := strconv.ParseInt(token, 10, 64); err == nil {
		if idx, ok := d.byValue[n]; ok {
			return d.members[idx].Value, true
		}
	}
	if idx, ok := d.byName[token]; ok {
		return d.members[idx].Value, true
	}
	if idx, ok := d.byAlias[token]; ok {
		return d.members[idx].Value, true
	}
	return 0, false
}
