package enums

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDescriptor is wrapped by every descriptor construction failure.
var ErrInvalidDescriptor = errors.New("enums: invalid descriptor")

// Member declares one enumeration member.
type Member struct {
	// Name is the canonical member name.
	Name string `json:"name" yaml:"name"`
	// Value is the underlying integer. For flags descriptors each member is
	// expected to occupy its own bit (or be zero).
	Value int64 `json:"value" yaml:"value"`
	// Aliases lists alternate wire names accepted for the member.
	Aliases []string `json:"aliases,omitempty" yaml:"aliases,omitempty"`
}

// Descriptor is an immutable, validated enumeration table.
type Descriptor struct {
	name    string
	flags   bool
	members []Member
	byName  map[string]int
	byAlias map[string]int
	byValue map[int64]int
}

// DescriptorOption configures descriptor construction.
type DescriptorOption func(*descriptorOptions)

type descriptorOptions struct {
	flags bool
}

// AsFlags marks the descriptor as a bit-flag enumeration.
func AsFlags() DescriptorOption {
	return func(opts *descriptorOptions) {
		opts.flags = true
	}
}

// WithFlags toggles bit-flag semantics explicitly.
func WithFlags(enabled bool) DescriptorOption {
	return func(opts *descriptorOptions) {
		opts.flags = enabled
	}
}

// NewDescriptor validates members and builds the lookup tables.
func NewDescriptor(name string, members []Member, options ...DescriptorOption) (*Descriptor, error) {
	opts := descriptorOptions{}
	for _, opt := range options {
		if opt != nil {
			opt(&opts)
		}
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidDescriptor)
	}

	d := &Descriptor{
		name:    name,
		flags:   opts.flags,
		members: make([]Member, 0, len(members)),
		byName:  make(map[string]int, len(members)),
		byAlias: make(map[string]int),
		byValue: make(map[int64]int, len(members)),
	}

	for idx, member := range members {
		if member.Name == "" {
			return nil, fmt.Errorf("%w: %s member[%d] has no name", ErrInvalidDescriptor, name, idx)
		}
		if prev, exists := d.byName[member.Name]; exists {
			return nil, fmt.Errorf("%w: %s member %q declared twice (index %d and %d)", ErrInvalidDescriptor, name, member.Name, prev, idx)
		}
		if prev, exists := d.byValue[member.Value]; exists {
			return nil, fmt.Errorf("%w: %s members %q and %q share value %d", ErrInvalidDescriptor, name, d.members[prev].Name, member.Name, member.Value)
		}
		d.byName[member.Name] = idx
		d.byValue[member.Value] = idx
		d.members = append(d.members, Member{
			Name:  member.Name,
			Value: member.Value,
		})
	}

	// Aliases are checked once every canonical name is known.
	for idx, member := range members {
		aliases := make([]string, 0, len(member.Aliases))
		for _, alias := range member.Aliases {
			if alias == "" {
				return nil, fmt.Errorf("%w: %s member %q has an empty alias", ErrInvalidDescriptor, name, member.Name)
			}
			if alias == member.Name {
				continue
			}
			if owner, exists := d.byName[alias]; exists {
				return nil, fmt.Errorf("%w: %s alias %q of %q collides with member %q", ErrInvalidDescriptor, name, alias, member.Name, d.members[owner].Name)
			}
			if owner, exists := d.byAlias[alias]; exists {
				if owner == idx {
					continue
				}
				return nil, fmt.Errorf("%w: %s alias %q declared by %q and %q", ErrInvalidDescriptor, name, alias, d.members[owner].Name, member.Name)
			}
			d.byAlias[alias] = idx
			aliases = append(aliases, alias)
		}
		if len(aliases) > 0 {
			d.members[idx].Aliases = aliases
		}
	}

	return d, nil
}

// MustNewDescriptor panics when the descriptor is invalid. Intended for
// package-level declarations in generated code.
func MustNewDescriptor(name string, members []Member, options ...DescriptorOption) *Descriptor {
	d, err := NewDescriptor(name, members, options...)
	if err != nil {
		panic(err)
	}
	return d
}

// Name returns the enumeration name.
func (d *Descriptor) Name() string {
	if d == nil {
		return ""
	}
	return d.name
}

// IsFlags reports whether members combine as bit flags.
func (d *Descriptor) IsFlags() bool {
	return d != nil && d.flags
}

// Members returns a copy of the members in declaration order.
func (d *Descriptor) Members() []Member {
	if d == nil {
		return nil
	}
	out := make([]Member, len(d.members))
	for i, member := range d.members {
		out[i] = Member{
			Name:    member.Name,
			Value:   member.Value,
			Aliases: append([]string(nil), member.Aliases...),
		}
	}
	return out
}

// Len returns the number of members.
func (d *Descriptor) Len() int {
	if d == nil {
		return 0
	}
	return len(d.members)
}

// MemberByValue returns the member holding value.
func (d *Descriptor) MemberByValue(value int64) (Member, bool) {
	if d == nil {
		return Member{}, false
	}
	idx, ok := d.byValue[value]
	if !ok {
		return Member{}, false
	}
	return d.members[idx], true
}

// MemberByName returns the member whose canonical name or alias equals name.
func (d *Descriptor) MemberByName(name string) (Member, bool) {
	if d == nil {
		return Member{}, false
	}
	if idx, ok := d.byName[name]; ok {
		return d.members[idx], true
	}
	if idx, ok := d.byAlias[name]; ok {
		return d.members[idx], true
	}
	return Member{}, false
}

// wireName is the preferred serialized form of a member.
func (m Member) wireName() string {
	if len(m.Aliases) > 0 {
		return m.Aliases[0]
	}
	return m.Name
}
