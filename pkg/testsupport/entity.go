package testsupport

import (
	"time"

	"github.com/goliatone/go-clientruntime/pkg/enums"
	"github.com/goliatone/go-clientruntime/pkg/serialization"
)

// StatusDescriptor backs Status. Members serialize in lower case.
var StatusDescriptor = enums.MustNewDescriptor("Status", []enums.Member{
	{Name: "Active", Value: 0, Aliases: []string{"active"}},
	{Name: "Inactive", Value: 1, Aliases: []string{"inactive"}},
	{Name: "Archived", Value: 2, Aliases: []string{"archived"}},
})

// Status is a typed enumeration for Entity.
type Status int

func (Status) EnumDescriptor() *enums.Descriptor { return StatusDescriptor }

// Entity is a small generated-style model covering every accessor kind.
type Entity struct {
	ID         *string
	Name       *string
	Count      *int64
	Score      *float64
	Enabled    *bool
	Status     *Status
	Created    *time.Time
	Tags       []string
	Children   []*Entity
	additional map[string]any
}

// NewEntity is the ParsableFactory for Entity.
func NewEntity(serialization.ParseNode) (serialization.Parsable, error) {
	return &Entity{}, nil
}

func (e *Entity) FieldDeserializers() map[string]serialization.FieldDeserializer {
	return map[string]serialization.FieldDeserializer{
		"id": func(node serialization.ParseNode) error {
			value, err := node.StringValue()
			e.ID = value
			return err
		},
		"name": func(node serialization.ParseNode) error {
			value, err := node.StringValue()
			e.Name = value
			return err
		},
		"count": func(node serialization.ParseNode) error {
			value, err := node.Int64Value()
			e.Count = value
			return err
		},
		"score": func(node serialization.ParseNode) error {
			value, err := node.Float64Value()
			e.Score = value
			return err
		},
		"enabled": func(node serialization.ParseNode) error {
			value, err := node.BoolValue()
			e.Enabled = value
			return err
		},
		"status": func(node serialization.ParseNode) error {
			value, err := serialization.EnumValue[Status](node)
			e.Status = value
			return err
		},
		"created": func(node serialization.ParseNode) error {
			value, err := node.TimeValue()
			e.Created = value
			return err
		},
		"tags": func(node serialization.ParseNode) error {
			value, err := node.CollectionOfStringValues()
			e.Tags = value
			return err
		},
		"children": func(node serialization.ParseNode) error {
			values, err := serialization.CastCollection[*Entity](node.CollectionOfObjectValues(NewEntity))
			e.Children = values
			return err
		},
	}
}

func (e *Entity) AdditionalData() map[string]any { return e.additional }

func (e *Entity) SetAdditionalData(data map[string]any) { e.additional = data }
