package main

import "github.com/goliatone/go-clientruntime/pkg/serialization"

// record is a schemaless model: every field lands in its additional data.
type record struct {
	data map[string]any
}

func newRecord(serialization.ParseNode) (serialization.Parsable, error) {
	return &record{}, nil
}

func (r *record) FieldDeserializers() map[string]serialization.FieldDeserializer {
	return nil
}

func (r *record) AdditionalData() map[string]any {
	return r.data
}

func (r *record) SetAdditionalData(data map[string]any) {
	r.data = data
}

func recordData(values []serialization.Parsable) []any {
	out := make([]any, 0, len(values))
	for _, value := range values {
		rec, ok := value.(*record)
		if !ok || rec == nil {
			out = append(out, nil)
			continue
		}
		if rec.data == nil {
			out = append(out, map[string]any{})
			continue
		}
		out = append(out, rec.data)
	}
	return out
}
