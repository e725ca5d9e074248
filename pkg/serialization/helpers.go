package serialization

import (
	"fmt"
	"io"
)

// Model constrains P to a pointer to E that implements Parsable, so a default
// factory can allocate it with new(E).
type Model[E any] interface {
	*E
	Parsable
}

// FactoryFor returns the default factory of a generated model. Models that
// implement Discriminated decide their concrete type from the node.
func FactoryFor[E any, P Model[E]]() ParsableFactory {
	return func(node ParseNode) (Parsable, error) {
		model := P(new(E))
		if discriminated, ok := any(model).(Discriminated); ok {
			return discriminated.CreateFromDiscriminatorValue(node)
		}
		return model, nil
	}
}

// Cast asserts the result of a Deserializer call to T.
func Cast[T Parsable](value Parsable, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	if value == nil {
		return zero, nil
	}
	typed, ok := value.(T)
	if !ok {
		return zero, fmt.Errorf("%w: got %T, want %T", ErrTypeMismatch, value, zero)
	}
	return typed, nil
}

// CastCollection asserts every element of a collection result to T.
func CastCollection[T Parsable](values []Parsable, err error) ([]T, error) {
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(values))
	for idx, value := range values {
		typed, err := Cast[T](value, nil)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", idx, err)
		}
		out = append(out, typed)
	}
	return out, nil
}

// Deserialize parses one T from content with the default Deserializer.
func Deserialize[T Parsable](contentType string, content io.Reader, factory ParsableFactory) (T, error) {
	return Cast[T](defaultDeserializer.Deserialize(contentType, content, factory))
}

// DeserializeString parses one T from a string payload.
func DeserializeString[T Parsable](contentType, content string, factory ParsableFactory) (T, error) {
	return Cast[T](defaultDeserializer.DeserializeString(contentType, content, factory))
}

// DeserializeCollection parses a collection of T from content.
func DeserializeCollection[T Parsable](contentType string, content io.Reader, factory ParsableFactory) ([]T, error) {
	return CastCollection[T](defaultDeserializer.DeserializeCollection(contentType, content, factory))
}

// DeserializeCollectionString parses a collection of T from a string payload.
func DeserializeCollectionString[T Parsable](contentType, content string, factory ParsableFactory) ([]T, error) {
	return CastCollection[T](defaultDeserializer.DeserializeCollectionString(contentType, content, factory))
}

// DeserializeModel is Deserialize with the model's default factory.
func DeserializeModel[E any, P Model[E]](contentType string, content io.Reader) (P, error) {
	return Deserialize[P](contentType, content, FactoryFor[E, P]())
}

// DeserializeModelString is DeserializeString with the model's default factory.
func DeserializeModelString[E any, P Model[E]](contentType, content string) (P, error) {
	return DeserializeString[P](contentType, content, FactoryFor[E, P]())
}

// DeserializeModelCollection is DeserializeCollection with the model's default
// factory.
func DeserializeModelCollection[E any, P Model[E]](contentType string, content io.Reader) ([]P, error) {
	return DeserializeCollection[P](contentType, content, FactoryFor[E, P]())
}

// DeserializeModelCollectionString is DeserializeCollectionString with the
// model's default factory.
func DeserializeModelCollectionString[E any, P Model[E]](contentType, content string) ([]P, error) {
	return DeserializeCollectionString[P](contentType, content, FactoryFor[E, P]())
}
