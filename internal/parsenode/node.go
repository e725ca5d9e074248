// Package parsenode implements serialization.ParseNode over decoded value
// trees. Every bundled format decodes its payload into plain Go values and
// hands the tree to New.
package parsenode

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/ohler55/ojg/jp"

	"github.com/goliatone/go-clientruntime/pkg/enums"
	"github.com/goliatone/go-clientruntime/pkg/serialization"
)

// ErrUnexpectedKind reports a value whose shape does not fit the accessor.
var ErrUnexpectedKind = errors.New("parsenode: unexpected value kind")

// Option configures node behavior.
type Option func(*options)

type options struct {
	coerceStrings bool
	timeLayouts   []string
}

// WithStringCoercion lets scalar accessors parse string values, for formats
// that carry everything as text.
func WithStringCoercion() Option {
	return func(o *options) {
		o.coerceStrings = true
	}
}

// WithTimeLayouts replaces the layouts tried by TimeValue.
func WithTimeLayouts(layouts ...string) Option {
	return func(o *options) {
		if len(layouts) > 0 {
			o.timeLayouts = append([]string(nil), layouts...)
		}
	}
}

var defaultTimeLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

// Node wraps one position in a decoded tree.
type Node struct {
	value any
	path  string
	opts  *options
}

var _ serialization.ParseNode = (*Node)(nil)

// New wraps value, normalizing it first.
func New(value any, opts ...Option) *Node {
	cfg := &options{timeLayouts: defaultTimeLayouts}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return &Node{value: Normalize(value), path: "$", opts: cfg}
}

func (n *Node) child(value any, path string) *Node {
	return &Node{value: value, path: path, opts: n.opts}
}

// Path returns the JSONPath-style location of the node.
func (n *Node) Path() string {
	return n.path
}

// ChildNode returns the named member of an object node, or nil when the
// member is missing or the node is not an object.
func (n *Node) ChildNode(name string) (serialization.ParseNode, error) {
	object, ok := n.value.(map[string]any)
	if !ok {
		return nil, nil
	}
	value, ok := object[name]
	if !ok {
		return nil, nil
	}
	return n.child(value, n.path+"."+name), nil
}

func (n *Node) StringValue() (*string, error) {
	switch v := n.value.(type) {
	case nil:
		return nil, nil
	case string:
		return &v, nil
	case int64, uint64, float64, bool:
		if n.opts.coerceStrings {
			s := fmt.Sprint(v)
			return &s, nil
		}
	}
	return nil, n.kindError("string")
}

func (n *Node) BoolValue() (*bool, error) {
	switch v := n.value.(type) {
	case nil:
		return nil, nil
	case bool:
		return &v, nil
	case string:
		if n.opts.coerceStrings {
			parsed, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				return nil, fmt.Errorf("parsenode: %s: %w", n.path, err)
			}
			return &parsed, nil
		}
	}
	return nil, n.kindError("bool")
}

func (n *Node) Int64Value() (*int64, error) {
	switch v := n.value.(type) {
	case nil:
		return nil, nil
	case int64:
		return &v, nil
	case float64:
		if v == math.Trunc(v) && v >= math.MinInt64 && v < math.MaxInt64 {
			out := int64(v)
			return &out, nil
		}
		return nil, fmt.Errorf("%w: %s: %v is not an integer", ErrUnexpectedKind, n.path, v)
	case uint64:
		return nil, fmt.Errorf("%w: %s: %d overflows int64", ErrUnexpectedKind, n.path, v)
	case string:
		if n.opts.coerceStrings {
			parsed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("parsenode: %s: %w", n.path, err)
			}
			return &parsed, nil
		}
	}
	return nil, n.kindError("integer")
}

func (n *Node) Float64Value() (*float64, error) {
	switch v := n.value.(type) {
	case nil:
		return nil, nil
	case float64:
		return &v, nil
	case int64:
		out := float64(v)
		return &out, nil
	case uint64:
		out := float64(v)
		return &out, nil
	case string:
		if n.opts.coerceStrings {
			parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				return nil, fmt.Errorf("parsenode: %s: %w", n.path, err)
			}
			return &parsed, nil
		}
	}
	return nil, n.kindError("number")
}

// TimeValue accepts decoded times and strings in any configured layout.
func (n *Node) TimeValue() (*time.Time, error) {
	switch v := n.value.(type) {
	case nil:
		return nil, nil
	case time.Time:
		return &v, nil
	case string:
		trimmed := strings.TrimSpace(v)
		for _, layout := range n.opts.timeLayouts {
			if parsed, err := time.Parse(layout, trimmed); err == nil {
				return &parsed, nil
			}
		}
		return nil, fmt.Errorf("%w: %s: %q is not a recognized time", ErrUnexpectedKind, n.path, v)
	}
	return nil, n.kindError("time")
}

// EnumValue resolves string or numeric values through descriptor. Unknown
// tokens are absent, not errors.
func (n *Node) EnumValue(descriptor *enums.Descriptor) (*enums.Value, error) {
	var raw string
	switch v := n.value.(type) {
	case nil:
		return nil, nil
	case string:
		raw = v
	case int64:
		raw = strconv.FormatInt(v, 10)
	case uint64:
		raw = strconv.FormatUint(v, 10)
	case float64:
		raw = strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return nil, n.kindError("enum")
	}
	value, ok := descriptor.Parse(raw)
	if !ok {
		return nil, nil
	}
	return &value, nil
}

func (n *Node) CollectionOfStringValues() ([]string, error) {
	items, err := n.items()
	if err != nil || items == nil {
		return nil, err
	}
	out := make([]string, 0, len(items))
	for i, item := range items {
		value, err := n.child(item, n.indexPath(i)).StringValue()
		if err != nil {
			return nil, err
		}
		if value != nil {
			out = append(out, *value)
		}
	}
	return out, nil
}

// ObjectValue builds a model with factory and feeds it every member of the
// object. Members without a deserializer go to AdditionalDataHolder models.
func (n *Node) ObjectValue(factory serialization.ParsableFactory) (serialization.Parsable, error) {
	if factory == nil {
		return nil, &serialization.ArgumentError{Name: "factory", Reason: "is required"}
	}
	if n.value == nil {
		return nil, nil
	}
	object, ok := n.value.(map[string]any)
	if !ok {
		return nil, n.kindError("object")
	}

	model, err := factory(n)
	if err != nil {
		return nil, err
	}
	if model == nil {
		return nil, fmt.Errorf("parsenode: %s: factory returned no model", n.path)
	}

	fields := model.FieldDeserializers()
	holder, _ := model.(serialization.AdditionalDataHolder)
	var additional map[string]any
	if holder != nil {
		additional = holder.AdditionalData()
	}

	for _, key := range sortedKeys(object) {
		value := object[key]
		if deserialize, ok := fields[key]; ok && deserialize != nil {
			if err := deserialize(n.child(value, n.path+"."+key)); err != nil {
				return nil, fmt.Errorf("parsenode: %s.%s: %w", n.path, key, err)
			}
			continue
		}
		if holder != nil {
			if additional == nil {
				additional = make(map[string]any)
			}
			additional[key] = value
		}
	}
	if holder != nil && additional != nil {
		holder.SetAdditionalData(additional)
	}
	return model, nil
}

// CollectionOfObjectValues builds one model per array element, preserving
// order. Null elements are kept as nil entries.
func (n *Node) CollectionOfObjectValues(factory serialization.ParsableFactory) ([]serialization.Parsable, error) {
	if factory == nil {
		return nil, &serialization.ArgumentError{Name: "factory", Reason: "is required"}
	}
	items, err := n.items()
	if err != nil || items == nil {
		return nil, err
	}
	out := make([]serialization.Parsable, 0, len(items))
	for i, item := range items {
		model, err := n.child(item, n.indexPath(i)).ObjectValue(factory)
		if err != nil {
			return nil, err
		}
		out = append(out, model)
	}
	return out, nil
}

// RawValue exposes the normalized underlying value.
func (n *Node) RawValue() (any, error) {
	return n.value, nil
}

// Select evaluates a JSONPath expression against the node. A single match is
// returned as is, several matches as an array node, no match as nil.
func (n *Node) Select(expr string) (*Node, error) {
	x, err := jp.ParseString(expr)
	if err != nil {
		return nil, fmt.Errorf("parsenode: invalid jsonpath %q: %w", expr, err)
	}
	results := x.Get(n.value)
	switch len(results) {
	case 0:
		return nil, nil
	case 1:
		return n.child(results[0], expr), nil
	default:
		return n.child(results, expr), nil
	}
}

func (n *Node) items() ([]any, error) {
	switch v := n.value.(type) {
	case nil:
		return nil, nil
	case []any:
		return v, nil
	default:
		return nil, n.kindError("array")
	}
}

func (n *Node) indexPath(i int) string {
	return n.path + "[" + strconv.Itoa(i) + "]"
}

func (n *Node) kindError(want string) error {
	return fmt.Errorf("%w: %s: expected %s, got %T", ErrUnexpectedKind, n.path, want, n.value)
}

func sortedKeys(object map[string]any) []string {
	keys := make([]string, 0, len(object))
	for key := range object {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
