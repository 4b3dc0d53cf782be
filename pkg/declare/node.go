package declare

import (
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ScalarType names a numeric type in a property file.
type ScalarType string

var scalarTypes = map[ScalarType]reflect.Kind{
	"i8": reflect.Int8, "i16": reflect.Int16, "i32": reflect.Int32, "i64": reflect.Int64, "int": reflect.Int,
	"u8": reflect.Uint8, "u16": reflect.Uint16, "u32": reflect.Uint32, "u64": reflect.Uint64, "uint": reflect.Uint,
	"f32": reflect.Float32, "f64": reflect.Float64,
}

// Valid reports whether t is a known scalar type.
func (t ScalarType) Valid() bool {
	_, ok := scalarTypes[t]
	return ok
}

// Node is one strategy in a property file. In YAML it is a mapping with a
// single key naming the kind, or one of the plain words bool, char or a
// scalar type, the last meaning any value of that type.
type Node struct {
	Kind string
	Line int

	Type      ScalarType // just, any, range
	Value     string     // just: raw scalar text
	Start     *string    // range
	End       *string    // range
	Inclusive bool       // range

	Size    int   // collections, array
	Element *Node // vec, vec_deque, linked_list, btree_set, binary_heap, array
	Key     *Node // btree_map
	Val     *Node // btree_map
	Ok      *Node // result
	Err     *Node // result
	Inner   *Node // option, filter
	Items   []*Node
	Where   string // filter

	untyped any // just without a type
}

var nodeKinds = []string{
	"just", "any", "bool", "char", "range",
	"vec", "vec_deque", "linked_list", "btree_set", "btree_map", "binary_heap",
	"union", "one_of", "option", "result", "tuple", "array", "filter",
}

func nodeErrorf(n *yaml.Node, format string, args ...any) error {
	return fmt.Errorf("line %d: %s", n.Line, fmt.Sprintf(format, args...))
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (n *Node) UnmarshalYAML(value *yaml.Node) error {
	n.Line = value.Line
	switch value.Kind {
	case yaml.ScalarNode:
		word := value.Value
		switch {
		case word == "bool" || word == "char":
			n.Kind = word
		case ScalarType(word).Valid():
			n.Kind = "any"
			n.Type = ScalarType(word)
		default:
			return nodeErrorf(value, "unknown strategy %q", word)
		}
		return nil
	case yaml.MappingNode:
	default:
		return nodeErrorf(value, "a strategy must be a mapping with one key")
	}

	if len(value.Content) != 2 {
		return nodeErrorf(value, "a strategy must have exactly one key, one of %s", strings.Join(nodeKinds, ", "))
	}
	key, body := value.Content[0], value.Content[1]
	n.Kind = key.Value

	switch n.Kind {
	case "just":
		return n.decodeJust(body)
	case "any":
		var t ScalarType
		if err := body.Decode(&t); err != nil {
			return err
		}
		n.Type = t
		return n.checkType(body)
	case "bool", "char":
		return nil
	case "range":
		return n.decodeRange(body)
	case "vec", "vec_deque", "linked_list", "btree_set", "binary_heap", "array":
		var raw struct {
			Size    int   `yaml:"size"`
			Element *Node `yaml:"element"`
		}
		if err := decodeStrict(body, &raw, "size", "element"); err != nil {
			return err
		}
		if raw.Element == nil {
			return nodeErrorf(body, "%s needs an element strategy", n.Kind)
		}
		n.Size, n.Element = raw.Size, raw.Element
	case "btree_map":
		var raw struct {
			Size  int   `yaml:"size"`
			Key   *Node `yaml:"key"`
			Value *Node `yaml:"value"`
		}
		if err := decodeStrict(body, &raw, "size", "key", "value"); err != nil {
			return err
		}
		if raw.Key == nil || raw.Value == nil {
			return nodeErrorf(body, "btree_map needs key and value strategies")
		}
		n.Size, n.Key, n.Val = raw.Size, raw.Key, raw.Value
	case "union", "one_of", "tuple":
		if err := body.Decode(&n.Items); err != nil {
			return err
		}
		if n.Kind == "union" && len(n.Items) != 2 {
			return nodeErrorf(body, "union takes exactly 2 strategies, got %d", len(n.Items))
		}
		if n.Kind == "tuple" && len(n.Items) == 0 {
			return nodeErrorf(body, "tuple needs at least one strategy")
		}
	case "option":
		n.Inner = &Node{}
		return body.Decode(n.Inner)
	case "result":
		var raw struct {
			Ok  *Node `yaml:"ok"`
			Err *Node `yaml:"err"`
		}
		if err := decodeStrict(body, &raw, "ok", "err"); err != nil {
			return err
		}
		if raw.Ok == nil || raw.Err == nil {
			return nodeErrorf(body, "result needs ok and err strategies")
		}
		n.Ok, n.Err = raw.Ok, raw.Err
	case "filter":
		var raw struct {
			Strategy *Node  `yaml:"strategy"`
			Where    string `yaml:"where"`
		}
		if err := decodeStrict(body, &raw, "strategy", "where"); err != nil {
			return err
		}
		if raw.Strategy == nil || raw.Where == "" {
			return nodeErrorf(body, "filter needs a strategy and a where expression")
		}
		n.Inner, n.Where = raw.Strategy, raw.Where
	default:
		return nodeErrorf(key, "unknown strategy %q", n.Kind)
	}
	return nil
}

func (n *Node) checkType(at *yaml.Node) error {
	if !n.Type.Valid() {
		return nodeErrorf(at, "unknown scalar type %q", n.Type)
	}
	return nil
}

func (n *Node) decodeJust(body *yaml.Node) error {
	if body.Kind == yaml.ScalarNode {
		return body.Decode(&n.untyped)
	}
	var raw struct {
		Type  ScalarType `yaml:"type"`
		Value yaml.Node  `yaml:"value"`
	}
	if err := decodeStrict(body, &raw, "type", "value"); err != nil {
		return err
	}
	if raw.Value.Kind != yaml.ScalarNode {
		return nodeErrorf(body, "just needs a scalar value")
	}
	if raw.Type == "" {
		return raw.Value.Decode(&n.untyped)
	}
	n.Type, n.Value = raw.Type, raw.Value.Value
	if err := n.checkType(body); err != nil {
		return err
	}
	if _, err := parseScalar(n.Type, n.Value); err != nil {
		return nodeErrorf(body, "%v", err)
	}
	return nil
}

func (n *Node) decodeRange(body *yaml.Node) error {
	var raw struct {
		Type      ScalarType `yaml:"type"`
		Start     yaml.Node  `yaml:"start"`
		End       yaml.Node  `yaml:"end"`
		Inclusive bool       `yaml:"inclusive"`
	}
	if err := decodeStrict(body, &raw, "type", "start", "end", "inclusive"); err != nil {
		return err
	}
	n.Type, n.Inclusive = raw.Type, raw.Inclusive
	if err := n.checkType(body); err != nil {
		return err
	}
	hasStart, hasEnd := raw.Start.Kind != 0, raw.End.Kind != 0
	switch {
	case !hasStart && !hasEnd:
		return nodeErrorf(body, "range needs a start, an end or both")
	case raw.Inclusive && !hasEnd:
		return nodeErrorf(body, "an inclusive range needs an end")
	}
	for _, b := range []struct {
		src *yaml.Node
		dst **string
	}{{&raw.Start, &n.Start}, {&raw.End, &n.End}} {
		if b.src.Kind == 0 {
			continue
		}
		if _, err := parseScalar(n.Type, b.src.Value); err != nil {
			return nodeErrorf(b.src, "%v", err)
		}
		text := b.src.Value
		*b.dst = &text
	}
	return nil
}

// decodeStrict decodes a mapping, rejecting keys outside allowed.
func decodeStrict(body *yaml.Node, out any, allowed ...string) error {
	if body.Kind != yaml.MappingNode {
		return nodeErrorf(body, "expected a mapping with keys %s", strings.Join(allowed, ", "))
	}
	for i := 0; i < len(body.Content); i += 2 {
		if k := body.Content[i]; !slices.Contains(allowed, k.Value) {
			return nodeErrorf(k, "unknown field %q, expected one of %s", k.Value, strings.Join(allowed, ", "))
		}
	}
	return body.Decode(out)
}

// parseScalar parses text as a value of t.
func parseScalar(t ScalarType, text string) (any, error) {
	kind, ok := scalarTypes[t]
	if !ok {
		return nil, fmt.Errorf("unknown scalar type %q", t)
	}
	rt := kindType(kind)
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(text, 0, rt.Bits())
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q", t, text)
		}
		return reflect.ValueOf(i).Convert(rt).Interface(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(text, 0, rt.Bits())
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q", t, text)
		}
		return reflect.ValueOf(u).Convert(rt).Interface(), nil
	default:
		f, err := strconv.ParseFloat(text, rt.Bits())
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q", t, text)
		}
		return reflect.ValueOf(f).Convert(rt).Interface(), nil
	}
}

func kindType(k reflect.Kind) reflect.Type {
	switch k {
	case reflect.Int8:
		return reflect.TypeOf(int8(0))
	case reflect.Int16:
		return reflect.TypeOf(int16(0))
	case reflect.Int32:
		return reflect.TypeOf(int32(0))
	case reflect.Int64:
		return reflect.TypeOf(int64(0))
	case reflect.Int:
		return reflect.TypeOf(0)
	case reflect.Uint8:
		return reflect.TypeOf(uint8(0))
	case reflect.Uint16:
		return reflect.TypeOf(uint16(0))
	case reflect.Uint32:
		return reflect.TypeOf(uint32(0))
	case reflect.Uint64:
		return reflect.TypeOf(uint64(0))
	case reflect.Uint:
		return reflect.TypeOf(uint(0))
	case reflect.Float32:
		return reflect.TypeOf(float32(0))
	default:
		return reflect.TypeOf(float64(0))
	}
}
