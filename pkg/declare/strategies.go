package declare

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/btree"

	"github.com/nomagicln/propverify/pkg/collection"
	"github.com/nomagicln/propverify/pkg/strategy"
	"github.com/nomagicln/propverify/pkg/verifier"
)

// Values produced by declared strategies:
//
//	just, any, range       the scalar, typed as declared
//	bool                   bool
//	char                   a one-rune string
//	vec, vec_deque,
//	linked_list, array,
//	tuple                  []any in container order
//	btree_set              []any of keys, ascending
//	binary_heap            []any of keys, in pop order (largest first)
//	btree_map              Map
//	option                 strategy.Option[any]
//	result                 strategy.Result[any, any]

// Map is the value of a btree_map strategy.
type Map struct {
	Keys   []any // Ascending.
	Values []any // Values[i] belongs to Keys[i].
}

// Len returns the number of entries.
func (m Map) Len() int { return len(m.Keys) }

// Get returns the value stored under key.
func (m Map) Get(key any) (any, bool) {
	for i, k := range m.Keys {
		if eq, _ := equal(k, key); eq {
			return m.Values[i], true
		}
	}
	return nil, false
}

func (m Map) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range m.Keys {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v: %v", k, m.Values[i])
	}
	b.WriteByte('}')
	return b.String()
}

type numeric interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// keyKind builds the strategies whose shape depends on a scalar type.
type keyKind interface {
	scalar(n *Node) (strategy.Strategy[any], error)
	set(size int, key *Node) (strategy.Strategy[any], error)
	heap(size int, key *Node) (strategy.Strategy[any], error)
	btreeMap(size int, key *Node, value strategy.Strategy[any]) (strategy.Strategy[any], error)
}

type kindOf[T numeric] struct{}

var keyKinds = map[ScalarType]keyKind{
	"i8": kindOf[int8]{}, "i16": kindOf[int16]{}, "i32": kindOf[int32]{}, "i64": kindOf[int64]{}, "int": kindOf[int]{},
	"u8": kindOf[uint8]{}, "u16": kindOf[uint16]{}, "u32": kindOf[uint32]{}, "u64": kindOf[uint64]{}, "uint": kindOf[uint]{},
	"f32": kindOf[float32]{}, "f64": kindOf[float64]{},
}

func (kindOf[T]) typed(n *Node) (strategy.Strategy[T], error) {
	bound := func(text *string) T {
		var zero T
		if text == nil {
			return zero
		}
		x, _ := parseScalar(n.Type, *text)
		return x.(T)
	}

	switch n.Kind {
	case "any":
		return strategy.Any[T](), nil
	case "just":
		return strategy.Just(bound(&n.Value)), nil
	case "range":
		start, end := bound(n.Start), bound(n.End)
		switch {
		case n.Start != nil && n.End != nil && n.Inclusive:
			return strategy.RangeInclusive(start, end), nil
		case n.Start != nil && n.End != nil:
			return strategy.Range(start, end), nil
		case n.Start != nil:
			return strategy.RangeFrom(start), nil
		case n.Inclusive:
			return strategy.RangeToInclusive(end), nil
		default:
			return strategy.RangeTo(end), nil
		}
	}
	return nil, fmt.Errorf("line %d: %s is not a scalar strategy", n.Line, n.Kind)
}

func (k kindOf[T]) scalar(n *Node) (strategy.Strategy[any], error) {
	s, err := k.typed(n)
	if err != nil {
		return nil, err
	}
	return strategy.Map[T, any](s, func(x T) any { return x }), nil
}

func (k kindOf[T]) set(size int, key *Node) (strategy.Strategy[any], error) {
	s, err := k.typed(key)
	if err != nil {
		return nil, err
	}
	return strategy.Map[*btree.Set[T], any](collection.BTreeSet(size, s), func(set *btree.Set[T]) any {
		return anySlice(collection.SetKeys(set))
	}), nil
}

func (k kindOf[T]) heap(size int, key *Node) (strategy.Strategy[any], error) {
	s, err := k.typed(key)
	if err != nil {
		return nil, err
	}
	return strategy.Map[*collection.Heap[T], any](collection.BinaryHeap(size, s), func(h *collection.Heap[T]) any {
		return anySlice(h.Sorted())
	}), nil
}

func (k kindOf[T]) btreeMap(size int, key *Node, value strategy.Strategy[any]) (strategy.Strategy[any], error) {
	s, err := k.typed(key)
	if err != nil {
		return nil, err
	}
	return strategy.Map[*btree.Map[T, any], any](collection.BTreeMap(size, s, value), func(m *btree.Map[T, any]) any {
		keys, values := collection.MapEntries(m)
		return Map{Keys: anySlice(keys), Values: values}
	}), nil
}

func anySlice[T any](xs []T) []any {
	out := make([]any, len(xs))
	for i, x := range xs {
		out[i] = x
	}
	return out
}

func scalarKind(n *Node) (keyKind, error) {
	if k, ok := keyKinds[n.Type]; ok {
		return k, nil
	}
	return nil, fmt.Errorf("line %d: unknown scalar type %q", n.Line, n.Type)
}

// keyKindOf returns the builder for a node producing ordered keys.
func keyKindOf(n *Node) (keyKind, error) {
	switch n.Kind {
	case "just", "any", "range":
		return scalarKind(n)
	}
	return nil, fmt.Errorf("line %d: ordered keys must come from just, any or range, not %s", n.Line, n.Kind)
}

// compileNode turns a strategy tree into a strategy producing untyped values.
func compileNode(n *Node) (strategy.Strategy[any], error) {
	if n == nil {
		return nil, errors.New("missing strategy")
	}

	switch n.Kind {
	case "just":
		if n.Type == "" {
			return strategy.Just(n.untyped), nil
		}
		fallthrough
	case "any", "range":
		k, err := scalarKind(n)
		if err != nil {
			return nil, err
		}
		return k.scalar(n)
	case "bool":
		return strategy.Map[bool, any](strategy.Bool(), func(b bool) any { return b }), nil
	case "char":
		return strategy.Map[rune, any](strategy.Char(), func(r rune) any { return string(r) }), nil

	case "vec", "vec_deque", "linked_list", "array":
		elem, err := compileNode(n.Element)
		if err != nil {
			return nil, err
		}
		switch n.Kind {
		case "vec":
			return strategy.Map[[]any, any](collection.Vec(n.Size, elem), func(xs []any) any { return xs }), nil
		case "vec_deque":
			return strategy.Map[*collection.Deque[any], any](collection.VecDeque(n.Size, elem), func(d *collection.Deque[any]) any {
				return d.Values()
			}), nil
		case "linked_list":
			return strategy.Map[*collection.List[any], any](collection.LinkedList(n.Size, elem), func(l *collection.List[any]) any {
				return l.Values()
			}), nil
		default:
			return strategy.Map[[]any, any](strategy.UniformN(elem, n.Size), func(xs []any) any { return xs }), nil
		}

	case "btree_set", "binary_heap":
		k, err := keyKindOf(n.Element)
		if err != nil {
			return nil, err
		}
		if n.Kind == "btree_set" {
			return k.set(n.Size, n.Element)
		}
		return k.heap(n.Size, n.Element)

	case "btree_map":
		k, err := keyKindOf(n.Key)
		if err != nil {
			return nil, err
		}
		value, err := compileNode(n.Val)
		if err != nil {
			return nil, err
		}
		return k.btreeMap(n.Size, n.Key, value)

	case "union", "one_of", "tuple":
		items := make([]strategy.Strategy[any], len(n.Items))
		for i, item := range n.Items {
			s, err := compileNode(item)
			if err != nil {
				return nil, err
			}
			items[i] = s
		}
		switch n.Kind {
		case "union":
			return strategy.Union(items[0], items[1]), nil
		case "one_of":
			return strategy.OneOf(items...), nil
		default:
			return tuple(items), nil
		}

	case "option":
		inner, err := compileNode(n.Inner)
		if err != nil {
			return nil, err
		}
		return strategy.Map[strategy.Option[any], any](strategy.Of(inner), func(o strategy.Option[any]) any { return o }), nil

	case "result":
		ok, err := compileNode(n.Ok)
		if err != nil {
			return nil, err
		}
		bad, err := compileNode(n.Err)
		if err != nil {
			return nil, err
		}
		return strategy.Map[strategy.Result[any, any], any](strategy.ResultOf(ok, bad), func(r strategy.Result[any, any]) any { return r }), nil

	case "filter":
		inner, err := compileNode(n.Inner)
		if err != nil {
			return nil, err
		}
		where, err := compileExpr(n.Where, []string{"it"})
		if err != nil {
			return nil, fmt.Errorf("line %d: filter: %w", n.Line, err)
		}
		return filter(inner, where), nil
	}
	return nil, fmt.Errorf("line %d: unknown strategy %q", n.Line, n.Kind)
}

// tuple draws each item left to right.
func tuple(items []strategy.Strategy[any]) strategy.Strategy[any] {
	return strategy.Func[any](func(v verifier.Verifier) (any, error) {
		out := make([]any, len(items))
		for i, s := range items {
			x, err := s.Value(v)
			if err != nil {
				return nil, err
			}
			out[i] = x
		}
		return out, nil
	})
}

// filter assumes the where expression holds for each value. An expression
// that cannot be evaluated rejects the path, as any generation fault does.
func filter(inner strategy.Strategy[any], where *expression) strategy.Strategy[any] {
	return strategy.Func[any](func(v verifier.Verifier) (any, error) {
		x, err := inner.Value(v)
		if err != nil {
			return nil, err
		}
		ok, err := where.test(&env{v: generating{v}, values: map[string]any{"it": x}})
		if err != nil {
			if verifier.IsPruned(err) {
				return nil, err
			}
			return nil, v.Reject()
		}
		if err := v.Assume(ok); err != nil {
			return nil, err
		}
		return x, nil
	})
}

// generating turns failures reported while values are still being generated
// into rejections.
type generating struct {
	verifier.Verifier
}

func (g generating) ReportError(string) error { return g.Reject() }
