package prop

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/nomagicln/propverify/pkg/verifier"
)

// IsReplay reports whether v replays recorded inputs rather than exploring.
func IsReplay(v verifier.Verifier) bool {
	return v.IsReplay()
}

// Format renders a bound value for replay output. Ordered sets and maps are
// listed through their Scan method; anything else uses its default format.
func Format(x any) string {
	if x == nil {
		return "<nil>"
	}
	if s, ok := x.(fmt.Stringer); ok {
		return s.String()
	}
	if out, ok := scan(reflect.ValueOf(x)); ok {
		return out
	}
	return fmt.Sprintf("%v", x)
}

// scan lists containers with a Scan(func(K) bool) or Scan(func(K, V) bool)
// method.
func scan(rv reflect.Value) (string, bool) {
	m := rv.MethodByName("Scan")
	if !m.IsValid() || m.Type().NumIn() != 1 || m.Type().NumOut() != 0 {
		return "", false
	}
	iter := m.Type().In(0)
	if iter.Kind() != reflect.Func || iter.NumOut() != 1 || iter.Out(0).Kind() != reflect.Bool {
		return "", false
	}
	var parts []string
	switch iter.NumIn() {
	case 1:
		m.Call([]reflect.Value{reflect.MakeFunc(iter, func(args []reflect.Value) []reflect.Value {
			parts = append(parts, fmt.Sprint(args[0].Interface()))
			return []reflect.Value{reflect.ValueOf(true)}
		})})
	case 2:
		m.Call([]reflect.Value{reflect.MakeFunc(iter, func(args []reflect.Value) []reflect.Value {
			parts = append(parts, fmt.Sprintf("%v: %v", args[0].Interface(), args[1].Interface()))
			return []reflect.Value{reflect.ValueOf(true)}
		})})
	default:
		return "", false
	}
	return "{" + strings.Join(parts, ", ") + "}", true
}
