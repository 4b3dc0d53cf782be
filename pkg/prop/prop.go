// Package prop binds generated values to names and checks properties over
// them.
//
// A property runs in two phases. The harness draws every value it needs from
// strategies through Draw; a panic there means the drawn input is not worth
// checking, so the path is rejected. The body then checks assertions over the
// bound values; a panic there is a failure like any false assertion.
//
//	p := prop.New("sum_commutes", func(g *prop.Gen) prop.Body {
//		a := prop.Draw(g, "a", strategy.RangeInclusive[int32](math.MinInt32/2, math.MaxInt32/2))
//		b := prop.Draw(g, "b", strategy.RangeInclusive[int32](math.MinInt32/2, math.MaxInt32/2))
//		return func(t *prop.T) {
//			prop.Equal(t, a+b, b+a)
//		}
//	})
package prop

import (
	"fmt"
	"io"
	"os"

	"github.com/nomagicln/propverify/pkg/strategy"
	"github.com/nomagicln/propverify/pkg/verifier"
)

// Body checks assertions over values bound by a harness.
type Body func(t *T)

// Harness draws the values of one path and returns the body checking them.
type Harness func(g *Gen) Body

// Property is a named harness. It can be explored, replayed or run directly
// against any verifier.
type Property struct {
	name    string
	harness Harness
}

// New creates a property.
func New(name string, harness Harness) *Property {
	return &Property{name: name, harness: harness}
}

// Name returns the property name.
func (p *Property) Name() string { return p.name }

// Run executes the property once, printing bound values to stdout on replay.
func (p *Property) Run(v verifier.Verifier) error {
	return Execute(v, p, os.Stdout)
}

// Binding is a named value drawn by a harness.
type Binding struct {
	Name  string
	Value any
}

// Gen is the generation phase of one path.
type Gen struct {
	v        verifier.Verifier
	err      error
	bindings []Binding
}

// Verifier returns the verifier values are drawn from.
func (g *Gen) Verifier() verifier.Verifier { return g.v }

// Bindings returns the values drawn so far, in draw order.
func (g *Gen) Bindings() []Binding { return g.bindings }

// Err returns the error that ended generation, if any.
func (g *Gen) Err() error { return g.err }

// Draw evaluates s once and binds the result to name. Once a draw has ended the
// path, later draws return zero values without touching the verifier.
func Draw[V any](g *Gen, name string, s strategy.Strategy[V]) V {
	var zero V
	if g.err != nil {
		return zero
	}
	x, err := s.Value(g.v)
	if err != nil {
		g.err = err
		return zero
	}
	g.bindings = append(g.bindings, Binding{Name: name, Value: x})
	return x
}

// Execute runs both phases of p against v. On replay each bound value is
// written to out before the body runs.
func Execute(v verifier.Verifier, p *Property, out io.Writer) error {
	g := &Gen{v: v}
	body, err := generate(g, p.harness)
	if err != nil {
		return err
	}
	if v.IsReplay() && out != nil {
		for _, b := range g.bindings {
			fmt.Fprintf(out, "  Value %s = %s\n", b.Name, Format(b.Value))
		}
	}
	if body == nil {
		return nil
	}
	return check(v, body)
}

type pruner interface {
	Prune(reason verifier.PruneReason, detail string) error
}

func generate(g *Gen, h Harness) (body Body, err error) {
	defer func() {
		if r := recover(); r != nil {
			body = nil
			if pr, ok := g.v.(pruner); ok {
				err = pr.Prune(verifier.PruneFault, fmt.Sprint(r))
				return
			}
			err = g.v.Reject()
		}
	}()
	body = h(g)
	if g.err != nil {
		return nil, g.err
	}
	return body, nil
}

func check(v verifier.Verifier, body Body) (err error) {
	t := &T{v: v}
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(abort); ok {
				err = t.err
				return
			}
			err = v.ReportError(fmt.Sprint(r))
		}
	}()
	body(t)
	return t.err
}
