package declare

import (
	"fmt"
	"slices"

	"github.com/nomagicln/propverify/pkg/prop"
	"github.com/nomagicln/propverify/pkg/strategy"
)

type boundStrategy struct {
	name     string
	strategy strategy.Strategy[any]
}

func compileProperty(def *PropertyDef) (*Declared, error) {
	if !def.Expect.Valid() {
		return nil, fmt.Errorf("unknown expectation %q, expected verified, failed or overflow", def.Expect)
	}

	names := make([]string, 0, len(def.Bind))
	binds := make([]boundStrategy, 0, len(def.Bind))
	for _, b := range def.Bind {
		switch {
		case !identifier.MatchString(b.Name):
			return nil, fmt.Errorf("bind: %q is not a valid name", b.Name)
		case b.Name == "true" || b.Name == "false" || b.Name == "it":
			return nil, fmt.Errorf("bind: %q is reserved", b.Name)
		case slices.Contains(names, b.Name):
			return nil, fmt.Errorf("bind: %q is bound twice", b.Name)
		}
		s, err := compileNode(b.Strategy)
		if err != nil {
			return nil, fmt.Errorf("bind %s: %w", b.Name, err)
		}
		names = append(names, b.Name)
		binds = append(binds, boundStrategy{name: b.Name, strategy: s})
	}

	assumes, err := compileAll("assume", def.Assume, names)
	if err != nil {
		return nil, err
	}
	asserts, err := compileAll("assert", def.Assert, names)
	if err != nil {
		return nil, err
	}

	p := prop.New(def.Name, func(g *prop.Gen) prop.Body {
		values := make(map[string]any, len(binds))
		for _, b := range binds {
			values[b.name] = prop.Draw(g, b.name, b.strategy)
		}
		return func(t *prop.T) {
			e := &env{v: t.Verifier(), values: values}
			for _, a := range assumes {
				ok, err := a.test(e)
				t.Check(err)
				t.Assume(ok)
			}
			for _, a := range asserts {
				ok, err := a.test(e)
				t.Check(err)
				t.Assertf(ok, "assertion failed: %s", a.source)
			}
		}
	})
	return &Declared{Property: p, Expect: def.Expect}, nil
}

func compileAll(field string, sources, names []string) ([]*expression, error) {
	out := make([]*expression, 0, len(sources))
	for i, src := range sources {
		x, err := compileExpr(src, names)
		if err != nil {
			return nil, fmt.Errorf("%s %d: %w", field, i+1, err)
		}
		out = append(out, x)
	}
	return out, nil
}
