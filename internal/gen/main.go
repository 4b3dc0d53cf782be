// Command gen writes the fixed-arity strategy families of package strategy:
// tuples of 2 to 12 components and arrays of 0 to 32 elements.
//
// Run it through go generate in pkg/strategy.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

const (
	minTuple = 2
	maxTuple = 12
	maxArray = 32
)

const header = `// Code generated by internal/gen; DO NOT EDIT.

package strategy

import (
	"github.com/nomagicln/propverify/pkg/verifier"
)
`

var tupleTmpl = template.Must(template.New("tuple").Parse(`
// T{{.N}} is a tuple of {{.N}} values.
type T{{.N}}[{{.Params}} any] struct {
{{- range .Fields}}
	V{{.I}} {{.Type}}
{{- end}}
}

// Tuple{{.N}}Strategy produces T{{.N}} values component by component, left to right.
type Tuple{{.N}}Strategy[{{.Params}} any] struct {
{{- range .Fields}}
	s{{.I}} Strategy[{{.Type}}]
{{- end}}
}

// Tuple{{.N}} combines {{.N}} strategies.
func Tuple{{.N}}[{{.Params}} any]({{.Args}}) Tuple{{.N}}Strategy[{{.Params}}] {
	return Tuple{{.N}}Strategy[{{.Params}}]{ {{- .Inits -}} }
}

// Value evaluates the components in order.
func (s Tuple{{.N}}Strategy[{{.Params}}]) Value(v verifier.Verifier) (T{{.N}}[{{.Params}}], error) {
	var r T{{.N}}[{{.Params}}]
	var err error
{{- range .Fields}}
	if r.V{{.I}}, err = s.s{{.I}}.Value(v); err != nil {
		return r, err
	}
{{- end}}
	return r, nil
}
`))

var arrayTmpl = template.Must(template.New("array").Parse(`
// Array{{.N}}Strategy produces [{{.N}}]T from independent draws of one element strategy.
type Array{{.N}}Strategy[T any] struct {
	element Strategy[T]
}

// Uniform{{.N}} draws {{.N}} independent elements.
func Uniform{{.N}}[T any](element Strategy[T]) Array{{.N}}Strategy[T] {
	return Array{{.N}}Strategy[T]{element: element}
}

// Value draws each element in index order.
func (s Array{{.N}}Strategy[T]) Value(v verifier.Verifier) ([{{.N}}]T, error) {
	var r [{{.N}}]T
	for i := range r {
		x, err := s.element.Value(v)
		if err != nil {
			return r, err
		}
		r[i] = x
	}
	return r, nil
}
`))

type field struct {
	I    int
	Type string
}

type tupleData struct {
	N      int
	Params string
	Args   string
	Inits  string
	Fields []field
}

func tuple(n int) tupleData {
	d := tupleData{N: n}
	var params, args, inits []string
	for i := range n {
		typ := string(rune('A' + i))
		params = append(params, typ)
		args = append(args, fmt.Sprintf("s%d Strategy[%s]", i, typ))
		inits = append(inits, fmt.Sprintf("s%d: s%d", i, i))
		d.Fields = append(d.Fields, field{I: i, Type: typ})
	}
	d.Params = strings.Join(params, ", ")
	d.Args = strings.Join(args, ", ")
	d.Inits = strings.Join(inits, ", ")
	return d
}

func render(name string, body func(*bytes.Buffer) error) error {
	var buf bytes.Buffer
	buf.WriteString(header)
	if err := body(&buf); err != nil {
		return err
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("failed to format %s: %w", name, err)
	}
	return os.WriteFile(name, src, 0644)
}

func main() {
	out := flag.String("out", ".", "directory of package strategy")
	flag.Parse()

	err := render(filepath.Join(*out, "tuples_gen.go"), func(buf *bytes.Buffer) error {
		for n := minTuple; n <= maxTuple; n++ {
			if err := tupleTmpl.Execute(buf, tuple(n)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "gen: %v\n", err)
		os.Exit(1)
	}

	err = render(filepath.Join(*out, "arrays_gen.go"), func(buf *bytes.Buffer) error {
		for n := 0; n <= maxArray; n++ {
			if err := arrayTmpl.Execute(buf, struct{ N int }{n}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "gen: %v\n", err)
		os.Exit(1)
	}
}
