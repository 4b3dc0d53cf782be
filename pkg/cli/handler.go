package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/nomagicln/propverify/pkg/casestore"
	"github.com/nomagicln/propverify/pkg/config"
	"github.com/nomagicln/propverify/pkg/declare"
	"github.com/nomagicln/propverify/pkg/explore"
	"github.com/nomagicln/propverify/pkg/replay"
	"github.com/nomagicln/propverify/pkg/testcase"
)

// Result is the outcome of exploring one declared property.
type Result struct {
	Property string
	Expect   declare.Expect
	Report   *explore.Report
	Met      bool
}

// Listing describes a declared property.
type Listing struct {
	Name   string `json:"name" yaml:"name"`
	Expect string `json:"expect" yaml:"expect"`
	Source string `json:"source" yaml:"source"`
}

// Handler executes the propverify commands.
type Handler struct {
	cfg       *config.Config
	store     *casestore.Store
	renderer  *Renderer
	formatter *ErrorFormatter
	out       io.Writer
	logger    zerolog.Logger

	// runMu serializes runs started by the watcher.
	runMu sync.Mutex
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithStore records failing cases in store and enables the case commands.
func WithStore(store *casestore.Store) HandlerOption {
	return func(h *Handler) { h.store = store }
}

// WithOutput sets where results are written. The default is stdout.
func WithOutput(w io.Writer) HandlerOption {
	return func(h *Handler) { h.out = w }
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger zerolog.Logger) HandlerOption {
	return func(h *Handler) { h.logger = logger }
}

// WithColor enables styled output.
func WithColor(color bool) HandlerOption {
	return func(h *Handler) { h.renderer = NewRenderer(color) }
}

// NewHandler creates a handler for cfg.
func NewHandler(cfg *config.Config, opts ...HandlerOption) *Handler {
	if cfg == nil {
		cfg = config.Default()
	}
	h := &Handler{
		cfg:       cfg,
		renderer:  NewRenderer(false),
		formatter: NewErrorFormatter(),
		out:       os.Stdout,
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Formatter returns the error formatter.
func (h *Handler) Formatter() *ErrorFormatter { return h.formatter }

// Load loads the properties declared in paths and keeps those named in names.
// An empty names keeps every property.
func (h *Handler) Load(paths, names []string) ([]*declare.Declared, error) {
	props, err := declare.LoadPaths(paths...)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return props, nil
	}

	known := make([]string, len(props))
	for i, p := range props {
		known[i] = p.Name()
	}
	selected := make([]*declare.Declared, 0, len(names))
	for _, name := range names {
		i := slices.Index(known, name)
		if i < 0 {
			return nil, &PropertyNotFoundError{Name: name, Known: known}
		}
		selected = append(selected, props[i])
	}
	return selected, nil
}

// Run explores the selected properties and writes one result per property and
// a summary. It returns an ExpectationError when a property did not end as
// declared.
func (h *Handler) Run(ctx context.Context, paths, names []string) ([]Result, error) {
	h.runMu.Lock()
	defer h.runMu.Unlock()

	props, err := h.Load(paths, names)
	if err != nil {
		return nil, err
	}

	opts := []explore.Option{explore.WithSettings(h.cfg.Settings()), explore.WithLogger(h.logger)}
	if h.store != nil && !h.cfg.Store.Disabled {
		opts = append(opts, explore.WithCaseSink(h.store))
	}
	explorer := explore.New(opts...)

	programs := make([]explore.Program, len(props))
	for i, p := range props {
		programs[i] = p
	}
	h.logger.Info().Int("properties", len(programs)).Int("jobs", explorer.Settings().Jobs).Msg("exploring")

	reports, err := explorer.ExploreAll(ctx, programs...)
	if err != nil {
		return nil, err
	}

	results := make([]Result, len(props))
	var unmet []string
	for i, p := range props {
		results[i] = Result{
			Property: p.Name(),
			Expect:   p.Expect,
			Report:   reports[i],
			Met:      p.Expect.Met(reports[i]),
		}
		if !results[i].Met {
			unmet = append(unmet, p.Name())
		}
		_, _ = fmt.Fprint(h.out, h.renderer.Result(results[i]))
	}
	_, _ = fmt.Fprintln(h.out, h.renderer.Summary(results))

	if len(unmet) > 0 {
		return results, &ExpectationError{Properties: unmet}
	}
	return results, nil
}

// Watch runs the properties, then runs them again whenever one of their files
// changes, until ctx is done. Errors of later runs are written, not returned.
func (h *Handler) Watch(ctx context.Context, paths, names []string, opts ...declare.WatcherOption) error {
	files, err := declare.Expand(paths...)
	if err != nil {
		return err
	}
	if _, err := h.Run(ctx, paths, names); err != nil && !isExpectationError(err) {
		return err
	}

	changes := make(chan declare.ChangeEvent, 1)
	w := declare.NewWatcher(files, opts...)
	w.AddHandler(func(ev declare.ChangeEvent) {
		select {
		case changes <- ev:
		default:
		}
	})
	if err := w.Start(ctx); err != nil {
		return err
	}
	defer func() { _ = w.Stop() }()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-changes:
			h.logger.Info().Str("path", ev.Path).Str("change", string(ev.Type)).Msg("property file changed")
			if ev.Type != declare.ChangeModified {
				continue
			}
			_, _ = fmt.Fprintf(h.out, "\n%s changed at %s\n", ev.Path, ev.Timestamp.Format(time.TimeOnly))
			if _, err := h.Run(ctx, paths, names); err != nil && !isExpectationError(err) {
				_, _ = fmt.Fprintln(h.out, h.formatter.FormatError(err))
			}
		}
	}
}

func isExpectationError(err error) bool {
	var unmet *ExpectationError
	return errors.As(err, &unmet)
}

// List writes the properties declared in paths.
func (h *Handler) List(paths []string, format string) error {
	props, err := h.Load(paths, nil)
	if err != nil {
		return err
	}
	listings := make([]Listing, len(props))
	for i, p := range props {
		listings[i] = Listing{Name: p.Name(), Expect: p.Expect.String(), Source: p.Source}
	}
	return h.write(format, listings, func() string { return h.renderer.Properties(listings) })
}

// Replay re-executes the recorded case id against its property, declared in
// paths, and reports whether it ended as recorded.
func (h *Handler) Replay(ctx context.Context, id string, paths []string) (*replay.Result, error) {
	store, err := h.requireStore()
	if err != nil {
		return nil, err
	}
	c, err := store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return h.ReplayCase(c, paths)
}

// ReplayCase re-executes c against its property, declared in paths.
func (h *Handler) ReplayCase(c *testcase.Case, paths []string) (*replay.Result, error) {
	props, err := h.Load(paths, []string{c.Property})
	if err != nil {
		return nil, err
	}
	res := replay.Run(props[0].Property, c, h.out)
	if !res.Matches {
		h.logger.Warn().Str("case", c.ID).Str("recorded", string(c.Outcome)).Str("replayed", string(res.Outcome)).
			Msg("replay diverged from the recording")
	}
	return res, nil
}

// ListCases writes the recorded cases matching filter.
func (h *Handler) ListCases(ctx context.Context, filter casestore.Filter, format string) error {
	store, err := h.requireStore()
	if err != nil {
		return err
	}
	cases, err := store.List(ctx, filter)
	if err != nil {
		return err
	}
	views := make([]caseView, len(cases))
	for i, c := range cases {
		views[i] = viewOf(c)
	}
	return h.write(format, views, func() string { return h.renderer.Cases(cases) })
}

// ShowCase writes one recorded case.
func (h *Handler) ShowCase(ctx context.Context, id, format string) error {
	store, err := h.requireStore()
	if err != nil {
		return err
	}
	c, err := store.Get(ctx, id)
	if err != nil {
		return err
	}
	return h.write(format, viewOf(c), func() string { return h.renderer.Case(c) })
}

// ExportCase writes a recorded case in the format read by ImportCase.
func (h *Handler) ExportCase(ctx context.Context, id string, w io.Writer) error {
	store, err := h.requireStore()
	if err != nil {
		return err
	}
	c, err := store.Get(ctx, id)
	if err != nil {
		return err
	}
	data, err := testcase.Export(c)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// ImportCase reads an exported case from path and stores it.
func (h *Handler) ImportCase(ctx context.Context, path string) (*testcase.Case, error) {
	c, err := ReadCase(path)
	if err != nil {
		return nil, err
	}
	store, err := h.requireStore()
	if err != nil {
		return nil, err
	}
	if err := store.SaveCase(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// ReadCase reads an exported case file.
func ReadCase(path string) (*testcase.Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read case file: %w", err)
	}
	return testcase.Import(data)
}

// DeleteCase removes the case id.
func (h *Handler) DeleteCase(ctx context.Context, id string) error {
	store, err := h.requireStore()
	if err != nil {
		return err
	}
	return store.Delete(ctx, id)
}

// DeleteProperty removes every case of property and returns how many were removed.
func (h *Handler) DeleteProperty(ctx context.Context, property string) (int64, error) {
	store, err := h.requireStore()
	if err != nil {
		return 0, err
	}
	return store.DeleteProperty(ctx, property)
}

func (h *Handler) requireStore() (*casestore.Store, error) {
	if h.store == nil {
		return nil, errors.New("the case store is disabled")
	}
	return h.store, nil
}

// caseView is the structured output form of a case.
type caseView struct {
	ID        string       `json:"id" yaml:"id"`
	Property  string       `json:"property" yaml:"property"`
	Outcome   string       `json:"outcome" yaml:"outcome"`
	Message   string       `json:"message,omitempty" yaml:"message,omitempty"`
	CreatedAt time.Time    `json:"created_at" yaml:"created_at"`
	Objects   []objectView `json:"objects" yaml:"objects"`
}

type objectView struct {
	Name  string `json:"name" yaml:"name"`
	Bytes string `json:"bytes" yaml:"bytes"`
}

func viewOf(c *testcase.Case) caseView {
	v := caseView{
		ID:        c.ID,
		Property:  c.Property,
		Outcome:   string(c.Outcome),
		Message:   c.Message,
		CreatedAt: c.CreatedAt,
		Objects:   make([]objectView, len(c.Objects)),
	}
	for i, o := range c.Objects {
		v.Objects[i] = objectView{Name: o.Name, Bytes: fmt.Sprintf("%x", []byte(o.Bytes))}
	}
	return v
}

// write outputs data in format: table (the default), json or yaml.
func (h *Handler) write(format string, data any, table func() string) error {
	out, err := FormatOutput(data, format, table)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(h.out, out)
	return err
}

// FormatOutput renders data as json or yaml, or calls table for the table format.
func FormatOutput(data any, format string, table func() string) (string, error) {
	switch format {
	case "", "table":
		return table(), nil
	case "json":
		formatted, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to format output: %w", err)
		}
		return string(formatted), nil
	case "yaml":
		formatted, err := yaml.Marshal(data)
		if err != nil {
			return "", fmt.Errorf("failed to format output: %w", err)
		}
		return string(formatted), nil
	default:
		return "", fmt.Errorf("unknown output format %q, expected table, json or yaml", format)
	}
}
