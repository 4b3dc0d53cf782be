// Package explore runs properties over every path of a bounded input space.
//
// Each symbolic region requested by a property is a choice point. The
// explorer executes the property once per combination of choices, in
// depth-first order, re-executing from the start for every path. Execution is
// deterministic, so a path is identified by the sequence of choices that
// produced it.
package explore

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/nomagicln/propverify/pkg/testcase"
	"github.com/nomagicln/propverify/pkg/verifier"
)

// Program is something that can be executed against a verifier.
type Program interface {
	Name() string
	Run(v verifier.Verifier) error
}

type funcProgram struct {
	name string
	run  func(v verifier.Verifier) error
}

func (p funcProgram) Name() string                  { return p.name }
func (p funcProgram) Run(v verifier.Verifier) error { return p.run(v) }

// Func wraps a function as a Program.
func Func(name string, run func(v verifier.Verifier) error) Program {
	return funcProgram{name: name, run: run}
}

// CaseSink receives the cases of failing paths.
type CaseSink interface {
	SaveCase(ctx context.Context, c *testcase.Case) error
}

// NondeterminismError is returned when a program asks for a region of a
// different width, or hints a different interval for it, than it did at the
// same point of an earlier run.
type NondeterminismError struct {
	Property string
	Position int
	Want     int
	Got      int
}

func (e *NondeterminismError) Error() string {
	if e.Want == e.Got {
		return fmt.Sprintf("property %s is not deterministic: region %d was drawn from a different interval",
			e.Property, e.Position)
	}
	return fmt.Sprintf("property %s is not deterministic: region %d was %d bytes, now %d bytes",
		e.Property, e.Position, e.Want, e.Got)
}

// Explorer enumerates the paths of programs. It is safe for concurrent use.
type Explorer struct {
	settings Settings
	logger   zerolog.Logger
	sink     CaseSink
	domain   *domain
}

// New creates an Explorer.
func New(opts ...Option) *Explorer {
	e := &Explorer{
		settings: DefaultSettings(),
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.domain = newDomain(e.settings.Window, e.settings.EnumerateLimit, e.settings.ExtraValues)
	return e
}

// Settings returns the budgets in effect.
func (e *Explorer) Settings() Settings {
	return e.settings
}

type frame struct {
	width  int
	choice int
	arity  int
}

// choiceSource serves the patterns selected by the current trail and extends
// the trail with first choices past its end.
type choiceSource struct {
	domain   *domain
	trail    []frame
	pos      int
	maxDepth int
	hint     *verifier.Interval
	sampled  bool
	diverged *NondeterminismError
}

// Hint focuses the next region on the values of iv.
func (s *choiceSource) Hint(iv verifier.Interval) {
	s.hint = &iv
}

func (s *choiceSource) Fill(buf []byte, name string) error {
	hint := s.hint
	s.hint = nil
	if s.maxDepth > 0 && s.pos >= s.maxDepth {
		return &verifier.PrunedError{Reason: verifier.PruneExhausted, Detail: "maximum depth reached"}
	}
	cands := s.domain.candidates(len(buf), hint)
	if s.pos == len(s.trail) {
		s.trail = append(s.trail, frame{width: len(buf), arity: cands.len()})
	}
	f := s.trail[s.pos]
	if f.width != len(buf) || f.arity != cands.len() {
		s.diverged = &NondeterminismError{Position: s.pos, Want: f.width, Got: len(buf)}
		return &verifier.PrunedError{Reason: verifier.PruneExhausted, Detail: "nondeterministic region"}
	}
	if !cands.complete {
		s.sampled = true
	}
	cands.put(buf, f.choice)
	s.pos++
	return nil
}

func (s *choiceSource) Replay() bool { return false }

// Explore executes p over its input space until the space is exhausted or a
// budget is spent. An error is returned only when ctx is canceled or the
// program is not deterministic; budgets end the exploration with a report.
func (e *Explorer) Explore(ctx context.Context, p Program) (*Report, error) {
	start := time.Now()
	rep := &Report{Property: p.Name()}
	log := e.logger.With().Str("property", p.Name()).Logger()

	runCtx := ctx
	if e.settings.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, e.settings.Timeout)
		defer cancel()
	}

	var trail []frame
	var err error
loop:
	for {
		if ctx.Err() != nil {
			rep.Stop = StopCanceled
			err = ctx.Err()
			break
		}
		if runCtx.Err() != nil {
			rep.Stop = StopTimeout
			break
		}
		if e.settings.MaxRuns > 0 && rep.Runs >= e.settings.MaxRuns {
			rep.Stop = StopMaxRuns
			break
		}

		src := &choiceSource{domain: e.domain, trail: trail, maxDepth: e.settings.MaxDepth}
		path := verifier.NewPath(src)
		status := path.Finish(run(p, path))
		trail = src.trail
		rep.Runs++
		rep.Sampled = rep.Sampled || src.sampled

		if src.diverged != nil {
			src.diverged.Property = p.Name()
			rep.Stop = StopDiverged
			err = src.diverged
			break
		}

		switch status {
		case verifier.StatusPassed:
			rep.Passed++
		case verifier.StatusPruned:
			rep.Pruned++
		case verifier.StatusFailed:
			rep.Failed++
			msg, _ := verifier.FailureMessage(path.Err())
			c := testcase.New(p.Name(), testcase.OutcomeFailed, msg, path.Objects())
			rep.Failures = append(rep.Failures, Failure{Message: msg, Case: c})
			log.Debug().Int("run", rep.Runs).Str("case", c.ID).Str("message", msg).Msg("path failed")
			e.save(ctx, log, c)
			if e.settings.StopOnFailure {
				rep.Stop = StopFailure
				break loop
			}
		}

		trail = trail[:src.pos]
		for len(trail) > 0 && trail[len(trail)-1].choice+1 >= trail[len(trail)-1].arity {
			trail = trail[:len(trail)-1]
		}
		if len(trail) == 0 {
			rep.Exhausted = !rep.Sampled
			rep.Stop = StopExhausted
			if rep.Sampled {
				rep.Stop = StopSampled
			}
			break
		}
		trail[len(trail)-1].choice++
	}

	rep.Elapsed = time.Since(start)
	log.Info().
		Int("runs", rep.Runs).
		Int("passed", rep.Passed).
		Int("pruned", rep.Pruned).
		Int("failed", rep.Failed).
		Str("stop", string(rep.Stop)).
		Dur("elapsed", rep.Elapsed).
		Msg("exploration finished")
	return rep, err
}

func (e *Explorer) save(ctx context.Context, log zerolog.Logger, c *testcase.Case) {
	if e.sink == nil {
		return
	}
	if err := e.sink.SaveCase(ctx, c); err != nil {
		log.Warn().Err(err).Str("case", c.ID).Msg("failed to save case")
	}
}

// ExploreAll explores independent programs concurrently, at most Jobs at a
// time. Reports are returned in the order of programs.
func (e *Explorer) ExploreAll(ctx context.Context, programs ...Program) ([]*Report, error) {
	reports := make([]*Report, len(programs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(e.settings.Jobs, 1))
	for i, p := range programs {
		g.Go(func() error {
			rep, err := e.Explore(ctx, p)
			reports[i] = rep
			if err != nil {
				return fmt.Errorf("failed to explore %s: %w", p.Name(), err)
			}
			return nil
		})
	}
	return reports, g.Wait()
}

// run executes p, turning a panic that escapes it into a failure.
func run(p Program, v verifier.Verifier) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = v.ReportError(fmt.Sprintf("panic: %v", r))
		}
	}()
	return p.Run(v)
}
