package prop

import (
	"context"
	"testing"

	"github.com/nomagicln/propverify/pkg/explore"
)

// shortMaxRuns bounds explorations under go test -short.
const shortMaxRuns = 20000

type verifyConfig struct {
	explorer      []explore.Option
	allowVacuous  bool
	expectFailure bool
}

// VerifyOption configures Verify.
type VerifyOption func(*verifyConfig)

// WithExplorer passes options to the explorer.
func WithExplorer(opts ...explore.Option) VerifyOption {
	return func(c *verifyConfig) {
		c.explorer = append(c.explorer, opts...)
	}
}

// AllowVacuous accepts explorations in which every path was pruned.
func AllowVacuous() VerifyOption {
	return func(c *verifyConfig) {
		c.allowVacuous = true
	}
}

// ExpectFailure inverts the verdict: the test passes only if a failing path
// is found.
func ExpectFailure() VerifyOption {
	return func(c *verifyConfig) {
		c.expectFailure = true
	}
}

// Verify explores p and reports failing paths as test errors. A run where no
// path reached the end of the body is an error too, unless AllowVacuous is
// given.
func Verify(tb testing.TB, p *Property, opts ...VerifyOption) *explore.Report {
	tb.Helper()

	var cfg verifyConfig
	if testing.Short() {
		cfg.explorer = append(cfg.explorer, explore.WithMaxRuns(shortMaxRuns))
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	rep, err := explore.New(cfg.explorer...).Explore(context.Background(), p)
	if err != nil {
		tb.Fatalf("failed to explore %s: %v", p.Name(), err)
		return rep
	}

	if cfg.expectFailure {
		if rep.Verified() {
			tb.Errorf("%s: expected a failing path, none found in %d runs (%s)", p.Name(), rep.Runs, rep.Stop)
		}
		return rep
	}

	for _, f := range rep.Failures {
		tb.Errorf("%s: %s (case %s)", p.Name(), f.Message, f.Case.ID)
		for _, o := range f.Case.Objects {
			tb.Logf("  %s = %x", o.Name, []byte(o.Bytes))
		}
	}
	if rep.Verified() && rep.Vacuous() && !cfg.allowVacuous {
		tb.Errorf("%s: no path reached the end of the property in %d runs", p.Name(), rep.Runs)
	}
	return rep
}
