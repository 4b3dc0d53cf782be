package explore

import (
	"fmt"
	"time"

	"github.com/nomagicln/propverify/pkg/testcase"
)

// StopReason is why an exploration ended.
type StopReason string

const (
	StopExhausted StopReason = "exhausted" // Every candidate path was executed.
	StopSampled   StopReason = "sampled"   // Every candidate path was executed, but some regions were only sampled.
	StopMaxRuns   StopReason = "max-runs"  // The run budget was spent.
	StopFailure   StopReason = "failure"   // A failure ended the exploration early.
	StopTimeout   StopReason = "timeout"   // The time budget was spent.
	StopCanceled  StopReason = "canceled"  // The caller's context was canceled.
	StopDiverged  StopReason = "diverged"  // The program did not replay its own choices.
)

// Failure is one failing path.
type Failure struct {
	Message string
	Case    *testcase.Case
}

// Report summarizes the exploration of one property.
type Report struct {
	Property  string
	Runs      int
	Passed    int
	Pruned    int
	Failed    int
	Exhausted bool
	Sampled   bool
	Stop      StopReason
	Failures  []Failure
	Elapsed   time.Duration
}

// Verified reports whether no explored path failed.
func (r *Report) Verified() bool {
	return r.Failed == 0
}

// Vacuous reports whether no path reached the end of the property. Such a run
// checked nothing even though it did not fail.
func (r *Report) Vacuous() bool {
	return r.Passed == 0 && r.Failed == 0
}

// Finished reports whether every candidate path was executed. The input space
// was covered completely only when Exhausted is set as well.
func (r *Report) Finished() bool {
	return r.Stop == StopExhausted || r.Stop == StopSampled
}

// FirstFailure returns the first recorded failure, if any.
func (r *Report) FirstFailure() (Failure, bool) {
	if len(r.Failures) == 0 {
		return Failure{}, false
	}
	return r.Failures[0], true
}

func (r *Report) String() string {
	verdict := "verified"
	switch {
	case !r.Verified():
		verdict = "FAILED"
	case r.Vacuous():
		verdict = "vacuous"
	}
	return fmt.Sprintf("%s: %s (%d runs, %d passed, %d pruned, %d failed, %s, %s)",
		r.Property, verdict, r.Runs, r.Passed, r.Pruned, r.Failed, r.Stop, r.Elapsed.Round(time.Millisecond))
}
