// Package replay re-executes a property on the concrete inputs of a recorded
// case.
package replay

import (
	"fmt"
	"io"

	"github.com/nomagicln/propverify/pkg/prop"
	"github.com/nomagicln/propverify/pkg/testcase"
	"github.com/nomagicln/propverify/pkg/verifier"
)

// Result is the outcome of one replay.
type Result struct {
	Case    *testcase.Case
	Outcome testcase.Outcome
	Message string
	// Matches reports whether the replay ended the way the case was recorded.
	Matches bool
	// Err is the terminal error of the path, if it did not pass.
	Err error
}

// source serves the recorded regions in order. A region of another size, or
// one past the end of the recording, prunes the path.
type source struct {
	objects []testcase.Object
	pos     int
}

func (s *source) Fill(buf []byte, name string) error {
	if s.pos >= len(s.objects) {
		return &verifier.PrunedError{Reason: verifier.PruneExhausted, Detail: fmt.Sprintf("no recorded value for %s", name)}
	}
	o := s.objects[s.pos]
	if len(o.Bytes) != len(buf) {
		return &verifier.PrunedError{
			Reason: verifier.PruneExhausted,
			Detail: fmt.Sprintf("recorded %s has %d bytes, %s needs %d", o.Name, len(o.Bytes), name, len(buf)),
		}
	}
	copy(buf, o.Bytes)
	s.pos++
	return nil
}

func (s *source) Replay() bool { return true }

// Run executes p on the inputs of c. Bound values are written to out.
func Run(p *prop.Property, c *testcase.Case, out io.Writer) *Result {
	path := verifier.NewPath(&source{objects: c.Objects})
	status := path.Finish(prop.Execute(path, p, out))

	res := &Result{
		Case:    c,
		Outcome: testcase.OutcomeOf(status),
		Err:     path.Err(),
	}
	if msg, ok := verifier.FailureMessage(path.Err()); ok {
		res.Message = msg
	}
	res.Matches = res.Outcome == c.Outcome
	if out != nil {
		switch status {
		case verifier.StatusFailed:
			fmt.Fprintf(out, "Verification failed: %s\n", res.Message)
		case verifier.StatusPruned:
			fmt.Fprintf(out, "Path pruned: %v\n", res.Err)
		default:
			fmt.Fprintln(out, "Verification passed")
		}
	}
	return res
}
