package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nomagicln/propverify/pkg/declare"
	"github.com/nomagicln/propverify/pkg/explore"
	"github.com/nomagicln/propverify/pkg/testcase"
)

func TestRendererResult(t *testing.T) {
	r := NewRenderer(false)
	c := &testcase.Case{ID: "0123456789abcdef", Property: "p", Outcome: testcase.OutcomeFailed}

	tests := []struct {
		name     string
		res      Result
		contains []string
		excludes []string
	}{
		{
			name: "verified",
			res: Result{
				Expect: declare.ExpectVerified,
				Met:    true,
				Report: &explore.Report{Property: "p", Runs: 256, Passed: 4, Pruned: 252, Exhausted: true, Stop: explore.StopExhausted},
			},
			contains: []string{"PASS p (expect verified)", "256 runs: 4 passed, 252 pruned, 0 failed", "[exhausted, "},
			excludes: []string{"not exhausted", "failure:"},
		},
		{
			name: "failed with case",
			res: Result{
				Expect: declare.ExpectVerified,
				Report: &explore.Report{
					Property: "p", Runs: 3, Passed: 2, Failed: 1, Stop: explore.StopFailure,
					Failures: []explore.Failure{{Message: "assertion failed: x < 2", Case: c}},
				},
			},
			contains: []string{"FAIL p", "failure: assertion failed: x < 2", "replay: propverify replay 01234567"},
			excludes: []string{"not exhausted"},
		},
		{
			name: "vacuous and cut short",
			res: Result{
				Expect: declare.ExpectVerified,
				Report: &explore.Report{Property: "p", Runs: 10, Pruned: 10, Stop: explore.StopMaxRuns},
			},
			contains: []string{"FAIL p", "no path reached the assertions", "input space not exhausted"},
		},
		{
			name: "wide inputs sampled",
			res: Result{
				Expect: declare.ExpectVerified,
				Met:    true,
				Report: &explore.Report{Property: "p", Runs: 112, Passed: 112, Sampled: true, Stop: explore.StopSampled},
			},
			contains: []string{"PASS p", "[sampled, ", "input space not exhausted: wide inputs were sampled"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := r.Result(tt.res)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
			for _, unwanted := range tt.excludes {
				assert.NotContains(t, out, unwanted)
			}
		})
	}
}

func TestRendererSummary(t *testing.T) {
	r := NewRenderer(false)
	assert.Equal(t, "2 of 2 properties met their expectation", r.Summary([]Result{{Met: true}, {Met: true}}))
	assert.Equal(t, "0 of 1 properties met their expectation", r.Summary([]Result{{}}))
}

func TestRendererTableAlignsColumns(t *testing.T) {
	r := NewRenderer(false)
	out := r.Properties([]Listing{
		{Name: "a", Expect: "verified", Source: "x.yaml"},
		{Name: "longer_name", Expect: "failed", Source: "y.yaml"},
	})

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 3)
	col := strings.Index(lines[0], "EXPECT")
	assert.Equal(t, col, strings.Index(lines[1], "verified"))
	assert.Equal(t, col, strings.Index(lines[2], "failed"))
}

func TestRendererCases(t *testing.T) {
	r := NewRenderer(false)
	assert.Equal(t, "No recorded cases", r.Cases(nil))

	c := &testcase.Case{
		ID:        "0123456789abcdef",
		Property:  "p",
		Outcome:   testcase.OutcomeFailed,
		Message:   "boom",
		CreatedAt: time.Now(),
		Objects:   []testcase.Object{{Name: "range", Bytes: testcase.HexBytes{0x02}}},
	}
	out := r.Cases([]*testcase.Case{c})
	assert.Contains(t, out, "01234567")
	assert.NotContains(t, out, "0123456789")
	assert.Contains(t, out, "boom")

	detail := r.Case(c)
	assert.Contains(t, detail, "Case 0123456789abcdef")
	assert.Contains(t, detail, "Objects:  1 (1 bytes)")
	assert.Contains(t, detail, "range")
	assert.Contains(t, detail, " 02\n")
}

func TestRendererPlainWithoutColor(t *testing.T) {
	assert.Equal(t, "PASS", NewRenderer(false).Verdict(Result{Met: true}))
	assert.Equal(t, "FAIL", NewRenderer(false).Verdict(Result{}))
}
