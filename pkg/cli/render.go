package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/nomagicln/propverify/pkg/explore"
	"github.com/nomagicln/propverify/pkg/testcase"
)

var (
	passStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true) // Green
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	nameStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true)
)

// Renderer formats results for the terminal. Without color it writes plain text.
type Renderer struct {
	color bool
}

// NewRenderer creates a renderer. color enables styling.
func NewRenderer(color bool) *Renderer {
	return &Renderer{color: color}
}

func (r *Renderer) paint(s lipgloss.Style, text string) string {
	if !r.color {
		return text
	}
	return s.Render(text)
}

// Verdict returns the label of a result: PASS when the exploration ended as
// expected, FAIL otherwise.
func (r *Renderer) Verdict(res Result) string {
	if res.Met {
		return r.paint(passStyle, "PASS")
	}
	return r.paint(failStyle, "FAIL")
}

// Result renders one property's exploration on a few lines.
func (r *Renderer) Result(res Result) string {
	rep := res.Report
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s (expect %s)\n", r.Verdict(res), r.paint(nameStyle, rep.Property), res.Expect)

	counts := fmt.Sprintf("%d runs: %d passed, %d pruned, %d failed", rep.Runs, rep.Passed, rep.Pruned, rep.Failed)
	fmt.Fprintf(&sb, "     %s %s\n", counts, r.paint(dimStyle, fmt.Sprintf("[%s, %s]", rep.Stop, rep.Elapsed.Round(time.Millisecond))))

	if rep.Vacuous() {
		fmt.Fprintf(&sb, "     %s\n", r.paint(warnStyle, "no path reached the assertions"))
	}
	switch {
	case rep.Stop == explore.StopSampled:
		fmt.Fprintf(&sb, "     %s\n", r.paint(warnStyle, "input space not exhausted: wide inputs were sampled"))
	case !rep.Exhausted && rep.Stop != explore.StopFailure:
		fmt.Fprintf(&sb, "     %s\n", r.paint(warnStyle, "input space not exhausted"))
	}
	if f, ok := rep.FirstFailure(); ok {
		fmt.Fprintf(&sb, "     %s %s\n", r.paint(failStyle, "failure:"), f.Message)
		if f.Case != nil {
			fmt.Fprintf(&sb, "     %s\n", r.paint(dimStyle, "replay: propverify replay "+shortID(f.Case.ID)))
		}
	}
	return sb.String()
}

// Summary renders the totals of a run.
func (r *Renderer) Summary(results []Result) string {
	met := 0
	for _, res := range results {
		if res.Met {
			met++
		}
	}
	line := fmt.Sprintf("%d of %d properties met their expectation", met, len(results))
	if met == len(results) {
		return r.paint(passStyle, line)
	}
	return r.paint(failStyle, line)
}

// Properties renders the declared properties as a table.
func (r *Renderer) Properties(results []Listing) string {
	rows := make([][]string, 0, len(results))
	for _, l := range results {
		rows = append(rows, []string{l.Name, l.Expect, l.Source})
	}
	return r.table([]string{"NAME", "EXPECT", "SOURCE"}, rows)
}

// Cases renders recorded cases as a table.
func (r *Renderer) Cases(cases []*testcase.Case) string {
	if len(cases) == 0 {
		return "No recorded cases"
	}
	rows := make([][]string, 0, len(cases))
	for _, c := range cases {
		outcome := string(c.Outcome)
		if c.Outcome == testcase.OutcomeFailed {
			outcome = r.paint(failStyle, outcome)
		}
		rows = append(rows, []string{
			shortID(c.ID),
			c.Property,
			outcome,
			c.CreatedAt.Local().Format(time.DateTime),
			c.Message,
		})
	}
	return r.table([]string{"ID", "PROPERTY", "OUTCOME", "RECORDED", "MESSAGE"}, rows)
}

// Case renders a single case with its objects.
func (r *Renderer) Case(c *testcase.Case) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s\n", r.paint(headerStyle, "Case"), c.ID)
	fmt.Fprintf(&sb, "  Property: %s\n", c.Property)
	fmt.Fprintf(&sb, "  Outcome:  %s\n", c.Outcome)
	if c.Message != "" {
		fmt.Fprintf(&sb, "  Message:  %s\n", c.Message)
	}
	fmt.Fprintf(&sb, "  Recorded: %s\n", c.CreatedAt.Local().Format(time.DateTime))
	fmt.Fprintf(&sb, "  Objects:  %d (%d bytes)\n", len(c.Objects), c.Size())
	for i, o := range c.Objects {
		fmt.Fprintf(&sb, "    %3d %-10s %x\n", i, o.Name, []byte(o.Bytes))
	}
	return sb.String()
}

// table lays rows out in columns. Widths are measured with lipgloss so styled
// cells line up.
func (r *Renderer) table(header []string, rows [][]string) string {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	var sb strings.Builder
	writeRow := func(cells []string) {
		for i, cell := range cells {
			if i == len(cells)-1 {
				sb.WriteString(cell)
				break
			}
			sb.WriteString(cell)
			sb.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)+2))
		}
		sb.WriteString("\n")
	}

	styled := make([]string, len(header))
	for i, h := range header {
		styled[i] = r.paint(dimStyle, h)
	}
	writeRow(styled)
	for _, row := range rows {
		writeRow(row)
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// shortID abbreviates a case id. The store resolves unique prefixes.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
