package planning

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Render draws a step as a bordered banner for the diagnostic stream.
// The banner names the step's position and, where present, its revision
// or branch context:
//
//	┌────────────────┐
//	│ 💭 Step 2/5    │
//	├────────────────┤
//	│ Check coverage │
//	└────────────────┘
func Render(step Step) string {
	header := renderHeader(step)
	lines := strings.Split(step.Text, "\n")

	width := utf8.RuneCountInString(header)
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > width {
			width = n
		}
	}
	border := strings.Repeat("─", width+2)

	var b strings.Builder
	fmt.Fprintf(&b, "┌%s┐\n", border)
	fmt.Fprintf(&b, "│ %s │\n", padTo(header, width))
	fmt.Fprintf(&b, "├%s┤\n", border)
	for _, line := range lines {
		fmt.Fprintf(&b, "│ %s │\n", padTo(line, width))
	}
	fmt.Fprintf(&b, "└%s┘", border)
	return b.String()
}

func renderHeader(step Step) string {
	switch {
	case step.IsRevision:
		return fmt.Sprintf("🔄 Revision %d/%d (revising step %d)", step.Number, step.TotalSteps, step.RevisesStep)
	case step.Branched():
		return fmt.Sprintf("🌿 Branch %d/%d (from step %d, id: %s)", step.Number, step.TotalSteps, step.BranchFromStep, step.BranchID)
	default:
		return fmt.Sprintf("💭 Step %d/%d", step.Number, step.TotalSteps)
	}
}

func padTo(s string, width int) string {
	gap := width - utf8.RuneCountInString(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}
