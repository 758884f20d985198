package teahost

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/phanxgames/gesture"
)

// RowStyle styles the reveal area of a row.
type RowStyle struct {
	Revealed lipgloss.Style // action label once the reveal passes the trigger
	Partial  lipgloss.Style // uncovered area before that
}

// DefaultRowStyle is white on red for the revealed action.
func DefaultRowStyle() RowStyle {
	return RowStyle{
		Revealed: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("1")),
		Partial: lipgloss.NewStyle().
			Background(lipgloss.Color("8")),
	}
}

// RenderSurface renders content for s, shifted left by its smoothed reveal
// offset, with label in the uncovered area.
func RenderSurface(s *gesture.Surface, content string, width int, label string, st RowStyle) string {
	return RenderRow(content, width, s.Offset(), s.Engine().RevealShown(), label, st)
}

// RenderRow renders one row of exactly width cells. The content slides left
// by offset cells and the uncovered right edge shows label when revealed.
// Content is treated as plain text.
func RenderRow(content string, width int, offset float64, revealed bool, label string, st RowStyle) string {
	if width <= 0 {
		return ""
	}
	shift := int(math.Round(offset))
	shift = max(0, min(shift, width))

	body := fit(content, width)
	body = string([]rune(body)[shift:])
	if shift == 0 {
		return body
	}

	area := fit(label, shift)
	if revealed {
		return body + st.Revealed.Render(area)
	}
	return body + st.Partial.Render(strings.Repeat(" ", shift))
}

// fit truncates or pads s with spaces to exactly n cells.
func fit(s string, n int) string {
	r := []rune(s)
	if len(r) >= n {
		return string(r[:n])
	}
	return s + strings.Repeat(" ", n-len(r))
}
