// Package pathdiff shows how path data changed, one command per line.
package pathdiff

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	dmp "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/gucio321/pathedit/pkg/pathdata"
)

// NoChanges is printed when both paths serialize identically.
const NoChanges = "No changes\n"

var (
	delLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"})
	addLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"})
	delChar = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"}).Underline(true)
	addChar = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"}).Underline(true)
	faint   = lipgloss.NewStyle().Faint(true)
)

// Renderer formats diffs. The zero value prints plain text, marking changed
// characters as [-deleted-] and {+inserted+}.
type Renderer struct {
	color bool
}

// Colored returns a renderer that highlights with terminal colors instead of markers.
func Colored() Renderer {
	return Renderer{color: true}
}

func (r Renderer) style(s lipgloss.Style, text string) string {
	if !r.color {
		return text
	}

	return s.Render(text)
}

func (r Renderer) mark(s lipgloss.Style, open, end, text string) string {
	if !r.color {
		return open + text + end
	}

	return s.Render(text)
}

func lines(p pathdata.Path) []string {
	result := make([]string, len(p))
	for i, c := range p {
		result[i] = c.String()
	}

	return result
}

// Render compares before and after command by command. When both have the same
// number of commands each changed pair gets a character level diff; otherwise
// both paths are listed whole.
func (r Renderer) Render(before, after pathdata.Path) string {
	b, a := lines(before), lines(after)
	if strings.Join(b, " ") == strings.Join(a, " ") {
		return NoChanges
	}

	var sb strings.Builder

	if len(b) != len(a) {
		for _, l := range b {
			sb.WriteString(r.style(delLine, "- "+l) + "\n")
		}

		for _, l := range a {
			sb.WriteString(r.style(addLine, "+ "+l) + "\n")
		}

		return sb.String()
	}

	d := dmp.New()
	for i := range b {
		if b[i] == a[i] {
			sb.WriteString("  " + r.style(faint, b[i]) + "\n")
			continue
		}

		diffs := d.DiffMain(b[i], a[i], false)
		d.DiffCleanupSemantic(diffs)

		sb.WriteString(r.style(delLine, "- "))
		for _, df := range diffs {
			switch df.Type {
			case dmp.DiffDelete:
				sb.WriteString(r.mark(delChar, "[-", "-]", df.Text))
			case dmp.DiffEqual:
				sb.WriteString(r.style(delLine, df.Text))
			}
		}

		sb.WriteString("\n")

		sb.WriteString(r.style(addLine, "+ "))
		for _, df := range diffs {
			switch df.Type {
			case dmp.DiffInsert:
				sb.WriteString(r.mark(addChar, "{+", "+}", df.Text))
			case dmp.DiffEqual:
				sb.WriteString(r.style(addLine, df.Text))
			}
		}

		sb.WriteString("\n")
	}

	return sb.String()
}
