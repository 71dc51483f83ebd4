package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TreeItem is one line of a milestone/task tree.
type TreeItem struct {
	ID     string
	Title  string
	Level  int
	IsLast bool
	Done   bool
	Detail string
}

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
	treePipe   = "│  "
)

// RenderTree renders items as an indented tree. Done items get a green ✔ and
// open items an empty box; details are right-aligned in brackets.
func RenderTree(items []TreeItem) string {
	if len(items) == 0 {
		return ""
	}

	contents := make([]string, len(items))
	widest := 0
	for i, item := range items {
		var prefix string
		if item.Level > 0 {
			prefix = strings.Repeat(treePipe, item.Level-1)
			if item.IsLast {
				prefix += treeCorner
			} else {
				prefix += treeBranch
			}
		}

		var idPrefix string
		if item.ID != "" {
			idPrefix = StyleDim.Render(item.ID + " ")
		}
		var mark, title string
		switch {
		case item.Level == 0:
			title = Bold(item.Title)
		case item.Done:
			mark = StyleGreen.Render("✔ ")
			title = Dim(item.Title)
		default:
			mark = StyleDim.Render("☐ ")
			title = StyleFg.Render(item.Title)
		}

		contents[i] = prefix + mark + idPrefix + title
		widest = max(widest, lipgloss.Width(contents[i]))
	}

	var b strings.Builder
	for i, item := range items {
		b.WriteString(contents[i])
		if item.Detail != "" {
			b.WriteString(strings.Repeat(" ", widest-lipgloss.Width(contents[i])+2))
			b.WriteString(StyleBlue.Render("[ " + item.Detail + " ]"))
		}
		b.WriteString("\n")
	}
	return b.String()
}
