package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TreeItem is one line of an outline tree.
type TreeItem struct {
	Title  string
	Level  int
	IsLast bool
	Kind   string // paragraph, table, page_break
	Detail string
}

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
	treePipe   = "│  "
)

var kindMarkers = map[string]string{
	"paragraph":  "¶ ",
	"table":      "▦ ",
	"page_break": "⤓ ",
}

// RenderTree renders items as an indented tree with box-drawing connectors.
// Detail badges are right-aligned across all lines.
func RenderTree(items []TreeItem) string {
	if len(items) == 0 {
		return ""
	}

	type lineInfo struct {
		content string
		badge   string
	}

	lines := make([]lineInfo, len(items))
	maxContentWidth := 0

	for idx, item := range items {
		var prefix strings.Builder
		if item.Level > 0 {
			for i := 1; i < item.Level; i++ {
				prefix.WriteString(treePipe)
			}
			if item.IsLast {
				prefix.WriteString(treeCorner)
			} else {
				prefix.WriteString(treeBranch)
			}
		}

		title := item.Title
		switch item.Kind {
		case "table":
			title = StyleYellow.Render(title)
		case "page_break":
			title = Dim(title)
		}

		content := StyleDim.Render(prefix.String()) + StyleBlue.Render(kindMarkers[item.Kind]) + title
		lines[idx].content = content
		if item.Detail != "" {
			lines[idx].badge = StyleBlue.Render(fmt.Sprintf("[ %s ]", item.Detail))
		}
		if w := lipgloss.Width(content); w > maxContentWidth {
			maxContentWidth = w
		}
	}

	var b strings.Builder
	for _, li := range lines {
		b.WriteString(li.content)
		if li.badge != "" {
			pad := max(maxContentWidth-lipgloss.Width(li.content), 0)
			b.WriteString(strings.Repeat(" ", pad) + "  " + li.badge)
		}
		b.WriteString("\n")
	}
	return b.String()
}
