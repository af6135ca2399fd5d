package tui

import (
	"fmt"
	"strings"
)

const uiDivider = "──────────────────────────────────────────────────────"

// appTitle is shown in the title bar of every page.
const appTitle = "MindCraft AI"

func renderTitleBar(route string) string {
	upload := "F1 Upload"
	dashboard := "F2 Dashboard"
	switch route {
	case RouteUpload:
		upload = selectedStyle.Render(upload)
	case RouteDashboard:
		dashboard = selectedStyle.Render(dashboard)
	}
	return fmt.Sprintf("%s   %s │ %s", titleStyle.Render(appTitle), upload, dashboard)
}

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("ctrl+c: quit"))

	return b.String()
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

// cursorMark is the selection marker column of list-like views.
func cursorMark(selected bool) string {
	if selected {
		return ">"
	}
	return " "
}
