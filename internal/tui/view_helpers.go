// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FCS Project Authors

package tui

import "strings"

const uiDivider = "──────────────────────────────────────────────────────"

// renderPage lays every screen out the same way: styled title, a framed
// body indented two spaces, then the page's hot keys above the global
// quit hint. An empty body renders as a single dash.
func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n  " + uiDivider + "\n\n")

	if strings.TrimSpace(data) == "" {
		b.WriteString("  -\n")
	} else {
		writeIndented(&b, data)
	}

	b.WriteString("\n  " + uiDivider + "\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  " + helpStyle.Render(hotKeys) + "\n")
	}
	b.WriteString("  " + helpStyle.Render("ctrl+c: quit"))

	return b.String()
}

func writeIndented(b *strings.Builder, text string) {
	for _, line := range strings.Split(text, "\n") {
		b.WriteString("  " + line + "\n")
	}
}

// fitText truncates v to max characters, eliding with "..." when there
// is room for the marker.
func fitText(v string, max int) string {
	if max <= 0 || len(v) <= max {
		return v
	}
	if max <= 3 {
		return v[:max]
	}
	return v[:max-3] + "..."
}
