package arena

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/dojo/internal/debate"
	"github.com/abhisek/dojo/internal/ui/theme"
)

func (s *ArenaScreen) View(width, height int) string {
	transcriptHeight := height - 4 // status line + input area
	if transcriptHeight < 3 {
		transcriptHeight = 3
	}

	var b strings.Builder
	b.WriteString(s.renderStatus(width))
	b.WriteString("\n")
	b.WriteString(s.renderTranscript(width, transcriptHeight))
	b.WriteString("\n")
	b.WriteString(s.renderInput(width))
	return b.String()
}

func (s *ArenaScreen) renderStatus(width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Phase: %s", s.snap.Phase))

	var right string
	switch {
	case s.snap.Loading:
		right = lipgloss.NewStyle().Foreground(theme.Accent).Render("thinking…  ")
	case s.snap.Err != "":
		right = lipgloss.NewStyle().Foreground(theme.Error).Render(truncate(s.snap.Err, width/2) + "  ")
	}

	line := left
	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if pad > 0 {
		line += strings.Repeat(" ", pad) + right
	}
	return line + "\n" + lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0)))
}

func (s *ArenaScreen) renderTranscript(width, height int) string {
	if len(s.snap.Messages) == 0 {
		hint := "State your reasoning and the personas will push back."
		if s.orch.Mode() == debate.ModeReview && s.snap.Loading {
			hint = "Preparing the retrospective…"
		}
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.TextDim).
			Render(hint)
	}

	var lines []string
	for _, m := range s.snap.Messages {
		lines = append(lines, renderMessage(m, width)...)
		lines = append(lines, "")
	}

	// Pin to the bottom, offset by manual scroll.
	end := len(lines) - s.scroll
	if end > len(lines) {
		end = len(lines)
	}
	start := end - height
	if start < 0 {
		start = 0
		end = min(height, len(lines))
	}
	visible := lines[start:end]

	return strings.Join(visible, "\n")
}

func (s *ArenaScreen) renderInput(width int) string {
	return lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))) +
		"\n  " + s.input.View()
}

// renderMessage renders one transcript entry as label + wrapped body lines.
func renderMessage(m debate.Message, width int) []string {
	var label string
	var style lipgloss.Style
	switch m.Role {
	case debate.RoleStudent:
		label = "You"
		style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	case debate.RoleTeacher:
		label = "Teacher"
		style = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	case debate.RoleCritic:
		label = "Critic"
		style = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	default:
		label = string(m.Role)
		style = lipgloss.NewStyle().Foreground(theme.TextDim)
	}

	bodyWidth := width - 6
	if bodyWidth < 20 {
		bodyWidth = 20
	}
	body := lipgloss.NewStyle().
		Width(bodyWidth).
		Foreground(theme.Text).
		Render(m.Content)

	lines := []string{"  " + style.Render(label)}
	for _, l := range strings.Split(body, "\n") {
		lines = append(lines, "  "+l)
	}
	return lines
}

func truncate(s string, maxLen int) string {
	if maxLen < 4 || len(s) <= maxLen {
		return s
	}
	return s[:maxLen-1] + "…"
}
