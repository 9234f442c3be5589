package battle

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/dojo/internal/ui/components"
	"github.com/abhisek/dojo/internal/ui/theme"
)

func (s *BattleScreen) View(width, height int) string {
	switch s.phase {
	case phaseSummary:
		return s.renderSummary(width, height)
	case phaseFeedback:
		return s.renderFeedback(width)
	default:
		return s.renderRound(width)
	}
}

// renderRound renders the active question: status line, code card, options.
func (s *BattleScreen) renderRound(width int) string {
	round := s.battle.Current()
	if round == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Loading round...")
	}

	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s", strings.ToUpper(s.battle.Language)))

	timerStyle := lipgloss.NewStyle().Foreground(theme.Accent)
	if s.remaining <= 5 {
		timerStyle = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	}
	infoRight := lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("Round %d/%d  ✓ %d  ★ %d  ",
			s.battle.RoundNumber(), s.battle.TotalRound,
			s.battle.Score(), s.battle.Streak()),
	) + timerStyle.Render(fmt.Sprintf("%ds", s.remaining))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	b.WriteString(renderCodeCard(round.Example.Code, width))
	b.WriteString("\n\n")

	prompt := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("What is the time complexity?")
	b.WriteString(prompt)
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.mc.View()))

	hint := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Select (1-4) or use arrows + Enter")
	b.WriteString(hint)

	return b.String()
}

// renderFeedback shows the outcome of the round just played.
func (s *BattleScreen) renderFeedback(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	switch {
	case s.lastResult.TimedOut:
		b.WriteString(center.Foreground(theme.Error).Bold(true).Render("Time's up!"))
	case s.lastResult.Correct:
		b.WriteString(center.Foreground(theme.Success).Bold(true).Render("Correct!"))
	default:
		b.WriteString(center.Foreground(theme.Error).Bold(true).Render("Not quite"))
	}
	b.WriteString("\n\n")

	b.WriteString(center.Foreground(theme.Text).Render(
		"Answer: " + s.feedbackRound.Example.Complexity.Display()))
	b.WriteString("\n\n")

	if s.feedbackRound.Example.Explanation != "" {
		explain := lipgloss.NewStyle().
			Width(width - 8).
			Foreground(theme.TextDim).
			Render(s.feedbackRound.Example.Explanation)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, explain))
		b.WriteString("\n\n")
	}

	b.WriteString(center.Foreground(theme.TextDim).Italic(true).Render("Press any key to continue"))
	return b.String()
}

// renderSummary shows the end-of-battle scoreboard.
func (s *BattleScreen) renderSummary(width, height int) string {
	var b strings.Builder

	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.Primary).Bold(true).Render("Battle Complete"))
	b.WriteString("\n\n")

	rounds := len(s.battle.Results())
	b.WriteString(center.Foreground(theme.Text).Render(
		fmt.Sprintf("Score: %d / %d", s.battle.Score(), rounds)))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Text).Render(
		fmt.Sprintf("Best streak: %d", s.battle.BestStreak())))
	b.WriteString("\n\n")

	bar := components.NewProgressBar("Accuracy", s.battle.Accuracy(), true, min(width-8, 48))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	b.WriteString(center.Foreground(theme.TextDim).Italic(true).Render("Press Enter to finish"))
	return b.String()
}

// renderCodeCard wraps a code snippet in a bordered card.
func renderCodeCard(code string, width int) string {
	cardWidth := width - 8
	if cardWidth > 76 {
		cardWidth = 76
	}
	if cardWidth < 20 {
		cardWidth = 20
	}

	card := lipgloss.NewStyle().
		Width(cardWidth).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Foreground(theme.Text).
		Render(code)

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, card)
}
