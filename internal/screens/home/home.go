// Package home is the landing screen: mode selection plus a small
// scoreboard pulled from past battles.
package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/dojo/internal/bigo"
	"github.com/abhisek/dojo/internal/debate"
	"github.com/abhisek/dojo/internal/llm"
	"github.com/abhisek/dojo/internal/router"
	"github.com/abhisek/dojo/internal/screen"
	"github.com/abhisek/dojo/internal/screens/arena"
	battlescreen "github.com/abhisek/dojo/internal/screens/battle"
	"github.com/abhisek/dojo/internal/store"
	"github.com/abhisek/dojo/internal/ui/components"
	"github.com/abhisek/dojo/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu       components.Menu
	bank       *bigo.Bank
	llmEnabled bool
	answers    int
	correct    int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. provider may be nil, in which case the
// debate entries are disabled.
func New(bank *bigo.Bank, provider llm.Provider, eventRepo store.EventRepo) *HomeScreen {
	h := &HomeScreen{
		bank:       bank,
		llmEnabled: provider != nil,
	}

	if eventRepo != nil {
		if stats, err := eventRepo.BattleStatsByLanguage(context.Background()); err == nil {
			for _, st := range stats {
				h.answers += st.Answers
				h.correct += st.Correct
			}
		}
	}

	items := []components.MenuItem{
		{Label: "BIG O BATTLE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: battlescreen.New(bank, bigo.DefaultLanguage, eventRepo),
				}
			}
		}},
		{Label: "DEBATE ARENA", Disabled: provider == nil, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: arena.New(provider, debate.ModeChallenge, challengeContext(bank), eventRepo),
				}
			}
		}},
		{Label: "CODE REVIEW", Disabled: provider == nil, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: arena.New(provider, debate.ModeReview, reviewContext(bank), eventRepo),
				}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	return h
}

// challengeContext fixes one random snippet as the debate subject. The
// snapshot is captured once so every turn argues about the same code.
func challengeContext(bank *bigo.Bank) debate.ContextFunc {
	ex := bank.PickRandom(bigo.DefaultLanguage)
	return func() debate.ChallengeContext {
		return debate.ChallengeContext{
			ChallengeType: "big-o",
			Topic:         "time complexity of a code snippet",
			Language:      ex.Language,
			Code:          ex.Code,
			State:         "active",
		}
	}
}

// reviewContext frames a completed snippet analysis for the retrospective.
func reviewContext(bank *bigo.Bank) debate.ContextFunc {
	ex := bank.PickRandom(bigo.DefaultLanguage)
	return func() debate.ChallengeContext {
		return debate.ChallengeContext{
			ChallengeType: "big-o",
			Topic:         "time complexity of a code snippet",
			Language:      ex.Language,
			Code:          ex.Code,
			UserAnswer:    ex.Complexity.Display(),
			State:         "complete",
		}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("D O J O")
	subtitle := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Sharpen your complexity instincts")
	sections = append(sections, title, subtitle, "")

	if h.answers > 0 {
		pct := 100 * h.correct / h.answers
		stats := lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Render(fmt.Sprintf("%d rounds played · %d%% accuracy", h.answers, pct))
		sections = append(sections, stats, "")
	}

	if !h.llmEnabled {
		warn := lipgloss.NewStyle().
			Foreground(theme.Accent).
			Render("LLM not configured — debate modes disabled")
		sections = append(sections, warn, "")
	}

	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n")
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
