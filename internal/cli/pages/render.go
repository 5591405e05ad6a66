package pages

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/growthbook/internal/constants"
	"github.com/julianstephens/growthbook/internal/models"
)

func card(heading, body string, footnote string) string {
	content := body
	if strings.TrimSpace(body) == "" {
		content = emptyStyle.Render("(empty)")
	}

	parts := []string{headingStyle.Render(heading), content}
	if footnote != "" {
		parts = append(parts, footnoteStyle.Render(footnote))
	}
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// RenderPage lays a page out as a column of cards in the order of the paper book
func RenderPage(p models.Page) string {
	journalLen := utf8.RuneCountInString(p.Journal)

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(fmt.Sprintf("Growth Book · %s", p.Date)),
		card("Today's Schedule", p.Schedule, ""),
		card("To-Do", p.Todo, ""),
		card("Goals", p.Goals, ""),
		card("Motivation", p.Motivation, ""),
		card("Happiness", fmt.Sprintf("%d/%d", p.Happiness, constants.MaxHappiness), ""),
		card("Daily Journal", p.Journal, fmt.Sprintf("%d characters", journalLen)),
	)
}
