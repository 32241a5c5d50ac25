package review

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/versemind/internal/ui/components"
	"github.com/abhisek/versemind/internal/ui/theme"
)

func (s *Screen) View(width, height int) string {
	switch {
	case s.errMsg != "":
		return centered(width, height, theme.Again.Render(s.errMsg))
	case s.session == nil:
		return centered(width, height, theme.Hint.Render("Loading surah..."))
	case s.confirmReset:
		return s.renderResetConfirm(width, height)
	case s.session.Done():
		return s.renderComplete(width, height)
	default:
		return s.renderCard(width, height)
	}
}

func (s *Screen) renderCard(width, height int) string {
	cur := s.session.Current()
	d := s.session.Deck()

	cardWidth := width * 2 / 3
	if cardWidth < 40 {
		cardWidth = 40
	}

	var body strings.Builder

	counter := fmt.Sprintf("Verse %d of %d  ·  %d left to review",
		cur.Number, len(d.Items), s.session.Remaining())
	body.WriteString(theme.Subtitle.Width(cardWidth).Render(counter) + "\n\n")

	body.WriteString(theme.Verse.Width(cardWidth).Render(cur.Arabic) + "\n\n")

	if s.revealed {
		body.WriteString(theme.Body.Width(cardWidth).Align(lipgloss.Center).Render(cur.Translation) + "\n\n")
		buttons := components.Button{Label: "Again (A)"}.View() +
			"   " +
			components.Button{Label: "Pass (P)", Active: true}.View()
		body.WriteString(lipgloss.PlaceHorizontal(cardWidth, lipgloss.Center, buttons))
	} else {
		body.WriteString(theme.Hint.Width(cardWidth).Align(lipgloss.Center).
			Render("Recite from memory, then press Space to check"))
	}

	card := theme.Card.Width(cardWidth).Render(body.String())

	bar := components.StatusBar{Summary: s.session.Summary(), Width: cardWidth}.View()

	content := card + "\n\n" + lipgloss.PlaceHorizontal(lipgloss.Width(card), lipgloss.Left, bar)
	if s.saveNotice != "" {
		content += "\n" + theme.Hint.Render(s.saveNotice)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *Screen) renderComplete(width, height int) string {
	d := s.session.Deck()
	msg := theme.Title.Render("Surah complete") + "\n\n" +
		theme.Body.Render(fmt.Sprintf("All %d verses of %s are mastered.", len(d.Items), d.EnglishName)) + "\n\n" +
		theme.Hint.Render("Press R to study it again from the beginning.")
	if s.saveNotice != "" {
		msg += "\n\n" + theme.Hint.Render(s.saveNotice)
	}
	return centered(width, height, msg)
}

func (s *Screen) renderResetConfirm(width, height int) string {
	name := "this deck"
	if d := s.session.Deck(); d != nil {
		name = d.EnglishName
	}
	msg := theme.Body.Render(fmt.Sprintf("Reset all progress for %s?", name)) + "\n\n" +
		theme.Hint.Render("Every verse returns to new. Study history and streak are kept.") + "\n\n" +
		theme.Again.Render("Y") + theme.Body.Render(" reset   ") +
		theme.Pass.Render("N") + theme.Body.Render(" cancel")
	return centered(width, height, msg)
}

func centered(width, height int, content string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
