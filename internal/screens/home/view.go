package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/keepsake-care/keepsake/internal/ui/theme"
)

const heartArt = ` ♥ ♥   ♥ ♥
♥     ♥    ♥
 ♥  Keepsake ♥
  ♥        ♥
    ♥    ♥
      ♥`

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("K E E P S A K E")
	sections = append(sections, title)

	subtitle := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("a little quiz about the people you love")
	sections = append(sections, subtitle)

	if height >= 24 {
		art := lipgloss.NewStyle().Foreground(theme.Accent).Render(heartArt)
		sections = append(sections, "", art)
	}

	stats := fmt.Sprintf("♥ %d hearts   Level %d   %d people   %d memories",
		h.heartCount, h.level, h.peopleCount, h.memoryCount)
	statsBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Foreground(theme.Text).
		Padding(0, 2).
		Render(stats)
	sections = append(sections, "", statsBox)

	sections = append(sections, "", h.menu.View())

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
