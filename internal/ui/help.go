package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"skiffadmin/internal/model"
)

// RenderHelp renders the context-sensitive help footer.
func RenderHelp(section model.Section, tab model.ModerationTab, mode model.Mode, width int) string {
	if mode == model.ModeInsert {
		return renderHelpLine([]string{
			helpKey("tab", "next field"),
			helpKey("enter", "apply"),
			helpKey("esc", "cancel"),
		}, width)
	}

	switch section {
	case model.SectionModeration:
		if tab == model.TabActivity {
			return renderHelpLine([]string{
				helpKey("j/k", "navigate"),
				helpKey("f", "filters"),
				helpKey("[/]", "page"),
				helpKey("enter", "details"),
				helpKey("tab", "queue"),
				helpKey("R", "refresh"),
				helpKey("?", "help"),
			}, width)
		}
		return renderHelpLine([]string{
			helpKey("j/k", "navigate"),
			helpKey("a", "approve/verify"),
			helpKey("x", "request changes/reject"),
			helpKey("n", "note"),
			helpKey("p", "preview"),
			helpKey("enter", "details"),
			helpKey("tab", "activity"),
			helpKey("?", "help"),
		}, width)
	case model.SectionLiveListings:
		return renderHelpLine([]string{
			helpKey("j/k", "navigate"),
			helpKey("p", "preview"),
			helpKey("[/]", "page"),
			helpKey("R", "refresh"),
			helpKey("?", "help"),
		}, width)
	default:
		return renderHelpLine([]string{
			helpKey("←/→", "sections"),
			helpKey("1/2/3", "jump to section"),
			helpKey("R", "refresh"),
			helpKey("ctrl+l", "log out"),
			helpKey("q", "quit"),
			helpKey("?", "help"),
		}, width)
	}
}

func helpKey(key, desc string) string {
	return HelpKeyStyle.Render(key) + " " + HelpDescStyle.Render(desc)
}

func renderHelpLine(keys []string, width int) string {
	line := strings.Join(keys, "  ")
	return FooterStyle.Width(width).Render(line)
}

// RenderFullHelp renders the full help screen.
func RenderFullHelp(width, height int) string {
	content := lipgloss.NewStyle().
		Width(width-4).
		Height(height-6).
		Padding(1, 2)

	sections := []string{
		titleSection("Global"),
		helpSection([]helpItem{
			{"1 / 2 / 3", "Dashboard / Moderation / Live Listings"},
			{"← / →", "Previous / next section"},
			{"R", "Refresh current section"},
			{"ctrl+l", "Log out"},
			{"q", "Quit"},
			{"?", "Toggle help"},
		}),
		titleSection("Moderation Queue"),
		helpSection([]helpItem{
			{"j / k", "Move between pending reviews"},
			{"gg / G", "Jump to top / bottom"},
			{"n", "Edit the review note for the selected item"},
			{"a", "Approve revision / verify insurance"},
			{"x", "Request changes / reject insurance (note required)"},
			{"p", "Preview the listing or revision"},
			{"enter", "Open review details"},
			{"tab", "Switch to the activity log"},
		}),
		titleSection("Activity Log"),
		helpSection([]helpItem{
			{"f", "Open filters (action, target type, listing ID)"},
			{"ctrl+r", "Reset filters (inside the filter form)"},
			{"[ / ]", "Previous / next page"},
			{"enter", "Open action details"},
		}),
		titleSection("Live Listings"),
		helpSection([]helpItem{
			{"j / k", "Move between listings"},
			{"p", "Preview the selected listing"},
			{"[ / ]", "Previous / next page"},
		}),
	}

	helpText := content.Render(strings.Join(sections, "\n\n"))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		TitleStyle.Width(width).Render("Help"),
		helpText,
		FooterStyle.Width(width).Render(helpKey("esc", "close help")),
	)
}

type helpItem struct {
	key  string
	desc string
}

func titleSection(title string) string {
	return LabelStyle.Render(title)
}

func helpSection(items []helpItem) string {
	var lines []string
	for _, item := range items {
		lines = append(lines, "  "+HelpKeyStyle.Render(item.key)+" - "+HelpDescStyle.Render(item.desc))
	}
	return strings.Join(lines, "\n")
}
