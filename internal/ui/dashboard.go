package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"skiffadmin/internal/util"
)

func (m Model) renderDashboard(width, height int) string {
	cards := lipgloss.JoinHorizontal(
		lipgloss.Top,
		metricCard("Pending revisions", fmt.Sprintf("%d", len(m.queue.ListingRevisions))),
		metricCard("Pending insurance", fmt.Sprintf("%d", len(m.queue.Insurances))),
		metricCard("Total pending", fmt.Sprintf("%d", m.queue.TotalPending())),
		metricCard("Live listings", fmt.Sprintf("%d", m.listingsMeta.Total)),
	)

	var b strings.Builder
	b.WriteString(cards)
	b.WriteString("\n\n")
	b.WriteString(LabelStyle.Render("Recent activity"))
	b.WriteString("\n")

	switch {
	case !m.activityLoaded && m.activityLoading:
		b.WriteString(MutedStyle.Render("  Loading recent activity…"))
	case !m.activityLoaded:
		b.WriteString(MutedStyle.Render("  No activity loaded yet."))
	case len(m.activities) == 0:
		b.WriteString(MutedStyle.Render("  No activity logged yet."))
	default:
		limit := len(m.activities)
		if limit > 5 {
			limit = 5
		}
		for _, action := range m.activities[:limit] {
			line := fmt.Sprintf("  %s  %s  %s",
				MutedStyle.Render(util.FormatDate(action.CreatedAt)),
				util.Humanize(action.Action),
				MutedStyle.Render(adminName(action)),
			)
			b.WriteString(util.TruncateString(line, width-2))
			b.WriteString("\n")
		}
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func metricCard(label, value string) string {
	body := lipgloss.JoinVertical(
		lipgloss.Left,
		MutedStyle.Render(label),
		LabelStyle.Render(value),
	)
	return CardStyle.Render(body)
}
