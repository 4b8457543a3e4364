package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"skiffadmin/internal/model"
	"skiffadmin/internal/util"
)

// NoteEditorModel edits the review note draft for one queue item.
type NoteEditorModel struct {
	key   string
	input textinput.Model
}

// NewNoteEditorModel opens the editor prefilled with an existing draft.
func NewNoteEditorModel(key, draft string) *NoteEditorModel {
	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = 500
	input.Width = 60
	input.SetValue(draft)
	input.Focus()
	return &NoteEditorModel{key: key, input: input}
}

// Update forwards a message to the note input.
func (n *NoteEditorModel) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	n.input, cmd = n.input.Update(msg)
	return cmd
}

// Value returns the current draft text.
func (n *NoteEditorModel) Value() string {
	return n.input.Value()
}

// View renders the note editor panel.
func (n *NoteEditorModel) View(width, height int) string {
	var b strings.Builder
	b.WriteString(LabelStyle.Render("Review note"))
	b.WriteString("\n")
	b.WriteString(MutedStyle.Render("Sent with the next approve/verify, required for request changes/reject."))
	b.WriteString("\n\n")
	b.WriteString(n.input.View())
	b.WriteString("\n\n" + helpKey("enter", "save draft") + "  " + helpKey("esc", "cancel"))

	panel := ActivePanelStyle.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, panel)
}

func (m Model) renderModeration(width, height int) string {
	var b strings.Builder
	b.WriteString(m.renderModerationTabs())
	b.WriteString("\n")
	if m.tab == model.TabActivity {
		b.WriteString(m.renderActivity(width, height))
	} else {
		b.WriteString(m.renderQueue(width))
	}
	return b.String()
}

func (m Model) renderModerationTabs() string {
	queueLabel := fmt.Sprintf("Queue (%d)", m.queue.TotalPending())
	activityLabel := "Activity"

	style := func(active bool) lipgloss.Style {
		s := lipgloss.NewStyle().Padding(0, 2).Foreground(ColorMuted)
		if active {
			s = s.Foreground(ColorText).Bold(true).Underline(true)
		}
		return s
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Left,
		style(m.tab == model.TabQueue).Render(queueLabel),
		style(m.tab == model.TabActivity).Render(activityLabel),
	)
}

func (m Model) renderQueue(width int) string {
	if m.queueLoading && !m.queueLoaded {
		return EmptyStateStyle.Render(m.spinner.View() + " Loading review queue…")
	}

	var b strings.Builder

	b.WriteString(LabelStyle.Render("Listing revisions"))
	b.WriteString("\n")
	if len(m.queue.ListingRevisions) == 0 {
		b.WriteString(MutedStyle.Render("  No listing revisions pending."))
		b.WriteString("\n")
	}
	for i, rev := range m.queue.ListingRevisions {
		b.WriteString(m.renderQueueRow(i, m.revisionRow(rev), width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(LabelStyle.Render("Insurance submissions"))
	b.WriteString("\n")
	if len(m.queue.Insurances) == 0 {
		b.WriteString(MutedStyle.Render("  No insurance reviews pending."))
		b.WriteString("\n")
	}
	offset := len(m.queue.ListingRevisions)
	for i, ins := range m.queue.Insurances {
		b.WriteString(m.renderQueueRow(offset+i, m.insuranceRow(ins), width))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) renderQueueRow(index int, row string, width int) string {
	row = util.TruncateString(row, width-4)
	if index == m.moderationCursor {
		return SelectedRowStyle.Render("▸ " + row)
	}
	return NormalRowStyle.Render("  " + row)
}

func (m Model) revisionRow(rev model.ListingRevisionReview) string {
	title := util.StringOr(rev.ListingTitle, "Untitled listing")
	row := fmt.Sprintf("#%d  %s  submitted %s", rev.ID, title, util.FormatDate(rev.SubmittedAt))
	if rev.SubmittedBy != nil {
		row += " by " + rev.SubmittedBy.Name
	}
	if note := m.draftNote(fmt.Sprintf("rev-%d", rev.ID)); note != "" {
		row += "  ✎"
	}
	if m.mutationInFlight("revision", rev.ID) {
		row += "  " + m.spinner.View()
	}
	return row
}

func (m Model) insuranceRow(ins model.InsuranceReview) string {
	title := util.StringOr(ins.ListingTitle, "Untitled listing")
	row := fmt.Sprintf("#%d  %s  %s  submitted %s",
		ins.ID, title, util.Humanize(ins.VerificationStatus), util.FormatDate(ins.SubmittedAt))
	if note := m.draftNote(fmt.Sprintf("ins-%d", ins.ID)); note != "" {
		row += "  ✎"
	}
	if m.mutationInFlight("insurance", ins.ID) {
		row += "  " + m.spinner.View()
	}
	return row
}

func (m Model) mutationInFlight(kind string, id int64) bool {
	switch kind {
	case "revision":
		return m.actionLoading[fmt.Sprintf("approve-revision-%d", id)] ||
			m.actionLoading[fmt.Sprintf("reject-revision-%d", id)]
	case "insurance":
		return m.actionLoading[fmt.Sprintf("verify-insurance-%d", id)] ||
			m.actionLoading[fmt.Sprintf("reject-insurance-%d", id)]
	}
	return false
}
