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

var (
	actionOptions = []string{"", "approve_revision", "request_changes", "verify_insurance", "reject_insurance"}
	targetOptions = []string{"", "listing_revision", "listing_insurance", "listing"}
)

// FilterFormModel edits a draft of the activity filters. The applied set
// only changes on an explicit apply.
type FilterFormModel struct {
	actionIdx    int
	targetIdx    int
	listingInput textinput.Model
	focus        int
}

// NewFilterFormModel seeds the draft from the currently applied filters.
func NewFilterFormModel(applied model.ActivityFilters) *FilterFormModel {
	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = "any"
	input.CharLimit = 20
	input.Width = 20
	input.SetValue(applied.ListingID)

	form := &FilterFormModel{listingInput: input}
	form.actionIdx = indexOf(actionOptions, applied.Action)
	form.targetIdx = indexOf(targetOptions, applied.TargetType)
	form.syncFocus()
	return form
}

func indexOf(options []string, value string) int {
	for i, option := range options {
		if option == value {
			return i
		}
	}
	return 0
}

// Filters returns the draft as an applied filter set.
func (f *FilterFormModel) Filters() model.ActivityFilters {
	return model.ActivityFilters{
		Action:     actionOptions[f.actionIdx],
		TargetType: targetOptions[f.targetIdx],
		ListingID:  strings.TrimSpace(f.listingInput.Value()),
	}
}

// NextField moves focus to the next field.
func (f *FilterFormModel) NextField() {
	f.focus = (f.focus + 1) % 3
	f.syncFocus()
}

// PrevField moves focus to the previous field.
func (f *FilterFormModel) PrevField() {
	f.focus = (f.focus + 2) % 3
	f.syncFocus()
}

func (f *FilterFormModel) syncFocus() {
	if f.focus == 2 {
		f.listingInput.Focus()
	} else {
		f.listingInput.Blur()
	}
}

// Update cycles the focused choice or types into the listing ID field.
func (f *FilterFormModel) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch f.focus {
	case 0:
		switch keyMsg.String() {
		case "left", "h":
			f.actionIdx = (f.actionIdx + len(actionOptions) - 1) % len(actionOptions)
		case "right", "l", " ":
			f.actionIdx = (f.actionIdx + 1) % len(actionOptions)
		}
		return nil
	case 1:
		switch keyMsg.String() {
		case "left", "h":
			f.targetIdx = (f.targetIdx + len(targetOptions) - 1) % len(targetOptions)
		case "right", "l", " ":
			f.targetIdx = (f.targetIdx + 1) % len(targetOptions)
		}
		return nil
	default:
		var cmd tea.Cmd
		f.listingInput, cmd = f.listingInput.Update(msg)
		return cmd
	}
}

// View renders the filter form panel.
func (f *FilterFormModel) View(width, height int) string {
	choice := func(value string) string {
		if value == "" {
			return "any"
		}
		return util.Humanize(value)
	}

	row := func(focused bool, label, value string) string {
		marker := "  "
		style := NormalRowStyle
		if focused {
			marker = "▸ "
			style = lipgloss.NewStyle().Foreground(ColorAccent)
		}
		return marker + LabelStyle.Render(label) + " " + style.Render(value)
	}

	var b strings.Builder
	b.WriteString(LabelStyle.Render("Activity filters"))
	b.WriteString("\n\n")
	b.WriteString(row(f.focus == 0, "Action:     ", choice(actionOptions[f.actionIdx])))
	b.WriteString("\n")
	b.WriteString(row(f.focus == 1, "Target type:", choice(targetOptions[f.targetIdx])))
	b.WriteString("\n")
	b.WriteString(row(f.focus == 2, "Listing ID: ", f.listingInput.View()))
	b.WriteString("\n\n")
	b.WriteString(helpKey("←/→", "cycle") + "  " + helpKey("tab", "next field") + "  " +
		helpKey("enter", "apply") + "  " + helpKey("ctrl+r", "reset") + "  " + helpKey("esc", "cancel"))

	panel := ActivePanelStyle.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, panel)
}

func (m Model) renderActivity(width, height int) string {
	if m.activityLoading && !m.activityLoaded {
		return EmptyStateStyle.Render(m.spinner.View() + " Loading activity…")
	}

	var b strings.Builder

	if !m.activityFilters.IsZero() {
		var parts []string
		if m.activityFilters.Action != "" {
			parts = append(parts, "action: "+util.Humanize(m.activityFilters.Action))
		}
		if m.activityFilters.TargetType != "" {
			parts = append(parts, "target: "+util.Humanize(m.activityFilters.TargetType))
		}
		if m.activityFilters.ListingID != "" {
			parts = append(parts, "listing: "+m.activityFilters.ListingID)
		}
		b.WriteString(MutedStyle.Render("Filtered by " + strings.Join(parts, ", ")))
		b.WriteString("\n")
	}

	if len(m.activities) == 0 {
		b.WriteString(EmptyStateStyle.Render("No activity logged yet."))
		return b.String()
	}

	for i, action := range m.activities {
		row := m.activityRow(action)
		row = util.TruncateString(row, width-4)
		if i == m.activityCursor {
			b.WriteString(SelectedRowStyle.Render("▸ " + row))
		} else {
			b.WriteString(NormalRowStyle.Render("  " + row))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(MutedStyle.Render(fmt.Sprintf("Page %d of %d • %d total",
		m.activityMeta.CurrentPage, m.activityMeta.LastPage, m.activityMeta.Total)))
	return b.String()
}

func (m Model) activityRow(action model.ModerationAction) string {
	target := util.Humanize(action.TargetType)
	listing := fmt.Sprintf("listing #%d", action.ListingID)
	if action.Listing != nil && action.Listing.Title != nil {
		listing = *action.Listing.Title
	}
	row := fmt.Sprintf("%s  %s  %s → %s  %s",
		util.FormatDate(action.CreatedAt),
		util.Humanize(action.Action),
		target,
		listing,
		adminName(action),
	)
	if action.Notes != nil && *action.Notes != "" {
		row += "  ✎"
	}
	return row
}

func adminName(action model.ModerationAction) string {
	if action.Admin != nil {
		return action.Admin.Name
	}
	return "Unknown admin"
}
