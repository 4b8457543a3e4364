package ui

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"skiffadmin/internal/model"
	"skiffadmin/internal/util"
)

func (m Model) renderReviewDetail(width, height int) string {
	if m.detail == nil {
		return ""
	}

	var b strings.Builder
	writeField := func(label, value string) {
		b.WriteString(LabelStyle.Render(label+": ") + NormalRowStyle.Render(value))
		b.WriteString("\n")
	}

	if m.detail.Kind == model.KindListingRevision {
		rev := m.detail.Revision
		b.WriteString(LabelStyle.Render("Listing revision review"))
		b.WriteString("\n\n")
		writeField("Revision", fmt.Sprintf("#%d", rev.ID))
		writeField("Listing", fmt.Sprintf("#%d  %s", rev.ListingID, util.StringOr(rev.ListingTitle, "Untitled listing")))
		writeField("Submitted", util.FormatDate(rev.SubmittedAt))
		if rev.SubmittedBy != nil {
			writeField("Submitted by", fmt.Sprintf("%s <%s>", rev.SubmittedBy.Name, rev.SubmittedBy.Email))
		}
		if note := m.draftNote(fmt.Sprintf("rev-%d", rev.ID)); note != "" {
			writeField("Draft note", note)
		}
	} else {
		ins := m.detail.Insurance
		b.WriteString(LabelStyle.Render("Insurance review"))
		b.WriteString("\n\n")
		writeField("Submission", fmt.Sprintf("#%d", ins.ID))
		writeField("Listing", fmt.Sprintf("#%d  %s", ins.ListingID, util.StringOr(ins.ListingTitle, "Untitled listing")))
		writeField("Status", util.Humanize(ins.VerificationStatus))
		writeField("Submitted", util.FormatDate(ins.SubmittedAt))
		if note := m.draftNote(fmt.Sprintf("ins-%d", ins.ID)); note != "" {
			writeField("Draft note", note)
		}
	}

	b.WriteString("\n" + helpKey("a", "approve/verify") + "  " + helpKey("x", "request changes/reject") + "  " + helpKey("esc", "close"))

	panel := PanelStyle.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, panel)
}

func (m Model) renderActivityDetail(width, height int) string {
	if m.activityDetail == nil {
		return ""
	}
	action := m.activityDetail

	var b strings.Builder
	writeField := func(label, value string) {
		b.WriteString(LabelStyle.Render(label+": ") + NormalRowStyle.Render(value))
		b.WriteString("\n")
	}

	b.WriteString(LabelStyle.Render("Moderation action"))
	b.WriteString("\n\n")
	writeField("Action", util.Humanize(action.Action))
	writeField("Target", fmt.Sprintf("%s #%d", util.Humanize(action.TargetType), action.TargetID))
	listing := fmt.Sprintf("#%d", action.ListingID)
	if action.Listing != nil && action.Listing.Title != nil {
		listing += "  " + *action.Listing.Title
	}
	writeField("Listing", listing)
	if action.StatusBefore != nil || action.StatusAfter != nil {
		writeField("Status", util.Humanize(util.StringOr(action.StatusBefore, "unknown"))+" → "+util.Humanize(util.StringOr(action.StatusAfter, "unknown")))
	}
	writeField("When", util.FormatDate(action.CreatedAt))
	writeField("Admin", adminName(*action))
	if action.Notes != nil && *action.Notes != "" {
		writeField("Notes", *action.Notes)
	}

	if len(action.Metadata) > 0 {
		b.WriteString("\n" + LabelStyle.Render("Metadata"))
		b.WriteString("\n")
		raw, err := json.MarshalIndent(action.Metadata, "", "  ")
		if err == nil {
			b.WriteString(MutedStyle.Render(string(raw)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n" + helpKey("esc", "close"))

	panel := PanelStyle.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, panel)
}
