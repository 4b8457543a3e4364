package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"skiffadmin/internal/util"
)

func (m Model) renderPreview(width, height int) string {
	if m.preview == nil {
		return ""
	}
	if m.preview.loading || m.preview.data == nil {
		body := EmptyStateStyle.Render(m.spinner.View() + " Loading preview…")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
	}

	data := m.preview.data
	listing := data.Listing

	var b strings.Builder
	header := util.StringOr(listing.Title, "Untitled listing")
	if data.Source == "listing_revision" {
		header += "  " + BadgePendingStyle.Render("[proposed revision]")
	} else {
		header += "  " + BadgeOKStyle.Render("[live]")
	}
	b.WriteString(LabelStyle.Render(header))
	b.WriteString("\n")

	if data.Revision != nil {
		b.WriteString(MutedStyle.Render(fmt.Sprintf("Revision #%d • %s • submitted %s",
			data.Revision.ID, util.Humanize(data.Revision.Status), util.FormatDate(data.Revision.SubmittedAt))))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	writeField := func(label, value string) {
		b.WriteString(LabelStyle.Render(label+": ") + NormalRowStyle.Render(value))
		b.WriteString("\n")
	}

	writeField("Status", util.Humanize(util.StringOr(listing.Status, "unknown")))
	writeField("Location", listingLocation(listing.Location, listing.City, listing.State))
	if listing.Country != nil && *listing.Country != "" {
		writeField("Country", *listing.Country)
	}
	writeField("Price", util.FormatCents(listing.PricePerDayCents)+"/day")
	if listing.Rating != nil {
		reviews := 0
		if listing.ReviewCount != nil {
			reviews = *listing.ReviewCount
		}
		writeField("Rating", fmt.Sprintf("%.1f (%d reviews)", *listing.Rating, reviews))
	}
	if listing.BoatType != nil {
		boat := util.Humanize(*listing.BoatType)
		if listing.BoatLengthFt != nil {
			boat += fmt.Sprintf(", %.0f ft", *listing.BoatLengthFt)
		}
		writeField("Boat", boat)
	}
	if listing.MaxGuests != nil {
		writeField("Max guests", fmt.Sprintf("%d", *listing.MaxGuests))
	}

	if listing.Summary != nil && *listing.Summary != "" {
		b.WriteString("\n" + NormalRowStyle.Render(util.TruncateString(*listing.Summary, (width-12)*2)) + "\n")
	}
	if listing.Description != nil && *listing.Description != "" {
		b.WriteString("\n" + MutedStyle.Render(util.TruncateString(*listing.Description, (width-12)*4)) + "\n")
	}

	if len(listing.Amenities) > 0 {
		names := make([]string, len(listing.Amenities))
		for i, amenity := range listing.Amenities {
			names[i] = amenity.Name
		}
		b.WriteString("\n")
		writeField("Amenities", strings.Join(names, ", "))
	}

	if len(listing.GalleryImageURLs) > 0 || listing.HeroImageURL != nil {
		photos := len(listing.GalleryImageURLs)
		if listing.HeroImageURL != nil {
			photos++
		}
		writeField("Photos", fmt.Sprintf("%d", photos))
	}

	b.WriteString("\n")
	writeField("Insurance", util.Humanize(util.StringOr(listing.InsuranceStatus, "none")))
	if ins := listing.Insurance; ins != nil {
		writeField("  Provider", util.StringOr(ins.ProviderName, "Unknown"))
		writeField("  Policy", util.StringOr(ins.PolicyNumber, "Unknown"))
		writeField("  Coverage ends", util.FormatDate(ins.CoverageEndDate))
		writeField("  Verification", util.Humanize(util.StringOr(ins.VerificationStatus, "unknown")))
	}

	b.WriteString("\n" + helpKey("esc", "close preview"))

	panel := PanelStyle.Width(width - 8).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, panel)
}
