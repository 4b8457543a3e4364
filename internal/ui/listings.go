package ui

import (
	"fmt"
	"strings"

	"skiffadmin/internal/model"
	"skiffadmin/internal/util"
)

func (m Model) renderListings(width, height int) string {
	if m.listingsLoading && !m.listingsLoaded {
		return EmptyStateStyle.Render(m.spinner.View() + " Loading listings…")
	}
	if len(m.listings) == 0 {
		return EmptyStateStyle.Render("No live listings found.")
	}

	var b strings.Builder
	for i, listing := range m.listings {
		row := listingRow(listing)
		row = util.TruncateString(row, width-4)
		if i == m.listingCursor {
			b.WriteString(SelectedRowStyle.Render("▸ " + row))
		} else {
			b.WriteString(NormalRowStyle.Render("  " + row))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(MutedStyle.Render(fmt.Sprintf("Page %d of %d • %d total",
		m.listingsMeta.CurrentPage, m.listingsMeta.LastPage, m.listingsMeta.Total)))
	return b.String()
}

func listingRow(listing model.LiveListing) string {
	title := util.StringOr(listing.Title, "Untitled listing")
	row := fmt.Sprintf("#%d  %s  %s  %s/day",
		listing.ID, title, listingLocation(listing.Location, listing.City, listing.State),
		util.FormatCents(listing.PricePerDayCents))
	if listing.BoatType != nil {
		row += "  " + util.Humanize(*listing.BoatType)
	}
	if listing.MaxGuests != nil {
		row += fmt.Sprintf("  %d guests", *listing.MaxGuests)
	}
	row += "  updated " + util.FormatDate(listing.UpdatedAt)
	return row
}

// listingLocation prefers the free-form location, then "City, State",
// then a fixed fallback.
func listingLocation(location, city, state *string) string {
	if location != nil && *location != "" {
		return *location
	}
	if city != nil && *city != "" {
		if state != nil && *state != "" {
			return *city + ", " + *state
		}
		return *city
	}
	return "Unknown location"
}
